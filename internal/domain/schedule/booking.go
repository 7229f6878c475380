package schedule

import (
	"time"

	"github.com/barbershop/scheduler/internal/httperr"
)

const (
	// MinLeadTime é a antecedência mínima entre a reserva e o horário.
	MinLeadTime = 7 * 24 * time.Hour

	// ConflictWindow é a janela fixa durante a qual nenhum outro
	// agendamento CONFIRMADO pode existir para o mesmo barbeiro.
	// Não considera a duração real dos serviços (simplificação assumida).
	ConflictWindow = time.Hour
)

// ValidateDate aplica as regras de data da reserva: feriado primeiro,
// depois antecedência mínima. A ordem das rejeições é fixa.
func ValidateDate(date, now time.Time) error {
	if IsHoliday(date) {
		return httperr.ErrBusiness(
			httperr.CodeHoliday,
			"Não é possível agendar em feriados.",
		)
	}

	if date.Before(now.Add(MinLeadTime)) {
		return httperr.ErrBusiness(
			httperr.CodeLeadTime,
			"O agendamento deve ser feito com pelo menos uma semana de antecedência.",
		)
	}

	return nil
}
