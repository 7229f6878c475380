package customer

import (
	"time"

	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/models"
)

const MinAge = 3

// Age calcula a idade em anos completos na data de referência.
func Age(c *models.Customer, now time.Time) int {
	age := now.Year() - c.BirthDate.Year()

	m := int(now.Month()) - int(c.BirthDate.Month())
	if m < 0 || (m == 0 && now.Day() < c.BirthDate.Day()) {
		age--
	}

	return age
}

// CanBeServed aplica as regras de atendimento do cliente.
func CanBeServed(c *models.Customer, now time.Time) bool {
	return !c.HasAllergy && Age(c, now) >= MinAge
}

// EligibilityError retorna a rejeição específica para clientes que não
// podem ser atendidos: alergia primeiro, depois idade, senão genérica.
// Retorna nil quando o cliente é elegível.
func EligibilityError(c *models.Customer, now time.Time) error {
	if CanBeServed(c, now) {
		return nil
	}

	if c.HasAllergy {
		return httperr.ErrBusiness(
			httperr.CodeCustomerAllergy,
			"Não é possível realizar o agendamento para clientes com alergia de pele.",
		)
	}

	if Age(c, now) < MinAge {
		return httperr.ErrBusiness(
			httperr.CodeCustomerUnderAge,
			"Não realizamos cortes para crianças menores de 3 anos.",
		)
	}

	return httperr.ErrBusiness(
		httperr.CodeCustomerIneligible,
		"Cliente não pode ser atendido devido a restrições.",
	)
}
