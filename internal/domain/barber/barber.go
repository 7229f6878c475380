package barber

import (
	"strings"

	"github.com/barbershop/scheduler/internal/models"
)

// AddSpecialty acrescenta uma especialidade à lista do barbeiro sem
// duplicar entradas já existentes. Retorna true quando houve alteração.
func AddSpecialty(b *models.Barber, specialty string) bool {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return false
	}

	if b.Specialty == "" {
		b.Specialty = specialty
		return true
	}

	for _, existing := range strings.Split(b.Specialty, ",") {
		if strings.EqualFold(strings.TrimSpace(existing), specialty) {
			return false
		}
	}

	b.Specialty = b.Specialty + ", " + specialty
	return true
}

// HasSpecialty verifica se o barbeiro declara uma especialidade.
func HasSpecialty(b *models.Barber, specialty string) bool {
	if b.Specialty == "" {
		return false
	}
	return strings.Contains(
		strings.ToLower(b.Specialty),
		strings.ToLower(strings.TrimSpace(specialty)),
	)
}
