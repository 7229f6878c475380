package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
)

// TestIsHoliday_FixedDatesAnyYear verifica que o feriado vale em qualquer
// ano e que a véspera não é feriado.
func TestIsHoliday_FixedDatesAnyYear(t *testing.T) {
	for _, year := range []int{1999, 2024, 2030} {
		natal := time.Date(year, time.December, 25, 10, 0, 0, 0, time.UTC)
		vespera := time.Date(year, time.December, 24, 10, 0, 0, 0, time.UTC)

		assert.True(t, domain.IsHoliday(natal), "year=%d", year)
		assert.False(t, domain.IsHoliday(vespera), "year=%d", year)
	}
}

func TestIsHoliday_AllFixedHolidays(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		assert.True(t, domain.IsHoliday(d), "date=%s", d.Format("2006-01-02"))
	}
}

// TestAddBusinessDays verifica que finais de semana e feriados são pulados.
func TestAddBusinessDays(t *testing.T) {
	// sexta-feira 19/12/2025
	friday := time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC)

	// +1 dia útil pula o fim de semana → segunda 22/12
	next := domain.AddBusinessDays(friday, 1)
	assert.Equal(t, time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC), next)

	// quarta 24/12 + 1 dia útil pula o Natal → sexta 26/12
	wednesday := time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC)
	afterChristmas := domain.AddBusinessDays(wednesday, 1)
	assert.Equal(t, time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC), afterChristmas)
}
