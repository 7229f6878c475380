package schedule

import "time"

type fixedHoliday struct {
	Day   int
	Month time.Month
}

// Feriados nacionais fixos. Feriados móveis (Carnaval, Sexta-feira Santa)
// ficam de fora: exigiriam cálculo sobre o ano.
var fixedHolidays = []fixedHoliday{
	{1, time.January},    // Ano Novo
	{21, time.April},     // Tiradentes
	{1, time.May},        // Dia do Trabalho
	{7, time.September},  // Independência
	{12, time.October},   // Nossa Senhora Aparecida
	{2, time.November},   // Finados
	{15, time.November},  // Proclamação da República
	{25, time.December},  // Natal
}

// IsHoliday verifica se a data cai em um feriado nacional fixo,
// independente do ano.
func IsHoliday(date time.Time) bool {
	for _, h := range fixedHolidays {
		if date.Day() == h.Day && date.Month() == h.Month {
			return true
		}
	}
	return false
}

// AddBusinessDays avança a data pulando finais de semana e feriados.
func AddBusinessDays(date time.Time, days int) time.Time {
	result := date
	added := 0

	for added < days {
		result = result.AddDate(0, 0, 1)

		wd := result.Weekday()
		if wd != time.Saturday && wd != time.Sunday && !IsHoliday(result) {
			added++
		}
	}

	return result
}
