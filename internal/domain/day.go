package domain

import (
	"fmt"
	"time"
)

// Day é uma data de calendário, sem hora nem fuso. Dois registros do mesmo dia
// em horários diferentes caem no mesmo Day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf extrai o dia de calendário de t, no próprio fuso de t
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Compare retorna -1, 0 ou +1 comparando ano, mês e dia
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return compareInt(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInt(int(d.Month), int(other.Month))
	default:
		return compareInt(d.Day, other.Day)
	}
}

func (d Day) After(other Day) bool {
	return d.Compare(other) > 0
}

// Time retorna a meia-noite do dia no fuso informado
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
