package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected Day
	}{
		{
			name:     "ignora a hora do dia",
			input:    time.Date(2024, 1, 15, 23, 59, 59, 999, time.UTC),
			expected: Day{Year: 2024, Month: time.January, Day: 15},
		},
		{
			name:     "usa o fuso do próprio horário",
			input:    time.Date(2024, 1, 1, 1, 0, 0, 0, tokyo),
			expected: Day{Year: 2024, Month: time.January, Day: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayOf(tt.input))
		})
	}
}

func TestDay_Compare(t *testing.T) {
	a := Day{Year: 2023, Month: time.December, Day: 31}
	b := Day{Year: 2024, Month: time.January, Day: 1}
	c := Day{Year: 2024, Month: time.February, Day: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, b.Compare(Day{Year: 2024, Month: time.January, Day: 1}))
	assert.True(t, c.After(a))
}

func TestDay_StringAndTime(t *testing.T) {
	d := Day{Year: 2024, Month: time.March, Day: 5}
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d.Time(time.UTC))
}
