package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDay(t *testing.T) {
	cases := map[string]Day{
		"Monday":            Monday,
		"monday 1/19":       Monday,
		"Wed (Wednesday)":   Wednesday,
		"SATURDAY specials": Saturday,
	}
	for input, want := range cases {
		day, ok := MatchDay(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, day, input)
	}

	for _, input := range []string{"Mon", "Tues", "Time", ""} {
		_, ok := MatchDay(input)
		assert.False(t, ok, input)
	}
}

func TestDayIndex(t *testing.T) {
	assert.Equal(t, 0, DayIndex(Monday))
	assert.Equal(t, 6, DayIndex(Sunday))
	assert.Equal(t, -1, DayIndex(Day("Funday")))
}
