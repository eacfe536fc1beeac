package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterWeekTitlesOrdering(t *testing.T) {
	titles := []string{"NEXT 2 WEEKS", "THIS WEEK 1/1-1/7", "NEXT WEEK"}

	assert.Equal(t,
		[]string{"THIS WEEK 1/1-1/7", "NEXT WEEK", "NEXT 2 WEEKS"},
		FilterWeekTitles(titles))
}

func TestFilterWeekTitlesDropsNonWeekSheets(t *testing.T) {
	titles := []string{"CONTACTS", "THIS WEEK 1/19-1/25", "Inventory", "NEXT WEEK"}

	assert.Equal(t,
		[]string{"THIS WEEK 1/19-1/25", "NEXT WEEK"},
		FilterWeekTitles(titles))
}

func TestFilterWeekTitlesNumericOrdering(t *testing.T) {
	titles := []string{"NEXT 3 WEEKS", "NEXT 10 WEEKS", "NEXT 2 WEEKS", "THIS WEEK"}

	assert.Equal(t,
		[]string{"THIS WEEK", "NEXT 2 WEEKS", "NEXT 3 WEEKS", "NEXT 10 WEEKS"},
		FilterWeekTitles(titles))
}

func TestFilterWeekTitlesUnmatchedWeekSortsLast(t *testing.T) {
	titles := []string{"WEEK ARCHIVE", "NEXT WEEK"}

	assert.Equal(t, []string{"NEXT WEEK", "WEEK ARCHIVE"}, FilterWeekTitles(titles))
}
