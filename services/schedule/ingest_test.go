package schedule

import (
	"testing"

	"sweetdots/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekGrid() [][]string {
	return [][]string{
		{"Week of 1/19 - 1/25"},
		{"Time", "Monday 1/19", "Tuesday 1/20", "Wednesday 1/21", "Thursday 1/22", "Friday 1/23", "Saturday 1/24", "Sunday 1/25"},
		{"09:00-09:30", "Sophia/Jacob", "", "Sophia", "", "", "", "CLOSED"},
		{"09:30-10:00", "Sophia", "", "Sophia", "", "", "", "CLOSED"},
		{""},
		{"10:30-11:00", "Jacob", "", "", "", "", "", ""},
	}
}

func TestIngestGrid(t *testing.T) {
	result, err := IngestGrid(weekGrid())
	require.NoError(t, err)

	assert.Equal(t, "Week of 1/19 - 1/25", result.WeekLabel)
	assert.Equal(t, []string{"Jacob", "Sophia"}, result.Employees)

	// Sophia's two adjacent Monday slots merge into one shift.
	assert.Equal(t, slots("09:00", "10:00"), result.Schedule["Sophia"][models.Monday])
	assert.Equal(t, slots("09:00", "10:00"), result.Schedule["Sophia"][models.Wednesday])

	// Jacob shares the first Monday slot and has a detached late shift;
	// the gap at 10:00 keeps the two apart.
	assert.Equal(t, slots("09:00", "09:30", "10:30", "11:00"), result.Schedule["Jacob"][models.Monday])
}

func TestIngestGridMultiOccupantCell(t *testing.T) {
	result, err := IngestGrid(weekGrid())
	require.NoError(t, err)

	assert.Contains(t, result.Schedule["Sophia"], models.Monday)
	assert.Contains(t, result.Schedule["Jacob"], models.Monday)
}

func TestIngestGridClosedDay(t *testing.T) {
	result, err := IngestGrid(weekGrid())
	require.NoError(t, err)

	assert.Equal(t, []models.Day{models.Sunday}, result.ClosedDays)
	for _, emp := range result.Employees {
		assert.NotContains(t, result.Schedule[emp], models.Sunday)
	}
}

func TestIngestGridClosedDaysInWeekOrder(t *testing.T) {
	grid := [][]string{
		{"label"},
		{"Time", "Monday", "Tuesday", "Wednesday"},
		{"09:00-09:30", "CLOSED", "Sophia", "CLOSED"},
	}
	result, err := IngestGrid(grid)
	require.NoError(t, err)

	assert.Equal(t, []models.Day{models.Monday, models.Wednesday}, result.ClosedDays)
}

func TestIngestGridIgnoresUnmatchedColumns(t *testing.T) {
	grid := [][]string{
		{"label"},
		{"Time", "Mon", "Tuesday"}, // "Mon" names no full weekday
		{"09:00-09:30", "Sophia", "Jacob"},
	}
	result, err := IngestGrid(grid)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jacob"}, result.Employees)
	assert.NotContains(t, result.Schedule, "Sophia")
}

func TestIngestGridSkipsNonSlotRows(t *testing.T) {
	grid := [][]string{
		{"label"},
		{"Time", "Monday"},
		{"Lunch rush", "Sophia"}, // no hyphen, not a slot row
		{"09:00-09:30", "Sophia"},
	}
	result, err := IngestGrid(grid)
	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "09:30"), result.Schedule["Sophia"][models.Monday])
}

func TestIngestGridTooShort(t *testing.T) {
	_, err := IngestGrid([][]string{{"label"}, {"Time", "Monday"}})
	require.Error(t, err)
	assert.ErrorAs(t, err, &MalformedGridError{})
}

func TestIngestGridMalformedSlot(t *testing.T) {
	grid := [][]string{
		{"label"},
		{"Time", "Monday"},
		{"09:xx-10:00", "Sophia"},
	}
	_, err := IngestGrid(grid)
	require.Error(t, err)
	assert.ErrorAs(t, err, &MalformedSlotError{})
}
