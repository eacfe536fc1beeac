package schedule

import (
	"sort"

	"sweetdots/models"
)

// ConsolidateShifts merges adjacent half-hour slots into contiguous shifts,
// per employee per day. Slots are sorted by start time (stable, so slots with
// equal starts keep their grid order) and merged greedily whenever one slot
// ends exactly where the next begins. Days with no slots are dropped from
// the day mapping entirely.
func ConsolidateShifts(raw models.RawSchedule) models.WeekSchedule {
	consolidated := make(models.WeekSchedule, len(raw))

	for name, days := range raw {
		consolidated[name] = make(map[models.Day][]models.TimeSlot, len(days))

		for day, slots := range days {
			if len(slots) == 0 {
				continue
			}

			sorted := make([]models.TimeSlot, len(slots))
			copy(sorted, slots)
			sort.SliceStable(sorted, func(i, j int) bool {
				return TimeToMinutes(sorted[i].Start) < TimeToMinutes(sorted[j].Start)
			})

			merged := make([]models.TimeSlot, 0, len(sorted))
			current := sorted[0]
			for _, slot := range sorted[1:] {
				if current.End == slot.Start {
					current.End = slot.End
				} else {
					merged = append(merged, current)
					current = slot
				}
			}
			merged = append(merged, current)

			consolidated[name][day] = merged
		}
	}

	return consolidated
}

// CalculateHours sums the length of a shift list in fractional hours.
func CalculateHours(shifts []models.TimeSlot) float64 {
	totalMinutes := 0
	for _, shift := range shifts {
		totalMinutes += TimeToMinutes(shift.End) - TimeToMinutes(shift.Start)
	}
	return float64(totalMinutes) / 60
}

// WeeklyHours totals an employee's consolidated week.
func WeeklyHours(week map[models.Day][]models.TimeSlot) float64 {
	total := 0.0
	for _, shifts := range week {
		total += CalculateHours(shifts)
	}
	return total
}
