package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"sweetdots/models"
)

// ParseClock converts a 24-hour "HH:MM" clock to minutes since midnight.
func ParseClock(clock string) (int, error) {
	head, tail, found := strings.Cut(clock, ":")
	if !found {
		return 0, fmt.Errorf("clock %q has no colon", clock)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("clock %q has a non-numeric hour", clock)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(tail))
	if err != nil {
		return 0, fmt.Errorf("clock %q has a non-numeric minute", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q is out of range", clock)
	}
	return hours*60 + minutes, nil
}

// ParseTimeSlot splits a slot label on its first hyphen and validates both
// sides. The start must fall strictly before the end.
func ParseTimeSlot(slot string) (models.TimeSlot, error) {
	start, end, found := strings.Cut(slot, "-")
	if !found {
		return models.TimeSlot{}, MalformedSlotError{Slot: slot, Reason: "missing hyphen"}
	}
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	startMin, err := ParseClock(start)
	if err != nil {
		return models.TimeSlot{}, MalformedSlotError{Slot: slot, Reason: err.Error()}
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return models.TimeSlot{}, MalformedSlotError{Slot: slot, Reason: err.Error()}
	}
	if startMin >= endMin {
		return models.TimeSlot{}, MalformedSlotError{Slot: slot, Reason: "start is not before end"}
	}
	return models.TimeSlot{Start: start, End: end}, nil
}

// TimeToMinutes converts an already-validated "HH:MM" clock to minutes since
// midnight. This is the sole ordering and arithmetic key for slots.
func TimeToMinutes(clock string) int {
	minutes, _ := ParseClock(clock)
	return minutes
}

// FormatTime renders a 24-hour clock as "h:MM AM/PM". Midnight and noon
// both render with hour 12.
func FormatTime(clock string) string {
	total := TimeToMinutes(clock)
	hours := total / 60
	minutes := total % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}

// FormatShift renders a slot for display, e.g. "9:00 AM - 5:00 PM".
func FormatShift(slot models.TimeSlot) string {
	return FormatTime(slot.Start) + " - " + FormatTime(slot.End)
}
