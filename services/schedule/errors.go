package schedule

import "fmt"

// MalformedSlotError reports a time-slot label that is not "HH:MM-HH:MM"
// with start before end.
type MalformedSlotError struct {
	Slot   string
	Reason string
}

func (e MalformedSlotError) Error() string {
	return fmt.Sprintf("malformed time slot %q: %s", e.Slot, e.Reason)
}

// MalformedGridError reports a fetched grid that cannot be ingested at all.
type MalformedGridError struct {
	Reason string
}

func (e MalformedGridError) Error() string {
	return "sheet is empty or improperly formatted: " + e.Reason
}
