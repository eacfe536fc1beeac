package models

import "time"

// TimeSlot is one interval in 24-hour "HH:MM" form. A raw slot covers a
// single grid row; a consolidated slot covers a whole contiguous shift.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RawSchedule accumulates one slot per grid row an employee appears in,
// keyed by employee name then day. It only lives for the duration of a
// single ingestion pass; consolidation replaces it.
type RawSchedule map[string]map[Day][]TimeSlot

// WeekSchedule is the canonical consolidated form: employee name -> day ->
// merged, chronologically ordered shifts. Days with no shifts are absent.
type WeekSchedule map[string]map[Day][]TimeSlot

// ShiftView is a consolidated shift decorated for display.
type ShiftView struct {
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Display string  `json:"display"`
	Hours   float64 `json:"hours"`
}

// EmployeeSchedule is one row of the schedule view.
type EmployeeSchedule struct {
	Employee
	WeeklyHours float64             `json:"weeklyHours"`
	Shifts      map[Day][]ShiftView `json:"shifts"`
}

// ScheduleView is the full payload served for one week sheet. It is rebuilt
// wholesale on every load; nothing is merged against a previous view.
type ScheduleView struct {
	SheetTitle  string             `json:"sheetTitle"`
	WeekLabel   string             `json:"weekLabel"`
	Days        []Day              `json:"days"`
	ClosedDays  []Day              `json:"closedDays"`
	Employees   []EmployeeSchedule `json:"employees"`
	LastUpdated time.Time          `json:"lastUpdated"`
}
