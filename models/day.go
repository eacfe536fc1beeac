package models

import (
	"regexp"
	"strings"
)

// Day is one of the seven fixed weekday names, Monday first. Using a closed
// enumeration instead of free-text day names keeps schedule lookups off
// whatever text the sheet author typed into the header row.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// WeekDays lists all days in display order.
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayPattern = regexp.MustCompile(`(?i)(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)

var canonicalDays = map[string]Day{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// MatchDay extracts a weekday name embedded anywhere in a header cell, e.g.
// "Mon (Monday 1/19)". It returns false when the cell names no weekday.
func MatchDay(cell string) (Day, bool) {
	m := dayPattern.FindString(cell)
	if m == "" {
		return "", false
	}
	day, ok := canonicalDays[strings.ToLower(m)]
	return day, ok
}

// DayIndex returns the position of d within WeekDays, or -1.
func DayIndex(d Day) int {
	for i, day := range WeekDays {
		if day == d {
			return i
		}
	}
	return -1
}
