package schedule

import (
	"fmt"
	"sort"
	"strings"

	"sweetdots/models"
)

// Result is the structured outcome of one full grid scan. Either the whole
// grid ingests or an error comes back; there is no partial result.
type Result struct {
	WeekLabel  string
	Schedule   models.WeekSchedule
	Employees  []string
	ClosedDays []models.Day
}

// IngestGrid transforms a raw week grid into a consolidated schedule.
// Row 0 carries the free-text week label in its first cell, row 1 the day
// headers, and every later row one time slot: a slot label in column 0 and
// up to seven per-day cells after it. Cells list the employees on duty
// separated by "/"; a cell containing "CLOSED" marks the whole day closed.
func IngestGrid(rows [][]string) (*Result, error) {
	if len(rows) < 3 {
		return nil, MalformedGridError{Reason: fmt.Sprintf("expected at least 3 rows, got %d", len(rows))}
	}

	weekLabel := ""
	if len(rows[0]) > 0 {
		weekLabel = rows[0][0]
	}

	// Columns whose header names no weekday are ignored for the whole scan.
	header := rows[1]
	dayByColumn := make(map[int]models.Day)
	for col := 1; col < len(header) && col <= 7; col++ {
		if day, ok := models.MatchDay(header[col]); ok {
			dayByColumn[col] = day
		}
	}

	raw := make(models.RawSchedule)
	employeeSet := make(map[string]struct{})
	closedSet := make(map[models.Day]struct{})

	for _, row := range rows[2:] {
		if len(row) < 2 {
			continue
		}
		label := row[0]
		if !strings.Contains(label, "-") {
			continue // blank separator or section heading, not a slot row
		}
		slot, err := ParseTimeSlot(label)
		if err != nil {
			return nil, err
		}

		for col := 1; col <= 7 && col < len(row); col++ {
			day, haveDay := dayByColumn[col]
			cell := strings.TrimSpace(row[col])
			if cell == "" || !haveDay {
				continue
			}
			if strings.Contains(strings.ToUpper(cell), "CLOSED") {
				closedSet[day] = struct{}{}
				continue
			}

			for _, name := range strings.Split(cell, "/") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				employeeSet[name] = struct{}{}
				if raw[name] == nil {
					raw[name] = make(map[models.Day][]models.TimeSlot)
				}
				raw[name][day] = append(raw[name][day], slot)
			}
		}
	}

	employees := make([]string, 0, len(employeeSet))
	for name := range employeeSet {
		employees = append(employees, name)
	}
	sort.Strings(employees)

	closed := make([]models.Day, 0, len(closedSet))
	for day := range closedSet {
		closed = append(closed, day)
	}
	sort.Slice(closed, func(i, j int) bool {
		return models.DayIndex(closed[i]) < models.DayIndex(closed[j])
	})

	return &Result{
		WeekLabel:  weekLabel,
		Schedule:   ConsolidateShifts(raw),
		Employees:  employees,
		ClosedDays: closed,
	}, nil
}
