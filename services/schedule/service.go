package schedule

import (
	"context"
	"errors"
	"time"

	"sweetdots/config"
	"sweetdots/models"
	"sweetdots/services/contacts"
	"sweetdots/services/sheets"

	"go.uber.org/zap"
)

// ErrEmployeeNotFound is returned when a requested employee does not appear
// in the selected week's grid.
var ErrEmployeeNotFound = errors.New("employee not found in this week's schedule")

// Service assembles complete schedule views from the remote spreadsheet.
type Service interface {
	AvailableWeeks(ctx context.Context) ([]string, error)
	LoadSchedule(ctx context.Context, sheetName string, refresh bool) (*models.ScheduleView, error)
	EmployeeWeek(ctx context.Context, sheetName, name string, refresh bool) (*models.EmployeeSchedule, error)
}

// DefaultScheduleService is the production implementation. Every load
// rebuilds the view from scratch; nothing carries over between requests.
type DefaultScheduleService struct {
	Sheets sheets.Client
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AvailableWeeks lists the week sheets in navigation order.
func (s *DefaultScheduleService) AvailableWeeks(ctx context.Context) ([]string, error) {
	return s.Sheets.ListWeekSheets(ctx)
}

// LoadSchedule fetches the week grid, ingests it and joins contact details.
// An empty sheetName selects the first available week. A failed contacts
// fetch degrades to synthesized defaults; a failed grid fetch does not.
func (s *DefaultScheduleService) LoadSchedule(ctx context.Context, sheetName string, refresh bool) (*models.ScheduleView, error) {
	if sheetName == "" {
		weeks, err := s.Sheets.ListWeekSheets(ctx)
		if err != nil {
			return nil, err
		}
		if len(weeks) > 0 {
			sheetName = weeks[0]
		} else {
			sheetName = config.AppConfig.DefaultSheetName
		}
		if sheetName == "" {
			return nil, sheets.MalformedPayloadError{Reason: "spreadsheet has no week sheets"}
		}
	}

	rows, err := s.Sheets.FetchGrid(ctx, sheetName, refresh)
	if err != nil {
		return nil, err
	}
	result, err := IngestGrid(rows)
	if err != nil {
		return nil, err
	}

	resolved := contacts.Resolve(s.fetchRoster(ctx, refresh), result.Employees, s.Logger)

	view := &models.ScheduleView{
		SheetTitle:  sheetName,
		WeekLabel:   result.WeekLabel,
		Days:        models.WeekDays,
		ClosedDays:  result.ClosedDays,
		Employees:   make([]models.EmployeeSchedule, 0, len(result.Employees)),
		LastUpdated: s.now(),
	}

	for i, name := range result.Employees {
		contact := resolved[name]
		week := result.Schedule[name]

		shifts := make(map[models.Day][]models.ShiftView, len(week))
		for day, slots := range week {
			views := make([]models.ShiftView, 0, len(slots))
			for _, slot := range slots {
				views = append(views, models.ShiftView{
					Start:   slot.Start,
					End:     slot.End,
					Display: FormatShift(slot),
					Hours:   CalculateHours([]models.TimeSlot{slot}),
				})
			}
			shifts[day] = views
		}

		view.Employees = append(view.Employees, models.EmployeeSchedule{
			Employee: models.Employee{
				ID:           i + 1,
				Name:         name,
				FullName:     contact.FullName,
				Phone:        contact.Phone,
				Email:        contact.Email,
				Availability: contact.Availability,
				Photo:        contact.Photo,
			},
			WeeklyHours: WeeklyHours(week),
			Shifts:      shifts,
		})
	}

	return view, nil
}

// EmployeeWeek returns a single employee's row of the schedule view.
func (s *DefaultScheduleService) EmployeeWeek(ctx context.Context, sheetName, name string, refresh bool) (*models.EmployeeSchedule, error) {
	view, err := s.LoadSchedule(ctx, sheetName, refresh)
	if err != nil {
		return nil, err
	}
	for i := range view.Employees {
		if view.Employees[i].Name == name {
			return &view.Employees[i], nil
		}
	}
	return nil, ErrEmployeeNotFound
}

// fetchRoster pulls the contacts sheet. Any failure is logged and reported
// as "no roster", never as a load failure.
func (s *DefaultScheduleService) fetchRoster(ctx context.Context, refresh bool) [][]string {
	rosterSheet := config.AppConfig.ContactsSheetName
	if rosterSheet == "" {
		return nil
	}
	rows, err := s.Sheets.FetchGrid(ctx, rosterSheet, refresh)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("Contacts sheet unavailable; falling back to defaults",
				zap.String("sheet", rosterSheet), zap.Error(err))
		}
		return nil
	}
	return rows
}
