package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sweetdots/models"
	"sweetdots/services/schedule"
	"sweetdots/services/sheets"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService returns a fixed schedule view.
type stubService struct {
	view *models.ScheduleView
	err  error
}

func (s *stubService) AvailableWeeks(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{s.view.SheetTitle}, nil
}

func (s *stubService) LoadSchedule(ctx context.Context, sheetName string, refresh bool) (*models.ScheduleView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubService) EmployeeWeek(ctx context.Context, sheetName, name string, refresh bool) (*models.EmployeeSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.view.Employees {
		if s.view.Employees[i].Name == name {
			return &s.view.Employees[i], nil
		}
	}
	return nil, schedule.ErrEmployeeNotFound
}

func stubView() *models.ScheduleView {
	return &models.ScheduleView{
		SheetTitle: "THIS WEEK 1/19-1/25",
		WeekLabel:  "Week of 1/19",
		Days:       models.WeekDays,
		Employees: []models.EmployeeSchedule{
			{
				Employee:    models.Employee{ID: 1, Name: "Sophia"},
				WeeklyHours: 16,
			},
		},
	}
}

func payrollRouter(svc schedule.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPayrollHandler(svc)
	h.Now = func() time.Time { return time.Date(2026, time.January, 19, 12, 0, 0, 0, time.Local) }
	r.GET("/api/payperiod", h.GetPayPeriodHandler)
	r.POST("/api/payperiod/estimate", h.EstimatePayHandler)
	return r
}

func TestGetPayPeriodHandler(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payperiod", nil)
	payrollRouter(&stubService{view: stubView()}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var period models.PayPeriod
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &period))
	assert.Equal(t, 1, period.PeriodEnd.Day())
	assert.Equal(t, time.February, period.PeriodEnd.Month())
	assert.Equal(t, 4, period.PayDay.Day())
}

func TestEstimatePayHandler(t *testing.T) {
	body := `{"name":"Sophia","hourlyRate":15,"tipsPerHour":10}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payperiod/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	payrollRouter(&stubService{view: stubView()}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var est models.PayEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.Equal(t, 240.0, est.BasePay)
	assert.Equal(t, 160.0, est.EstimatedTips)
	assert.Equal(t, 400.0, est.TotalEarnings)
}

func TestEstimatePayHandlerUnknownEmployee(t *testing.T) {
	body := `{"name":"Nobody","hourlyRate":15}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payperiod/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	payrollRouter(&stubService{view: stubView()}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEstimatePayHandlerBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payperiod/estimate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	payrollRouter(&stubService{view: stubView()}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandlersMapUpstreamErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sh := NewScheduleHandler(&stubService{err: sheets.HTTPStatusError{Status: 503}})
	r.GET("/api/schedule", sh.GetScheduleHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Schedule source request failed", body["message"])
	assert.Contains(t, body["details"], "503")
}

func TestScheduleHandlerMissingConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sh := NewScheduleHandler(&stubService{err: sheets.ConfigMissingError{Detail: "API key not set"}})
	r.GET("/api/schedule", sh.GetScheduleHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Schedule source is not configured", body["message"])
	assert.Contains(t, body["details"], "API key not set")
}
