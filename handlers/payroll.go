package handlers

import (
	"errors"
	"net/http"
	"time"

	"sweetdots/services/payroll"
	"sweetdots/services/schedule"

	"github.com/gin-gonic/gin"
)

// PayrollHandler serves the pay-period view and the pay estimator.
type PayrollHandler struct {
	Service schedule.Service
	Now     func() time.Time
}

// NewPayrollHandler returns a new PayrollHandler.
func NewPayrollHandler(svc schedule.Service) *PayrollHandler {
	return &PayrollHandler{Service: svc, Now: time.Now}
}

// GetPayPeriodHandler returns the current biweekly period end, payday and
// days until payday.
func (h *PayrollHandler) GetPayPeriodHandler(c *gin.Context) {
	c.JSON(http.StatusOK, payroll.CurrentPeriod(h.Now()))
}

type estimateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Sheet       string  `json:"sheet"`
	HourlyRate  float64 `json:"hourlyRate" binding:"min=0"`
	TipsPerHour float64 `json:"tipsPerHour" binding:"min=0"`
}

// EstimatePayHandler computes an employee's weekly pay estimate from their
// scheduled hours and the submitted rates.
func (h *PayrollHandler) EstimatePayHandler(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	emp, err := h.Service.EmployeeWeek(c.Request.Context(), req.Sheet, req.Name, false)
	if err != nil {
		if errors.Is(err, schedule.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found: " + req.Name})
			return
		}
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, payroll.Estimate(emp.WeeklyHours, req.HourlyRate, req.TipsPerHour))
}
