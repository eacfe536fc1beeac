package handlers

import (
	"errors"
	"net/http"

	"sweetdots/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the weekly schedule views.
type ScheduleHandler struct {
	Service schedule.Service
}

// NewScheduleHandler returns a new ScheduleHandler.
func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetWeeksHandler lists the available week sheets in navigation order.
func (h *ScheduleHandler) GetWeeksHandler(c *gin.Context) {
	weeks, err := h.Service.AvailableWeeks(c.Request.Context())
	if err != nil {
		respondLoadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

// GetScheduleHandler returns the full schedule view for one week. The
// optional "sheet" query selects the week; "refresh=true" bypasses the
// grid cache.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	sheetName := c.Query("sheet")
	refresh := c.Query("refresh") == "true"

	view, err := h.Service.LoadSchedule(c.Request.Context(), sheetName, refresh)
	if err != nil {
		respondLoadError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetEmployeeHandler returns a single employee's week and contact details.
func (h *ScheduleHandler) GetEmployeeHandler(c *gin.Context) {
	name := c.Param("name")
	sheetName := c.Query("sheet")

	emp, err := h.Service.EmployeeWeek(c.Request.Context(), sheetName, name, false)
	if err != nil {
		if errors.Is(err, schedule.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found: " + name})
			return
		}
		respondLoadError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}
