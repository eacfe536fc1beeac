package handlers

import (
	"errors"
	"net/http"

	"sweetdots/services/schedule"
	"sweetdots/services/sheets"
	"sweetdots/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondLoadError maps schedule-load failures onto HTTP statuses. Missing
// configuration means the service cannot work at all; everything upstream
// (bad status, unusable payload, unparseable grid) is reported as a bad
// gateway so the client can offer a retry.
func respondLoadError(c *gin.Context, err error) {
	var (
		configErr  sheets.ConfigMissingError
		statusErr  sheets.HTTPStatusError
		payloadErr sheets.MalformedPayloadError
		gridErr    schedule.MalformedGridError
		slotErr    schedule.MalformedSlotError
	)

	switch {
	case errors.As(err, &configErr):
		utils.JSONError(c, http.StatusServiceUnavailable, "Schedule source is not configured", configErr.Error())
	case errors.As(err, &statusErr):
		utils.JSONError(c, http.StatusBadGateway, "Schedule source request failed", statusErr.Error())
	case errors.As(err, &payloadErr):
		utils.JSONError(c, http.StatusBadGateway, "Schedule source returned an unusable payload", payloadErr.Error())
	case errors.As(err, &gridErr):
		utils.JSONError(c, http.StatusBadGateway, "Week grid could not be ingested", gridErr.Error())
	case errors.As(err, &slotErr):
		utils.JSONError(c, http.StatusBadGateway, "Week grid contains a malformed slot", slotErr.Error())
	default:
		getLogger(c).Error("Failed to load schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
	}
}
