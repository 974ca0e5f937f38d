package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trimly/database/repository"
	"trimly/services/booking"
	"trimly/services/schedule"
	"trimly/utils"
)

// respondError maps service and repository errors onto HTTP statuses.
// Unknown errors get a generic 500; the detail stays in the log.
func respondError(c *gin.Context, err error) {
	var vErr *schedule.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", vErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
	case errors.Is(err, repository.ErrShiftOverlap),
		errors.Is(err, repository.ErrSlotTaken),
		errors.Is(err, booking.ErrSlotHeld),
		errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
			Details: "An unexpected error occurred. Please try again later.",
		})
	}
}
