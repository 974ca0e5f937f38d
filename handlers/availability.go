package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trimly/services/availability"
	"trimly/utils"
)

// GetAvailability returns the slot grid for one date, barber and branch.
// Omitting barberId (or passing "any") means no preference.
func GetAvailability(engine availability.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", "date is required")
			return
		}
		barberID := c.Query("barberId")
		branchID := c.Query("branchId")

		day, err := engine.ComputeDaySlots(c.Request.Context(), date, barberID, branchID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": day})
	}
}

// GetAvailableDates returns the bookable future dates for one barber.
func GetAvailableDates(engine availability.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		barberID := c.Query("barberId")
		if barberID == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", "barberId is required")
			return
		}
		branchID := c.Query("branchId")

		dates, err := engine.ResolveDates(c.Request.Context(), barberID, branchID)
		if err != nil {
			respondError(c, err)
			return
		}
		if dates == nil {
			dates = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"barberId":       barberID,
			"branchId":       branchID,
			"availableDates": dates,
		}})
	}
}
