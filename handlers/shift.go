package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	shiftRepo "trimly/database/repository/shift"
	"trimly/services/schedule"
	"trimly/utils"
)

// ListShifts returns shifts filtered by branch, barber and date range.
func ListShifts(svc schedule.ShiftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := shiftRepo.ShiftFilter{
			BranchID: c.Query("branchId"),
			BarberID: c.Query("barberId"),
			DateFrom: c.Query("dateFrom"),
			DateTo:   c.Query("dateTo"),
		}
		shifts, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": shifts})
	}
}

// CreateShift schedules a working block for a barber.
func CreateShift(svc schedule.ShiftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.CreateShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		shift, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": shift})
	}
}

// UpdateShift applies partial overrides to an existing shift.
func UpdateShift(svc schedule.ShiftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.UpdateShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		shift, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": shift})
	}
}

// DeleteShift removes a shift.
func DeleteShift(svc schedule.ShiftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
