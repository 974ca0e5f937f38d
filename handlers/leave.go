package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	leaveRepo "trimly/database/repository/leave"
	"trimly/services/schedule"
	"trimly/utils"
)

// ListLeaves returns leave requests filtered by barber and status.
func ListLeaves(svc schedule.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := leaveRepo.LeaveFilter{
			BarberID: c.Query("barberId"),
			Status:   c.Query("status"),
		}
		leaves, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": leaves})
	}
}

// CreateLeave files a leave request; it starts out pending.
func CreateLeave(svc schedule.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schedule.CreateLeaveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		leave, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": leave})
	}
}

// UpdateLeaveStatus approves or denies a leave request.
func UpdateLeaveStatus(svc schedule.LeaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		leave, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": leave})
	}
}
