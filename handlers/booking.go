package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apptRepo "trimly/database/repository/appointment"
	"trimly/services/booking"
	"trimly/utils"
)

// StartSession opens a booking session holding the requested slot.
func StartSession(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.SessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		session, err := svc.StartSession(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": session})
	}
}

// ConfirmBooking turns a held session into an appointment.
func ConfirmBooking(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SessionID string `json:"sessionId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		appt, err := svc.Confirm(c.Request.Context(), req.SessionID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.IncAppointmentsCreated()
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": appt})
	}
}

// CancelSession releases a held slot before confirmation.
func CancelSession(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ListAppointments returns confirmed appointments filtered by branch,
// barber and date.
func ListAppointments(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := apptRepo.AppointmentFilter{
			BranchID: c.Query("branchId"),
			BarberID: c.Query("barberId"),
			Date:     c.Query("date"),
		}
		appts, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": appts})
	}
}

// DeleteAppointment cancels a confirmed appointment.
func DeleteAppointment(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
