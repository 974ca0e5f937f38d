package handlers

import (
	"github.com/gin-gonic/gin"

	"trimly/services/availability"
	"trimly/services/booking"
	"trimly/services/schedule"

	barberRepoPkg "trimly/database/repository/barber"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public endpoints
	GetAvailabilityHandler   gin.HandlerFunc
	GetAvailableDatesHandler gin.HandlerFunc
	ListBarbersHandler       gin.HandlerFunc
	StartSessionHandler      gin.HandlerFunc
	ConfirmBookingHandler    gin.HandlerFunc
	CancelSessionHandler     gin.HandlerFunc

	// Admin endpoints
	ListShiftsHandler        gin.HandlerFunc
	CreateShiftHandler       gin.HandlerFunc
	UpdateShiftHandler       gin.HandlerFunc
	DeleteShiftHandler       gin.HandlerFunc
	ListLeavesHandler        gin.HandlerFunc
	CreateLeaveHandler       gin.HandlerFunc
	UpdateLeaveStatusHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc
	CreateBarberHandler      gin.HandlerFunc
}

// NewHandlerBundle wires the services into their handlers.
func NewHandlerBundle(
	engine availability.Engine,
	shifts schedule.ShiftService,
	leaves schedule.LeaveService,
	bookings booking.BookingService,
	barbers barberRepoPkg.BarberRepository,
) *HandlerBundle {
	return &HandlerBundle{
		GetAvailabilityHandler:   GetAvailability(engine),
		GetAvailableDatesHandler: GetAvailableDates(engine),
		ListBarbersHandler:       ListBarbers(barbers),
		StartSessionHandler:      StartSession(bookings),
		ConfirmBookingHandler:    ConfirmBooking(bookings),
		CancelSessionHandler:     CancelSession(bookings),

		ListShiftsHandler:        ListShifts(shifts),
		CreateShiftHandler:       CreateShift(shifts),
		UpdateShiftHandler:       UpdateShift(shifts),
		DeleteShiftHandler:       DeleteShift(shifts),
		ListLeavesHandler:        ListLeaves(leaves),
		CreateLeaveHandler:       CreateLeave(leaves),
		UpdateLeaveStatusHandler: UpdateLeaveStatus(leaves),
		ListAppointmentsHandler:  ListAppointments(bookings),
		DeleteAppointmentHandler: DeleteAppointment(bookings),
		CreateBarberHandler:      CreateBarber(barbers),
	}
}
