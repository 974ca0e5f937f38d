package apptRepo

import (
	"context"

	"trimly/models"
)

// AppointmentFilter narrows List results. Empty fields are ignored.
type AppointmentFilter struct {
	BranchID string
	BarberID string
	Date     string
}

// AppointmentRepository is the booking store. A unique compound index on
// (barberId, branchId, date, time) makes double-booking prevention strict:
// the second of two racing inserts gets repository.ErrSlotTaken.
type AppointmentRepository interface {
	List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	// BookedTimes returns the set of "HH:MM" times already taken for the
	// given barber, branch and date.
	BookedTimes(ctx context.Context, barberID, branchID, date string) (map[string]bool, error)
}
