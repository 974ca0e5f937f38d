package leaveRepo

import (
	"context"

	"trimly/models"
)

// LeaveFilter narrows List results. Empty fields are ignored.
type LeaveFilter struct {
	BarberID string
	Status   string
}

// LeaveRepository is the leave store. Creation never checks for overlap;
// a barber may file any number of overlapping leave requests.
type LeaveRepository interface {
	List(ctx context.Context, filter LeaveFilter) ([]models.Leave, error)
	Create(ctx context.Context, leave *models.Leave) error
	// UpdateStatus sets the status and returns the updated leave. Setting
	// the same status again is an idempotent overwrite.
	UpdateStatus(ctx context.Context, id, status string) (*models.Leave, error)
	ListApprovedForDay(ctx context.Context, barberID, date string) ([]models.Leave, error)
	// ApprovedDates returns the distinct dates >= fromDate on which the
	// barber has any approved leave.
	ApprovedDates(ctx context.Context, barberID, fromDate string) ([]string, error)
}
