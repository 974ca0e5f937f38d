package shiftRepo

import (
	"context"

	"trimly/models"
)

// ShiftFilter narrows List results. Empty fields are ignored.
type ShiftFilter struct {
	BranchID string
	BarberID string
	DateFrom string // inclusive, "2006-01-02"
	DateTo   string // inclusive
}

// ShiftRepository is the shift store. Create and Update run the sibling
// overlap check and the write inside one transaction, so two concurrent
// requests cannot both pass the check.
type ShiftRepository interface {
	List(ctx context.Context, filter ShiftFilter) ([]models.Shift, error)
	GetByID(ctx context.Context, id string) (*models.Shift, error)
	ListForDay(ctx context.Context, barberID, branchID, date string) ([]models.Shift, error)
	// Create persists the shift, returning repository.ErrShiftOverlap when
	// its interval overlaps a sibling shift of the same (barber, date).
	Create(ctx context.Context, shift *models.Shift) error
	// Update replaces the shift, re-running the overlap check against all
	// siblings except the shift itself.
	Update(ctx context.Context, shift *models.Shift) error
	Delete(ctx context.Context, id string) error
	// DistinctDates returns the distinct shift dates >= fromDate for the
	// given barber and branch.
	DistinctDates(ctx context.Context, barberID, branchID, fromDate string) ([]string, error)
}
