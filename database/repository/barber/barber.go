package barberRepo

import (
	"context"

	"trimly/models"
)

// BarberRepository is the staff directory. The barber id is the canonical
// identifier everywhere in the system; GetByName exists only so requests
// carrying a display name can be normalized to an id at the edge.
type BarberRepository interface {
	List(ctx context.Context, branchID string) ([]models.Barber, error)
	GetByID(ctx context.Context, id string) (*models.Barber, error)
	GetByName(ctx context.Context, name string) (*models.Barber, error)
	Create(ctx context.Context, barber *models.Barber) error
}
