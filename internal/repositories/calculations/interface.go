package calculations

import (
	"context"

	"github.com/zedbuild/buildcalc/internal/models"
)

// Repository exposes the calculation log. The log is append-only: update
// and delete are deliberately absent from this interface so the invariant
// is enforced at the API boundary, not by convention.
type Repository interface {
	// Append inserts a new record and returns the store-assigned key.
	Append(ctx context.Context, c *models.Calculation) (int64, error)

	// GetAll returns the whole log.
	GetAll(ctx context.Context) ([]models.Calculation, error)

	// ListByType returns records of one calculation kind via the secondary
	// index on type.
	ListByType(ctx context.Context, t models.CalcType) ([]models.Calculation, error)
}
