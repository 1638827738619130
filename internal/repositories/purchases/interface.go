package purchases

import (
	"context"

	"github.com/zedbuild/buildcalc/internal/models"
)

// Repository is the durable source of truth for entitlement. The collection
// is keyed by product id, so Save is an upsert: acknowledging the same
// product again replaces the record instead of duplicating it.
type Repository interface {
	// Save inserts or replaces the purchase record for its product id.
	Save(ctx context.Context, p *models.Purchase) error

	// Find returns the record for a product id, or common.ErrNotFound when
	// no purchase exists. Absence is benign, not a failure.
	Find(ctx context.Context, productID string) (*models.Purchase, error)

	// GetAll returns every purchase record.
	GetAll(ctx context.Context) ([]models.Purchase, error)
}
