package materialprices

import (
	"context"

	"github.com/zedbuild/buildcalc/internal/models"
)

// Repository is the local price book, one record per material name.
// Writes are last-writer-wins; there is no merge.
type Repository interface {
	// Save validates price >= 0 and upserts the record for the material.
	// Negative prices fail with common.ErrInvalidArgument and are never
	// persisted.
	Save(ctx context.Context, material string, price float64, unit string) error

	// Find returns the record for a material, or common.ErrNotFound.
	Find(ctx context.Context, material string) (*models.MaterialPrice, error)

	// FindAll returns every saved price.
	FindAll(ctx context.Context) ([]models.MaterialPrice, error)
}
