package projects

import (
	"context"

	"github.com/zedbuild/buildcalc/internal/models"
)

// Repository stores saved projects. A save with a zero ID inserts and
// returns the store-assigned key; a save with an existing ID overwrites in
// place.
type Repository interface {
	// Save upserts the project and returns its key (assigned on insert).
	Save(ctx context.Context, p *models.Project) (int64, error)

	// ListAll returns every project ordered by LastModified descending.
	// The ordering is a repository contract, computed after fetch, not a
	// store-native guarantee.
	ListAll(ctx context.Context) ([]models.Project, error)

	// Find returns the project by key, or common.ErrNotFound.
	Find(ctx context.Context, id int64) (*models.Project, error)

	// Remove deletes the project by key; common.ErrNotFound when absent.
	Remove(ctx context.Context, id int64) error
}
