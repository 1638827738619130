// Package materialprices persists the per-material price book.
package materialprices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/dbx"
	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/store"
)

// SQLiteRepository implements Repository over the store gateway.
type SQLiteRepository struct {
	gw *store.Gateway
	// now is a seam so tests can pin LastUpdated.
	now func() time.Time
}

// NewSQLiteRepository returns a repository bound to the given gateway.
func NewSQLiteRepository(gw *store.Gateway) *SQLiteRepository {
	return &SQLiteRepository{gw: gw, now: time.Now}
}

// Save validates the price, then upserts by material name.
func (r *SQLiteRepository) Save(ctx context.Context, material string, price float64, unit string) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative, got %v", common.ErrInvalidArgument, price)
	}
	if material == "" {
		return fmt.Errorf("%w: material name is required", common.ErrInvalidArgument)
	}

	return r.gw.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO material_prices (material, price, unit, last_updated)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(material) DO UPDATE SET price = excluded.price,
				unit = excluded.unit,
				last_updated = excluded.last_updated`
		_, err := tx.ExecContext(ctx, query, material, price, unit, r.now().UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to upsert material price: %w", err)
		}
		return nil
	})
}

// Find returns the price record for a material or common.ErrNotFound.
func (r *SQLiteRepository) Find(ctx context.Context, material string) (*models.MaterialPrice, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT material, price, unit, last_updated FROM material_prices WHERE material = ?`
	row := db.QueryRowContext(ctx, query, material)

	var p models.MaterialPrice
	var lastUpdated int64
	if err := row.Scan(&p.Material, &p.Price, &p.Unit, &lastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select material price: %w", err)
	}
	p.LastUpdated = time.UnixMilli(lastUpdated)
	return &p, nil
}

// FindAll lists every saved price.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]models.MaterialPrice, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT material, price, unit, last_updated FROM material_prices`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select material prices: %w", err)
	}
	defer rows.Close()

	var result []models.MaterialPrice
	for rows.Next() {
		var p models.MaterialPrice
		var lastUpdated int64
		if err := rows.Scan(&p.Material, &p.Price, &p.Unit, &lastUpdated); err != nil {
			return nil, err
		}
		p.LastUpdated = time.UnixMilli(lastUpdated)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
