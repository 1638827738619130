// Package purchases persists completed purchase records, one per product id.
package purchases

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
}

// NewSQLiteRepository returns a repository bound to the given gateway.
func NewSQLiteRepository(gw *store.Gateway) *SQLiteRepository {
	return &SQLiteRepository{gw: gw}
}

// Save upserts the record by product id.
func (r *SQLiteRepository) Save(ctx context.Context, p *models.Purchase) error {
	return r.gw.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO purchases (product_id, token, ts, status)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(product_id) DO UPDATE SET token = excluded.token,
				ts = excluded.ts,
				status = excluded.status`
		_, err := tx.ExecContext(ctx, query,
			p.ProductID, p.Token, p.Timestamp.UnixMilli(), string(p.Status))
		if err != nil {
			return fmt.Errorf("failed to upsert purchase: %w", err)
		}
		return nil
	})
}

// Find returns the purchase for productID or common.ErrNotFound.
func (r *SQLiteRepository) Find(ctx context.Context, productID string) (*models.Purchase, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT product_id, token, ts, status FROM purchases WHERE product_id = ?`
	row := db.QueryRowContext(ctx, query, productID)

	p, err := scanPurchase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select purchase: %w", err)
	}
	return p, nil
}

// GetAll lists every purchase record.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Purchase, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT product_id, token, ts, status FROM purchases`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}
	defer rows.Close()

	var result []models.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPurchase(row scanner) (*models.Purchase, error) {
	var p models.Purchase
	var ts int64
	var status string
	if err := row.Scan(&p.ProductID, &p.Token, &ts, &status); err != nil {
		return nil, err
	}
	p.Timestamp = time.UnixMilli(ts)
	p.Status = models.PurchaseStatus(status)
	return &p, nil
}
