// Package calculations persists the append-only calculation history.
package calculations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

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

// Append inserts the record and returns the assigned auto-increment key.
func (r *SQLiteRepository) Append(ctx context.Context, c *models.Calculation) (int64, error) {
	results, err := json.Marshal(c.Results)
	if err != nil {
		return 0, fmt.Errorf("failed to encode results: %w", err)
	}
	inputs := c.Inputs
	if inputs == nil {
		inputs = json.RawMessage(`{}`)
	}

	var id int64
	err = r.gw.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO calculations (type, ts, inputs, results) VALUES (?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, query,
			string(c.Type), c.Timestamp.UnixMilli(), string(inputs), string(results))
		if err != nil {
			return fmt.Errorf("failed to insert calculation: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get assigned id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll returns the whole log.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Calculation, error) {
	query := `SELECT id, type, ts, inputs, results FROM calculations`
	return r.list(ctx, query)
}

// ListByType returns records of one kind, served by the type index.
func (r *SQLiteRepository) ListByType(ctx context.Context, t models.CalcType) ([]models.Calculation, error) {
	query := `SELECT id, type, ts, inputs, results FROM calculations WHERE type = ?`
	return r.list(ctx, query, string(t))
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Calculation, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select calculations: %w", err)
	}
	defer rows.Close()

	var result []models.Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanCalculation(rows *sql.Rows) (*models.Calculation, error) {
	var c models.Calculation
	var typ, inputs, results string
	var ts int64
	if err := rows.Scan(&c.ID, &typ, &ts, &inputs, &results); err != nil {
		return nil, err
	}
	c.Type = models.CalcType(typ)
	c.Timestamp = time.UnixMilli(ts)
	c.Inputs = json.RawMessage(inputs)
	if err := json.Unmarshal([]byte(results), &c.Results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return &c, nil
}
