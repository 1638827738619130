// Package projects persists saved, reloadable calculator projects.
package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
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

// Save inserts the project when p.ID is zero, otherwise overwrites the
// existing row. The assigned (or existing) key is returned.
func (r *SQLiteRepository) Save(ctx context.Context, p *models.Project) (int64, error) {
	results, err := json.Marshal(p.Results)
	if err != nil {
		return 0, fmt.Errorf("failed to encode results: %w", err)
	}
	inputs := p.Inputs
	if inputs == nil {
		inputs = json.RawMessage(`{}`)
	}

	id := p.ID
	err = r.gw.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if p.ID == 0 {
			query := `INSERT INTO projects (name, type, ts, last_modified, inputs, results, description)
				VALUES (?, ?, ?, ?, ?, ?, ?)`
			res, err := tx.ExecContext(ctx, query,
				p.Name, string(p.Type), p.Timestamp.UnixMilli(), p.LastModified.UnixMilli(),
				string(inputs), string(results), p.Description)
			if err != nil {
				return fmt.Errorf("failed to insert project: %w", err)
			}
			id, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get assigned id: %w", err)
			}
			return nil
		}

		query := `INSERT INTO projects (id, name, type, ts, last_modified, inputs, results, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				type = excluded.type,
				last_modified = excluded.last_modified,
				inputs = excluded.inputs,
				results = excluded.results,
				description = excluded.description`
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.Name, string(p.Type), p.Timestamp.UnixMilli(), p.LastModified.UnixMilli(),
			string(inputs), string(results), p.Description)
		if err != nil {
			return fmt.Errorf("failed to upsert project: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListAll fetches every project and sorts most-recently-modified first.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, type, ts, last_modified, inputs, results, description FROM projects`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastModified.After(result[j].LastModified)
	})
	return result, nil
}

// Find returns the project by key or common.ErrNotFound.
func (r *SQLiteRepository) Find(ctx context.Context, id int64) (*models.Project, error) {
	db, err := r.gw.DB()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, type, ts, last_modified, inputs, results, description
		FROM projects WHERE id = ?`
	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select project: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, common.ErrNotFound
	}
	return scanProject(rows)
}

// Remove deletes the project by key.
func (r *SQLiteRepository) Remove(ctx context.Context, id int64) error {
	return r.gw.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if ra == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

func scanProject(rows *sql.Rows) (*models.Project, error) {
	var p models.Project
	var typ, inputs, results string
	var ts, lastModified int64
	if err := rows.Scan(&p.ID, &p.Name, &typ, &ts, &lastModified, &inputs, &results, &p.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	p.Type = models.CalcType(typ)
	p.Timestamp = time.UnixMilli(ts)
	p.LastModified = time.UnixMilli(lastModified)
	p.Inputs = json.RawMessage(inputs)
	if err := json.Unmarshal([]byte(results), &p.Results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return &p, nil
}
