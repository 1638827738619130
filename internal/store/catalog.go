package store

import (
	"context"
	"database/sql"
	"fmt"
)

// TargetVersion is the schema version the embedded migration series
// produces on a fully migrated database.
const TargetVersion = 2

// KeyStrategy describes how a collection assigns primary keys.
type KeyStrategy string

const (
	// KeyExplicit: the caller supplies the key (e.g. product id).
	KeyExplicit KeyStrategy = "explicit"
	// KeyAutoIncrement: the store assigns a monotonic integer key.
	KeyAutoIncrement KeyStrategy = "autoincrement"
)

// Index declares a secondary lookup field on a collection.
type Index struct {
	Name   string
	Field  string
	Unique bool
}

// Collection declares one named record collection: its table, primary key
// strategy and secondary indexes. The catalog is the authoritative list of
// what the migration series must have created; Gateway.Open verifies it
// after running migrations.
type Collection struct {
	Name       string
	PrimaryKey string
	Strategy   KeyStrategy
	Indexes    []Index
}

// Catalog lists every collection of the local database.
func Catalog() []Collection {
	return []Collection{
		{
			Name:       "purchases",
			PrimaryKey: "product_id",
			Strategy:   KeyExplicit,
		},
		{
			Name:       "calculations",
			PrimaryKey: "id",
			Strategy:   KeyAutoIncrement,
			Indexes: []Index{
				{Name: "idx_calculations_type", Field: "type"},
				{Name: "idx_calculations_ts", Field: "ts"},
			},
		},
		{
			Name:       "projects",
			PrimaryKey: "id",
			Strategy:   KeyAutoIncrement,
			Indexes: []Index{
				{Name: "idx_projects_last_modified", Field: "last_modified"},
			},
		},
		{
			Name:       "material_prices",
			PrimaryKey: "material",
			Strategy:   KeyExplicit,
		},
	}
}

// verifyCatalog checks that every cataloged table and index exists in the
// migrated database.
func verifyCatalog(ctx context.Context, db *sql.DB) error {
	for _, c := range Catalog() {
		if err := objectExists(ctx, db, "table", c.Name); err != nil {
			return err
		}
		for _, idx := range c.Indexes {
			if err := objectExists(ctx, db, "index", idx.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func objectExists(ctx context.Context, db *sql.DB, kind, name string) error {
	var n int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type=? AND name=?`
	if err := db.QueryRowContext(ctx, query, kind, name).Scan(&n); err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("missing %s %q after migration", kind, name)
	}
	return nil
}
