// Package store owns the single connection to the local SQLite database:
// it opens or creates the file, applies the embedded goose migrations on
// open, and hands readiness-gated handles to the repositories. No other
// package touches the database directly.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/dbx"
	"github.com/zedbuild/buildcalc/internal/logging"
	"github.com/zedbuild/buildcalc/internal/store/migrations"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Gateway owns the database connection and its lifecycle. Zero value is not
// usable; construct with NewGateway. All repository operations issued before
// the first successful Open fail with common.ErrNotInitialized.
type Gateway struct {
	mu    sync.Mutex
	path  string
	log   logging.Logger
	db    *sql.DB
	ready chan struct{}
}

// NewGateway returns an unopened Gateway for the database file at path.
func NewGateway(path string, log logging.Logger) *Gateway {
	return &Gateway{
		path:  path,
		log:   log.With("component", "store"),
		ready: make(chan struct{}),
	}
}

// Open opens or creates the database file and applies pending migrations.
// It is idempotent: a second call on an already-open gateway returns nil
// without re-running migrations. On migration failure the connection is
// discarded, the gateway stays unopened and the error wraps
// common.ErrMigrationFailed.
func (g *Gateway) Open(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", g.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One local replica, cooperative access; a single connection also keeps
	// in-memory databases coherent in tests.
	db.SetMaxOpenConns(1)

	if err := g.runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %w", common.ErrMigrationFailed, err)
	}

	if err := verifyCatalog(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %w", common.ErrMigrationFailed, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %w", common.ErrMigrationFailed, err)
	}

	g.db = db
	close(g.ready)
	g.log.Info(ctx, "store opened", "path", g.path, "version", version)
	return nil
}

func (g *Gateway) runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// IsReady reports whether Open has completed successfully.
func (g *Gateway) IsReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.db != nil
}

// Ready returns a channel that is closed once the store is open. Callers
// that must await readiness select on it once instead of polling.
func (g *Gateway) Ready() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Close shuts the connection down. Operations after Close fail with
// common.ErrNotInitialized again.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	g.ready = make(chan struct{})
	return err
}

// DB returns the underlying handle for single-statement reads, or
// common.ErrNotInitialized before the first successful Open.
func (g *Gateway) DB() (dbx.DBTX, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil, common.ErrNotInitialized
	}
	return g.db, nil
}

// WithTx runs fn inside its own short-lived transaction. The error policy
// lives in dbx.WithTx: engine failures surface wrapped in
// common.ErrTransactionFailed, validation sentinels raised by fn
// (ErrNotFound, ErrInvalidArgument) pass through unchanged.
func (g *Gateway) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	g.mu.Lock()
	db := g.db
	g.mu.Unlock()
	if db == nil {
		return common.ErrNotInitialized
	}
	return dbx.WithTx(ctx, db, nil, fn)
}
