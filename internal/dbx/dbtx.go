// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx,
// and a helper to run functions inside a transaction with a uniform
// error policy.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zedbuild/buildcalc/internal/common"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Error policy: validation sentinels raised by fn (common.ErrNotFound,
// common.ErrInvalidArgument) pass through unchanged so callers can branch
// on them; every other failure, including begin and commit errors, wraps
// common.ErrTransactionFailed.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    // use tx instead of db
//	    _, err := tx.ExecContext(ctx, "UPDATE ...")
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		return classify(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrTransactionFailed, err)
	}
	return nil
}

// classify keeps caller-facing sentinels intact and tags everything else
// as an engine failure.
func classify(err error) error {
	if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrInvalidArgument) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrTransactionFailed, err)
}
