// Package dbx holds the small database plumbing the repositories share: the
// DBTX interface that lets the same repository code run against a plain
// connection or inside a transaction, and WithTx for the few operations that
// must commit together (sign-up, album deletion).
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the query surface common to *sql.DB and *sql.Tx. Repositories are
// constructed against it, so callers decide per call whether a repository
// works transactionally.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when it returns an error. A panic inside fn
// rolls back and is rethrown so it surfaces at the caller.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	done := false
	defer func() {
		if !done {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		_ = tx.Rollback()
		done = true
		return err
	}

	if err := tx.Commit(); err != nil {
		done = true
		return fmt.Errorf("commit tx: %w", err)
	}
	done = true
	return nil
}
