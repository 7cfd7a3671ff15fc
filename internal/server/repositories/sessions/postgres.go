// Package sessions provides a PostgreSQL-backed repository for the opaque
// session tokens used in the server's authentication flow.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/server/models"
)

// PostgresRepository implements session storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, username string, sessionID string, validity time.Duration) error {
	query := `
		INSERT INTO sessions (sessionid, username, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, sessionID, username, time.Now().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	query := `
		SELECT sessionid, username, expires_at, created_at
		FROM sessions
		WHERE sessionid = $1
	`
	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, sessionID).
		Scan(&session.ID, &session.Username, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return session, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, sessionID string) error {
	query := `
		DELETE FROM sessions
		WHERE sessionid = $1
	`
	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
