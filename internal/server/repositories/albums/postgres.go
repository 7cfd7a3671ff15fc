// Package albums provides the PostgreSQL-backed repository for album
// persistence and ownership checks.
package albums

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/server/models"
)

// PostgresRepository implements album storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, album *models.Album) error {
	query := `
		INSERT INTO albums (albumid, username, album_name)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, album.ID, album.Username, album.Name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, username string) ([]*models.Album, error) {
	query := `
		SELECT albumid, username, album_name, created_at FROM albums
		WHERE username = $1 AND NOT is_deleted
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Album
	for rows.Next() {
		var item models.Album
		if err := rows.Scan(&item.ID, &item.Username, &item.Name, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetName(ctx context.Context, albumID string) (string, error) {
	query := `
		SELECT album_name FROM albums
		WHERE albumid = $1 AND NOT is_deleted
	`
	var name string
	if err := r.db.QueryRowContext(ctx, query, albumID).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return name, nil
}

func (r *PostgresRepository) CheckOwnership(ctx context.Context, username, albumID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM albums
			WHERE albumid = $1 AND username = $2 AND NOT is_deleted
		)
	`
	var owned bool
	if err := r.db.QueryRowContext(ctx, query, albumID, username).Scan(&owned); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return owned, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, username, albumID string) error {
	query := `
		UPDATE albums SET is_deleted = true
		WHERE albumid = $1 AND username = $2 AND NOT is_deleted
	`
	res, err := r.db.ExecContext(ctx, query, albumID, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
