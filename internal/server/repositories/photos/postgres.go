// Package photos provides the PostgreSQL-backed repository for photo
// metadata and ownership checks.
package photos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/server/models"
)

// PostgresRepository implements photo metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, photo *models.Photo) error {
	query := `
		INSERT INTO photos (photoid, username, albumid, format)
		VALUES ($1, $2, $3, $4)
	`
	albumID := sql.NullString{String: photo.AlbumID, Valid: photo.AlbumID != ""}
	if _, err := r.db.ExecContext(ctx, query, photo.ID, photo.Username, albumID, photo.Format); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, username, photoID string) (*models.Photo, error) {
	query := `
		SELECT photoid, username, COALESCE(albumid, ''), format, created_at
		FROM photos
		WHERE photoid = $1 AND username = $2
	`
	photo := &models.Photo{}
	err := r.db.QueryRowContext(ctx, query, photoID, username).
		Scan(&photo.ID, &photo.Username, &photo.AlbumID, &photo.Format, &photo.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return photo, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, username string) ([]*models.Photo, error) {
	query := `
		SELECT photoid, username, COALESCE(albumid, ''), format, created_at
		FROM photos
		WHERE username = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, username)
}

func (r *PostgresRepository) ListByAlbum(ctx context.Context, username, albumID string) ([]*models.Photo, error) {
	query := `
		SELECT photoid, username, COALESCE(albumid, ''), format, created_at
		FROM photos
		WHERE username = $1 AND albumid = $2
		ORDER BY created_at
	`
	return r.list(ctx, query, username, albumID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Photo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Photo
	for rows.Next() {
		var item models.Photo
		if err := rows.Scan(&item.ID, &item.Username, &item.AlbumID, &item.Format, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username, photoID string) error {
	query := `
		DELETE FROM photos
		WHERE photoid = $1 AND username = $2
	`
	res, err := r.db.ExecContext(ctx, query, photoID, username)
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

func (r *PostgresRepository) DeleteByAlbum(ctx context.Context, username, albumID string) error {
	query := `
		DELETE FROM photos
		WHERE username = $1 AND albumid = $2
	`
	if _, err := r.db.ExecContext(ctx, query, username, albumID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
