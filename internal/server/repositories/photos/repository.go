// Package photos declares the repository contract for photo metadata.
package photos

import (
	"context"

	"github.com/fotolab/foto/internal/server/models"
)

type Repository interface {
	// Create records a new photo row. An empty AlbumID is stored as NULL.
	Create(ctx context.Context, photo *models.Photo) error

	// Get returns the photo with the given id and owner, or
	// common.ErrorNotFound.
	Get(ctx context.Context, username, photoID string) (*models.Photo, error)

	// ListByUser returns every photo owned by username.
	ListByUser(ctx context.Context, username string) ([]*models.Photo, error)

	// ListByAlbum returns the user's photos assigned to albumID.
	ListByAlbum(ctx context.Context, username, albumID string) ([]*models.Photo, error)

	// Delete removes a photo row scoped to its owner. Returns
	// common.ErrorNotFound when no row matches.
	Delete(ctx context.Context, username, photoID string) error

	// DeleteByAlbum removes all of the user's photo rows in albumID.
	DeleteByAlbum(ctx context.Context, username, albumID string) error
}
