// Package albums declares the repository contract for photo albums.
package albums

import (
	"context"

	"github.com/fotolab/foto/internal/server/models"
)

type Repository interface {
	// Create records a new album.
	Create(ctx context.Context, album *models.Album) error

	// ListByUser returns the user's albums, excluding soft-deleted ones.
	ListByUser(ctx context.Context, username string) ([]*models.Album, error)

	// GetName returns the name of the album, or common.ErrorNotFound when the
	// album does not exist or is deleted.
	GetName(ctx context.Context, albumID string) (string, error)

	// CheckOwnership reports whether a live album row exists with both the
	// given id and owner.
	CheckOwnership(ctx context.Context, username, albumID string) (bool, error)

	// SoftDelete marks the album deleted. Returns common.ErrorNotFound when no
	// live album matches both id and owner.
	SoftDelete(ctx context.Context, username, albumID string) error
}
