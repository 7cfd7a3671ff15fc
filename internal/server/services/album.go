package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/logging"
	"github.com/fotolab/foto/internal/server/models"
	"github.com/fotolab/foto/internal/server/repositories/repomanager"
	"github.com/fotolab/foto/internal/server/storage"
)

// AlbumService implements album creation, listing, naming, and cascading
// deletion. Every operation is scoped to the requesting user; "does not
// exist" and "exists but belongs to someone else" are indistinguishable
// (both ErrorNotFound).
type AlbumService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
	logger      logging.Logger
}

// NewAlbumService constructs an AlbumService.
func NewAlbumService(db *sql.DB, m repomanager.RepositoryManager, store storage.BlobStore, logger logging.Logger) *AlbumService {
	return &AlbumService{db: db, repomanager: m, store: store, logger: logger}
}

// Create records a new album for username and returns its generated id.
func (s *AlbumService) Create(ctx context.Context, username, name string) (string, error) {
	album := &models.Album{
		ID:       uuid.NewString(),
		Username: username,
		Name:     name,
	}
	if err := s.repomanager.Albums(s.db).Create(ctx, album); err != nil {
		return "", common.ErrorInternal
	}
	return album.ID, nil
}

// List returns the user's live albums.
func (s *AlbumService) List(ctx context.Context, username string) ([]*models.Album, error) {
	result, err := s.repomanager.Albums(s.db).ListByUser(ctx, username)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// Name returns the album's name after verifying ownership.
func (s *AlbumService) Name(ctx context.Context, username, albumID string) (string, error) {
	owned, err := s.repomanager.Albums(s.db).CheckOwnership(ctx, username, albumID)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !owned {
		return "", common.ErrorNotFound
	}

	name, err := s.repomanager.Albums(s.db).GetName(ctx, albumID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}
	return name, nil
}

// Delete removes an owned album: its photos' blobs are deleted best-effort
// (individual failures are logged and tolerated), then the photo rows and
// the album row go away together in one transaction. Deleting an unknown or
// already-deleted album yields ErrorNotFound.
func (s *AlbumService) Delete(ctx context.Context, username, albumID string) error {
	owned, err := s.repomanager.Albums(s.db).CheckOwnership(ctx, username, albumID)
	if err != nil {
		return common.ErrorInternal
	}
	if !owned {
		return common.ErrorNotFound
	}

	photos, err := s.repomanager.Photos(s.db).ListByAlbum(ctx, username, albumID)
	if err != nil {
		return common.ErrorInternal
	}

	for _, photo := range photos {
		if err := s.store.Delete(ctx, storage.PhotoKey(photo.Filename())); err != nil {
			s.logger.Warn(ctx, "photo blob removal failed during album delete",
				"photoid", photo.ID, "error", err)
		}
		for _, ext := range []string{"webp", "jpeg"} {
			if err := s.store.Delete(ctx, storage.ThumbnailKey(photo.ID+"."+ext)); err != nil {
				s.logger.Warn(ctx, "thumbnail removal failed during album delete",
					"photoid", photo.ID, "error", err)
			}
		}
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Photos(tx).DeleteByAlbum(ctx, username, albumID); err != nil {
			return err
		}
		return s.repomanager.Albums(tx).SoftDelete(ctx, username, albumID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
