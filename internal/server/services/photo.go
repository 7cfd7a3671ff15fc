package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/filex"
	"github.com/fotolab/foto/internal/logging"
	"github.com/fotolab/foto/internal/server/models"
	"github.com/fotolab/foto/internal/server/repositories/repomanager"
	"github.com/fotolab/foto/internal/server/storage"
)

// DownSampler produces a down-resoluted copy of a local image file. It is
// the client side of the image-processing service.
type DownSampler interface {
	DownResolute(ctx context.Context, src, dst string) error
}

// localPather is satisfied by blob stores whose keys map to local
// filesystem paths; the image-processing service only speaks paths.
type localPather interface {
	Path(key string) string
}

// PhotoService implements photo upload, listing, serving, and deletion.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
	downsampler DownSampler
	logger      logging.Logger
}

// NewPhotoService constructs a PhotoService. downsampler may be nil, in
// which case no thumbnails are generated.
func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, store storage.BlobStore, downsampler DownSampler, logger logging.Logger) *PhotoService {
	return &PhotoService{
		db:          db,
		repomanager: m,
		store:       store,
		downsampler: downsampler,
		logger:      logger,
	}
}

// Upload streams body into blob storage, asks the image-processing service
// for a thumbnail (best-effort), and records the photo row. The row is
// written only after the blob write succeeded, so a failed upload leaves no
// dangling metadata. albumID may be empty; a non-empty albumID must be owned
// by username, otherwise ErrorNotFound. A Content-Type other than
// image/jpeg, image/png, or image/webp yields ErrUnsupportedImage.
func (s *PhotoService) Upload(ctx context.Context, username, albumID, contentType string, body io.Reader) (*models.Photo, error) {
	format := filex.ExtensionByContentType(contentType)
	if format == "" {
		return nil, common.ErrUnsupportedImage
	}

	if albumID != "" {
		owned, err := s.repomanager.Albums(s.db).CheckOwnership(ctx, username, albumID)
		if err != nil {
			return nil, common.ErrorInternal
		}
		if !owned {
			return nil, common.ErrorNotFound
		}
	}

	photo := &models.Photo{
		ID:       uuid.NewString(),
		Username: username,
		AlbumID:  albumID,
		Format:   format,
	}

	photoKey := storage.PhotoKey(photo.Filename())
	if err := s.store.Save(ctx, photoKey, body); err != nil {
		return nil, common.ErrorInternal
	}

	s.generateThumbnail(ctx, photo, photoKey)

	if err := s.repomanager.Photos(s.db).Create(ctx, photo); err != nil {
		return nil, common.ErrorInternal
	}
	return photo, nil
}

// generateThumbnail asks the image-processing service to down-resolute the
// freshly written photo. Every failure mode is tolerated: the photo is then
// simply served without a thumbnail.
func (s *PhotoService) generateThumbnail(ctx context.Context, photo *models.Photo, photoKey string) {
	if s.downsampler == nil {
		return
	}
	local, ok := s.store.(localPather)
	if !ok {
		// remote blob backend: the imgproc protocol takes local paths only
		return
	}

	thumbKey := storage.ThumbnailKey(photo.ID + ".jpeg")
	if err := s.downsampler.DownResolute(ctx, local.Path(photoKey), local.Path(thumbKey)); err != nil {
		s.logger.Warn(ctx, "thumbnail generation failed", "photoid", photo.ID, "error", err)
	}
}

// List returns photo resource URLs for an album. The virtual all-photos
// album yields every photo the user owns; any other album id is scoped to
// the user's rows for it.
func (s *PhotoService) List(ctx context.Context, username, albumID string) ([]string, error) {
	var (
		result []*models.Photo
		err    error
	)
	if albumID == models.AllPhotosAlbumID {
		result, err = s.repomanager.Photos(s.db).ListByUser(ctx, username)
	} else {
		result, err = s.repomanager.Photos(s.db).ListByAlbum(ctx, username, albumID)
	}
	if err != nil {
		return nil, common.ErrorInternal
	}

	urls := make([]string, 0, len(result))
	for _, photo := range result {
		urls = append(urls, "/photo/"+photo.Filename())
	}
	return urls, nil
}

// Open returns the original photo bytes and MIME type. The photo resource
// may be requested as "<photoid>.<ext>" or bare "<photoid>"; the served file
// is always the one recorded for the row, so a forged extension cannot reach
// another file. Unknown or unowned photos yield ErrorNotFound.
func (s *PhotoService) Open(ctx context.Context, username, photoResource string) (io.ReadCloser, string, error) {
	photoID, _, _ := strings.Cut(photoResource, ".")

	photo, err := s.getOwned(ctx, username, photoID)
	if err != nil {
		return nil, "", err
	}

	r, err := s.store.Open(ctx, storage.PhotoKey(photo.Filename()))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", common.ErrorInternal
	}
	return r, filex.MimeTypeByExtension(photo.Filename()), nil
}

// Thumbnail returns the down-resoluted copy when one exists, falling back to
// the original. Small photos never get thumbnails, so the fallback is the
// normal path for them.
func (s *PhotoService) Thumbnail(ctx context.Context, username, photoID string) (io.ReadCloser, string, error) {
	photo, err := s.getOwned(ctx, username, photoID)
	if err != nil {
		return nil, "", err
	}

	candidates := []string{
		storage.ThumbnailKey(photo.ID + ".webp"),
		storage.ThumbnailKey(photo.ID + ".jpeg"),
		storage.PhotoKey(photo.Filename()),
	}

	for _, key := range candidates {
		r, err := s.store.Open(ctx, key)
		if err == nil {
			return r, filex.MimeTypeByExtension(key), nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInternal
		}
	}
	return nil, "", common.ErrorNotFound
}

// Delete removes the photo row and its blobs. The original blob must go;
// thumbnail removal is best-effort (small photos never had one).
func (s *PhotoService) Delete(ctx context.Context, username, photoID string) error {
	photo, err := s.getOwned(ctx, username, photoID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, storage.PhotoKey(photo.Filename())); err != nil {
		return common.ErrorInternal
	}
	for _, ext := range []string{"webp", "jpeg"} {
		if err := s.store.Delete(ctx, storage.ThumbnailKey(photo.ID+"."+ext)); err != nil {
			s.logger.Warn(ctx, "thumbnail removal failed", "photoid", photo.ID, "error", err)
		}
	}

	if err := s.repomanager.Photos(s.db).Delete(ctx, username, photoID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

func (s *PhotoService) getOwned(ctx context.Context, username, photoID string) (*models.Photo, error) {
	photo, err := s.repomanager.Photos(s.db).Get(ctx, username, photoID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return photo, nil
}
