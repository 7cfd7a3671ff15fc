// Package httpapi exposes the photo-album service over HTTP: public
// authentication endpoints plus a session-guarded API for albums and photos.
// Handlers stay thin; all business rules live in the services layer.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/logging"
	"github.com/fotolab/foto/internal/server/models"
)

// UserService is the authentication surface the API needs.
type UserService interface {
	SignUp(ctx context.Context, username, password string) (*models.Session, error)
	LogIn(ctx context.Context, username, password string) (*models.Session, error)
	LogOut(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (string, error)
}

// AlbumService is the album surface the API needs.
type AlbumService interface {
	Create(ctx context.Context, username, name string) (string, error)
	List(ctx context.Context, username string) ([]*models.Album, error)
	Name(ctx context.Context, username, albumID string) (string, error)
	Delete(ctx context.Context, username, albumID string) error
}

// PhotoService is the photo surface the API needs.
type PhotoService interface {
	Upload(ctx context.Context, username, albumID, contentType string, body io.Reader) (*models.Photo, error)
	List(ctx context.Context, username, albumID string) ([]string, error)
	Open(ctx context.Context, username, photoResource string) (io.ReadCloser, string, error)
	Thumbnail(ctx context.Context, username, photoID string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, username, photoID string) error
}

// API bundles the handler dependencies.
type API struct {
	users  UserService
	albums AlbumService
	photos PhotoService
	logger logging.Logger
}

// NewAPI constructs the handler set.
func NewAPI(users UserService, albums AlbumService, photos PhotoService, logger logging.Logger) *API {
	return &API{users: users, albums: albums, photos: photos, logger: logger}
}

// writeServiceError maps service sentinels to HTTP statuses.
func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrSessionExpired):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, common.ErrUnsupportedImage):
		http.Error(w, "Unsupported image type", http.StatusBadRequest)
	default:
		a.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
