// Package sessions declares the server-side repository contract for login
// sessions in persistent storage.
package sessions

import (
	"context"
	"time"

	"github.com/fotolab/foto/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// sessions.
type Repository interface {
	// Create stores a new session for username with an expiry of now+validity.
	Create(ctx context.Context, username string, sessionID string, validity time.Duration) error

	// Find looks up a session by its opaque id. Implementations return
	// common.ErrorNotFound when the session is absent.
	Find(ctx context.Context, sessionID string) (*models.Session, error)

	// Delete removes a session by id. Deleting a non-existent session is not
	// an error.
	Delete(ctx context.Context, sessionID string) error
}
