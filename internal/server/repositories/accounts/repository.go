// Package accounts declares the repository contract for user accounts.
package accounts

import (
	"context"

	"github.com/fotolab/foto/internal/server/models"
)

type Repository interface {
	// Create records a new account. The password field must already be hashed.
	Create(ctx context.Context, account *models.Account) error

	// GetByUsername returns the account for username, or common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.Account, error)

	// Exists reports whether an account with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)
}
