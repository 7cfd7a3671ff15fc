// Package repomanager defines the RepositoryManager abstraction: a factory
// that vends repository implementations bound to a DBTX, so services can run
// the same repository code against *sql.DB or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/server/repositories/accounts"
	"github.com/fotolab/foto/internal/server/repositories/albums"
	"github.com/fotolab/foto/internal/server/repositories/photos"
	"github.com/fotolab/foto/internal/server/repositories/sessions"
)

// RepositoryManager vends repositories bound to the provided DBTX and
// exposes a schema migration hook.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Albums(db dbx.DBTX) albums.Repository
	Photos(db dbx.DBTX) photos.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
