package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/server/models"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (username, password)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, account.Username, account.Password); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT username, password, created_at FROM accounts
		WHERE username = $1
	`
	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&account.Username, &account.Password, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
