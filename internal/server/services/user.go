// Package services contains server-side business logic. This file implements
// UserService, which handles sign-up, log-in, and resolving session cookies
// to usernames.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/dbx"
	"github.com/fotolab/foto/internal/server/config"
	"github.com/fotolab/foto/internal/server/models"
	"github.com/fotolab/foto/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - SignUp: create an account and its first session
//   - LogIn: verify credentials and mint a session
//   - LogOut: revoke a session
//   - Authenticate: resolve a session id to its username
type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	sessionValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:              db,
		repomanager:     m,
		sessionValidity: cfg.SessionValidity,
	}
}

// SignUp creates an account with a bcrypt-hashed password and issues the
// first session, both inside one transaction. A taken username yields
// ErrUsernameTaken. No server-side username or password shape rules are
// enforced here.
func (s *UserService) SignUp(ctx context.Context, username, password string) (*models.Session, error) {
	taken, err := s.repomanager.Accounts(s.db).Exists(ctx, username)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if taken {
		return nil, common.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var session *models.Session
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		account := &models.Account{Username: username, Password: hash}
		if err := s.repomanager.Accounts(tx).Create(ctx, account); err != nil {
			return fmt.Errorf("error creating account: %w", err)
		}
		var sessErr error
		session, sessErr = s.createSession(ctx, tx, username)
		return sessErr
	})
	if err != nil {
		return nil, common.ErrorInternal
	}
	return session, nil
}

// LogIn verifies the password against the stored bcrypt hash and issues a
// fresh session. Unknown usernames and wrong passwords are indistinguishable:
// both yield ErrorNotFound.
func (s *UserService) LogIn(ctx context.Context, username, password string) (*models.Session, error) {
	account, err := s.repomanager.Accounts(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(account.Password, []byte(password)); err != nil {
		return nil, common.ErrorNotFound
	}

	session, err := s.createSession(ctx, s.db, username)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return session, nil
}

// LogOut revokes the presented session. Revoking an unknown session is not
// an error.
func (s *UserService) LogOut(ctx context.Context, sessionID string) error {
	if err := s.repomanager.Sessions(s.db).Delete(ctx, sessionID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// Authenticate resolves a session id to its username. Unknown ids yield
// ErrorUnauthorized and expired ones ErrSessionExpired; callers treat both
// as "not authenticated", never as an internal failure.
func (s *UserService) Authenticate(ctx context.Context, sessionID string) (string, error) {
	session, err := s.repomanager.Sessions(s.db).Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if session.ExpiresAt.Before(time.Now()) {
		return "", common.ErrSessionExpired
	}
	return session.Username, nil
}

func (s *UserService) createSession(ctx context.Context, tx dbx.DBTX, username string) (*models.Session, error) {
	id := uuid.NewString()
	if err := s.repomanager.Sessions(tx).Create(ctx, username, id, s.sessionValidity); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return &models.Session{
		ID:        id,
		Username:  username,
		ExpiresAt: time.Now().Add(s.sessionValidity),
	}, nil
}
