// Package common defines shared constants and sentinel errors used across
// the foto components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Account errors.
	ErrUsernameTaken = errors.New("username already exists")

	// Session lifecycle errors.
	ErrSessionExpired = errors.New("session expired")

	// Upload validation errors.
	ErrUnsupportedImage = errors.New("unsupported image type")
)
