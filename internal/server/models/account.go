// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a registered user. Password holds a bcrypt hash, never the
// plaintext.
type Account struct {
	Username  string
	Password  []byte
	CreatedAt time.Time
}
