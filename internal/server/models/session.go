package models

import "time"

// Session is an opaque login token. The session id is the sole credential
// presented by clients (sessionid cookie). A user may hold any number of
// concurrent sessions.
type Session struct {
	ID        string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}
