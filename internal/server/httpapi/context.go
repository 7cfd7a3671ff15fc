package httpapi

import "context"

type contextKey int

const (
	usernameKey contextKey = iota
	sessionIDKey
)

func withSession(ctx context.Context, username, sessionID string) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// UsernameFromContext returns the authenticated username attached by the
// session guard, or "" on an unguarded request.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// SessionIDFromContext returns the session id the request authenticated with.
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}
