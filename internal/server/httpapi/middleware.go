package httpapi

import (
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/cookiex"
	"github.com/fotolab/foto/internal/logging"
)

// SessionCookieName is the cookie carrying the opaque session id. The raw
// Cookie header is parsed with cookiex rather than net/http so the grammar
// matches what existing clients send.
const SessionCookieName = "sessionid"

// NewSessionGuard returns middleware that resolves the sessionid cookie to a
// username and attaches it to the request context. Requests without a valid
// session get a 401; handlers behind the guard never see them.
func NewSessionGuard(users UserService, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := cookiex.Get(r.Header.Get("Cookie"), SessionCookieName)
			if sessionID == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			username, err := users.Authenticate(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrSessionExpired) {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				logger.Error(r.Context(), "session lookup failed", "error", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), username, sessionID)))
		})
	}
}

// NewLoggingMiddleware logs one line per request with status and duration.
func NewLoggingMiddleware(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := newResponseWriter(w)
			start := time.Now()
			next.ServeHTTP(wrapped, r)
			elapsed := time.Since(start)

			if wrapped.statusCode < 500 {
				logger.Info(r.Context(), "request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", wrapped.statusCode,
					"duration", elapsed,
				)
			} else {
				logger.Error(r.Context(), "request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", wrapped.statusCode,
					"duration", elapsed,
				)
			}
		})
	}
}

// NewRecoveryMiddleware converts handler panics into 500 responses.
func NewRecoveryMiddleware(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(r.Context(), "panic handled",
						"error", rec, "stacktrace", string(debug.Stack()))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// NewCORSMiddleware allows the configured browser origin to call the API with
// credentials. With an empty origin it is a no-op. Preflight OPTIONS requests
// are answered directly.
func NewCORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if allowedOrigin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
