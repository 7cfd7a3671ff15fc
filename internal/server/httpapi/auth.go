package httpapi

import (
	"errors"
	"net/http"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/server/models"
)

// SignUp creates an account from form fields and logs the new user in.
// Existing clients depend on the exact 400 bodies.
func (a *API) SignUp(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "MISSING ACCOUNT INFO", http.StatusBadRequest)
		return
	}

	session, err := a.users.SignUp(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			http.Error(w, "USERNAME ALREADY EXISTS", http.StatusBadRequest)
			return
		}
		a.writeServiceError(w, r, err)
		return
	}

	a.setSessionCookie(w, session)
	w.Write([]byte(session.ID))
}

// LogIn verifies form credentials and issues a session cookie. A credential
// mismatch is a 404, indistinguishable from an unknown username.
func (a *API) LogIn(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "MISSING ACCOUNT INFO", http.StatusBadRequest)
		return
	}

	session, err := a.users.LogIn(r.Context(), username, password)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.setSessionCookie(w, session)
	w.Write([]byte(session.ID))
}

// LogOut revokes the session the request authenticated with.
func (a *API) LogOut(w http.ResponseWriter, r *http.Request) {
	if err := a.users.LogOut(r.Context(), SessionIDFromContext(r.Context())); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:   SessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	w.WriteHeader(http.StatusOK)
}

func (a *API) setSessionCookie(w http.ResponseWriter, session *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})
}
