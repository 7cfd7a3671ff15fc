package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fotolab/foto/internal/logging"
)

// NewRouter builds the full route table: public authentication endpoints and
// the session-guarded album/photo API.
func NewRouter(api *API, users UserService, logger logging.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/sign-up", api.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/log-in", api.LogIn).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(NewSessionGuard(users, logger))

	protected.HandleFunc("/log-out", api.LogOut).Methods(http.MethodPost)

	protected.HandleFunc("/albums", api.ListAlbums).Methods(http.MethodGet)
	protected.HandleFunc("/new/album", api.NewAlbum).Methods(http.MethodPost)
	protected.HandleFunc("/album/name/{albumid}", api.AlbumName).Methods(http.MethodGet)
	protected.HandleFunc("/album/{albumid}", api.DeleteAlbum).Methods(http.MethodDelete)

	protected.HandleFunc("/photos/{albumid}", api.ListPhotos).Methods(http.MethodGet)
	protected.HandleFunc("/to/album/{albumid}", api.UploadPhoto).Methods(http.MethodPost)
	protected.HandleFunc("/to/album", api.UploadPhoto).Methods(http.MethodPost)
	protected.HandleFunc("/photo/{resource}", api.GetPhoto).Methods(http.MethodGet)
	protected.HandleFunc("/thumbnail/{photoid}", api.GetThumbnail).Methods(http.MethodGet)
	protected.HandleFunc("/photo/{photoid}", api.DeletePhoto).Methods(http.MethodDelete)

	return r
}

// NewHandler wraps the router with the ambient middleware chain: request
// logging outermost, then panic recovery, then CORS.
func NewHandler(router *mux.Router, logger logging.Logger, corsOrigin string) http.Handler {
	var h http.Handler = router
	h = NewCORSMiddleware(corsOrigin)(h)
	h = NewRecoveryMiddleware(logger)(h)
	h = NewLoggingMiddleware(logger)(h)
	return h
}
