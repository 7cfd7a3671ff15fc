package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// albumEntry is the wire shape of one album in the listing. Field names are
// part of the client contract.
type albumEntry struct {
	Name string `json:"album_name"`
	ID   string `json:"albumid"`
}

// ListAlbums returns the user's live albums as JSON.
func (a *API) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := a.albums.List(r.Context(), UsernameFromContext(r.Context()))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	entries := make([]albumEntry, 0, len(albums))
	for _, album := range albums {
		entries = append(entries, albumEntry{Name: album.Name, ID: album.ID})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// NewAlbum creates an album named by the plain-text request body. The
// Content-Type and Content-Length requirements mirror what the browser
// client sends; anything else is rejected before reading the body.
func (a *API) NewAlbum(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Length") == "" {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	name, err := io.ReadAll(io.LimitReader(r.Body, 1024))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	albumID, err := a.albums.Create(r.Context(), UsernameFromContext(r.Context()), string(name))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(albumID))
}

// AlbumName returns the album's display name.
func (a *API) AlbumName(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["albumid"]

	name, err := a.albums.Name(r.Context(), UsernameFromContext(r.Context()), albumID)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(name))
}

// DeleteAlbum removes an album and everything in it. A repeated delete finds
// no live album and yields 404.
func (a *API) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["albumid"]

	if err := a.albums.Delete(r.Context(), UsernameFromContext(r.Context()), albumID); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
