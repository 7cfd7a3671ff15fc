package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// ListPhotos returns resource URLs for the photos in an album. The virtual
// all-photos album covers everything the user owns.
func (a *API) ListPhotos(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["albumid"]

	urls, err := a.photos.List(r.Context(), UsernameFromContext(r.Context()), albumID)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(urls)
}

// UploadPhoto streams the request body into blob storage. The route variant
// with an album id files the photo there; the bare route leaves it
// unassigned.
func (a *API) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["albumid"]

	photo, err := a.photos.Upload(r.Context(), UsernameFromContext(r.Context()),
		albumID, r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("/photo/" + photo.Filename()))
}

// GetPhoto serves the original photo bytes.
func (a *API) GetPhoto(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]

	body, mime, err := a.photos.Open(r.Context(), UsernameFromContext(r.Context()), resource)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", mime)
	io.Copy(w, body)
}

// GetThumbnail serves the down-resoluted copy, falling back to the original
// when no thumbnail was generated.
func (a *API) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	photoID := mux.Vars(r)["photoid"]

	body, mime, err := a.photos.Thumbnail(r.Context(), UsernameFromContext(r.Context()), photoID)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", mime)
	io.Copy(w, body)
}

// DeletePhoto removes a photo's blobs and its row.
func (a *API) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := mux.Vars(r)["photoid"]

	if err := a.photos.Delete(r.Context(), UsernameFromContext(r.Context()), photoID); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
