package models

import "time"

// AllPhotosAlbumID is a virtual album id denoting the union of all photos
// owned by a user. It is never persisted.
const AllPhotosAlbumID = "all-photos"

// Album groups photos for one owner. Deletion is a soft delete.
type Album struct {
	ID        string
	Username  string
	Name      string
	IsDeleted bool
	CreatedAt time.Time
}
