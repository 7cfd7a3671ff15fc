package models

import "time"

// Photo is the metadata row for an uploaded image. The bytes themselves live
// in blob storage under photos/<ID>.<Format>; a down-resoluted copy may exist
// under thumbnails/. AlbumID is empty for photos not assigned to any album
// (they still appear in the virtual all-photos album).
type Photo struct {
	ID        string
	Username  string
	AlbumID   string
	Format    string
	CreatedAt time.Time
}

// Filename returns the blob file name for the photo, e.g. "abc.jpeg".
func (p *Photo) Filename() string {
	return p.ID + "." + p.Format
}
