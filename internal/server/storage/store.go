// Package storage abstracts where photo bytes live. Keys are relative paths
// such as "photos/<id>.jpeg" or "thumbnails/<id>.jpeg"; the same key layout
// is used by every backend.
package storage

import (
	"context"
	"io"
)

// BlobStore stores and retrieves photo blobs by key.
type BlobStore interface {
	// Save streams r into the blob at key, creating or replacing it.
	Save(ctx context.Context, key string, r io.Reader) error

	// Open returns a reader over the blob at key, or common.ErrorNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether a blob is present at key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the blob at key. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error
}

// PhotoKey builds the blob key for an original photo file name.
func PhotoKey(filename string) string {
	return "photos/" + filename
}

// ThumbnailKey builds the blob key for a thumbnail file name.
func ThumbnailKey(filename string) string {
	return "thumbnails/" + filename
}
