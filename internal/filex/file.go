// Package filex contains small filesystem and file-naming helpers shared by
// the server and the image-processing service.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and parents) if missing and returns its path.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MimeTypeByExtension deduces a MIME type from the file extension of path.
// Returns "" for unknown extensions.
func MimeTypeByExtension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "js":
		return "text/javascript"
	case "css":
		return "text/css"
	case "svg":
		return "image/svg+xml"
	default:
		return ""
	}
}

// ExtensionByContentType maps an image Content-Type to a file extension.
// Returns "" for anything that is not an accepted image type.
func ExtensionByContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg":
		return "jpeg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return ""
	}
}
