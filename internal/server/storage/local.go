package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fotolab/foto/internal/common"
	"github.com/fotolab/foto/internal/filex"
)

// LocalStore keeps blobs on the local filesystem under a root data
// directory. The photos/ and thumbnails/ subdirectories are created up
// front so concurrent writers never race on mkdir.
type LocalStore struct {
	root string
}

// NewLocalStore prepares the directory layout under root.
func NewLocalStore(root string) (*LocalStore, error) {
	for _, sub := range []string{"photos", "thumbnails"} {
		if _, err := filex.EnsureDir(filepath.Join(root, sub)); err != nil {
			return nil, err
		}
	}
	return &LocalStore{root: root}, nil
}

// Path returns the absolute filesystem location of key. The image-processing
// service addresses files by this path.
func (s *LocalStore) Path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader) error {
	f, err := os.Create(s.Path(key))
	if err != nil {
		return fmt.Errorf("create blob %s: %w", key, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	return f.Close()
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("open blob %s: %w", key, err)
	}
	return f, nil
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	return filex.Exists(s.Path(key)), nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}
