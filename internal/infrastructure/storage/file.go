// internal/infrastructure/storage/file.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores each key as one JSON file under a directory. It is
// the default driver: the process-local analogue of browser local storage,
// requiring no external infrastructure.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file-backed store rooted at dir
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Get reads the file holding key
func (b *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// Set writes value to the file holding key
func (b *FileBackend) Set(_ context.Context, key string, value []byte) error {
	return os.WriteFile(b.path(key), value, 0o644)
}

// Delete removes the file holding key
func (b *FileBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(b.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (b *FileBackend) path(key string) string {
	// Keys are fixed short names (cart, wishlist, theme); the replacement
	// guards against a separator sneaking into a future key.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(b.dir, safe+".json")
}
