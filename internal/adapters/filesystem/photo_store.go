// Package filesystem contains adapters that manage files on the local disk.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// PhotoStore implements secondary.PhotoStore on the local filesystem.
// Imported files are copied into a managed directory under a unique name so
// the original can be moved or deleted without breaking evidence.
type PhotoStore struct {
	dir string
}

// NewPhotoStore creates a photo store rooted at dir.
func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{dir: dir}
}

// DefaultPhotoDir returns the managed photo directory under the user's home.
func DefaultPhotoDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".caexinspect", "photos"), nil
}

// Import copies a source image into the managed directory and returns the
// stored file's path.
func (s *PhotoStore) Import(ctx context.Context, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source photo: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}

	ext := filepath.Ext(sourcePath)
	stem := strings.TrimSuffix(filepath.Base(sourcePath), ext)
	destPath := filepath.Join(s.dir, fmt.Sprintf("%s-%s%s", stem, uuid.New().String(), ext))

	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create stored photo: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to copy photo: %w", err)
	}

	return destPath, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *PhotoStore) Remove(ctx context.Context, path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}
	return nil
}

// Exists checks whether a stored file is still present.
func (s *PhotoStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat photo: %w", err)
}

// Ensure PhotoStore implements the interface
var _ secondary.PhotoStore = (*PhotoStore)(nil)
