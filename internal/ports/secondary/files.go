package secondary

import "context"

// PhotoStore defines the secondary port for photo evidence files.
// Rows live in the database; the bytes live in a managed directory.
type PhotoStore interface {
	// Import copies a source image into the managed photo directory and
	// returns the stored file's path.
	Import(ctx context.Context, sourcePath string) (string, error)

	// Remove deletes a stored file. A missing file is not an error.
	Remove(ctx context.Context, path string) error

	// Exists checks whether a stored file is still present.
	Exists(ctx context.Context, path string) (bool, error)
}
