package filestorage

import (
	"context"
	"io"
)

// Store is the object-storage surface the application depends on. Objects
// are addressed by bucket and path; uploads to an existing path overwrite it.
type Store interface {
	// Upload writes the object bytes to bucket/path, creating or replacing it.
	Upload(ctx context.Context, bucket, path string, r io.Reader) error

	// PublicURL resolves bucket/path to a publicly reachable address.
	PublicURL(bucket, path string) (string, error)

	// Delete removes the object at bucket/path. Deleting a missing object
	// is not an error.
	Delete(ctx context.Context, bucket, path string) error
}
