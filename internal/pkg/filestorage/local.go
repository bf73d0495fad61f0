package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alumlink/portal/internal/pkg/logger"
)

// LocalStore keeps objects on the local filesystem under basePath/bucket/path
// and serves them at baseURL/bucket/path.
type LocalStore struct {
	basePath string // root directory for stored objects
	baseURL  string // public URL prefix mapped to basePath
}

// NewLocalStore creates a LocalStore rooted at basePath. baseURL is the
// public prefix under which basePath is served.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes the object to disk, replacing any existing object at the
// same path so same-path retries are safe.
func (s *LocalStore) Upload(ctx context.Context, bucket, path string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dstPath, err := s.physicalPath(bucket, path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create object directory")
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create object file")
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write object content")
		// Remove the partially written object
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to write object content: %w", err)
	}

	logger.Info().Str("bucket", bucket).Str("objectPath", path).Msg("Object stored")
	return nil
}

// PublicURL resolves an object to its served address.
func (s *LocalStore) PublicURL(bucket, path string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("no public base URL configured for local storage")
	}
	if bucket == "" || path == "" {
		return "", fmt.Errorf("invalid object reference %q/%q", bucket, path)
	}
	return s.baseURL + "/" + bucket + "/" + strings.TrimLeft(path, "/"), nil
}

// Delete removes an object. A missing object is treated as already deleted.
func (s *LocalStore) Delete(ctx context.Context, bucket, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dstPath, err := s.physicalPath(bucket, path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dstPath); os.IsNotExist(err) {
		logger.Warn().Str("path", dstPath).Msg("Object to delete does not exist")
		return nil
	}

	if err := os.Remove(dstPath); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	logger.Info().Str("bucket", bucket).Str("objectPath", path).Msg("Object deleted")
	return nil
}

// physicalPath maps bucket/path to a location under basePath, refusing
// references that would escape the storage root.
func (s *LocalStore) physicalPath(bucket, path string) (string, error) {
	if bucket == "" || path == "" {
		return "", fmt.Errorf("invalid object reference %q/%q", bucket, path)
	}

	joined := filepath.Join(s.basePath, bucket, filepath.FromSlash(path))
	root := filepath.Clean(s.basePath) + string(os.PathSeparator)
	if !strings.HasPrefix(joined, root) {
		return "", fmt.Errorf("object path %q escapes storage root", path)
	}
	return joined, nil
}
