package profile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/filestorage"
)

// ProfilePictureBucket is the storage bucket holding profile pictures
const ProfilePictureBucket = "profile_pictures"

// MaxPictureSize is the upload ceiling for a profile picture
const MaxPictureSize = 5 << 20 // 5 MB

// PictureUpload describes a staged profile picture replacement
type PictureUpload struct {
	OwnerID     int64
	Content     io.Reader
	Size        int64
	ContentType string
	PreviousURL string // empty when no picture was set before
}

// UploadResult reports the outcome of a completed upload. CleanupWarning
// is set when removing the previous asset failed; the new picture is
// committed regardless.
type UploadResult struct {
	URL            string
	CleanupWarning error
}

// RecordUpdater persists the new picture address onto the profile record
type RecordUpdater interface {
	UpdateProfilePicture(ctx context.Context, id int64, url string) error
}

// PictureCoordinator runs the picture replacement pipeline. Stage order
// is fixed: store the new object, resolve its address, commit the
// address to the record, and only then remove the previous object. The
// old asset is never deleted before the new reference is durably saved.
type PictureCoordinator struct {
	store   filestorage.Store
	records RecordUpdater
	logger  zerolog.Logger
	now     func() time.Time
}

// NewPictureCoordinator creates a PictureCoordinator
func NewPictureCoordinator(store filestorage.Store, records RecordUpdater, logger zerolog.Logger) *PictureCoordinator {
	return &PictureCoordinator{
		store:   store,
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// Upload replaces the owner's profile picture. The file is checked
// before any storage call; an oversized or non-image file never reaches
// the store. A failure in any stage before the record commit aborts the
// pipeline; a failure removing the previous asset is reported as a
// warning on the result only.
func (c *PictureCoordinator) Upload(ctx context.Context, up PictureUpload) (UploadResult, error) {
	if !strings.HasPrefix(up.ContentType, "image/") {
		return UploadResult{}, apperrors.ErrNotAnImage
	}
	if up.Size > MaxPictureSize {
		return UploadResult{}, apperrors.ErrPictureTooLarge
	}

	// Owner-scoped, timestamped path so same-user uploads never collide.
	path := fmt.Sprintf("%d/%d", up.OwnerID, c.now().UnixMilli())

	if err := c.store.Upload(ctx, ProfilePictureBucket, path, up.Content); err != nil {
		return UploadResult{}, fmt.Errorf("failed to store picture: %w", err)
	}

	url, err := c.store.PublicURL(ProfilePictureBucket, path)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", apperrors.ErrAssetUnresolvable, err)
	}

	if err := c.records.UpdateProfilePicture(ctx, up.OwnerID, url); err != nil {
		return UploadResult{}, fmt.Errorf("failed to commit picture reference: %w", err)
	}

	result := UploadResult{URL: url}

	if up.PreviousURL != "" && up.PreviousURL != url {
		if err := c.deletePrevious(ctx, up.PreviousURL); err != nil {
			c.logger.Warn().Err(err).Str("previousURL", up.PreviousURL).Int64("ownerID", up.OwnerID).
				Msg("Failed to remove previous profile picture")
			result.CleanupWarning = err
		}
	}

	return result, nil
}

// deletePrevious maps a stored public URL back to its object path and
// removes the object.
func (c *PictureCoordinator) deletePrevious(ctx context.Context, previousURL string) error {
	marker := "/" + ProfilePictureBucket + "/"
	idx := strings.Index(previousURL, marker)
	if idx < 0 {
		return fmt.Errorf("previous picture URL %q does not reference the %s bucket", previousURL, ProfilePictureBucket)
	}

	path := previousURL[idx+len(marker):]
	if path == "" {
		return fmt.Errorf("previous picture URL %q has an empty object path", previousURL)
	}

	return c.store.Delete(ctx, ProfilePictureBucket, path)
}
