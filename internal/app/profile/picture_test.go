package profile

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumlink/portal/internal/pkg/apperrors"
)

// storeStub records the order of storage operations
type storeStub struct {
	ops []string

	uploadErr error
	urlErr    error
	deleteErr error

	uploadedPath string
	deletedPath  string
}

func (s *storeStub) Upload(_ context.Context, _, path string, _ io.Reader) error {
	s.ops = append(s.ops, "upload")
	s.uploadedPath = path
	return s.uploadErr
}

func (s *storeStub) PublicURL(bucket, path string) (string, error) {
	if s.urlErr != nil {
		return "", s.urlErr
	}
	return "http://cdn.local/" + bucket + "/" + path, nil
}

func (s *storeStub) Delete(_ context.Context, _, path string) error {
	s.ops = append(s.ops, "delete")
	s.deletedPath = path
	return s.deleteErr
}

// recordsStub records profile picture commits
type recordsStub struct {
	calls int
	id    int64
	url   string
	err   error
}

func (r *recordsStub) UpdateProfilePicture(_ context.Context, id int64, url string) error {
	r.calls++
	r.id = id
	r.url = url
	return r.err
}

func newTestCoordinator(store *storeStub, records *recordsStub) *PictureCoordinator {
	c := NewPictureCoordinator(store, records, zerolog.Nop())
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func pngUpload(previousURL string) PictureUpload {
	return PictureUpload{
		OwnerID:     7,
		Content:     strings.NewReader("png-bytes"),
		Size:        1024,
		ContentType: "image/png",
		PreviousURL: previousURL,
	}
}

func TestPictureUploadHappyPath(t *testing.T) {
	store := &storeStub{}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	result, err := c.Upload(context.Background(), pngUpload(""))
	require.NoError(t, err)

	assert.Equal(t, "7/1700000000000", store.uploadedPath)
	assert.Equal(t, "http://cdn.local/profile_pictures/7/1700000000000", result.URL)
	assert.Nil(t, result.CleanupWarning)

	require.Equal(t, 1, records.calls)
	assert.Equal(t, int64(7), records.id)
	assert.Equal(t, result.URL, records.url)

	// No previous picture, so nothing was deleted.
	assert.Equal(t, []string{"upload"}, store.ops)
}

func TestPictureUploadDeletesPreviousAfterCommit(t *testing.T) {
	store := &storeStub{}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	previous := "http://cdn.local/profile_pictures/7/1600000000000"
	result, err := c.Upload(context.Background(), pngUpload(previous))
	require.NoError(t, err)

	assert.Equal(t, []string{"upload", "delete"}, store.ops, "delete must run after the new object is stored")
	assert.Equal(t, "7/1600000000000", store.deletedPath)
	assert.Nil(t, result.CleanupWarning)
}

func TestPictureUploadRejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PictureUpload)
		wantErr error
	}{
		{
			name:    "not an image",
			mutate:  func(u *PictureUpload) { u.ContentType = "application/pdf" },
			wantErr: apperrors.ErrNotAnImage,
		},
		{
			name:    "oversized",
			mutate:  func(u *PictureUpload) { u.Size = MaxPictureSize + 1 },
			wantErr: apperrors.ErrPictureTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storeStub{}
			records := &recordsStub{}
			c := newTestCoordinator(store, records)

			up := pngUpload("http://cdn.local/profile_pictures/7/old")
			tt.mutate(&up)

			_, err := c.Upload(context.Background(), up)
			assert.ErrorIs(t, err, tt.wantErr)

			// The file never reached the store and nothing was touched.
			assert.Empty(t, store.ops)
			assert.Zero(t, records.calls)
		})
	}
}

func TestPictureUploadStoreFailureAborts(t *testing.T) {
	store := &storeStub{uploadErr: errors.New("disk full")}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	_, err := c.Upload(context.Background(), pngUpload("http://cdn.local/profile_pictures/7/old"))
	require.Error(t, err)

	assert.Zero(t, records.calls)
	assert.Empty(t, store.deletedPath, "previous picture must survive a failed upload")
}

func TestPictureUploadUnresolvableURL(t *testing.T) {
	store := &storeStub{urlErr: errors.New("no base url")}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	_, err := c.Upload(context.Background(), pngUpload(""))
	assert.ErrorIs(t, err, apperrors.ErrAssetUnresolvable)
	assert.Zero(t, records.calls)
}

func TestPictureUploadRecordFailureKeepsPrevious(t *testing.T) {
	store := &storeStub{}
	records := &recordsStub{err: errors.New("row gone")}
	c := newTestCoordinator(store, records)

	_, err := c.Upload(context.Background(), pngUpload("http://cdn.local/profile_pictures/7/old"))
	require.Error(t, err)

	// The commit failed, so the previous object was not removed.
	assert.Equal(t, []string{"upload"}, store.ops)
}

func TestPictureUploadCleanupFailureIsWarningOnly(t *testing.T) {
	store := &storeStub{deleteErr: errors.New("object locked")}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	result, err := c.Upload(context.Background(), pngUpload("http://cdn.local/profile_pictures/7/old"))

	require.NoError(t, err, "a failed cleanup must not fail the upload")
	assert.Equal(t, "http://cdn.local/profile_pictures/7/1700000000000", result.URL)
	assert.Error(t, result.CleanupWarning)
	assert.Equal(t, 1, records.calls)
}

func TestPictureUploadSkipsDeleteWhenURLUnchanged(t *testing.T) {
	store := &storeStub{}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	// Previous URL equals the freshly resolved one.
	previous := "http://cdn.local/profile_pictures/7/1700000000000"
	result, err := c.Upload(context.Background(), pngUpload(previous))
	require.NoError(t, err)

	assert.Equal(t, []string{"upload"}, store.ops)
	assert.Nil(t, result.CleanupWarning)
}

func TestPictureUploadForeignPreviousURL(t *testing.T) {
	store := &storeStub{}
	records := &recordsStub{}
	c := newTestCoordinator(store, records)

	// A previous URL outside the picture bucket is reported as a warning,
	// never passed to the store.
	result, err := c.Upload(context.Background(), pngUpload("http://elsewhere.example/other/1"))
	require.NoError(t, err)

	assert.Error(t, result.CleanupWarning)
	assert.Equal(t, []string{"upload"}, store.ops)
}
