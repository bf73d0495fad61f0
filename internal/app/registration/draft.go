package registration

import (
	"strings"

	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/validation"
)

// File intake limits for the sign-up flow. Staged files are collected for
// later use; registration itself persists only reference data.
const (
	MaxIntakeFileSize = 4 << 20 // 4 MB per file
	MaxIntakeFiles    = 5
)

// FileSelection describes one staged file without holding its bytes
type FileSelection struct {
	Name        string
	Size        int64
	ContentType string
}

// Draft is the transient union of all wizard field values plus staged
// files. It survives navigation in both directions and is discarded on
// successful submission or explicit reset.
type Draft struct {
	values validation.Values
	files  []FileSelection
}

// NewDraft creates an empty draft
func NewDraft() *Draft {
	return &Draft{values: validation.Values{}}
}

// Set records a field value
func (d *Draft) Set(field, value string) {
	d.values[field] = value
}

// Value returns a field value, empty if unset
func (d *Draft) Value(field string) string {
	return d.values[field]
}

// Values returns a copy of the current field values
func (d *Draft) Values() validation.Values {
	copied := make(validation.Values, len(d.values))
	for k, v := range d.values {
		copied[k] = v
	}
	return copied
}

// StageFile adds a file to the intake selection. Only images are
// accepted, each at most MaxIntakeFileSize bytes, and at most
// MaxIntakeFiles in total.
func (d *Draft) StageFile(file FileSelection) error {
	if len(d.files) >= MaxIntakeFiles {
		return apperrors.NewBadRequestError("At most 5 files can be attached")
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return apperrors.ErrNotAnImage
	}
	if file.Size > MaxIntakeFileSize {
		return apperrors.ErrPictureTooLarge
	}
	d.files = append(d.files, file)
	return nil
}

// Files returns the staged file selections
func (d *Draft) Files() []FileSelection {
	return d.files
}

// Reset clears every field value and staged file
func (d *Draft) Reset() {
	d.values = validation.Values{}
	d.files = nil
}
