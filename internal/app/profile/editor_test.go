package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumlink/portal/internal/pkg/validation"
)

// fieldsStub records partial field updates
type fieldsStub struct {
	calls  int
	id     int64
	fields map[string]interface{}
	err    error
}

func (f *fieldsStub) UpdateFields(_ context.Context, id int64, fields map[string]interface{}) error {
	f.calls++
	f.id = id
	f.fields = fields
	return f.err
}

func newTestEditor(store *storeStub, pictureRecords *recordsStub, fieldRecords *fieldsStub) *Editor {
	return NewEditor(newTestCoordinator(store, pictureRecords), fieldRecords, zerolog.Nop())
}

func TestEditorSaveTouchedFieldsOnly(t *testing.T) {
	fields := &fieldsStub{}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{
		"location": "Porto",
	}})
	require.NoError(t, err)

	require.Equal(t, 1, fields.calls)
	assert.Equal(t, int64(7), fields.id)
	assert.Equal(t, map[string]interface{}{"location": "Porto"}, fields.fields)
}

func TestEditorSaveValidatesOnlyTouchedFields(t *testing.T) {
	fields := &fieldsStub{}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	// first_name is required by the schema but untouched here, so its
	// absence is not an error.
	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{
		"profile_description": "Alumni mentor since 2020",
	}})
	assert.NoError(t, err)
}

func TestEditorSaveRejectsInvalidTouchedField(t *testing.T) {
	fields := &fieldsStub{}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{
		"first_name": "",
	}})
	require.Error(t, err)

	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "first_name")
	assert.Zero(t, fields.calls)
}

func TestEditorSaveClearsOptionalFields(t *testing.T) {
	fields := &fieldsStub{}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{
		"middle_name": "",
		"location":    "",
		"degree_id":   "",
	}})
	require.NoError(t, err)

	require.Equal(t, 1, fields.calls)
	assert.Equal(t, map[string]interface{}{
		"middle_name": nil,
		"location":    nil,
		"degree_id":   nil,
	}, fields.fields)
}

func TestEditorSaveNormalizesTypes(t *testing.T) {
	fields := &fieldsStub{}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{
		"birth_date":      "1995-04-15",
		"year_batch":      "2013",
		"year_graduation": "2017",
		"degree_id":       "3",
	}})
	require.NoError(t, err)

	require.Equal(t, 1, fields.calls)
	birth, ok := fields.fields["birth_date"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, "1995-04-15", birth.Format("2006-01-02"))
	assert.Equal(t, 2013, fields.fields["year_batch"])
	assert.Equal(t, 2017, fields.fields["year_graduation"])
	assert.Equal(t, int64(3), fields.fields["degree_id"])
}

func TestEditorSaveWithPicture(t *testing.T) {
	store := &storeStub{}
	pictureRecords := &recordsStub{}
	fields := &fieldsStub{}
	e := newTestEditor(store, pictureRecords, fields)

	up := pngUpload("")
	outcome, err := e.Save(context.Background(), 7, EditDraft{
		Values:  validation.Values{"location": "Porto"},
		Picture: &up,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://cdn.local/profile_pictures/7/1700000000000", outcome.PictureURL)
	assert.NoError(t, outcome.UploadErr)
	assert.Equal(t, 1, fields.calls)
}

func TestEditorSavePictureFailureStillUpdatesFields(t *testing.T) {
	store := &storeStub{uploadErr: errors.New("disk full")}
	fields := &fieldsStub{}
	e := newTestEditor(store, &recordsStub{}, fields)

	up := PictureUpload{
		Content:     strings.NewReader("png-bytes"),
		Size:        1024,
		ContentType: "image/png",
	}
	outcome, err := e.Save(context.Background(), 7, EditDraft{
		Values:  validation.Values{"location": "Porto"},
		Picture: &up,
	})

	require.NoError(t, err, "a failed picture upload must not block the field update")
	assert.Error(t, outcome.UploadErr)
	assert.Empty(t, outcome.PictureURL)
	assert.Equal(t, 1, fields.calls)
}

func TestEditorSaveFieldUpdateFailure(t *testing.T) {
	fields := &fieldsStub{err: errors.New("row gone")}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{
		"location": "Porto",
	}})
	assert.Error(t, err)
}

func TestEditorSaveNoTouchedFieldsNoUpdate(t *testing.T) {
	fields := &fieldsStub{}
	e := newTestEditor(&storeStub{}, &recordsStub{}, fields)

	_, err := e.Save(context.Background(), 7, EditDraft{Values: validation.Values{}})
	require.NoError(t, err)
	assert.Zero(t, fields.calls)
}
