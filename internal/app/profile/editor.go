package profile

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/pkg/validation"
)

// FieldUpdater applies a partial update to a profile record. A nil map
// value clears the column.
type FieldUpdater interface {
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

// EditDraft is the transient state of one profile-edit session. Values
// holds only the fields the user touched; Picture is nil unless a
// replacement file was staged.
type EditDraft struct {
	Values  validation.Values
	Picture *PictureUpload
}

// SaveOutcome reports the non-fatal side results of a save. UploadErr is
// set when the staged picture could not be committed; the field update
// is still attempted. CleanupWarning carries a failed old-asset removal.
type SaveOutcome struct {
	PictureURL     string
	UploadErr      error
	CleanupWarning error
}

// Editor validates and persists profile edits
type Editor struct {
	schema   *validation.Schema
	pictures *PictureCoordinator
	records  FieldUpdater
	logger   zerolog.Logger
}

// NewEditor creates an Editor
func NewEditor(pictures *PictureCoordinator, records FieldUpdater, logger zerolog.Logger) *Editor {
	return &Editor{
		schema:   EditSchema(),
		pictures: pictures,
		records:  records,
		logger:   logger,
	}
}

// Save validates the touched fields and persists them. A staged picture
// goes through the upload pipeline first; its failure is recorded on the
// outcome but does not stop the field update. A validation failure or a
// failed field update is fatal and returned as the error.
func (e *Editor) Save(ctx context.Context, ownerID int64, draft EditDraft) (SaveOutcome, error) {
	touched := e.touchedFields(draft.Values)
	if errs := e.schema.ValidateFields(draft.Values, touched...); errs != nil {
		return SaveOutcome{}, errs
	}

	outcome := SaveOutcome{}

	if draft.Picture != nil {
		upload := *draft.Picture
		upload.OwnerID = ownerID

		result, err := e.pictures.Upload(ctx, upload)
		if err != nil {
			e.logger.Error().Err(err).Int64("ownerID", ownerID).Msg("Profile picture upload failed")
			outcome.UploadErr = err
		} else {
			outcome.PictureURL = result.URL
			outcome.CleanupWarning = result.CleanupWarning
		}
	}

	fields := normalizeEditValues(draft.Values)
	if len(fields) > 0 {
		if err := e.records.UpdateFields(ctx, ownerID, fields); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

// touchedFields returns the names of fields present in the draft, in
// schema order.
func (e *Editor) touchedFields(values validation.Values) []string {
	touched := []string{}
	for _, name := range e.schema.FieldNames() {
		if _, ok := values[name]; ok {
			touched = append(touched, name)
		}
	}
	return touched
}

// normalizeEditValues coerces touched string values into their column
// forms: integers for years and the degree reference, a parsed date for
// the birth date, and nil for cleared optional fields.
func normalizeEditValues(values validation.Values) map[string]interface{} {
	fields := map[string]interface{}{}

	setString := func(column string, required bool) {
		value, ok := values[column]
		if !ok {
			return
		}
		if value == "" && !required {
			fields[column] = nil
			return
		}
		fields[column] = value
	}

	setString("first_name", true)
	setString("middle_name", false)
	setString("last_name", true)
	setString("profile_description", false)
	setString("location", false)

	if value, ok := values["birth_date"]; ok {
		if value == "" {
			fields["birth_date"] = nil
		} else if t, err := validation.ParseDate(value); err == nil {
			fields["birth_date"] = t
		}
	}

	setYear := func(column string) {
		value, ok := values[column]
		if !ok {
			return
		}
		if value == "" {
			fields[column] = nil
			return
		}
		if year, err := strconv.Atoi(value); err == nil {
			fields[column] = year
		}
	}
	setYear("year_batch")
	setYear("year_graduation")

	if value, ok := values["degree_id"]; ok {
		if value == "" {
			fields["degree_id"] = nil
		} else if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			fields["degree_id"] = id
		}
	}

	return fields
}
