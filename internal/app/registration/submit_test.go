package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumlink/portal/internal/pkg/validation"
)

func TestSubmitterRejectsInvalidDraft(t *testing.T) {
	creator := &creatorStub{}
	s := NewSubmitter(creator)

	draft := NewDraft()
	values := validDraftValues()
	values["confirm_password"] = "different"
	fillDraft(draft, values)

	err := s.Submit(context.Background(), draft)
	require.Error(t, err)

	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "confirm_password")
	// The mismatch belongs to the confirmation field only.
	assert.NotContains(t, fieldErrs, "password")

	assert.Zero(t, creator.calls, "account creator must not run for an invalid draft")
}

func TestSubmitterNormalizesPayload(t *testing.T) {
	creator := &creatorStub{}
	s := NewSubmitter(creator)

	draft := NewDraft()
	values := validDraftValues()
	// RFC 3339 input is persisted as a plain calendar date.
	values["birth_date"] = "1995-04-15T00:00:00Z"
	values["middle_name"] = "Isabel"
	fillDraft(draft, values)

	require.NoError(t, s.Submit(context.Background(), draft))
	require.Equal(t, 1, creator.calls)

	md := creator.metadata
	assert.Equal(t, "Maria", md.FirstName)
	assert.Equal(t, "Santos", md.LastName)
	assert.Equal(t, "1995-04-15", md.BirthDate)
	assert.Equal(t, int64(3), md.DegreeID)
	require.NotNil(t, md.MiddleName)
	assert.Equal(t, "Isabel", *md.MiddleName)
	require.NotNil(t, md.Location)
	assert.Equal(t, "Lisbon", *md.Location)
}

func TestNormalizeOptionalFields(t *testing.T) {
	values := validation.Values{
		"first_name": "Jo",
		"last_name":  "Doe",
		"birth_date": "1990-01-02",
		"degree_id":  "7",
	}

	md, err := Normalize(values)
	require.NoError(t, err)

	assert.Nil(t, md.MiddleName)
	assert.Nil(t, md.Location)
	assert.Nil(t, md.YearBatch)
	assert.Nil(t, md.YearGraduation)
	assert.Equal(t, "1990-01-02", md.BirthDate)
	assert.Equal(t, int64(7), md.DegreeID)
}

func TestDraftStageFile(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.StageFile(FileSelection{Name: "a.png", Size: 1 << 20, ContentType: "image/png"}))
	assert.Len(t, d.Files(), 1)

	err := d.StageFile(FileSelection{Name: "notes.pdf", Size: 100, ContentType: "application/pdf"})
	assert.Error(t, err)

	err = d.StageFile(FileSelection{Name: "big.jpg", Size: MaxIntakeFileSize + 1, ContentType: "image/jpeg"})
	assert.Error(t, err)

	// Fill up to the limit, then one more is refused.
	for i := d.Files(); len(i) < MaxIntakeFiles; i = d.Files() {
		require.NoError(t, d.StageFile(FileSelection{Name: "x.png", Size: 10, ContentType: "image/png"}))
	}
	err = d.StageFile(FileSelection{Name: "overflow.png", Size: 10, ContentType: "image/png"})
	assert.Error(t, err)
	assert.Len(t, d.Files(), MaxIntakeFiles)
}

func TestDraftReset(t *testing.T) {
	d := NewDraft()
	d.Set("first_name", "Maria")
	require.NoError(t, d.StageFile(FileSelection{Name: "a.png", Size: 10, ContentType: "image/png"}))

	d.Reset()

	assert.Empty(t, d.Value("first_name"))
	assert.Empty(t, d.Files())
}

func TestDraftValuesIsACopy(t *testing.T) {
	d := NewDraft()
	d.Set("email", "a@b.co")

	values := d.Values()
	values["email"] = "mutated"

	assert.Equal(t, "a@b.co", d.Value("email"))
}
