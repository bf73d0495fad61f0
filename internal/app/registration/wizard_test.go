package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// creatorStub records account creation calls
type creatorStub struct {
	calls    int
	email    string
	password string
	metadata AccountMetadata
	err      error
}

func (c *creatorStub) CreateAccount(_ context.Context, email, password string, metadata AccountMetadata) error {
	c.calls++
	c.email = email
	c.password = password
	c.metadata = metadata
	return c.err
}

func validDraftValues() map[string]string {
	return map[string]string{
		"first_name":       "Maria",
		"last_name":        "Santos",
		"birth_date":       "1995-04-15",
		"year_batch":       "2013",
		"year_graduation":  "2017",
		"degree_id":        "3",
		"location":         "Lisbon",
		"email":            "maria@example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
	}
}

func fillDraft(d *Draft, values map[string]string) {
	for field, value := range values {
		d.Set(field, value)
	}
}

func TestWizardStartsAtPersonalInfo(t *testing.T) {
	w := NewWizard(NewSubmitter(&creatorStub{}))

	assert.Equal(t, StepPersonalInfo, w.Current())
	assert.Equal(t, DirectionForward, w.Direction())
	assert.Nil(t, w.Errors())
}

func TestWizardGoNextBlockedByInvalidStep(t *testing.T) {
	w := NewWizard(NewSubmitter(&creatorStub{}))
	fillDraft(w.Draft(), validDraftValues())

	require.True(t, w.GoNext())
	require.Equal(t, StepAcademicInfo, w.Current())

	// Clear a field owned by the academic step.
	w.Draft().Set("degree_id", "")

	assert.False(t, w.GoNext())
	assert.Equal(t, StepAcademicInfo, w.Current(), "refused advance must leave the step unchanged")
	require.NotNil(t, w.Errors())
	assert.Contains(t, w.Errors(), "degree_id")
	// Only the current step's fields are reported.
	assert.Len(t, w.Errors(), 1)

	// Fixing the field unblocks the advance and clears the errors.
	w.Draft().Set("degree_id", "3")
	assert.True(t, w.GoNext())
	assert.Nil(t, w.Errors())
	assert.Equal(t, StepProfileDetails, w.Current())
}

func TestWizardGoNextDoesNotValidateOtherSteps(t *testing.T) {
	w := NewWizard(NewSubmitter(&creatorStub{}))
	fillDraft(w.Draft(), validDraftValues())

	// Break a later step's field; the first step must still advance.
	w.Draft().Set("email", "not-an-email")

	assert.True(t, w.GoNext())
	assert.Equal(t, StepAcademicInfo, w.Current())
}

func TestWizardGoPreviousIsUnconditional(t *testing.T) {
	w := NewWizard(NewSubmitter(&creatorStub{}))
	fillDraft(w.Draft(), validDraftValues())

	require.True(t, w.GoNext())
	require.Equal(t, StepAcademicInfo, w.Current())

	// Invalidate the fields of the step we are leaving.
	w.Draft().Set("year_batch", "")

	assert.True(t, w.GoPrevious())
	assert.Equal(t, StepPersonalInfo, w.Current())
	assert.Equal(t, DirectionBackward, w.Direction())

	// Draft values survive backward navigation.
	assert.Equal(t, "Maria", w.Draft().Value("first_name"))
}

func TestWizardGoPreviousAtFirstStep(t *testing.T) {
	w := NewWizard(NewSubmitter(&creatorStub{}))

	assert.False(t, w.GoPrevious())
	assert.Equal(t, StepPersonalInfo, w.Current())
}

func TestWizardFullWalkthrough(t *testing.T) {
	creator := &creatorStub{}
	w := NewWizard(NewSubmitter(creator))
	fillDraft(w.Draft(), validDraftValues())

	for _, want := range []Step{StepAcademicInfo, StepProfileDetails, StepAccountSetup, StepReview} {
		require.True(t, w.GoNext())
		require.Equal(t, want, w.Current())
		require.Equal(t, DirectionForward, w.Direction())
	}
	require.True(t, w.Current().IsFinal())

	require.NoError(t, w.Submit(context.Background()))

	require.Equal(t, 1, creator.calls)
	assert.Equal(t, "maria@example.com", creator.email)
	assert.Equal(t, "secret1", creator.password)
	assert.Equal(t, "1995-04-15", creator.metadata.BirthDate)
	assert.Equal(t, int64(3), creator.metadata.DegreeID)
	require.NotNil(t, creator.metadata.YearBatch)
	assert.Equal(t, 2013, *creator.metadata.YearBatch)
	require.NotNil(t, creator.metadata.YearGraduation)
	assert.Equal(t, 2017, *creator.metadata.YearGraduation)

	// Successful submission returns the wizard to its entry state.
	assert.Equal(t, StepPersonalInfo, w.Current())
	assert.Equal(t, DirectionForward, w.Direction())
	assert.Empty(t, w.Draft().Value("email"))
}

func TestWizardSubmitBeforeReview(t *testing.T) {
	creator := &creatorStub{}
	w := NewWizard(NewSubmitter(creator))
	fillDraft(w.Draft(), validDraftValues())

	err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotOnReviewStep)
	assert.Zero(t, creator.calls)
}

func TestWizardSubmitCreatorFailureKeepsDraft(t *testing.T) {
	creator := &creatorStub{err: errors.New("email taken")}
	w := NewWizard(NewSubmitter(creator))
	fillDraft(w.Draft(), validDraftValues())

	for w.Current() != StepReview {
		require.True(t, w.GoNext())
	}

	err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, creator.calls)

	// The wizard stays on review with the draft intact for a retry.
	assert.Equal(t, StepReview, w.Current())
	assert.Equal(t, "maria@example.com", w.Draft().Value("email"))
}

func TestWizardReset(t *testing.T) {
	w := NewWizard(NewSubmitter(&creatorStub{}))
	fillDraft(w.Draft(), validDraftValues())
	require.True(t, w.GoNext())

	w.Reset()

	assert.Equal(t, StepPersonalInfo, w.Current())
	assert.Equal(t, DirectionForward, w.Direction())
	assert.Nil(t, w.Errors())
	assert.Empty(t, w.Draft().Value("first_name"))
}

func TestStepTransitionsAreExhaustive(t *testing.T) {
	// Every non-final step has a forward target and every non-first step
	// has a backward target; anything else is unrepresentable.
	steps := []Step{StepPersonalInfo, StepAcademicInfo, StepProfileDetails, StepAccountSetup, StepReview}

	for _, s := range steps {
		_, hasNext := nextStep[s]
		assert.Equal(t, !s.IsFinal(), hasNext, s.String())

		_, hasPrev := previousStep[s]
		assert.Equal(t, s != StepPersonalInfo, hasPrev, s.String())
	}
}
