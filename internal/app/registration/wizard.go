package registration

import (
	"context"

	"github.com/alumlink/portal/internal/pkg/validation"
)

// Direction records which way the wizard last moved. Consumers use it to
// pick a presentation variant; it carries no gating logic.
type Direction int

const (
	DirectionForward  Direction = 1
	DirectionBackward Direction = -1
)

// Wizard drives the sign-up flow. Forward navigation is gated on the
// current step's fields validating; backward navigation is unconditional
// and never re-validates.
type Wizard struct {
	schema    *validation.Schema
	draft     *Draft
	submitter *Submitter

	current   Step
	direction Direction
	errors    validation.FieldErrors
}

// NewWizard creates a wizard positioned at the first step
func NewWizard(submitter *Submitter) *Wizard {
	return &Wizard{
		schema:    Schema(),
		draft:     NewDraft(),
		submitter: submitter,
		current:   StepPersonalInfo,
		direction: DirectionForward,
	}
}

// Current returns the active step
func (w *Wizard) Current() Step {
	return w.current
}

// Direction returns which way the wizard last moved
func (w *Wizard) Direction() Direction {
	return w.direction
}

// Draft returns the mutable form state
func (w *Wizard) Draft() *Draft {
	return w.draft
}

// Errors returns the field errors of the last refused transition or
// submission, nil when the last operation succeeded.
func (w *Wizard) Errors() validation.FieldErrors {
	return w.errors
}

// GoNext validates the current step's fields and advances on success.
// On failure the step is unchanged and the field errors are retained
// for inline display.
func (w *Wizard) GoNext() bool {
	next, ok := nextStep[w.current]
	if !ok {
		return false
	}

	if errs := w.schema.ValidateFields(w.draft.Values(), w.current.Fields()...); errs != nil {
		w.errors = errs
		return false
	}

	w.errors = nil
	w.current = next
	w.direction = DirectionForward
	return true
}

// GoPrevious moves back one step. It never validates and never fails
// except at the first step, where there is nowhere to go.
func (w *Wizard) GoPrevious() bool {
	prev, ok := previousStep[w.current]
	if !ok {
		return false
	}

	w.current = prev
	w.direction = DirectionBackward
	return true
}

// Reset returns the wizard to the first step and clears the draft. Used
// when the flow is re-entered from the welcome screen.
func (w *Wizard) Reset() {
	w.current = StepPersonalInfo
	w.direction = DirectionForward
	w.errors = nil
	w.draft.Reset()
}

// Submit runs the full schema against the draft and, when valid, hands
// the normalized payload to the account creator. Submission is only
// available on the review step. On failure the wizard stays on review
// with the draft intact.
func (w *Wizard) Submit(ctx context.Context) error {
	if !w.current.IsFinal() {
		return ErrNotOnReviewStep
	}

	if errs := w.schema.Validate(w.draft.Values()); errs != nil {
		w.errors = errs
		return errs
	}

	w.errors = nil
	if err := w.submitter.Submit(ctx, w.draft); err != nil {
		return err
	}

	// The account exists now; the flow returns to its entry state.
	w.Reset()
	return nil
}
