package registration

import (
	"context"
	"errors"
	"strconv"

	"github.com/alumlink/portal/internal/pkg/validation"
)

// ErrNotOnReviewStep is returned when submission is attempted before the
// review step is reached.
var ErrNotOnReviewStep = errors.New("registration: submission is only available on the review step")

// AccountMetadata is the normalized profile payload attached to account
// creation. Credentials never appear here; they travel as top-level
// arguments of CreateAccount.
type AccountMetadata struct {
	FirstName      string
	MiddleName     *string
	LastName       string
	BirthDate      string // YYYY-MM-DD
	YearBatch      *int
	YearGraduation *int
	DegreeID       int64
	Location       *string
}

// AccountCreator creates an account from validated sign-up input
type AccountCreator interface {
	CreateAccount(ctx context.Context, email, password string, metadata AccountMetadata) error
}

// Submitter validates a completed draft and turns it into an account
// creation call.
type Submitter struct {
	schema  *validation.Schema
	creator AccountCreator
}

// NewSubmitter creates a Submitter
func NewSubmitter(creator AccountCreator) *Submitter {
	return &Submitter{
		schema:  Schema(),
		creator: creator,
	}
}

// Submit validates the whole draft and invokes account creation with the
// normalized payload. The account creator is never called for an invalid
// draft.
func (s *Submitter) Submit(ctx context.Context, draft *Draft) error {
	values := draft.Values()

	if errs := s.schema.Validate(values); errs != nil {
		return errs
	}

	metadata, err := Normalize(values)
	if err != nil {
		return err
	}

	return s.creator.CreateAccount(ctx, values["email"], values["password"], metadata)
}

// Normalize converts validated string field values into their persisted
// forms: the birth date as an ISO calendar date, years and the degree
// reference as integers, and empty optional strings as nil. Credentials
// and the confirmation field are dropped entirely.
func Normalize(values validation.Values) (AccountMetadata, error) {
	birth, err := validation.ParseDate(values["birth_date"])
	if err != nil {
		return AccountMetadata{}, err
	}

	degreeID, err := strconv.ParseInt(values["degree_id"], 10, 64)
	if err != nil {
		return AccountMetadata{}, err
	}

	metadata := AccountMetadata{
		FirstName: values["first_name"],
		LastName:  values["last_name"],
		BirthDate: birth.Format("2006-01-02"),
		DegreeID:  degreeID,
	}

	if middle := values["middle_name"]; middle != "" {
		metadata.MiddleName = &middle
	}
	if location := values["location"]; location != "" {
		metadata.Location = &location
	}
	if batch, err := strconv.Atoi(values["year_batch"]); err == nil {
		metadata.YearBatch = &batch
	}
	if grad, err := strconv.Atoi(values["year_graduation"]); err == nil {
		metadata.YearGraduation = &grad
	}

	return metadata, nil
}
