// Package registration implements the multi-step sign-up workflow: a
// step machine gating forward navigation on field validation, a transient
// draft holding form input and staged files, and a submitter that
// normalizes the draft into an account-creation call.
package registration

// Step identifies one screen of the sign-up wizard
type Step int

// Wizard steps in visit order. Review is terminal; submission is only
// available there.
const (
	StepPersonalInfo Step = iota
	StepAcademicInfo
	StepProfileDetails
	StepAccountSetup
	StepReview
)

// String returns the step name
func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "PersonalInfo"
	case StepAcademicInfo:
		return "AcademicInfo"
	case StepProfileDetails:
		return "ProfileDetails"
	case StepAccountSetup:
		return "AccountSetup"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// Transition tables. Absent entries mean the move is not possible, which
// makes skipping a step unrepresentable.
var (
	nextStep = map[Step]Step{
		StepPersonalInfo:   StepAcademicInfo,
		StepAcademicInfo:   StepProfileDetails,
		StepProfileDetails: StepAccountSetup,
		StepAccountSetup:   StepReview,
	}

	previousStep = map[Step]Step{
		StepAcademicInfo:   StepPersonalInfo,
		StepProfileDetails: StepAcademicInfo,
		StepAccountSetup:   StepProfileDetails,
		StepReview:         StepAccountSetup,
	}

	// stepFields maps each step to the fields it owns. Advancing past a
	// step requires exactly this subset to validate.
	stepFields = map[Step][]string{
		StepPersonalInfo:   {"first_name", "last_name", "birth_date"},
		StepAcademicInfo:   {"year_batch", "year_graduation", "degree_id"},
		StepProfileDetails: {"location", "profile_description"},
		StepAccountSetup:   {"email", "password", "confirm_password"},
		StepReview:         {},
	}
)

// Fields returns the field names owned by the step
func (s Step) Fields() []string {
	return stepFields[s]
}

// IsFinal reports whether the step is the terminal review screen
func (s Step) IsFinal() bool {
	return s == StepReview
}
