package profile

import (
	"github.com/alumlink/portal/internal/pkg/validation"
)

// EditSchema returns the validation schema of the profile-edit form. It
// is a relaxed variant of the sign-up rules: only the name fields are
// required, years are bounded rather than shape-checked, and the
// description carries a length ceiling.
func EditSchema() *validation.Schema {
	return validation.NewSchema(
		validation.Field{
			Name: "first_name",
			Rules: []validation.Rule{
				validation.MinLen(1, "First name is required"),
				validation.MaxLen(100, "First name must be at most 100 characters"),
			},
		},
		validation.Field{
			Name:     "middle_name",
			Optional: true,
			Rules:    []validation.Rule{validation.MaxLen(100, "Middle name must be at most 100 characters")},
		},
		validation.Field{
			Name: "last_name",
			Rules: []validation.Rule{
				validation.MinLen(1, "Last name is required"),
				validation.MaxLen(100, "Last name must be at most 100 characters"),
			},
		},
		validation.Field{
			Name:     "birth_date",
			Optional: true,
			Rules: []validation.Rule{
				validation.CalendarDate("Birth date must be a valid date"),
				validation.NotFutureDate("Birth date cannot be in the future"),
				validation.MinAge(13, "You must be at least 13 years old"),
			},
		},
		validation.Field{
			Name:     "year_batch",
			Optional: true,
			Rules:    []validation.Rule{validation.YearBetween(1900, "Batch year must be between 1900 and the current year")},
		},
		validation.Field{
			Name:     "year_graduation",
			Optional: true,
			Rules:    []validation.Rule{validation.YearBetween(1900, "Graduation year must be between 1900 and the current year")},
		},
		validation.Field{
			Name:     "degree_id",
			Optional: true,
			Rules:    []validation.Rule{validation.IntegerID("Degree selection is invalid")},
		},
		validation.Field{
			Name:     "profile_description",
			Optional: true,
			Rules:    []validation.Rule{validation.MaxLen(150, "Description must be at most 150 characters")},
		},
		validation.Field{
			Name:     "location",
			Optional: true,
		},
	)
}
