package registration

import (
	"github.com/alumlink/portal/internal/pkg/validation"
)

// Schema returns the validation schema of the sign-up form. Rules run in
// order and the first failure per field wins.
func Schema() *validation.Schema {
	return validation.NewSchema(
		validation.Field{
			Name:  "first_name",
			Rules: []validation.Rule{validation.MinLen(2, "First name must be at least 2 characters")},
		},
		validation.Field{
			Name:     "middle_name",
			Optional: true,
		},
		validation.Field{
			Name:  "last_name",
			Rules: []validation.Rule{validation.MinLen(2, "Last name must be at least 2 characters")},
		},
		validation.Field{
			Name: "birth_date",
			Rules: []validation.Rule{
				validation.CalendarDate("Birth date must be a valid date"),
				validation.NotFutureDate("Birth date cannot be in the future"),
				validation.MinAge(13, "You must be at least 13 years old"),
			},
		},
		validation.Field{
			Name:  "year_batch",
			Rules: []validation.Rule{validation.FourDigitYear("Batch year must be a 4-digit year")},
		},
		validation.Field{
			Name:  "year_graduation",
			Rules: []validation.Rule{validation.FourDigitYear("Graduation year must be a 4-digit year")},
		},
		validation.Field{
			Name:  "degree_id",
			Rules: []validation.Rule{validation.IntegerID("Please select a degree")},
		},
		validation.Field{
			Name:  "location",
			Rules: []validation.Rule{validation.MinLen(1, "Location is required")},
		},
		validation.Field{
			Name:     "profile_description",
			Optional: true,
			Rules:    []validation.Rule{validation.MaxLen(150, "Description must be at most 150 characters")},
		},
		validation.Field{
			Name:  "email",
			Rules: []validation.Rule{validation.Email("Email must be a valid address")},
		},
		validation.Field{
			Name:  "password",
			Rules: []validation.Rule{validation.MinLen(6, "Password must be at least 6 characters")},
		},
		validation.Field{
			Name:  "confirm_password",
			Rules: []validation.Rule{validation.EqualsField("password", "Passwords do not match")},
		},
	)
}
