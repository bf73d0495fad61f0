package models

import (
	"time"
)

// Alumni is the profile record of a graduate. Its ID equals the owning
// user's ID; everything beyond the name fields is filled in over time,
// so most columns are nullable.
type Alumni struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"firstName"`
	MiddleName         *string    `json:"middleName,omitempty"`
	LastName           string     `json:"lastName"`
	BirthDate          *time.Time `json:"birthDate,omitempty"`
	YearBatch          *int       `json:"yearBatch,omitempty"`
	YearGraduation     *int       `json:"yearGraduation,omitempty"`
	DegreeID           *int64     `json:"degreeId,omitempty"`
	ProfileDescription *string    `json:"profileDescription,omitempty"`
	Location           *string    `json:"location,omitempty"`
	ProfilePicture     *string    `json:"profilePicture,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	// Degree is populated on reads that join the degrees table.
	Degree *Degree `json:"degree,omitempty"`
}

// FullName renders the display name, skipping an absent middle name.
func (a *Alumni) FullName() string {
	if a.MiddleName != nil && *a.MiddleName != "" {
		return a.FirstName + " " + *a.MiddleName + " " + a.LastName
	}
	return a.FirstName + " " + a.LastName
}
