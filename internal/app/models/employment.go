package models

import (
	"time"
)

// EmploymentEntry is one stop in an alumnus' work history. EndDate is nil
// while the position is current.
type EmploymentEntry struct {
	ID          int64      `json:"id"`
	AlumniID    int64      `json:"alumniId"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Location    *string    `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsCurrent reports whether the entry is an ongoing position.
func (e *EmploymentEntry) IsCurrent() bool {
	return e.EndDate == nil
}
