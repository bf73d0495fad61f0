package dto

import (
	"time"

	"github.com/alumlink/portal/internal/app/models"
)

// DegreeData represents degree information in a structured format
type DegreeData struct {
	ID       int64  `json:"id" example:"3"`
	Name     string `json:"name" example:"Computer Science"`
	Category string `json:"category,omitempty" example:"Undergraduate"`
}

// AlumniProfile represents an alumnus with the account email attached
type AlumniProfile struct {
	ID                 int64       `json:"id"`
	Email              string      `json:"email"`
	FirstName          string      `json:"firstName"`
	MiddleName         *string     `json:"middleName,omitempty"`
	LastName           string      `json:"lastName"`
	BirthDate          *string     `json:"birthDate,omitempty" example:"1999-04-23"`
	YearBatch          *int        `json:"yearBatch,omitempty"`
	YearGraduation     *int        `json:"yearGraduation,omitempty"`
	Degree             *DegreeData `json:"degree,omitempty"`
	ProfileDescription *string     `json:"profileDescription,omitempty"`
	Location           *string     `json:"location,omitempty"`
	ProfilePicture     *string     `json:"profilePicture,omitempty"`
}

// FromAlumni converts an Alumni model to its response form. The email is
// attached separately because it lives on the user record.
func FromAlumni(alumni *models.Alumni, email string) *AlumniProfile {
	if alumni == nil {
		return nil
	}

	profile := &AlumniProfile{
		ID:                 alumni.ID,
		Email:              email,
		FirstName:          alumni.FirstName,
		MiddleName:         alumni.MiddleName,
		LastName:           alumni.LastName,
		YearBatch:          alumni.YearBatch,
		YearGraduation:     alumni.YearGraduation,
		ProfileDescription: alumni.ProfileDescription,
		Location:           alumni.Location,
		ProfilePicture:     alumni.ProfilePicture,
	}

	if alumni.BirthDate != nil {
		formatted := alumni.BirthDate.Format("2006-01-02")
		profile.BirthDate = &formatted
	}

	if alumni.Degree != nil {
		profile.Degree = &DegreeData{
			ID:   alumni.Degree.ID,
			Name: alumni.Degree.Name,
		}
		if alumni.Degree.Category != nil {
			profile.Degree.Category = alumni.Degree.Category.Name
		}
	}

	return profile
}

// DirectoryEntry is the reduced profile shown in the alumni directory
type DirectoryEntry struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"fullName"`
	YearGraduation *int    `json:"yearGraduation,omitempty"`
	Degree         *string `json:"degree,omitempty"`
	Location       *string `json:"location,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// DirectoryFilter holds the optional filters of a directory listing
type DirectoryFilter struct {
	Name           string `form:"name"`
	DegreeID       int64  `form:"degreeId"`
	YearGraduation int    `form:"yearGraduation"`
	Location       string `form:"location"`
}

// ContactSocialRequest adds or replaces one social link
type ContactSocialRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

// ContactSocialResponse represents one social link of an alumnus
type ContactSocialResponse struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// FromContactSocial converts a ContactSocial model to its response form
func FromContactSocial(social *models.ContactSocial) ContactSocialResponse {
	return ContactSocialResponse{
		ID:       social.ID,
		Platform: social.Platform,
		URL:      social.URL,
	}
}

// EmploymentRequest adds one entry to the work history
type EmploymentRequest struct {
	Company     string  `json:"company" binding:"required,min=2"`
	Position    string  `json:"position" binding:"required,min=2"`
	Location    *string `json:"location"`
	StartDate   string  `json:"startDate" binding:"required" example:"2021-07-01"`
	EndDate     *string `json:"endDate" example:"2023-01-31"`
	Description *string `json:"description"`
}

// EmploymentResponse represents one work history entry
type EmploymentResponse struct {
	ID          int64      `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Location    *string    `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsCurrent   bool       `json:"isCurrent"`
}

// FromEmployment converts an EmploymentEntry model to its response form
func FromEmployment(entry *models.EmploymentEntry) EmploymentResponse {
	return EmploymentResponse{
		ID:          entry.ID,
		Company:     entry.Company,
		Position:    entry.Position,
		Location:    entry.Location,
		StartDate:   entry.StartDate,
		EndDate:     entry.EndDate,
		Description: entry.Description,
		IsCurrent:   entry.IsCurrent(),
	}
}
