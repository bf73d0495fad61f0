package dto

import (
	"github.com/alumlink/portal/internal/app/profile"
)

// EntityStatus reports the fetch lifecycle of one snapshot entity. The
// NotAttempted state marks a fetch whose prerequisite never resolved,
// which is distinct from a fetch that ran and failed.
type EntityStatus struct {
	State string `json:"state" example:"Loaded" enums:"NotAttempted,Loading,Loaded,Failed"`
	Error string `json:"error,omitempty"`
}

func statusOf[T any](entity profile.Entity[T]) EntityStatus {
	status := EntityStatus{State: entity.State.String()}
	if entity.Err != nil {
		status.Error = entity.Err.Error()
	}
	return status
}

// ProfileOverview is the aggregator snapshot rendered for the API: each
// entity's value next to its fetch status.
type ProfileOverview struct {
	IdentityStatus   EntityStatus `json:"identityStatus"`
	ProfileStatus    EntityStatus `json:"profileStatus"`
	DegreeStatus     EntityStatus `json:"degreeStatus"`
	SocialsStatus    EntityStatus `json:"socialsStatus"`
	EmploymentStatus EntityStatus `json:"employmentStatus"`

	Profile    *AlumniProfile          `json:"profile,omitempty"`
	Degree     *DegreeData             `json:"degree,omitempty"`
	Socials    []ContactSocialResponse `json:"socials,omitempty"`
	Employment []EmploymentResponse    `json:"employment,omitempty"`
}

// FromSnapshot converts an aggregator snapshot into its response form
func FromSnapshot(snap profile.Snapshot) *ProfileOverview {
	overview := &ProfileOverview{
		IdentityStatus:   statusOf(snap.Identity),
		ProfileStatus:    statusOf(snap.Alumni),
		DegreeStatus:     statusOf(snap.Degree),
		SocialsStatus:    statusOf(snap.Socials),
		EmploymentStatus: statusOf(snap.Employment),
	}

	if snap.Alumni.State == profile.FetchLoaded && snap.Alumni.Value != nil {
		email := ""
		if snap.Identity.Value != nil {
			email = snap.Identity.Value.Email
		}
		overview.Profile = FromAlumni(snap.Alumni.Value, email)
	}

	if snap.Degree.State == profile.FetchLoaded && snap.Degree.Value != nil {
		overview.Degree = &DegreeData{
			ID:   snap.Degree.Value.ID,
			Name: snap.Degree.Value.Name,
		}
		if snap.Degree.Value.Category != nil {
			overview.Degree.Category = snap.Degree.Value.Category.Name
		}
	}

	if snap.Socials.State == profile.FetchLoaded {
		overview.Socials = make([]ContactSocialResponse, 0, len(snap.Socials.Value))
		for _, social := range snap.Socials.Value {
			overview.Socials = append(overview.Socials, FromContactSocial(social))
		}
	}

	if snap.Employment.State == profile.FetchLoaded {
		overview.Employment = make([]EmploymentResponse, 0, len(snap.Employment.Value))
		for _, entry := range snap.Employment.Value {
			overview.Employment = append(overview.Employment, FromEmployment(entry))
		}
	}

	return overview
}
