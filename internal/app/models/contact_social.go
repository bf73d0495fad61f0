package models

import (
	"time"
)

// ContactSocial links an alumnus to one external profile or contact channel
type ContactSocial struct {
	ID        int64     `json:"id"`
	AlumniID  int64     `json:"alumniId"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
