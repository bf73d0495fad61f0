package dto

import (
	"time"

	"github.com/alumlink/portal/internal/app/models"
)

// AnnouncementResponse represents a published announcement
type AnnouncementResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// FromAnnouncement converts an Announcement model to its response form
func FromAnnouncement(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		CoverImage:  a.CoverImage,
		PublishedAt: a.PublishedAt,
	}
}

// EventResponse represents an upcoming or past event
type EventResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    *string    `json:"location,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

// FromEvent converts an Event model to its response form
func FromEvent(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		CoverImage:  e.CoverImage,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
	}
}

// CampaignResponse represents a fundraising campaign
type CampaignResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CoverImage   *string    `json:"coverImage,omitempty"`
	GoalAmount   float64    `json:"goalAmount"`
	RaisedAmount float64    `json:"raisedAmount"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// FromCampaign converts a Campaign model to its response form
func FromCampaign(c *models.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		CoverImage:   c.CoverImage,
		GoalAmount:   c.GoalAmount,
		RaisedAmount: c.RaisedAmount,
		Deadline:     c.Deadline,
	}
}
