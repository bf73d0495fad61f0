package models

import (
	"time"
)

// Announcement is a portal-wide notice published by an admin
type Announcement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Event is a gathering alumni can attend
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    *string    `json:"location,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Campaign is a fundraising drive with a monetary goal
type Campaign struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CoverImage   *string    `json:"coverImage,omitempty"`
	GoalAmount   float64    `json:"goalAmount"`
	RaisedAmount float64    `json:"raisedAmount"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatedBy    int64      `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
