package models

import (
	"time"
)

// RoleType represents the role of a user in the portal
type RoleType string

const (
	// RoleAlumnus is a registered graduate
	RoleAlumnus RoleType = "ALUMNUS"
	// RoleAdmin manages portal content
	RoleAdmin RoleType = "ADMIN"
)

// User represents an account that can sign in to the portal
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	RoleType  RoleType  `json:"roleType"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
