package models

import (
	"time"
)

// RefreshToken is an opaque long-lived credential exchanged for new access
// tokens. Rotation revokes the old token and issues a replacement.
type RefreshToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsValid reports whether the token can still be redeemed.
func (t *RefreshToken) IsValid() bool {
	return !t.Revoked && time.Now().Before(t.ExpiresAt)
}
