package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the extended per-user record. Exactly one row exists per
// user id; it is created lazily on first fetch with the user's email as
// the display name.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName *string   `json:"display_name"`
	Bio         *string   `json:"bio,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Premium     bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary is the lightweight author view denormalized onto fetched posts.
func (p *Profile) Summary() *AuthorSummary {
	s := &AuthorSummary{AvatarURL: p.AvatarURL}
	if p.DisplayName != nil {
		s.DisplayName = *p.DisplayName
	}
	return s
}
