package domain

import (
	"time"

	"github.com/google/uuid"
)

type Visibility string

const (
	VisibilityFree    Visibility = "free"
	VisibilityPremium Visibility = "premium"
)

func (v Visibility) Valid() bool {
	return v == VisibilityFree || v == VisibilityPremium
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Post struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Excerpt    *string    `json:"excerpt,omitempty"`
	CoverImage *string    `json:"cover_image,omitempty"`
	Visibility Visibility `json:"visibility"`
	Status     Status     `json:"status"`
	AuthorID   uuid.UUID  `json:"author_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	// Joined fields
	Author *AuthorSummary `json:"author,omitempty"`
	// Locked marks a premium post whose body was withheld from this viewer.
	Locked bool `json:"locked,omitempty"`
}

// AuthorSummary is the read-time join of a post's author profile.
type AuthorSummary struct {
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// PostFilter narrows a catalog listing. Zero values mean "not set".
type PostFilter struct {
	AuthorID   *uuid.UUID
	Visibility *Visibility
	Status     *Status
	Search     string
	Limit      int
	Offset     int
}
