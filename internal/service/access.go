package service

import (
	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

// Access policy for the paywall and author affordances. Both the HTTP
// layer and the mutation path go through these checks; nothing else in
// the codebase decides who may see or touch a post.

// CanRender reports whether the viewer may read the full content body.
// Free posts are readable by anyone, including anonymous viewers.
// Premium posts require a premium profile.
func CanRender(post *domain.Post, viewer *domain.Profile) bool {
	if post.Visibility == domain.VisibilityFree {
		return true
	}
	return viewer != nil && viewer.Premium
}

// CanEdit reports whether the viewer owns the post.
func CanEdit(post *domain.Post, viewerID uuid.UUID) bool {
	return post.AuthorID == viewerID
}

// Redact withholds the content body from viewers who may not render it.
// The author always sees their own body (drafting a premium post must
// not lock its writer out). Title, excerpt and cover image survive for
// the masked preview.
func Redact(post *domain.Post, viewer *domain.Profile) {
	if CanRender(post, viewer) {
		return
	}
	if viewer != nil && CanEdit(post, viewer.ID) {
		return
	}
	post.Content = ""
	post.Locked = true
}
