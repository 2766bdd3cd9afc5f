package service

import (
	"testing"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

func TestCanRenderFreePost(t *testing.T) {
	post := &domain.Post{Visibility: domain.VisibilityFree}

	if !CanRender(post, nil) {
		t.Error("free post should render for anonymous viewer")
	}
	if !CanRender(post, &domain.Profile{Premium: false}) {
		t.Error("free post should render for non-premium viewer")
	}
	if !CanRender(post, &domain.Profile{Premium: true}) {
		t.Error("free post should render for premium viewer")
	}
}

func TestCanRenderPremiumPost(t *testing.T) {
	post := &domain.Post{Visibility: domain.VisibilityPremium}

	if CanRender(post, nil) {
		t.Error("premium post should not render for anonymous viewer")
	}
	if CanRender(post, &domain.Profile{Premium: false}) {
		t.Error("premium post should not render for non-premium viewer")
	}
	if !CanRender(post, &domain.Profile{Premium: true}) {
		t.Error("premium post should render for premium viewer")
	}
}

func TestCanEdit(t *testing.T) {
	author := uuid.New()
	post := &domain.Post{AuthorID: author}

	if !CanEdit(post, author) {
		t.Error("author should be able to edit their post")
	}
	if CanEdit(post, uuid.New()) {
		t.Error("non-author should not be able to edit")
	}
}

func TestRedactWithholdsPremiumBody(t *testing.T) {
	post := &domain.Post{
		Visibility: domain.VisibilityPremium,
		Title:      "Paid",
		Content:    "secret body",
		Excerpt:    strptr("teaser"),
	}

	Redact(post, &domain.Profile{ID: uuid.New(), Premium: false})

	if post.Content != "" {
		t.Errorf("expected content withheld, got %q", post.Content)
	}
	if !post.Locked {
		t.Error("expected post marked locked")
	}
	if post.Title != "Paid" || post.Excerpt == nil {
		t.Error("masked preview fields should survive redaction")
	}
}

func TestRedactKeepsFreeBody(t *testing.T) {
	post := &domain.Post{Visibility: domain.VisibilityFree, Content: "body"}

	Redact(post, nil)

	if post.Content != "body" || post.Locked {
		t.Error("free post should not be redacted")
	}
}

func TestRedactKeepsAuthorBody(t *testing.T) {
	author := uuid.New()
	post := &domain.Post{
		Visibility: domain.VisibilityPremium,
		AuthorID:   author,
		Content:    "draft body",
	}

	Redact(post, &domain.Profile{ID: author, Premium: false})

	if post.Content != "draft body" || post.Locked {
		t.Error("author should always see their own body")
	}
}
