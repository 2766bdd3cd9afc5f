package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

func TestFetchCreatesProfileOnce(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "new@example.com"}
	profileRepo := newStubProfileRepo()
	svc := NewProfileService(profileRepo, newStubUserRepo(user))

	first, err := svc.Fetch(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if first.DisplayName == nil || *first.DisplayName != user.Email {
		t.Errorf("display name should default to the email, got %v", first.DisplayName)
	}
	if first.Premium {
		t.Error("new profile should not be premium")
	}

	second, err := svc.Fetch(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("second Fetch returned error: %v", err)
	}
	if second.ID != first.ID {
		t.Error("second fetch should return the same row")
	}
	if profileRepo.creates != 1 {
		t.Errorf("expected exactly one profile creation, got %d", profileRepo.creates)
	}
}

func TestFetchUnknownUser(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newStubUserRepo())

	_, err := svc.Fetch(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfileFields(t *testing.T) {
	id := uuid.New()
	profileRepo := newStubProfileRepo(&domain.Profile{ID: id, DisplayName: strptr("old"), Premium: true})
	svc := NewProfileService(profileRepo, newStubUserRepo())

	updated, err := svc.Update(context.Background(), id, UpdateProfileInput{
		DisplayName: strptr("New Name"),
		Bio:         strptr("about me"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if *updated.DisplayName != "New Name" || *updated.Bio != "about me" {
		t.Errorf("fields not applied: %+v", updated)
	}
	if !updated.Premium {
		t.Error("premium flag must survive a profile update untouched")
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("updated_at should be stamped")
	}
}

func TestUpdateMissingProfile(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newStubUserRepo())

	_, err := svc.Update(context.Background(), uuid.New(), UpdateProfileInput{DisplayName: strptr("x")})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSummaryFallsBackToRawID(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), newStubUserRepo())

	id := uuid.New()
	summary, err := svc.Summary(context.Background(), id)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.DisplayName != id.String() || summary.AvatarURL != nil {
		t.Errorf("expected synthetic summary, got %+v", summary)
	}
}
