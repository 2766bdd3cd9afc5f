package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/dimantha2004/Blog-publication/internal/repository"
	"github.com/google/uuid"
)

func newTestAuthService(userRepo *stubUserRepo, profileRepo *stubProfileRepo) *AuthService {
	if userRepo == nil {
		userRepo = newStubUserRepo()
	}
	if profileRepo == nil {
		profileRepo = newStubProfileRepo()
	}
	return NewAuthService(userRepo, profileRepo, "test-secret")
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	profileRepo := newStubProfileRepo()
	svc := newTestAuthService(nil, profileRepo)

	resp, err := svc.Register(context.Background(), RegisterInput{
		Email:    "writer@example.com",
		Password: "Sup3rSecret",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.User.Email != "writer@example.com" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}

	profile := profileRepo.profiles[resp.User.ID]
	if profile == nil {
		t.Fatal("expected a profile row for the new user")
	}
	if profile.DisplayName == nil || *profile.DisplayName != "writer@example.com" {
		t.Errorf("display name should default to the email, got %v", profile.DisplayName)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := &domain.User{ID: uuid.New(), Email: "taken@example.com"}
	svc := newTestAuthService(newStubUserRepo(existing), nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "Sup3rSecret",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterConcurrentDuplicateEmail(t *testing.T) {
	// A racing registration passes the lookup but trips the unique index.
	userRepo := newStubUserRepo()
	userRepo.createErr = repository.ErrDuplicate
	svc := newTestAuthService(userRepo, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "raced@example.com",
		Password: "Sup3rSecret",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newTestAuthService(nil, nil)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "login@example.com",
		Password: "Sup3rSecret",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginInput{
		Email:    "login@example.com",
		Password: "Sup3rSecret",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(nil, nil)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "login@example.com",
		Password: "Sup3rSecret",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "login@example.com",
		Password: "WrongPassw0rd",
	})
	if !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("expected ErrInvalidCreds, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(nil, nil)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever1A",
	})
	if !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("expected ErrInvalidCreds, got %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := hashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("hashPassword returned error: %v", err)
	}

	if !verifyPassword("Sup3rSecret", hash) {
		t.Error("correct password should verify")
	}
	if verifyPassword("nope", hash) {
		t.Error("wrong password should not verify")
	}
	if verifyPassword("Sup3rSecret", "not-an-encoded-hash") {
		t.Error("malformed hash should not verify")
	}
}
