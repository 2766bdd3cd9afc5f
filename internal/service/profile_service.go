package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/dimantha2004/Blog-publication/internal/repository"
	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

type UpdateProfileInput struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
}

// Fetch returns the caller's profile, creating the row on first fetch.
// The default display name is the user's email. Repeated calls return
// the same row.
func (s *ProfileService) Fetch(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, userID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return profile, nil
}

// Update applies partial field changes to the caller's own profile.
// The premium flag is deliberately absent from the input; only the
// billing flow sets it.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if input.DisplayName != nil {
		profile.DisplayName = input.DisplayName
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = input.AvatarURL
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return profile, nil
}

// Summary returns the public author view for any profile id. A missing
// profile yields a synthetic summary with the raw id as display name so
// callers never fail on a dangling author reference.
func (s *ProfileService) Summary(ctx context.Context, id uuid.UUID) (*domain.AuthorSummary, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &domain.AuthorSummary{DisplayName: id.String()}, nil
	}
	return profile.Summary(), nil
}
