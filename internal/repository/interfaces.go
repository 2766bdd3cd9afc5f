package repository

import (
	"context"
	"errors"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

// ErrDuplicate reports a unique-constraint violation on insert.
var ErrDuplicate = errors.New("duplicate row")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	// GetOrCreate returns the profile for id, inserting a default row
	// (display name, premium=false) if none exists. The insert is an
	// atomic upsert so concurrent first fetches cannot race.
	GetOrCreate(ctx context.Context, id uuid.UUID, displayName string) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	// List returns posts matching the filter ordered by created_at
	// descending, plus the total match count ignoring limit/offset.
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
