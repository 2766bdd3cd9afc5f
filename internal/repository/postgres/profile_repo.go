package postgres

import (
	"context"
	"errors"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetOrCreate upserts the profile row keyed by user id. The DO UPDATE
// arm rewrites the key to itself so RETURNING yields the existing row
// untouched when it already exists.
func (r *ProfileRepo) GetOrCreate(ctx context.Context, id uuid.UUID, displayName string) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, display_name, is_premium, created_at, updated_at)
		VALUES ($1, $2, false, now(), now())
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING id, display_name, bio, avatar_url, is_premium, created_at, updated_at`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, id, displayName).Scan(
		&p.ID, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.Premium, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT id, display_name, bio, avatar_url, is_premium, created_at, updated_at FROM profiles WHERE id = $1`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.Premium, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *ProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, bio = $2, avatar_url = $3, is_premium = $4, updated_at = $5
		WHERE id = $6`

	_, err := r.pool.Exec(ctx, query,
		p.DisplayName, p.Bio, p.AvatarURL, p.Premium, p.UpdatedAt, p.ID,
	)
	return err
}
