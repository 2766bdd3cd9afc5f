package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = "id, title, content, excerpt, cover_image, visibility, status, author_id, created_at, updated_at"

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, content, excerpt, cover_image, visibility, status, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Content, post.Excerpt, post.CoverImage,
		post.Visibility, post.Status, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE id = $1", postColumns)

	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.CoverImage,
		&p.Visibility, &p.Status, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *PostRepo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	where, args := buildPostWhere(filter)

	countQuery := "SELECT COUNT(*) FROM posts" + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM posts%s ORDER BY created_at DESC", postColumns, where)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.CoverImage,
			&p.Visibility, &p.Status, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, excerpt = $3, cover_image = $4, visibility = $5, status = $6, updated_at = $7
		WHERE id = $8`

	_, err := r.pool.Exec(ctx, query,
		post.Title, post.Content, post.Excerpt, post.CoverImage,
		post.Visibility, post.Status, post.UpdatedAt, post.ID,
	)
	return err
}

// Delete removes the row permanently and reports whether it existed.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// buildPostWhere assembles the WHERE clause shared by the list and
// count queries. Search matches title or content case-insensitively.
func buildPostWhere(filter domain.PostFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		clauses = append(clauses, fmt.Sprintf("author_id = $%d", len(args)))
	}
	if filter.Visibility != nil {
		args = append(args, *filter.Visibility)
		clauses = append(clauses, fmt.Sprintf("visibility = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
