package service

import (
	"context"
	"time"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/google/uuid"
)

type stubUserRepo struct {
	users     map[uuid.UUID]*domain.User
	createErr error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type stubProfileRepo struct {
	profiles map[uuid.UUID]*domain.Profile
	creates  int
}

func newStubProfileRepo(profiles ...*domain.Profile) *stubProfileRepo {
	r := &stubProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *stubProfileRepo) GetOrCreate(ctx context.Context, id uuid.UUID, displayName string) (*domain.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	now := time.Now()
	name := displayName
	p := &domain.Profile{
		ID:          id,
		DisplayName: &name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.profiles[id] = p
	r.creates++
	return p, nil
}

func (r *stubProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.profiles[id], nil
}

func (r *stubProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

type stubPostRepo struct {
	posts      map[uuid.UUID]*domain.Post
	lastFilter *domain.PostFilter
	listResult []domain.Post
	listTotal  int
}

func newStubPostRepo(posts ...*domain.Post) *stubPostRepo {
	r := &stubPostRepo{posts: make(map[uuid.UUID]*domain.Post)}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func (r *stubPostRepo) Create(ctx context.Context, post *domain.Post) error {
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *stubPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *stubPostRepo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	f := filter
	r.lastFilter = &f
	return append([]domain.Post(nil), r.listResult...), r.listTotal, nil
}

func (r *stubPostRepo) Update(ctx context.Context, post *domain.Post) error {
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *stubPostRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

type recordingNotifier struct {
	published []*domain.Post
	updated   []*domain.Post
	deleted   []uuid.UUID
}

func (n *recordingNotifier) NotifyPostPublished(post *domain.Post) {
	n.published = append(n.published, post)
}

func (n *recordingNotifier) NotifyPostUpdated(post *domain.Post) {
	n.updated = append(n.updated, post)
}

func (n *recordingNotifier) NotifyPostDeleted(id uuid.UUID) {
	n.deleted = append(n.deleted, id)
}

func strptr(s string) *string { return &s }
