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

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostAuthor   = errors.New("only the post author can perform this action")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// defaultPageSize applies when an offset is given without a limit.
const defaultPageSize = 10

// Notifier broadcasts post lifecycle events to connected clients.
type Notifier interface {
	NotifyPostPublished(post *domain.Post)
	NotifyPostUpdated(post *domain.Post)
	NotifyPostDeleted(id uuid.UUID)
}

type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

func NewPostService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *PostService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreatePostInput struct {
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Excerpt    *string            `json:"excerpt,omitempty"`
	CoverImage *string            `json:"cover_image,omitempty"`
	Visibility *domain.Visibility `json:"visibility,omitempty"`
	Status     *domain.Status     `json:"status,omitempty"`
}

type UpdatePostInput struct {
	Title      *string            `json:"title"`
	Content    *string            `json:"content"`
	Excerpt    *string            `json:"excerpt"`
	CoverImage *string            `json:"cover_image"`
	Visibility *domain.Visibility `json:"visibility"`
	Status     *domain.Status     `json:"status"`
}

type PostListResponse struct {
	Posts      []domain.Post `json:"posts"`
	TotalCount int           `json:"total_count"`
}

// List returns catalog posts visible to the viewer, newest first.
//
// Status filtering is deliberately asymmetric: an author browsing
// their own posts sees drafts too, while every other browse is pinned
// to published regardless of the status the request asked for.
func (s *PostService) List(ctx context.Context, viewer *domain.Profile, filter domain.PostFilter) (*PostListResponse, error) {
	ownFeed := filter.AuthorID != nil && viewer != nil && *filter.AuthorID == viewer.ID
	if !ownFeed {
		published := domain.StatusPublished
		filter.Status = &published
	}

	if filter.Offset > 0 && filter.Limit == 0 {
		filter.Limit = defaultPageSize
	}

	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	for i := range posts {
		summary, err := s.authorSummary(ctx, posts[i].AuthorID)
		if err != nil {
			return nil, err
		}
		posts[i].Author = summary
		Redact(&posts[i], viewer)
	}

	if posts == nil {
		posts = []domain.Post{}
	}

	return &PostListResponse{Posts: posts, TotalCount: total}, nil
}

// Get returns a single post with its author summary joined. Premium
// bodies are withheld from viewers without the entitlement.
func (s *PostService) Get(ctx context.Context, viewer *domain.Profile, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	summary, err := s.authorSummary(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	post.Author = summary
	Redact(post, viewer)

	return post, nil
}

func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Content == "" {
		return nil, ErrContentRequired
	}

	// Make sure the authorship linkage resolves before inserting.
	if err := s.ensureProfile(ctx, authorID); err != nil {
		return nil, err
	}

	visibility := domain.VisibilityFree
	if input.Visibility != nil {
		visibility = *input.Visibility
	}
	status := domain.StatusDraft
	if input.Status != nil {
		status = *input.Status
	}

	now := time.Now()
	post := &domain.Post{
		ID:         uuid.New(),
		Title:      input.Title,
		Content:    input.Content,
		Excerpt:    input.Excerpt,
		CoverImage: input.CoverImage,
		Visibility: visibility,
		Status:     status,
		AuthorID:   authorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	summary, err := s.authorSummary(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	post.Author = summary

	if s.notifier != nil && post.Status == domain.StatusPublished {
		s.notifier.NotifyPostPublished(post)
	}

	return post, nil
}

func (s *PostService) Update(ctx context.Context, userID, postID uuid.UUID, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !CanEdit(post, userID) {
		return nil, ErrNotPostAuthor
	}

	wasPublished := post.Status == domain.StatusPublished

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		post.Title = *input.Title
	}
	if input.Content != nil {
		if *input.Content == "" {
			return nil, ErrContentRequired
		}
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = input.Excerpt
	}
	if input.CoverImage != nil {
		post.CoverImage = input.CoverImage
	}
	if input.Visibility != nil {
		post.Visibility = *input.Visibility
	}
	if input.Status != nil {
		post.Status = *input.Status
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	summary, err := s.authorSummary(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	post.Author = summary

	if s.notifier != nil {
		switch {
		case !wasPublished && post.Status == domain.StatusPublished:
			s.notifier.NotifyPostPublished(post)
		case wasPublished && post.Status == domain.StatusPublished:
			s.notifier.NotifyPostUpdated(post)
		}
	}

	return post, nil
}

// Delete permanently removes a post. A missing row is reported as not
// found rather than silently ignored so clients can detect stale ids.
func (s *PostService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !CanEdit(post, userID) {
		return ErrNotPostAuthor
	}

	existed, err := s.postRepo.Delete(ctx, postID)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	if !existed {
		return ErrPostNotFound
	}

	if s.notifier != nil && post.Status == domain.StatusPublished {
		s.notifier.NotifyPostDeleted(post.ID)
	}

	return nil
}

// authorSummary resolves the lightweight author view for a post. A
// missing profile row degrades to a synthetic summary instead of
// failing the whole listing.
func (s *PostService) authorSummary(ctx context.Context, authorID uuid.UUID) (*domain.AuthorSummary, error) {
	profile, err := s.profileRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("resolving author %s: %w", authorID, err)
	}
	if profile == nil {
		return &domain.AuthorSummary{DisplayName: authorID.String()}, nil
	}
	return profile.Summary(), nil
}

func (s *PostService) ensureProfile(ctx context.Context, authorID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if _, err := s.profileRepo.GetOrCreate(ctx, authorID, user.Email); err != nil {
		return fmt.Errorf("ensuring author profile: %w", err)
	}
	return nil
}
