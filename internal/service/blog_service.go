package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/logger"
	"blognest-backend/internal/metrics"
	"blognest-backend/internal/repository"
	"blognest-backend/internal/validator"
)

const blogResource = "blog"

// BlogService applies ownership and existence rules around the blog store.
type BlogService struct {
	blogs     repository.BlogRepository
	users     repository.UserRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(
	blogs repository.BlogRepository,
	users repository.UserRepository,
	v *validator.Validator,
) *BlogService {
	return &BlogService{
		blogs:     blogs,
		users:     users,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new blog authored by actor. The image, if any, is stored
// verbatim with its declared content type.
func (s *BlogService) Create(ctx context.Context, actor domain.Identity, input CreateBlogInput) (_ *domain.Blog, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "create", err) }()

	now := s.now()
	blog := &domain.Blog{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		AuthorID:  actor.UserID,
		Image:     input.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if blog.Category == nil {
		blog.Category = []string{}
	}

	if err := s.validator.ValidateBlog(blog); err != nil {
		return nil, err
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	blog.Author = &domain.Author{ID: actor.UserID, Username: actor.Username}
	if blog.Image != nil {
		metrics.ImageBytesStored.Add(float64(len(blog.Image.Data)))
	}

	logger.WithUserID(actor.UserID).InfoContext(ctx, "Blog created",
		slog.String("blog_id", blog.ID),
		slog.Bool("has_image", blog.Image != nil))

	return blog, nil
}

// List returns every blog. An empty collection is reported as not found.
func (s *BlogService) List(ctx context.Context) (_ []domain.Blog, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "list", err) }()

	blogs, err := s.blogs.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, domain.NewNotFound("no blogs found")
	}
	return blogs, nil
}

// ListByAuthor returns the blogs of one user.
func (s *BlogService) ListByAuthor(ctx context.Context, authorID string) (_ []domain.Blog, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "list_by_author", err) }()

	user, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFound("user not found")
	}

	blogs, err := s.blogs.List(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, domain.NewNotFound("no blogs found for this user")
	}
	return blogs, nil
}

// Get returns a single blog.
func (s *BlogService) Get(ctx context.Context, id string) (_ *domain.Blog, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "get", err) }()

	return s.find(ctx, id)
}

// GetImage returns the raw image of a blog.
func (s *BlogService) GetImage(ctx context.Context, id string) (_ *domain.Image, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "get_image", err) }()

	img, err := s.blogs.GetImage(ctx, id)
	if err != nil {
		return nil, err
	}
	if img.Empty() {
		return nil, domain.NewNotFound("image not found")
	}
	return img, nil
}

// Update applies the non-empty fields of update when actor owns the blog or
// is an administrator.
func (s *BlogService) Update(ctx context.Context, actor domain.Identity, id string, update domain.BlogUpdate) (_ *domain.Blog, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "update", err) }()

	blog, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, blog.AuthorID, "update", blogResource); err != nil {
		return nil, err
	}

	if !update.ApplyTo(blog) {
		return blog, nil
	}

	blog.UpdatedAt = s.now()
	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Delete removes the blog when actor owns it or is an administrator. Comments
// on the blog are not removed.
func (s *BlogService) Delete(ctx context.Context, actor domain.Identity, id string) (err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(blogResource, "delete", err) }()

	blog, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(actor, blog.AuthorID, "delete", blogResource); err != nil {
		return err
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			logger.DebugContext(ctx, "Blog removed concurrently", slog.String("blog_id", id))
		}
		return err
	}

	logger.WithFields(
		slog.String("user_id", actor.UserID),
		slog.String("blog_id", id),
		slog.Bool("by_admin", actor.IsAdmin && actor.UserID != blog.AuthorID),
	).InfoContext(ctx, "Blog deleted")

	return nil
}

func (s *BlogService) find(ctx context.Context, id string) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, domain.NewNotFound("blog not found")
	}
	return blog, nil
}
