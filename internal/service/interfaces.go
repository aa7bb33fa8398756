package service

import (
	"context"
	"time"

	"blognest-backend/internal/domain"
)

// AuthResult is returned by registration and login.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// CreateBlogInput carries the fields of a new blog.
type CreateBlogInput struct {
	Title    string
	Content  string
	Category []string
	Image    *domain.Image
}

// AuthServiceInterface defines the interface for account operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Register creates an account and issues a token for it.
	Register(ctx context.Context, input domain.Registration) (*AuthResult, error)
	// Login verifies credentials and issues a token.
	Login(ctx context.Context, input domain.Credentials) (*AuthResult, error)
	// Authenticate validates a bearer token without a store round trip.
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

// BlogServiceInterface defines the interface for blog operations.
type BlogServiceInterface interface {
	Create(ctx context.Context, actor domain.Identity, input CreateBlogInput) (*domain.Blog, error)
	// List returns every blog; an empty result is a not-found error.
	List(ctx context.Context) ([]domain.Blog, error)
	// ListByAuthor returns the blogs of one user; an unknown user or an
	// empty result is a not-found error.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	GetImage(ctx context.Context, id string) (*domain.Image, error)
	Update(ctx context.Context, actor domain.Identity, id string, update domain.BlogUpdate) (*domain.Blog, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}

// CommentServiceInterface defines the interface for comment operations.
type CommentServiceInterface interface {
	Create(ctx context.Context, actor domain.Identity, blogID, content string) (*domain.Comment, error)
	// List returns the comments of a blog; an empty result is not an error.
	List(ctx context.Context, blogID string) ([]domain.Comment, error)
	Update(ctx context.Context, actor domain.Identity, id, content string) (*domain.Comment, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}
