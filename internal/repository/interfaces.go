package repository

import (
	"context"

	"blognest-backend/internal/domain"
)

// Get methods return (nil, nil) when the record does not exist. Create
// methods return a domain conflict error on unique-key violations.

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// BlogRepository defines methods for blog data access. Read methods
// populate Blog.Author with the author's display projection. List with an
// empty authorID returns every blog.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	List(ctx context.Context, authorID string) ([]domain.Blog, error)
	GetImage(ctx context.Context, id string) (*domain.Image, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines methods for comment data access. Read methods
// populate Comment.Author with the author's display projection.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByBlog(ctx context.Context, blogID string) ([]domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
