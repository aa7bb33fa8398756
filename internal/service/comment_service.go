package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/logger"
	"blognest-backend/internal/metrics"
	"blognest-backend/internal/repository"
	"blognest-backend/internal/validator"
)

const commentResource = "comment"

// CommentService applies ownership and parent-blog rules around the comment
// store.
type CommentService struct {
	comments  repository.CommentRepository
	blogs     repository.BlogRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	blogs repository.BlogRepository,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		comments:  comments,
		blogs:     blogs,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create adds a comment by actor to an existing blog. An unknown blog is
// reported before the content is validated.
func (s *CommentService) Create(ctx context.Context, actor domain.Identity, blogID, content string) (_ *domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(commentResource, "create", err) }()

	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, domain.NewNotFound("blog not found")
	}

	now := s.now()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		BlogID:    blogID,
		AuthorID:  actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validator.ValidateComment(comment); err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.Author = &domain.Author{ID: actor.UserID, Username: actor.Username}

	logger.WithUserID(actor.UserID).InfoContext(ctx, "Comment created",
		slog.String("comment_id", comment.ID),
		slog.String("blog_id", blogID))

	return comment, nil
}

// List returns the comments of a blog. No comments is an empty slice.
func (s *CommentService) List(ctx context.Context, blogID string) (_ []domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(commentResource, "list", err) }()

	comments, err := s.comments.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// Update replaces the content of a comment owned by actor, or by anyone when
// actor is an administrator. Empty content leaves the comment unchanged.
func (s *CommentService) Update(ctx context.Context, actor domain.Identity, id, content string) (_ *domain.Comment, err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(commentResource, "update", err) }()

	comment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, comment.AuthorID, "update", commentResource); err != nil {
		return nil, err
	}

	if !comment.ApplyContent(content) {
		return comment, nil
	}

	comment.UpdatedAt = s.now()
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Delete removes a comment owned by actor, or by anyone when actor is an
// administrator.
func (s *CommentService) Delete(ctx context.Context, actor domain.Identity, id string) (err error) {
	timer := metrics.NewTimer()
	defer func() { timer.ObserveOperation(commentResource, "delete", err) }()

	comment, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(actor, comment.AuthorID, "delete", commentResource); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			logger.DebugContext(ctx, "Comment removed concurrently", slog.String("comment_id", id))
		}
		return err
	}

	logger.WithFields(
		slog.String("user_id", actor.UserID),
		slog.String("comment_id", id),
		slog.Bool("by_admin", actor.IsAdmin && actor.UserID != comment.AuthorID),
	).InfoContext(ctx, "Comment deleted")

	return nil
}

func (s *CommentService) find(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.NewNotFound("comment not found")
	}
	return comment, nil
}
