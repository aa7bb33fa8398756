package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blognest-backend/internal/domain"
)

const commentSelect = `
		SELECT c.id, c.content, c.blog_id, c.author_id, u.username, c.created_at, c.updated_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
`

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a new comment. The caller verifies the blog exists.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, content, blog_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.Content, comment.BlogID, comment.AuthorID, comment.CreatedAt, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment with its author projection.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	row := r.pool.QueryRow(ctx, commentSelect+`WHERE c.id = $1`, id)

	c, err := scanComment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return c, nil
}

// ListByBlog returns the comments of a blog in creation order. A blog without
// comments yields an empty slice.
func (r *PostgresCommentRepository) ListByBlog(ctx context.Context, blogID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, commentSelect+`WHERE c.blog_id = $1 ORDER BY c.created_at`, blogID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return comments, nil
}

// Update writes the comment content.
func (r *PostgresCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1
	`, comment.ID, comment.Content, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("comment not found")
	}
	return nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("comment not found")
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	var username string

	if err := row.Scan(&c.ID, &c.Content, &c.BlogID, &c.AuthorID, &username, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.Author = &domain.Author{ID: c.AuthorID, Username: username}
	return &c, nil
}
