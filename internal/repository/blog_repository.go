package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blognest-backend/internal/domain"
)

const blogSelect = `
		SELECT b.id, b.title, b.content, b.category, b.author_id, u.username,
			b.image_data, b.image_content_type, b.created_at, b.updated_at
		FROM blogs b
		JOIN users u ON u.id = b.author_id
`

// PostgresBlogRepository implements BlogRepository using PostgreSQL.
type PostgresBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(pool *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{pool: pool}
}

// Create inserts a new blog. A nil image is stored as NULL.
func (r *PostgresBlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	var imageData []byte
	var contentType *string
	if blog.Image != nil {
		imageData = blog.Image.Data
		contentType = &blog.Image.ContentType
	}

	category := blog.Category
	if category == nil {
		category = []string{}
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO blogs (id, title, content, author_id, category, image_data, image_content_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, blog.ID, blog.Title, blog.Content, blog.AuthorID, category, imageData, contentType, blog.CreatedAt, blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}

	return nil
}

// GetByID retrieves a blog with its author projection.
func (r *PostgresBlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	row := r.pool.QueryRow(ctx, blogSelect+`WHERE b.id = $1`, id)

	b, err := scanBlog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}

	return b, nil
}

// List returns blogs in creation order, optionally restricted to one author.
func (r *PostgresBlogRepository) List(ctx context.Context, authorID string) ([]domain.Blog, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if authorID == "" {
		rows, err = r.pool.Query(ctx, blogSelect+`ORDER BY b.created_at`)
	} else {
		rows, err = r.pool.Query(ctx, blogSelect+`WHERE b.author_id = $1 ORDER BY b.created_at`, authorID)
	}
	if err != nil {
		return nil, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read blogs: %w", err)
	}

	return blogs, nil
}

// GetImage returns the stored image without loading the rest of the blog.
// It returns (nil, nil) when the blog or its image is absent.
func (r *PostgresBlogRepository) GetImage(ctx context.Context, id string) (*domain.Image, error) {
	var data []byte
	var contentType *string

	err := r.pool.QueryRow(ctx, `
		SELECT image_data, image_content_type FROM blogs WHERE id = $1
	`, id).Scan(&data, &contentType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog image: %w", err)
	}

	return toImage(data, contentType), nil
}

// Update writes the mutable fields of blog.
func (r *PostgresBlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	category := blog.Category
	if category == nil {
		category = []string{}
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE blogs
		SET title = $2, content = $3, category = $4, updated_at = $5
		WHERE id = $1
	`, blog.ID, blog.Title, blog.Content, category, blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("blog not found")
	}
	return nil
}

// Delete removes a blog. Its comments are left in place.
func (r *PostgresBlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("blog not found")
	}
	return nil
}

func scanBlog(row pgx.Row) (*domain.Blog, error) {
	var b domain.Blog
	var username string
	var data []byte
	var contentType *string

	if err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Category, &b.AuthorID, &username,
		&data, &contentType, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}

	if b.Category == nil {
		b.Category = []string{}
	}
	b.Author = &domain.Author{ID: b.AuthorID, Username: username}
	b.Image = toImage(data, contentType)
	return &b, nil
}

func toImage(data []byte, contentType *string) *domain.Image {
	if data == nil {
		return nil
	}
	img := &domain.Image{Data: data}
	if contentType != nil {
		img.ContentType = *contentType
	}
	return img
}
