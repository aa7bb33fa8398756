package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/middleware"
)

// ImageResponse is an inline image embedded in a JSON body.
type ImageResponse struct {
	Data        string `json:"data"`
	ContentType string `json:"contentType"`
}

// BlogResponse represents a blog in the API response.
type BlogResponse struct {
	ID        string         `json:"_id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Category  []string       `json:"category"`
	Author    *domain.Author `json:"author"`
	Image     *ImageResponse `json:"image"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        string         `json:"_id"`
	Content   string         `json:"content"`
	BlogID    string         `json:"blog"`
	Author    *domain.Author `json:"author"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// MessageResponse confirms an operation without returning a resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// toBlogResponse converts a domain.Blog to a BlogResponse. Image bytes are
// base64 encoded here and nowhere else.
func toBlogResponse(b *domain.Blog) BlogResponse {
	resp := BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Category:  b.Category,
		Author:    b.Author,
		CreatedAt: b.CreatedAt.Format(TimeFormat),
		UpdatedAt: b.UpdatedAt.Format(TimeFormat),
	}
	if resp.Category == nil {
		resp.Category = []string{}
	}
	if resp.Author == nil {
		resp.Author = &domain.Author{ID: b.AuthorID}
	}
	if !b.Image.Empty() {
		resp.Image = &ImageResponse{Data: b.Image.Base64(), ContentType: b.Image.ContentType}
	}
	return resp
}

func toBlogResponses(blogs []domain.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		out = append(out, toBlogResponse(&blogs[i]))
	}
	return out
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		BlogID:    c.BlogID,
		Author:    c.Author,
		CreatedAt: c.CreatedAt.Format(TimeFormat),
		UpdatedAt: c.UpdatedAt.Format(TimeFormat),
	}
	if resp.Author == nil {
		resp.Author = &domain.Author{ID: c.AuthorID}
	}
	return resp
}

func toCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	return out
}

// uuidParam returns the named path parameter, rejecting values that are not
// UUIDs with a validation error.
func uuidParam(c *gin.Context, name string) (string, error) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		return "", domain.NewValidation(name+" must be a valid UUID", map[string]string{name: "must be a valid UUID"})
	}
	return v, nil
}

// bindBody decodes the request body with the binder matching its
// Content-Type, so JSON, urlencoded and multipart forms are all accepted. An
// empty body leaves obj untouched.
func bindBody(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidation("invalid request body", nil)
	}
	return nil
}

// actor returns the identity set by the auth middleware. Routes that call it
// are always mounted behind RequireAuth.
func actor(c *gin.Context) (domain.Identity, error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domain.Identity{}, domain.NewAuth("not authorized, no token")
	}
	return identity, nil
}
