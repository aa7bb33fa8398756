package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/middleware"
	"blognest-backend/internal/service"
)

// imageField is the multipart file field carrying a blog image.
const imageField = "image"

// BlogHandler handles blog-related HTTP requests.
type BlogHandler struct {
	blogService service.BlogServiceInterface
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService service.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogRequest is the body of blog creation and update.
type BlogRequest struct {
	Title    string   `json:"title" form:"title"`
	Content  string   `json:"content" form:"content"`
	Category []string `json:"category" form:"category"`
}

// CreateBlog handles POST /api/blogs. The body is JSON, a urlencoded form or
// a multipart form with an optional image file.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	identity, err := actor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input service.CreateBlogInput
	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		input, err = readBlogForm(c)
	} else {
		input, err = readBlogBody(c)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), identity, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toBlogResponse(blog))
}

func readBlogBody(c *gin.Context) (service.CreateBlogInput, error) {
	var req BlogRequest
	if err := bindBody(c, &req); err != nil {
		return service.CreateBlogInput{}, err
	}
	return service.CreateBlogInput{Title: req.Title, Content: req.Content, Category: req.Category}, nil
}

func readBlogForm(c *gin.Context) (service.CreateBlogInput, error) {
	input := service.CreateBlogInput{
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		Category: c.PostFormArray("category"),
	}

	fh, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil
	}
	if err != nil {
		return input, domain.NewValidation("invalid multipart form", nil)
	}

	img, err := readImage(fh)
	if err != nil {
		return input, err
	}
	input.Image = img

	middleware.RequestLogger(c).DebugContext(c.Request.Context(), "Blog image received",
		slog.String("filename", fh.Filename),
		slog.Int64("size", fh.Size),
		slog.String("content_type", img.ContentType))

	return input, nil
}

func readImage(fh *multipart.FileHeader) (*domain.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read uploaded image: %w", err)
	}

	return &domain.Image{Data: data, ContentType: fh.Header.Get("Content-Type")}, nil
}

// ListBlogs handles GET /api/blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponses(blogs))
}

// ListUserBlogs handles GET /api/blogs/user/:userId
func (h *BlogHandler) ListUserBlogs(c *gin.Context) {
	userID, err := uuidParam(c, paramUserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	blogs, err := h.blogService.ListByAuthor(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponses(blogs))
}

// GetBlog handles GET /api/blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := uuidParam(c, paramID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog))
}

// GetBlogImage handles GET /api/blogs/:id/image and writes the raw bytes
// with the stored content type.
func (h *BlogHandler) GetBlogImage(c *gin.Context) {
	id, err := uuidParam(c, paramID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	img, err := h.blogService.GetImage(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	contentType := img.ContentType
	if contentType == "" {
		contentType = defaultImageContentType
	}
	c.Data(http.StatusOK, contentType, img.Data)
}

// UpdateBlog handles PUT /api/blogs/:id. Omitted fields, including an
// omitted body, keep their stored values.
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	identity, err := actor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, err := uuidParam(c, paramID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req BlogRequest
	if err := bindBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), identity, id, domain.BlogUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toBlogResponse(blog))
}

// DeleteBlog handles DELETE /api/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	identity, err := actor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, err := uuidParam(c, paramID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), identity, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "blog removed"})
}
