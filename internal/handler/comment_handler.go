package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blognest-backend/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest is the body of comment creation and update.
type CommentRequest struct {
	Content string `json:"content" form:"content"`
}

// ListComments handles GET /api/blogs/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	blogID, err := uuidParam(c, paramID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), blogID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponses(comments))
}

// CreateComment handles POST /api/blogs/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	identity, err := actor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	blogID, err := uuidParam(c, paramID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req CommentRequest
	if err := bindBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), identity, blogID, req.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// UpdateComment handles PUT /api/comments/:id and
// PUT /api/blogs/:id/comments/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	identity, err := actor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, err := commentParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req CommentRequest
	if err := bindBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), identity, id, req.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// DeleteComment handles DELETE /api/comments/:id and
// DELETE /api/blogs/:id/comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	identity, err := actor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, err := commentParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), identity, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "comment removed"})
}

// commentParam reads the comment id from either the flat or the nested route.
func commentParam(c *gin.Context) (string, error) {
	if c.Param(paramCommentID) != "" {
		return uuidParam(c, paramCommentID)
	}
	return uuidParam(c, paramID)
}
