package handler

import (
	"github.com/gin-gonic/gin"

	"blognest-backend/internal/domain"
)

// Routes groups the API handlers mounted by RegisterRoutes.
type Routes struct {
	Auth     *AuthHandler
	Blogs    *BlogHandler
	Comments *CommentHandler
}

// RegisterRoutes mounts the auth, blog and comment endpoints on api.
// requireAuth guards every mutating route and the per-user listing.
func RegisterRoutes(api gin.IRouter, h Routes, requireAuth gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", h.Blogs.ListBlogs)
		blogs.POST("", requireAuth, h.Blogs.CreateBlog)
		blogs.GET("/user/:userId", requireAuth, h.Blogs.ListUserBlogs)
		blogs.GET("/:id", h.Blogs.GetBlog)
		blogs.PUT("/:id", requireAuth, h.Blogs.UpdateBlog)
		blogs.DELETE("/:id", requireAuth, h.Blogs.DeleteBlog)
		blogs.GET("/:id/image", h.Blogs.GetBlogImage)

		blogs.GET("/:id/comments", h.Comments.ListComments)
		blogs.POST("/:id/comments", requireAuth, h.Comments.CreateComment)
		blogs.PUT("/:id/comments/:commentId", requireAuth, h.Comments.UpdateComment)
		blogs.DELETE("/:id/comments/:commentId", requireAuth, h.Comments.DeleteComment)
	}

	comments := api.Group("/comments")
	{
		comments.PUT("/:id", requireAuth, h.Comments.UpdateComment)
		comments.DELETE("/:id", requireAuth, h.Comments.DeleteComment)
	}
}

// RegisterFallbacks routes unknown paths and methods through the error
// middleware so they are answered with a JSON error body.
func RegisterFallbacks(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(routeNotFound)
	router.NoMethod(routeNotFound)
}

func routeNotFound(c *gin.Context) {
	_ = c.Error(domain.NewNotFound("route not found"))
}
