package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

func toAuthResponse(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		ID:        result.User.ID,
		Username:  result.User.Username,
		Email:     result.User.Email,
		IsAdmin:   result.User.IsAdmin,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(TimeFormat),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.Registration
	if err := bindBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.Credentials
	if err := bindBody(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(result))
}
