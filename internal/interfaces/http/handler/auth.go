package handler

import (
	"strings"

	identityapp "github.com/gestionale/backend/internal/application/identity"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RefreshRequest carries the refresh token to exchange
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke together
// with the access token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates a user by email and password and issues a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var input identityapp.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair. The presented
// refresh token is revoked in the exchange.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pair)
}

// Logout revokes the current access token and, when provided, the refresh
// token. Logging out twice is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	accessToken := strings.TrimPrefix(c.GetHeader(middleware.AuthHeaderKey), middleware.BearerPrefix)

	if err := h.authService.Logout(c.Request.Context(), accessToken, req.RefreshToken); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out successfully"})
}
