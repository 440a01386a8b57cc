package handler

import (
	identityapp "github.com/gestionale/backend/internal/application/identity"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserServiceFactory builds a user service bound to the given tenant
type UserServiceFactory func(tenantID uuid.UUID) (*identityapp.UserService, error)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	BaseHandler
	services UserServiceFactory
}

// NewUserHandler creates a new user handler
func NewUserHandler(services UserServiceFactory) *UserHandler {
	return &UserHandler{services: services}
}

// ChangePasswordRequest carries a password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func (h *UserHandler) service(c *gin.Context) (*identityapp.UserService, bool) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return nil, false
	}
	svc, err := h.services(tenantID)
	if err != nil {
		h.InternalError(c, "Failed to initialize user service")
		return nil, false
	}
	return svc, true
}

// Create creates a user within the tenant
func (h *UserHandler) Create(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var model identityapp.UserModel
	if err := c.ShouldBindJSON(&model); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := svc.Create(c.Request.Context(), model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// GetByID returns a user of the tenant
func (h *UserHandler) GetByID(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// Me returns the authenticated user
func (h *UserHandler) Me(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ChangePassword changes the authenticated user's password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := svc.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed successfully"})
}

// Deactivate deactivates a user of the tenant
func (h *UserHandler) Deactivate(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := svc.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
