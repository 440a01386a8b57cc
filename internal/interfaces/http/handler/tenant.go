package handler

import (
	identityapp "github.com/gestionale/backend/internal/application/identity"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// TenantHandler handles tenant account HTTP requests
type TenantHandler struct {
	BaseHandler
	tenantService *identityapp.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *identityapp.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Register opens a new tenant account together with its first user.
// This endpoint is public.
func (h *TenantHandler) Register(c *gin.Context) {
	var input identityapp.RegisterTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tenant, err := h.tenantService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetCurrent returns the tenant account of the authenticated user
func (h *TenantHandler) GetCurrent(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}
