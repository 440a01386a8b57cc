package handler

import (
	agreementapp "github.com/gestionale/backend/internal/application/agreement"
	"github.com/gin-gonic/gin"
)

// CCNLHandler handles labor agreement HTTP requests. Agreements are shared
// reference data, so the handler is not tenant-scoped.
type CCNLHandler struct {
	BaseHandler
	service *agreementapp.Service
}

// NewCCNLHandler creates a new CCNL handler
func NewCCNLHandler(service *agreementapp.Service) *CCNLHandler {
	return &CCNLHandler{service: service}
}

// Create loads an agreement together with its salary table
func (h *CCNLHandler) Create(c *gin.Context) {
	var model agreementapp.CCNLModel
	if err := c.ShouldBindJSON(&model); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	ccnl, err := h.service.Create(c.Request.Context(), model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ccnl)
}

// List lists agreements without their salary tables
func (h *CCNLHandler) List(c *gin.Context) {
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	page, err := h.service.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Page(c, page)
}

// GetByID returns an agreement with its full salary table
func (h *CCNLHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid CCNL ID")
		return
	}

	ccnl, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ccnl)
}

// ListLevels lists the salary levels of an agreement
func (h *CCNLHandler) ListLevels(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid CCNL ID")
		return
	}

	req, ok := h.bindList(c)
	if !ok {
		return
	}

	page, err := h.service.ListLevels(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Page(c, page)
}
