package handler

import (
	registryapp "github.com/gestionale/backend/internal/application/registry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyServiceFactory builds a company service bound to the given tenant.
// Handlers resolve the tenant from the JWT claims on every request.
type CompanyServiceFactory func(tenantID uuid.UUID) (*registryapp.CompanyService, error)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	BaseHandler
	services CompanyServiceFactory
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(services CompanyServiceFactory) *CompanyHandler {
	return &CompanyHandler{services: services}
}

func (h *CompanyHandler) service(c *gin.Context) (*registryapp.CompanyService, bool) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return nil, false
	}
	svc, err := h.services(tenantID)
	if err != nil {
		h.InternalError(c, "Failed to initialize company service")
		return nil, false
	}
	return svc, true
}

// Create creates a company together with its bases
func (h *CompanyHandler) Create(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var model registryapp.CompanyModel
	if err := c.ShouldBindJSON(&model); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	company, err := svc.Create(c.Request.Context(), model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, company)
}

// List lists companies with pagination and name search
func (h *CompanyHandler) List(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	req, ok := h.bindList(c)
	if !ok {
		return
	}

	page, err := svc.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Page(c, page)
}

// GetByID returns a company with its bases
func (h *CompanyHandler) GetByID(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	company, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// Update updates a company. Bases may be renamed or appended, never removed.
func (h *CompanyHandler) Update(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var model registryapp.CompanyModel
	if err := c.ShouldBindJSON(&model); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	company, err := svc.Update(c.Request.Context(), id, model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// Delete deletes a company, releasing its employees
func (h *CompanyHandler) Delete(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListEmployees lists the people assigned to any base of a company
func (h *CompanyHandler) ListEmployees(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	req, ok := h.bindList(c)
	if !ok {
		return
	}

	page, err := svc.ListEmployees(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Page(c, page)
}

// GetBase returns a single company base
func (h *CompanyHandler) GetBase(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	baseID, err := parseIDParam(c, "base_id")
	if err != nil {
		h.BadRequest(c, "Invalid base ID")
		return
	}

	base, err := svc.GetBaseByID(c.Request.Context(), baseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, base)
}

// ListBaseEmployees lists the people assigned to a company base
func (h *CompanyHandler) ListBaseEmployees(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	baseID, err := parseIDParam(c, "base_id")
	if err != nil {
		h.BadRequest(c, "Invalid base ID")
		return
	}

	req, ok := h.bindList(c)
	if !ok {
		return
	}

	page, err := svc.ListBaseEmployees(c.Request.Context(), baseID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Page(c, page)
}

// AssignEmployee assigns a person to a company base
func (h *CompanyHandler) AssignEmployee(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	baseID, err := parseIDParam(c, "base_id")
	if err != nil {
		h.BadRequest(c, "Invalid base ID")
		return
	}

	personID, err := parseIDParam(c, "person_id")
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	if err := svc.AssignEmployee(c.Request.Context(), baseID, personID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ReleaseEmployee releases a person from a company base. Releasing a person
// who is not assigned to the base is a no-op.
func (h *CompanyHandler) ReleaseEmployee(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	baseID, err := parseIDParam(c, "base_id")
	if err != nil {
		h.BadRequest(c, "Invalid base ID")
		return
	}

	personID, err := parseIDParam(c, "person_id")
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	if err := svc.ReleaseEmployee(c.Request.Context(), baseID, personID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
