package handler

import (
	registryapp "github.com/gestionale/backend/internal/application/registry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PersonServiceFactory builds a person service bound to the given tenant
type PersonServiceFactory func(tenantID uuid.UUID) (*registryapp.PersonService, error)

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	BaseHandler
	services PersonServiceFactory
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(services PersonServiceFactory) *PersonHandler {
	return &PersonHandler{services: services}
}

func (h *PersonHandler) service(c *gin.Context) (*registryapp.PersonService, bool) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return nil, false
	}
	svc, err := h.services(tenantID)
	if err != nil {
		h.InternalError(c, "Failed to initialize person service")
		return nil, false
	}
	return svc, true
}

// Create creates a person
func (h *PersonHandler) Create(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var model registryapp.PersonModel
	if err := c.ShouldBindJSON(&model); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	person, err := svc.Create(c.Request.Context(), model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, person)
}

// List lists people with pagination and search over name, phone and email
func (h *PersonHandler) List(c *gin.Context) {
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

// GetByID returns a person together with their current assignment
func (h *PersonHandler) GetByID(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	person, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, person)
}

// Update updates a person's personal data
func (h *PersonHandler) Update(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	var model registryapp.PersonModel
	if err := c.ShouldBindJSON(&model); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	person, err := svc.Update(c.Request.Context(), id, model)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, person)
}

// Delete deletes a person
func (h *PersonHandler) Delete(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
