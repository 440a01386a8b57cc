package registry

import (
	"context"
	"strings"

	domain "github.com/gestionale/backend/internal/domain/registry"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PersonService handles employee registry operations for one tenant
type PersonService struct {
	tenantID   uuid.UUID
	personRepo domain.PersonRepository
}

// NewPersonService creates a new PersonService bound to a tenant
func NewPersonService(tenantID uuid.UUID, personRepo domain.PersonRepository) *PersonService {
	return &PersonService{
		tenantID:   tenantID,
		personRepo: personRepo,
	}
}

// Create creates a new person
func (s *PersonService) Create(ctx context.Context, model PersonModel) (*PersonResponse, error) {
	if err := validatePersonModel(model); err != nil {
		return nil, err
	}

	person, err := domain.NewPerson(s.tenantID, model.Name)
	if err != nil {
		return nil, err
	}
	if err := person.Update(model.Name, model.Address, model.Phone, model.Email); err != nil {
		return nil, err
	}

	if err := s.personRepo.Save(ctx, person); err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// Update updates an existing person's registry data. The base assignment is
// not touched here; use the company service's assign and release operations.
func (s *PersonService) Update(ctx context.Context, id uuid.UUID, model PersonModel) (*PersonResponse, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validatePersonModel(model); err != nil {
		return nil, err
	}
	if err := person.Update(model.Name, model.Address, model.Phone, model.Email); err != nil {
		return nil, err
	}

	if err := s.personRepo.Save(ctx, person); err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// List lists the tenant's people; the search string matches name, address,
// phone and email.
func (s *PersonService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[PersonResponse], error) {
	page, err := s.personRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[PersonResponse]{}, err
	}

	items := make([]PersonResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *toPersonResponse(&page.Items[i])
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// GetByID returns one person with their base assignment
func (s *PersonService) GetByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// Delete removes a person; deleting a missing person is a no-op
func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.personRepo.Delete(ctx, id)
}

func validatePersonModel(model PersonModel) error {
	verr := shared.NewValidationError()

	if strings.TrimSpace(model.Name) == "" {
		verr.Add("name", "Name is required")
	} else if len(model.Name) > 200 {
		verr.Add("name", "Name cannot exceed 200 characters")
	}
	if model.Email != "" && !strings.Contains(model.Email, "@") {
		verr.Add("email", "Email is not valid")
	}
	if len(model.Phone) > 50 {
		verr.Add("phone", "Phone cannot exceed 50 characters")
	}

	return verr.ErrOrNil()
}
