package registry

import (
	"context"
	"errors"
	"strings"

	domain "github.com/gestionale/backend/internal/domain/registry"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyService handles company registry operations for one tenant
type CompanyService struct {
	tenantID    uuid.UUID
	companyRepo domain.CompanyRepository
	personRepo  domain.PersonRepository
}

// NewCompanyService creates a new CompanyService bound to a tenant
func NewCompanyService(tenantID uuid.UUID, companyRepo domain.CompanyRepository, personRepo domain.PersonRepository) *CompanyService {
	return &CompanyService{
		tenantID:    tenantID,
		companyRepo: companyRepo,
		personRepo:  personRepo,
	}
}

// Create creates a new company together with its bases
func (s *CompanyService) Create(ctx context.Context, model CompanyModel) (*CompanyResponse, error) {
	if err := validateCompanyModel(model); err != nil {
		return nil, err
	}

	company, err := domain.NewCompany(s.tenantID, model.Name, model.FiscalCode, model.VATNumber)
	if err != nil {
		return nil, err
	}
	company.SetRegistrationNumbers(model.INPSNumber, model.INAILNumber)

	for _, base := range model.Bases {
		if _, err := company.AddBase(base.Name, base.Address); err != nil {
			return nil, err
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update updates an existing company. New bases may be appended, but the
// update can never be used to remove a persisted base: the incoming set of
// identified bases must exactly cover the current ones.
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, model CompanyModel) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateCompanyModel(model); err != nil {
		return nil, err
	}
	if err := checkBasesAppendOnly(company, model.Bases); err != nil {
		return nil, err
	}

	if err := company.Update(model.Name, model.FiscalCode, model.VATNumber); err != nil {
		return nil, err
	}
	company.SetRegistrationNumbers(model.INPSNumber, model.INAILNumber)

	for _, base := range model.Bases {
		if base.ID != nil {
			existing := company.FindBase(*base.ID)
			if err := existing.Update(base.Name, base.Address); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := company.AddBase(base.Name, base.Address); err != nil {
			return nil, err
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lists the tenant's companies; the search string matches company
// registry fields plus base name and address.
func (s *CompanyService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CompanyResponse], error) {
	page, err := s.companyRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CompanyResponse]{}, err
	}

	items := make([]CompanyResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *toCompanyResponse(&page.Items[i])
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// GetByID returns one company with its bases
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete removes a company. Employees assigned to its bases are released;
// the bases follow the company. Deleting a missing company is a no-op.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.companyRepo.Delete(ctx, id)
}

// GetBaseByID returns one company base with its company
func (s *CompanyService) GetBaseByID(ctx context.Context, baseID uuid.UUID) (*BaseResponse, error) {
	base, err := s.companyRepo.FindBaseByID(ctx, baseID)
	if err != nil {
		return nil, err
	}
	resp := toBaseResponse(base)
	return &resp, nil
}

// ListEmployees lists the employees working at any base of the company
func (s *CompanyService) ListEmployees(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[PersonResponse], error) {
	return s.toPersonPage(s.companyRepo.FindEmployees(ctx, companyID, filter))
}

// ListBaseEmployees lists the employees working at one base
func (s *CompanyService) ListBaseEmployees(ctx context.Context, baseID uuid.UUID, filter shared.Filter) (shared.Paginated[PersonResponse], error) {
	return s.toPersonPage(s.companyRepo.FindBaseEmployees(ctx, baseID, filter))
}

// AssignEmployee assigns a person to a company base. A person already
// employed at a base of a different company must be released first; moving
// between bases of the same company is allowed.
func (s *CompanyService) AssignEmployee(ctx context.Context, baseID, personID uuid.UUID) error {
	base, err := s.companyRepo.FindBaseByID(ctx, baseID)
	if err != nil {
		return err
	}
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return err
	}

	currentCompanyID := uuid.Nil
	if person.CompanyBase != nil {
		currentCompanyID = person.CompanyBase.CompanyID
	} else if person.CompanyBaseID != nil {
		current, err := s.companyRepo.FindBaseByID(ctx, *person.CompanyBaseID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if current != nil {
			currentCompanyID = current.CompanyID
		}
	}

	if err := person.AssignTo(base, currentCompanyID); err != nil {
		return err
	}
	return s.personRepo.Save(ctx, person)
}

// ReleaseEmployee removes a person's base assignment. Releasing an
// unassigned or missing person, or naming a missing base, is a no-op.
func (s *CompanyService) ReleaseEmployee(ctx context.Context, baseID, personID uuid.UUID) error {
	if _, err := s.companyRepo.FindBaseByID(ctx, baseID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if !person.IsAssigned() {
		return nil
	}

	person.Release()
	return s.personRepo.Save(ctx, person)
}

func (s *CompanyService) toPersonPage(page shared.Paginated[domain.Person], err error) (shared.Paginated[PersonResponse], error) {
	if err != nil {
		return shared.Paginated[PersonResponse]{}, err
	}
	items := make([]PersonResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *toPersonResponse(&page.Items[i])
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// checkBasesAppendOnly rejects updates whose identified bases do not exactly
// cover the company's persisted bases. The check is deliberately shallow:
// renaming an existing base is allowed, dropping or swapping one is not.
func checkBasesAppendOnly(company *domain.Company, bases []BaseModel) error {
	kept := make([]uuid.UUID, 0, len(bases))
	for _, base := range bases {
		if base.ID == nil {
			continue
		}
		if company.FindBase(*base.ID) == nil {
			return shared.NewDomainError("CONFLICT", "Update references a base that does not belong to the company")
		}
		kept = append(kept, *base.ID)
	}
	if !company.RetainsAllBases(kept) {
		return shared.NewDomainError("CONFLICT", "Update cannot be used to remove company bases")
	}
	return nil
}

// validateCompanyModel checks the shape of an inbound company payload,
// collecting per-field failures including indexed base entries.
func validateCompanyModel(model CompanyModel) error {
	verr := shared.NewValidationError()

	if strings.TrimSpace(model.Name) == "" {
		verr.Add("name", "Name is required")
	} else if len(model.Name) > 200 {
		verr.Add("name", "Name cannot exceed 200 characters")
	}
	if len(model.FiscalCode) > 16 {
		verr.Add("fiscal_code", "Fiscal code cannot exceed 16 characters")
	}
	if len(model.VATNumber) > 11 {
		verr.Add("vat_number", "VAT number cannot exceed 11 characters")
	}

	for i, base := range model.Bases {
		if strings.TrimSpace(base.Name) == "" {
			verr.AddIndexed("bases", i, "name", "Base name is required")
		} else if len(base.Name) > 200 {
			verr.AddIndexed("bases", i, "name", "Base name cannot exceed 200 characters")
		}
	}

	return verr.ErrOrNil()
}
