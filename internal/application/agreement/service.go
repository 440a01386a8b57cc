package agreement

import (
	"context"
	"strings"

	domain "github.com/gestionale/backend/internal/domain/agreement"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles CCNL reference data lookups. The catalogue is maintained
// out of band and read by every tenant, so the service is not tenant-bound.
type Service struct {
	repo domain.Repository
}

// NewService creates a new agreement Service
func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// Create loads a new labor agreement together with its salary table
func (s *Service) Create(ctx context.Context, model CCNLModel) (*CCNLResponse, error) {
	if err := validateCCNLModel(model); err != nil {
		return nil, err
	}

	ccnl, err := domain.NewCCNL(model.Name, model.Sector)
	if err != nil {
		return nil, err
	}
	for _, rm := range model.SalaryTable {
		row, err := domain.NewSalaryTableRow(ccnl.ID, rm.Level, rm.BaseSalary)
		if err != nil {
			return nil, err
		}
		row.IsApprentice = rm.IsApprentice
		row.Contingency = rm.Contingency
		row.ThirdElement = rm.ThirdElement
		row.Seniority = rm.Seniority
		row.WeeklyHours = rm.WeeklyHours
		row.WorkingDays = rm.WorkingDays
		ccnl.AddRow(*row)
	}

	if err := s.repo.Save(ctx, ccnl); err != nil {
		return nil, err
	}
	return toCCNLResponse(ccnl), nil
}

// List lists agreements without their salary tables; the search string
// matches the agreement name.
func (s *Service) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CCNLResponse], error) {
	page, err := s.repo.FindAll(ctx, filter, false)
	if err != nil {
		return shared.Paginated[CCNLResponse]{}, err
	}

	items := make([]CCNLResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *toCCNLResponse(&page.Items[i])
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// GetByID returns one agreement with its full salary table
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*CCNLResponse, error) {
	ccnl, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	return toCCNLResponse(ccnl), nil
}

// ListLevels lists the salary table rows of one agreement; the search string
// matches the level label. The agreement must exist.
func (s *Service) ListLevels(ctx context.Context, ccnlID uuid.UUID, filter shared.Filter) (shared.Paginated[SalaryRowResponse], error) {
	if _, err := s.repo.FindByID(ctx, ccnlID, false); err != nil {
		return shared.Paginated[SalaryRowResponse]{}, err
	}

	page, err := s.repo.FindLevels(ctx, ccnlID, filter)
	if err != nil {
		return shared.Paginated[SalaryRowResponse]{}, err
	}

	items := make([]SalaryRowResponse, len(page.Items))
	for i := range page.Items {
		items[i] = toSalaryRowResponse(&page.Items[i])
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

func validateCCNLModel(model CCNLModel) error {
	verr := shared.NewValidationError()

	if strings.TrimSpace(model.Name) == "" {
		verr.Add("name", "Name is required")
	} else if len(model.Name) > 200 {
		verr.Add("name", "Name cannot exceed 200 characters")
	}

	for i, row := range model.SalaryTable {
		if strings.TrimSpace(row.Level) == "" {
			verr.AddIndexed("salary_table", i, "level", "Level is required")
		}
		if row.BaseSalary.IsNegative() {
			verr.AddIndexed("salary_table", i, "base_salary", "Base salary cannot be negative")
		}
	}

	return verr.ErrOrNil()
}
