package registry

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyRepository defines persistence for companies. Implementations are
// bound to a single tenant: every method only sees that tenant's rows.
type CompanyRepository interface {
	// Save creates or updates a company together with its bases
	Save(ctx context.Context, company *Company) error

	// FindByID finds a company with its bases; shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindAll lists companies with their bases. A non-empty search matches
	// case-insensitive substrings of the company's registry fields and of its
	// bases' name and address.
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Company], error)

	// Delete removes a company, releasing employees assigned to its bases
	// first. Deleting a missing company is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindBaseByID finds a base with its company; shared.ErrNotFound when absent
	FindBaseByID(ctx context.Context, id uuid.UUID) (*CompanyBase, error)

	// FindEmployees lists people assigned to any base of the company
	FindEmployees(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[Person], error)

	// FindBaseEmployees lists people assigned to the given base
	FindBaseEmployees(ctx context.Context, baseID uuid.UUID, filter shared.Filter) (shared.Paginated[Person], error)
}
