package agreement

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence for the CCNL reference data. The data is
// shared across tenants, so no tenant binding applies here.
type Repository interface {
	// Save creates or updates a CCNL together with its salary table
	Save(ctx context.Context, ccnl *CCNL) error

	// FindByID finds a CCNL; with withSalaryTable the rows are loaded too.
	// shared.ErrNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID, withSalaryTable bool) (*CCNL, error)

	// FindAll lists agreements; a non-empty search matches the name
	FindAll(ctx context.Context, filter shared.Filter, withSalaryTable bool) (shared.Paginated[CCNL], error)

	// FindLevels lists the salary table rows of one agreement; a non-empty
	// search matches the level label
	FindLevels(ctx context.Context, ccnlID uuid.UUID, filter shared.Filter) (shared.Paginated[SalaryTableRow], error)
}
