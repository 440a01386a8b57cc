package registry

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PersonRepository defines persistence for people. Implementations are bound
// to a single tenant.
type PersonRepository interface {
	// Save creates or updates a person
	Save(ctx context.Context, person *Person) error

	// FindByID finds a person with their assigned base, if any;
	// shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Person, error)

	// FindAll lists people. A non-empty search matches case-insensitive
	// substrings of name, address, phone and email.
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Person], error)

	// Delete removes a person; deleting a missing person is a no-op
	Delete(ctx context.Context, id uuid.UUID) error
}
