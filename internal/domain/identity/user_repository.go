package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence for users. Implementations are bound to
// a single tenant.
type UserRepository interface {
	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// FindByID finds a user; shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email; shared.ErrNotFound when absent
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// Directory resolves accounts at login time, before any tenant binding
// exists. It is the only user lookup that crosses tenants.
type Directory interface {
	// FindByEmail finds a user by their globally unique email;
	// shared.ErrNotFound when absent
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Save persists changes to a resolved user, such as the login stamp
	Save(ctx context.Context, user *User) error
}

// TenantRepository defines persistence for tenant accounts themselves. This
// is the one repository that is not tenant-bound: it resolves tenants.
type TenantRepository interface {
	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// FindByID finds a tenant; shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
}
