package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements identity.UserRepository for one tenant
type GormUserRepository struct {
	users *TenantGormRepository[identity.User]
}

// NewGormUserRepository creates a user repository bound to a tenant
func NewGormUserRepository(db *gorm.DB, tenantID uuid.UUID) (*GormUserRepository, error) {
	users, err := NewTenantGormRepository[identity.User](db, "users", tenantID)
	if err != nil {
		return nil, err
	}
	return &GormUserRepository{users: users}, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.users.Save(ctx, user)
}

// FindByID finds a user by id
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return r.users.FindByID(ctx, id)
}

// FindByEmail finds a user by email within the bound tenant
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	err := r.users.DB().WithContext(ctx).
		Where("tenant_id = ? AND email = ?", r.users.TenantID(), strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GormUserDirectory implements identity.Directory. It is the one user lookup
// that runs without a tenant scope: logins arrive before any tenant is known.
type GormUserDirectory struct {
	users *GormRepository[identity.User]
}

// NewGormUserDirectory creates the login-time user directory
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{
		users: NewGormRepository[identity.User](db, "users"),
	}
}

// FindByEmail finds a user by their globally unique email
func (r *GormUserDirectory) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	err := r.users.DB().WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Save persists changes to a resolved user
func (r *GormUserDirectory) Save(ctx context.Context, user *identity.User) error {
	return r.users.Save(ctx, user)
}

// GormTenantRepository implements identity.TenantRepository. It resolves
// tenant accounts and is deliberately not tenant-bound.
type GormTenantRepository struct {
	tenants *GormRepository[identity.Tenant]
}

// NewGormTenantRepository creates the tenant account repository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{
		tenants: NewGormRepository[identity.Tenant](db, "tenants"),
	}
}

// Save creates or updates a tenant account
func (r *GormTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	return r.tenants.Save(ctx, tenant)
}

// FindByID finds a tenant account
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	return r.tenants.FindByID(ctx, id)
}
