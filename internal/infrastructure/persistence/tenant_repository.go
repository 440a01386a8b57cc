package persistence

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/persistence/tenantscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantGormRepository decorates GormRepository with mandatory tenant
// scoping. Every query gets the tenant filter first and the caller's scopes
// after it; every save stamps the bound tenant on the entity. No operation
// through this type can touch another tenant's rows.
type TenantGormRepository[T any] struct {
	repo     *GormRepository[T]
	tenantID uuid.UUID
}

// NewTenantGormRepository creates a tenant-bound repository. The nil tenant
// id is rejected: an unscoped instance must be impossible to construct.
func NewTenantGormRepository[T any](db *gorm.DB, table string, tenantID uuid.UUID) (*TenantGormRepository[T], error) {
	if err := tenantscope.Require(tenantID); err != nil {
		return nil, err
	}
	return &TenantGormRepository[T]{
		repo:     NewGormRepository[T](db, table),
		tenantID: tenantID,
	}, nil
}

// TenantID returns the bound tenant
func (r *TenantGormRepository[T]) TenantID() uuid.UUID {
	return r.tenantID
}

// Table returns the table the repository queries
func (r *TenantGormRepository[T]) Table() string {
	return r.repo.Table()
}

// DB returns the underlying handle. Callers remain responsible for tenant
// filtering when they bypass the decorated surface.
func (r *TenantGormRepository[T]) DB() *gorm.DB {
	return r.repo.DB()
}

// Save stamps the bound tenant on the entity and persists it. Any tenant
// reference carried by the payload is overwritten, never trusted.
func (r *TenantGormRepository[T]) Save(ctx context.Context, entity *T) error {
	owned, ok := any(entity).(shared.TenantOwned)
	if !ok {
		return shared.NewDomainError("INVALID_INPUT", "Entity is not tenant-owned")
	}
	tenantscope.Stamp(owned, r.tenantID)
	return r.repo.Save(ctx, entity)
}

// List runs a paginated query over the tenant's rows
func (r *TenantGormRepository[T]) List(ctx context.Context, filter shared.Filter, scopes ...Scope) (shared.Paginated[T], error) {
	return r.repo.List(ctx, filter, r.scoped(scopes)...)
}

// FindByID finds one of the tenant's entities by primary key
func (r *TenantGormRepository[T]) FindByID(ctx context.Context, id uuid.UUID, scopes ...Scope) (*T, error) {
	return r.repo.FindByID(ctx, id, r.scoped(scopes)...)
}

// DeleteByID deletes one of the tenant's entities by primary key; a row
// belonging to another tenant is invisible and the call is a no-op.
func (r *TenantGormRepository[T]) DeleteByID(ctx context.Context, id uuid.UUID, scopes ...Scope) error {
	return r.repo.DeleteByID(ctx, id, r.scoped(scopes)...)
}

// scoped prepends the tenant filter so it always runs before caller scopes
func (r *TenantGormRepository[T]) scoped(scopes []Scope) []Scope {
	all := make([]Scope, 0, len(scopes)+1)
	all = append(all, Scope(tenantscope.For(r.repo.Table(), r.tenantID)))
	return append(all, scopes...)
}
