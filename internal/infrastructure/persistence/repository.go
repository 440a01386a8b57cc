package persistence

import (
	"context"
	"errors"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope augments a query with entity-specific joins or filters before it
// executes. Scopes are applied in the order they are given; callers compose
// behavior by passing an ordered list instead of overriding queries.
type Scope func(*gorm.DB) *gorm.DB

// Preload returns a scope loading the named association
func Preload(association string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association)
	}
}

// GormRepository is the generic paginated CRUD primitive over one entity
// type. It knows nothing about tenancy; scopes are its sole extension point.
type GormRepository[T any] struct {
	db    *gorm.DB
	table string
}

// NewGormRepository creates a repository for entities stored in the given table
func NewGormRepository[T any](db *gorm.DB, table string) *GormRepository[T] {
	return &GormRepository[T]{db: db, table: table}
}

// Table returns the table the repository queries
func (r *GormRepository[T]) Table() string {
	return r.table
}

// DB returns the underlying handle, for operations the generic surface
// cannot express (transactions, bulk updates).
func (r *GormRepository[T]) DB() *gorm.DB {
	return r.db
}

// Save inserts or updates the entity. Storage faults propagate verbatim.
func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// List runs a paginated query. Rows are counted before pagination so Total
// always reflects the full match; joins introduced by scopes never duplicate
// roots because both count and select are distinct on the primary key.
func (r *GormRepository[T]) List(ctx context.Context, filter shared.Filter, scopes ...Scope) (shared.Paginated[T], error) {
	filter, err := filter.Normalize()
	if err != nil {
		return shared.Paginated[T]{}, err
	}

	build := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(new(T))
		for _, scope := range scopes {
			q = scope(q)
		}
		return q
	}

	var total int64
	if err := build().Distinct(r.table + ".id").Count(&total).Error; err != nil {
		return shared.Paginated[T]{}, err
	}

	var items []T
	if err := build().
		Distinct(r.table+".*").
		Order(r.table+".created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&items).Error; err != nil {
		return shared.Paginated[T]{}, err
	}

	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// FindByID finds one entity by primary key. Absence is an expected outcome
// and surfaces as shared.ErrNotFound, never as a storage fault.
func (r *GormRepository[T]) FindByID(ctx context.Context, id uuid.UUID, scopes ...Scope) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, scope := range scopes {
		q = scope(q)
	}

	var entity T
	if err := q.Where(r.table+".id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// DeleteByID deletes one entity by primary key. Deletion is idempotent:
// matching no row is success, not an error. Scopes must only add filters;
// deletes cannot carry joins.
func (r *GormRepository[T]) DeleteByID(ctx context.Context, id uuid.UUID, scopes ...Scope) error {
	q := r.db.WithContext(ctx)
	for _, scope := range scopes {
		q = scope(q)
	}
	return q.Where(r.table+".id = ?", id).Delete(new(T)).Error
}
