package persistence

import (
	"context"

	"github.com/gestionale/backend/internal/domain/registry"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPersonRepository implements registry.PersonRepository for one tenant
type GormPersonRepository struct {
	people *TenantGormRepository[registry.Person]
}

// NewGormPersonRepository creates a person repository bound to a tenant
func NewGormPersonRepository(db *gorm.DB, tenantID uuid.UUID) (*GormPersonRepository, error) {
	people, err := NewTenantGormRepository[registry.Person](db, "people", tenantID)
	if err != nil {
		return nil, err
	}
	return &GormPersonRepository{people: people}, nil
}

// Save creates or updates a person
func (r *GormPersonRepository) Save(ctx context.Context, person *registry.Person) error {
	return r.people.Save(ctx, person)
}

// FindByID finds a person with their assigned base
func (r *GormPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.Person, error) {
	return r.people.FindByID(ctx, id, Preload("CompanyBase"))
}

// FindAll lists people, searching name, address, phone and email
func (r *GormPersonRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[registry.Person], error) {
	scopes := []Scope{Preload("CompanyBase")}
	scopes = appendPersonSearch(scopes, filter.Search)
	return r.people.List(ctx, filter, scopes...)
}

// Delete removes a person; deleting a missing person is a no-op
func (r *GormPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.people.DeleteByID(ctx, id)
}
