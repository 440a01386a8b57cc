package persistence

import (
	"context"

	"github.com/gestionale/backend/internal/domain/registry"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/persistence/tenantscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompanyRepository implements registry.CompanyRepository for one tenant
type GormCompanyRepository struct {
	db        *gorm.DB
	tenantID  uuid.UUID
	companies *TenantGormRepository[registry.Company]
	bases     *TenantGormRepository[registry.CompanyBase]
	people    *TenantGormRepository[registry.Person]
}

// NewGormCompanyRepository creates a company repository bound to a tenant
func NewGormCompanyRepository(db *gorm.DB, tenantID uuid.UUID) (*GormCompanyRepository, error) {
	companies, err := NewTenantGormRepository[registry.Company](db, "companies", tenantID)
	if err != nil {
		return nil, err
	}
	bases, err := NewTenantGormRepository[registry.CompanyBase](db, "company_bases", tenantID)
	if err != nil {
		return nil, err
	}
	people, err := NewTenantGormRepository[registry.Person](db, "people", tenantID)
	if err != nil {
		return nil, err
	}
	return &GormCompanyRepository{
		db:        db,
		tenantID:  tenantID,
		companies: companies,
		bases:     bases,
		people:    people,
	}, nil
}

// Save creates or updates a company together with its bases. Base rows carry
// the same tenant stamp as their company. The default association upsert only
// rewrites the foreign key on conflict, so edits to persisted bases need
// FullSaveAssociations to reach the database.
func (r *GormCompanyRepository) Save(ctx context.Context, company *registry.Company) error {
	tenantscope.Stamp(company, r.tenantID)
	for i := range company.Bases {
		company.Bases[i].TenantID = r.tenantID
		company.Bases[i].CompanyID = company.ID
	}
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(company).Error
}

// FindByID finds a company with its bases
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.Company, error) {
	return r.companies.FindByID(ctx, id, Preload("Bases"))
}

// FindAll lists companies with their bases, searching across company registry
// fields and base name/address when a search string is given.
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[registry.Company], error) {
	scopes := []Scope{Preload("Bases")}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.
				Joins("LEFT JOIN company_bases ON company_bases.company_id = companies.id").
				Where(`companies.name ILIKE ?
					OR companies.fiscal_code ILIKE ?
					OR companies.vat_number ILIKE ?
					OR companies.inps_number ILIKE ?
					OR companies.inail_number ILIKE ?
					OR company_bases.name ILIKE ?
					OR company_bases.address ILIKE ?`,
					pattern, pattern, pattern, pattern, pattern, pattern, pattern)
		})
	}
	return r.companies.List(ctx, filter, scopes...)
}

// Delete removes a company. Employees assigned to its bases are released
// first inside the same transaction; the bases themselves go with the
// company through the declared cascade.
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		baseIDs := tx.Model(&registry.CompanyBase{}).
			Select("id").
			Where("company_id = ? AND tenant_id = ?", id, r.tenantID)

		if err := tx.Model(&registry.Person{}).
			Where("tenant_id = ? AND company_base_id IN (?)", r.tenantID, baseIDs).
			Update("company_base_id", nil).Error; err != nil {
			return err
		}

		return tx.
			Where("id = ? AND tenant_id = ?", id, r.tenantID).
			Delete(&registry.Company{}).Error
	})
}

// FindBaseByID finds a base with its company loaded
func (r *GormCompanyRepository) FindBaseByID(ctx context.Context, id uuid.UUID) (*registry.CompanyBase, error) {
	return r.bases.FindByID(ctx, id, Preload("Company"))
}

// FindEmployees lists people assigned to any base of the company
func (r *GormCompanyRepository) FindEmployees(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[registry.Person], error) {
	scopes := []Scope{
		Preload("CompanyBase"),
		func(db *gorm.DB) *gorm.DB {
			return db.
				Joins("JOIN company_bases ON company_bases.id = people.company_base_id").
				Where("company_bases.company_id = ?", companyID)
		},
	}
	scopes = appendPersonSearch(scopes, filter.Search)
	return r.people.List(ctx, filter, scopes...)
}

// FindBaseEmployees lists people assigned to the given base
func (r *GormCompanyRepository) FindBaseEmployees(ctx context.Context, baseID uuid.UUID, filter shared.Filter) (shared.Paginated[registry.Person], error) {
	scopes := []Scope{
		func(db *gorm.DB) *gorm.DB {
			return db.Where("people.company_base_id = ?", baseID)
		},
	}
	scopes = appendPersonSearch(scopes, filter.Search)
	return r.people.List(ctx, filter, scopes...)
}

// appendPersonSearch adds the person text search scope when a filter is set
func appendPersonSearch(scopes []Scope, search string) []Scope {
	if search == "" {
		return scopes
	}
	pattern := "%" + search + "%"
	return append(scopes, func(db *gorm.DB) *gorm.DB {
		return db.Where(`people.name ILIKE ?
			OR people.address ILIKE ?
			OR people.phone ILIKE ?
			OR people.email ILIKE ?`,
			pattern, pattern, pattern, pattern)
	})
}
