package persistence

import (
	"context"

	"github.com/gestionale/backend/internal/domain/agreement"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAgreementRepository implements agreement.Repository. CCNL data is
// shared reference data, so this repository composes the plain generic
// repository without tenant scoping.
type GormAgreementRepository struct {
	ccnls *GormRepository[agreement.CCNL]
	rows  *GormRepository[agreement.SalaryTableRow]
}

// NewGormAgreementRepository creates the CCNL reference repository
func NewGormAgreementRepository(db *gorm.DB) *GormAgreementRepository {
	return &GormAgreementRepository{
		ccnls: NewGormRepository[agreement.CCNL](db, "ccnls"),
		rows:  NewGormRepository[agreement.SalaryTableRow](db, "salary_table_rows"),
	}
}

// Save creates or updates a CCNL together with its salary table
func (r *GormAgreementRepository) Save(ctx context.Context, ccnl *agreement.CCNL) error {
	return r.ccnls.Save(ctx, ccnl)
}

// FindByID finds a CCNL, optionally with its salary table rows
func (r *GormAgreementRepository) FindByID(ctx context.Context, id uuid.UUID, withSalaryTable bool) (*agreement.CCNL, error) {
	var scopes []Scope
	if withSalaryTable {
		scopes = append(scopes, Preload("SalaryTable"))
	}
	return r.ccnls.FindByID(ctx, id, scopes...)
}

// FindAll lists agreements; a non-empty search matches the name
func (r *GormAgreementRepository) FindAll(ctx context.Context, filter shared.Filter, withSalaryTable bool) (shared.Paginated[agreement.CCNL], error) {
	var scopes []Scope
	if withSalaryTable {
		scopes = append(scopes, Preload("SalaryTable"))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("ccnls.name ILIKE ?", pattern)
		})
	}
	return r.ccnls.List(ctx, filter, scopes...)
}

// FindLevels lists the salary table rows of one agreement; a non-empty
// search matches the level label
func (r *GormAgreementRepository) FindLevels(ctx context.Context, ccnlID uuid.UUID, filter shared.Filter) (shared.Paginated[agreement.SalaryTableRow], error) {
	scopes := []Scope{
		func(db *gorm.DB) *gorm.DB {
			return db.Where("salary_table_rows.ccnl_id = ?", ccnlID)
		},
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("salary_table_rows.level ILIKE ?", pattern)
		})
	}
	return r.rows.List(ctx, filter, scopes...)
}
