// Package tenantscope restricts queries to one tenant's rows.
//
// Every tenant-bound repository prepends the scope returned by For to the
// caller's own scopes, so the tenant filter is established before any
// entity-specific join or filter runs and cannot be overridden by them.
package tenantscope

import (
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// For returns a GORM scope restricting a query on the given table to rows
// owned by the tenant.
func For(table string, tenantID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".tenant_id = ?", tenantID)
	}
}

// Require rejects the nil tenant id. Repositories call it at construction so
// an unscoped repository can never be built.
func Require(tenantID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Tenant id is required")
	}
	return nil
}

// Stamp overwrites the entity's tenant reference with the bound tenant.
// Inbound payloads are never trusted for ownership.
func Stamp(entity shared.TenantOwned, tenantID uuid.UUID) {
	entity.SetTenantID(tenantID)
}
