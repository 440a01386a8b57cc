package identity

import (
	"strings"

	"github.com/gestionale/backend/internal/domain/shared"
)

// TenantStatus represents the status of a tenant account
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
)

// Tenant is a customer account. Every tenant-scoped record in the system is
// partitioned by its tenant id; the id itself is opaque to the rest of the
// domain.
type Tenant struct {
	shared.BaseEntity
	Name   string       `gorm:"type:varchar(200);not null"`
	Status TenantStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new active tenant account
func NewTenant(name string) (*Tenant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tenant name cannot be empty")
	}

	return &Tenant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Status:     TenantStatusActive,
	}, nil
}

// IsActive reports whether the tenant may log in and operate
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// Suspend blocks the tenant account
func (t *Tenant) Suspend() {
	t.Status = TenantStatusSuspended
}
