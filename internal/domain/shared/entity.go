package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with a generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TenantEntity extends BaseEntity with multi-tenant ownership.
// TenantID is set once at creation and never changes afterwards; the
// persistence layer stamps it from the bound tenant, never from payloads.
type TenantEntity struct {
	BaseEntity
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// GetTenantID returns the owning tenant
func (t *TenantEntity) GetTenantID() uuid.UUID {
	return t.TenantID
}

// SetTenantID stamps the owning tenant on the entity
func (t *TenantEntity) SetTenantID(tenantID uuid.UUID) {
	t.TenantID = tenantID
}

// NewTenantEntity creates a new tenant-owned entity
func NewTenantEntity(tenantID uuid.UUID) TenantEntity {
	return TenantEntity{
		BaseEntity: NewBaseEntity(),
		TenantID:   tenantID,
	}
}

// TenantOwned is implemented by every tenant-scoped entity so the
// persistence layer can stamp ownership generically.
type TenantOwned interface {
	GetTenantID() uuid.UUID
	SetTenantID(tenantID uuid.UUID)
}
