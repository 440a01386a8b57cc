package registry

import (
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyBase is an operating site of a company. It lives and dies with its
// company (cascade delete) and may have employees assigned to it.
type CompanyBase struct {
	shared.TenantEntity
	Name      string    `gorm:"type:varchar(200);not null"`
	Address   string    `gorm:"type:varchar(500)"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Company   *Company  `gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for GORM
func (CompanyBase) TableName() string {
	return "company_bases"
}

// NewCompanyBase creates a new base for the given company
func NewCompanyBase(tenantID, companyID uuid.UUID, name, address string) (*CompanyBase, error) {
	if err := validateBaseName(name); err != nil {
		return nil, err
	}

	return &CompanyBase{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Address:      address,
		CompanyID:    companyID,
	}, nil
}

// Update updates the base's name and address
func (b *CompanyBase) Update(name, address string) error {
	if err := validateBaseName(name); err != nil {
		return err
	}

	b.Name = name
	b.Address = address
	b.UpdatedAt = time.Now()
	return nil
}

func validateBaseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Base name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Base name cannot exceed 200 characters")
	}
	return nil
}
