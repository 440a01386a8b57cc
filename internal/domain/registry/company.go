package registry

import (
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Company is the aggregate root for a tenant's registered company.
// It owns its bases: deleting a company cascades to them.
type Company struct {
	shared.TenantEntity
	Name        string        `gorm:"type:varchar(200);not null"`
	FiscalCode  string        `gorm:"type:varchar(16);index"`
	VATNumber   string        `gorm:"type:varchar(11);index"`
	INPSNumber  string        `gorm:"type:varchar(20)"`
	INAILNumber string        `gorm:"type:varchar(20)"`
	Bases       []CompanyBase `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company with required fields
func NewCompany(tenantID uuid.UUID, name, fiscalCode, vatNumber string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	return &Company{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		FiscalCode:   strings.ToUpper(fiscalCode),
		VATNumber:    vatNumber,
	}, nil
}

// Update updates the company's registry information
func (c *Company) Update(name, fiscalCode, vatNumber string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = name
	c.FiscalCode = strings.ToUpper(fiscalCode)
	c.VATNumber = vatNumber
	c.UpdatedAt = time.Now()
	return nil
}

// SetRegistrationNumbers sets the INPS and INAIL registration codes
func (c *Company) SetRegistrationNumbers(inps, inail string) {
	c.INPSNumber = inps
	c.INAILNumber = inail
	c.UpdatedAt = time.Now()
}

// AddBase appends a new base to the company, stamped with the company's tenant
func (c *Company) AddBase(name, address string) (*CompanyBase, error) {
	base, err := NewCompanyBase(c.TenantID, c.ID, name, address)
	if err != nil {
		return nil, err
	}
	c.Bases = append(c.Bases, *base)
	return base, nil
}

// BaseIDs returns the ids of the company's persisted bases
func (c *Company) BaseIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Bases))
	for _, b := range c.Bases {
		ids = append(ids, b.ID)
	}
	return ids
}

// FindBase returns the base with the given id, or nil when the company has none
func (c *Company) FindBase(id uuid.UUID) *CompanyBase {
	for i := range c.Bases {
		if c.Bases[i].ID == id {
			return &c.Bases[i]
		}
	}
	return nil
}

// RetainsAllBases reports whether every persisted base of the company is still
// present in the given set of ids. Updates may append new bases but must never
// drop an existing one.
func (c *Company) RetainsAllBases(keptIDs []uuid.UUID) bool {
	kept := make(map[uuid.UUID]struct{}, len(keptIDs))
	for _, id := range keptIDs {
		kept[id] = struct{}{}
	}
	for _, b := range c.Bases {
		if _, ok := kept[b.ID]; !ok {
			return false
		}
	}
	return true
}

func validateCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Company name cannot exceed 200 characters")
	}
	return nil
}
