package registry

import (
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Person is an employee record. A person is assigned to at most one company
// base at a time; an unassigned person has a nil CompanyBaseID.
type Person struct {
	shared.TenantEntity
	Name          string       `gorm:"type:varchar(200);not null"`
	Address       string       `gorm:"type:varchar(500)"`
	Phone         string       `gorm:"type:varchar(50);index"`
	Email         string       `gorm:"type:varchar(200);index"`
	CompanyBaseID *uuid.UUID   `gorm:"type:uuid;index"`
	CompanyBase   *CompanyBase `gorm:"foreignKey:CompanyBaseID"`
}

// TableName returns the table name for GORM
func (Person) TableName() string {
	return "people"
}

// NewPerson creates a new person with required fields
func NewPerson(tenantID uuid.UUID, name string) (*Person, error) {
	if err := validatePersonName(name); err != nil {
		return nil, err
	}

	return &Person{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
	}, nil
}

// Update updates the person's registry information
func (p *Person) Update(name, address, phone, email string) error {
	if err := validatePersonName(name); err != nil {
		return err
	}

	p.Name = name
	p.Address = address
	p.Phone = phone
	p.Email = strings.ToLower(email)
	p.UpdatedAt = time.Now()
	return nil
}

// IsAssigned reports whether the person currently works at a base
func (p *Person) IsAssigned() bool {
	return p.CompanyBaseID != nil
}

// AssignTo assigns the person to a base. Moving between bases of the same
// company is always allowed; moving to a base of a different company requires
// releasing the person first.
func (p *Person) AssignTo(base *CompanyBase, currentCompanyID uuid.UUID) error {
	if p.IsAssigned() && currentCompanyID != base.CompanyID {
		return shared.NewDomainError("CONFLICT", "Person is already employed by another company")
	}

	id := base.ID
	p.CompanyBaseID = &id
	p.CompanyBase = base
	p.UpdatedAt = time.Now()
	return nil
}

// Release removes the person's base assignment. Releasing an unassigned
// person is a no-op.
func (p *Person) Release() {
	if !p.IsAssigned() {
		return
	}
	p.CompanyBaseID = nil
	p.CompanyBase = nil
	p.UpdatedAt = time.Now()
}

func validatePersonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Person name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Person name cannot exceed 200 characters")
	}
	return nil
}
