// Package agreement holds the CCNL reference data: national collective labor
// agreements and their salary tables. Unlike the registry entities this data
// is shared across tenants and is therefore not tenant-scoped.
package agreement

import (
	"strings"

	"github.com/gestionale/backend/internal/domain/shared"
)

// CCNL is a national collective labor agreement. It owns its salary table
// rows: deleting a CCNL cascades to them.
type CCNL struct {
	shared.BaseEntity
	Name        string           `gorm:"type:varchar(200);not null;index"`
	Sector      string           `gorm:"type:varchar(100)"`
	SalaryTable []SalaryTableRow `gorm:"foreignKey:CCNLID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CCNL) TableName() string {
	return "ccnls"
}

// NewCCNL creates a new labor agreement
func NewCCNL(name, sector string) (*CCNL, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "CCNL name cannot be empty")
	}

	return &CCNL{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Sector:     sector,
	}, nil
}

// AddRow appends a salary table row to the agreement
func (c *CCNL) AddRow(row SalaryTableRow) {
	row.CCNLID = c.ID
	c.SalaryTable = append(c.SalaryTable, row)
}
