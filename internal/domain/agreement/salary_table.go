package agreement

import (
	"strings"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryTableRow is one contractual level of a CCNL with its monthly
// compensation components.
type SalaryTableRow struct {
	shared.BaseEntity
	CCNLID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Level        string          `gorm:"type:varchar(50);not null;index"`
	IsApprentice bool            `gorm:"not null;default:false"`
	BaseSalary   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Contingency  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ThirdElement decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Seniority    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	WeeklyHours  int             `gorm:"not null;default:0"`
	WorkingDays  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (SalaryTableRow) TableName() string {
	return "salary_table_rows"
}

// NewSalaryTableRow creates a salary table row for a contractual level
func NewSalaryTableRow(ccnlID uuid.UUID, level string, baseSalary decimal.Decimal) (*SalaryTableRow, error) {
	if strings.TrimSpace(level) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Salary level cannot be empty")
	}
	if baseSalary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Base salary cannot be negative")
	}

	return &SalaryTableRow{
		BaseEntity: shared.NewBaseEntity(),
		CCNLID:     ccnlID,
		Level:      level,
		BaseSalary: baseSalary,
	}, nil
}

// GrossMonthly returns the sum of all compensation components
func (r *SalaryTableRow) GrossMonthly() decimal.Decimal {
	return r.BaseSalary.
		Add(r.Contingency).
		Add(r.ThirdElement).
		Add(r.Seniority)
}
