package agreement

import (
	"time"

	domain "github.com/gestionale/backend/internal/domain/agreement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryRowModel is one contractual level in an inbound payload
type SalaryRowModel struct {
	Level        string          `json:"level"`
	IsApprentice bool            `json:"is_apprentice"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Contingency  decimal.Decimal `json:"contingency"`
	ThirdElement decimal.Decimal `json:"third_element"`
	Seniority    decimal.Decimal `json:"seniority"`
	WeeklyHours  int             `json:"weekly_hours"`
	WorkingDays  int             `json:"working_days"`
}

// CCNLModel is the inbound payload for creating a labor agreement
type CCNLModel struct {
	Name        string           `json:"name"`
	Sector      string           `json:"sector"`
	SalaryTable []SalaryRowModel `json:"salary_table"`
}

// SalaryRowResponse represents a salary table row in responses
type SalaryRowResponse struct {
	ID           uuid.UUID       `json:"id"`
	CCNLID       uuid.UUID       `json:"ccnl_id"`
	Level        string          `json:"level"`
	IsApprentice bool            `json:"is_apprentice"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Contingency  decimal.Decimal `json:"contingency"`
	ThirdElement decimal.Decimal `json:"third_element"`
	Seniority    decimal.Decimal `json:"seniority"`
	GrossMonthly decimal.Decimal `json:"gross_monthly"`
	WeeklyHours  int             `json:"weekly_hours"`
	WorkingDays  int             `json:"working_days"`
}

// CCNLResponse represents a labor agreement in responses
type CCNLResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Sector      string              `json:"sector"`
	SalaryTable []SalaryRowResponse `json:"salary_table,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func toSalaryRowResponse(row *domain.SalaryTableRow) SalaryRowResponse {
	return SalaryRowResponse{
		ID:           row.ID,
		CCNLID:       row.CCNLID,
		Level:        row.Level,
		IsApprentice: row.IsApprentice,
		BaseSalary:   row.BaseSalary,
		Contingency:  row.Contingency,
		ThirdElement: row.ThirdElement,
		Seniority:    row.Seniority,
		GrossMonthly: row.GrossMonthly(),
		WeeklyHours:  row.WeeklyHours,
		WorkingDays:  row.WorkingDays,
	}
}

func toCCNLResponse(ccnl *domain.CCNL) *CCNLResponse {
	resp := &CCNLResponse{
		ID:        ccnl.ID,
		Name:      ccnl.Name,
		Sector:    ccnl.Sector,
		CreatedAt: ccnl.CreatedAt,
		UpdatedAt: ccnl.UpdatedAt,
	}
	for i := range ccnl.SalaryTable {
		resp.SalaryTable = append(resp.SalaryTable, toSalaryRowResponse(&ccnl.SalaryTable[i]))
	}
	return resp
}
