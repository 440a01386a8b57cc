package registry

import (
	"time"

	domain "github.com/gestionale/backend/internal/domain/registry"
	"github.com/google/uuid"
)

// BaseModel is a company base in an inbound payload. An id marks an already
// persisted base; id-less entries are appended as new bases.
type BaseModel struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name"`
	Address string     `json:"address"`
}

// CompanyModel is the inbound payload for creating or updating a company
type CompanyModel struct {
	Name        string      `json:"name"`
	FiscalCode  string      `json:"fiscal_code"`
	VATNumber   string      `json:"vat_number"`
	INPSNumber  string      `json:"inps_number"`
	INAILNumber string      `json:"inail_number"`
	Bases       []BaseModel `json:"bases"`
}

// PersonModel is the inbound payload for creating or updating a person
type PersonModel struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// BaseResponse represents a company base in responses
type BaseResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
}

// CompanyResponse represents a company in responses
type CompanyResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	FiscalCode  string         `json:"fiscal_code"`
	VATNumber   string         `json:"vat_number"`
	INPSNumber  string         `json:"inps_number"`
	INAILNumber string         `json:"inail_number"`
	Bases       []BaseResponse `json:"bases"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PersonResponse represents a person in responses
type PersonResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	CompanyBase *BaseResponse `json:"company_base,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func toBaseResponse(base *domain.CompanyBase) BaseResponse {
	return BaseResponse{
		ID:        base.ID,
		CompanyID: base.CompanyID,
		Name:      base.Name,
		Address:   base.Address,
	}
}

func toCompanyResponse(company *domain.Company) *CompanyResponse {
	bases := make([]BaseResponse, len(company.Bases))
	for i := range company.Bases {
		bases[i] = toBaseResponse(&company.Bases[i])
	}
	return &CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		FiscalCode:  company.FiscalCode,
		VATNumber:   company.VATNumber,
		INPSNumber:  company.INPSNumber,
		INAILNumber: company.INAILNumber,
		Bases:       bases,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}

func toPersonResponse(person *domain.Person) *PersonResponse {
	resp := &PersonResponse{
		ID:        person.ID,
		Name:      person.Name,
		Address:   person.Address,
		Phone:     person.Phone,
		Email:     person.Email,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
	if person.CompanyBase != nil {
		base := toBaseResponse(person.CompanyBase)
		resp.CompanyBase = &base
	}
	return resp
}
