package dto

import (
	"time"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
// Money fields accept JSON numbers or strings.
type CreateEmployeeRequest struct {
	Name          string           `json:"name" binding:"required,max=120"`
	Role          string           `json:"role" binding:"required,oneof=ASSEMBLER LEADER ADMINISTRATOR"`
	CPF           *string          `json:"cpf,omitempty" binding:"omitempty,cpf"`
	PixKey        *string          `json:"pixKey,omitempty" binding:"omitempty,max=120"`
	DailyRate     *decimal.Decimal `json:"dailyRate,omitempty"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter,omitempty"`
	GovEmail      *string          `json:"govEmail,omitempty" binding:"omitempty,email,max=150"`
	GovPassword   *string          `json:"govPassword,omitempty" binding:"omitempty,max=72"`
	Active        *bool            `json:"active,omitempty"`
}

// UpdateEmployeeRequest defines the fields that can be changed on an employee.
type UpdateEmployeeRequest struct {
	Name          *string          `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Role          *string          `json:"role,omitempty" binding:"omitempty,oneof=ASSEMBLER LEADER ADMINISTRATOR"`
	CPF           *string          `json:"cpf,omitempty" binding:"omitempty,cpf"`
	PixKey        *string          `json:"pixKey,omitempty" binding:"omitempty,max=120"`
	DailyRate     *decimal.Decimal `json:"dailyRate,omitempty"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter,omitempty"`
	GovEmail      *string          `json:"govEmail,omitempty" binding:"omitempty,email,max=150"`
	GovPassword   *string          `json:"govPassword,omitempty" binding:"omitempty,max=72"`
	Active        *bool            `json:"active,omitempty"`
}

// EmployeeResponse defines the data returned for an employee. The gov
// password never leaves the service.
type EmployeeResponse struct {
	EmployeeID    int64            `json:"employeeId"`
	Name          string           `json:"name"`
	Role          domain.JobRole   `json:"role"`
	CPF           *string          `json:"cpf,omitempty"`
	PixKey        *string          `json:"pixKey,omitempty"`
	DailyRate     *decimal.Decimal `json:"dailyRate,omitempty"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter,omitempty"`
	GovEmail      *string          `json:"govEmail,omitempty"`
	HasLogin      bool             `json:"hasLogin"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		Role:          e.Role,
		CPF:           e.CPF,
		PixKey:        e.PixKey,
		DailyRate:     e.DailyRate,
		PricePerMeter: e.PricePerMeter,
		GovEmail:      e.GovEmail,
		HasLogin:      e.Role == domain.RoleAdministrator && e.CPF != nil && e.GovEmail != nil && e.GovPassword != nil,
		Active:        e.Active,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts employees to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
