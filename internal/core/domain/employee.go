package domain

import "github.com/shopspring/decimal"

// Employee is a person paid by the contractor.
// DailyRate applies to assemblers, PricePerMeter to leaders. CPF links the
// employee to a login user.
type Employee struct {
	EmployeeID    int64            `json:"employeeId"`
	Name          string           `json:"name"`
	Role          JobRole          `json:"role"`
	CPF           *string          `json:"cpf,omitempty"`
	PixKey        *string          `json:"pixKey,omitempty"`
	DailyRate     *decimal.Decimal `json:"dailyRate,omitempty"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter,omitempty"`
	GovEmail      *string          `json:"govEmail,omitempty"`
	GovPassword   *string          `json:"-"`
	Active        bool             `json:"active"`
	AuditFields
}

// IsActiveAs reports whether the employee is active and holds role.
func (e Employee) IsActiveAs(role JobRole) bool {
	return e.Active && e.Role == role
}

// Ref returns the lightweight reference embedded in entries.
func (e Employee) Ref() *EmployeeRef {
	return &EmployeeRef{EmployeeID: e.EmployeeID, Name: e.Name}
}

// EmployeeRef is the id and display name of an employee linked to an entry.
type EmployeeRef struct {
	EmployeeID int64  `json:"employeeId"`
	Name       string `json:"name"`
}
