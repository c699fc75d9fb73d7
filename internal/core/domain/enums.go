package domain

import (
	"strings"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
)

// JobRole is the function an employee performs.
type JobRole string

const (
	RoleAssembler     JobRole = "ASSEMBLER"
	RoleLeader        JobRole = "LEADER"
	RoleAdministrator JobRole = "ADMINISTRATOR"
)

// IsValid reports whether r is a known role.
func (r JobRole) IsValid() bool {
	switch r {
	case RoleAssembler, RoleLeader, RoleAdministrator:
		return true
	}
	return false
}

// ParseJobRole converts user input into a JobRole.
func ParseJobRole(s string) (JobRole, error) {
	r := JobRole(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", apperrors.NewValidationError("role", "must be one of ASSEMBLER, LEADER, ADMINISTRATOR")
	}
	return r, nil
}

// ServiceType classifies the work billed by a service entry.
type ServiceType string

const (
	ServiceAssembly    ServiceType = "ASSEMBLY"
	ServiceDisassembly ServiceType = "DISASSEMBLY"
	ServiceMaintenance ServiceType = "MAINTENANCE"
	ServiceOther       ServiceType = "OTHER"
)

// IsValid reports whether t is a known service type.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceAssembly, ServiceDisassembly, ServiceMaintenance, ServiceOther:
		return true
	}
	return false
}

// ParseServiceType converts user input into a ServiceType.
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", apperrors.NewValidationError("serviceType", "must be one of ASSEMBLY, DISASSEMBLY, MAINTENANCE, OTHER")
	}
	return t, nil
}

// PaymentCategory classifies a cash movement recorded against a period.
type PaymentCategory string

const (
	CategoryClientPayment  PaymentCategory = "CLIENT_PAYMENT"
	CategoryEmployeeHelper PaymentCategory = "EMPLOYEE_HELPER"
	CategoryEmployeeLeader PaymentCategory = "EMPLOYEE_LEADER"
	CategoryTax            PaymentCategory = "TAX"
	CategoryCarRental      PaymentCategory = "CAR_RENTAL"
	CategoryOther          PaymentCategory = "OTHER"
)

// IsValid reports whether c is a known category.
func (c PaymentCategory) IsValid() bool {
	switch c {
	case CategoryClientPayment, CategoryEmployeeHelper, CategoryEmployeeLeader,
		CategoryTax, CategoryCarRental, CategoryOther:
		return true
	}
	return false
}

// RequiredEmployeeRole returns the role an employee linked to a payment of this
// category must have. The second result is false when no employee is required.
func (c PaymentCategory) RequiredEmployeeRole() (JobRole, bool) {
	switch c {
	case CategoryEmployeeHelper:
		return RoleAssembler, true
	case CategoryEmployeeLeader:
		return RoleLeader, true
	}
	return "", false
}

// ParsePaymentCategory converts user input into a PaymentCategory.
func ParsePaymentCategory(s string) (PaymentCategory, error) {
	c := PaymentCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", apperrors.NewValidationError("category", "must be one of CLIENT_PAYMENT, EMPLOYEE_HELPER, EMPLOYEE_LEADER, TAX, CAR_RENTAL, OTHER")
	}
	return c, nil
}

// PeriodStatus is the lifecycle state of a financial period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// IsValid reports whether s is a known status.
func (s PeriodStatus) IsValid() bool {
	return s == PeriodOpen || s == PeriodClosed
}

// ParsePeriodStatus converts user input into a PeriodStatus.
func ParsePeriodStatus(s string) (PeriodStatus, error) {
	st := PeriodStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", apperrors.NewValidationError("status", "must be OPEN or CLOSED")
	}
	return st, nil
}
