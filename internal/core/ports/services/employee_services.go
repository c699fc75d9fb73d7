package services

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	GetEmployee(ctx context.Context, employeeID int64, session domain.Session) (*domain.Employee, error)
	ListEmployees(ctx context.Context, role *domain.JobRole, onlyActive bool, session domain.Session) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, session domain.Session) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest, session domain.Session) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
