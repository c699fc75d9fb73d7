package repositories

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// EmployeeFilter narrows an employee listing.
type EmployeeFilter struct {
	Role       *domain.JobRole
	OnlyActive bool
}

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByCPF retrieves the employee linked to a login user.
	FindEmployeeByCPF(ctx context.Context, cpf string) (*domain.Employee, error)

	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
}

// LoginChange is the login user write that goes with an employee write.
// DeleteCPF runs first, so a CPF change can drop the old user and upsert the new one.
type LoginChange struct {
	DeleteCPF *string
	Upsert    *domain.User
}

// IsZero reports whether the change touches no login user.
func (c LoginChange) IsZero() bool {
	return c.DeleteCPF == nil && c.Upsert == nil
}

// EmployeeWriter defines write operations for employee data. The employee row
// and its login change commit or fail together.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and returns its generated id.
	SaveEmployee(ctx context.Context, employee domain.Employee, login LoginChange) (int64, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee, login LoginChange) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
