package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// employeeService handles business logic for employees and keeps the login
// user of each administrator in sync.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee registers an employee.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, session domain.Session) (*domain.Employee, error) {
	role, err := domain.ParseJobRole(req.Role)
	if err != nil {
		return nil, err
	}

	emp := domain.Employee{
		Name:          strings.TrimSpace(req.Name),
		Role:          role,
		PixKey:        trimOptional(req.PixKey),
		DailyRate:     req.DailyRate,
		PricePerMeter: req.PricePerMeter,
		GovEmail:      lowerOptional(req.GovEmail),
		Active:        req.Active == nil || *req.Active,
		AuditFields:   domain.NewAuditFields(session.Actor(), s.now()),
	}
	if emp.CPF, err = normalizeOptionalCPF(req.CPF); err != nil {
		return nil, err
	}
	if emp.GovPassword, err = hashOptionalPassword(req.GovPassword); err != nil {
		s.LogError(ctx, err, "Failed to hash employee password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := validateEmployee(emp); err != nil {
		return nil, err
	}

	login := s.loginChange(emp, nil, session)
	id, err := s.employeeRepo.SaveEmployee(ctx, emp, login)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("role", string(role)))
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	emp.EmployeeID = id

	s.LogInfo(ctx, "Employee created",
		slog.Int64("employee_id", id),
		slog.String("role", string(role)),
		slog.Bool("login_synced", login.Upsert != nil))
	return &emp, nil
}

// GetEmployee retrieves an employee by id.
func (s *employeeService) GetEmployee(ctx context.Context, employeeID int64, session domain.Session) (*domain.Employee, error) {
	emp, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}
	return emp, nil
}

// ListEmployees lists employees, optionally of one role and active only.
func (s *employeeService) ListEmployees(ctx context.Context, role *domain.JobRole, onlyActive bool, session domain.Session) ([]domain.Employee, error) {
	if role != nil && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, portsrepo.EmployeeFilter{Role: role, OnlyActive: onlyActive})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

// UpdateEmployee changes the provided fields of an employee. An employee
// leaving the administrator role loses its login user.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest, session domain.Session) (*domain.Employee, error) {
	emp, err := s.GetEmployee(ctx, employeeID, session)
	if err != nil {
		return nil, err
	}
	previous := *emp

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		if emp.Role, err = domain.ParseJobRole(*req.Role); err != nil {
			return nil, err
		}
	}
	if req.CPF != nil {
		if emp.CPF, err = normalizeOptionalCPF(req.CPF); err != nil {
			return nil, err
		}
	}
	if req.PixKey != nil {
		emp.PixKey = trimOptional(req.PixKey)
	}
	if req.DailyRate != nil {
		emp.DailyRate = req.DailyRate
	}
	if req.PricePerMeter != nil {
		emp.PricePerMeter = req.PricePerMeter
	}
	if req.GovEmail != nil {
		emp.GovEmail = lowerOptional(req.GovEmail)
	}
	if req.GovPassword != nil {
		if emp.GovPassword, err = hashOptionalPassword(req.GovPassword); err != nil {
			s.LogError(ctx, err, "Failed to hash employee password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if err := validateEmployee(*emp); err != nil {
		return nil, err
	}
	emp.Touch(session.Actor(), s.now())

	login := s.loginChange(*emp, &previous, session)
	if err := s.employeeRepo.UpdateEmployee(ctx, *emp, login); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update employee", slog.Int64("employee_id", employeeID))
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.LogInfo(ctx, "Employee updated",
		slog.Int64("employee_id", employeeID),
		slog.Bool("login_synced", login.Upsert != nil),
		slog.Bool("login_removed", login.DeleteCPF != nil))
	return emp, nil
}

// loginChange works out the login user write that goes with an employee write.
// An administrator with CPF, gov email and gov password gets a login user. When
// the employee held a login before and no longer qualifies, or changed CPF, the
// stale user is removed.
func (s *employeeService) loginChange(emp domain.Employee, previous *domain.Employee, session domain.Session) portsrepo.LoginChange {
	var change portsrepo.LoginChange
	if previous != nil && previous.CPF != nil && previous.Role == domain.RoleAdministrator {
		if emp.Role != domain.RoleAdministrator || emp.CPF == nil || *emp.CPF != *previous.CPF {
			cpf := *previous.CPF
			change.DeleteCPF = &cpf
		}
	}

	if emp.Role != domain.RoleAdministrator || emp.CPF == nil || emp.GovEmail == nil || emp.GovPassword == nil {
		return change
	}
	change.Upsert = &domain.User{
		CPF:          *emp.CPF,
		Name:         emp.Name,
		Email:        *emp.GovEmail,
		PasswordHash: *emp.GovPassword,
		AuditFields:  domain.NewAuditFields(session.Actor(), s.now()),
	}
	return change
}

func validateEmployee(e domain.Employee) error {
	if e.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if !e.Role.IsValid() {
		return apperrors.NewValidationError("role", "is required")
	}
	if err := nonNegative("dailyRate", e.DailyRate); err != nil {
		return err
	}
	if err := nonNegative("pricePerMeter", e.PricePerMeter); err != nil {
		return err
	}
	switch e.Role {
	case domain.RoleAssembler:
		if e.DailyRate == nil {
			return apperrors.NewValidationError("dailyRate", "is required for assemblers")
		}
	case domain.RoleLeader:
		if e.PricePerMeter == nil {
			return apperrors.NewValidationError("pricePerMeter", "is required for leaders")
		}
	case domain.RoleAdministrator:
	}
	return nil
}

func nonNegative(field string, d *decimal.Decimal) error {
	if d != nil && d.IsNegative() {
		return apperrors.NewValidationError(field, "cannot be negative")
	}
	return nil
}

func normalizeOptionalCPF(raw *string) (*string, error) {
	t := trimOptional(raw)
	if t == nil {
		return nil, nil
	}
	cpf, err := utils.NormalizeCPF(*t)
	if err != nil {
		return nil, err
	}
	return &cpf, nil
}

// hashOptionalPassword hashes a new password exactly as given. An empty value
// clears the password.
func hashOptionalPassword(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	hash, err := utils.HashPassword(*raw)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}
