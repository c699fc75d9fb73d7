package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/platform/observability"
)

const defaultOverviewConcurrency = 4

// financialService implements the FinancialSvcFacade interface: periods,
// their service and payment entries, and the projections computed from them.
type financialService struct {
	BaseService
	periodRepo   portsrepo.PeriodRepositoryFacade
	serviceRepo  portsrepo.ServiceEntryRepositoryFacade
	paymentRepo  portsrepo.PaymentEntryRepositoryFacade
	parkRepo     portsrepo.ParkReader
	employeeRepo portsrepo.EmployeeReader
	clientRepo   portsrepo.ClientReader
	metrics      *observability.Metrics
	concurrency  int
}

// FinancialOption is a functional option for configuring the financial service
type FinancialOption func(*financialService)

// WithMetrics records projection counts and durations.
func WithMetrics(m *observability.Metrics) FinancialOption {
	return func(s *financialService) {
		s.metrics = m
	}
}

// WithOverviewConcurrency bounds the period summaries computed in parallel for a park overview.
func WithOverviewConcurrency(n int) FinancialOption {
	return func(s *financialService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithEmployeeReader adds the employee lookup used to check leaders and payees.
func WithEmployeeReader(repo portsrepo.EmployeeReader) FinancialOption {
	return func(s *financialService) {
		s.employeeRepo = repo
	}
}

// WithClientReader adds the client lookup used for client payments.
func WithClientReader(repo portsrepo.ClientReader) FinancialOption {
	return func(s *financialService) {
		s.clientRepo = repo
	}
}

// WithClock replaces time.Now for audit stamps, default payment dates and the
// current year of the car rental summary.
func WithClock(now func() time.Time) FinancialOption {
	return func(s *financialService) {
		s.Now = now
	}
}

// NewFinancialService creates a new financial service with the provided options
func NewFinancialService(
	periodRepo portsrepo.PeriodRepositoryFacade,
	serviceRepo portsrepo.ServiceEntryRepositoryFacade,
	paymentRepo portsrepo.PaymentEntryRepositoryFacade,
	parkRepo portsrepo.ParkReader,
	options ...FinancialOption,
) portssvc.FinancialSvcFacade {
	svc := &financialService{
		periodRepo:  periodRepo,
		serviceRepo: serviceRepo,
		paymentRepo: paymentRepo,
		parkRepo:    parkRepo,
		concurrency: defaultOverviewConcurrency,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.FinancialSvcFacade = (*financialService)(nil)

// CreatePeriod opens the competency month of a park.
func (s *financialService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, session domain.Session) (*domain.FinancialPeriod, error) {
	if err := domain.ValidateCompetency(req.Year, req.Month); err != nil {
		return nil, err
	}
	if _, err := s.parkRepo.FindParkByID(ctx, req.ParkID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("parkId", fmt.Sprintf("park %d does not exist", req.ParkID))
		}
		s.LogError(ctx, err, "Failed to check park", slog.Int64("park_id", req.ParkID))
		return nil, fmt.Errorf("failed to check park: %w", err)
	}

	taxRate, err := domain.NewTaxRate(req.TaxRate)
	if err != nil {
		return nil, err
	}

	status := domain.PeriodOpen
	if req.Status != "" {
		if status, err = domain.ParsePeriodStatus(req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.requireAdministrator(ctx, req.AdministratorID); err != nil {
		return nil, err
	}

	period := domain.FinancialPeriod{
		ParkID:              req.ParkID,
		AdministratorID:     req.AdministratorID,
		Year:                req.Year,
		Month:               req.Month,
		JVAPricePerMeter:    req.JVAPricePerMeter,
		LeaderPricePerMeter: req.LeaderPricePerMeter,
		TaxRate:             taxRate,
		CarRentalValue:      req.CarRentalValue,
		Status:              status,
		Notes:               trimOptional(req.Notes),
		AuditFields:         domain.NewAuditFields(session.Actor(), s.now()),
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	id, err := s.periodRepo.SavePeriod(ctx, period)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save period", slog.Int64("park_id", req.ParkID))
		}
		return nil, fmt.Errorf("failed to create period %d/%02d: %w", req.Year, req.Month, err)
	}
	period.PeriodID = id

	s.LogInfo(ctx, "Financial period created",
		slog.Int64("period_id", id),
		slog.Int64("park_id", period.ParkID),
		slog.Int("year", period.Year),
		slog.Int("month", period.Month))
	return &period, nil
}

// GetPeriod retrieves a period by id.
func (s *financialService) GetPeriod(ctx context.Context, periodID int64, session domain.Session) (*domain.FinancialPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find period", slog.Int64("period_id", periodID))
		}
		return nil, err
	}
	return period, nil
}

// ListPeriods lists periods newest first.
func (s *financialService) ListPeriods(ctx context.Context, parkID *int64, session domain.Session) ([]domain.FinancialPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, parkID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods")
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	if periods == nil {
		return []domain.FinancialPeriod{}, nil
	}
	return periods, nil
}

// UpdatePeriod applies a partial update. Closing is one-way and a closed
// period keeps its pricing.
func (s *financialService) UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest, session domain.Session) (*domain.FinancialPeriod, error) {
	period, err := s.GetPeriod(ctx, periodID, session)
	if err != nil {
		return nil, err
	}
	wasClosed := period.IsClosed()
	leaderPriceBefore := period.LeaderPricePerMeter

	if req.Status != nil {
		status, err := domain.ParsePeriodStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if wasClosed && status == domain.PeriodOpen {
			return nil, apperrors.NewValidationError("status", "a closed period cannot be reopened")
		}
		period.Status = status
	}

	pricingChange := req.JVAPricePerMeter != nil || req.LeaderPricePerMeter != nil || req.TaxRate != nil || req.CarRentalValue != nil
	if wasClosed && pricingChange {
		return nil, apperrors.NewValidationError("status", "pricing of a closed period cannot change")
	}

	if req.AdministratorID != nil {
		if err := s.requireAdministrator(ctx, req.AdministratorID); err != nil {
			return nil, err
		}
		period.AdministratorID = req.AdministratorID
	}
	if req.JVAPricePerMeter != nil {
		period.JVAPricePerMeter = *req.JVAPricePerMeter
	}
	if req.LeaderPricePerMeter != nil {
		period.LeaderPricePerMeter = *req.LeaderPricePerMeter
	}
	if req.TaxRate != nil {
		if period.TaxRate, err = domain.NewTaxRate(*req.TaxRate); err != nil {
			return nil, err
		}
	}
	if req.CarRentalValue != nil {
		period.CarRentalValue = *req.CarRentalValue
	}
	if req.Notes != nil {
		period.Notes = trimOptional(req.Notes)
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	if period.RequiresLeader() && !leaderPriceBefore.IsPositive() {
		missing, err := s.periodRepo.CountServicesWithoutLeader(ctx, periodID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count services without leader", slog.Int64("period_id", periodID))
			return nil, fmt.Errorf("failed to check services: %w", err)
		}
		if missing > 0 {
			return nil, apperrors.NewValidationError("leaderPricePerMeter",
				fmt.Sprintf("%d service(s) have no leader assigned", missing))
		}
	}

	period.Touch(session.Actor(), s.now())
	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to update period", slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to update period: %w", err)
	}

	s.LogInfo(ctx, "Financial period updated", slog.Int64("period_id", periodID), slog.String("status", string(period.Status)))
	return period, nil
}

// DeletePeriod removes a period together with its entries.
func (s *financialService) DeletePeriod(ctx context.Context, periodID int64, session domain.Session) error {
	if err := s.periodRepo.DeletePeriod(ctx, periodID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete period", slog.Int64("period_id", periodID))
		}
		return err
	}
	s.LogInfo(ctx, "Financial period deleted", slog.Int64("period_id", periodID))
	return nil
}

// requireAdministrator checks an optional administrator reference.
func (s *financialService) requireAdministrator(ctx context.Context, employeeID *int64) error {
	if employeeID == nil {
		return nil
	}
	_, err := s.requireEmployee(ctx, "administratorId", *employeeID, domain.RoleAdministrator)
	return err
}

// requireEmployee resolves an employee that must be active in the given role.
func (s *financialService) requireEmployee(ctx context.Context, field string, employeeID int64, role domain.JobRole) (*domain.Employee, error) {
	if s.employeeRepo == nil {
		return nil, fmt.Errorf("employee lookup not configured")
	}
	emp, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("employee %d does not exist", employeeID))
		}
		s.LogError(ctx, err, "Failed to find employee", slog.Int64("employee_id", employeeID))
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if !emp.IsActiveAs(role) {
		return nil, apperrors.NewValidationError(field,
			fmt.Sprintf("employee %d is not an active %s", employeeID, role))
	}
	return emp, nil
}

// requireOpenPeriod loads the period an entry belongs to and rejects writes to closed ones.
func (s *financialService) requireOpenPeriod(ctx context.Context, periodID int64, session domain.Session) (*domain.FinancialPeriod, error) {
	period, err := s.GetPeriod(ctx, periodID, session)
	if err != nil {
		return nil, err
	}
	if period.IsClosed() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("period %d is closed", periodID))
	}
	return period, nil
}
