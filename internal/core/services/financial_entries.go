package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// AddService records a service entry on an open period.
func (s *financialService) AddService(ctx context.Context, periodID int64, req dto.ServiceEntryRequest, session domain.Session) (*domain.ServiceEntry, error) {
	period, err := s.requireOpenPeriod(ctx, periodID, session)
	if err != nil {
		return nil, err
	}
	entry, err := s.buildService(ctx, *period, req)
	if err != nil {
		return nil, err
	}
	entry.AuditFields = domain.NewAuditFields(session.Actor(), s.now())

	id, err := s.serviceRepo.SaveService(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save service entry", slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	entry.ServiceID = id

	s.LogInfo(ctx, "Service entry added",
		slog.Int64("period_id", periodID),
		slog.Int64("service_id", id),
		slog.String("meters", entry.Meters.String()))
	return entry, nil
}

// UpdateService changes the provided fields of a service entry of an open
// period. Fields left out keep their stored values.
func (s *financialService) UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceEntryRequest, session domain.Session) (*domain.ServiceEntry, error) {
	existing, err := s.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	period, err := s.requireOpenPeriod(ctx, existing.PeriodID, session)
	if err != nil {
		return nil, err
	}

	entry := *existing
	if err := s.applyServiceUpdate(ctx, &entry, req); err != nil {
		return nil, err
	}
	if err := s.completeService(ctx, *period, &entry, req.Helpers); err != nil {
		return nil, err
	}
	entry.Touch(session.Actor(), s.now())

	if err := s.serviceRepo.UpdateService(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update service entry", slog.Int64("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	s.LogInfo(ctx, "Service entry updated",
		slog.Int64("service_id", serviceID),
		slog.Bool("helpers_replaced", req.Helpers != nil))
	return &entry, nil
}

// DeleteService removes a service entry of an open period.
func (s *financialService) DeleteService(ctx context.Context, serviceID int64, session domain.Session) error {
	existing, err := s.findService(ctx, serviceID)
	if err != nil {
		return err
	}
	if _, err := s.requireOpenPeriod(ctx, existing.PeriodID, session); err != nil {
		return err
	}
	if err := s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete service entry", slog.Int64("service_id", serviceID))
		}
		return err
	}
	s.LogInfo(ctx, "Service entry deleted", slog.Int64("service_id", serviceID))
	return nil
}

// ListServices lists the service entries of a period.
func (s *financialService) ListServices(ctx context.Context, periodID int64, session domain.Session) ([]domain.ServiceEntry, error) {
	if _, err := s.GetPeriod(ctx, periodID, session); err != nil {
		return nil, err
	}
	services, err := s.serviceRepo.ListServicesByPeriod(ctx, periodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list service entries", slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		return []domain.ServiceEntry{}, nil
	}
	return services, nil
}

func (s *financialService) findService(ctx context.Context, serviceID int64) (*domain.ServiceEntry, error) {
	entry, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find service entry", slog.Int64("service_id", serviceID))
		}
		return nil, err
	}
	return entry, nil
}

// buildService turns a request into an entry of the given period.
func (s *financialService) buildService(ctx context.Context, period domain.FinancialPeriod, req dto.ServiceEntryRequest) (*domain.ServiceEntry, error) {
	entry := domain.ServiceEntry{
		PeriodID:    period.PeriodID,
		ServiceType: domain.ServiceAssembly,
		TeamType:    strings.TrimSpace(req.TeamType),
		Meters:      roundMoney(req.Meters),
		UnitPrice:   roundOptional(req.UnitPrice),
		Days:        req.Days,
		Notes:       trimOptional(req.Notes),
	}
	if req.ServiceType != "" {
		st, err := domain.ParseServiceType(req.ServiceType)
		if err != nil {
			return nil, err
		}
		entry.ServiceType = st
	}
	if entry.TeamType == "" {
		entry.TeamType = domain.DefaultTeamType
	}
	if req.LeaderID != nil {
		leader, err := s.requireEmployee(ctx, "leaderId", *req.LeaderID, domain.RoleLeader)
		if err != nil {
			return nil, err
		}
		entry.Leader = leader.Ref()
	}

	var err error
	if entry.StartDate, err = dto.ParseDate("startDate", req.StartDate); err != nil {
		return nil, err
	}
	if entry.EndDate, err = dto.ParseDate("endDate", req.EndDate); err != nil {
		return nil, err
	}

	helpers := req.Helpers
	if helpers == nil {
		helpers = []dto.ServiceHelperRequest{}
	}
	if err := s.completeService(ctx, period, &entry, &helpers); err != nil {
		return nil, err
	}
	return &entry, nil
}

// applyServiceUpdate overlays the fields present in req onto entry.
func (s *financialService) applyServiceUpdate(ctx context.Context, entry *domain.ServiceEntry, req dto.UpdateServiceEntryRequest) error {
	if req.ServiceType != nil {
		st, err := domain.ParseServiceType(*req.ServiceType)
		if err != nil {
			return err
		}
		entry.ServiceType = st
	}
	if req.TeamType != nil {
		entry.TeamType = strings.TrimSpace(*req.TeamType)
		if entry.TeamType == "" {
			entry.TeamType = domain.DefaultTeamType
		}
	}
	if req.LeaderID != nil {
		leader, err := s.requireEmployee(ctx, "leaderId", *req.LeaderID, domain.RoleLeader)
		if err != nil {
			return err
		}
		entry.Leader = leader.Ref()
	}
	if req.Meters != nil {
		entry.Meters = roundMoney(*req.Meters)
	}
	if req.UnitPrice != nil {
		entry.UnitPrice = roundOptional(req.UnitPrice)
	}

	var err error
	if req.StartDate != nil {
		if entry.StartDate, err = dto.ParseDate("startDate", req.StartDate); err != nil {
			return err
		}
	}
	if req.EndDate != nil {
		if entry.EndDate, err = dto.ParseDate("endDate", req.EndDate); err != nil {
			return err
		}
	}
	switch {
	case req.Days != nil:
		entry.Days = req.Days
	case req.StartDate != nil || req.EndDate != nil:
		// derived again from the new dates
		entry.Days = nil
	}
	if req.Notes != nil {
		entry.Notes = trimOptional(req.Notes)
	}
	return nil
}

// completeService checks an entry against its period, derives its days from
// the dates when none were given and, when helpers is set, replaces the crew.
func (s *financialService) completeService(ctx context.Context, period domain.FinancialPeriod, entry *domain.ServiceEntry, helpers *[]dto.ServiceHelperRequest) error {
	if !entry.Meters.IsPositive() {
		return apperrors.NewValidationError("meters", "must be greater than zero")
	}
	if entry.Leader == nil && period.RequiresLeader() {
		return apperrors.NewValidationError("leaderId", "is required when the period pays leaders per meter")
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.Days == nil && entry.StartDate != nil && entry.EndDate != nil {
		days := domain.InclusiveDays(*entry.StartDate, *entry.EndDate)
		entry.Days = &days
	}

	if helpers == nil {
		return nil
	}
	crew, err := s.buildHelpers(ctx, entry.Days, *helpers)
	if err != nil {
		return err
	}
	entry.Helpers = crew
	return entry.Validate()
}

// buildHelpers resolves the helper crew of a service. Every helper must be an
// active assembler.
func (s *financialService) buildHelpers(ctx context.Context, serviceDays *int, reqs []dto.ServiceHelperRequest) ([]domain.ServiceHelper, error) {
	crew := make([]domain.ServiceHelper, 0, len(reqs))
	for i, r := range reqs {
		emp, err := s.requireEmployee(ctx, fmt.Sprintf("helpers[%d].employeeId", i), r.EmployeeID, domain.RoleAssembler)
		if err != nil {
			return nil, err
		}

		rate := decimal.Zero
		switch {
		case r.DailyRateUsed != nil:
			rate = *r.DailyRateUsed
		case emp.DailyRate != nil:
			rate = *emp.DailyRate
		}
		rate = roundMoney(rate)

		days := 0
		switch {
		case r.DaysUsed != nil:
			days = *r.DaysUsed
		case serviceDays != nil:
			days = *serviceDays
		}

		total := roundMoney(rate.Mul(decimal.NewFromInt(int64(days))))
		if r.TotalCost != nil {
			total = roundMoney(*r.TotalCost)
		}

		crew = append(crew, domain.ServiceHelper{
			Employee:      *emp.Ref(),
			DailyRateUsed: rate,
			DaysUsed:      days,
			TotalCost:     total,
		})
	}
	return crew, nil
}

// AddPayment records a payment entry on an open period.
func (s *financialService) AddPayment(ctx context.Context, periodID int64, req dto.PaymentEntryRequest, session domain.Session) (*domain.PaymentEntry, error) {
	period, err := s.requireOpenPeriod(ctx, periodID, session)
	if err != nil {
		return nil, err
	}
	entry, err := s.buildPayment(ctx, *period, req)
	if err != nil {
		return nil, err
	}
	entry.AuditFields = domain.NewAuditFields(session.Actor(), s.now())

	id, err := s.paymentRepo.SavePayment(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment entry", slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to add payment: %w", err)
	}
	entry.PaymentID = id

	s.LogInfo(ctx, "Payment entry added",
		slog.Int64("period_id", periodID),
		slog.Int64("payment_id", id),
		slog.String("category", string(entry.Category)),
		slog.String("amount", entry.Amount.String()))
	return entry, nil
}

// UpdatePayment changes the provided fields of a payment entry of an open
// period. The employee is checked again against the resulting category.
func (s *financialService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentEntryRequest, session domain.Session) (*domain.PaymentEntry, error) {
	existing, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	period, err := s.requireOpenPeriod(ctx, existing.PeriodID, session)
	if err != nil {
		return nil, err
	}

	entry := *existing
	if req.Name != nil {
		entry.Name = strings.TrimSpace(*req.Name)
		if entry.Name == "" {
			return nil, apperrors.NewValidationError("name", "is required")
		}
	}
	if req.Amount != nil {
		entry.Amount = roundMoney(*req.Amount)
	}
	if req.Category != nil {
		c, err := domain.ParsePaymentCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		entry.Category = c
	}
	if req.InvoiceNumber != nil {
		entry.InvoiceNumber = trimOptional(req.InvoiceNumber)
	}
	if req.Notes != nil {
		entry.Notes = trimOptional(req.Notes)
	}
	if req.PaymentDate != nil {
		date, err := dto.ParseDate("paymentDate", req.PaymentDate)
		if err != nil {
			return nil, err
		}
		if date != nil {
			entry.PaymentDate = *date
		}
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	var current *int64
	if existing.Employee != nil {
		id := existing.Employee.EmployeeID
		current = &id
	}
	if entry.Employee, err = s.resolvePaymentEmployee(ctx, entry.Category, req.EmployeeID, current); err != nil {
		return nil, err
	}

	rawClient := req.ClientCNPJ
	if rawClient == nil {
		rawClient = existing.ClientCNPJ
	}
	if entry.ClientCNPJ, err = s.resolvePaymentClient(ctx, *period, entry.Category, rawClient); err != nil {
		return nil, err
	}
	entry.Touch(session.Actor(), s.now())

	if err := s.paymentRepo.UpdatePayment(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update payment entry", slog.Int64("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	s.LogInfo(ctx, "Payment entry updated",
		slog.Int64("payment_id", paymentID),
		slog.String("category", string(entry.Category)))
	return &entry, nil
}

// DeletePayment removes a payment entry of an open period.
func (s *financialService) DeletePayment(ctx context.Context, paymentID int64, session domain.Session) error {
	existing, err := s.findPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if _, err := s.requireOpenPeriod(ctx, existing.PeriodID, session); err != nil {
		return err
	}
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment entry", slog.Int64("payment_id", paymentID))
		}
		return err
	}
	s.LogInfo(ctx, "Payment entry deleted", slog.Int64("payment_id", paymentID))
	return nil
}

// ListPayments lists the payment entries of a period.
func (s *financialService) ListPayments(ctx context.Context, periodID int64, session domain.Session) ([]domain.PaymentEntry, error) {
	if _, err := s.GetPeriod(ctx, periodID, session); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByPeriod(ctx, periodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment entries", slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.PaymentEntry{}, nil
	}
	return payments, nil
}

func (s *financialService) findPayment(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error) {
	entry, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment entry", slog.Int64("payment_id", paymentID))
		}
		return nil, err
	}
	return entry, nil
}

// buildPayment turns a request into an entry of the given period.
func (s *financialService) buildPayment(ctx context.Context, period domain.FinancialPeriod, req dto.PaymentEntryRequest) (*domain.PaymentEntry, error) {
	entry := domain.PaymentEntry{
		PeriodID:      period.PeriodID,
		Name:          strings.TrimSpace(req.Name),
		Amount:        roundMoney(req.Amount),
		Category:      domain.CategoryOther,
		InvoiceNumber: trimOptional(req.InvoiceNumber),
		Notes:         trimOptional(req.Notes),
	}
	if entry.Name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	if req.Category != "" {
		c, err := domain.ParsePaymentCategory(req.Category)
		if err != nil {
			return nil, err
		}
		entry.Category = c
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	date, err := dto.ParseDate("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, err
	}
	if date != nil {
		entry.PaymentDate = *date
	} else {
		now := s.now()
		entry.PaymentDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if entry.Employee, err = s.resolvePaymentEmployee(ctx, entry.Category, req.EmployeeID, nil); err != nil {
		return nil, err
	}

	cnpj, err := s.resolvePaymentClient(ctx, period, entry.Category, req.ClientCNPJ)
	if err != nil {
		return nil, err
	}
	entry.ClientCNPJ = cnpj
	return &entry, nil
}

// resolvePaymentEmployee checks the employee paid by an employee payment,
// falling back to current when none is requested. Other categories carry no
// employee.
func (s *financialService) resolvePaymentEmployee(ctx context.Context, category domain.PaymentCategory, requested, current *int64) (*domain.EmployeeRef, error) {
	role, ok := category.RequiredEmployeeRole()
	if !ok {
		if requested != nil {
			return nil, apperrors.NewValidationError("employeeId", "only employee payments reference an employee")
		}
		return nil, nil
	}
	id := requested
	if id == nil {
		id = current
	}
	if id == nil {
		return nil, apperrors.NewValidationError("employeeId", "is required for "+string(category)+" payments")
	}
	emp, err := s.requireEmployee(ctx, "employeeId", *id, role)
	if err != nil {
		return nil, err
	}
	return emp.Ref(), nil
}

// roundMoney keeps the two decimal places money and meters are stored with.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func roundOptional(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := roundMoney(*d)
	return &r
}

// resolvePaymentClient checks an explicit client and defaults client payments
// to the client that owns the period's park.
func (s *financialService) resolvePaymentClient(ctx context.Context, period domain.FinancialPeriod, category domain.PaymentCategory, raw *string) (*string, error) {
	if t := trimOptional(raw); t != nil {
		cnpj, err := utils.NormalizeCNPJ(*t)
		if err != nil {
			return nil, err
		}
		if s.clientRepo != nil {
			if _, err := s.clientRepo.FindClientByCNPJ(ctx, cnpj); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, apperrors.NewValidationError("clientCnpj", "client "+cnpj+" does not exist")
				}
				s.LogError(ctx, err, "Failed to check client", slog.String("cnpj", cnpj))
				return nil, fmt.Errorf("failed to check client: %w", err)
			}
		}
		return &cnpj, nil
	}
	if category != domain.CategoryClientPayment {
		return nil, nil
	}
	park, err := s.parkRepo.FindParkByID(ctx, period.ParkID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve park client", slog.Int64("park_id", period.ParkID))
		return nil, fmt.Errorf("failed to resolve park client: %w", err)
	}
	cnpj := park.ClientCNPJ
	return &cnpj, nil
}
