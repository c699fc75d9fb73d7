package aggregator

import (
	"fmt"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

func validatePeriod(p domain.FinancialPeriod) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("period %d: %w", p.PeriodID, err)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("period %d: %w", p.PeriodID, apperrors.NewValidationError("status", "must be OPEN or CLOSED"))
	}
	return nil
}

func validateService(p domain.FinancialPeriod, s domain.ServiceEntry) error {
	if s.PeriodID != p.PeriodID {
		return fmt.Errorf("service %d: %w", s.ServiceID,
			apperrors.NewConsistencyError("periodId", fmt.Sprintf("belongs to period %d, not %d", s.PeriodID, p.PeriodID)))
	}
	if !s.ServiceType.IsValid() {
		return fmt.Errorf("service %d: %w", s.ServiceID, apperrors.NewValidationError("serviceType", "unknown service type"))
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("service %d: %w", s.ServiceID, err)
	}
	if s.Leader != nil && s.Leader.EmployeeID <= 0 {
		return fmt.Errorf("service %d: %w", s.ServiceID, apperrors.NewConsistencyError("leader", "references no employee"))
	}
	for _, h := range s.Helpers {
		if h.Employee.EmployeeID <= 0 {
			return fmt.Errorf("service %d: %w", s.ServiceID, apperrors.NewConsistencyError("helpers", "references no employee"))
		}
	}
	return nil
}

func validatePayment(p domain.FinancialPeriod, pay domain.PaymentEntry) error {
	if pay.PeriodID != p.PeriodID {
		return fmt.Errorf("payment %d: %w", pay.PaymentID,
			apperrors.NewConsistencyError("periodId", fmt.Sprintf("belongs to period %d, not %d", pay.PeriodID, p.PeriodID)))
	}
	if err := pay.Validate(); err != nil {
		return fmt.Errorf("payment %d: %w", pay.PaymentID, err)
	}
	if pay.Employee != nil && pay.Employee.EmployeeID <= 0 {
		return fmt.Errorf("payment %d: %w", pay.PaymentID, apperrors.NewConsistencyError("employee", "references no employee"))
	}
	return nil
}
