package domain

import (
	"fmt"
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultTeamType is used when a service does not name its team.
const DefaultTeamType = "UNSPECIFIED"

// ServiceEntry is an amount of billable work (meters) done during a period.
// A nil UnitPrice follows the period's JVAPricePerMeter.
type ServiceEntry struct {
	ServiceID   int64            `json:"serviceId"`
	PeriodID    int64            `json:"periodId"`
	ServiceType ServiceType      `json:"serviceType"`
	TeamType    string           `json:"teamType"`
	Leader      *EmployeeRef     `json:"leader,omitempty"`
	Meters      decimal.Decimal  `json:"meters"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Days        *int             `json:"days,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Helpers     []ServiceHelper  `json:"helpers"`
	AuditFields
}

// ServiceHelper is an assembler working on a service for a day rate.
// TotalCost is fixed when the helper is recorded.
type ServiceHelper struct {
	HelperID      int64           `json:"helperId"`
	ServiceID     int64           `json:"serviceId"`
	Employee      EmployeeRef     `json:"employee"`
	DailyRateUsed decimal.Decimal `json:"dailyRateUsed"`
	DaysUsed      int             `json:"daysUsed"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}

// Validate checks the helper's rate, days and cost.
func (h ServiceHelper) Validate() error {
	if h.DailyRateUsed.IsNegative() {
		return apperrors.NewValidationError("dailyRateUsed", "cannot be negative")
	}
	if h.DaysUsed < 0 {
		return apperrors.NewValidationError("daysUsed", "cannot be negative")
	}
	if h.TotalCost.IsNegative() {
		return apperrors.NewValidationError("totalCost", "cannot be negative")
	}
	return nil
}

// HelpersCost sums what the service's helpers are owed.
func (s ServiceEntry) HelpersCost() decimal.Decimal {
	total := decimal.Zero
	for _, h := range s.Helpers {
		total = total.Add(h.TotalCost)
	}
	return total
}

// EffectiveUnitPrice returns the price per meter charged for this service.
func (s ServiceEntry) EffectiveUnitPrice(p FinancialPeriod) decimal.Decimal {
	if s.UnitPrice != nil {
		return *s.UnitPrice
	}
	return p.JVAPricePerMeter
}

// LeaderID returns the assigned leader's id, or 0 when unassigned.
func (s ServiceEntry) LeaderID() int64 {
	if s.Leader == nil {
		return 0
	}
	return s.Leader.EmployeeID
}

// Validate checks the entry's numeric fields and date range.
func (s ServiceEntry) Validate() error {
	if s.Meters.IsNegative() {
		return apperrors.NewValidationError("meters", "cannot be negative")
	}
	if s.UnitPrice != nil && s.UnitPrice.IsNegative() {
		return apperrors.NewValidationError("unitPrice", "cannot be negative")
	}
	if s.ServiceType != "" && !s.ServiceType.IsValid() {
		return apperrors.NewValidationError("serviceType", "unknown service type")
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return apperrors.NewValidationError("endDate", "cannot be before startDate")
	}
	if s.Days != nil && *s.Days < 0 {
		return apperrors.NewValidationError("days", "cannot be negative")
	}
	seen := make(map[int64]bool, len(s.Helpers))
	for _, h := range s.Helpers {
		if err := h.Validate(); err != nil {
			return err
		}
		if seen[h.Employee.EmployeeID] {
			return apperrors.NewValidationError("helpers", fmt.Sprintf("employee %d is listed twice", h.Employee.EmployeeID))
		}
		seen[h.Employee.EmployeeID] = true
	}
	return nil
}

// InclusiveDays counts calendar days from start to end, both included.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
