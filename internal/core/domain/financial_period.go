package domain

import (
	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	MinPeriodYear = 2020
	MaxPeriodYear = 2100
)

// FinancialPeriod is one park's books for one calendar month (a "competency").
type FinancialPeriod struct {
	PeriodID            int64           `json:"periodId"`
	ParkID              int64           `json:"parkId"`
	AdministratorID     *int64          `json:"administratorId,omitempty"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	JVAPricePerMeter    decimal.Decimal `json:"jvaPricePerMeter"`
	LeaderPricePerMeter decimal.Decimal `json:"leaderPricePerMeter"`
	TaxRate             TaxRate         `json:"taxRate"`
	CarRentalValue      decimal.Decimal `json:"carRentalValue"`
	Status              PeriodStatus    `json:"status"`
	Notes               *string         `json:"notes,omitempty"`
	AuditFields
}

// RequiresLeader reports whether services of this period must name a leader.
func (p FinancialPeriod) RequiresLeader() bool {
	return p.LeaderPricePerMeter.IsPositive()
}

// IsClosed reports whether the period no longer accepts entries.
func (p FinancialPeriod) IsClosed() bool {
	return p.Status == PeriodClosed
}

// ValidateCompetency checks the month and year of a period.
func ValidateCompetency(year, month int) error {
	if month < 1 || month > 12 {
		return apperrors.NewValidationError("month", "must be between 1 and 12")
	}
	if year < MinPeriodYear || year > MaxPeriodYear {
		return apperrors.NewValidationError("year", "must be between 2020 and 2100")
	}
	return nil
}

// Validate checks the period's own fields.
func (p FinancialPeriod) Validate() error {
	if err := ValidateCompetency(p.Year, p.Month); err != nil {
		return err
	}
	if p.JVAPricePerMeter.IsNegative() {
		return apperrors.NewValidationError("jvaPricePerMeter", "cannot be negative")
	}
	if p.LeaderPricePerMeter.IsNegative() {
		return apperrors.NewValidationError("leaderPricePerMeter", "cannot be negative")
	}
	if p.CarRentalValue.IsNegative() {
		return apperrors.NewValidationError("carRentalValue", "cannot be negative")
	}
	if p.Status != "" && !p.Status.IsValid() {
		return apperrors.NewValidationError("status", "must be OPEN or CLOSED")
	}
	return nil
}

// PeriodSnapshot is a period read together with its entries at one instant.
type PeriodSnapshot struct {
	Period   FinancialPeriod
	Services []ServiceEntry
	Payments []PaymentEntry
}
