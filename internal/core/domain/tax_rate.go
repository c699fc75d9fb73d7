package domain

import (
	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// taxRatePlaces is the precision kept for a normalised fraction (6.8% -> 0.0680).
const taxRatePlaces = 4

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// TaxRate is a tax percentage held as a fraction in [0, 1].
// The zero value is a 0% rate.
type TaxRate struct {
	fraction decimal.Decimal
}

// NewTaxRate normalises a user supplied rate. Values >= 1 are whole percentages
// (6.8 means 6.8%), values below 1 are fractions (0.068 means 6.8%).
func NewTaxRate(raw decimal.Decimal) (TaxRate, error) {
	if raw.IsNegative() {
		return TaxRate{}, apperrors.NewValidationError("taxRate", "cannot be negative")
	}
	if raw.GreaterThan(hundred) {
		return TaxRate{}, apperrors.NewValidationError("taxRate", "cannot exceed 100%")
	}
	if raw.GreaterThanOrEqual(one) {
		return TaxRate{fraction: raw.DivRound(hundred, taxRatePlaces)}, nil
	}
	return TaxRate{fraction: raw.Round(taxRatePlaces)}, nil
}

// TaxRateFromFraction rebuilds a rate already stored as a fraction.
func TaxRateFromFraction(f decimal.Decimal) (TaxRate, error) {
	if f.IsNegative() || f.GreaterThan(one) {
		return TaxRate{}, apperrors.NewValidationError("taxRate", "stored fraction must be between 0 and 1")
	}
	return TaxRate{fraction: f.Round(taxRatePlaces)}, nil
}

// Fraction returns the rate as a multiplier.
func (r TaxRate) Fraction() decimal.Decimal {
	return r.fraction
}

// Percent returns the rate as a percentage (0.068 -> 6.8).
func (r TaxRate) Percent() decimal.Decimal {
	return r.fraction.Mul(hundred)
}

// Equal reports whether both rates hold the same fraction.
func (r TaxRate) Equal(o TaxRate) bool {
	return r.fraction.Equal(o.fraction)
}

func (r TaxRate) String() string {
	return r.fraction.StringFixed(taxRatePlaces)
}

// MarshalJSON encodes the fraction.
func (r TaxRate) MarshalJSON() ([]byte, error) {
	return r.fraction.MarshalJSON()
}

// UnmarshalJSON accepts either representation and normalises it.
func (r *TaxRate) UnmarshalJSON(data []byte) error {
	var raw decimal.Decimal
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}
	rate, err := NewTaxRate(raw)
	if err != nil {
		return err
	}
	*r = rate
	return nil
}
