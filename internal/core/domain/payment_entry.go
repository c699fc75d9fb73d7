package domain

import (
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentEntry is a cash movement recorded against a period. Amount is always
// positive; its direction follows from Category.
type PaymentEntry struct {
	PaymentID     int64           `json:"paymentId"`
	PeriodID      int64           `json:"periodId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Category      PaymentCategory `json:"category"`
	InvoiceNumber *string         `json:"invoiceNumber,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	Employee      *EmployeeRef    `json:"employee,omitempty"`
	ClientCNPJ    *string         `json:"clientCnpj,omitempty"`
	AuditFields
}

// Validate checks amount and category.
func (p PaymentEntry) Validate() error {
	if !p.Amount.IsPositive() {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	if !p.Category.IsValid() {
		return apperrors.NewValidationError("category", "unknown payment category")
	}
	return nil
}
