package dto

import (
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CreatePeriodRequest defines the data needed to open a financial period.
// TaxRate accepts a whole percentage (6.8) or a fraction (0.068).
type CreatePeriodRequest struct {
	ParkID              int64           `json:"parkId" binding:"required,gt=0"`
	AdministratorID     *int64          `json:"administratorId,omitempty" binding:"omitempty,gt=0"`
	Year                int             `json:"year" binding:"required"`
	Month               int             `json:"month" binding:"required"`
	JVAPricePerMeter    decimal.Decimal `json:"jvaPricePerMeter"`
	LeaderPricePerMeter decimal.Decimal `json:"leaderPricePerMeter"`
	TaxRate             decimal.Decimal `json:"taxRate"`
	CarRentalValue      decimal.Decimal `json:"carRentalValue"`
	Status              string          `json:"status,omitempty" binding:"omitempty,oneof=OPEN CLOSED"`
	Notes               *string         `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdatePeriodRequest defines a partial update of a period's pricing and status.
type UpdatePeriodRequest struct {
	AdministratorID     *int64           `json:"administratorId,omitempty" binding:"omitempty,gt=0"`
	JVAPricePerMeter    *decimal.Decimal `json:"jvaPricePerMeter,omitempty"`
	LeaderPricePerMeter *decimal.Decimal `json:"leaderPricePerMeter,omitempty"`
	TaxRate             *decimal.Decimal `json:"taxRate,omitempty"`
	CarRentalValue      *decimal.Decimal `json:"carRentalValue,omitempty"`
	Status              *string          `json:"status,omitempty" binding:"omitempty,oneof=OPEN CLOSED"`
	Notes               *string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// PeriodResponse defines the data returned for a financial period.
type PeriodResponse struct {
	PeriodID            int64               `json:"periodId"`
	ParkID              int64               `json:"parkId"`
	AdministratorID     *int64              `json:"administratorId,omitempty"`
	Year                int                 `json:"year"`
	Month               int                 `json:"month"`
	JVAPricePerMeter    decimal.Decimal     `json:"jvaPricePerMeter"`
	LeaderPricePerMeter decimal.Decimal     `json:"leaderPricePerMeter"`
	TaxRate             decimal.Decimal     `json:"taxRate"`
	TaxRatePercent      decimal.Decimal     `json:"taxRatePercent"`
	CarRentalValue      decimal.Decimal     `json:"carRentalValue"`
	Status              domain.PeriodStatus `json:"status"`
	Notes               *string             `json:"notes,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	LastUpdatedAt       time.Time           `json:"lastUpdatedAt"`
}

// ToPeriodResponse converts a domain.FinancialPeriod to PeriodResponse DTO
func ToPeriodResponse(p *domain.FinancialPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:            p.PeriodID,
		ParkID:              p.ParkID,
		AdministratorID:     p.AdministratorID,
		Year:                p.Year,
		Month:               p.Month,
		JVAPricePerMeter:    p.JVAPricePerMeter,
		LeaderPricePerMeter: p.LeaderPricePerMeter,
		TaxRate:             p.TaxRate.Fraction(),
		TaxRatePercent:      p.TaxRate.Percent(),
		CarRentalValue:      p.CarRentalValue,
		Status:              p.Status,
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt,
		LastUpdatedAt:       p.LastUpdatedAt,
	}
}

// ToListPeriodResponse converts periods to response DTOs.
func ToListPeriodResponse(periods []domain.FinancialPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}

// ServiceEntryRequest defines a new service entry.
// A missing unitPrice follows the period's jvaPricePerMeter.
type ServiceEntryRequest struct {
	ServiceType string                 `json:"serviceType,omitempty" binding:"omitempty,oneof=ASSEMBLY DISASSEMBLY MAINTENANCE OTHER"`
	TeamType    string                 `json:"teamType,omitempty" binding:"omitempty,max=60"`
	LeaderID    *int64                 `json:"leaderId,omitempty" binding:"omitempty,gt=0"`
	Meters      decimal.Decimal        `json:"meters"`
	UnitPrice   *decimal.Decimal       `json:"unitPrice,omitempty"`
	StartDate   *string                `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string                `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Days        *int                   `json:"days,omitempty" binding:"omitempty,gte=0"`
	Notes       *string                `json:"notes,omitempty" binding:"omitempty,max=500"`
	Helpers     []ServiceHelperRequest `json:"helpers,omitempty" binding:"omitempty,dive"`
}

// UpdateServiceEntryRequest changes only the fields it carries. Helpers, when
// present, replace the whole crew.
type UpdateServiceEntryRequest struct {
	ServiceType *string                 `json:"serviceType,omitempty" binding:"omitempty,oneof=ASSEMBLY DISASSEMBLY MAINTENANCE OTHER"`
	TeamType    *string                 `json:"teamType,omitempty" binding:"omitempty,max=60"`
	LeaderID    *int64                  `json:"leaderId,omitempty" binding:"omitempty,gt=0"`
	Meters      *decimal.Decimal        `json:"meters,omitempty"`
	UnitPrice   *decimal.Decimal        `json:"unitPrice,omitempty"`
	StartDate   *string                 `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string                 `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Days        *int                    `json:"days,omitempty" binding:"omitempty,gte=0"`
	Notes       *string                 `json:"notes,omitempty" binding:"omitempty,max=500"`
	Helpers     *[]ServiceHelperRequest `json:"helpers,omitempty" binding:"omitempty,dive"`
}

// ServiceHelperRequest puts an assembler on a service. The rate defaults to the
// assembler's daily rate, the days to the service's days and the total to
// rate times days.
type ServiceHelperRequest struct {
	EmployeeID    int64            `json:"employeeId" binding:"required,gt=0"`
	DailyRateUsed *decimal.Decimal `json:"dailyRateUsed,omitempty"`
	DaysUsed      *int             `json:"daysUsed,omitempty" binding:"omitempty,gte=0"`
	TotalCost     *decimal.Decimal `json:"totalCost,omitempty"`
}

// ServiceEntryResponse defines the data returned for a service entry.
type ServiceEntryResponse struct {
	ServiceID   int64                  `json:"serviceId"`
	PeriodID    int64                  `json:"periodId"`
	ServiceType domain.ServiceType     `json:"serviceType"`
	TeamType    string                 `json:"teamType"`
	Leader      *domain.EmployeeRef    `json:"leader,omitempty"`
	Meters      decimal.Decimal        `json:"meters"`
	UnitPrice   decimal.Decimal        `json:"unitPrice"`
	CustomPrice bool                   `json:"customPrice"`
	GrossValue  decimal.Decimal        `json:"grossValue"`
	StartDate   *string                `json:"startDate,omitempty"`
	EndDate     *string                `json:"endDate,omitempty"`
	Days        *int                   `json:"days,omitempty"`
	Notes       *string                `json:"notes,omitempty"`
	Helpers     []domain.ServiceHelper `json:"helpers"`
	HelpersCost decimal.Decimal        `json:"helpersCost"`
}

// ToServiceEntryResponse converts a service entry, resolving its price against the period.
func ToServiceEntryResponse(s *domain.ServiceEntry, period *domain.FinancialPeriod) ServiceEntryResponse {
	price := s.EffectiveUnitPrice(*period)
	helpers := s.Helpers
	if helpers == nil {
		helpers = []domain.ServiceHelper{}
	}
	return ServiceEntryResponse{
		ServiceID:   s.ServiceID,
		PeriodID:    s.PeriodID,
		ServiceType: s.ServiceType,
		TeamType:    s.TeamType,
		Leader:      s.Leader,
		Meters:      s.Meters,
		UnitPrice:   price,
		CustomPrice: s.UnitPrice != nil,
		GrossValue:  s.Meters.Mul(price).Round(2),
		StartDate:   FormatDate(s.StartDate),
		EndDate:     FormatDate(s.EndDate),
		Days:        s.Days,
		Notes:       s.Notes,
		Helpers:     helpers,
		HelpersCost: s.HelpersCost(),
	}
}

// ToListServiceEntryResponse converts the services of one period.
func ToListServiceEntryResponse(services []domain.ServiceEntry, period *domain.FinancialPeriod) []ServiceEntryResponse {
	res := make([]ServiceEntryResponse, len(services))
	for i := range services {
		res[i] = ToServiceEntryResponse(&services[i], period)
	}
	return res
}

// PaymentEntryRequest defines a new payment entry.
type PaymentEntryRequest struct {
	PaymentDate   *string         `json:"paymentDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Name          string          `json:"name" binding:"required,max=150"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category,omitempty" binding:"omitempty,oneof=CLIENT_PAYMENT EMPLOYEE_HELPER EMPLOYEE_LEADER TAX CAR_RENTAL OTHER"`
	InvoiceNumber *string         `json:"invoiceNumber,omitempty" binding:"omitempty,max=60"`
	Notes         *string         `json:"notes,omitempty" binding:"omitempty,max=500"`
	EmployeeID    *int64          `json:"employeeId,omitempty" binding:"omitempty,gt=0"`
	ClientCNPJ    *string         `json:"clientCnpj,omitempty" binding:"omitempty,cnpj"`
}

// UpdatePaymentEntryRequest changes only the fields it carries.
type UpdatePaymentEntryRequest struct {
	PaymentDate   *string          `json:"paymentDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Name          *string          `json:"name,omitempty" binding:"omitempty,max=150"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Category      *string          `json:"category,omitempty" binding:"omitempty,oneof=CLIENT_PAYMENT EMPLOYEE_HELPER EMPLOYEE_LEADER TAX CAR_RENTAL OTHER"`
	InvoiceNumber *string          `json:"invoiceNumber,omitempty" binding:"omitempty,max=60"`
	Notes         *string          `json:"notes,omitempty" binding:"omitempty,max=500"`
	EmployeeID    *int64           `json:"employeeId,omitempty" binding:"omitempty,gt=0"`
	ClientCNPJ    *string          `json:"clientCnpj,omitempty" binding:"omitempty,cnpj"`
}

// PaymentEntryResponse defines the data returned for a payment entry.
type PaymentEntryResponse struct {
	PaymentID     int64                  `json:"paymentId"`
	PeriodID      int64                  `json:"periodId"`
	PaymentDate   string                 `json:"paymentDate"`
	Name          string                 `json:"name"`
	Amount        decimal.Decimal        `json:"amount"`
	Category      domain.PaymentCategory `json:"category"`
	InvoiceNumber *string                `json:"invoiceNumber,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	Employee      *domain.EmployeeRef    `json:"employee,omitempty"`
	ClientCNPJ    *string                `json:"clientCnpj,omitempty"`
}

// ToPaymentEntryResponse converts a domain.PaymentEntry to PaymentEntryResponse DTO
func ToPaymentEntryResponse(p *domain.PaymentEntry) PaymentEntryResponse {
	return PaymentEntryResponse{
		PaymentID:     p.PaymentID,
		PeriodID:      p.PeriodID,
		PaymentDate:   p.PaymentDate.Format(DateLayout),
		Name:          p.Name,
		Amount:        p.Amount,
		Category:      p.Category,
		InvoiceNumber: p.InvoiceNumber,
		Notes:         p.Notes,
		Employee:      p.Employee,
		ClientCNPJ:    p.ClientCNPJ,
	}
}

// ToListPaymentEntryResponse converts payments to response DTOs.
func ToListPaymentEntryResponse(payments []domain.PaymentEntry) []PaymentEntryResponse {
	res := make([]PaymentEntryResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentEntryResponse(&payments[i])
	}
	return res
}

// ParseDate parses an optional wire date.
func ParseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *raw)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a date formatted as YYYY-MM-DD")
	}
	return &t, nil
}

// FormatDate formats an optional date for the wire.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
