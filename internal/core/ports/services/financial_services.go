package services

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
)

// PeriodSvc defines operations on financial periods
type PeriodSvc interface {
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, session domain.Session) (*domain.FinancialPeriod, error)
	GetPeriod(ctx context.Context, periodID int64, session domain.Session) (*domain.FinancialPeriod, error)
	// ListPeriods lists periods newest first, optionally for one park.
	ListPeriods(ctx context.Context, parkID *int64, session domain.Session) ([]domain.FinancialPeriod, error)
	UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest, session domain.Session) (*domain.FinancialPeriod, error)
	DeletePeriod(ctx context.Context, periodID int64, session domain.Session) error
}

// ServiceEntrySvc defines operations on the service entries of a period
type ServiceEntrySvc interface {
	AddService(ctx context.Context, periodID int64, req dto.ServiceEntryRequest, session domain.Session) (*domain.ServiceEntry, error)
	UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceEntryRequest, session domain.Session) (*domain.ServiceEntry, error)
	DeleteService(ctx context.Context, serviceID int64, session domain.Session) error
	ListServices(ctx context.Context, periodID int64, session domain.Session) ([]domain.ServiceEntry, error)
}

// PaymentEntrySvc defines operations on the payment entries of a period
type PaymentEntrySvc interface {
	AddPayment(ctx context.Context, periodID int64, req dto.PaymentEntryRequest, session domain.Session) (*domain.PaymentEntry, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentEntryRequest, session domain.Session) (*domain.PaymentEntry, error)
	DeletePayment(ctx context.Context, paymentID int64, session domain.Session) error
	ListPayments(ctx context.Context, periodID int64, session domain.Session) ([]domain.PaymentEntry, error)
}

// FinancialReportSvc defines the read-only financial projections
type FinancialReportSvc interface {
	Summary(ctx context.Context, periodID int64, session domain.Session) (*domain.FinancialSummary, error)
	ParkOverview(ctx context.Context, parkID int64, session domain.Session) (*domain.ParkFinancialOverview, error)
	// CarRentalSummary covers one park when parkID is set, otherwise every park.
	CarRentalSummary(ctx context.Context, parkID *int64, session domain.Session) (*domain.CarRentalSummary, error)
}

// FinancialSvcFacade combines all financial service interfaces
type FinancialSvcFacade interface {
	PeriodSvc
	ServiceEntrySvc
	PaymentEntrySvc
	FinancialReportSvc
}
