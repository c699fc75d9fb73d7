package repositories

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// PeriodReader defines read operations for financial periods
type PeriodReader interface {
	FindPeriodByID(ctx context.Context, periodID int64) (*domain.FinancialPeriod, error)

	// ListPeriods retrieves periods newest first, restricted to one park when parkID is set.
	ListPeriods(ctx context.Context, parkID *int64) ([]domain.FinancialPeriod, error)

	// LoadPeriodSnapshot reads a period with all its services and payments
	// inside a single read-only transaction.
	LoadPeriodSnapshot(ctx context.Context, periodID int64) (*domain.PeriodSnapshot, error)

	// CountServicesWithoutLeader counts the period's services with no leader assigned.
	CountServicesWithoutLeader(ctx context.Context, periodID int64) (int, error)
}

// PeriodWriter defines write operations for financial periods
type PeriodWriter interface {
	// SavePeriod persists a new period and returns its generated id.
	SavePeriod(ctx context.Context, period domain.FinancialPeriod) (int64, error)
	UpdatePeriod(ctx context.Context, period domain.FinancialPeriod) error

	// DeletePeriod removes the period and, by cascade, its services and payments.
	DeletePeriod(ctx context.Context, periodID int64) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}

// ServiceEntryRepositoryFacade defines persistence for service entries
type ServiceEntryRepositoryFacade interface {
	FindServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceEntry, error)
	ListServicesByPeriod(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error)
	SaveService(ctx context.Context, service domain.ServiceEntry) (int64, error)
	UpdateService(ctx context.Context, service domain.ServiceEntry) error
	DeleteService(ctx context.Context, serviceID int64) error
}

// PaymentEntryRepositoryFacade defines persistence for payment entries
type PaymentEntryRepositoryFacade interface {
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error)
	ListPaymentsByPeriod(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error)
	SavePayment(ctx context.Context, payment domain.PaymentEntry) (int64, error)
	UpdatePayment(ctx context.Context, payment domain.PaymentEntry) error
	DeletePayment(ctx context.Context, paymentID int64) error
}
