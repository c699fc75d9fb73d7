package pgsql

import (
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:   newPgxClientRepository(dbPool),
		ParkRepo:     newPgxParkRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		PeriodRepo:   newPgxPeriodRepository(dbPool),
		ServiceRepo:  newPgxServiceEntryRepository(dbPool),
		PaymentRepo:  newPgxPaymentEntryRepository(dbPool),
	}
}
