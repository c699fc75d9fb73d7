package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxServiceEntryRepository struct {
	BaseRepository
}

// newPgxServiceEntryRepository creates a new repository for service entries.
func newPgxServiceEntryRepository(pool *pgxpool.Pool) portsrepo.ServiceEntryRepositoryFacade {
	return &PgxServiceEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ServiceEntryRepositoryFacade = (*PgxServiceEntryRepository)(nil)

// serviceSelect joins the leader so entries carry the leader's name.
const serviceSelect = `
	SELECT s.service_id, s.period_id, s.service_type, s.team_type, s.leader_id, e.name,
	       s.meters, s.unit_price, s.start_date, s.end_date, s.days, s.notes,
	       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
	FROM service_entries s
	LEFT JOIN employees e ON e.employee_id = s.leader_id
`

const helperSelect = `
	SELECT h.helper_id, h.service_id, h.employee_id, e.name, h.daily_rate_used, h.days_used, h.total_cost
	FROM service_helpers h
	JOIN employees e ON e.employee_id = h.employee_id
`

func scanService(row pgx.Row) (domain.ServiceEntry, error) {
	var (
		s           domain.ServiceEntry
		serviceType string
		leaderID    *int64
		leaderName  *string
		unitPrice   decimal.NullDecimal
	)
	err := row.Scan(
		&s.ServiceID,
		&s.PeriodID,
		&serviceType,
		&s.TeamType,
		&leaderID,
		&leaderName,
		&s.Meters,
		&unitPrice,
		&s.StartDate,
		&s.EndDate,
		&s.Days,
		&s.Notes,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return s, err
	}
	s.ServiceType = domain.ServiceType(serviceType)
	s.UnitPrice = nullDecimalPtr(unitPrice)
	s.Helpers = []domain.ServiceHelper{}
	if leaderID != nil {
		s.Leader = &domain.EmployeeRef{EmployeeID: *leaderID}
		if leaderName != nil {
			s.Leader.Name = *leaderName
		}
	}
	return s, nil
}

func scanHelper(row pgx.CollectableRow) (domain.ServiceHelper, error) {
	var h domain.ServiceHelper
	err := row.Scan(
		&h.HelperID,
		&h.ServiceID,
		&h.Employee.EmployeeID,
		&h.Employee.Name,
		&h.DailyRateUsed,
		&h.DaysUsed,
		&h.TotalCost,
	)
	return h, err
}

// attachHelpers loads the helper crews of the given services in one query.
func attachHelpers(ctx context.Context, q dbtx, services []domain.ServiceEntry) error {
	if len(services) == 0 {
		return nil
	}
	ids := make([]int64, len(services))
	index := make(map[int64]int, len(services))
	for i, s := range services {
		ids[i] = s.ServiceID
		index[s.ServiceID] = i
	}

	rows, err := q.Query(ctx, helperSelect+` WHERE h.service_id = ANY($1) ORDER BY h.service_id, h.helper_id;`, ids)
	if err != nil {
		return fmt.Errorf("failed to query service helpers: %w", err)
	}
	defer rows.Close()

	helpers, err := pgx.CollectRows(rows, scanHelper)
	if err != nil {
		return fmt.Errorf("failed to scan service helpers: %w", err)
	}
	for _, h := range helpers {
		i := index[h.ServiceID]
		services[i].Helpers = append(services[i].Helpers, h)
	}
	return nil
}

func listServices(ctx context.Context, q dbtx, periodID int64) ([]domain.ServiceEntry, error) {
	rows, err := q.Query(ctx, serviceSelect+` WHERE s.period_id = $1 ORDER BY s.service_id;`, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query services of period %d: %w", periodID, err)
	}
	defer rows.Close()

	services, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ServiceEntry, error) {
		return scanService(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan services of period %d: %w", periodID, err)
	}
	if err := attachHelpers(ctx, q, services); err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}
	return services, nil
}

// FindServiceByID retrieves a service entry with its helpers.
func (r *PgxServiceEntryRepository) FindServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceEntry, error) {
	s, err := scanService(r.Pool.QueryRow(ctx, serviceSelect+` WHERE s.service_id = $1;`, serviceID))
	if err != nil {
		return nil, mapReadError(err, "service", serviceID)
	}
	one := []domain.ServiceEntry{s}
	if err := attachHelpers(ctx, r.Pool, one); err != nil {
		return nil, fmt.Errorf("service %d: %w", serviceID, err)
	}
	return &one[0], nil
}

// ListServicesByPeriod retrieves the service entries of a period in insertion order.
func (r *PgxServiceEntryRepository) ListServicesByPeriod(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error) {
	return listServices(ctx, r.Pool, periodID)
}

// SaveService inserts a service entry and its helpers in one transaction and
// returns the service id.
func (r *PgxServiceEntryRepository) SaveService(ctx context.Context, s domain.ServiceEntry) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO service_entries (period_id, service_type, team_type, leader_id, meters, unit_price,
		                             start_date, end_date, days, notes,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING service_id;
	`
	var id int64
	err = tx.QueryRow(ctx, query,
		s.PeriodID,
		string(s.ServiceType),
		s.TeamType,
		employeeIDArg(s.Leader),
		s.Meters,
		s.UnitPrice,
		s.StartDate,
		s.EndDate,
		s.Days,
		s.Notes,
		s.CreatedAt,
		s.CreatedBy,
		s.LastUpdatedAt,
		s.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("failed to save service for period %d", s.PeriodID))
	}
	if err := insertHelpers(ctx, tx, id, s.Helpers); err != nil {
		return 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateService replaces a service entry and its helper crew in one transaction.
func (r *PgxServiceEntryRepository) UpdateService(ctx context.Context, s domain.ServiceEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE service_entries
		SET service_type = $2, team_type = $3, leader_id = $4, meters = $5, unit_price = $6,
		    start_date = $7, end_date = $8, days = $9, notes = $10, last_updated_at = $11, last_updated_by = $12
		WHERE service_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		s.ServiceID,
		string(s.ServiceType),
		s.TeamType,
		employeeIDArg(s.Leader),
		s.Meters,
		s.UnitPrice,
		s.StartDate,
		s.EndDate,
		s.Days,
		s.Notes,
		s.LastUpdatedAt,
		s.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update service %d", s.ServiceID))
	}
	if err := requireAffected(tag, "service", s.ServiceID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM service_helpers WHERE service_id = $1;`, s.ServiceID); err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to clear helpers of service %d", s.ServiceID))
	}
	if err := insertHelpers(ctx, tx, s.ServiceID, s.Helpers); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteService removes a service entry; its helpers go with it by cascade.
func (r *PgxServiceEntryRepository) DeleteService(ctx context.Context, serviceID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM service_entries WHERE service_id = $1;`, serviceID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete service %d", serviceID))
	}
	return requireAffected(tag, "service", serviceID)
}

func insertHelpers(ctx context.Context, q dbtx, serviceID int64, helpers []domain.ServiceHelper) error {
	const query = `
		INSERT INTO service_helpers (service_id, employee_id, daily_rate_used, days_used, total_cost)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, h := range helpers {
		_, err := q.Exec(ctx, query, serviceID, h.Employee.EmployeeID, h.DailyRateUsed, h.DaysUsed, h.TotalCost)
		if err != nil {
			return mapWriteError(err, fmt.Sprintf("failed to save helper %d of service %d", h.Employee.EmployeeID, serviceID))
		}
	}
	return nil
}

func employeeIDArg(ref *domain.EmployeeRef) *int64 {
	if ref == nil {
		return nil
	}
	id := ref.EmployeeID
	return &id
}
