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

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for financial periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodSelect = `
	SELECT period_id, park_id, administrator_id, year, month, jva_price_per_meter, leader_price_per_meter,
	       tax_rate, car_rental_value, status, notes, created_at, created_by, last_updated_at, last_updated_by
	FROM financial_periods
`

func scanPeriod(row pgx.Row) (domain.FinancialPeriod, error) {
	var (
		p       domain.FinancialPeriod
		taxRate decimal.Decimal
		status  string
	)
	err := row.Scan(
		&p.PeriodID,
		&p.ParkID,
		&p.AdministratorID,
		&p.Year,
		&p.Month,
		&p.JVAPricePerMeter,
		&p.LeaderPricePerMeter,
		&taxRate,
		&p.CarRentalValue,
		&status,
		&p.Notes,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return p, err
	}
	p.Status = domain.PeriodStatus(status)
	if p.TaxRate, err = domain.TaxRateFromFraction(taxRate); err != nil {
		return p, fmt.Errorf("period %d: %w", p.PeriodID, err)
	}
	return p, nil
}

func findPeriod(ctx context.Context, q dbtx, periodID int64) (*domain.FinancialPeriod, error) {
	p, err := scanPeriod(q.QueryRow(ctx, periodSelect+` WHERE period_id = $1;`, periodID))
	if err != nil {
		return nil, mapReadError(err, "period", periodID)
	}
	return &p, nil
}

// FindPeriodByID retrieves a period by id.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID int64) (*domain.FinancialPeriod, error) {
	return findPeriod(ctx, r.Pool, periodID)
}

// ListPeriods retrieves periods newest competency first.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, parkID *int64) ([]domain.FinancialPeriod, error) {
	query := periodSelect + `
		WHERE ($1::bigint IS NULL OR park_id = $1)
		ORDER BY year DESC, month DESC, period_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, parkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	periods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FinancialPeriod, error) {
		return scanPeriod(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan periods: %w", err)
	}
	return periods, nil
}

// LoadPeriodSnapshot reads a period with its services and payments inside one
// read-only repeatable-read transaction.
func (r *PgxPeriodRepository) LoadPeriodSnapshot(ctx context.Context, periodID int64) (*domain.PeriodSnapshot, error) {
	tx, err := r.BeginReadOnly(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	period, err := findPeriod(ctx, tx, periodID)
	if err != nil {
		return nil, err
	}
	services, err := listServices(ctx, tx, periodID)
	if err != nil {
		return nil, err
	}
	payments, err := listPayments(ctx, tx, periodID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to close snapshot of period %d: %w", periodID, err)
	}

	return &domain.PeriodSnapshot{Period: *period, Services: services, Payments: payments}, nil
}

// CountServicesWithoutLeader counts the period's services with no leader.
func (r *PgxPeriodRepository) CountServicesWithoutLeader(ctx context.Context, periodID int64) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM service_entries WHERE period_id = $1 AND leader_id IS NULL;`, periodID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count services without leader for period %d: %w", periodID, err)
	}
	return n, nil
}

// SavePeriod inserts a new period and returns its id. A second period for the
// same park and competency is ErrDuplicate.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, p domain.FinancialPeriod) (int64, error) {
	query := `
		INSERT INTO financial_periods (park_id, administrator_id, year, month, jva_price_per_meter, leader_price_per_meter,
		                               tax_rate, car_rental_value, status, notes,
		                               created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING period_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		p.ParkID,
		p.AdministratorID,
		p.Year,
		p.Month,
		p.JVAPricePerMeter,
		p.LeaderPricePerMeter,
		p.TaxRate.Fraction(),
		p.CarRentalValue,
		string(p.Status),
		p.Notes,
		p.CreatedAt,
		p.CreatedBy,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("failed to save period %d/%02d of park %d", p.Year, p.Month, p.ParkID))
	}
	return id, nil
}

// UpdatePeriod replaces the pricing, status and notes of a period.
func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, p domain.FinancialPeriod) error {
	query := `
		UPDATE financial_periods
		SET administrator_id = $2, jva_price_per_meter = $3, leader_price_per_meter = $4, tax_rate = $5,
		    car_rental_value = $6, status = $7, notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		p.PeriodID,
		p.AdministratorID,
		p.JVAPricePerMeter,
		p.LeaderPricePerMeter,
		p.TaxRate.Fraction(),
		p.CarRentalValue,
		string(p.Status),
		p.Notes,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update period %d", p.PeriodID))
	}
	return requireAffected(tag, "period", p.PeriodID)
}

// DeletePeriod removes a period; its entries go with it by cascade.
func (r *PgxPeriodRepository) DeletePeriod(ctx context.Context, periodID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM financial_periods WHERE period_id = $1;`, periodID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete period %d", periodID))
	}
	return requireAffected(tag, "period", periodID)
}
