package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
)

type PgxPaymentEntryRepository struct {
	BaseRepository
}

// newPgxPaymentEntryRepository creates a new repository for payment entries.
func newPgxPaymentEntryRepository(pool *pgxpool.Pool) portsrepo.PaymentEntryRepositoryFacade {
	return &PgxPaymentEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentEntryRepositoryFacade = (*PgxPaymentEntryRepository)(nil)

const paymentSelect = `
	SELECT p.payment_id, p.period_id, p.payment_date, p.name, p.amount, p.category, p.invoice_number, p.notes,
	       p.employee_id, e.name, p.client_cnpj,
	       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
	FROM payment_entries p
	LEFT JOIN employees e ON e.employee_id = p.employee_id
`

func scanPayment(row pgx.Row) (domain.PaymentEntry, error) {
	var (
		p            domain.PaymentEntry
		category     string
		employeeID   *int64
		employeeName *string
	)
	err := row.Scan(
		&p.PaymentID,
		&p.PeriodID,
		&p.PaymentDate,
		&p.Name,
		&p.Amount,
		&category,
		&p.InvoiceNumber,
		&p.Notes,
		&employeeID,
		&employeeName,
		&p.ClientCNPJ,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return p, err
	}
	p.Category = domain.PaymentCategory(category)
	if employeeID != nil {
		p.Employee = &domain.EmployeeRef{EmployeeID: *employeeID}
		if employeeName != nil {
			p.Employee.Name = *employeeName
		}
	}
	return p, nil
}

func listPayments(ctx context.Context, q dbtx, periodID int64) ([]domain.PaymentEntry, error) {
	rows, err := q.Query(ctx, paymentSelect+` WHERE p.period_id = $1 ORDER BY p.payment_date, p.payment_id;`, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of period %d: %w", periodID, err)
	}
	defer rows.Close()

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentEntry, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments of period %d: %w", periodID, err)
	}
	return payments, nil
}

// FindPaymentByID retrieves a payment entry by id.
func (r *PgxPaymentEntryRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error) {
	p, err := scanPayment(r.Pool.QueryRow(ctx, paymentSelect+` WHERE p.payment_id = $1;`, paymentID))
	if err != nil {
		return nil, mapReadError(err, "payment", paymentID)
	}
	return &p, nil
}

// ListPaymentsByPeriod retrieves the payment entries of a period by date.
func (r *PgxPaymentEntryRepository) ListPaymentsByPeriod(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error) {
	return listPayments(ctx, r.Pool, periodID)
}

// SavePayment inserts a payment entry and returns its id.
func (r *PgxPaymentEntryRepository) SavePayment(ctx context.Context, p domain.PaymentEntry) (int64, error) {
	query := `
		INSERT INTO payment_entries (period_id, payment_date, name, amount, category, invoice_number, notes,
		                             employee_id, client_cnpj, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING payment_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		p.PeriodID,
		p.PaymentDate,
		p.Name,
		p.Amount,
		string(p.Category),
		p.InvoiceNumber,
		p.Notes,
		employeeIDArg(p.Employee),
		p.ClientCNPJ,
		p.CreatedAt,
		p.CreatedBy,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, fmt.Sprintf("failed to save payment for period %d", p.PeriodID))
	}
	return id, nil
}

// UpdatePayment replaces a payment entry.
func (r *PgxPaymentEntryRepository) UpdatePayment(ctx context.Context, p domain.PaymentEntry) error {
	query := `
		UPDATE payment_entries
		SET payment_date = $2, name = $3, amount = $4, category = $5, invoice_number = $6, notes = $7,
		    employee_id = $8, client_cnpj = $9, last_updated_at = $10, last_updated_by = $11
		WHERE payment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		p.PaymentID,
		p.PaymentDate,
		p.Name,
		p.Amount,
		string(p.Category),
		p.InvoiceNumber,
		p.Notes,
		employeeIDArg(p.Employee),
		p.ClientCNPJ,
		p.LastUpdatedAt,
		p.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update payment %d", p.PaymentID))
	}
	return requireAffected(tag, "payment", p.PaymentID)
}

// DeletePayment removes a payment entry.
func (r *PgxPaymentEntryRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_entries WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete payment %d", paymentID))
	}
	return requireAffected(tag, "payment", paymentID)
}
