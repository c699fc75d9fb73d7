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

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeSelect = `
	SELECT employee_id, name, role, user_cpf, pix_key, daily_rate, price_per_meter,
	       gov_email, gov_password, active, created_at, created_by, last_updated_at, last_updated_by
	FROM employees
`

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var (
		e             domain.Employee
		role          string
		dailyRate     decimal.NullDecimal
		pricePerMeter decimal.NullDecimal
	)
	err := row.Scan(
		&e.EmployeeID,
		&e.Name,
		&role,
		&e.CPF,
		&e.PixKey,
		&dailyRate,
		&pricePerMeter,
		&e.GovEmail,
		&e.GovPassword,
		&e.Active,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return e, err
	}
	e.Role = domain.JobRole(role)
	e.DailyRate = nullDecimalPtr(dailyRate)
	e.PricePerMeter = nullDecimalPtr(pricePerMeter)
	return e, nil
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// FindEmployeeByID retrieves an employee by id.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	e, err := scanEmployee(r.Pool.QueryRow(ctx, employeeSelect+` WHERE employee_id = $1;`, employeeID))
	if err != nil {
		return nil, mapReadError(err, "employee", employeeID)
	}
	return &e, nil
}

// FindEmployeeByCPF retrieves the employee linked to a login user.
func (r *PgxEmployeeRepository) FindEmployeeByCPF(ctx context.Context, cpf string) (*domain.Employee, error) {
	e, err := scanEmployee(r.Pool.QueryRow(ctx, employeeSelect+` WHERE user_cpf = $1;`, cpf))
	if err != nil {
		return nil, mapReadError(err, "employee with cpf", cpf)
	}
	return &e, nil
}

// ListEmployees retrieves employees ordered by name.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.EmployeeFilter) ([]domain.Employee, error) {
	var role *string
	if filter.Role != nil {
		s := string(*filter.Role)
		role = &s
	}
	query := employeeSelect + `
		WHERE ($1::varchar IS NULL OR role = $1)
		  AND (NOT $2 OR active)
		ORDER BY name, employee_id;
	`
	rows, err := r.Pool.Query(ctx, query, role, filter.OnlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return employees, nil
}

// SaveEmployee inserts a new employee together with its login change and
// returns the employee id.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, e domain.Employee, login portsrepo.LoginChange) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO employees (name, role, user_cpf, pix_key, daily_rate, price_per_meter, gov_email, gov_password,
		                       active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING employee_id;
	`
	var id int64
	err = tx.QueryRow(ctx, query,
		e.Name,
		string(e.Role),
		e.CPF,
		e.PixKey,
		e.DailyRate,
		e.PricePerMeter,
		e.GovEmail,
		e.GovPassword,
		e.Active,
		e.CreatedAt,
		e.CreatedBy,
		e.LastUpdatedAt,
		e.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, "failed to save employee")
	}
	if err := applyLoginChange(ctx, tx, login); err != nil {
		return 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateEmployee replaces the mutable fields of an employee and applies its
// login change in the same transaction.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, e domain.Employee, login portsrepo.LoginChange) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE employees
		SET name = $2, role = $3, user_cpf = $4, pix_key = $5, daily_rate = $6, price_per_meter = $7,
		    gov_email = $8, gov_password = $9, active = $10, last_updated_at = $11, last_updated_by = $12
		WHERE employee_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		e.EmployeeID,
		e.Name,
		string(e.Role),
		e.CPF,
		e.PixKey,
		e.DailyRate,
		e.PricePerMeter,
		e.GovEmail,
		e.GovPassword,
		e.Active,
		e.LastUpdatedAt,
		e.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update employee %d", e.EmployeeID))
	}
	if err := requireAffected(tag, "employee", e.EmployeeID); err != nil {
		return err
	}
	if err := applyLoginChange(ctx, tx, login); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func applyLoginChange(ctx context.Context, q dbtx, login portsrepo.LoginChange) error {
	if login.DeleteCPF != nil {
		if err := deleteUser(ctx, q, *login.DeleteCPF); err != nil {
			return err
		}
	}
	if login.Upsert != nil {
		return upsertUser(ctx, q, *login.Upsert)
	}
	return nil
}
