package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
	SELECT cpf, full_name, email, password_hash, created_at, created_by, last_updated_at, last_updated_by
	FROM users
`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.CPF,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	return u, err
}

// FindUserByCPF retrieves a login user by CPF.
func (r *PgxUserRepository) FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE cpf = $1;`, cpf))
	if err != nil {
		return nil, mapReadError(err, "user", cpf)
	}
	return &u, nil
}

// FindUserByEmail retrieves a login user by email, ignoring case.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE lower(email) = lower($1);`, email))
	if err != nil {
		return nil, mapReadError(err, "user with email", email)
	}
	return &u, nil
}

// upsertUser inserts a login user or refreshes the one with the same CPF.
// The creation audit of an existing row is kept. Another user holding the
// email is ErrDuplicate.
func upsertUser(ctx context.Context, q dbtx, user domain.User) error {
	query := `
		INSERT INTO users (cpf, full_name, email, password_hash, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (cpf) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := q.Exec(ctx, query,
		user.CPF,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to upsert user %s", user.CPF))
	}
	return nil
}

// deleteUser removes a login user. A missing row is not an error.
func deleteUser(ctx context.Context, q dbtx, cpf string) error {
	if _, err := q.Exec(ctx, `DELETE FROM users WHERE cpf = $1;`, cpf); err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete user %s", cpf))
	}
	return nil
}
