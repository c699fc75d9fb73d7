package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `cnpj, name, contact_phone, email, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.CNPJ,
		&c.Name,
		&c.ContactPhone,
		&c.Email,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// FindClientByCNPJ retrieves a client by its 14-digit CNPJ.
func (r *PgxClientRepository) FindClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE cnpj = $1;`
	c, err := scanClient(r.Pool.QueryRow(ctx, query, cnpj))
	if err != nil {
		return nil, mapReadError(err, "client", cnpj)
	}
	return &c, nil
}

// ListClients retrieves all clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name, cnpj;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return clients, nil
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.CNPJ,
		client.Name,
		client.ContactPhone,
		client.Email,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to save client "+client.CNPJ)
	}
	return nil
}

// UpdateClient updates the mutable fields of a client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, contact_phone = $3, email = $4, last_updated_at = $5, last_updated_by = $6
		WHERE cnpj = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.CNPJ,
		client.Name,
		client.ContactPhone,
		client.Email,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update client "+client.CNPJ)
	}
	return requireAffected(tag, "client", client.CNPJ)
}

// DeleteClient removes a client that no park or payment references.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, cnpj string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE cnpj = $1;`, cnpj)
	if err != nil {
		return mapWriteError(err, "failed to delete client "+cnpj)
	}
	return requireAffected(tag, "client", cnpj)
}
