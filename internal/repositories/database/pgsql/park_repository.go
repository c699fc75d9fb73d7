package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
)

type PgxParkRepository struct {
	BaseRepository
}

// newPgxParkRepository creates a new repository for park data.
func newPgxParkRepository(pool *pgxpool.Pool) portsrepo.ParkRepositoryFacade {
	return &PgxParkRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ParkRepositoryFacade = (*PgxParkRepository)(nil)

// parkSelect joins the owning client so the park carries its client name.
const parkSelect = `
	SELECT p.park_id, p.name, p.city, p.state, p.client_cnpj, c.name,
	       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
	FROM parks p
	JOIN clients c ON c.cnpj = p.client_cnpj
`

func scanPark(row pgx.Row) (domain.Park, error) {
	var p domain.Park
	err := row.Scan(
		&p.ParkID,
		&p.Name,
		&p.City,
		&p.State,
		&p.ClientCNPJ,
		&p.ClientName,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// FindParkByID retrieves a park by its id.
func (r *PgxParkRepository) FindParkByID(ctx context.Context, parkID int64) (*domain.Park, error) {
	p, err := scanPark(r.Pool.QueryRow(ctx, parkSelect+` WHERE p.park_id = $1;`, parkID))
	if err != nil {
		return nil, mapReadError(err, "park", parkID)
	}
	return &p, nil
}

// ListParks retrieves parks ordered by name, optionally for a single client.
func (r *PgxParkRepository) ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error) {
	query := parkSelect + `
		WHERE ($1::varchar IS NULL OR p.client_cnpj = $1)
		ORDER BY p.name, p.park_id;
	`
	rows, err := r.Pool.Query(ctx, query, clientCNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to query parks: %w", err)
	}
	defer rows.Close()

	parks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Park, error) {
		return scanPark(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parks: %w", err)
	}
	return parks, nil
}

// SavePark inserts a new park and returns its id.
func (r *PgxParkRepository) SavePark(ctx context.Context, park domain.Park) (int64, error) {
	query := `
		INSERT INTO parks (name, city, state, client_cnpj, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING park_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		park.Name,
		park.City,
		park.State,
		park.ClientCNPJ,
		park.CreatedAt,
		park.CreatedBy,
		park.LastUpdatedAt,
		park.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, "failed to save park")
	}
	return id, nil
}

// UpdatePark updates the mutable fields of a park.
func (r *PgxParkRepository) UpdatePark(ctx context.Context, park domain.Park) error {
	query := `
		UPDATE parks
		SET name = $2, city = $3, state = $4, client_cnpj = $5, last_updated_at = $6, last_updated_by = $7
		WHERE park_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		park.ParkID,
		park.Name,
		park.City,
		park.State,
		park.ClientCNPJ,
		park.LastUpdatedAt,
		park.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update park %d", park.ParkID))
	}
	return requireAffected(tag, "park", park.ParkID)
}

// DeletePark removes a park without periods.
func (r *PgxParkRepository) DeletePark(ctx context.Context, parkID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parks WHERE park_id = $1;`, parkID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete park %d", parkID))
	}
	return requireAffected(tag, "park", parkID)
}
