package repositories

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// ParkReader defines read operations for park data
type ParkReader interface {
	// FindParkByID retrieves a park together with its client's name.
	FindParkByID(ctx context.Context, parkID int64) (*domain.Park, error)

	// ListParks retrieves parks, restricted to one client when clientCNPJ is set.
	ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error)
}

// ParkWriter defines write operations for park data
type ParkWriter interface {
	// SavePark persists a new park and returns its generated id.
	SavePark(ctx context.Context, park domain.Park) (int64, error)
	UpdatePark(ctx context.Context, park domain.Park) error
	DeletePark(ctx context.Context, parkID int64) error
}

// ParkRepositoryFacade combines all park-related repository interfaces
type ParkRepositoryFacade interface {
	ParkReader
	ParkWriter
}
