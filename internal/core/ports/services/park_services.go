package services

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
)

// ParkReaderSvc defines read operations for parks
type ParkReaderSvc interface {
	GetPark(ctx context.Context, parkID int64, session domain.Session) (*domain.Park, error)
	// ListParks lists every park, or only those of one client when clientCNPJ is set.
	ListParks(ctx context.Context, clientCNPJ *string, session domain.Session) ([]domain.Park, error)
}

// ParkWriterSvc defines write operations for parks
type ParkWriterSvc interface {
	CreatePark(ctx context.Context, req dto.CreateParkRequest, session domain.Session) (*domain.Park, error)
	UpdatePark(ctx context.Context, parkID int64, req dto.UpdateParkRequest, session domain.Session) (*domain.Park, error)
	DeletePark(ctx context.Context, parkID int64, session domain.Session) error
}

// ParkSvcFacade combines all park-related service interfaces
type ParkSvcFacade interface {
	ParkReaderSvc
	ParkWriterSvc
}
