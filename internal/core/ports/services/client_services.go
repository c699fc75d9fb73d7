package services

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
)

// ClientReaderSvc defines read operations for clients
type ClientReaderSvc interface {
	GetClient(ctx context.Context, cnpj string, session domain.Session) (*domain.Client, error)
	ListClients(ctx context.Context, session domain.Session) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for clients
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, session domain.Session) (*domain.Client, error)
	UpdateClient(ctx context.Context, cnpj string, req dto.UpdateClientRequest, session domain.Session) (*domain.Client, error)
	DeleteClient(ctx context.Context, cnpj string, session domain.Session) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
