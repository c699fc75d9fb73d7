package repositories

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByCNPJ retrieves a client by its normalised CNPJ.
	FindClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error)

	// ListClients retrieves all clients ordered by name.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, cnpj string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
