package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/utils"
)

// clientService handles business logic for clients.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: repo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a client under its normalised CNPJ.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, session domain.Session) (*domain.Client, error) {
	cnpj, err := utils.NormalizeCNPJ(req.CNPJ)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	client := domain.Client{
		CNPJ:         cnpj,
		Name:         name,
		ContactPhone: trimOptional(req.ContactPhone),
		Email:        lowerOptional(req.Email),
		AuditFields:  domain.NewAuditFields(session.Actor(), s.now()),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save client", slog.String("cnpj", cnpj))
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("cnpj", cnpj))
	return &client, nil
}

// GetClient retrieves a client by CNPJ in any punctuation.
func (s *clientService) GetClient(ctx context.Context, cnpj string, session domain.Session) (*domain.Client, error) {
	normalized, err := utils.NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByCNPJ(ctx, normalized)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("cnpj", normalized))
		}
		return nil, err
	}
	return client, nil
}

// ListClients lists every client.
func (s *clientService) ListClients(ctx context.Context, session domain.Session) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// UpdateClient changes the provided fields of a client.
func (s *clientService) UpdateClient(ctx context.Context, cnpj string, req dto.UpdateClientRequest, session domain.Session) (*domain.Client, error) {
	client, err := s.GetClient(ctx, cnpj, session)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "cannot be blank")
		}
		client.Name = name
	}
	if req.ContactPhone != nil {
		client.ContactPhone = trimOptional(req.ContactPhone)
	}
	if req.Email != nil {
		client.Email = lowerOptional(req.Email)
	}
	client.Touch(session.Actor(), s.now())

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("cnpj", client.CNPJ))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.LogInfo(ctx, "Client updated", slog.String("cnpj", client.CNPJ))
	return client, nil
}

// DeleteClient removes a client. Clients still referenced by parks or payments
// are rejected by the repository with ErrConsistency.
func (s *clientService) DeleteClient(ctx context.Context, cnpj string, session domain.Session) error {
	normalized, err := utils.NormalizeCNPJ(cnpj)
	if err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, normalized); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConsistency) {
			s.LogError(ctx, err, "Failed to delete client", slog.String("cnpj", normalized))
		}
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("cnpj", normalized))
	return nil
}
