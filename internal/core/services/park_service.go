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

// parkService handles business logic for parks.
type parkService struct {
	BaseService
	parkRepo   portsrepo.ParkRepositoryFacade
	clientRepo portsrepo.ClientReader
}

// NewParkService creates a new ParkService.
func NewParkService(parkRepo portsrepo.ParkRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.ParkSvcFacade {
	return &parkService{parkRepo: parkRepo, clientRepo: clientRepo}
}

var _ portssvc.ParkSvcFacade = (*parkService)(nil)

// requireClient resolves the owning client of a park.
func (s *parkService) requireClient(ctx context.Context, rawCNPJ string) (*domain.Client, error) {
	cnpj, err := utils.NormalizeCNPJ(rawCNPJ)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("clientCnpj", "client "+cnpj+" does not exist")
		}
		s.LogError(ctx, err, "Failed to check client", slog.String("cnpj", cnpj))
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	return client, nil
}

func normalizeState(state *string) *string {
	st := trimOptional(state)
	if st == nil {
		return nil
	}
	up := strings.ToUpper(*st)
	return &up
}

// CreatePark registers a park for an existing client.
func (s *parkService) CreatePark(ctx context.Context, req dto.CreateParkRequest, session domain.Session) (*domain.Park, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	client, err := s.requireClient(ctx, req.ClientCNPJ)
	if err != nil {
		return nil, err
	}

	park := domain.Park{
		Name:        name,
		City:        trimOptional(req.City),
		State:       normalizeState(req.State),
		ClientCNPJ:  client.CNPJ,
		ClientName:  client.Name,
		AuditFields: domain.NewAuditFields(session.Actor(), s.now()),
	}

	id, err := s.parkRepo.SavePark(ctx, park)
	if err != nil {
		s.LogError(ctx, err, "Failed to save park", slog.String("name", name))
		return nil, fmt.Errorf("failed to create park: %w", err)
	}
	park.ParkID = id

	s.LogInfo(ctx, "Park created", slog.Int64("park_id", id), slog.String("client_cnpj", client.CNPJ))
	return &park, nil
}

// GetPark retrieves a park by id.
func (s *parkService) GetPark(ctx context.Context, parkID int64, session domain.Session) (*domain.Park, error) {
	park, err := s.parkRepo.FindParkByID(ctx, parkID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find park", slog.Int64("park_id", parkID))
		}
		return nil, err
	}
	return park, nil
}

// ListParks lists parks, optionally those of one client only.
func (s *parkService) ListParks(ctx context.Context, clientCNPJ *string, session domain.Session) ([]domain.Park, error) {
	var filter *string
	if clientCNPJ != nil && strings.TrimSpace(*clientCNPJ) != "" {
		cnpj, err := utils.NormalizeCNPJ(*clientCNPJ)
		if err != nil {
			return nil, err
		}
		filter = &cnpj
	}

	parks, err := s.parkRepo.ListParks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parks")
		return nil, fmt.Errorf("failed to list parks: %w", err)
	}
	if parks == nil {
		return []domain.Park{}, nil
	}
	return parks, nil
}

// UpdatePark changes the provided fields of a park.
func (s *parkService) UpdatePark(ctx context.Context, parkID int64, req dto.UpdateParkRequest, session domain.Session) (*domain.Park, error) {
	park, err := s.GetPark(ctx, parkID, session)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "cannot be blank")
		}
		park.Name = name
	}
	if req.City != nil {
		park.City = trimOptional(req.City)
	}
	if req.State != nil {
		park.State = normalizeState(req.State)
	}
	if req.ClientCNPJ != nil {
		client, err := s.requireClient(ctx, *req.ClientCNPJ)
		if err != nil {
			return nil, err
		}
		park.ClientCNPJ = client.CNPJ
		park.ClientName = client.Name
	}
	park.Touch(session.Actor(), s.now())

	if err := s.parkRepo.UpdatePark(ctx, *park); err != nil {
		s.LogError(ctx, err, "Failed to update park", slog.Int64("park_id", parkID))
		return nil, fmt.Errorf("failed to update park: %w", err)
	}

	s.LogInfo(ctx, "Park updated", slog.Int64("park_id", parkID))
	return park, nil
}

// DeletePark removes a park. Parks that still have periods are rejected with ErrConsistency.
func (s *parkService) DeletePark(ctx context.Context, parkID int64, session domain.Session) error {
	if err := s.parkRepo.DeletePark(ctx, parkID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConsistency) {
			s.LogError(ctx, err, "Failed to delete park", slog.Int64("park_id", parkID))
		}
		return err
	}
	s.LogInfo(ctx, "Park deleted", slog.Int64("park_id", parkID))
	return nil
}
