package services

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/jvamontagens/jva_backend/internal/dto"
)

// AuthSvcFacade defines administrator authentication
type AuthSvcFacade interface {
	// Login verifies the credentials of an active administrator and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// CurrentAdmin resolves the profile behind a session.
	CurrentAdmin(ctx context.Context, session domain.Session) (*dto.AdminProfileResponse, error)
}
