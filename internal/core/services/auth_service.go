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
	"github.com/jvamontagens/jva_backend/internal/platform/config"
	"github.com/jvamontagens/jva_backend/internal/utils"
)

// authService signs administrators in. It needs the configuration for the
// token secret and expiry, and the employee records that grant the role.
type authService struct {
	BaseService
	cfg          *config.Config
	userRepo     portsrepo.UserReader
	employeeRepo portsrepo.EmployeeReader
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader, employeeRepo portsrepo.EmployeeReader) portssvc.AuthSvcFacade {
	return &authService{
		cfg:          cfg,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// errInvalidCredentials hides which part of the login failed.
var errInvalidCredentials = fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)

// Login checks the credentials and issues an access token for an active administrator.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown email")
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("cpf", user.CPF))
		return nil, errInvalidCredentials
	}

	emp, err := s.adminFor(ctx, user.CPF)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateJWT(user.CPF, emp.EmployeeID, string(emp.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("cpf", user.CPF))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Administrator logged in", slog.String("cpf", user.CPF), slog.Int64("employee_id", emp.EmployeeID))
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Admin:       adminProfile(user, emp),
	}, nil
}

// CurrentAdmin resolves the profile behind a session. The employee must still be
// an active administrator.
func (s *authService) CurrentAdmin(ctx context.Context, session domain.Session) (*dto.AdminProfileResponse, error) {
	if session.IsZero() {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.userRepo.FindUserByCPF(ctx, session.UserCPF)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("login user no longer exists: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to find user", slog.String("cpf", session.UserCPF))
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	emp, err := s.adminFor(ctx, user.CPF)
	if err != nil {
		return nil, err
	}
	profile := adminProfile(user, emp)
	return &profile, nil
}

// adminFor returns the active administrator linked to a login user.
func (s *authService) adminFor(ctx context.Context, cpf string) (*domain.Employee, error) {
	emp, err := s.employeeRepo.FindEmployeeByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login user has no employee record", slog.String("cpf", cpf))
			return nil, fmt.Errorf("no employee linked to this login: %w", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to find employee by CPF", slog.String("cpf", cpf))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !emp.IsActiveAs(domain.RoleAdministrator) {
		s.LogInfo(ctx, "Login refused for non administrator", slog.Int64("employee_id", emp.EmployeeID))
		return nil, fmt.Errorf("only active administrators may sign in: %w", apperrors.ErrForbidden)
	}
	return emp, nil
}

func adminProfile(user *domain.User, emp *domain.Employee) dto.AdminProfileResponse {
	return dto.AdminProfileResponse{
		CPF:        user.CPF,
		Name:       user.Name,
		Email:      user.Email,
		EmployeeID: emp.EmployeeID,
		Role:       emp.Role,
	}
}
