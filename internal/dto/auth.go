package dto

import (
	"time"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// LoginRequest defines the credentials accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminProfileResponse describes the administrator behind a session.
type AdminProfileResponse struct {
	CPF        string         `json:"cpf"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	EmployeeID int64          `json:"employeeId"`
	Role       domain.JobRole `json:"role"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken string               `json:"accessToken"`
	TokenType   string               `json:"tokenType"`
	ExpiresAt   time.Time            `json:"expiresAt"`
	Admin       AdminProfileResponse `json:"admin"`
}
