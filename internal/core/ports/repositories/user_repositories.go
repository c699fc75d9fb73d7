package repositories

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// UserReader defines read operations for login users
type UserReader interface {
	FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error)

	// FindUserByEmail matches the lower-cased email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
// Login users are written together with their employee, see EmployeeWriter.
type UserRepositoryFacade interface {
	UserReader
}
