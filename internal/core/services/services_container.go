package services

import (
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/platform/config"
	"github.com/jvamontagens/jva_backend/internal/platform/observability"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, metrics *observability.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Park = NewParkService(repos.ParkRepo, repos.ClientRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)

	container.Financial = NewFinancialService(
		repos.PeriodRepo,
		repos.ServiceRepo,
		repos.PaymentRepo,
		repos.ParkRepo,
		WithEmployeeReader(repos.EmployeeRepo),
		WithClientReader(repos.ClientRepo),
		WithMetrics(metrics),
		WithOverviewConcurrency(cfg.OverviewConcurrency),
	)

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.EmployeeRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ClientSvcFacade    = (*clientService)(nil)
	_ portssvc.ParkSvcFacade      = (*parkService)(nil)
	_ portssvc.EmployeeSvcFacade  = (*employeeService)(nil)
	_ portssvc.FinancialSvcFacade = (*financialService)(nil)
	_ portssvc.AuthSvcFacade      = (*authService)(nil)
)
