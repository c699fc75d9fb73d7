package handlers_test

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClient(ctx context.Context, cnpj string, session domain.Session) (*domain.Client, error) {
	args := m.Called(ctx, cnpj, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, session domain.Session) ([]domain.Client, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, session domain.Session) (*domain.Client, error) {
	args := m.Called(ctx, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, cnpj string, req dto.UpdateClientRequest, session domain.Session) (*domain.Client, error) {
	args := m.Called(ctx, cnpj, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, cnpj string, session domain.Session) error {
	return m.Called(ctx, cnpj, session).Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock ParkService ---
type MockParkService struct {
	mock.Mock
}

func (m *MockParkService) GetPark(ctx context.Context, parkID int64, session domain.Session) (*domain.Park, error) {
	args := m.Called(ctx, parkID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Park), args.Error(1)
}
func (m *MockParkService) ListParks(ctx context.Context, clientCNPJ *string, session domain.Session) ([]domain.Park, error) {
	args := m.Called(ctx, clientCNPJ, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Park), args.Error(1)
}
func (m *MockParkService) CreatePark(ctx context.Context, req dto.CreateParkRequest, session domain.Session) (*domain.Park, error) {
	args := m.Called(ctx, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Park), args.Error(1)
}
func (m *MockParkService) UpdatePark(ctx context.Context, parkID int64, req dto.UpdateParkRequest, session domain.Session) (*domain.Park, error) {
	args := m.Called(ctx, parkID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Park), args.Error(1)
}
func (m *MockParkService) DeletePark(ctx context.Context, parkID int64, session domain.Session) error {
	return m.Called(ctx, parkID, session).Error(0)
}

var _ portssvc.ParkSvcFacade = (*MockParkService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID int64, session domain.Session) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, role *domain.JobRole, onlyActive bool, session domain.Session) ([]domain.Employee, error) {
	args := m.Called(ctx, role, onlyActive, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, session domain.Session) (*domain.Employee, error) {
	args := m.Called(ctx, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest, session domain.Session) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock FinancialService ---
type MockFinancialService struct {
	mock.Mock
}

func (m *MockFinancialService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, session domain.Session) (*domain.FinancialPeriod, error) {
	args := m.Called(ctx, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialPeriod), args.Error(1)
}
func (m *MockFinancialService) GetPeriod(ctx context.Context, periodID int64, session domain.Session) (*domain.FinancialPeriod, error) {
	args := m.Called(ctx, periodID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialPeriod), args.Error(1)
}
func (m *MockFinancialService) ListPeriods(ctx context.Context, parkID *int64, session domain.Session) ([]domain.FinancialPeriod, error) {
	args := m.Called(ctx, parkID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialPeriod), args.Error(1)
}
func (m *MockFinancialService) UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest, session domain.Session) (*domain.FinancialPeriod, error) {
	args := m.Called(ctx, periodID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialPeriod), args.Error(1)
}
func (m *MockFinancialService) DeletePeriod(ctx context.Context, periodID int64, session domain.Session) error {
	return m.Called(ctx, periodID, session).Error(0)
}
func (m *MockFinancialService) AddService(ctx context.Context, periodID int64, req dto.ServiceEntryRequest, session domain.Session) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, periodID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}
func (m *MockFinancialService) UpdateService(ctx context.Context, serviceID int64, req dto.UpdateServiceEntryRequest, session domain.Session) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, serviceID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}
func (m *MockFinancialService) DeleteService(ctx context.Context, serviceID int64, session domain.Session) error {
	return m.Called(ctx, serviceID, session).Error(0)
}
func (m *MockFinancialService) ListServices(ctx context.Context, periodID int64, session domain.Session) ([]domain.ServiceEntry, error) {
	args := m.Called(ctx, periodID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceEntry), args.Error(1)
}
func (m *MockFinancialService) AddPayment(ctx context.Context, periodID int64, req dto.PaymentEntryRequest, session domain.Session) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, periodID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}
func (m *MockFinancialService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentEntryRequest, session domain.Session) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, paymentID, req, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}
func (m *MockFinancialService) DeletePayment(ctx context.Context, paymentID int64, session domain.Session) error {
	return m.Called(ctx, paymentID, session).Error(0)
}
func (m *MockFinancialService) ListPayments(ctx context.Context, periodID int64, session domain.Session) ([]domain.PaymentEntry, error) {
	args := m.Called(ctx, periodID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentEntry), args.Error(1)
}
func (m *MockFinancialService) Summary(ctx context.Context, periodID int64, session domain.Session) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, periodID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}
func (m *MockFinancialService) ParkOverview(ctx context.Context, parkID int64, session domain.Session) (*domain.ParkFinancialOverview, error) {
	args := m.Called(ctx, parkID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParkFinancialOverview), args.Error(1)
}
func (m *MockFinancialService) CarRentalSummary(ctx context.Context, parkID *int64, session domain.Session) (*domain.CarRentalSummary, error) {
	args := m.Called(ctx, parkID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarRentalSummary), args.Error(1)
}

var _ portssvc.FinancialSvcFacade = (*MockFinancialService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockAuthService) CurrentAdmin(ctx context.Context, session domain.Session) (*dto.AdminProfileResponse, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdminProfileResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
