package services_test

import (
	"context"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/jva_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, cnpj string) error {
	return m.Called(ctx, cnpj).Error(0)
}

// --- Mock ParkRepository ---
type MockParkRepository struct {
	mock.Mock
}

func (m *MockParkRepository) FindParkByID(ctx context.Context, parkID int64) (*domain.Park, error) {
	args := m.Called(ctx, parkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Park), args.Error(1)
}

func (m *MockParkRepository) ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error) {
	args := m.Called(ctx, clientCNPJ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Park), args.Error(1)
}

func (m *MockParkRepository) SavePark(ctx context.Context, park domain.Park) (int64, error) {
	args := m.Called(ctx, park)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParkRepository) UpdatePark(ctx context.Context, park domain.Park) error {
	return m.Called(ctx, park).Error(0)
}

func (m *MockParkRepository) DeletePark(ctx context.Context, parkID int64) error {
	return m.Called(ctx, parkID).Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByCPF(ctx context.Context, cpf string) (*domain.Employee, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.EmployeeFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee, login portsrepo.LoginChange) (int64, error) {
	args := m.Called(ctx, employee, login)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee, login portsrepo.LoginChange) error {
	return m.Called(ctx, employee, login).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID int64) (*domain.FinancialPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context, parkID *int64) ([]domain.FinancialPeriod, error) {
	args := m.Called(ctx, parkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialPeriod), args.Error(1)
}

func (m *MockPeriodRepository) LoadPeriodSnapshot(ctx context.Context, periodID int64) (*domain.PeriodSnapshot, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSnapshot), args.Error(1)
}

func (m *MockPeriodRepository) CountServicesWithoutLeader(ctx context.Context, periodID int64) (int, error) {
	args := m.Called(ctx, periodID)
	return args.Int(0), args.Error(1)
}

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.FinancialPeriod) (int64, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriod(ctx context.Context, period domain.FinancialPeriod) error {
	return m.Called(ctx, period).Error(0)
}

func (m *MockPeriodRepository) DeletePeriod(ctx context.Context, periodID int64) error {
	return m.Called(ctx, periodID).Error(0)
}

// --- Mock ServiceEntryRepository ---
type MockServiceEntryRepository struct {
	mock.Mock
}

func (m *MockServiceEntryRepository) FindServiceByID(ctx context.Context, serviceID int64) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}

func (m *MockServiceEntryRepository) ListServicesByPeriod(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceEntry), args.Error(1)
}

func (m *MockServiceEntryRepository) SaveService(ctx context.Context, service domain.ServiceEntry) (int64, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceEntryRepository) UpdateService(ctx context.Context, service domain.ServiceEntry) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceEntryRepository) DeleteService(ctx context.Context, serviceID int64) error {
	return m.Called(ctx, serviceID).Error(0)
}

// --- Mock PaymentEntryRepository ---
type MockPaymentEntryRepository struct {
	mock.Mock
}

func (m *MockPaymentEntryRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentEntryRepository) ListPaymentsByPeriod(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentEntryRepository) SavePayment(ctx context.Context, payment domain.PaymentEntry) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentEntryRepository) UpdatePayment(ctx context.Context, payment domain.PaymentEntry) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentEntryRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	return m.Called(ctx, paymentID).Error(0)
}

var (
	_ portsrepo.ClientRepositoryFacade       = (*MockClientRepository)(nil)
	_ portsrepo.ParkRepositoryFacade         = (*MockParkRepository)(nil)
	_ portsrepo.EmployeeRepositoryFacade     = (*MockEmployeeRepository)(nil)
	_ portsrepo.UserRepositoryFacade         = (*MockUserRepository)(nil)
	_ portsrepo.PeriodRepositoryFacade       = (*MockPeriodRepository)(nil)
	_ portsrepo.ServiceEntryRepositoryFacade = (*MockServiceEntryRepository)(nil)
	_ portsrepo.PaymentEntryRepositoryFacade = (*MockPaymentEntryRepository)(nil)
)
