package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/core/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/jvamontagens/jva_backend/internal/platform/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

type FinancialServiceTestSuite struct {
	suite.Suite
	periods   *MockPeriodRepository
	entries   *MockServiceEntryRepository
	payments  *MockPaymentEntryRepository
	parks     *MockParkRepository
	employees *MockEmployeeRepository
	clients   *MockClientRepository
	metrics   *observability.Metrics
	service   portssvc.FinancialSvcFacade
}

func (suite *FinancialServiceTestSuite) SetupTest() {
	suite.periods = new(MockPeriodRepository)
	suite.entries = new(MockServiceEntryRepository)
	suite.payments = new(MockPaymentEntryRepository)
	suite.parks = new(MockParkRepository)
	suite.employees = new(MockEmployeeRepository)
	suite.clients = new(MockClientRepository)
	suite.metrics = observability.NewMetrics()
	suite.service = services.NewFinancialService(
		suite.periods,
		suite.entries,
		suite.payments,
		suite.parks,
		services.WithEmployeeReader(suite.employees),
		services.WithClientReader(suite.clients),
		services.WithMetrics(suite.metrics),
		services.WithOverviewConcurrency(2),
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func (suite *FinancialServiceTestSuite) openPeriod(id int64) *domain.FinancialPeriod {
	tax, err := domain.NewTaxRate(decimal.Zero)
	suite.Require().NoError(err)
	return &domain.FinancialPeriod{
		PeriodID:            id,
		ParkID:              1,
		Year:                2025,
		Month:               3,
		JVAPricePerMeter:    decimal.NewFromInt(10),
		LeaderPricePerMeter: decimal.Zero,
		TaxRate:             tax,
		CarRentalValue:      decimal.Zero,
		Status:              domain.PeriodOpen,
	}
}

func testPark() *domain.Park {
	return &domain.Park{ParkID: 1, Name: "Parque Norte", ClientCNPJ: "12345678000190", ClientName: "Shopping Center"}
}

func (suite *FinancialServiceTestSuite) assertField(err error, sentinel error, field string) {
	suite.Require().Error(err)
	suite.ErrorIs(err, sentinel)
	var fe *apperrors.FieldError
	suite.Require().ErrorAs(err, &fe)
	suite.Equal(field, fe.Field)
}

// --- Periods ---

func (suite *FinancialServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		ParkID:              1,
		Year:                2025,
		Month:               3,
		JVAPricePerMeter:    decimal.NewFromInt(10),
		LeaderPricePerMeter: decimal.NewFromInt(2),
		TaxRate:             decimal.RequireFromString("6.8"),
		CarRentalValue:      decimal.NewFromInt(450),
	}
	suite.parks.On("FindParkByID", ctx, int64(1)).Return(testPark(), nil).Once()
	suite.periods.On("SavePeriod", ctx, mock.MatchedBy(func(p domain.FinancialPeriod) bool {
		return p.Status == domain.PeriodOpen &&
			p.TaxRate.Fraction().Equal(decimal.RequireFromString("0.068")) &&
			p.CreatedAt.Equal(fixedNow) && p.CreatedBy == adminSession.UserCPF
	})).Return(int64(5), nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, adminSession)

	suite.Require().NoError(err)
	suite.Equal(int64(5), period.PeriodID)
	suite.periods.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestCreatePeriod_InvalidCompetency() {
	_, err := suite.service.CreatePeriod(context.Background(), dto.CreatePeriodRequest{ParkID: 1, Year: 2025, Month: 13}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "month")
	suite.parks.AssertNotCalled(suite.T(), "FindParkByID", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestCreatePeriod_UnknownPark() {
	ctx := context.Background()
	suite.parks.On("FindParkByID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePeriod(ctx, dto.CreatePeriodRequest{ParkID: 9, Year: 2025, Month: 3}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "parkId")
}

func (suite *FinancialServiceTestSuite) TestCreatePeriod_TaxRateOutOfRange() {
	ctx := context.Background()
	suite.parks.On("FindParkByID", ctx, int64(1)).Return(testPark(), nil).Once()

	_, err := suite.service.CreatePeriod(ctx, dto.CreatePeriodRequest{ParkID: 1, Year: 2025, Month: 3, TaxRate: decimal.NewFromInt(150)}, adminSession)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.periods.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestCreatePeriod_AdministratorMustBeActiveAdministrator() {
	ctx := context.Background()
	adminID := int64(4)
	suite.parks.On("FindParkByID", ctx, int64(1)).Return(testPark(), nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, adminID).
		Return(&domain.Employee{EmployeeID: adminID, Role: domain.RoleLeader, Active: true}, nil).Once()

	_, err := suite.service.CreatePeriod(ctx, dto.CreatePeriodRequest{ParkID: 1, Year: 2025, Month: 3, AdministratorID: &adminID}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "administratorId")
}

func (suite *FinancialServiceTestSuite) TestCreatePeriod_Duplicate() {
	ctx := context.Background()
	suite.parks.On("FindParkByID", ctx, int64(1)).Return(testPark(), nil).Once()
	suite.periods.On("SavePeriod", ctx, mock.AnythingOfType("domain.FinancialPeriod")).Return(int64(0), apperrors.ErrDuplicate).Once()

	period, err := suite.service.CreatePeriod(ctx, dto.CreatePeriodRequest{ParkID: 1, Year: 2025, Month: 3}, adminSession)

	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *FinancialServiceTestSuite) TestUpdatePeriod_ClosedCannotReopen() {
	ctx := context.Background()
	closed := suite.openPeriod(5)
	closed.Status = domain.PeriodClosed
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(closed, nil).Once()

	_, err := suite.service.UpdatePeriod(ctx, 5, dto.UpdatePeriodRequest{Status: strPtr("OPEN")}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "status")
	suite.periods.AssertNotCalled(suite.T(), "UpdatePeriod", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestUpdatePeriod_LeaderPriceNeedsLeaders() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.periods.On("CountServicesWithoutLeader", ctx, int64(5)).Return(2, nil).Once()

	_, err := suite.service.UpdatePeriod(ctx, 5, dto.UpdatePeriodRequest{LeaderPricePerMeter: decimalPtr("2")}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "leaderPricePerMeter")
	suite.periods.AssertNotCalled(suite.T(), "UpdatePeriod", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestUpdatePeriod_Close() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.periods.On("UpdatePeriod", ctx, mock.MatchedBy(func(p domain.FinancialPeriod) bool {
		return p.Status == domain.PeriodClosed && p.TaxRate.Percent().Equal(decimal.NewFromInt(5)) && p.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	period, err := suite.service.UpdatePeriod(ctx, 5, dto.UpdatePeriodRequest{
		Status:  strPtr("CLOSED"),
		TaxRate: decimalPtr("0.05"),
	}, adminSession)

	suite.Require().NoError(err)
	suite.True(period.IsClosed())
	suite.periods.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestDeletePeriod_NotFound() {
	ctx := context.Background()
	suite.periods.On("DeletePeriod", ctx, int64(5)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeletePeriod(ctx, 5, adminSession)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Service entries ---

func (suite *FinancialServiceTestSuite) TestAddService_DefaultsAndDerivedDays() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.entries.On("SaveService", ctx, mock.MatchedBy(func(s domain.ServiceEntry) bool {
		return s.PeriodID == 5 && s.ServiceType == domain.ServiceAssembly && s.TeamType == domain.DefaultTeamType &&
			s.Days != nil && *s.Days == 5 && s.UnitPrice == nil
	})).Return(int64(30), nil).Once()

	entry, err := suite.service.AddService(ctx, 5, dto.ServiceEntryRequest{
		Meters:    decimal.NewFromInt(120),
		StartDate: strPtr("2025-03-01"),
		EndDate:   strPtr("2025-03-05"),
	}, adminSession)

	suite.Require().NoError(err)
	suite.Equal(int64(30), entry.ServiceID)
	suite.entries.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestAddService_Rejections() {
	ctx := context.Background()
	leaderPeriod := suite.openPeriod(6)
	leaderPeriod.LeaderPricePerMeter = decimal.NewFromInt(2)
	closed := suite.openPeriod(7)
	closed.Status = domain.PeriodClosed
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil)
	suite.periods.On("FindPeriodByID", ctx, int64(6)).Return(leaderPeriod, nil)
	suite.periods.On("FindPeriodByID", ctx, int64(7)).Return(closed, nil)
	suite.employees.On("FindEmployeeByID", ctx, int64(40)).
		Return(&domain.Employee{EmployeeID: 40, Role: domain.RoleLeader, Active: false}, nil)

	inactive := int64(40)
	tests := []struct {
		name     string
		periodID int64
		req      dto.ServiceEntryRequest
		field    string
	}{
		{"closed period", 7, dto.ServiceEntryRequest{Meters: decimal.NewFromInt(10)}, "status"},
		{"zero meters", 5, dto.ServiceEntryRequest{Meters: decimal.Zero}, "meters"},
		{"leader required", 6, dto.ServiceEntryRequest{Meters: decimal.NewFromInt(10)}, "leaderId"},
		{"inactive leader", 5, dto.ServiceEntryRequest{Meters: decimal.NewFromInt(10), LeaderID: &inactive}, "leaderId"},
		{"end before start", 5, dto.ServiceEntryRequest{
			Meters:    decimal.NewFromInt(10),
			StartDate: strPtr("2025-03-05"),
			EndDate:   strPtr("2025-03-01"),
		}, "endDate"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.AddService(ctx, tt.periodID, tt.req, adminSession)
			suite.assertField(err, apperrors.ErrValidation, tt.field)
		})
	}
	suite.entries.AssertNotCalled(suite.T(), "SaveService", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestUpdateService_KeepsCreationAudit() {
	ctx := context.Background()
	created := domain.NewAuditFields("11111111111", fixedNow.AddDate(0, 0, -3))
	existing := &domain.ServiceEntry{ServiceID: 30, PeriodID: 5, Meters: decimal.NewFromInt(10), AuditFields: created}
	leaderID := int64(8)
	suite.entries.On("FindServiceByID", ctx, int64(30)).Return(existing, nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, leaderID).
		Return(&domain.Employee{EmployeeID: leaderID, Name: "Carlos", Role: domain.RoleLeader, Active: true}, nil).Once()
	suite.entries.On("UpdateService", ctx, mock.MatchedBy(func(s domain.ServiceEntry) bool {
		return s.ServiceID == 30 && s.CreatedBy == "11111111111" && s.LastUpdatedBy == adminSession.UserCPF &&
			s.Leader != nil && s.Leader.Name == "Carlos"
	})).Return(nil).Once()

	meters := decimal.NewFromInt(20)
	_, err := suite.service.UpdateService(ctx, 30, dto.UpdateServiceEntryRequest{Meters: &meters, LeaderID: &leaderID}, adminSession)

	suite.Require().NoError(err)
	suite.entries.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestUpdateService_MetersOnlyKeepsOtherFields() {
	ctx := context.Background()
	period := suite.openPeriod(5)
	period.LeaderPricePerMeter = decimal.NewFromInt(2)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	existing := &domain.ServiceEntry{
		ServiceID:   30,
		PeriodID:    5,
		ServiceType: domain.ServiceMaintenance,
		TeamType:    "NIGHT",
		Leader:      &domain.EmployeeRef{EmployeeID: 8, Name: "Carlos"},
		Meters:      decimal.NewFromInt(10),
		UnitPrice:   decimalPtr("12.5"),
		StartDate:   &start,
		EndDate:     &end,
		Days:        intPtr(4),
		Helpers: []domain.ServiceHelper{
			{HelperID: 1, ServiceID: 30, Employee: domain.EmployeeRef{EmployeeID: 12, Name: "Ana"}, DailyRateUsed: decimal.NewFromInt(150), DaysUsed: 4, TotalCost: decimal.NewFromInt(600)},
		},
	}
	suite.entries.On("FindServiceByID", ctx, int64(30)).Return(existing, nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(period, nil).Once()
	suite.entries.On("UpdateService", ctx, mock.MatchedBy(func(s domain.ServiceEntry) bool {
		return s.Meters.Equal(decimal.NewFromInt(25)) &&
			s.ServiceType == domain.ServiceMaintenance && s.TeamType == "NIGHT" &&
			s.Leader != nil && s.Leader.EmployeeID == 8 &&
			s.UnitPrice != nil && s.UnitPrice.Equal(decimal.RequireFromString("12.5")) &&
			s.StartDate.Equal(start) && s.EndDate.Equal(end) &&
			s.Days != nil && *s.Days == 4 &&
			len(s.Helpers) == 1 && s.Helpers[0].TotalCost.Equal(decimal.NewFromInt(600))
	})).Return(nil).Once()

	meters := decimal.NewFromInt(25)
	_, err := suite.service.UpdateService(ctx, 30, dto.UpdateServiceEntryRequest{Meters: &meters}, adminSession)

	suite.Require().NoError(err)
	suite.entries.AssertExpectations(suite.T())
	suite.employees.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestUpdateService_NewDatesDeriveDays() {
	ctx := context.Background()
	existing := &domain.ServiceEntry{ServiceID: 30, PeriodID: 5, Meters: decimal.NewFromInt(10), Days: intPtr(2)}
	suite.entries.On("FindServiceByID", ctx, int64(30)).Return(existing, nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.entries.On("UpdateService", ctx, mock.MatchedBy(func(s domain.ServiceEntry) bool {
		return s.Days != nil && *s.Days == 10
	})).Return(nil).Once()

	_, err := suite.service.UpdateService(ctx, 30, dto.UpdateServiceEntryRequest{
		StartDate: strPtr("2025-03-01"),
		EndDate:   strPtr("2025-03-10"),
	}, adminSession)

	suite.Require().NoError(err)
	suite.entries.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestUpdateService_ClosedPeriod() {
	ctx := context.Background()
	closed := suite.openPeriod(5)
	closed.Status = domain.PeriodClosed
	suite.entries.On("FindServiceByID", ctx, int64(30)).
		Return(&domain.ServiceEntry{ServiceID: 30, PeriodID: 5, Meters: decimal.NewFromInt(10)}, nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(closed, nil).Once()

	meters := decimal.NewFromInt(20)
	_, err := suite.service.UpdateService(ctx, 30, dto.UpdateServiceEntryRequest{Meters: &meters}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "status")
	suite.entries.AssertNotCalled(suite.T(), "UpdateService", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestAddService_HelperDefaults() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, int64(12)).
		Return(&domain.Employee{EmployeeID: 12, Name: "Ana", Role: domain.RoleAssembler, DailyRate: decimalPtr("150"), Active: true}, nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, int64(13)).
		Return(&domain.Employee{EmployeeID: 13, Name: "Bia", Role: domain.RoleAssembler, DailyRate: decimalPtr("140"), Active: true}, nil).Once()
	suite.entries.On("SaveService", ctx, mock.MatchedBy(func(s domain.ServiceEntry) bool {
		if len(s.Helpers) != 2 {
			return false
		}
		ana, bia := s.Helpers[0], s.Helpers[1]
		return ana.Employee.Name == "Ana" && ana.DailyRateUsed.Equal(decimal.NewFromInt(150)) &&
			ana.DaysUsed == 3 && ana.TotalCost.Equal(decimal.NewFromInt(450)) &&
			bia.DailyRateUsed.Equal(decimal.RequireFromString("133.33")) &&
			bia.DaysUsed == 2 && bia.TotalCost.Equal(decimal.RequireFromString("266.66"))
	})).Return(int64(31), nil).Once()

	entry, err := suite.service.AddService(ctx, 5, dto.ServiceEntryRequest{
		Meters:    decimal.NewFromInt(80),
		StartDate: strPtr("2025-03-01"),
		EndDate:   strPtr("2025-03-03"),
		Helpers: []dto.ServiceHelperRequest{
			{EmployeeID: 12},
			{EmployeeID: 13, DailyRateUsed: decimalPtr("133.333"), DaysUsed: intPtr(2)},
		},
	}, adminSession)

	suite.Require().NoError(err)
	suite.True(entry.HelpersCost().Equal(decimal.RequireFromString("716.66")))
	suite.entries.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestAddService_HelperMustBeActiveAssembler() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, int64(8)).
		Return(&domain.Employee{EmployeeID: 8, Name: "Carlos", Role: domain.RoleLeader, Active: true}, nil).Once()

	_, err := suite.service.AddService(ctx, 5, dto.ServiceEntryRequest{
		Meters:  decimal.NewFromInt(80),
		Helpers: []dto.ServiceHelperRequest{{EmployeeID: 8}},
	}, adminSession)

	suite.assertField(err, apperrors.ErrValidation, "helpers[0].employeeId")
	suite.entries.AssertNotCalled(suite.T(), "SaveService", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestAddService_RoundsToCents() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.entries.On("SaveService", ctx, mock.MatchedBy(func(s domain.ServiceEntry) bool {
		return s.Meters.Equal(decimal.RequireFromString("12.35")) &&
			s.UnitPrice != nil && s.UnitPrice.Equal(decimal.RequireFromString("9.99"))
	})).Return(int64(32), nil).Once()

	_, err := suite.service.AddService(ctx, 5, dto.ServiceEntryRequest{
		Meters:    decimal.RequireFromString("12.345"),
		UnitPrice: decimalPtr("9.994"),
	}, adminSession)

	suite.Require().NoError(err)
	suite.entries.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestDeleteService_ClosedPeriod() {
	ctx := context.Background()
	closed := suite.openPeriod(5)
	closed.Status = domain.PeriodClosed
	suite.entries.On("FindServiceByID", ctx, int64(30)).Return(&domain.ServiceEntry{ServiceID: 30, PeriodID: 5}, nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(closed, nil).Once()

	err := suite.service.DeleteService(ctx, 30, adminSession)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entries.AssertNotCalled(suite.T(), "DeleteService", mock.Anything, mock.Anything)
}

// --- Payment entries ---

func (suite *FinancialServiceTestSuite) TestAddPayment_ClientPaymentDefaults() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.parks.On("FindParkByID", ctx, int64(1)).Return(testPark(), nil).Once()
	suite.payments.On("SavePayment", ctx, mock.MatchedBy(func(p domain.PaymentEntry) bool {
		return p.Category == domain.CategoryClientPayment &&
			p.ClientCNPJ != nil && *p.ClientCNPJ == "12345678000190" &&
			p.PaymentDate.Equal(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	})).Return(int64(70), nil).Once()

	entry, err := suite.service.AddPayment(ctx, 5, dto.PaymentEntryRequest{
		Name:     "Shopping Center - parcela 1",
		Amount:   decimal.NewFromInt(500),
		Category: "CLIENT_PAYMENT",
	}, adminSession)

	suite.Require().NoError(err)
	suite.Equal(int64(70), entry.PaymentID)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestAddPayment_DefaultCategoryIsOther() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.payments.On("SavePayment", ctx, mock.MatchedBy(func(p domain.PaymentEntry) bool {
		return p.Category == domain.CategoryOther && p.ClientCNPJ == nil && p.Employee == nil
	})).Return(int64(71), nil).Once()

	_, err := suite.service.AddPayment(ctx, 5, dto.PaymentEntryRequest{
		Name:        "Combustivel",
		Amount:      decimal.NewFromInt(80),
		PaymentDate: strPtr("2025-03-02"),
	}, adminSession)

	suite.Require().NoError(err)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestAddPayment_Rejections() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil)
	suite.employees.On("FindEmployeeByID", ctx, int64(8)).
		Return(&domain.Employee{EmployeeID: 8, Role: domain.RoleLeader, Active: true}, nil)
	suite.clients.On("FindClientByCNPJ", ctx, "99999999000199").Return(nil, apperrors.ErrNotFound)

	leader := int64(8)
	tests := []struct {
		name  string
		req   dto.PaymentEntryRequest
		field string
	}{
		{"blank name", dto.PaymentEntryRequest{Name: " ", Amount: decimal.NewFromInt(1)}, "name"},
		{"zero amount", dto.PaymentEntryRequest{Name: "x", Amount: decimal.Zero}, "amount"},
		{"helper without employee", dto.PaymentEntryRequest{Name: "x", Amount: decimal.NewFromInt(1), Category: "EMPLOYEE_HELPER"}, "employeeId"},
		{"helper paid to a leader", dto.PaymentEntryRequest{Name: "x", Amount: decimal.NewFromInt(1), Category: "EMPLOYEE_HELPER", EmployeeID: &leader}, "employeeId"},
		{"employee on tax payment", dto.PaymentEntryRequest{Name: "x", Amount: decimal.NewFromInt(1), Category: "TAX", EmployeeID: &leader}, "employeeId"},
		{"unknown client", dto.PaymentEntryRequest{Name: "x", Amount: decimal.NewFromInt(1), Category: "CLIENT_PAYMENT", ClientCNPJ: strPtr("99999999000199")}, "clientCnpj"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.AddPayment(ctx, 5, tt.req, adminSession)
			suite.assertField(err, apperrors.ErrValidation, tt.field)
		})
	}
	suite.payments.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *FinancialServiceTestSuite) TestAddPayment_LeaderPayment() {
	ctx := context.Background()
	leader := int64(8)
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, leader).
		Return(&domain.Employee{EmployeeID: leader, Name: "Carlos", Role: domain.RoleLeader, Active: true}, nil).Once()
	suite.payments.On("SavePayment", ctx, mock.MatchedBy(func(p domain.PaymentEntry) bool {
		return p.Employee != nil && p.Employee.EmployeeID == leader && p.Employee.Name == "Carlos"
	})).Return(int64(72), nil).Once()

	_, err := suite.service.AddPayment(ctx, 5, dto.PaymentEntryRequest{
		Name:       "Carlos",
		Amount:     decimal.NewFromInt(240),
		Category:   "EMPLOYEE_LEADER",
		EmployeeID: &leader,
	}, adminSession)

	suite.Require().NoError(err)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestAddPayment_RoundsAmountToCents() {
	ctx := context.Background()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.payments.On("SavePayment", ctx, mock.MatchedBy(func(p domain.PaymentEntry) bool {
		return p.Amount.Equal(decimal.RequireFromString("100.01"))
	})).Return(int64(73), nil).Once()

	_, err := suite.service.AddPayment(ctx, 5, dto.PaymentEntryRequest{
		Name:   "Combustivel",
		Amount: decimal.RequireFromString("100.005"),
	}, adminSession)

	suite.Require().NoError(err)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) clientPayment() *domain.PaymentEntry {
	cnpj := "12345678000190"
	return &domain.PaymentEntry{
		PaymentID:   70,
		PeriodID:    5,
		PaymentDate: time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		Name:        "Shopping Center - parcela 1",
		Amount:      decimal.NewFromInt(500),
		Category:    domain.CategoryClientPayment,
		ClientCNPJ:  &cnpj,
		AuditFields: domain.NewAuditFields("11111111111", fixedNow.AddDate(0, 0, -10)),
	}
}

func (suite *FinancialServiceTestSuite) TestUpdatePayment_AmountOnlyKeepsOtherFields() {
	ctx := context.Background()
	suite.payments.On("FindPaymentByID", ctx, int64(70)).Return(suite.clientPayment(), nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.clients.On("FindClientByCNPJ", ctx, "12345678000190").Return(&domain.Client{CNPJ: "12345678000190"}, nil).Once()
	suite.payments.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.PaymentEntry) bool {
		return p.Amount.Equal(decimal.NewFromInt(650)) &&
			p.Category == domain.CategoryClientPayment &&
			p.Name == "Shopping Center - parcela 1" &&
			p.PaymentDate.Equal(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)) &&
			p.ClientCNPJ != nil && *p.ClientCNPJ == "12345678000190" &&
			p.CreatedBy == "11111111111" && p.LastUpdatedBy == adminSession.UserCPF
	})).Return(nil).Once()

	amount := decimal.NewFromInt(650)
	_, err := suite.service.UpdatePayment(ctx, 70, dto.UpdatePaymentEntryRequest{Amount: &amount}, adminSession)

	suite.Require().NoError(err)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestUpdatePayment_KeepsEmployeeOfEmployeePayment() {
	ctx := context.Background()
	existing := &domain.PaymentEntry{
		PaymentID:   71,
		PeriodID:    5,
		PaymentDate: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		Name:        "Carlos",
		Amount:      decimal.NewFromInt(240),
		Category:    domain.CategoryEmployeeLeader,
		Employee:    &domain.EmployeeRef{EmployeeID: 8, Name: "Carlos"},
	}
	suite.payments.On("FindPaymentByID", ctx, int64(71)).Return(existing, nil).Once()
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil).Once()
	suite.employees.On("FindEmployeeByID", ctx, int64(8)).
		Return(&domain.Employee{EmployeeID: 8, Name: "Carlos", Role: domain.RoleLeader, Active: true}, nil).Once()
	suite.payments.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.PaymentEntry) bool {
		return p.Notes != nil && *p.Notes == "segunda parcela" &&
			p.Employee != nil && p.Employee.EmployeeID == 8 &&
			p.Category == domain.CategoryEmployeeLeader
	})).Return(nil).Once()

	_, err := suite.service.UpdatePayment(ctx, 71, dto.UpdatePaymentEntryRequest{Notes: strPtr("segunda parcela")}, adminSession)

	suite.Require().NoError(err)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestUpdatePayment_Rejections() {
	ctx := context.Background()
	closed := suite.openPeriod(9)
	closed.Status = domain.PeriodClosed
	onClosed := suite.clientPayment()
	onClosed.PaymentID = 72
	onClosed.PeriodID = 9
	suite.payments.On("FindPaymentByID", ctx, int64(70)).Return(suite.clientPayment(), nil)
	suite.payments.On("FindPaymentByID", ctx, int64(72)).Return(onClosed, nil)
	suite.periods.On("FindPeriodByID", ctx, int64(5)).Return(suite.openPeriod(5), nil)
	suite.periods.On("FindPeriodByID", ctx, int64(9)).Return(closed, nil)
	suite.employees.On("FindEmployeeByID", ctx, int64(12)).
		Return(&domain.Employee{EmployeeID: 12, Name: "Ana", Role: domain.RoleAssembler, Active: true}, nil)

	assembler := int64(12)
	amount := decimal.NewFromInt(10)
	tests := []struct {
		name      string
		paymentID int64
		req       dto.UpdatePaymentEntryRequest
		field     string
	}{
		{"closed period", 72, dto.UpdatePaymentEntryRequest{Amount: &amount}, "status"},
		{"leader payment to an assembler", 70, dto.UpdatePaymentEntryRequest{Category: strPtr("EMPLOYEE_LEADER"), EmployeeID: &assembler}, "employeeId"},
		{"employee category without employee", 70, dto.UpdatePaymentEntryRequest{Category: strPtr("EMPLOYEE_HELPER")}, "employeeId"},
		{"employee on client payment", 70, dto.UpdatePaymentEntryRequest{EmployeeID: &assembler}, "employeeId"},
		{"blank name", 70, dto.UpdatePaymentEntryRequest{Name: strPtr("  ")}, "name"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.UpdatePayment(ctx, tt.paymentID, tt.req, adminSession)
			suite.assertField(err, apperrors.ErrValidation, tt.field)
		})
	}
	suite.payments.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

// --- Projections ---

func (suite *FinancialServiceTestSuite) TestSummary_ComputesFromSnapshot() {
	ctx := context.Background()
	period := suite.openPeriod(5)
	snap := &domain.PeriodSnapshot{
		Period: *period,
		Services: []domain.ServiceEntry{
			{ServiceID: 1, PeriodID: 5, ServiceType: domain.ServiceAssembly, Meters: decimal.NewFromInt(100)},
		},
		Payments: []domain.PaymentEntry{
			{PaymentID: 1, PeriodID: 5, Name: "Cliente", Amount: decimal.NewFromInt(400), Category: domain.CategoryClientPayment},
			{PaymentID: 2, PeriodID: 5, Name: "Ajudante", Amount: decimal.NewFromInt(150), Category: domain.CategoryEmployeeHelper},
		},
	}
	suite.periods.On("LoadPeriodSnapshot", ctx, int64(5)).Return(snap, nil).Once()

	summary, err := suite.service.Summary(ctx, 5, adminSession)

	suite.Require().NoError(err)
	suite.True(summary.GrossRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalCost.Equal(decimal.NewFromInt(150)))
	suite.True(summary.NetRevenue.Equal(decimal.NewFromInt(850)))
	suite.True(summary.ClientBalancePending.Equal(decimal.NewFromInt(600)))

	count, err := testutil.GatherAndCount(suite.metrics.Registry, "jva_aggregations_total")
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *FinancialServiceTestSuite) TestSummary_NotFound() {
	ctx := context.Background()
	suite.periods.On("LoadPeriodSnapshot", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.Summary(ctx, 5, adminSession)

	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FinancialServiceTestSuite) TestParkOverview_FansOutPerPeriod() {
	ctx := context.Background()
	parkID := int64(1)
	march := suite.openPeriod(5)
	april := suite.openPeriod(6)
	april.Month = 4
	suite.parks.On("FindParkByID", ctx, parkID).Return(testPark(), nil).Once()
	suite.periods.On("ListPeriods", ctx, &parkID).Return([]domain.FinancialPeriod{*april, *march}, nil).Once()
	suite.periods.On("LoadPeriodSnapshot", mock.Anything, int64(5)).Return(&domain.PeriodSnapshot{
		Period:   *march,
		Services: []domain.ServiceEntry{{ServiceID: 1, PeriodID: 5, ServiceType: domain.ServiceAssembly, Meters: decimal.NewFromInt(100)}},
	}, nil).Once()
	suite.periods.On("LoadPeriodSnapshot", mock.Anything, int64(6)).Return(&domain.PeriodSnapshot{
		Period:   *april,
		Services: []domain.ServiceEntry{{ServiceID: 2, PeriodID: 6, ServiceType: domain.ServiceAssembly, Meters: decimal.NewFromInt(50)}},
	}, nil).Once()

	overview, err := suite.service.ParkOverview(ctx, parkID, adminSession)

	suite.Require().NoError(err)
	suite.Equal(2, overview.TotalPeriods)
	suite.True(overview.TotalInflow.Equal(decimal.NewFromInt(1500)))
	suite.Require().Len(overview.Periods, 2)
	suite.Equal(4, overview.Periods[0].Month)
	suite.periods.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) TestParkOverview_SkipsPeriodDeletedMeanwhile() {
	ctx := context.Background()
	parkID := int64(1)
	march := suite.openPeriod(5)
	april := suite.openPeriod(6)
	april.Month = 4
	suite.parks.On("FindParkByID", ctx, parkID).Return(testPark(), nil).Once()
	suite.periods.On("ListPeriods", ctx, &parkID).Return([]domain.FinancialPeriod{*april, *march}, nil).Once()
	suite.periods.On("LoadPeriodSnapshot", mock.Anything, int64(5)).Return(&domain.PeriodSnapshot{
		Period:   *march,
		Services: []domain.ServiceEntry{{ServiceID: 1, PeriodID: 5, ServiceType: domain.ServiceAssembly, Meters: decimal.NewFromInt(100)}},
	}, nil).Once()
	suite.periods.On("LoadPeriodSnapshot", mock.Anything, int64(6)).
		Return(nil, apperrors.NewNotFoundError("period", int64(6))).Once()

	overview, err := suite.service.ParkOverview(ctx, parkID, adminSession)

	suite.Require().NoError(err)
	suite.Equal(1, overview.TotalPeriods)
	suite.True(overview.TotalInflow.Equal(decimal.NewFromInt(1000)))
	suite.Require().Len(overview.Periods, 1)
	suite.Equal(3, overview.Periods[0].Month)
}

func (suite *FinancialServiceTestSuite) TestParkOverview_SnapshotFailure() {
	ctx := context.Background()
	parkID := int64(1)
	suite.parks.On("FindParkByID", ctx, parkID).Return(testPark(), nil).Once()
	suite.periods.On("ListPeriods", ctx, &parkID).Return([]domain.FinancialPeriod{*suite.openPeriod(5)}, nil).Once()
	suite.periods.On("LoadPeriodSnapshot", mock.Anything, int64(5)).Return(nil, assert.AnError).Once()

	overview, err := suite.service.ParkOverview(ctx, parkID, adminSession)

	suite.Nil(overview)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *FinancialServiceTestSuite) TestCarRentalSummary_AllParks() {
	ctx := context.Background()
	march := suite.openPeriod(5)
	march.CarRentalValue = decimal.RequireFromString("450.25")
	other := suite.openPeriod(6)
	other.ParkID = 2
	other.Year = 2024
	other.CarRentalValue = decimal.NewFromInt(300)
	suite.periods.On("ListPeriods", ctx, (*int64)(nil)).Return([]domain.FinancialPeriod{*march, *other}, nil).Once()
	suite.parks.On("ListParks", ctx, (*string)(nil)).Return([]domain.Park{*testPark(), {ParkID: 2, Name: "Parque Sul"}}, nil).Once()

	summary, err := suite.service.CarRentalSummary(ctx, nil, adminSession)

	suite.Require().NoError(err)
	suite.Nil(summary.ParkID)
	suite.True(summary.TotalAllTime.Equal(decimal.RequireFromString("750.25")))
	suite.True(summary.CurrentYearTotal.Equal(decimal.RequireFromString("450.25")))
}

func TestFinancialServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinancialServiceTestSuite))
}
