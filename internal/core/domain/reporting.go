package domain

import "github.com/shopspring/decimal"

// LeaderEarning is what one leader is owed for the meters assigned to them in a period.
type LeaderEarning struct {
	LeaderID      int64           `json:"leaderId"`
	LeaderName    string          `json:"leaderName"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	RateUsed      decimal.Decimal `json:"rateUsed"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// FinancialSummary is the derived financial view of one period.
type FinancialSummary struct {
	PeriodID               int64           `json:"periodId"`
	TotalServices          int             `json:"totalServices"`
	TotalPayments          int             `json:"totalPayments"`
	TotalMeters            decimal.Decimal `json:"totalMeters"`
	GrossRevenue           decimal.Decimal `json:"grossRevenue"`
	HelpersCost            decimal.Decimal `json:"helpersCost"`
	HelpersEntitlement     decimal.Decimal `json:"helpersEntitlement"`
	LeaderCost             decimal.Decimal `json:"leaderCost"`
	LeaderEarnings         []LeaderEarning `json:"leaderEarnings"`
	LeaderPaymentsRecorded decimal.Decimal `json:"leaderPaymentsRecorded"`
	TaxValue               decimal.Decimal `json:"taxValue"`
	CarRentalValue         decimal.Decimal `json:"carRentalValue"`
	ClientPaymentsReceived decimal.Decimal `json:"clientPaymentsReceived"`
	ClientBalancePending   decimal.Decimal `json:"clientBalancePending"`
	ClientOverpayment      decimal.Decimal `json:"clientOverpayment"`
	AdditionalPayments     decimal.Decimal `json:"additionalPayments"`
	TotalCost              decimal.Decimal `json:"totalCost"`
	NetRevenue             decimal.Decimal `json:"netRevenue"`
	MarginPercent          decimal.Decimal `json:"marginPercent"`
}

// PeriodWithSummary pairs a period with its computed summary.
type PeriodWithSummary struct {
	Period  FinancialPeriod
	Summary FinancialSummary
}

// ParkPeriodSummary is one row of a park overview.
type ParkPeriodSummary struct {
	PeriodID      int64           `json:"periodId"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Status        PeriodStatus    `json:"status"`
	Inflow        decimal.Decimal `json:"inflow"`
	Outflow       decimal.Decimal `json:"outflow"`
	Balance       decimal.Decimal `json:"balance"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	TotalServices int             `json:"totalServices"`
	TotalPayments int             `json:"totalPayments"`
}

// ParkFinancialOverview aggregates every period of a park.
type ParkFinancialOverview struct {
	ParkID       int64               `json:"parkId"`
	ParkName     string              `json:"parkName"`
	TotalPeriods int                 `json:"totalPeriods"`
	TotalInflow  decimal.Decimal     `json:"totalInflow"`
	TotalOutflow decimal.Decimal     `json:"totalOutflow"`
	TotalBalance decimal.Decimal     `json:"totalBalance"`
	Periods      []ParkPeriodSummary `json:"periods"`
}

// CarRentalPeriodTotal is the car rental charged in a single period.
type CarRentalPeriodTotal struct {
	PeriodID int64           `json:"periodId"`
	ParkID   int64           `json:"parkId"`
	ParkName string          `json:"parkName"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Value    decimal.Decimal `json:"value"`
}

// CarRentalMonthTotal sums car rental across parks for one month.
type CarRentalMonthTotal struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CarRentalYearTotal sums car rental across parks for one year.
type CarRentalYearTotal struct {
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// CarRentalSummary reports car rental spend for one park or all parks.
// ParkID and ParkName are nil when the scope is all parks.
type CarRentalSummary struct {
	ParkID           *int64                 `json:"parkId,omitempty"`
	ParkName         *string                `json:"parkName,omitempty"`
	TotalAllTime     decimal.Decimal        `json:"totalAllTime"`
	CurrentYearTotal decimal.Decimal        `json:"currentYearTotal"`
	AnnualTotals     []CarRentalYearTotal   `json:"annualTotals"`
	MonthlyTotals    []CarRentalMonthTotal  `json:"monthlyTotals"`
	PeriodTotals     []CarRentalPeriodTotal `json:"periodTotals"`
}
