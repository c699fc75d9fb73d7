package aggregator

import (
	"fmt"
	"sort"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeSummary derives the financial summary of a period from a consistent
// snapshot of its services and payments.
//
// Leader cost is the entitlement computed from meters; what was actually paid to
// leaders is reported apart in LeaderPaymentsRecorded and never enters TotalCost.
// Helpers work the other way round: HelpersCost is what was paid to them and
// HelpersEntitlement, the day-rate cost of the service crews, is informational.
func ComputeSummary(period domain.FinancialPeriod, services []domain.ServiceEntry, payments []domain.PaymentEntry) (*domain.FinancialSummary, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	totalMeters := decimal.Zero
	gross := decimal.Zero
	helperEntitlement := decimal.Zero
	leaders := make(map[int64]*domain.LeaderEarning)

	for _, s := range services {
		if err := validateService(period, s); err != nil {
			return nil, err
		}
		totalMeters = totalMeters.Add(s.Meters)
		gross = gross.Add(roundMoney(s.Meters.Mul(s.EffectiveUnitPrice(period))))
		for _, h := range s.Helpers {
			helperEntitlement = helperEntitlement.Add(roundMoney(h.TotalCost))
		}

		if s.Leader == nil {
			continue
		}
		le, ok := leaders[s.Leader.EmployeeID]
		if !ok {
			le = &domain.LeaderEarning{
				LeaderID:    s.Leader.EmployeeID,
				LeaderName:  s.Leader.Name,
				TotalMeters: decimal.Zero,
				RateUsed:    period.LeaderPricePerMeter,
			}
			leaders[s.Leader.EmployeeID] = le
		}
		le.TotalMeters = le.TotalMeters.Add(s.Meters)
	}

	earnings := make([]domain.LeaderEarning, 0, len(leaders))
	leaderCost := decimal.Zero
	for _, le := range leaders {
		le.TotalEarnings = roundMoney(le.TotalMeters.Mul(le.RateUsed))
		leaderCost = leaderCost.Add(le.TotalEarnings)
		earnings = append(earnings, *le)
	}
	sort.Slice(earnings, func(i, j int) bool { return earnings[i].LeaderID < earnings[j].LeaderID })

	var helpers, leaderPaid, clientPaid, additional decimal.Decimal
	for _, p := range payments {
		if err := validatePayment(period, p); err != nil {
			return nil, err
		}
		amount := roundMoney(p.Amount)
		switch p.Category {
		case domain.CategoryEmployeeHelper:
			helpers = helpers.Add(amount)
		case domain.CategoryEmployeeLeader:
			leaderPaid = leaderPaid.Add(amount)
		case domain.CategoryClientPayment:
			clientPaid = clientPaid.Add(amount)
		case domain.CategoryTax, domain.CategoryCarRental, domain.CategoryOther:
			additional = additional.Add(amount)
		default:
			return nil, fmt.Errorf("payment %d: unhandled category %q", p.PaymentID, p.Category)
		}
	}

	taxValue := roundMoney(gross.Mul(period.TaxRate.Fraction()))
	carRental := roundMoney(period.CarRentalValue)
	totalCost := sumMoney(helpers, leaderCost, taxValue, carRental, additional)
	net := gross.Sub(totalCost)

	return &domain.FinancialSummary{
		PeriodID:               period.PeriodID,
		TotalServices:          len(services),
		TotalPayments:          len(payments),
		TotalMeters:            totalMeters,
		GrossRevenue:           gross,
		HelpersCost:            helpers,
		HelpersEntitlement:     helperEntitlement,
		LeaderCost:             leaderCost,
		LeaderEarnings:         earnings,
		LeaderPaymentsRecorded: leaderPaid,
		TaxValue:               taxValue,
		CarRentalValue:         carRental,
		ClientPaymentsReceived: clientPaid,
		ClientBalancePending:   clampZero(gross.Sub(clientPaid)),
		ClientOverpayment:      clampZero(clientPaid.Sub(gross)),
		AdditionalPayments:     additional,
		TotalCost:              totalCost,
		NetRevenue:             net,
		MarginPercent:          margin(net, gross),
	}, nil
}
