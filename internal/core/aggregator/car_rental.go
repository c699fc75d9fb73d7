package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CarRentalScope selects one park, or every park when ParkID is nil.
type CarRentalScope struct {
	ParkID *int64
}

// AllParks is the scope covering every park.
func AllParks() CarRentalScope { return CarRentalScope{} }

// SinglePark restricts a car rental summary to one park.
func SinglePark(id int64) CarRentalScope { return CarRentalScope{ParkID: &id} }

type yearMonth struct {
	year, month int
}

// ComputeCarRentalSummary groups the car rental charged in each period by month
// and by year. parks must hold every park referenced by periods; now fixes the
// current year.
func ComputeCarRentalSummary(periods []domain.FinancialPeriod, parks map[int64]domain.Park, scope CarRentalScope, now time.Time) (*domain.CarRentalSummary, error) {
	out := &domain.CarRentalSummary{
		TotalAllTime:     decimal.Zero,
		CurrentYearTotal: decimal.Zero,
		AnnualTotals:     []domain.CarRentalYearTotal{},
		MonthlyTotals:    []domain.CarRentalMonthTotal{},
		PeriodTotals:     make([]domain.CarRentalPeriodTotal, 0, len(periods)),
	}

	if scope.ParkID != nil {
		park, ok := parks[*scope.ParkID]
		if !ok {
			return nil, apperrors.NewConsistencyError("parkId", fmt.Sprintf("park %d not supplied", *scope.ParkID))
		}
		id, name := park.ParkID, park.Name
		out.ParkID = &id
		out.ParkName = &name
	}

	monthly := make(map[yearMonth]decimal.Decimal)
	annual := make(map[int]decimal.Decimal)

	for _, p := range periods {
		if scope.ParkID != nil && p.ParkID != *scope.ParkID {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID,
				apperrors.NewConsistencyError("parkId", fmt.Sprintf("belongs to park %d, not %d", p.ParkID, *scope.ParkID)))
		}
		park, ok := parks[p.ParkID]
		if !ok {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID,
				apperrors.NewConsistencyError("parkId", fmt.Sprintf("park %d not supplied", p.ParkID)))
		}
		if err := domain.ValidateCompetency(p.Year, p.Month); err != nil {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID, err)
		}
		if p.CarRentalValue.IsNegative() {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID, apperrors.NewValidationError("carRentalValue", "cannot be negative"))
		}

		value := roundMoney(p.CarRentalValue)
		out.PeriodTotals = append(out.PeriodTotals, domain.CarRentalPeriodTotal{
			PeriodID: p.PeriodID,
			ParkID:   p.ParkID,
			ParkName: park.Name,
			Year:     p.Year,
			Month:    p.Month,
			Value:    value,
		})

		key := yearMonth{p.Year, p.Month}
		monthly[key] = monthly[key].Add(value)
		annual[p.Year] = annual[p.Year].Add(value)
		out.TotalAllTime = out.TotalAllTime.Add(value)
		if p.Year == now.Year() {
			out.CurrentYearTotal = out.CurrentYearTotal.Add(value)
		}
	}

	sort.Slice(out.PeriodTotals, func(i, j int) bool {
		a, b := out.PeriodTotals[i], out.PeriodTotals[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.PeriodID > b.PeriodID
	})

	for k, total := range monthly {
		out.MonthlyTotals = append(out.MonthlyTotals, domain.CarRentalMonthTotal{Year: k.year, Month: k.month, Total: total})
	}
	sort.Slice(out.MonthlyTotals, func(i, j int) bool {
		a, b := out.MonthlyTotals[i], out.MonthlyTotals[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})

	for y, total := range annual {
		out.AnnualTotals = append(out.AnnualTotals, domain.CarRentalYearTotal{Year: y, Total: total})
	}
	sort.Slice(out.AnnualTotals, func(i, j int) bool { return out.AnnualTotals[i].Year > out.AnnualTotals[j].Year })

	return out, nil
}
