package aggregator

import (
	"fmt"
	"sort"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeParkOverview rolls the summaries of a park's periods into one overview.
// Rows are ordered newest competency first.
func ComputeParkOverview(park domain.Park, periods []domain.PeriodWithSummary) (*domain.ParkFinancialOverview, error) {
	rows := make([]domain.ParkPeriodSummary, 0, len(periods))
	var inflow, outflow, balance decimal.Decimal

	for _, ps := range periods {
		p := ps.Period
		if p.ParkID != park.ParkID {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID,
				apperrors.NewConsistencyError("parkId", fmt.Sprintf("belongs to park %d, not %d", p.ParkID, park.ParkID)))
		}
		if ps.Summary.PeriodID != p.PeriodID {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID,
				apperrors.NewConsistencyError("summary", fmt.Sprintf("computed for period %d", ps.Summary.PeriodID)))
		}
		if !p.Status.IsValid() {
			return nil, fmt.Errorf("period %d: %w", p.PeriodID, apperrors.NewValidationError("status", "must be OPEN or CLOSED"))
		}

		row := domain.ParkPeriodSummary{
			PeriodID:      p.PeriodID,
			Year:          p.Year,
			Month:         p.Month,
			Status:        p.Status,
			Inflow:        ps.Summary.GrossRevenue,
			Outflow:       ps.Summary.TotalCost,
			Balance:       ps.Summary.NetRevenue,
			MarginPercent: ps.Summary.MarginPercent,
			TotalServices: ps.Summary.TotalServices,
			TotalPayments: ps.Summary.TotalPayments,
		}
		inflow = inflow.Add(row.Inflow)
		outflow = outflow.Add(row.Outflow)
		balance = balance.Add(row.Balance)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year > rows[j].Year
		}
		if rows[i].Month != rows[j].Month {
			return rows[i].Month > rows[j].Month
		}
		return rows[i].PeriodID > rows[j].PeriodID
	})

	return &domain.ParkFinancialOverview{
		ParkID:       park.ParkID,
		ParkName:     park.Name,
		TotalPeriods: len(rows),
		TotalInflow:  inflow,
		TotalOutflow: outflow,
		TotalBalance: balance,
		Periods:      rows,
	}, nil
}
