package aggregator_test

import (
	"testing"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/aggregator"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func periodWithSummary(t *testing.T, id int64, year, month int, status domain.PeriodStatus, meters, helper string) domain.PeriodWithSummary {
	t.Helper()
	p := basePeriod()
	p.PeriodID = id
	p.Year = year
	p.Month = month
	p.Status = status

	s := service(id*10, meters, nil)
	s.PeriodID = id
	pay := payment(id*10, domain.CategoryEmployeeHelper, helper)
	pay.PeriodID = id

	sum, err := aggregator.ComputeSummary(p, []domain.ServiceEntry{s}, []domain.PaymentEntry{pay})
	require.NoError(t, err)
	return domain.PeriodWithSummary{Period: p, Summary: *sum}
}

func TestComputeParkOverview_TotalsMatchRows(t *testing.T) {
	park := domain.Park{ParkID: 3, Name: "Jump Center"}
	periods := []domain.PeriodWithSummary{
		periodWithSummary(t, 1, 2023, 11, domain.PeriodClosed, "10", "100"),
		periodWithSummary(t, 2, 2024, 2, domain.PeriodOpen, "20", "300"),
		periodWithSummary(t, 3, 2024, 1, domain.PeriodClosed, "5", "900"),
	}

	ov, err := aggregator.ComputeParkOverview(park, periods)

	require.NoError(t, err)
	assert.Equal(t, "Jump Center", ov.ParkName)
	assert.Equal(t, 3, ov.TotalPeriods)
	require.Len(t, ov.Periods, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{ov.Periods[0].PeriodID, ov.Periods[1].PeriodID, ov.Periods[2].PeriodID})

	in, out, bal := dec("0"), dec("0"), dec("0")
	for _, row := range ov.Periods {
		in = in.Add(row.Inflow)
		out = out.Add(row.Outflow)
		bal = bal.Add(row.Balance)
	}
	assert.True(t, ov.TotalInflow.Equal(in))
	assert.True(t, ov.TotalOutflow.Equal(out))
	assert.True(t, ov.TotalBalance.Equal(bal))
	assertDec(t, "4025", ov.TotalInflow, "totalInflow")
	assertDec(t, "1300", ov.TotalOutflow, "totalOutflow")
	assertDec(t, "2725", ov.TotalBalance, "totalBalance")

	row := ov.Periods[2]
	assertDec(t, "1150", row.Inflow, "inflow")
	assertDec(t, "100", row.Outflow, "outflow")
	assertDec(t, "1050", row.Balance, "balance")
	assert.Equal(t, domain.PeriodClosed, row.Status)
	assert.Equal(t, 1, row.TotalServices)
}

func TestComputeParkOverview_Empty(t *testing.T) {
	ov, err := aggregator.ComputeParkOverview(domain.Park{ParkID: 3}, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, ov.TotalPeriods)
	assert.Empty(t, ov.Periods)
	assert.True(t, ov.TotalInflow.IsZero())
}

func TestComputeParkOverview_RejectsForeignPeriod(t *testing.T) {
	ps := periodWithSummary(t, 1, 2024, 1, domain.PeriodOpen, "1", "1")
	ps.Period.ParkID = 99

	ov, err := aggregator.ComputeParkOverview(domain.Park{ParkID: 3}, []domain.PeriodWithSummary{ps})

	assert.Nil(t, ov)
	assert.ErrorIs(t, err, apperrors.ErrConsistency)
}

func TestComputeParkOverview_RejectsMismatchedSummary(t *testing.T) {
	ps := periodWithSummary(t, 1, 2024, 1, domain.PeriodOpen, "1", "1")
	ps.Summary.PeriodID = 2

	_, err := aggregator.ComputeParkOverview(domain.Park{ParkID: 3}, []domain.PeriodWithSummary{ps})

	assert.ErrorIs(t, err, apperrors.ErrConsistency)
}
