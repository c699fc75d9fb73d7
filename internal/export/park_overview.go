package export

import (
	"fmt"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

const overviewSheet = "Overview"

// ParkOverviewFilename names the download of a park overview.
func ParkOverviewFilename(o *domain.ParkFinancialOverview) string {
	return fmt.Sprintf("park-%d-overview.xlsx", o.ParkID)
}

// ParkOverview renders one row per period followed by a totals row.
func ParkOverview(o *domain.ParkFinancialOverview) ([]byte, error) {
	w, err := newWorkbook(overviewSheet)
	if err != nil {
		return nil, err
	}

	if err := w.writeRow(overviewSheet, 1, "Park", o.ParkName); err != nil {
		w.file.Close()
		return nil, err
	}
	if err := w.writeHeader(overviewSheet, 3,
		"Period", "Competency", "Status", "Inflow", "Outflow", "Balance", "Margin %", "Services", "Payments",
	); err != nil {
		w.file.Close()
		return nil, err
	}

	row := 4
	for _, p := range o.Periods {
		err := w.writeRow(overviewSheet, row,
			p.PeriodID,
			monthLabel(p.Year, p.Month),
			string(p.Status),
			p.Inflow,
			p.Outflow,
			p.Balance,
			p.MarginPercent,
			p.TotalServices,
			p.TotalPayments,
		)
		if err != nil {
			w.file.Close()
			return nil, err
		}
		row++
	}

	if err := w.writeRow(overviewSheet, row, "Total", o.TotalPeriods, "", o.TotalInflow, o.TotalOutflow, o.TotalBalance); err != nil {
		w.file.Close()
		return nil, err
	}
	return w.bytes()
}
