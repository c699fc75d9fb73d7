package export

import (
	"fmt"

	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

const (
	rentalSummarySheet = "Summary"
	rentalAnnualSheet  = "Annual"
	rentalMonthlySheet = "Monthly"
	rentalPeriodsSheet = "Periods"
)

// CarRentalFilename names the download of a car rental summary.
func CarRentalFilename(s *domain.CarRentalSummary) string {
	if s.ParkID != nil {
		return fmt.Sprintf("car-rentals-park-%d.xlsx", *s.ParkID)
	}
	return "car-rentals-all-parks.xlsx"
}

// CarRentalSummary renders the headline totals plus annual, monthly and per-period sheets.
func CarRentalSummary(s *domain.CarRentalSummary) ([]byte, error) {
	w, err := newWorkbook(rentalSummarySheet)
	if err != nil {
		return nil, err
	}
	if err := writeCarRental(w, s); err != nil {
		w.file.Close()
		return nil, err
	}
	return w.bytes()
}

func writeCarRental(w *workbook, s *domain.CarRentalSummary) error {
	scope := "All parks"
	if s.ParkName != nil {
		scope = *s.ParkName
	}
	if err := w.writeRow(rentalSummarySheet, 1, "Scope", scope); err != nil {
		return err
	}
	if err := w.writeRow(rentalSummarySheet, 2, "Total all time", s.TotalAllTime); err != nil {
		return err
	}
	if err := w.writeRow(rentalSummarySheet, 3, "Current year", s.CurrentYearTotal); err != nil {
		return err
	}

	if err := w.addSheet(rentalAnnualSheet); err != nil {
		return err
	}
	if err := w.writeHeader(rentalAnnualSheet, 1, "Year", "Total"); err != nil {
		return err
	}
	for i, y := range s.AnnualTotals {
		if err := w.writeRow(rentalAnnualSheet, i+2, y.Year, y.Total); err != nil {
			return err
		}
	}

	if err := w.addSheet(rentalMonthlySheet); err != nil {
		return err
	}
	if err := w.writeHeader(rentalMonthlySheet, 1, "Month", "Total"); err != nil {
		return err
	}
	for i, m := range s.MonthlyTotals {
		if err := w.writeRow(rentalMonthlySheet, i+2, monthLabel(m.Year, m.Month), m.Total); err != nil {
			return err
		}
	}

	if err := w.addSheet(rentalPeriodsSheet); err != nil {
		return err
	}
	if err := w.writeHeader(rentalPeriodsSheet, 1, "Period", "Park", "Competency", "Value"); err != nil {
		return err
	}
	for i, p := range s.PeriodTotals {
		if err := w.writeRow(rentalPeriodsSheet, i+2, p.PeriodID, p.ParkName, monthLabel(p.Year, p.Month), p.Value); err != nil {
			return err
		}
	}
	return nil
}
