// Package export renders financial projections as .xlsx workbooks.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the media type of every workbook produced by this package.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// builtin "#,##0.00"
const moneyNumFmt = 4

type workbook struct {
	file        *excelize.File
	headerStyle int
	moneyStyle  int
}

func newWorkbook(firstSheet string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", firstSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", firstSheet, err)
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}
	return &workbook{file: f, headerStyle: header, moneyStyle: money}, nil
}

func (w *workbook) addSheet(name string) error {
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", name, err)
	}
	return nil
}

// writeHeader writes bold column titles on the given row.
func (w *workbook) writeHeader(sheet string, row int, titles ...string) error {
	values := make([]interface{}, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(titles), row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(sheet, first, &values); err != nil {
		return fmt.Errorf("failed to write header of %q: %w", sheet, err)
	}
	return w.file.SetCellStyle(sheet, first, last, w.headerStyle)
}

// writeRow writes values from column A. Decimals become numeric cells with two places.
func (w *workbook) writeRow(sheet string, row int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if d, ok := v.(decimal.Decimal); ok {
			if err := w.file.SetCellFloat(sheet, cell, d.Round(2).InexactFloat64(), 2, 64); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
			if err := w.file.SetCellStyle(sheet, cell, cell, w.moneyStyle); err != nil {
				return err
			}
			continue
		}
		if err := w.file.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// bytes serialises the workbook and releases it.
func (w *workbook) bytes() ([]byte, error) {
	defer w.file.Close()
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func monthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
