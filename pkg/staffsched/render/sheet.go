package render

import (
	"fmt"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// newSheetFile returns a workbook whose only sheet is named sheet.
func newSheetFile(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheet == "" {
		return f, nil
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	return f, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// padCells sets uniform row heights and column widths over area.
func padCells(f *excelize.File, sheet string, area models.CellRange, rowHeight, colWidth float64) error {
	for row := area.R1; row <= area.R2; row++ {
		if err := f.SetRowHeight(sheet, row, rowHeight); err != nil {
			return err
		}
	}
	first, err := excelize.ColumnNumberToName(area.C1)
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(area.C2)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, first, last, colWidth)
}

// writeWeekdayHeaders writes the weekday names Sunday first, starting at firstCol.
func writeWeekdayHeaders(f *excelize.File, sheet string, row, firstCol, style int) error {
	for _, w := range models.Weekdays {
		if err := f.SetCellStr(sheet, cellName(firstCol+w.Index(), row), w.String()); err != nil {
			return err
		}
	}
	lastCol := firstCol + len(models.Weekdays) - 1
	return f.SetCellStyle(sheet, cellName(firstCol, row), cellName(lastCol, row), style)
}

func styleRange(f *excelize.File, sheet string, area models.CellRange, style int) error {
	return f.SetCellStyle(sheet, cellName(area.C1, area.R1), cellName(area.C2, area.R2), style)
}
