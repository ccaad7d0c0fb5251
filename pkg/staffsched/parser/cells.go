// Package parser reads filled-in templates back from workbooks.
package parser

import (
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads the cell values of area from a sheet.
// The result always has area.Rows() rows of area.Cols() values; cells the
// sheet does not define are returned as empty strings.
func ExtractGrid(f *excelize.File, sheetName string, area models.CellRange) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make([][]string, area.Rows())
	for r := range grid {
		grid[r] = make([]string, area.Cols())
		rowIdx := area.R1 + r - 1 // GetRows is 0-based
		if rowIdx >= len(rows) {
			continue
		}
		row := rows[rowIdx]
		for c := range grid[r] {
			colIdx := area.C1 + c - 1
			if colIdx < len(row) {
				grid[r][c] = row[colIdx]
			}
		}
	}

	return grid, nil
}

// activeSheet returns the name of the workbook's active sheet.
func activeSheet(f *excelize.File) string {
	return f.GetSheetName(f.GetActiveSheetIndex())
}
