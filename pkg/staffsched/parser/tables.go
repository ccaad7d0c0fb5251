package parser

import (
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds returns the bounding box of non-empty cells in a sheet.
// ok is false when the sheet holds no values.
func DataBounds(f *excelize.File, sheetName string) (bounds models.CellRange, ok bool, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.CellRange{}, false, err
	}
	bounds, ok = findDataBounds(rows, nil)
	return bounds, ok, nil
}

// findDataBounds finds the bounding box of non-empty cells (1-based).
// When skip is set, cells it reports are left out.
func findDataBounds(rows [][]string, skip func(col, row int) bool) (models.CellRange, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" || (skip != nil && skip(colIdx+1, rowIdx+1)) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}
