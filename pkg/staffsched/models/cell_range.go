package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange represents inclusive cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Rows returns the number of rows covered.
func (r CellRange) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns covered.
func (r CellRange) Cols() int { return r.C2 - r.C1 + 1 }

// Contains reports whether the 1-based cell (col, row) lies inside r.
func (r CellRange) Contains(col, row int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// ContainsRange reports whether other lies entirely inside r.
func (r CellRange) ContainsRange(other CellRange) bool {
	return r.Contains(other.C1, other.R1) && r.Contains(other.C2, other.R2)
}

// Ref formats the range in A1 notation, e.g. "A1:G25". A single cell
// formats as just its name.
func (r CellRange) Ref() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return start
	}
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// AbsRef formats the range as an absolute sheet reference, e.g. 'Schedule'!$A$1:$G$25.
func (r CellRange) AbsRef(sheet string) string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2, true)
	quoted := strings.ReplaceAll(sheet, "'", "''")
	return fmt.Sprintf("'%s'!%s:%s", quoted, start, end)
}
