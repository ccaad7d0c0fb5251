package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// TemplateFormatError reports a template whose layout does not match the
// expected header row and data region. Cell names the offending cell, or the
// range spanning several of them.
type TemplateFormatError struct {
	Sheet  string
	Cell   string
	Reason string
}

func (e *TemplateFormatError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("template format error in sheet %q: %s", e.Sheet, e.Reason)
	}
	return fmt.Sprintf("template format error in sheet %q at %s: %s", e.Sheet, e.Cell, e.Reason)
}

func formatErr(sheet string, col, row int, format string, args ...any) *TemplateFormatError {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return &TemplateFormatError{Sheet: sheet, Cell: cell, Reason: fmt.Sprintf(format, args...)}
}

// TemplateSheet picks the sheet to read: the layout's sheet when present,
// otherwise the active sheet.
func TemplateSheet(f *excelize.File, layout models.TemplateLayout) string {
	if layout.SheetName != "" {
		if idx, err := f.GetSheetIndex(layout.SheetName); err == nil && idx >= 0 {
			return layout.SheetName
		}
	}
	return activeSheet(f)
}

// ReadTemplate parses a filled-in template into a weekly shift map.
// The header row must name the weekdays in Sunday-first order and no value
// may lie outside the template extent.
func ReadTemplate(f *excelize.File, layout models.TemplateLayout) (models.WeeklyShiftMap, error) {
	sheet := TemplateSheet(f, layout)
	if sheet == "" {
		return models.WeeklyShiftMap{}, &TemplateFormatError{Reason: "workbook has no sheets"}
	}

	if err := checkExtent(f, sheet, layout); err != nil {
		return models.WeeklyShiftMap{}, err
	}

	headers, err := ExtractGrid(f, sheet, layout.HeaderRange())
	if err != nil {
		return models.WeeklyShiftMap{}, fmt.Errorf("read template headers: %w", err)
	}
	for _, w := range models.Weekdays {
		got := headers[0][w.Index()]
		if parsed, ok := models.ParseWeekday(got); !ok || parsed != w {
			return models.WeeklyShiftMap{}, formatErr(sheet, layout.Col(w), layout.HeaderRow,
				"expected header %q, found %q", w.String(), got)
		}
	}

	data, err := ExtractGrid(f, sheet, layout.DataRange())
	if err != nil {
		return models.WeeklyShiftMap{}, fmt.Errorf("read template data: %w", err)
	}

	entries := make([]models.WeeklyShiftEntry, 0, len(models.Weekdays))
	for _, w := range models.Weekdays {
		entry := models.WeeklyShiftEntry{Weekday: w}
		for i, field := range models.TemplateFields {
			field.Set(&entry, strings.TrimSpace(data[i][w.Index()]))
		}
		entries = append(entries, entry)
	}

	return models.NewWeeklyShiftMap(entries)
}

// checkExtent rejects an empty sheet and any value outside the template
// extent. The error names the stray cell, or the range covering all of them.
func checkExtent(f *excelize.File, sheet string, layout models.TemplateLayout) error {
	bounds, ok, err := DataBounds(f, sheet)
	if err != nil {
		return fmt.Errorf("read template sheet %q: %w", sheet, err)
	}
	if !ok {
		return &TemplateFormatError{Sheet: sheet, Reason: "sheet is empty"}
	}

	extent := layout.Extent()
	if extent.ContainsRange(bounds) {
		return nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read template sheet %q: %w", sheet, err)
	}
	stray, _ := findDataBounds(rows, extent.Contains)
	return &TemplateFormatError{
		Sheet:  sheet,
		Cell:   stray.Ref(),
		Reason: fmt.Sprintf("value outside template region %s", extent.Ref()),
	}
}
