package render

import (
	"fmt"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// BuildTemplate creates a blank weekly template workbook.
//
// The weekday headers sit above the data columns, the category labels are
// merged down the left edge, and only the data cells are editable once the
// sheet protection is applied.
func BuildTemplate(layout models.TemplateLayout) (*excelize.File, error) {
	f, err := newSheetFile(layout.SheetName)
	if err != nil {
		return nil, err
	}
	if err := writeTemplate(f, layout); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeTemplate(f *excelize.File, layout models.TemplateLayout) error {
	sheet := f.GetSheetName(0)

	styles, err := newTemplateStyles(f)
	if err != nil {
		return fmt.Errorf("create template styles: %w", err)
	}

	if err := padCells(f, sheet, layout.Extent(), templateRowHeight, templateColWidth); err != nil {
		return fmt.Errorf("pad template cells: %w", err)
	}

	if err := writeWeekdayHeaders(f, sheet, layout.HeaderRow, layout.FirstDataCol, styles.header); err != nil {
		return fmt.Errorf("write template headers: %w", err)
	}

	if err := styleRange(f, sheet, layout.BodyRange(), styles.label); err != nil {
		return fmt.Errorf("style template labels: %w", err)
	}

	for _, c := range models.Categories {
		first, last := layout.CategoryRows(c)
		top := cellName(layout.LabelCol, first)
		if err := f.SetCellStr(sheet, top, string(c)); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, top, cellName(layout.LabelCol, last)); err != nil {
			return fmt.Errorf("merge %s label: %w", c, err)
		}
	}

	for _, field := range models.TemplateFields {
		if err := f.SetCellStr(sheet, cellName(layout.SubLabelCol, layout.Row(field)), field.SubLabel()); err != nil {
			return err
		}
	}

	if err := styleRange(f, sheet, layout.DataRange(), styles.data); err != nil {
		return fmt.Errorf("style template data: %w", err)
	}

	if err := f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	}); err != nil {
		return fmt.Errorf("protect template sheet: %w", err)
	}
	return nil
}
