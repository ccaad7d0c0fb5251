package render

import (
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// setupPrint prints the sheet landscape on as few pages as fit its width,
// bounded to area.
func setupPrint(f *excelize.File, sheet string, area models.CellRange) error {
	orientation := "landscape"
	fitToHeight := 0
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		FitToHeight: &fitToHeight,
	}); err != nil {
		return err
	}

	fitToPage := true
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return err
	}

	margin := printMargin
	if err := f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Top:    &margin,
		Bottom: &margin,
		Left:   &margin,
		Right:  &margin,
	}); err != nil {
		return err
	}

	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: area.AbsRef(sheet),
		Scope:    sheet,
	})
}
