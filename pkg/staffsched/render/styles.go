// Package render builds the blank template workbook and lays projected
// weeks out as a printable month grid.
package render

import (
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// Presentation constants.
const (
	fontFamily     = "Calibri"
	borderColor    = "000000"
	headerColor    = "0EA1D2"
	highlightColor = "FFFF00"

	templateRowHeight  = 35
	templateColWidth   = 14
	templateFontSize   = 12
	scheduleRowHeight  = 25
	scheduleColWidth   = 20
	scheduleHeaderSize = 14
	scheduleDateSize   = 12
	scheduleLineSize   = 10

	printMargin = 0.5
)

var allSides = []string{"left", "right", "top", "bottom"}

func borders(sides ...string) []excelize.Border {
	out := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		out = append(out, excelize.Border{Type: side, Color: borderColor, Style: 1})
	}
	return out
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func headerStyle(size float64) *excelize.Style {
	return &excelize.Style{
		Border:    borders(allSides...),
		Fill:      solidFill(headerColor),
		Font:      &excelize.Font{Family: fontFamily, Size: size, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}
}

// templateStyles holds style IDs registered on a template workbook.
type templateStyles struct {
	header int
	label  int
	data   int
}

func newTemplateStyles(f *excelize.File) (templateStyles, error) {
	var s templateStyles
	var err error

	if s.header, err = f.NewStyle(headerStyle(templateFontSize)); err != nil {
		return s, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Border:    borders(allSides...),
		Fill:      solidFill(highlightColor),
		Font:      &excelize.Font{Family: fontFamily, Size: templateFontSize, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	// Data cells stay editable once the sheet is protected.
	if s.data, err = f.NewStyle(&excelize.Style{
		Border:     borders(allSides...),
		Font:       &excelize.Font{Family: fontFamily, Size: templateFontSize},
		Alignment:  &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Protection: &excelize.Protection{Locked: false},
	}); err != nil {
		return s, err
	}
	return s, nil
}

// scheduleStyles holds style IDs registered on a schedule workbook.
type scheduleStyles struct {
	header   int
	date     int
	line     int
	lastLine int
}

func newScheduleStyles(f *excelize.File) (scheduleStyles, error) {
	var s scheduleStyles
	var err error

	if s.header, err = f.NewStyle(headerStyle(scheduleHeaderSize)); err != nil {
		return s, err
	}
	if s.date, err = f.NewStyle(&excelize.Style{
		Border:    borders(allSides...),
		Fill:      solidFill(highlightColor),
		Font:      &excelize.Font{Family: fontFamily, Size: scheduleDateSize, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, err
	}
	if s.line, err = f.NewStyle(&excelize.Style{
		Border: borders("left", "right"),
		Font:   &excelize.Font{Family: fontFamily, Size: scheduleLineSize},
	}); err != nil {
		return s, err
	}
	if s.lastLine, err = f.NewStyle(&excelize.Style{
		Border: borders("left", "right", "bottom"),
		Font:   &excelize.Font{Family: fontFamily, Size: scheduleLineSize},
	}); err != nil {
		return s, err
	}
	return s, nil
}

// blockStyle picks the style of the row-th line of a date block.
func (s scheduleStyles) blockStyle(row int) int {
	switch row {
	case 0:
		return s.date
	case models.DateBlockRows - 1:
		return s.lastLine
	default:
		return s.line
	}
}
