package render

import (
	"testing"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/calendar"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/parser"
	"github.com/xuri/excelize/v2"
)

func april2024(t *testing.T) []models.ProjectedWeek {
	t.Helper()
	entries := []models.WeeklyShiftEntry{
		{Weekday: models.Sunday, OvernightHours: "22:00-06:00", OvernightStaff: "J.Doe"},
	}
	for _, w := range models.Weekdays[1:] {
		entries = append(entries, models.WeeklyShiftEntry{
			Weekday:        w,
			OvernightHours: "23:00-07:00",
			OvernightStaff: "A.Lee",
			CoverageHours:  "09:00-17:00",
			CoverageStaff:  "B.Kim",
		})
	}
	shifts, err := models.NewWeeklyShiftMap(entries)
	if err != nil {
		t.Fatalf("NewWeeklyShiftMap failed: %v", err)
	}
	weeks, err := calendar.NewProjector(shifts).Project(calendar.Period{Year: 2024, Month: 4})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	return weeks
}

func renderApril(t *testing.T) *excelize.File {
	t.Helper()
	f, err := RenderSchedule(april2024(t), models.DefaultScheduleLayout)
	if err != nil {
		t.Fatalf("RenderSchedule failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRenderScheduleCells(t *testing.T) {
	f := renderApril(t)

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Sunday"},
		{"G1", "Saturday"},
		// Week 1 starts on Monday.
		{"A2", ""},
		{"A5", ""},
		{"B2", "04/01"},
		{"B3", "O/N: 23:00-07:00 A.Lee"},
		{"B4", "D/C: 09:00-17:00 B.Kim"},
		{"B5", "T/C:"},
		{"G2", "04/06"},
		// Week 2 Sunday.
		{"A6", "04/07"},
		{"A7", "O/N: 22:00-06:00 J.Doe"},
		{"A8", "D/C: None None"},
		// Last week ends on Tuesday.
		{"A18", "04/28"},
		{"C18", "04/30"},
		{"D18", ""},
		{"G21", ""},
		{"A22", ""},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Schedule", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestRenderScheduleBlockStyles(t *testing.T) {
	f := renderApril(t)

	date := cellStyle(t, f, "Schedule", "B2")
	if date.Font == nil || !date.Font.Bold {
		t.Errorf("date should be bold, got %+v", date.Font)
	}
	if date.Alignment == nil || date.Alignment.Horizontal != "right" {
		t.Errorf("date should be right aligned, got %+v", date.Alignment)
	}
	if len(date.Border) != 4 {
		t.Errorf("date should be bordered on 4 sides, got %d", len(date.Border))
	}

	line := cellStyle(t, f, "Schedule", "B3")
	if len(line.Border) != 2 {
		t.Errorf("shift line should be side bordered, got %d borders", len(line.Border))
	}
	last := cellStyle(t, f, "Schedule", "B5")
	if len(last.Border) != 3 {
		t.Errorf("extra staff line should add a bottom border, got %d borders", len(last.Border))
	}

	height, err := f.GetRowHeight("Schedule", 21)
	if err != nil {
		t.Fatalf("GetRowHeight failed: %v", err)
	}
	if height != scheduleRowHeight {
		t.Errorf("row height = %v, expected %v", height, scheduleRowHeight)
	}
}

// printArea returns the print area defined for sheet.
func printArea(t *testing.T, f *excelize.File, sheet string) string {
	t.Helper()
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm.Print_Area" && dn.Scope == sheet {
			return dn.RefersTo
		}
	}
	t.Fatalf("no print area defined for %q", sheet)
	return ""
}

func TestRenderSchedulePrintSetup(t *testing.T) {
	f := renderApril(t)

	expected := models.CellRange{R1: 1, C1: 1, R2: 21, C2: 7}
	if got := printArea(t, f, "Schedule"); got != "'Schedule'!$A$1:$G$21" {
		t.Fatalf("print area = %q, expected 'Schedule'!$A$1:$G$21", got)
	}

	bounds, ok, err := parser.DataBounds(f, "Schedule")
	if err != nil || !ok {
		t.Fatalf("DataBounds failed: ok=%v err=%v", ok, err)
	}
	if bounds != expected {
		t.Errorf("populated region %s does not match print area %s", bounds.Ref(), expected.Ref())
	}

	layout, err := f.GetPageLayout("Schedule")
	if err != nil {
		t.Fatalf("GetPageLayout failed: %v", err)
	}
	if layout.Orientation == nil || *layout.Orientation != "landscape" {
		t.Errorf("orientation = %v, expected landscape", layout.Orientation)
	}
	if layout.FitToHeight == nil || *layout.FitToHeight != 0 {
		t.Errorf("fit to height = %v, expected 0", layout.FitToHeight)
	}

	props, err := f.GetSheetProps("Schedule")
	if err != nil {
		t.Fatalf("GetSheetProps failed: %v", err)
	}
	if props.FitToPage == nil || !*props.FitToPage {
		t.Errorf("fit to page should be enabled")
	}

	margins, err := f.GetPageMargins("Schedule")
	if err != nil {
		t.Fatalf("GetPageMargins failed: %v", err)
	}
	for name, m := range map[string]*float64{
		"top": margins.Top, "bottom": margins.Bottom, "left": margins.Left, "right": margins.Right,
	} {
		if m == nil || *m != printMargin {
			t.Errorf("%s margin = %v, expected %v", name, m, printMargin)
		}
	}
}

func TestRenderScheduleEmpty(t *testing.T) {
	f, err := RenderSchedule(nil, models.DefaultScheduleLayout)
	if err != nil {
		t.Fatalf("RenderSchedule failed: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("Schedule", "D1")
	if got != "Wednesday" {
		t.Errorf("D1 = %q, expected Wednesday", got)
	}
	if got := printArea(t, f, "Schedule"); got != "'Schedule'!$A$1:$G$1" {
		t.Errorf("print area should cover the header only, got %q", got)
	}
}

func TestRenderScheduleQuotedSheetName(t *testing.T) {
	layout := models.DefaultScheduleLayout
	layout.SheetName = "O'Neil"

	f, err := RenderSchedule(april2024(t), layout)
	if err != nil {
		t.Fatalf("RenderSchedule failed: %v", err)
	}
	defer f.Close()

	if got := printArea(t, f, "O'Neil"); got != "'O''Neil'!$A$1:$G$21" {
		t.Errorf("print area = %q, expected 'O''Neil'!$A$1:$G$21", got)
	}
	got, _ := f.GetCellValue("O'Neil", "A7")
	if got != "O/N: 22:00-06:00 J.Doe" {
		t.Errorf("A7 = %q, expected the Sunday overnight line", got)
	}
}
