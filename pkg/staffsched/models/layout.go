package models

// TemplateField is one of the four data rows of a template column.
type TemplateField int

const (
	FieldOvernightHours TemplateField = iota
	FieldOvernightStaff
	FieldCoverageHours
	FieldCoverageStaff
)

// TemplateFields lists the data rows top to bottom.
var TemplateFields = [4]TemplateField{
	FieldOvernightHours,
	FieldOvernightStaff,
	FieldCoverageHours,
	FieldCoverageStaff,
}

// Category returns the shift category the field belongs to.
func (f TemplateField) Category() Category {
	if f == FieldCoverageHours || f == FieldCoverageStaff {
		return Coverage
	}
	return Overnight
}

// SubLabel returns the "Hours"/"Staff" label printed beside the field.
func (f TemplateField) SubLabel() string {
	if f == FieldOvernightHours || f == FieldCoverageHours {
		return "Hours"
	}
	return "Staff"
}

// Set stores value into the matching field of e.
func (f TemplateField) Set(e *WeeklyShiftEntry, value string) {
	switch f {
	case FieldOvernightHours:
		e.OvernightHours = value
	case FieldOvernightStaff:
		e.OvernightStaff = value
	case FieldCoverageHours:
		e.CoverageHours = value
	case FieldCoverageStaff:
		e.CoverageStaff = value
	}
}

// TemplateLayout describes where the weekly template lives on its sheet.
// The builder and the reader both derive every coordinate from it.
type TemplateLayout struct {
	SheetName string
	// HeaderRow holds the weekday names.
	HeaderRow int
	// LabelCol holds the merged category labels.
	LabelCol int
	// SubLabelCol holds the Hours/Staff labels.
	SubLabelCol int
	// FirstDataCol is the Sunday column.
	FirstDataCol int
	// FirstDataRow is the overnight-hours row.
	FirstDataRow int
}

// DefaultTemplateLayout is the layout of "Staff Schedule - Template.xlsx".
var DefaultTemplateLayout = TemplateLayout{
	SheetName:    "Template",
	HeaderRow:    1,
	LabelCol:     1,
	SubLabelCol:  2,
	FirstDataCol: 3,
	FirstDataRow: 2,
}

// Col returns the column holding w.
func (l TemplateLayout) Col(w Weekday) int {
	return l.FirstDataCol + w.Index()
}

// Row returns the row holding f.
func (l TemplateLayout) Row(f TemplateField) int {
	return l.FirstDataRow + int(f)
}

// CategoryRows returns the first and last row of a category's label block.
func (l TemplateLayout) CategoryRows(c Category) (first, last int) {
	first = -1
	for _, f := range TemplateFields {
		if f.Category() != c {
			continue
		}
		if first < 0 {
			first = l.Row(f)
		}
		last = l.Row(f)
	}
	return first, last
}

// DataRange covers the editable weekday cells.
func (l TemplateLayout) DataRange() CellRange {
	return CellRange{
		R1: l.FirstDataRow,
		C1: l.FirstDataCol,
		R2: l.FirstDataRow + len(TemplateFields) - 1,
		C2: l.FirstDataCol + len(Weekdays) - 1,
	}
}

// HeaderRange covers the weekday header cells.
func (l TemplateLayout) HeaderRange() CellRange {
	d := l.DataRange()
	return CellRange{R1: l.HeaderRow, C1: d.C1, R2: l.HeaderRow, C2: d.C2}
}

// BodyRange covers labels and data, which are all bordered.
func (l TemplateLayout) BodyRange() CellRange {
	d := l.DataRange()
	return CellRange{R1: d.R1, C1: l.LabelCol, R2: d.R2, C2: d.C2}
}

// Extent is the whole area the template may occupy.
func (l TemplateLayout) Extent() CellRange {
	d := l.DataRange()
	return CellRange{R1: l.HeaderRow, C1: l.LabelCol, R2: d.R2, C2: d.C2}
}

// ScheduleLayout describes the month grid sheet.
type ScheduleLayout struct {
	SheetName string
	HeaderRow int
	// FirstCol is the Sunday column.
	FirstCol int
	// FirstWeekRow is the date row of the first week.
	FirstWeekRow int
	// BlockRows is the height of one week.
	BlockRows int
}

// DefaultScheduleLayout is the layout of "Staff Schedule.xlsx".
var DefaultScheduleLayout = ScheduleLayout{
	SheetName:    "Schedule",
	HeaderRow:    1,
	FirstCol:     1,
	FirstWeekRow: 2,
	BlockRows:    DateBlockRows,
}

// Col returns the column holding w.
func (l ScheduleLayout) Col(w Weekday) int {
	return l.FirstCol + w.Index()
}

// WeekRow returns the date row of the week with the given zero-based index.
func (l ScheduleLayout) WeekRow(week int) int {
	return l.FirstWeekRow + l.BlockRows*week
}

// Extent covers the header row and the given number of weeks.
func (l ScheduleLayout) Extent(weeks int) CellRange {
	return CellRange{
		R1: l.HeaderRow,
		C1: l.FirstCol,
		R2: l.WeekRow(weeks) - 1,
		C2: l.FirstCol + len(Weekdays) - 1,
	}
}
