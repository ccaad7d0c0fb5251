package models

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a shift category label as printed on the schedule.
type Category string

const (
	// Overnight is the O/N shift.
	Overnight Category = "O/N"
	// Coverage is the D/C (day coverage) shift.
	Coverage Category = "D/C"
)

// Categories lists the shift categories in display order.
var Categories = []Category{Overnight, Coverage}

// ExtraStaffLabel prefixes the free line reserved for staff not on the template.
const ExtraStaffLabel = "T/C"

// DefaultEmptyCellText is substituted for unset template cells.
// It reproduces the "None" text older schedules were printed with.
const DefaultEmptyCellText = "None"

var (
	// ErrDuplicateWeekday indicates two entries for the same weekday.
	ErrDuplicateWeekday = errors.New("duplicate weekday entry")
	// ErrMissingWeekday indicates a weekday without an entry.
	ErrMissingWeekday = errors.New("missing weekday entry")
)

// WeeklyShiftEntry holds the raw template cells for one weekday.
type WeeklyShiftEntry struct {
	Weekday        Weekday `json:"weekday"`
	OvernightHours string  `json:"overnight_hours"`
	OvernightStaff string  `json:"overnight_staff"`
	CoverageHours  string  `json:"coverage_hours"`
	CoverageStaff  string  `json:"coverage_staff"`
}

// Shift returns the hours and staff cells for a category.
func (e WeeklyShiftEntry) Shift(c Category) (hours, staff string) {
	switch c {
	case Overnight:
		return e.OvernightHours, e.OvernightStaff
	case Coverage:
		return e.CoverageHours, e.CoverageStaff
	}
	return "", ""
}

// Text joins hours and staff for a category with a single space.
// Empty cells are replaced by emptyText; when emptyText is itself empty
// the missing parts are dropped instead.
func (e WeeklyShiftEntry) Text(c Category, emptyText string) string {
	hours, staff := e.Shift(c)
	if emptyText == "" {
		return strings.TrimSpace(strings.TrimSpace(hours) + " " + strings.TrimSpace(staff))
	}
	if hours == "" {
		hours = emptyText
	}
	if staff == "" {
		staff = emptyText
	}
	return hours + " " + staff
}

// WeeklyShiftMap maps every weekday to its entry. It is immutable once built.
type WeeklyShiftMap struct {
	entries [7]WeeklyShiftEntry
	present [7]bool
}

// NewWeeklyShiftMap builds a map that must contain exactly one entry per weekday.
func NewWeeklyShiftMap(entries []WeeklyShiftEntry) (WeeklyShiftMap, error) {
	var m WeeklyShiftMap
	for _, e := range entries {
		if !e.Weekday.Valid() {
			return WeeklyShiftMap{}, fmt.Errorf("invalid weekday %d", int(e.Weekday))
		}
		if m.present[e.Weekday] {
			return WeeklyShiftMap{}, fmt.Errorf("%w: %s", ErrDuplicateWeekday, e.Weekday)
		}
		m.entries[e.Weekday] = e
		m.present[e.Weekday] = true
	}
	for _, w := range Weekdays {
		if !m.present[w] {
			return WeeklyShiftMap{}, fmt.Errorf("%w: %s", ErrMissingWeekday, w)
		}
	}
	return m, nil
}

// Entry returns the entry for w. The zero map has no entries.
func (m WeeklyShiftMap) Entry(w Weekday) (WeeklyShiftEntry, bool) {
	if !w.Valid() || !m.present[w] {
		return WeeklyShiftEntry{}, false
	}
	return m.entries[w], true
}

// Entries returns all entries in Sunday-first order.
func (m WeeklyShiftMap) Entries() []WeeklyShiftEntry {
	out := make([]WeeklyShiftEntry, 0, len(Weekdays))
	for _, w := range Weekdays {
		if m.present[w] {
			out = append(out, m.entries[w])
		}
	}
	return out
}
