package models

import (
	"fmt"
	"time"
)

// CalendarDate is a single day of a month with its derived weekday.
type CalendarDate struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Day     int        `json:"day"`
	Weekday Weekday    `json:"weekday"`
}

// Label formats the date as zero-padded MM/DD.
func (d CalendarDate) Label() string {
	return fmt.Sprintf("%02d/%02d", int(d.Month), d.Day)
}

// Slot is one weekday position of a week. Days of adjacent months are
// represented by a slot with Present set to false.
type Slot struct {
	Present bool         `json:"present"`
	Date    CalendarDate `json:"date"`
}

// Week holds seven slots, Sunday through Saturday.
type Week [7]Slot

// MonthGrid is a month laid out as whole Sunday-first weeks.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks []Week     `json:"weeks"`
}

// Days returns the present dates of the grid in order.
func (g MonthGrid) Days() []CalendarDate {
	var out []CalendarDate
	for _, week := range g.Weeks {
		for _, slot := range week {
			if slot.Present {
				out = append(out, slot.Date)
			}
		}
	}
	return out
}

// DateBlock is the rendered content of one present date.
type DateBlock struct {
	Date       CalendarDate `json:"date"`
	Label      string       `json:"label"`
	Overnight  string       `json:"overnight"`
	Coverage   string       `json:"coverage"`
	ExtraStaff string       `json:"extra_staff"`
}

// Lines returns the block rows top to bottom.
func (b DateBlock) Lines() []string {
	return []string{b.Label, b.Overnight, b.Coverage, b.ExtraStaff}
}

// DateBlockRows is the number of rows a date block occupies.
const DateBlockRows = 4

// ProjectedDay is one weekday column of a projected week.
// Block is nil for days outside the month.
type ProjectedDay struct {
	Weekday Weekday    `json:"weekday"`
	Block   *DateBlock `json:"block,omitempty"`
}

// ProjectedWeek is one schedule row of date blocks.
type ProjectedWeek struct {
	Index int             `json:"index"`
	Days  [7]ProjectedDay `json:"days"`
}
