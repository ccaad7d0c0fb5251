package calendar

import (
	"errors"
	"fmt"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
)

// ErrMissingWeekday indicates a shift map without an entry for a weekday
// that occurs in the projected month.
var ErrMissingWeekday = errors.New("shift map has no entry for weekday")

// Projector merges a weekly shift map into month grids.
type Projector struct {
	Shifts models.WeeklyShiftMap
	// EmptyCellText replaces unset template cells in the shift lines.
	EmptyCellText string
}

// NewProjector returns a projector that prints unset cells as "None".
func NewProjector(shifts models.WeeklyShiftMap) Projector {
	return Projector{Shifts: shifts, EmptyCellText: models.DefaultEmptyCellText}
}

// Project returns one ProjectedWeek per grid week of the period.
// Every week carries seven days; absent days have a nil Block.
func (p Projector) Project(period Period) ([]models.ProjectedWeek, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	grid := MonthGrid(period)
	weeks := make([]models.ProjectedWeek, len(grid.Weeks))
	for i, week := range grid.Weeks {
		weeks[i].Index = i
		for col, slot := range week {
			day := models.ProjectedDay{Weekday: models.Weekdays[col]}
			if slot.Present {
				block, err := p.Block(slot.Date)
				if err != nil {
					return nil, err
				}
				day.Block = &block
			}
			weeks[i].Days[col] = day
		}
	}
	return weeks, nil
}

// Block builds the date block for a single date.
func (p Projector) Block(date models.CalendarDate) (models.DateBlock, error) {
	entry, ok := p.Shifts.Entry(date.Weekday)
	if !ok {
		return models.DateBlock{}, fmt.Errorf("%w: %s (%s)", ErrMissingWeekday, date.Weekday, date.Label())
	}
	return models.DateBlock{
		Date:       date,
		Label:      date.Label(),
		Overnight:  shiftLine(entry, models.Overnight, p.EmptyCellText),
		Coverage:   shiftLine(entry, models.Coverage, p.EmptyCellText),
		ExtraStaff: models.ExtraStaffLabel + ":",
	}, nil
}

func shiftLine(e models.WeeklyShiftEntry, c models.Category, emptyText string) string {
	text := e.Text(c, emptyText)
	if text == "" {
		return string(c) + ":"
	}
	return fmt.Sprintf("%s: %s", c, text)
}
