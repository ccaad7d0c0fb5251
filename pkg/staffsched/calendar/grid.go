package calendar

import (
	"time"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
)

// MonthGrid lays the period out as whole weeks starting on Sunday.
// Slots before day 1 and after the last day are left absent.
func MonthGrid(p Period) models.MonthGrid {
	first := time.Date(p.Year, p.TimeMonth(), 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	days := p.DaysIn()
	numWeeks := (lead + days + 6) / 7

	grid := models.MonthGrid{
		Year:  p.Year,
		Month: p.TimeMonth(),
		Weeks: make([]models.Week, numWeeks),
	}
	for day := 1; day <= days; day++ {
		pos := lead + day - 1
		date := first.AddDate(0, 0, day-1)
		grid.Weeks[pos/7][pos%7] = models.Slot{
			Present: true,
			Date: models.CalendarDate{
				Year:    p.Year,
				Month:   p.TimeMonth(),
				Day:     day,
				Weekday: models.WeekdayOf(date.Weekday()),
			},
		}
	}
	return grid
}
