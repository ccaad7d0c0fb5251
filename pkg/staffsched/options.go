// Package staffsched generates printable monthly staff schedules from a
// weekly shift template workbook.
package staffsched

import (
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"go.uber.org/zap"
)

// Options configures template handling and schedule generation.
type Options struct {
	// TemplateLayout locates the weekly template cells.
	TemplateLayout models.TemplateLayout
	// ScheduleLayout locates the month grid cells.
	ScheduleLayout models.ScheduleLayout
	// EmptyCellText replaces unset template cells in shift lines.
	// An empty value drops unset cells instead.
	EmptyCellText string
	// Logger receives progress events. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns the standard layouts and prints unset cells as "None".
func DefaultOptions() Options {
	return Options{
		TemplateLayout: models.DefaultTemplateLayout,
		ScheduleLayout: models.DefaultScheduleLayout,
		EmptyCellText:  models.DefaultEmptyCellText,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
