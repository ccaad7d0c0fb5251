package render

import (
	"fmt"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/xuri/excelize/v2"
)

// RenderSchedule lays projected weeks out as a month grid.
// Each week occupies layout.BlockRows rows below the weekday header; days
// outside the month leave their block blank.
func RenderSchedule(weeks []models.ProjectedWeek, layout models.ScheduleLayout) (*excelize.File, error) {
	f, err := newSheetFile(layout.SheetName)
	if err != nil {
		return nil, err
	}
	if err := writeSchedule(f, weeks, layout); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSchedule(f *excelize.File, weeks []models.ProjectedWeek, layout models.ScheduleLayout) error {
	sheet := f.GetSheetName(0)
	extent := layout.Extent(len(weeks))

	styles, err := newScheduleStyles(f)
	if err != nil {
		return fmt.Errorf("create schedule styles: %w", err)
	}

	if err := padCells(f, sheet, extent, scheduleRowHeight, scheduleColWidth); err != nil {
		return fmt.Errorf("pad schedule cells: %w", err)
	}

	if err := writeWeekdayHeaders(f, sheet, layout.HeaderRow, layout.FirstCol, styles.header); err != nil {
		return fmt.Errorf("write schedule headers: %w", err)
	}

	for i, week := range weeks {
		top := layout.WeekRow(i)
		for _, day := range week.Days {
			if day.Block == nil {
				continue
			}
			col := layout.Col(day.Weekday)
			for j, line := range day.Block.Lines() {
				cell := cellName(col, top+j)
				if err := f.SetCellStr(sheet, cell, line); err != nil {
					return fmt.Errorf("write %s: %w", day.Block.Label, err)
				}
				if err := f.SetCellStyle(sheet, cell, cell, styles.blockStyle(j)); err != nil {
					return fmt.Errorf("style %s: %w", day.Block.Label, err)
				}
			}
		}
	}

	if err := setupPrint(f, sheet, extent); err != nil {
		return fmt.Errorf("configure print layout: %w", err)
	}
	return nil
}
