package staffsched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/calendar"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/parser"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/render"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// LoadTemplate reads the weekly shift map from a template workbook.
// It returns ErrTemplateNotFound when path does not exist.
func LoadTemplate(path string, opts Options) (models.WeeklyShiftMap, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return models.WeeklyShiftMap{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.WeeklyShiftMap{}, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	shifts, err := parser.ReadTemplate(f, opts.TemplateLayout)
	if err != nil {
		return models.WeeklyShiftMap{}, err
	}

	opts.logger().Debug("template loaded",
		zap.String("path", path),
		zap.String("sheet", parser.TemplateSheet(f, opts.TemplateLayout)))
	return shifts, nil
}

// CreateTemplate writes a blank template workbook to path.
func CreateTemplate(path string, opts Options) error {
	f, err := render.BuildTemplate(opts.TemplateLayout)
	if err != nil {
		return fmt.Errorf("build template: %w", err)
	}
	defer f.Close()

	if err := Save(f, path); err != nil {
		return err
	}
	opts.logger().Info("template created", zap.String("path", path))
	return nil
}

// Project lays the shift map out over the weeks of period.
func Project(shifts models.WeeklyShiftMap, period calendar.Period, opts Options) ([]models.ProjectedWeek, error) {
	proj := calendar.Projector{Shifts: shifts, EmptyCellText: opts.EmptyCellText}
	weeks, err := proj.Project(period)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("month projected",
		zap.Int("year", period.Year),
		zap.Int("month", period.Month),
		zap.Int("weeks", len(weeks)))
	return weeks, nil
}

// Generate builds the schedule workbook for period.
func Generate(shifts models.WeeklyShiftMap, period calendar.Period, opts Options) (*excelize.File, error) {
	weeks, err := Project(shifts, period, opts)
	if err != nil {
		return nil, err
	}
	f, err := render.RenderSchedule(weeks, opts.ScheduleLayout)
	if err != nil {
		return nil, fmt.Errorf("render schedule: %w", err)
	}
	return f, nil
}

// GenerateFile generates the schedule for period and saves it to path,
// replacing any existing file.
func GenerateFile(shifts models.WeeklyShiftMap, period calendar.Period, path string, opts Options) error {
	f, err := Generate(shifts, period, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Save(f, path); err != nil {
		return err
	}
	opts.logger().Info("schedule saved", zap.String("path", path), zap.Stringer("period", period))
	return nil
}

// Save writes f to path. The workbook is written to a temporary file in the
// same directory first, so path is either fully replaced or left untouched.
func Save(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".staffsched-*.xlsx")
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	// CreateTemp opens files 0600.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &SaveError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &SaveError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
