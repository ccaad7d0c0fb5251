package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ukaji3/staffsched-go/pkg/staffsched"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/calendar"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/config"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
)

// app runs one invocation of the generator.
type app struct {
	cfg    *config.Config
	opts   staffsched.Options
	prompt *prompter
	out    io.Writer
	logger *zap.Logger

	// month and year are set when given on the command line.
	month     *int
	year      *int
	assumeYes bool
}

// run loads (or creates) the template, asks for the month and writes the schedule.
func (a *app) run() error {
	shifts, err := a.loadTemplate()
	if errors.Is(err, staffsched.ErrTemplateNotFound) {
		return a.offerTemplate()
	}
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, "Template found.\n\n"+
		"A new schedule will be created for the given month and year...\n")

	period, err := a.period()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nThe file will be saved to %s as %q.\n\n", a.cfg.Dir, a.cfg.OutputFile)
	if err := a.confirm(); err != nil {
		return err
	}

	if err := staffsched.GenerateFile(shifts, period, a.cfg.OutputPath(), a.opts); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Schedule for %s saved to %s\n", period, a.cfg.OutputPath())
	return nil
}

func (a *app) loadTemplate() (models.WeeklyShiftMap, error) {
	path := a.cfg.TemplatePath()
	shifts, err := staffsched.LoadTemplate(path, a.opts)
	var fe *staffsched.TemplateFormatError
	if errors.As(err, &fe) {
		return shifts, fmt.Errorf("%s is not a schedule template (run \"staffsched template --force\" to start over): %w", path, err)
	}
	return shifts, err
}

// offerTemplate creates a blank template after confirmation. The run always
// ends afterwards so the operator can fill it in.
func (a *app) offerTemplate() error {
	fmt.Fprintf(a.out, "Template file %q not found.\n"+
		"A blank template will be created in %s.\n\n"+
		"Add staff names and shift hours to the template, "+
		"then run this program again.\n\n", a.cfg.TemplateFile, a.cfg.Dir)

	if err := a.confirm(); err != nil {
		return err
	}
	if err := staffsched.CreateTemplate(a.cfg.TemplatePath(), a.opts); err != nil {
		return err
	}
	return errTemplateCreated
}

func (a *app) writeTemplate(force bool) error {
	path := a.cfg.TemplatePath()
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("template %s already exists (use --force to replace it)", path)
	}
	if err := staffsched.CreateTemplate(path, a.opts); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Blank template written to %s\n", path)
	return nil
}

// preview prints the projected weeks instead of rendering them.
func (a *app) preview() error {
	shifts, err := a.loadTemplate()
	if err != nil {
		return err
	}
	period, err := a.period()
	if err != nil {
		return err
	}
	weeks, err := staffsched.Project(shifts, period, a.opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Period calendar.Period        `json:"period"`
		Weeks  []models.ProjectedWeek `json:"weeks"`
	}{period, weeks})
}

// period uses the command line month and year, prompting for whichever is missing.
func (a *app) period() (calendar.Period, error) {
	var month, year int
	var err error

	if a.month != nil {
		month = *a.month
	} else if month, err = a.prompt.month(); err != nil {
		return calendar.Period{}, err
	}
	if a.year != nil {
		year = *a.year
	} else if year, err = a.prompt.year(); err != nil {
		return calendar.Period{}, err
	}

	return calendar.NewPeriod(year, month)
}

func (a *app) confirm() error {
	if a.assumeYes {
		return nil
	}
	return a.prompt.confirm()
}
