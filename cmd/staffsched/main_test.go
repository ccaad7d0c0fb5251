package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/staffsched-go/pkg/staffsched"
)

const (
	templateName = "Staff Schedule - Template.xlsx"
	outputName   = "Staff Schedule.xlsx"
)

// execute runs the CLI against dir with the given stdin.
func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STAFFSCHED_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeTemplate(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, templateName)
	require.NoError(t, staffsched.CreateTemplate(path, staffsched.DefaultOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, f.SetCellValue("Template", "C2", "22:00-06:00"))
	require.NoError(t, f.SetCellValue("Template", "C3", "J.Doe"))
	require.NoError(t, f.Save())
}

func TestMissingTemplateCreatesBlankOne(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "\n")
	require.ErrorIs(t, err, errTemplateCreated)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, fmt.Sprintf("Template file %q not found.", templateName))

	assert.FileExists(t, filepath.Join(dir, templateName))
	assert.NoFileExists(t, filepath.Join(dir, outputName))

	shifts, err := staffsched.LoadTemplate(filepath.Join(dir, templateName), staffsched.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, shifts.Entries(), 7)
}

func TestMissingTemplateAbortWritesNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "")
	require.ErrorIs(t, err, errAborted)
	assert.Equal(t, 130, exitCode(err))
	assert.NoFileExists(t, filepath.Join(dir, templateName))
}

func TestGenerateWithPrompts(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir)

	stdin := strings.Join([]string{"april", "13", "4", "twenty", "0", "10000", "2024", ""}, "\n") + "\n"
	out, err := execute(t, dir, stdin)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode(err))

	for _, msg := range []string{
		"Template found.",
		"Month must be a valid number.",
		"Month must be between 1 and 12.",
		"Year must be a valid number.",
		"Year must be 1 or greater.",
		"Year must be 9999 or earlier.",
		"Press ENTER to continue or CTRL+C to cancel...",
		"Schedule for April 2024 saved to",
	} {
		assert.Contains(t, out, msg)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, outputName))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetCellValue("Schedule", "A7")
	require.NoError(t, err)
	assert.Equal(t, "O/N: 22:00-06:00 J.Doe", got)
}

func TestGenerateWithFlags(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir)

	out, err := execute(t, dir, "", "--month", "2", "--year", "2015", "--yes", "--blank-empty")
	require.NoError(t, err)
	assert.NotContains(t, out, "Enter month")

	f, err := excelize.OpenFile(filepath.Join(dir, outputName))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Schedule", "A2")
	require.NoError(t, err)
	assert.Equal(t, "02/01", got)
	got, err = f.GetCellValue("Schedule", "A4")
	require.NoError(t, err)
	assert.Equal(t, "D/C:", got)
}

func TestGenerateRejectsInvalidFlags(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir)

	_, err := execute(t, dir, "", "--month", "0", "--year", "2024", "--yes")
	assert.ErrorIs(t, err, staffsched.ErrInvalidMonth)
	assert.Equal(t, 2, exitCode(err))

	_, err = execute(t, dir, "", "--month", "5", "--year", "-1", "--yes")
	assert.ErrorIs(t, err, staffsched.ErrInvalidYear)
	assert.NoFileExists(t, filepath.Join(dir, outputName))
}

func TestMalformedTemplate(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "Lundi"))
	require.NoError(t, f.SaveAs(filepath.Join(dir, templateName)))
	require.NoError(t, f.Close())

	_, err := execute(t, dir, "", "--yes")
	var fe *staffsched.TemplateFormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, "C1", fe.Cell)
	assert.Equal(t, 2, exitCode(err))
}

func TestTemplateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "", "template")
	require.NoError(t, err)
	assert.Contains(t, out, "Blank template written to")

	_, err = execute(t, dir, "", "template")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, dir, "", "template", "--force")
	assert.NoError(t, err)
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir)

	out, err := execute(t, dir, "", "preview", "--month", "4", "--year", "2024")
	require.NoError(t, err)

	var got struct {
		Period struct {
			Year  int `json:"year"`
			Month int `json:"month"`
		} `json:"period"`
		Weeks []struct {
			Days []struct {
				Weekday string `json:"weekday"`
				Block   *struct {
					Label     string `json:"label"`
					Overnight string `json:"overnight"`
				} `json:"block"`
			} `json:"days"`
		} `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 2024, got.Period.Year)
	require.Len(t, got.Weeks, 5)
	assert.Equal(t, "Sunday", got.Weeks[0].Days[0].Weekday)
	assert.Nil(t, got.Weeks[0].Days[0].Block)
	require.NotNil(t, got.Weeks[1].Days[0].Block)
	assert.Equal(t, "04/07", got.Weeks[1].Days[0].Block.Label)
	assert.Equal(t, "O/N: 22:00-06:00 J.Doe", got.Weeks[1].Days[0].Block.Overnight)
	assert.NoFileExists(t, filepath.Join(dir, outputName))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(fmt.Errorf("wrapped: %w", errTemplateCreated)))
	assert.Equal(t, 130, exitCode(errAborted))
	assert.Equal(t, 2, exitCode(errors.New("disk full")))
}
