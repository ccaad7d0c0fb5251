package staffsched

import (
	"errors"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/calendar"
	"github.com/ukaji3/staffsched-go/pkg/staffsched/parser"
)

// ErrTemplateNotFound indicates the template file does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateFormatError reports a template whose cell layout is not the expected one.
type TemplateFormatError = parser.TemplateFormatError

var (
	// ErrInvalidMonth indicates a month outside 1..12.
	ErrInvalidMonth = calendar.ErrInvalidMonth
	// ErrInvalidYear indicates a year outside 1..9999.
	ErrInvalidYear = calendar.ErrInvalidYear
)

// SaveError represents a failure persisting a workbook.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return "save " + e.Path + ": " + e.Err.Error()
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
