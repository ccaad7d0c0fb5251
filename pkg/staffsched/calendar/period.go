// Package calendar lays a month out as Sunday-first weeks and projects a
// weekly shift template onto it.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidMonth indicates a month outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidYear indicates a year outside 1..MaxYear.
	ErrInvalidYear = errors.New("year must be between 1 and 9999")
)

// MaxYear is the last year a schedule can be generated for. Later years do
// not fit four-digit calendar dates.
const MaxYear = 9999

var validate = validator.New(validator.WithRequiredStructEnabled())

// Period is a calendar month of a year.
type Period struct {
	Year  int `json:"year" validate:"gte=1,lte=9999"`
	Month int `json:"month" validate:"gte=1,lte=12"`
}

// NewPeriod validates year and month.
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Validate checks the month first, then the year.
func (p Period) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var yearErr error
	for _, fe := range verrs {
		switch fe.Field() {
		case "Month":
			return fmt.Errorf("%w: %d", ErrInvalidMonth, p.Month)
		case "Year":
			yearErr = fmt.Errorf("%w: %d", ErrInvalidYear, p.Year)
		}
	}
	if yearErr != nil {
		return yearErr
	}
	return err
}

// TimeMonth returns the month as a time.Month.
func (p Period) TimeMonth() time.Month {
	return time.Month(p.Month)
}

// String formats the period as "April 2024".
func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.TimeMonth(), p.Year)
}

// DaysIn returns the number of days in the period's month.
func (p Period) DaysIn() int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(p.Year, p.TimeMonth()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
