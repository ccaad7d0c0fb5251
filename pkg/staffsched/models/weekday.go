// Package models defines the data structures shared by the template reader,
// calendar projector and schedule renderer.
package models

import (
	"strconv"
	"strings"
	"time"
)

// Weekday is a day of the week in Sunday-first order.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays is the fixed column order of both the template and the schedule.
var Weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// String returns the English weekday name.
func (w Weekday) String() string {
	if !w.Valid() {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// Valid reports whether w is one of the seven weekdays.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Index returns the zero-based column offset of w.
func (w Weekday) Index() int {
	return int(w)
}

// MarshalText encodes the weekday by name.
func (w Weekday) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// WeekdayOf converts a time.Weekday. Both use Sunday as zero.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(d)
}

// ParseWeekday matches a weekday name, ignoring case and surrounding space.
func ParseWeekday(name string) (Weekday, bool) {
	name = strings.TrimSpace(name)
	for _, w := range Weekdays {
		if strings.EqualFold(weekdayNames[w], name) {
			return w, true
		}
	}
	return 0, false
}
