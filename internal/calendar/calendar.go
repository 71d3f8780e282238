// Package calendar computes month grids: leading blanks, day counts, and
// past/today/future classification for each day of a viewed month.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadMonth indicates a month string that is not of the form YYYY-MM.
var ErrBadMonth = errors.New("invalid month")

// ErrBadDate indicates a date string that is not of the form YYYY-MM-DD.
var ErrBadDate = errors.New("invalid date")

// MonthNames maps a zero-based month index to its English name.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Weekdays are the grid column labels, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ViewMonth is the (year, month) pair currently displayed.
// Month is zero-based: 0 is January, 11 is December.
type ViewMonth struct {
	Year  int
	Month int
}

// Today returns the ViewMonth containing t.
func Today(t time.Time) ViewMonth {
	return ViewMonth{Year: t.Year(), Month: int(t.Month()) - 1}
}

// ParseMonth parses "YYYY-MM" into a ViewMonth.
func ParseMonth(s string) (ViewMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return ViewMonth{}, fmt.Errorf("%w %q: want YYYY-MM", ErrBadMonth, s)
	}
	return Today(t), nil
}

// ParseDate parses "YYYY-MM-DD" into its month and day.
func ParseDate(s string) (ViewMonth, int, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return ViewMonth{}, 0, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrBadDate, s)
	}
	return Today(t), t.Day(), nil
}

// Previous returns the month before v, rolling into the prior year.
func (v ViewMonth) Previous() ViewMonth {
	v.Month--
	if v.Month < 0 {
		v.Month = 11
		v.Year--
	}
	return v
}

// Next returns the month after v, rolling into the following year.
func (v ViewMonth) Next() ViewMonth {
	v.Month++
	if v.Month > 11 {
		v.Month = 0
		v.Year++
	}
	return v
}

// Title renders the header text, e.g. "February 2024".
func (v ViewMonth) Title() string {
	return fmt.Sprintf("%s %d", MonthNames[v.Month], v.Year)
}

// String renders v as YYYY-MM.
func (v ViewMonth) String() string {
	return fmt.Sprintf("%04d-%02d", v.Year, v.Month+1)
}

// EventsTitle returns the day-detail heading for day of v, with the month
// 1-based.
func (v ViewMonth) EventsTitle(day int) string {
	return fmt.Sprintf("Events for %d/%d/%d", v.Month+1, day, v.Year)
}

// FirstWeekday returns the weekday index (0=Sun..6=Sat) of day 1.
func (v ViewMonth) FirstWeekday() int {
	return int(time.Date(v.Year, time.Month(v.Month+1), 1, 12, 0, 0, 0, time.UTC).Weekday())
}

// DaysIn returns the number of days in the month. Day 0 of the following
// month normalizes to the last day of this one.
func (v ViewMonth) DaysIn() int {
	return time.Date(v.Year, time.Month(v.Month+2), 0, 12, 0, 0, 0, time.UTC).Day()
}
