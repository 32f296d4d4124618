// =============================================================================
// Sales Dataset Generator - Calendar
// =============================================================================
//
// The generation window is a fixed daily calendar. Every order inherits its
// date attributes (year, month, quarter, weekday) from the Day that
// produced it.
//
// =============================================================================

package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk format of a calendar day.
const DateLayout = "2006-01-02"

// Default generation window.
var (
	DefaultStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Day is a single date in the generation window, always at UTC midnight.
type Day struct {
	t time.Time
}

// NewDay truncates t to its UTC calendar date.
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (Day, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDay(t), nil
}

func (d Day) Year() int { return d.t.Year() }

// MonthNum returns the month as 1..12.
func (d Day) MonthNum() int { return int(d.t.Month()) }

// MonthName returns the English month name, e.g. "January".
func (d Day) MonthName() string { return d.t.Month().String() }

// Quarter returns the quarter label "Q1".."Q4".
func (d Day) Quarter() string { return QuarterOf(d.MonthNum()) }

// Weekday returns the English weekday name, e.g. "Sunday".
func (d Day) Weekday() string { return d.t.Weekday().String() }

func (d Day) String() string { return d.t.Format(DateLayout) }

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d is strictly later than other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// QuarterOf maps a month number (1..12) to its quarter label.
func QuarterOf(month int) string {
	return fmt.Sprintf("Q%d", (month-1)/3+1)
}

// Range returns every day from start to end inclusive, one day apart.
//
// RETURNS:
//   - The ordered days of the window.
//   - An error if end is before start.
func Range(start, end Day) ([]Day, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}

	n := int(end.t.Sub(start.t).Hours()/24) + 1
	days := make([]Day, 0, n)
	for t := start.t; !t.After(end.t); t = t.AddDate(0, 0, 1) {
		days = append(days, Day{t: t})
	}
	return days, nil
}

// Window is an inclusive date interval.
type Window struct {
	Start Day
	End   Day
}

// DefaultWindow is 2023-01-01 through 2024-12-31.
func DefaultWindow() Window {
	return Window{Start: NewDay(DefaultStart), End: NewDay(DefaultEnd)}
}

// Contains reports whether d falls inside the window, ends included.
func (w Window) Contains(d Day) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days expands the window into its daily calendar.
func (w Window) Days() ([]Day, error) {
	return Range(w.Start, w.End)
}
