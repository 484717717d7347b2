// Package timeline maps calendar dates onto a horizontal cell axis.
//
// All dates are fixed-width YYYY-MM-DD strings (no time-of-day, no timezone),
// so lexicographic order equals chronological order. The visible window always
// spans three consecutive months (previous, current, next) anchored at the
// first day of the previous month, which lets the view scroll across month
// boundaries without rebuilding mid-gesture.
package timeline

import (
	"math"
	"time"
)

// DayWidth is the number of terminal cells one day occupies.
const DayWidth = 4

const dateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Today returns the current calendar date.
func Today() string {
	return FormatDate(time.Now())
}

// AddDays shifts a date string by n calendar days. Invalid input is returned
// unchanged; callers only ever pass dates already validated on entry.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// DaysBetween returns b - a in whole days (negative when b precedes a).
func DaysBetween(a, b string) int {
	ta, err := ParseDate(a)
	if err != nil {
		return 0
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// DeltaToDays converts a horizontal cell displacement into whole days,
// rounding half away from zero so small nudges in either direction behave
// symmetrically.
func DeltaToDays(cells int) int {
	return int(math.Round(float64(cells) / float64(DayWidth)))
}

// Axis is the pure date<->cell mapping for one three-month window.
type Axis struct {
	// Current is the first day of the "current" month (the window's middle month).
	Current time.Time
	// Anchor is the first day of the month preceding Current; cell offset 0.
	Anchor time.Time
}

// NewAxis builds the window around the month containing t.
func NewAxis(t time.Time) Axis {
	current := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Axis{
		Current: current,
		Anchor:  current.AddDate(0, -1, 0),
	}
}

// NewAxisForDate builds the window around the month containing the given date
// string, falling back to today's month on invalid input.
func NewAxisForDate(date string) Axis {
	t, err := ParseDate(date)
	if err != nil {
		t = time.Now()
	}
	return NewAxis(t)
}

// TotalDays is the number of days in the three-month window.
func (a Axis) TotalDays() int {
	end := a.Current.AddDate(0, 2, 0) // first day of the month after next
	return int(end.Sub(a.Anchor).Hours() / 24)
}

// Width is the full window width in cells.
func (a Axis) Width() int {
	return a.TotalDays() * DayWidth
}

// OffsetOf returns the cell offset of a date's left edge relative to the
// anchor. Dates before the anchor yield negative offsets.
func (a Axis) OffsetOf(date string) int {
	return DaysBetween(FormatDate(a.Anchor), date) * DayWidth
}

// DayAt returns the date occupying the given cell offset.
func (a Axis) DayAt(offset int) string {
	day := offset / DayWidth
	if offset < 0 {
		day = (offset - DayWidth + 1) / DayWidth
	}
	return FormatDate(a.Anchor.AddDate(0, 0, day))
}

// MonthLabel is the window's current-month heading, e.g. "February 2025".
func (a Axis) MonthLabel() string {
	return a.Current.Format("January 2006")
}

// SameMonth reports whether the date falls in the window's current month.
func (a Axis) SameMonth(date string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return true
	}
	return t.Year() == a.Current.Year() && t.Month() == a.Current.Month()
}

// ShiftMonths returns the window moved whole months forward or back.
func (a Axis) ShiftMonths(n int) Axis {
	return NewAxis(a.Current.AddDate(0, n, 0))
}

// Recentered returns a window whose current month contains the given date,
// plus the cell delta between the old and new anchors. Adding the delta to a
// scroll offset keeps the same day on screen across the recenter, so the
// month heading can update reactively without any visual jump.
func (a Axis) Recentered(date string) (Axis, int) {
	next := NewAxisForDate(date)
	shift := DaysBetween(FormatDate(next.Anchor), FormatDate(a.Anchor)) * DayWidth
	return next, shift
}
