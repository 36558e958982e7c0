// Package dates handles the calendar-day stamps used throughout the app.
// Days are fixed-width ISO "YYYY-MM-DD" strings, so plain string comparison
// orders them correctly.
package dates

import (
	"strings"
	"time"
)

const Layout = "2006-01-02"

// RangeSeparator joins the two ends of a timeframe label, e.g.
// "2025-03-01 - 2025-03-07".
const RangeSeparator = " - "

// Today returns the current local calendar day.
func Today() string {
	return time.Now().Format(Layout)
}

// Valid reports whether s is a well-formed calendar day.
func Valid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// MonthsBefore subtracts n calendar months from day. Like the JS Date the
// original ran on, Go normalizes overflowing days forward, so one month
// before 2025-03-31 is 2025-03-03 (via the nonexistent 2025-02-31).
func MonthsBefore(day string, n int) string {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, -n, 0).Format(Layout)
}

// DaysBefore subtracts n days from day.
func DaysBefore(day string, n int) string {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, -n).Format(Layout)
}

// DaysBetween returns the whole days from a to b; negative when b precedes a.
func DaysBetween(a, b string) int {
	ta, errA := time.Parse(Layout, a)
	tb, errB := time.Parse(Layout, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// RangeLabel builds the timeframe label for [start, end].
func RangeLabel(start, end string) string {
	return start + RangeSeparator + end
}

// SplitRange splits a timeframe label back into its ends. ok is false for a
// plain single-day date.
func SplitRange(label string) (start, end string, ok bool) {
	start, end, ok = strings.Cut(label, RangeSeparator)
	if !ok {
		return "", "", false
	}
	return start, end, true
}

// InRange reports whether day falls inside [start, end], inclusive on both
// ends.
func InRange(day, start, end string) bool {
	return day >= start && day <= end
}
