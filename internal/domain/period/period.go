// Package period computes reporting windows and the per-day buckets that
// cover them. All functions take "now" explicitly so callers control the
// clock and tests stay deterministic.
package period

import (
	"fmt"
	"strings"
	"time"
)

// Period is a supported reporting window size.
type Period string

const (
	Week  Period = "week"
	Month Period = "month"
)

// Parse validates a period value from an untrusted source (query string,
// config). The empty string defaults to Month.
func Parse(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case Week:
		return Week, nil
	case Month, "":
		return Month, nil
	default:
		return "", fmt.Errorf("unknown period %q (want week or month)", s)
	}
}

// Window is an inclusive [Start, End] reporting range.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFor returns the reporting window for a period. Week is the trailing
// seven days ending at now; month is the full calendar month containing now.
func WindowFor(p Period, now time.Time) Window {
	if p == Week {
		return Window{Start: now.AddDate(0, 0, -7), End: now}
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Second)
	return Window{Start: first, End: last}
}

// DayBuckets returns one timestamp per calendar day covering the window,
// oldest first. Iterating backward from the window end guarantees exactly
// 7 (week) or days-in-month (month) buckets regardless of month length.
func DayBuckets(p Period, now time.Time) []time.Time {
	win := WindowFor(p, now)

	n := 7
	if p != Week {
		n = daysInMonth(now)
	}

	buckets := make([]time.Time, n)
	day := win.End
	for i := 0; i < n; i++ {
		buckets[n-1-i] = day
		day = day.AddDate(0, 0, -1)
	}
	return buckets
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
