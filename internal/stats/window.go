package stats

import (
	"fmt"
	"strings"
	"time"
)

// Window is a closed-open time interval [Start, End) used to filter records.
type Window struct {
	Start time.Time
	End   time.Time
	Name  string // keyword the window was derived from, "" for explicit bounds
}

// Range keywords accepted by WindowFromRange, relative to local midnight.
const (
	RangeToday      = "today"
	RangeYesterday  = "yesterday"
	RangeLast7Days  = "last_7_days"
	RangeLast30Days = "last_30_days"
	RangeLast6Mon   = "last_6_months"
	RangeLastYear   = "last_year"
)

// RangeNames lists the supported range keywords in display order.
var RangeNames = []string{
	RangeToday, RangeYesterday, RangeLast7Days,
	RangeLast30Days, RangeLast6Mon, RangeLastYear,
}

// WindowFromRange derives a window from a named keyword relative to local
// midnight of now.
func WindowFromRange(name string, now time.Time) (Window, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := midnight.AddDate(0, 0, 1)

	switch strings.ToLower(name) {
	case RangeToday:
		return Window{Start: midnight, End: tomorrow, Name: RangeToday}, nil
	case RangeYesterday:
		return Window{Start: midnight.AddDate(0, 0, -1), End: midnight, Name: RangeYesterday}, nil
	case RangeLast7Days:
		return Window{Start: midnight.AddDate(0, 0, -6), End: tomorrow, Name: RangeLast7Days}, nil
	case RangeLast30Days:
		return Window{Start: midnight.AddDate(0, 0, -29), End: tomorrow, Name: RangeLast30Days}, nil
	case RangeLast6Mon:
		return Window{Start: midnight.AddDate(0, -6, 0), End: tomorrow, Name: RangeLast6Mon}, nil
	case RangeLastYear:
		return Window{Start: midnight.AddDate(-1, 0, 0), End: tomorrow, Name: RangeLastYear}, nil
	}
	return Window{}, fmt.Errorf("unknown range %q (expected one of %s)",
		name, strings.Join(RangeNames, ", "))
}

// WindowBetween builds a window from explicit bounds.
func WindowBetween(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// Contains reports whether the unix timestamp (seconds) falls in the window.
func (w Window) Contains(ts float64) bool {
	startF := float64(w.Start.UnixNano()) / 1e9
	endF := float64(w.End.UnixNano()) / 1e9
	return ts >= startF && ts < endF
}

// Days counts the distinct local calendar days the window intersects.
func (w Window) Days() int {
	if !w.Start.Before(w.End) {
		return 0
	}
	day := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, w.Start.Location())
	days := 0
	for day.Before(w.End) {
		days++
		day = day.AddDate(0, 0, 1)
	}
	return days
}

// Label returns a human-readable description of the window.
func (w Window) Label() string {
	if w.Name != "" {
		return strings.ReplaceAll(w.Name, "_", " ")
	}
	return fmt.Sprintf("%s to %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}
