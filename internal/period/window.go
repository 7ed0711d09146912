// Package period computes the single-day reporting window.
package period

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	BoundLayout = "2006-01-02 15:04:05"
)

// Window is one calendar day in a fixed location. Both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Yesterday returns the window for the day before now, evaluated in loc.
func Yesterday(now time.Time, loc *time.Location) Window {
	return ForDay(now.In(loc).AddDate(0, 0, -1))
}

// ForDay returns the window covering the calendar day of t in t's location.
func ForDay(t time.Time) Window {
	return Window{
		Start: startOfDay(t),
		End:   endOfDay(t),
	}
}

// Parse reads a YYYY-MM-DD date in loc and returns its window.
func Parse(value string, loc *time.Location) (Window, error) {
	day, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return Window{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return ForDay(day), nil
}

func (w Window) Label() string {
	return w.Start.Format(DateLayout)
}

func (w Window) Begin() string {
	return w.Start.Format(BoundLayout)
}

func (w Window) Finish() string {
	return w.End.Format(BoundLayout)
}

func (w Window) Location() *time.Location {
	return w.Start.Location()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay stops at the whole second; the upstream filter has second precision.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
