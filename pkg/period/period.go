// Package period compiles the temporal part of a report filter.
package period

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Column is the observation date column filtered on.
const Column = `obs."date"`

const dateLayout = "2006-01-02"

// Mode selects how observations are restricted in time.
type Mode int

const (
	// None keeps every observation.
	None Mode = iota
	// LastFiveYears keeps observations dated within five years of the
	// reference date.
	LastFiveYears
	// LastTenYears keeps observations dated within ten years of the
	// reference date.
	LastTenYears
	// Range keeps observations between Start and End, bounds included.
	Range
)

var modeNames = map[Mode]string{
	None:          "none",
	LastFiveYears: "5y",
	LastTenYears:  "10y",
	Range:         "range",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMode converts "none", "5y", "10y" or "range" to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "", "none", "all":
		return None, nil
	case "5y", "last-5-years":
		return LastFiveYears, nil
	case "10y", "last-10-years":
		return LastTenYears, nil
	case "range":
		return Range, nil
	}
	return None, ModeError(s)
}

// Filter is a temporal restriction. Start and End are only read in Range
// mode.
type Filter struct {
	Mode  Mode   `json:"mode"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Compile returns the SQL fragment of the filter. Relative modes are
// computed from now, which callers pass explicitly so that the same
// inputs always give the same text. None gives an empty fragment.
func (f Filter) Compile(now time.Time) (string, error) {
	switch f.Mode {
	case None:
		return "", nil
	case LastFiveYears:
		return Column + " >= " + literal(YearsBefore(now, 5)), nil
	case LastTenYears:
		return Column + " >= " + literal(YearsBefore(now, 10)), nil
	case Range:
		start, end, err := f.bounds()
		if err != nil {
			return "", err
		}
		return Column + " >= " + literal(start) + " and " +
			Column + " <= " + literal(end), nil
	}
	return "", ModeError(f.Mode.String())
}

// Inverted reports whether a range filter ends before it starts. Such a
// filter is valid but matches no observation.
func (f Filter) Inverted() bool {
	if f.Mode != Range {
		return false
	}
	start, end, err := f.bounds()
	if err != nil {
		return false
	}
	return start.After(end)
}

func (f Filter) bounds() (time.Time, time.Time, error) {
	if strings.TrimSpace(f.Start) == "" {
		return time.Time{}, time.Time{}, BoundMissingError("start")
	}
	if strings.TrimSpace(f.End) == "" {
		return time.Time{}, time.Time{}, BoundMissingError("end")
	}
	start, err := ParseDate(f.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(f.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ParseDate reads a calendar date. Date-time values are accepted and
// truncated to their date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{dateLayout, "2006-01-02T15:04:05", time.RFC3339}
	for _, l := range layouts {
		if d, err := time.Parse(l, s); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, DateError(s)
}

// YearsBefore returns the calendar date n years before now. February 29
// maps to February 28 in a non-leap target year, as PostgreSQL interval
// arithmetic does.
func YearsBefore(now time.Time, n int) time.Time {
	y, m, d := now.Date()
	y -= n
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func literal(d time.Time) string {
	return pq.QuoteLiteral(d.Format(dateLayout))
}
