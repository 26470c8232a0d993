// Package schedule computes the bookable time points of a business day.
// It is a pure leaf package: no persistence, no transport, deterministic
// output for a given business window.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadTime is returned when a wall-clock string does not parse as "HH:MM".
var ErrBadTime = errors.New("malformed time, want HH:MM")

// ErrBadInterval is returned when the slot interval is not positive.
var ErrBadInterval = errors.New("slot interval must be positive")

// clockLayout is the wall-clock format used on the wire ("09:00", "21:30").
const clockLayout = "15:04"

// Slots returns the ordered bookable time points between open (inclusive)
// and close (exclusive), spaced interval apart.
//
// Times are parsed into time.Time before comparison so ordering is
// chronological rather than lexicographic, then re-serialized to "HH:MM".
// When open >= close the result is empty. The function is pure: the same
// inputs always yield the identical sequence.
func Slots(open, close string, interval time.Duration) ([]string, error) {
	if interval <= 0 {
		return nil, ErrBadInterval
	}
	start, err := ParseClock(open)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(close)
	if err != nil {
		return nil, err
	}

	var out []string
	for cur := start; cur.Before(end); cur = cur.Add(interval) {
		out = append(out, cur.Format(clockLayout))
	}
	return out, nil
}

// ParseClock parses an "HH:MM" wall-clock string. The date component of the
// result is the zero reference date; only hour and minute are meaningful.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	return t, nil
}

// ParseDate validates a calendar date in "YYYY-MM-DD" form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

// ErrBadDate is returned when a calendar date does not parse as "YYYY-MM-DD".
var ErrBadDate = errors.New("malformed date, want YYYY-MM-DD")
