package timeconv

import (
	"fmt"
	"strings"
	"time"
)

// TzMassaging selects how ParseToUnixMillis resolves the timezone of a
// date-time string.
type TzMassaging int

const (
	// CondAddTzUTC assumes UTC when the string carries no numeric
	// offset, and honors the offset when it does.
	CondAddTzUTC TzMassaging = iota

	// HasTz requires an explicit numeric offset.
	HasTz

	// LocalTz interprets an offset-free string as wall-clock time in
	// the process's local timezone.
	LocalTz
)

// String returns a human-readable policy name.
func (tz TzMassaging) String() string {
	switch tz {
	case CondAddTzUTC:
		return "cond-add-tz-utc"
	case HasTz:
		return "has-tz"
	case LocalTz:
		return "local-tz"
	default:
		return fmt.Sprintf("TzMassaging(%d)", int(tz))
	}
}

// Numeric offset forms accepted after the base layout. A Go layout
// token matches a single form, so parsing tries them in order.
var offsetLayouts = []string{"-0700", "-07:00", "-07"}

// ParseToUnixMillis parses a date-time string into a UTC millisecond
// timestamp under the given timezone policy.
//
// The string is YYYY-MM-DD followed by HH:MM:SS, separated by either a
// single 'T' or a space, with optional fractional seconds of any
// length; sub-millisecond digits round half-up. Leading and trailing
// whitespace is ignored.
func ParseToUnixMillis(input string, tz TzMassaging) (int64, error) {
	s := strings.TrimSpace(input)

	// Exactly one 'T' means the ISO separator; anything else falls
	// back to the space-separated layout.
	layout := "2006-01-02 15:04:05"
	if strings.Count(s, "T") == 1 {
		layout = "2006-01-02T15:04:05"
	}

	switch tz {
	case CondAddTzUTC:
		if !hasNumericOffset(s) {
			s += "+0000"
		}
		fallthrough
	case HasTz:
		t, err := parseWithOffset(s, layout)
		if err != nil {
			return 0, &ParseError{Input: input, Err: err}
		}
		return UTCToUnixMillis(t), nil
	case LocalTz:
		t, err := parseInLocal(s, layout, time.Local)
		if err != nil {
			return 0, &ParseError{Input: input, Err: err}
		}
		return UTCToUnixMillis(t), nil
	default:
		return 0, &ParseError{Input: input, Err: fmt.Errorf("unknown timezone policy %s", tz)}
	}
}

// hasNumericOffset reports whether a trimmed date-time string appears
// to carry an explicit numeric offset: any '+', or a '-' past index 7
// (a hyphen at or before index 7 is a YYYY-MM-DD date separator).
func hasNumericOffset(s string) bool {
	return strings.Contains(s, "+") || strings.LastIndex(s, "-") > 7
}

// parseWithOffset parses a string that must end in a numeric offset in
// ±hhmm, ±hh:mm, or ±hh form.
func parseWithOffset(s, layout string) (time.Time, error) {
	var firstErr error
	for _, zone := range offsetLayouts {
		t, err := time.Parse(layout+zone, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	// If the string parses once the offset requirement is dropped, the
	// offset is what's missing.
	if _, err := time.Parse(layout, s); err == nil {
		return time.Time{}, ErrMissingTimezone
	}
	return time.Time{}, firstErr
}

// parseInLocal parses an offset-free string as wall-clock time in loc.
//
// time.Date silently picks a side of a DST transition, so resolution
// is explicit: probe the zone offsets in effect around the wall time
// and keep those that map the wall clock back onto itself. A
// spring-forward gap leaves no candidate, a fall-back overlap two.
func parseInLocal(s, layout string, loc *time.Location) (time.Time, error) {
	wall, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, err
	}

	// wall holds the parsed components pinned to UTC; each candidate
	// instant differs from it by one of the nearby zone offsets. No
	// real zone holds an offset for less than six hours around a
	// transition, so a six-hour probe step misses none.
	offsets := make(map[int]struct{})
	for h := -27; h <= 27; h += 6 {
		_, off := wall.Add(time.Duration(h) * time.Hour).In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var matches []time.Time
	for off := range offsets {
		cand := wall.Add(-time.Duration(off) * time.Second)
		if sameWallClock(cand.In(loc), wall) {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 0:
		return time.Time{}, ErrNonexistentLocalTime
	case 1:
		return matches[0], nil
	default:
		return time.Time{}, ErrAmbiguousLocalTime
	}
}

// sameWallClock reports whether two times show the same calendar date
// and clock reading, ignoring location.
func sameWallClock(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() &&
		a.Second() == b.Second() && a.Nanosecond() == b.Nanosecond()
}
