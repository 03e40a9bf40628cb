package timeconv

import (
	"errors"
	"fmt"
)

// Parse failures callers can branch on with errors.Is. Malformed input
// carries the underlying *time.ParseError instead.
var (
	// ErrMissingTimezone reports a string without the numeric offset
	// the HasTz policy requires.
	ErrMissingTimezone = errors.New("missing numeric timezone offset")

	// ErrAmbiguousLocalTime reports a wall-clock time that occurs twice
	// in the local zone (fall-back DST transition).
	ErrAmbiguousLocalTime = errors.New("ambiguous local time")

	// ErrNonexistentLocalTime reports a wall-clock time skipped by the
	// local zone (spring-forward DST transition).
	ErrNonexistentLocalTime = errors.New("nonexistent local time")
)

// ParseError wraps a failure from ParseToUnixMillis with the input that
// caused it.
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Input, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
