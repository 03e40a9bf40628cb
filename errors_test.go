package timeconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorError(t *testing.T) {
	err := &ParseError{Input: "bogus", Err: ErrMissingTimezone}
	assert.Equal(t, `failed to parse "bogus": missing numeric timezone offset`, err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Input: "bogus", Err: ErrAmbiguousLocalTime}
	assert.ErrorIs(t, err, ErrAmbiguousLocalTime)
	assert.NotErrorIs(t, err, ErrNonexistentLocalTime)
}

func TestParseErrorImplementsError(t *testing.T) {
	var err error = &ParseError{Input: "x", Err: errors.New("boom")}
	assert.Equal(t, `failed to parse "x": boom`, err.Error())
}
