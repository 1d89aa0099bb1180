// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotparse

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRosterLine is returned when the roster line has an unpaired token.
	ErrMalformedRosterLine = errors.New("malformed roster line: odd number of name tokens")

	// ErrMalformedBallotLine is returned when a ballot line has an unpaired token.
	ErrMalformedBallotLine = errors.New("malformed ballot line: odd number of name tokens")

	// ErrEmptyInput is returned when no roster line is found.
	ErrEmptyInput = errors.New("no roster line in input")
)

// LineError ties a parse failure to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
