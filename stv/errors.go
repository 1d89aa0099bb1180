// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "errors"

var (
	// ErrInvalidSeats is returned when a count is asked to fill fewer than one seat.
	ErrInvalidSeats = errors.New("seats must be at least 1")

	// ErrNoCandidates is returned when the roster is empty.
	ErrNoCandidates = errors.New("roster has no candidates")

	// ErrDuplicateCandidate is returned when two roster names are equal ignoring case.
	ErrDuplicateCandidate = errors.New("duplicate candidate name")

	// ErrEmptyActiveCandidateSet is returned when a round must pick a leading
	// or trailing candidate but none is still active.
	ErrEmptyActiveCandidateSet = errors.New("no active candidates")

	// ErrInsufficientCandidates is returned when the remaining candidates can
	// no longer fill the requested number of seats.
	ErrInsufficientCandidates = errors.New("not enough candidates to fill seats")

	// ErrRoundLimit is returned when the count reaches its round ceiling
	// before every seat is filled.
	ErrRoundLimit = errors.New("round limit reached")
)
