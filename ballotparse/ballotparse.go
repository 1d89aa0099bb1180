// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danielhkuo/quickly-count/stv"
)

// maxLineBytes bounds a single roster or ballot line.
const maxLineBytes = 1 << 20

// Election is the parsed input of a count.
type Election struct {
	Candidates []string
	Ballots    []*stv.Ballot
}

// Rankings returns each ballot's ranking as parsed.
func (e Election) Rankings() [][]string {
	out := make([][]string, len(e.Ballots))
	for i, b := range e.Ballots {
		out[i] = b.Ranking()
	}
	return out
}

// Parse reads a roster from the first non-blank line and one ballot from
// every following non-blank line. Every name is exactly two tokens.
func Parse(r io.Reader) (Election, error) {
	var e Election
	rosterSeen := false

	err := scanLines(r, func(lineNo int, fields []string) error {
		if !rosterSeen {
			names, err := pairNames(fields)
			if err != nil {
				return &LineError{Line: lineNo, Err: ErrMalformedRosterLine}
			}
			e.Candidates = names
			rosterSeen = true
			return nil
		}
		return e.addBallot(lineNo, fields)
	})
	if err != nil {
		return Election{}, err
	}
	if !rosterSeen {
		return Election{}, ErrEmptyInput
	}

	return e, nil
}

// ParseBallots treats every non-blank line as a ballot and uses the given
// candidate names as the roster.
func ParseBallots(r io.Reader, candidates []string) (Election, error) {
	e := Election{Candidates: append([]string(nil), candidates...)}

	err := scanLines(r, func(lineNo int, fields []string) error {
		return e.addBallot(lineNo, fields)
	})
	if err != nil {
		return Election{}, err
	}

	return e, nil
}

// ParseFile opens path and parses it. With a non-empty candidates list the
// file holds ballots only.
func ParseFile(path string, candidates []string) (Election, error) {
	f, err := os.Open(path)
	if err != nil {
		return Election{}, fmt.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()

	e, err := Read(f, candidates)
	if err != nil {
		return Election{}, fmt.Errorf("%s: %w", path, err)
	}

	return e, nil
}

// Read parses ballots only when candidates is non-empty, otherwise a roster
// line followed by ballots.
func Read(r io.Reader, candidates []string) (Election, error) {
	if len(candidates) > 0 {
		return ParseBallots(r, candidates)
	}
	return Parse(r)
}

func (e *Election) addBallot(lineNo int, fields []string) error {
	ranking, err := pairNames(fields)
	if err != nil {
		return &LineError{Line: lineNo, Err: ErrMalformedBallotLine}
	}
	e.Ballots = append(e.Ballots, stv.NewBallot(ranking))
	return nil
}

// scanLines calls fn with the whitespace-separated tokens of every
// non-blank line.
func scanLines(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read ballots: %w", err)
	}

	return nil
}

// pairNames joins consecutive token pairs into "first last" names.
func pairNames(fields []string) ([]string, error) {
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%d tokens", len(fields))
	}
	names := make([]string, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		names = append(names, fields[i]+" "+fields[i+1])
	}
	return names, nil
}
