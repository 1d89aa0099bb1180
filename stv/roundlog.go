// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// CandidateTally is one candidate's line in a round.
type CandidateTally struct {
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Votes  float64 `json:"votes"`
	Delta  float64 `json:"delta"`
}

// Round is the audit record of one counting round. Lines holds the
// human-readable form; the other fields carry the same facts.
type Round struct {
	Number       int              `json:"number"`
	WinnersSoFar []string         `json:"winners_so_far"`
	Exhausted    float64          `json:"exhausted"`
	TotalVotes   float64          `json:"total_votes"`
	Tallies      []CandidateTally `json:"tallies"`
	Quota        int              `json:"quota"`
	Skipped      int              `json:"skipped"`
	Elected      string           `json:"elected,omitempty"`
	Surplus      float64          `json:"surplus,omitempty"`
	Eliminated   string           `json:"eliminated,omitempty"`
	Final        bool             `json:"final,omitempty"`
	Lines        []string         `json:"lines"`
}

func (r *Round) addLine(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// RoundLog is the ordered, append-only record of a count.
type RoundLog struct {
	rounds []Round
}

// NewRoundLog rebuilds a log from previously recorded rounds, such as
// rounds loaded from storage.
func NewRoundLog(rounds []Round) RoundLog {
	l := RoundLog{rounds: make([]Round, len(rounds))}
	copy(l.rounds, rounds)
	return l
}

func (l *RoundLog) append(r Round) {
	l.rounds = append(l.rounds, r)
}

// announce adds a line to the most recent round.
func (l *RoundLog) announce(format string, args ...any) {
	if len(l.rounds) == 0 {
		return
	}
	l.rounds[len(l.rounds)-1].addLine(format, args...)
}

func (l *RoundLog) last() *Round {
	if len(l.rounds) == 0 {
		return nil
	}
	return &l.rounds[len(l.rounds)-1]
}

// Rounds returns a copy of the logged rounds.
func (l RoundLog) Rounds() []Round {
	out := make([]Round, len(l.rounds))
	copy(out, l.rounds)
	return out
}

// Len returns the number of logged rounds.
func (l RoundLog) Len() int {
	return len(l.rounds)
}

// Lines returns each round's text lines.
func (l RoundLog) Lines() [][]string {
	out := make([][]string, len(l.rounds))
	for i, r := range l.rounds {
		out[i] = append([]string(nil), r.Lines...)
	}
	return out
}

// String renders the log with a blank line between rounds.
func (l RoundLog) String() string {
	var sb strings.Builder
	for i, r := range l.rounds {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range r.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Round3 rounds v to three decimal places, halves rounding up.
func Round3(v float64) float64 {
	r := math.Floor(v*1000+0.5) / 1000
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// FormatVotes prints a rounded vote value without trailing zeros.
func FormatVotes(v float64) string {
	return humanize.Ftoa(Round3(v))
}

func formatDelta(d float64) string {
	if d > 0 {
		return "(+" + FormatVotes(d) + ")"
	}
	return "(" + FormatVotes(d) + ")"
}

func winnersHeader(names []string) string {
	if len(names) == 0 {
		return "Winners so far: none"
	}
	return "Winners so far: " + strings.Join(names, ", ")
}
