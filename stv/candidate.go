// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "strings"

// Status is a candidate's position in the count lifecycle.
type Status int

const (
	Active Status = iota
	Eliminated
	Elected
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Eliminated:
		return "eliminated"
	case Elected:
		return "elected"
	default:
		return "unknown"
	}
}

// Candidate holds per-candidate counting state. Ballots are assigned to a
// candidate for one round only and cleared before the next.
type Candidate struct {
	name     string
	status   Status
	assigned []*Ballot
}

func newCandidate(name string) *Candidate {
	return &Candidate{name: name, status: Active}
}

// nameKey is the case-folded form used for all name matching.
func nameKey(name string) string {
	return strings.ToLower(name)
}

func (c *Candidate) Name() string   { return c.name }
func (c *Candidate) Status() Status { return c.status }

// Assigned returns the ballots attributed to the candidate this round.
func (c *Candidate) Assigned() []*Ballot {
	return c.assigned
}

func (c *Candidate) assign(b *Ballot) {
	c.assigned = append(c.assigned, b)
}

// Tally sums the weight of the assigned ballots at full precision.
func (c *Candidate) Tally() float64 {
	sum := 0.0
	for _, b := range c.assigned {
		sum += b.weight
	}
	return sum
}

// DisplayTally is the value reported in the round log. Elected candidates
// are pinned at the quota regardless of what they still hold.
func (c *Candidate) DisplayTally(quota int) float64 {
	if c.status == Elected {
		return float64(quota)
	}
	return c.Tally()
}

// RedistributeSurplus spreads surplus evenly over the assigned ballots.
func (c *Candidate) RedistributeSurplus(surplus float64) {
	if len(c.assigned) == 0 {
		return
	}
	w := surplus / float64(len(c.assigned))
	for _, b := range c.assigned {
		b.weight = w
	}
}

// ClearAssignments empties the candidate's ballots for the next round.
func (c *Candidate) ClearAssignments() {
	c.assigned = nil
}
