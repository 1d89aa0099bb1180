// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

// Ballot is one voter's ranking plus its current transfer weight.
//
// The ranking is never modified. A cursor marks the active head; advancing
// the ballot moves the cursor forward instead of trimming the slice, so the
// voter's full ranking stays available for auditing.
type Ballot struct {
	ranking []string
	pos     int
	weight  float64
}

// NewBallot returns a full-weight ballot for the given ranking,
// most-preferred first. The slice is copied.
func NewBallot(ranking []string) *Ballot {
	r := make([]string, len(ranking))
	copy(r, ranking)
	return &Ballot{ranking: r, weight: 1.0}
}

// Ranking returns the ranking as originally cast.
func (b *Ballot) Ranking() []string {
	r := make([]string, len(b.ranking))
	copy(r, b.ranking)
	return r
}

// Remaining returns the preferences from the active head onward.
func (b *Ballot) Remaining() []string {
	if b.pos >= len(b.ranking) {
		return nil
	}
	r := make([]string, len(b.ranking)-b.pos)
	copy(r, b.ranking[b.pos:])
	return r
}

// Head returns the currently active preference, or "" for an empty ballot.
func (b *Ballot) Head() string {
	if b.pos >= len(b.ranking) {
		return ""
	}
	return b.ranking[b.pos]
}

// Weight returns the ballot's current transfer weight.
func (b *Ballot) Weight() float64 {
	return b.weight
}

// AdvancePastIneligible drops leading preferences for which ineligible
// reports true, stopping once the head is eligible or only one preference
// is left. A ballot left with a single ineligible preference is exhausted
// and keeps that preference as its head.
func (b *Ballot) AdvancePastIneligible(ineligible func(name string) bool) {
	for len(b.ranking)-b.pos > 1 && ineligible(b.ranking[b.pos]) {
		b.pos++
	}
}
