// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import (
	"fmt"
	"log/slog"
)

// Result is the outcome of a count. On error it still carries every round
// logged before the failure.
type Result struct {
	Winners []string `json:"winners"`
	Quota   int      `json:"quota"`
	Ballots int      `json:"ballots"`
	Log     RoundLog `json:"-"`
}

// Rounds is shorthand for r.Log.Rounds().
func (r Result) Rounds() []Round {
	return r.Log.Rounds()
}

// Skipped sums the unknown-candidate skips across all rounds.
func (r Result) Skipped() int {
	n := 0
	for _, round := range r.Log.rounds {
		n += round.Skipped
	}
	return n
}

// Count is a single STV count. It owns its roster and ballot pool; build a
// new Count for every tabulation.
type Count struct {
	candidates []*Candidate
	byKey      map[string]*Candidate
	ballots    []*Ballot
	seats      int
	quota      int

	winners     []*Candidate
	transferred int // winners whose surplus has been redistributed
	round       int
	previous    []float64
	exhausted   float64
	log         RoundLog

	maxRounds int
	logger    *slog.Logger
	done      bool
	err       error
}

// NewCount validates the roster and computes the Droop quota
// floor(len(ballots)/(seats+1)) + 1, fixed for the whole count.
func NewCount(roster []string, ballots []*Ballot, seats int, opts ...Option) (*Count, error) {
	if seats < 1 {
		return nil, ErrInvalidSeats
	}
	if len(roster) == 0 {
		return nil, ErrNoCandidates
	}
	if seats > len(roster) {
		return nil, fmt.Errorf("%w: %d seats, %d candidates", ErrInsufficientCandidates, seats, len(roster))
	}

	c := &Count{
		byKey:     make(map[string]*Candidate, len(roster)),
		ballots:   ballots,
		seats:     seats,
		quota:     len(ballots)/(seats+1) + 1,
		round:     1,
		previous:  make([]float64, len(roster)),
		maxRounds: DefaultMaxRounds,
		logger:    slog.Default(),
	}
	for _, name := range roster {
		key := nameKey(name)
		if _, ok := c.byKey[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCandidate, name)
		}
		cand := newCandidate(name)
		c.candidates = append(c.candidates, cand)
		c.byKey[key] = cand
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Count) Quota() int { return c.quota }

// Candidates returns the roster in its original order.
func (c *Count) Candidates() []*Candidate {
	return append([]*Candidate(nil), c.candidates...)
}

// Winners returns the elected candidates' names in order of election.
func (c *Count) Winners() []string {
	names := make([]string, len(c.winners))
	for i, w := range c.winners {
		names[i] = w.name
	}
	return names
}

// PoolWeight sums the weight of every ballot in the pool. It equals the
// original ballot count less one quota per winner whose surplus was
// transferred.
func (c *Count) PoolWeight() float64 {
	sum := 0.0
	for _, b := range c.ballots {
		sum += b.weight
	}
	return sum
}

// TransferredWinners is the number of winners whose surplus has been
// redistributed into the pool.
func (c *Count) TransferredWinners() int {
	return c.transferred
}

// Exhausted is the weight held by eliminated candidates as of the last round.
func (c *Count) Exhausted() float64 {
	return c.exhausted
}

// Log returns the rounds recorded so far.
func (c *Count) Log() *RoundLog {
	return &c.log
}

// Run counts rounds until every seat is filled. A Count runs once; later
// calls return the same result and error.
func (c *Count) Run() (Result, error) {
	if c.done {
		return c.result(), c.err
	}
	c.err = c.run()
	c.done = true
	return c.result(), c.err
}

func (c *Count) run() error {
	for {
		if c.maxRounds > 0 && c.round > c.maxRounds {
			return fmt.Errorf("%w: %d rounds without filling %d seats", ErrRoundLimit, c.maxRounds, c.seats)
		}
		finished, err := c.step()
		if err != nil {
			return fmt.Errorf("round %d: %w", c.round, err)
		}
		if finished {
			return nil
		}
		c.round++
	}
}

func (c *Count) result() Result {
	return Result{
		Winners: c.Winners(),
		Quota:   c.quota,
		Ballots: len(c.ballots),
		Log:     RoundLog{rounds: c.log.Rounds()},
	}
}

// step runs one round and reports whether all seats are now filled.
func (c *Count) step() (bool, error) {
	skipped := c.tally()
	total := c.accountTotals()
	c.logRound(total, skipped)

	leader, err := c.leading()
	if err != nil {
		return false, err
	}

	if leader.Tally() >= float64(c.quota) {
		return c.elect(leader), nil
	}
	return false, c.eliminate()
}

// tally assigns every ballot to the candidate its head names. Heads that
// name no candidate are skipped for this round and counted.
func (c *Count) tally() int {
	skipped := 0
	for _, b := range c.ballots {
		cand, ok := c.byKey[nameKey(b.Head())]
		if !ok {
			skipped++
			c.logger.Debug("ballot preference names no candidate", "round", c.round, "name", b.Head())
			continue
		}
		cand.assign(b)
	}
	return skipped
}

// accountTotals sums counted votes. Elected candidates count at the quota;
// ballots held by eliminated candidates are exhausted and released.
func (c *Count) accountTotals() float64 {
	total := 0.0
	exhausted := 0.0
	for _, cand := range c.candidates {
		switch cand.status {
		case Active:
			total += cand.Tally()
		case Elected:
			total += float64(c.quota)
		case Eliminated:
			exhausted += cand.Tally()
			cand.ClearAssignments()
		}
	}
	c.exhausted = exhausted
	return total
}

func (c *Count) logRound(total float64, skipped int) {
	r := Round{
		Number:       c.round,
		WinnersSoFar: c.Winners(),
		Exhausted:    Round3(c.exhausted),
		TotalVotes:   Round3(total),
		Quota:        c.quota,
		Skipped:      skipped,
	}
	r.addLine("%s", winnersHeader(r.WinnersSoFar))
	r.addLine("Ballots Exhausted: %s", FormatVotes(c.exhausted))
	r.addLine("Round %d: %s", c.round, FormatVotes(total))

	current := make([]float64, len(c.candidates))
	for i, cand := range c.candidates {
		current[i] = Round3(cand.DisplayTally(c.quota))
		delta := Round3(current[i] - c.previous[i])
		r.Tallies = append(r.Tallies, CandidateTally{
			Name:   cand.name,
			Status: cand.status.String(),
			Votes:  current[i],
			Delta:  delta,
		})
		r.addLine("%s: %s %s", cand.name, FormatVotes(current[i]), formatDelta(delta))
	}
	c.previous = current

	r.addLine("Quota: %d", c.quota)
	c.log.append(r)

	c.logger.Debug("round counted",
		"round", c.round,
		"total", r.TotalVotes,
		"exhausted", r.Exhausted,
		"skipped", skipped,
	)
}

// leading picks the active candidate with the highest tally. Ties go to the
// earlier roster position.
func (c *Count) leading() (*Candidate, error) {
	return c.pick(func(a, b float64) bool { return a > b })
}

// trailing picks the active candidate with the lowest tally. Ties go to the
// earlier roster position.
func (c *Count) trailing() (*Candidate, error) {
	return c.pick(func(a, b float64) bool { return a < b })
}

func (c *Count) pick(better func(a, b float64) bool) (*Candidate, error) {
	var best *Candidate
	bestTally := 0.0
	for _, cand := range c.candidates {
		if cand.status != Active {
			continue
		}
		t := cand.Tally()
		if best == nil || better(t, bestTally) {
			best, bestTally = cand, t
		}
	}
	if best == nil {
		return nil, ErrEmptyActiveCandidateSet
	}
	return best, nil
}

func (c *Count) activeCount() int {
	n := 0
	for _, cand := range c.candidates {
		if cand.status == Active {
			n++
		}
	}
	return n
}

// elect marks the winner and, if seats remain, transfers its surplus.
func (c *Count) elect(winner *Candidate) bool {
	winner.status = Elected
	c.winners = append(c.winners, winner)
	r := c.log.last()
	r.Elected = winner.name

	c.log.announce("Winner this round: %s", winner.name)
	c.logger.Debug("candidate elected", "round", c.round, "name", winner.name)

	if len(c.winners) == c.seats {
		r.Final = true
		for _, w := range c.winners {
			c.log.announce("%s has won", w.name)
		}
		c.clearAll()
		return true
	}

	surplus := winner.Tally() - float64(c.quota)
	r.Surplus = Round3(surplus)
	c.log.announce("Redistribute: %s", FormatVotes(surplus))

	winner.RedistributeSurplus(surplus)
	c.transferred++
	c.advanceAll()
	c.clearAll()
	return false
}

// eliminate drops the trailing active candidate.
func (c *Count) eliminate() error {
	loser, err := c.trailing()
	if err != nil {
		return err
	}
	if c.activeCount()-1+len(c.winners) < c.seats {
		return fmt.Errorf("%w: eliminating %s leaves %d of %d seats unfillable",
			ErrInsufficientCandidates, loser.name, c.seats-len(c.winners), c.seats)
	}

	loser.status = Eliminated
	c.log.last().Eliminated = loser.name
	c.log.announce("Eliminated: %s", loser.name)
	c.logger.Debug("candidate eliminated", "round", c.round, "name", loser.name)

	c.advanceAll()
	c.clearAll()
	return nil
}

// ineligible reports whether name is a known candidate that is no longer
// active. Names matching no candidate are left in place.
func (c *Count) ineligible(name string) bool {
	cand, ok := c.byKey[nameKey(name)]
	return ok && cand.status != Active
}

func (c *Count) advanceAll() {
	for _, b := range c.ballots {
		b.AdvancePastIneligible(c.ineligible)
	}
}

func (c *Count) clearAll() {
	for _, cand := range c.candidates {
		cand.ClearAssignments()
	}
}
