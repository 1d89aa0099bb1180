// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stv tabulates ranked ballots with a multi-seat Single Transferable
Vote count using a fixed Droop quota.

# Counting

A Count owns one roster and one ballot pool:

	count, err := stv.NewCount(roster, ballots, seats)
	if err != nil {
		return err
	}
	res, err := count.Run()

The quota is floor(ballots/(seats+1)) + 1 and never changes. Each round:

 1. Every ballot is assigned to the candidate its head preference names
    (case-insensitive). Heads naming no candidate are skipped.
 2. Active tallies are summed; elected candidates count at the quota;
    ballots held by eliminated candidates are exhausted.
 3. The round is appended to the RoundLog.
 4. The leading active candidate is elected if it reaches the quota and its
    surplus is spread evenly over its ballots. Otherwise the trailing active
    candidate is eliminated. Ties go to the earlier roster position.
 5. Every ballot advances past preferences that are no longer active.

# Errors

Run returns the Result even when it fails, so the rounds logged before the
failure can still be reported. Failures wrap ErrInsufficientCandidates,
ErrEmptyActiveCandidateSet or ErrRoundLimit.

# Display values

Values in the RoundLog are rounded to three decimal places. Quota decisions
use full precision. An elected candidate is always reported at the quota.
*/
package stv
