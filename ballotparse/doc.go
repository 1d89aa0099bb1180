// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballotparse reads ranked ballots from plain text.

# Format

Tokens are separated by whitespace and consumed in pairs; each pair is one
candidate name ("first last"). The first non-blank line is the roster and
every later non-blank line is one ballot, most-preferred first:

	Ann Lee Bo Chan Cy Diaz
	Ann Lee Bo Chan
	Cy Diaz
	Bo Chan Ann Lee Cy Diaz

Blank lines are skipped.

# Supplied roster

When candidate names come from elsewhere, ParseBallots treats every line as
ballot data:

	e, err := ballotparse.ParseBallots(r, []string{"Ann Lee", "Bo Chan"})

# Errors

A line with an odd number of tokens fails the whole parse with a *LineError
wrapping ErrMalformedRosterLine or ErrMalformedBallotLine. Ballot names are
not checked against the roster here; the count skips names it does not know.
*/
package ballotparse
