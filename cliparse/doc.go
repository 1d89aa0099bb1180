// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Modes

With -f the program counts one ballot file and exits (count mode). Without
it the program serves the tabulation API (server mode).

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type (sqlite or postgres)
	--admin-salt   Admin key salt
	-f             Ballot file to count
	-c             Comma-separated candidate names; the ballot file then has no roster line
	-s             Number of seats
	--max-rounds   Round ceiling (0 disables it)
	-o             Save the count report to a file
	--title        Report title
	-v             Debug logging
	--env          Path to a .env file (default .env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt
	SEATS          → -s
	MAX_ROUNDS     → --max-rounds
	LOG_LEVEL=debug → -v

Variables from the .env file are loaded first but never replace ones already
set. CLI flags take precedence over both.

# Validation

In server mode ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_KEY_SALT must be provided

In both modes seats must be at least 1, the round ceiling must not be
negative and the database type must be sqlite or postgres.
*/
package cliparse
