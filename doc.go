// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for Quickly Count.

Quickly Count tabulates multi-seat elections with the single transferable
vote and a Droop quota fixed for the whole count. It runs either as a one
shot counter over a ballot file or as an HTTP API that stores counts.

# Counting a File

Pass a ballot file with -f. The first line lists the candidates, every
other line is one ballot in preference order, and every name is two
tokens:

	go run . -f ballots.txt -s 2
	go run . -f ballots.txt -s 2 -o reports/board.txt -title "Board 2025"

Use -c to give the roster on the command line; the file then holds
ballots only:

	go run . -f ballots.txt -c "Ann Lee,Bo Chan,Cy Diaz"

The report goes to stdout. A failed count still prints the rounds logged
before the failure and exits with status 1.

# Starting the Server

Without -f the API server starts:

	DATABASE_TYPE=sqlite DATABASE_URL=counts.db ADMIN_KEY_SALT=... go run .

# Configuration

Server settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC
  - PORT (-p): Server port (default: 3318)

Count settings:

  - SEATS (-s): Seats to fill (default: 1)
  - MAX_ROUNDS (-max-rounds): Round ceiling, 0 for none (default: 20)

Anything not set by flag or environment is read from .env (-env).
LOG_LEVEL=debug or -v enables debug logging.

# Architecture

  - stv: The count itself (ballots, candidates, rounds, log)
  - ballotparse: Ballot file parsing
  - report: Plain text reports
  - handlers: HTTP request handlers for stored tabulations
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and text helpers
  - models: Request/response types
  - metrics: Prometheus collectors
  - auth: Tabulation IDs and admin keys
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
