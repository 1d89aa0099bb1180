// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Count API.

# Handler Types

TabulationHandler runs STV counts and stores their outcomes. It is created
with the database, config and a metrics collector (nil records nothing):

	h := handlers.NewTabulationHandler(db, cfg, collector)

# Tabulation Lifecycle

	POST /tabulations              → CreateTabulation (returns admin_key)
	GET /tabulations               → ListTabulations (newest first)
	GET /tabulations/{id}          → GetTabulation
	GET /tabulations/{id}/report   → GetReport (text/plain)
	DELETE /tabulations/{id}       → DeleteTabulation

The request body carries the raw ballot text. Without a candidates list
the first line is the roster:

	{"title": "Board", "seats": 2, "ballots": "Ann Lee Bo Chan\nAnn Lee\n"}

Parse and roster errors are 400s. A count that fails part way (round
limit, too few candidates) is still stored with status "failed", its error
and every round logged before the failure.

Deleting requires the X-Admin-Key header returned on creation.

# Storage

Queries are written with ? placeholders and rebound for PostgreSQL, so the
same handlers run on SQLite and PostgreSQL. Rounds are stored as JSON text.
*/
package handlers
