// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open registers and selects the driver by type:

	conn, err := db.Open("sqlite", "file:counts.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite is served by modernc.org/sqlite and PostgreSQL by github.com/lib/pq.

# Queries

Queries are written with ? placeholders and passed through Rebind, which
turns them into $1, $2, ... for PostgreSQL:

	row := conn.QueryRow(db.Rebind(dbType, "SELECT title FROM tabulation WHERE id = ?"), id)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - tabulation: one stored count (title, seats, quota, status, error)
  - tabulation_candidate: roster in order with each candidate's final status
  - tabulation_winner: winners in order of election
  - tabulation_round: one JSON round record per round

# Relationships

	tabulation 1──* tabulation_candidate
	tabulation 1──* tabulation_winner
	tabulation 1──* tabulation_round

Deletes remove child rows explicitly so they do not depend on SQLite's
foreign key pragma.
*/
package db
