// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Statements are kept to the subset SQLite and PostgreSQL share.
// Timestamps are RFC 3339 text.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS tabulation (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    seats INTEGER NOT NULL CHECK (seats >= 1),
    quota INTEGER NOT NULL,
    ballot_count INTEGER NOT NULL,
    round_count INTEGER NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('complete', 'failed')),
    error TEXT,
    created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_tabulation_created_at ON tabulation(created_at)`,

	`CREATE TABLE IF NOT EXISTS tabulation_candidate (
    tabulation_id TEXT NOT NULL REFERENCES tabulation(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    status TEXT NOT NULL,
    PRIMARY KEY (tabulation_id, position)
)`,

	`CREATE TABLE IF NOT EXISTS tabulation_winner (
    tabulation_id TEXT NOT NULL REFERENCES tabulation(id) ON DELETE CASCADE,
    seat INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (tabulation_id, seat)
)`,

	`CREATE TABLE IF NOT EXISTS tabulation_round (
    tabulation_id TEXT NOT NULL REFERENCES tabulation(id) ON DELETE CASCADE,
    round_number INTEGER NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (tabulation_id, round_number)
)`,
}
