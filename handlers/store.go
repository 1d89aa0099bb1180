// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-count/db"
	"github.com/danielhkuo/quickly-count/models"
	"github.com/danielhkuo/quickly-count/stv"
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// querier is satisfied by *sql.DB and *sql.Tx
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func insertTabulation(q querier, dbType string, t models.Tabulation) error {
	_, err := q.Exec(db.Rebind(dbType, `
		INSERT INTO tabulation (id, title, seats, quota, ballot_count, round_count, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), t.ID, t.Title, t.Seats, t.Quota, t.BallotCount, t.RoundCount, t.Status, t.Error,
		t.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert tabulation: %w", err)
	}

	for _, c := range t.Candidates {
		_, err := q.Exec(db.Rebind(dbType, `
			INSERT INTO tabulation_candidate (tabulation_id, position, name, status)
			VALUES (?, ?, ?, ?)
		`), t.ID, c.Position, c.Name, c.Status)
		if err != nil {
			return fmt.Errorf("insert candidate %q: %w", c.Name, err)
		}
	}

	for i, name := range t.Winners {
		_, err := q.Exec(db.Rebind(dbType, `
			INSERT INTO tabulation_winner (tabulation_id, seat, name)
			VALUES (?, ?, ?)
		`), t.ID, i+1, name)
		if err != nil {
			return fmt.Errorf("insert winner %q: %w", name, err)
		}
	}

	for _, round := range t.Rounds {
		payload, err := json.Marshal(round)
		if err != nil {
			return fmt.Errorf("encode round %d: %w", round.Number, err)
		}
		_, err = q.Exec(db.Rebind(dbType, `
			INSERT INTO tabulation_round (tabulation_id, round_number, payload)
			VALUES (?, ?, ?)
		`), t.ID, round.Number, string(payload))
		if err != nil {
			return fmt.Errorf("insert round %d: %w", round.Number, err)
		}
	}

	return nil
}

// loadTabulation returns sql.ErrNoRows when id is unknown.
func loadTabulation(q querier, dbType, id string) (models.Tabulation, error) {
	t := models.Tabulation{Method: models.MethodSTV}

	row := q.QueryRow(db.Rebind(dbType, `
		SELECT id, title, seats, quota, ballot_count, round_count, status, error, created_at
		FROM tabulation
		WHERE id = ?
	`), id)
	summary, err := scanSummary(row)
	if err != nil {
		return t, err
	}
	t.TabulationSummary = summary

	if t.Candidates, err = loadCandidates(q, dbType, id); err != nil {
		return t, err
	}
	if t.Winners, err = loadWinners(q, dbType, id); err != nil {
		return t, err
	}
	if t.Rounds, err = loadRounds(q, dbType, id); err != nil {
		return t, err
	}

	return t, nil
}

func listTabulations(q querier, dbType string) ([]models.TabulationSummary, error) {
	rows, err := q.Query(db.Rebind(dbType, `
		SELECT id, title, seats, quota, ballot_count, round_count, status, error, created_at
		FROM tabulation
		ORDER BY created_at DESC, id
	`))
	if err != nil {
		return nil, fmt.Errorf("query tabulations: %w", err)
	}
	defer rows.Close()

	out := []models.TabulationSummary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// deleteTabulation reports whether a tabulation was removed.
func deleteTabulation(q querier, dbType, id string) (bool, error) {
	// Children first; SQLite leaves foreign keys unenforced by default
	for _, table := range []string{"tabulation_round", "tabulation_winner", "tabulation_candidate"} {
		if _, err := q.Exec(db.Rebind(dbType, "DELETE FROM "+table+" WHERE tabulation_id = ?"), id); err != nil {
			return false, fmt.Errorf("delete from %s: %w", table, err)
		}
	}

	res, err := q.Exec(db.Rebind(dbType, "DELETE FROM tabulation WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("delete tabulation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(s scanner) (models.TabulationSummary, error) {
	var (
		sum       models.TabulationSummary
		errText   sql.NullString
		createdAt string
	)
	err := s.Scan(&sum.ID, &sum.Title, &sum.Seats, &sum.Quota, &sum.BallotCount,
		&sum.RoundCount, &sum.Status, &errText, &createdAt)
	if err != nil {
		return sum, err
	}

	if errText.Valid {
		sum.Error = &errText.String
	}
	sum.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return sum, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	return sum, nil
}

func loadCandidates(q querier, dbType, id string) ([]models.Candidate, error) {
	rows, err := q.Query(db.Rebind(dbType, `
		SELECT position, name, status
		FROM tabulation_candidate
		WHERE tabulation_id = ?
		ORDER BY position
	`), id)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.Position, &c.Name, &c.Status); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func loadWinners(q querier, dbType, id string) ([]string, error) {
	rows, err := q.Query(db.Rebind(dbType, `
		SELECT name
		FROM tabulation_winner
		WHERE tabulation_id = ?
		ORDER BY seat
	`), id)
	if err != nil {
		return nil, fmt.Errorf("query winners: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}

	return out, rows.Err()
}

func loadRounds(q querier, dbType, id string) ([]stv.Round, error) {
	rows, err := q.Query(db.Rebind(dbType, `
		SELECT payload
		FROM tabulation_round
		WHERE tabulation_id = ?
		ORDER BY round_number
	`), id)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	out := []stv.Round{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var round stv.Round
		if err := json.Unmarshal([]byte(payload), &round); err != nil {
			return nil, fmt.Errorf("decode round: %w", err)
		}
		out = append(out, round)
	}

	return out, rows.Err()
}
