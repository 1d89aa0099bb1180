// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/quickly-count/stv"
)

// Tabulation status constants
const (
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Counting method constants
const (
	MethodSTV = "stv-droop"
)

// Request types

// Candidates is optional; when empty the first ballot line is the roster.
type CreateTabulationRequest struct {
	Title      string   `json:"title"`
	Seats      int      `json:"seats"`
	Candidates []string `json:"candidates,omitempty"`
	Ballots    string   `json:"ballots"`
}

// Response types

type CreateTabulationResponse struct {
	TabulationID string     `json:"tabulation_id"`
	AdminKey     string     `json:"admin_key"`
	Tabulation   Tabulation `json:"tabulation"`
}

type ListTabulationsResponse struct {
	Tabulations []TabulationSummary `json:"tabulations"`
}

type DeleteTabulationResponse struct {
	TabulationID string `json:"tabulation_id"`
	Message      string `json:"message"`
}

// Domain types

type TabulationSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Seats       int       `json:"seats"`
	Quota       int       `json:"quota"`
	BallotCount int       `json:"ballot_count"`
	RoundCount  int       `json:"round_count"`
	Status      string    `json:"status"`
	Error       *string   `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Tabulation struct {
	TabulationSummary
	Method     string      `json:"method"`
	Candidates []Candidate `json:"candidates"`
	Winners    []string    `json:"winners"`
	Rounds     []stv.Round `json:"rounds"`
}

type Candidate struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Status   string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
