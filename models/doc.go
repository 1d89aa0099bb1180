// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateTabulationRequest: title, seats, candidates (optional), ballots (raw text)

# Response Types

  - CreateTabulationResponse: tabulation_id, admin_key, tabulation
  - ListTabulationsResponse: tabulations
  - DeleteTabulationResponse: tabulation_id, message
  - ErrorResponse: error, message

# Domain Types

  - TabulationSummary: stored count metadata
  - Tabulation: summary plus candidates, winners and the round log
  - Candidate: roster position, name and final status

Round records are stv.Round values and are stored and served as JSON.

# Constants

Status values:

	StatusComplete = "complete"
	StatusFailed   = "failed"

Counting method:

	MethodSTV = "stv-droop"
*/
package models
