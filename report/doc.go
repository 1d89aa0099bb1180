// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders a finished (or failed) count as plain text: a short
// summary header followed by the round-by-round log.
package report
