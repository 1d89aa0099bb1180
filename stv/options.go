// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "log/slog"

// DefaultMaxRounds is the round ceiling applied unless WithMaxRounds says otherwise.
const DefaultMaxRounds = 20

// Option configures a Count.
type Option func(*Count)

// WithLogger sets the logger used for per-round debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Count) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxRounds sets the round ceiling. Zero disables it.
func WithMaxRounds(n int) Option {
	return func(c *Count) {
		if n >= 0 {
			c.maxRounds = n
		}
	}
}
