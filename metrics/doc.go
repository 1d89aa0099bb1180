// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics records count outcomes.

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "")
	collector.RecordTabulation(res, err)

Exported series (namespace quickly_count):

  - tabulations_total{outcome}: complete, insufficient_candidates, round_limit, error
  - rounds: rounds logged per count
  - unknown_preferences_total: preferences naming no candidate, summed over rounds
  - exhausted_weight: exhausted ballot weight at the last logged round

Use Nop when metrics are not wanted.
*/
package metrics
