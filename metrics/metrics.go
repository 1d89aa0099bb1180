// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/quickly-count/stv"
)

// Outcome labels for tabulations_total.
const (
	OutcomeComplete     = "complete"
	OutcomeInsufficient = "insufficient_candidates"
	OutcomeRoundLimit   = "round_limit"
	OutcomeError        = "error"
)

// Collector records the outcome of finished counts.
type Collector interface {
	RecordTabulation(res stv.Result, err error)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordTabulation(stv.Result, error) {}

// Prometheus is a Collector backed by Prometheus metrics.
type Prometheus struct {
	tabulations *prometheus.CounterVec
	rounds      prometheus.Histogram
	unknown     prometheus.Counter
	exhausted   prometheus.Histogram
}

var _ Collector = (*Prometheus)(nil)

// NewPrometheus creates and registers the count metrics. A nil registerer
// means prometheus.DefaultRegisterer; an empty namespace means "quickly_count".
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "quickly_count"
	}

	p := &Prometheus{
		tabulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tabulations_total",
			Help:      "Finished counts by outcome.",
		}, []string{"outcome"}),
		rounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rounds",
			Help:      "Rounds logged per count.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10), // 1 .. 19
		}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_preferences_total",
			Help:      "Ballot preferences skipped because they named no candidate, summed over rounds.",
		}),
		exhausted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "exhausted_weight",
			Help:      "Ballot weight exhausted by the final round of a count.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		}),
	}
	reg.MustRegister(p.tabulations, p.rounds, p.unknown, p.exhausted)

	return p
}

func (p *Prometheus) RecordTabulation(res stv.Result, err error) {
	p.tabulations.WithLabelValues(outcome(err)).Inc()
	p.rounds.Observe(float64(res.Log.Len()))
	p.unknown.Add(float64(res.Skipped()))

	if rounds := res.Rounds(); len(rounds) > 0 {
		p.exhausted.Observe(rounds[len(rounds)-1].Exhausted)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeComplete
	case errors.Is(err, stv.ErrInsufficientCandidates):
		return OutcomeInsufficient
	case errors.Is(err, stv.ErrRoundLimit):
		return OutcomeRoundLimit
	default:
		return OutcomeError
	}
}
