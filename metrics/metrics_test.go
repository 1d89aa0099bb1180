// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/quickly-count/stv"
)

func runCount(t *testing.T, rankings ...[]string) (stv.Result, error) {
	t.Helper()

	ballots := make([]*stv.Ballot, len(rankings))
	for i, r := range rankings {
		ballots[i] = stv.NewBallot(r)
	}
	count, err := stv.NewCount([]string{"A", "B", "C"}, ballots, 1)
	if err != nil {
		t.Fatalf("NewCount() error = %v", err)
	}
	return count.Run()
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeComplete},
		{fmt.Errorf("round 3: %w", stv.ErrInsufficientCandidates), OutcomeInsufficient},
		{stv.ErrRoundLimit, OutcomeRoundLimit},
		{errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		if got := outcome(tt.err); got != tt.want {
			t.Errorf("outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestPrometheusRecordTabulation(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "")

	res, err := runCount(t, []string{"A"}, []string{"A"}, []string{"Nobody"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	p.RecordTabulation(res, err)

	res, err = runCount(t, []string{"A"}, []string{"B"}, []string{"B"}, []string{"C"}, []string{"C"})
	if !errors.Is(err, stv.ErrInsufficientCandidates) {
		t.Fatalf("Run() error = %v, want ErrInsufficientCandidates", err)
	}
	p.RecordTabulation(res, err)

	if got := testutil.ToFloat64(p.tabulations.WithLabelValues(OutcomeComplete)); got != 1 {
		t.Errorf("complete tabulations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.tabulations.WithLabelValues(OutcomeInsufficient)); got != 1 {
		t.Errorf("insufficient tabulations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.unknown); got != 1 {
		t.Errorf("unknown preferences = %v, want 1", got)
	}
	// two outcome series plus one each for the other metrics
	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 5 {
		t.Errorf("gathered series = %d, want 5", n)
	}
}

func TestNop(t *testing.T) {
	var c Collector = Nop{}
	c.RecordTabulation(stv.Result{}, nil)
}
