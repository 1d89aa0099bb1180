// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import (
	"reflect"
	"testing"
)

func TestNewBallot(t *testing.T) {
	ranking := []string{"Ann Lee", "Bo Chan"}
	b := NewBallot(ranking)
	ranking[0] = "changed"

	if b.Head() != "Ann Lee" {
		t.Errorf("Head() = %q, want %q", b.Head(), "Ann Lee")
	}
	if b.Weight() != 1.0 {
		t.Errorf("Weight() = %v, want 1", b.Weight())
	}
}

func TestBallotEmpty(t *testing.T) {
	b := NewBallot(nil)
	if b.Head() != "" {
		t.Errorf("Head() = %q, want empty", b.Head())
	}
	if b.Remaining() != nil {
		t.Errorf("Remaining() = %v, want nil", b.Remaining())
	}
	b.AdvancePastIneligible(func(string) bool { return true })
}

func TestAdvancePastIneligible(t *testing.T) {
	tests := []struct {
		name       string
		ranking    []string
		ineligible map[string]bool
		wantHead   string
		wantRemain []string
	}{
		{
			name:       "head eligible",
			ranking:    []string{"A", "B"},
			ineligible: map[string]bool{},
			wantHead:   "A",
			wantRemain: []string{"A", "B"},
		},
		{
			name:       "skips several",
			ranking:    []string{"A", "B", "C"},
			ineligible: map[string]bool{"A": true, "B": true},
			wantHead:   "C",
			wantRemain: []string{"C"},
		},
		{
			name:       "keeps last entry",
			ranking:    []string{"A", "B"},
			ineligible: map[string]bool{"A": true, "B": true},
			wantHead:   "B",
			wantRemain: []string{"B"},
		},
		{
			name:       "single entry untouched",
			ranking:    []string{"A"},
			ineligible: map[string]bool{"A": true},
			wantHead:   "A",
			wantRemain: []string{"A"},
		},
		{
			name:       "stops at eligible middle",
			ranking:    []string{"A", "B", "C"},
			ineligible: map[string]bool{"A": true, "C": true},
			wantHead:   "B",
			wantRemain: []string{"B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBallot(tt.ranking)
			b.AdvancePastIneligible(func(name string) bool { return tt.ineligible[name] })

			if b.Head() != tt.wantHead {
				t.Errorf("Head() = %q, want %q", b.Head(), tt.wantHead)
			}
			if !reflect.DeepEqual(b.Remaining(), tt.wantRemain) {
				t.Errorf("Remaining() = %v, want %v", b.Remaining(), tt.wantRemain)
			}
			if !reflect.DeepEqual(b.Ranking(), tt.ranking) {
				t.Errorf("Ranking() = %v, want original %v", b.Ranking(), tt.ranking)
			}
		})
	}
}
