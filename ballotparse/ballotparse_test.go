// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotparse

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleInput = `Ann Lee Bo Chan Cy Diaz

Ann Lee Bo Chan
Cy Diaz
   
Bo Chan   Ann Lee	Cy Diaz
`

func TestParse(t *testing.T) {
	e, err := Parse(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantRoster := []string{"Ann Lee", "Bo Chan", "Cy Diaz"}
	if !reflect.DeepEqual(e.Candidates, wantRoster) {
		t.Errorf("Candidates = %v, want %v", e.Candidates, wantRoster)
	}

	wantBallots := [][]string{
		{"Ann Lee", "Bo Chan"},
		{"Cy Diaz"},
		{"Bo Chan", "Ann Lee", "Cy Diaz"},
	}
	if !reflect.DeepEqual(e.Rankings(), wantBallots) {
		t.Errorf("Rankings() = %v, want %v", e.Rankings(), wantBallots)
	}
	for i, b := range e.Ballots {
		if b.Weight() != 1 {
			t.Errorf("ballot %d weight = %v, want 1", i, b.Weight())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:     "odd roster",
			input:    "Ann Lee Bo\nAnn Lee\n",
			wantErr:  ErrMalformedRosterLine,
			wantLine: 1,
		},
		{
			name:     "odd ballot",
			input:    "Ann Lee Bo Chan\nAnn Lee\n\nBo Chan Ann\n",
			wantErr:  ErrMalformedBallotLine,
			wantLine: 4,
		},
		{
			name:    "empty input",
			input:   "\n  \n",
			wantErr: ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantLine == 0 {
				return
			}
			var lineErr *LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("Parse() error %T is not a *LineError", err)
			}
			if lineErr.Line != tt.wantLine {
				t.Errorf("LineError.Line = %d, want %d", lineErr.Line, tt.wantLine)
			}
		})
	}
}

func TestParseBallots(t *testing.T) {
	input := "Ann Lee Bo Chan\n\nZed Nobody\n"
	e, err := ParseBallots(strings.NewReader(input), []string{"Ann Lee", "Bo Chan"})
	if err != nil {
		t.Fatalf("ParseBallots() error = %v", err)
	}

	if len(e.Candidates) != 2 {
		t.Errorf("Candidates = %v, want supplied roster", e.Candidates)
	}
	// unknown names are kept for the count to skip
	want := [][]string{{"Ann Lee", "Bo Chan"}, {"Zed Nobody"}}
	if !reflect.DeepEqual(e.Rankings(), want) {
		t.Errorf("Rankings() = %v, want %v", e.Rankings(), want)
	}

	_, err = ParseBallots(strings.NewReader("Ann Lee Bo\n"), []string{"Ann Lee"})
	if !errors.Is(err, ErrMalformedBallotLine) {
		t.Errorf("ParseBallots() error = %v, want ErrMalformedBallotLine", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ballots.txt")
	if err := os.WriteFile(path, []byte(sampleInput), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	e, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(e.Candidates) != 3 || len(e.Ballots) != 3 {
		t.Errorf("ParseFile() = %d candidates, %d ballots, want 3 and 3", len(e.Candidates), len(e.Ballots))
	}

	// with a supplied roster the first line is a ballot too
	e, err = ParseFile(path, []string{"Ann Lee", "Bo Chan", "Cy Diaz"})
	if err != nil {
		t.Fatalf("ParseFile() with roster error = %v", err)
	}
	if len(e.Ballots) != 4 {
		t.Errorf("ParseFile() with roster = %d ballots, want 4", len(e.Ballots))
	}

	_, err = ParseFile(filepath.Join(dir, "missing.txt"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile() missing error = %v, want fs.ErrNotExist", err)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		candidates  []string
		wantRoster  int
		wantBallots int
	}{
		{"roster line", sampleInput, nil, 3, 3},
		{"supplied roster", "Ann Lee\nBo Chan Ann Lee\n", []string{"Ann Lee", "Bo Chan"}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Read(strings.NewReader(tt.input), tt.candidates)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if len(e.Candidates) != tt.wantRoster || len(e.Ballots) != tt.wantBallots {
				t.Errorf("Read() = %d candidates, %d ballots, want %d and %d",
					len(e.Candidates), len(e.Ballots), tt.wantRoster, tt.wantBallots)
			}
		})
	}
}
