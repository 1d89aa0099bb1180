// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-count/stv"
)

// Summary describes the count being reported.
type Summary struct {
	Title   string
	Ballots int
	Seats   int
}

// Write renders the summary header followed by the round log. countErr is
// the error returned by the count, if any; the partial log is still written.
func Write(w io.Writer, s Summary, res stv.Result, countErr error) error {
	bw := bufio.NewWriter(w)

	title := s.Title
	if title == "" {
		title = "Untitled count"
	}
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, strings.Repeat("=", len(title)))
	fmt.Fprintf(bw, "Ballots: %s\n", humanize.Comma(int64(s.Ballots)))
	fmt.Fprintf(bw, "Seats: %d\n", s.Seats)
	fmt.Fprintf(bw, "Quota: %s\n", humanize.Comma(int64(res.Quota)))
	fmt.Fprintf(bw, "Rounds: %d\n", res.Log.Len())
	if skipped := res.Skipped(); skipped > 0 {
		fmt.Fprintf(bw, "Unknown preferences skipped: %s\n", humanize.Comma(int64(skipped)))
	}

	if countErr != nil {
		fmt.Fprintf(bw, "Count failed: %v\n", countErr)
	}
	for i, name := range res.Winners {
		fmt.Fprintf(bw, "%s seat: %s\n", humanize.Ordinal(i+1), name)
	}

	if res.Log.Len() > 0 {
		fmt.Fprintln(bw)
		fmt.Fprint(bw, res.Log.String())
	}

	return bw.Flush()
}

// SaveFile writes the report to path, creating parent directories.
func SaveFile(path string, s Summary, res stv.Result, countErr error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := Write(f, s, res, countErr); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}

	return f.Close()
}
