// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/quickly-count/ballotparse"
	"github.com/danielhkuo/quickly-count/cliparse"
	"github.com/danielhkuo/quickly-count/db"
	"github.com/danielhkuo/quickly-count/middleware"
	"github.com/danielhkuo/quickly-count/report"
	"github.com/danielhkuo/quickly-count/router"
	"github.com/danielhkuo/quickly-count/stv"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.Verbose))

	if cfg.CountMode() {
		if err := runCount(cfg); err != nil {
			os.Exit(1)
		}
		return
	}

	serve(cfg)
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// runCount counts a ballot file once and prints the report to stdout.
// The report is printed for failed counts too.
func runCount(cfg cliparse.Config) error {
	election, err := ballotparse.ParseFile(cfg.BallotFile, cfg.Candidates)
	if err != nil {
		slog.Error("failed to read ballots", "error", err)
		return err
	}

	count, err := stv.NewCount(election.Candidates, election.Ballots, cfg.Seats,
		stv.WithMaxRounds(cfg.MaxRounds),
		stv.WithLogger(slog.Default()),
	)
	if err != nil {
		slog.Error("invalid count", "error", err)
		return err
	}

	res, countErr := count.Run()
	if countErr != nil {
		slog.Error("count failed", "rounds", res.Log.Len(), "error", countErr)
	}

	summary := report.Summary{
		Title:   cfg.Title,
		Ballots: len(election.Ballots),
		Seats:   cfg.Seats,
	}
	if err := report.Write(os.Stdout, summary, res, countErr); err != nil {
		slog.Error("failed to print report", "error", err)
		return err
	}

	if cfg.OutputPath != "" {
		if err := report.SaveFile(cfg.OutputPath, summary, res, countErr); err != nil {
			slog.Error("failed to save report", "path", cfg.OutputPath, "error", err)
			return err
		}
		slog.Info("report saved", "path", cfg.OutputPath)
	}

	return countErr
}

func serve(cfg cliparse.Config) {
	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Metrics registry with runtime collectors
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Create router
	mux := router.NewRouter(dbConn, cfg, reg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
