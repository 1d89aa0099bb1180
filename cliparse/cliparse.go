// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string

	// Count mode
	BallotFile string
	Candidates []string
	Seats      int
	MaxRounds  int
	OutputPath string
	Title      string

	Verbose bool
}

// CountMode reports whether a ballot file was given, in which case the
// program counts it once instead of serving HTTP.
func (c Config) CountMode() bool {
	return c.BallotFile != ""
}

// ParseFlags validates flags, falling back to the environment and then to
// a .env file for anything not given on the command line.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, candidates string

	flags := flag.NewFlagSet("quickly-count", flag.ContinueOnError)

	flags.StringVar(&envFile, "env", ".env", "Path to .env file")

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	// One-shot count
	flags.StringVar(&cfg.BallotFile, "f", "", "Ballot file to count")
	flags.StringVar(&candidates, "c", "", "Comma-separated candidate names (ballot file has no roster line)")
	flags.IntVar(&cfg.Seats, "s", 0, "Number of seats")
	flags.IntVar(&cfg.MaxRounds, "max-rounds", -1, "Round ceiling, 0 for none")
	flags.StringVar(&cfg.OutputPath, "o", "", "Save the report to this file")
	flags.StringVar(&cfg.Title, "title", "", "Report title")

	flags.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg.Candidates = splitNames(candidates)

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.Seats == 0 {
		seats, err := envInt("SEATS", 1)
		if err != nil {
			return Config{}, err
		}
		cfg.Seats = seats
	}
	if cfg.Seats < 1 {
		return Config{}, errors.New("seats must be at least 1")
	}
	if cfg.MaxRounds == -1 {
		maxRounds, err := envInt("MAX_ROUNDS", 20)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxRounds = maxRounds
	}
	if cfg.MaxRounds < 0 {
		return Config{}, errors.New("max rounds must not be negative")
	}
	if !cfg.Verbose {
		cfg.Verbose = strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	// Count mode needs neither a database nor secrets
	if cfg.CountMode() {
		return cfg, nil
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.Join(strings.Fields(part), " "); name != "" {
			names = append(names, name)
		}
	}
	return names
}
