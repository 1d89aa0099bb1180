// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

var configKeys = []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY_SALT", "SEATS", "MAX_ROUNDS", "LOG_LEVEL"}

func TestParseFlags_EnvVars(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")

	cfg, err := ParseFlags([]string{"-env", filepath.Join(t.TempDir(), "none.env")})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.Seats != 1 || cfg.MaxRounds != 20 {
		t.Errorf("expected defaults seats=1 max-rounds=20, got %d and %d", cfg.Seats, cfg.MaxRounds)
	}
	if cfg.CountMode() {
		t.Error("expected server mode without -f")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("PORT", "9000")
	t.Setenv("SEATS", "4")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1", "-s", "2", "-max-rounds", "0"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Seats != 2 {
		t.Errorf("CLI should override env: expected 2 seats, got %d", cfg.Seats)
	}
	if cfg.MaxRounds != 0 {
		t.Errorf("expected uncapped rounds, got %d", cfg.MaxRounds)
	}
}

func TestParseFlags_CountMode(t *testing.T) {
	unsetEnv(t, configKeys...)

	cfg, err := ParseFlags([]string{"-f", "ballots.txt", "-c", "Ann Lee, Bo  Chan ,,", "-o", "out.txt", "-v"})
	if err != nil {
		t.Fatalf("count mode should not need a database: %v", err)
	}

	if !cfg.CountMode() {
		t.Error("expected count mode")
	}
	want := []string{"Ann Lee", "Bo Chan"}
	if !reflect.DeepEqual(cfg.Candidates, want) {
		t.Errorf("Candidates = %v, want %v", cfg.Candidates, want)
	}
	if !cfg.Verbose || cfg.OutputPath != "out.txt" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database", map[string]string{"ADMIN_KEY_SALT": "s"}, nil},
		{"missing salt", map[string]string{"DATABASE_URL": "x"}, nil},
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad seats", nil, []string{"-f", "b.txt", "-s", "-1"}},
		{"negative rounds", nil, []string{"-f", "b.txt", "-max-rounds", "-3"}},
		{"unknown database type", nil, []string{"-f", "b.txt", "-t", "mysql"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, configKeys...)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	unsetEnv(t, configKeys...)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=file:dotenv.db\nADMIN_KEY_SALT=from-dotenv\nDATABASE_TYPE=postgres\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "file:dotenv.db" || cfg.AdminKeySalt != "from-dotenv" {
		t.Errorf(".env values not applied: %+v", cfg)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres from .env, got %s", cfg.DatabaseType)
	}
}
