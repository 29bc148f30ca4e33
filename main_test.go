package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupLoggerToFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "indicators.log")
	closer, err := setupLogger(path, "info", false)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	slog.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatalf("expected log output in %s", path)
	}
}

func TestCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("indicators:\n  - load: {red: '2-8'}\n  - memory-usage:\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"check", "--config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("check: %v", err)
	}

	rootCmd.SetArgs([]string{"check", "--config", filepath.Join(t.TempDir(), "missing.yml")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
