package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/db"
)

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.db")
	t.Setenv(db.PathEnv, path)
	t.Cleanup(func() { db.Close() })
	return path
}

func TestInitRunE_WritesWorkspace(t *testing.T) {
	dbPath := useTempDB(t)
	dir := t.TempDir()
	getwd := func() (string, error) { return dir, nil }

	var out bytes.Buffer
	if err := initRunE(&out, getwd, false); err != nil {
		t.Fatalf("initRunE failed: %v", err)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if cfg.InputDir != "inputs" || !cfg.RecordRuns {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if info, err := os.Stat(filepath.Join(dir, "inputs")); err != nil || !info.IsDir() {
		t.Errorf("input directory not created: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database not created: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Config written") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestInitRunE_KeepsExistingConfig(t *testing.T) {
	useTempDB(t)
	dir := t.TempDir()
	getwd := func() (string, error) { return dir, nil }

	custom := config.Default()
	custom.InputDir = "puzzles"
	if err := config.SaveConfig(dir, custom); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := initRunE(&out, getwd, false); err != nil {
		t.Fatalf("initRunE failed: %v", err)
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "puzzles" {
		t.Errorf("existing config overwritten: %+v", cfg)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("unexpected output: %q", out.String())
	}

	if err := initRunE(&bytes.Buffer{}, getwd, true); err != nil {
		t.Fatalf("initRunE --force failed: %v", err)
	}
	cfg, err = config.LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "inputs" {
		t.Errorf("--force did not reset config: %+v", cfg)
	}
}

// TestInitRunE_GetwdError verifies that a getwd failure
// is surfaced with a clear error message.
func TestInitRunE_GetwdError(t *testing.T) {
	failGetwd := func() (string, error) {
		return "", fmt.Errorf("simulated getwd failure")
	}

	err := initRunE(&bytes.Buffer{}, failGetwd, false)
	if err == nil {
		t.Fatal("expected error when getwd fails")
	}
	if !strings.HasPrefix(err.Error(), "failed to get working directory") {
		t.Errorf("error = %q", err.Error())
	}
}

// Argument validation runs before any service is wired, so these
// cases never touch the filesystem.
func TestCommandArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     func() *cobra.Command
		args    []string
		wantErr string
	}{
		{name: "solve without day", cmd: SolveCmd, args: nil, wantErr: "a day is required"},
		{name: "solve bad day", cmd: SolveCmd, args: []string{"day26"}, wantErr: "must be between 1 and 25"},
		{name: "solve not a day", cmd: SolveCmd, args: []string{"first"}, wantErr: "invalid day"},
		{name: "solve bad part", cmd: SolveCmd, args: []string{"1", "--part", "3"}, wantErr: "invalid part 3"},
		{name: "solve all with day", cmd: SolveCmd, args: []string{"1", "--all"}, wantErr: "--all cannot be combined"},
		{name: "explain bad day", cmd: ExplainCmd, args: []string{"0"}, wantErr: "must be between 1 and 25"},
		{name: "history bad day", cmd: HistoryCmd, args: []string{"--day", "x"}, wantErr: "invalid day"},
		{name: "history negative limit", cmd: HistoryCmd, args: []string{"--limit", "-1"}, wantErr: "must not be negative"},
		{name: "history two run ids", cmd: HistoryCmd, args: []string{"RUN-001", "RUN-002"}, wantErr: "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SilenceUsage = true

			err := cmd.Execute()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
