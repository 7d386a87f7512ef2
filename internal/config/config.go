package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/aoc/internal/core/cubegame"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Config represents the flat aoc configuration
type Config struct {
	Version    string     `json:"version"`
	InputDir   string     `json:"input_dir"`   // directory holding NN.txt inputs
	RecordRuns bool       `json:"record_runs"` // persist answers to the run ledger
	Thresholds Thresholds `json:"thresholds"`  // bag used by day 2 part 1
}

// Thresholds is the JSON shape of the day 2 bag.
type Thresholds struct {
	Red   uint64 `json:"red"`
	Green uint64 `json:"green"`
	Blue  uint64 `json:"blue"`
}

// Bag converts the thresholds into the cube game type.
func (t Thresholds) Bag() cubegame.Thresholds {
	return cubegame.Thresholds{Red: t.Red, Green: t.Green, Blue: t.Blue}
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	d := cubegame.DefaultThresholds
	return &Config{
		Version:    CurrentVersion,
		InputDir:   "inputs",
		RecordRuns: true,
		Thresholds: Thresholds{Red: d.Red, Green: d.Green, Blue: d.Blue},
	}
}

// Path returns the location of the config file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".aoc", "config.json")
}

// LoadConfig reads .aoc/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Fields missing from the file keep their default values.
// Returns an error wrapping os.ErrNotExist if no config is found.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads the config in dir, falling back to defaults when the
// file does not exist. Any other failure is returned.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	aocDir := filepath.Join(dir, ".aoc")
	if err := os.MkdirAll(aocDir, 0755); err != nil {
		return fmt.Errorf("failed to create .aoc dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
