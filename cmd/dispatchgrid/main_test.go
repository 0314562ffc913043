package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lvlath-sim/dispatchgrid/config"
)

func writeRunConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestRun_ReactiveConfigSucceeds(t *testing.T) {
	rounds, display, selfishness, seed = 5, false, false, 1
	logPath = filepath.Join(t.TempDir(), "run.log")

	path := writeRunConfig(t, `
grid_size: [4, 4]
pickup_stations: [[0, 0]]
delivery_stations: [[3, 3]]
agents:
  - position: [0, 0]
    capacity: 1
strategy: InitialDistribution
distribution: 1
`)
	if err := run(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_AuctionConfigWiresBroker(t *testing.T) {
	rounds, display, selfishness, seed = 5, false, true, 1
	logPath = filepath.Join(t.TempDir(), "run.log")

	path := writeRunConfig(t, `
grid_size: [4, 4]
pickup_stations: [[0, 0]]
delivery_stations: [[3, 3]]
agents:
  - position: [0, 0]
    capacity: 1
strategy: InitialDistribution
distribution: 1
assignment_mode: auction
`)
	if err := run(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_UnknownStrategyExitsThree(t *testing.T) {
	rounds, display, selfishness, seed = 5, false, false, 1
	logPath = filepath.Join(t.TempDir(), "run.log")

	path := writeRunConfig(t, `
grid_size: [4, 4]
agents: []
strategy: NotARealStrategy
`)
	err := run(path)
	if err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
	if exitCodeFor(err) != exitUnknownStrat {
		t.Fatalf("expected exit code %d, got %d", exitUnknownStrat, exitCodeFor(err))
	}
}

func TestRun_MissingFileExitsConfigError(t *testing.T) {
	rounds, display, selfishness, seed = 5, false, false, 1
	logPath = filepath.Join(t.TempDir(), "run.log")

	err := run(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if exitCodeFor(err) != exitConfigError {
		t.Fatalf("expected exit code %d, got %d", exitConfigError, exitCodeFor(err))
	}
	var ce config.ConfigError
	ee, ok := err.(exitError)
	if !ok {
		t.Fatalf("expected an exitError, got %T", err)
	}
	if ce, ok = ee.err.(config.ConfigError); !ok {
		t.Fatalf("expected the wrapped error to be a config.ConfigError, got %T", ee.err)
	}
	_ = ce
}
