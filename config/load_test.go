package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lvlath-sim/dispatchgrid/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoad_SimpleInitialDistribution(t *testing.T) {
	path := writeConfig(t, `
grid_size: [5, 5]
pickup_stations: [[0, 0]]
delivery_stations: [[4, 4]]
agents:
  - position: [0, 0]
    capacity: 2
strategy: InitialDistribution
distribution: 3
`)
	raw, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := config.Build(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Grid.PickupStations) != 1 {
		t.Fatalf("expected 1 pickup station, got %d", len(result.Grid.PickupStations))
	}
	if len(result.Agents) != 1 {
		t.Fatalf("expected 1 agent, got %d", len(result.Agents))
	}
}

func TestLoad_ExactDistributionResolvesStringIDs(t *testing.T) {
	path := writeConfig(t, `
grid_size: [5, 5]
pickup_stations: [[0, 0]]
delivery_stations: [[4, 4]]
agents: []
strategy: InitialDistribution
distribution:
  pickup_1: ["delivery_1"]
`)
	raw, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := config.Build(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_UnknownStrategy(t *testing.T) {
	path := writeConfig(t, `
grid_size: [5, 5]
agents: []
strategy: NotARealStrategy
`)
	raw, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = config.Build(raw)
	if err == nil {
		t.Fatal("expected a ConfigError for an unknown strategy")
	}
	if _, ok := err.(config.ConfigError); !ok {
		t.Fatalf("expected config.ConfigError, got %T", err)
	}
}

func TestLoad_UnknownStationIDInExactDistribution(t *testing.T) {
	path := writeConfig(t, `
grid_size: [5, 5]
pickup_stations: [[0, 0]]
delivery_stations: [[4, 4]]
agents: []
strategy: InitialDistribution
distribution:
  pickup_1: ["delivery_9"]
`)
	raw, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := config.Build(raw); err == nil {
		t.Fatal("expected a ConfigError for an unknown delivery station id")
	}
}

func TestLoad_WeightedDistribution(t *testing.T) {
	path := writeConfig(t, `
grid_size: [5, 5]
pickup_stations: [[0, 0], [4, 0]]
delivery_stations: [[4, 4]]
agents: []
strategy: WeightedDistribution
pickup_distribution:
  pickup_1: 1.0
  pickup_2: 0.0
delivery_weights:
  delivery_1: 1.0
steps_per_tick: 10
`)
	raw, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := config.Build(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Factory == nil {
		t.Fatal("expected a non-nil factory")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
