package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lvlath-sim/dispatchgrid/itemfactory"
	"github.com/lvlath-sim/dispatchgrid/reactive"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// Result is everything Build assembles from a config file: the populated
// grid, the chosen item factory, and the reactive-policy proposer for every
// configured agent, in config order.
type Result struct {
	Grid       *world.Grid
	Factory    itemfactory.Factory
	Agents     []*reactive.Agent
	UseAuction bool // assignment_mode: "auction" — caller should run a broker
}

// Load reads and parses the YAML file at path. It does not validate station
// references yet — that happens in Build, once the grid exists.
func Load(path string) (*Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ConfigError{Field: "config_file", Reason: err.Error()}
	}
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ConfigError{Field: "config_file", Reason: err.Error()}
	}
	return &raw, nil
}

// Build constructs a Grid, factory and fleet from a parsed Raw config.
func Build(raw *Raw) (*Result, error) {
	if raw.GridSize[0] <= 0 || raw.GridSize[1] <= 0 {
		return nil, ConfigError{Field: "grid_size", Reason: "width and height must be positive"}
	}
	g := world.NewGrid(raw.GridSize[0], raw.GridSize[1])

	for _, xy := range raw.Obstacles {
		if _, err := g.AddObstacle(world.Position{X: xy[0], Y: xy[1]}); err != nil {
			return nil, ConfigError{Field: "obstacles", Reason: err.Error()}
		}
	}
	for _, xy := range raw.PickupStations {
		if _, err := g.AddPickupStation(world.Position{X: xy[0], Y: xy[1]}); err != nil {
			return nil, ConfigError{Field: "pickup_stations", Reason: err.Error()}
		}
	}
	for _, xy := range raw.DeliveryStations {
		if _, err := g.AddDeliveryStation(world.Position{X: xy[0], Y: xy[1]}); err != nil {
			return nil, ConfigError{Field: "delivery_stations", Reason: err.Error()}
		}
	}

	var agents []*reactive.Agent
	for _, ra := range raw.Agents {
		capacity := ra.Capacity
		if capacity <= 0 {
			capacity = 1
		}
		a, err := g.AddAgent(world.Position{X: ra.Position[0], Y: ra.Position[1]}, capacity)
		if err != nil {
			return nil, ConfigError{Field: "agents", Reason: err.Error()}
		}
		agents = append(agents, reactive.NewAgent(a.ID, ra.Rank))
	}

	factory, err := buildFactory(raw, g)
	if err != nil {
		return nil, err
	}

	useAuction, err := resolveAssignmentMode(raw.AssignmentMode)
	if err != nil {
		return nil, err
	}

	return &Result{Grid: g, Factory: factory, Agents: agents, UseAuction: useAuction}, nil
}

// resolveAssignmentMode defaults an empty mode to reactive-only, matching
// configs written before the auction mode existed.
func resolveAssignmentMode(mode string) (bool, error) {
	switch mode {
	case "", "reactive":
		return false, nil
	case "auction":
		return true, nil
	default:
		return false, ConfigError{Field: "assignment_mode", Reason: "unknown assignment mode " + strconv.Quote(mode)}
	}
}

func buildFactory(raw *Raw, g *world.Grid) (itemfactory.Factory, error) {
	switch raw.Strategy {
	case "InitialDistribution":
		if raw.Distribution.Exact != nil {
			exact, err := resolveExact(raw.Distribution.Exact, g)
			if err != nil {
				return nil, err
			}
			return &itemfactory.InitialDistribution{Exact: exact}, nil
		}
		return &itemfactory.InitialDistribution{Simple: raw.Distribution.Simple}, nil

	case "WeightedDistribution":
		pickupProb, err := resolveStationFloats(raw.PickupDistribution, "pickup", g)
		if err != nil {
			return nil, err
		}
		deliveryWeights, err := resolveStationFloats(raw.DeliveryWeights, "delivery", g)
		if err != nil {
			return nil, err
		}
		return &itemfactory.WeightedDistribution{
			PickupProbability: pickupProb,
			DeliveryWeights:   deliveryWeights,
			StepsPerTick:      raw.StepsPerTick,
		}, nil

	default:
		return nil, ConfigError{Field: "strategy", Reason: "unknown strategy " + strconv.Quote(raw.Strategy)}
	}
}

func resolveExact(raw map[string][]string, g *world.Grid) (map[world.StationID][]world.StationID, error) {
	out := make(map[world.StationID][]world.StationID, len(raw))
	for pickupKey, deliveryKeys := range raw {
		pickupID, err := resolveStationID(pickupKey, "pickup", g)
		if err != nil {
			return nil, err
		}
		deliveries := make([]world.StationID, 0, len(deliveryKeys))
		for _, dk := range deliveryKeys {
			deliveryID, err := resolveStationID(dk, "delivery", g)
			if err != nil {
				return nil, err
			}
			deliveries = append(deliveries, deliveryID)
		}
		out[pickupID] = deliveries
	}
	return out, nil
}

func resolveStationFloats(raw map[string]float64, kind string, g *world.Grid) (map[world.StationID]float64, error) {
	out := make(map[world.StationID]float64, len(raw))
	for key, weight := range raw {
		id, err := resolveStationID(key, kind, g)
		if err != nil {
			return nil, err
		}
		out[id] = weight
	}
	return out, nil
}

// resolveStationID parses a "pickup_<n>"/"delivery_<n>" string id into a
// 1-based StationID and checks it exists on the grid (spec.md §6: "IDs in
// string form use 1-based numbering matched by position in the list").
func resolveStationID(raw string, kind string, g *world.Grid) (world.StationID, error) {
	prefix := kind + "_"
	if !strings.HasPrefix(raw, prefix) {
		return 0, ConfigError{Field: kind, Reason: "malformed station id " + strconv.Quote(raw)}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(raw, prefix))
	if err != nil {
		return 0, ConfigError{Field: kind, Reason: "malformed station id " + strconv.Quote(raw)}
	}
	id := world.StationID(n)
	switch kind {
	case "pickup":
		if _, ok := g.PickupByID(id); !ok {
			return 0, ConfigError{Field: kind, Reason: "unknown station id " + strconv.Quote(raw)}
		}
	case "delivery":
		if _, ok := g.DeliveryByID(id); !ok {
			return 0, ConfigError{Field: kind, Reason: "unknown station id " + strconv.Quote(raw)}
		}
	}
	return id, nil
}
