package config

import "gopkg.in/yaml.v3"

// Raw mirrors the YAML document shape before any string id is resolved
// against the grid. Besides the spec.md §6 fields it carries
// assignment_mode, and each agents entry is a position/capacity/rank mapping.
type Raw struct {
	GridSize         [2]int  `yaml:"grid_size"`
	Obstacles        [][2]int `yaml:"obstacles"`
	PickupStations   [][2]int `yaml:"pickup_stations"`
	DeliveryStations [][2]int `yaml:"delivery_stations"`
	Agents           []RawAgent `yaml:"agents"`
	Strategy         string  `yaml:"strategy"`

	// AssignmentMode selects how items reach agents: "reactive" (agents
	// self-select targets, the default) or "auction" (a broker runs a
	// combinatorial reverse auction every tick, spec.md §4.6).
	AssignmentMode string `yaml:"assignment_mode"`

	// InitialDistribution. Distribution is either a bare integer (simple
	// mode) or a map of pickup_<id> -> [delivery_<id>, ...] (exact mode);
	// yaml.v3 decodes either shape into RawDistribution.
	Distribution RawDistribution `yaml:"distribution"`

	// WeightedDistribution.
	PickupDistribution map[string]float64 `yaml:"pickup_distribution"`
	DeliveryWeights    map[string]float64 `yaml:"delivery_weights"`
	StepsPerTick       int                `yaml:"steps_per_tick"`
}

// RawAgent is one fleet entry: position plus capacity (capacity defaults to
// 1 when omitted, matching a single-item courier).
type RawAgent struct {
	Position [2]int `yaml:"position"`
	Capacity int    `yaml:"capacity"`
	Rank     int    `yaml:"rank"`
}

// RawDistribution decodes the InitialDistribution "distribution" field,
// which is either a bare integer or a map keyed by pickup station id.
type RawDistribution struct {
	Simple int
	Exact  map[string][]string
}

// UnmarshalYAML implements the union-shaped "integer or map" field from
// spec.md §6 ("distribution is either an integer or {...}"), via yaml.v3's
// node-based custom unmarshal hook.
func (d *RawDistribution) UnmarshalYAML(value *yaml.Node) error {
	var asInt int
	if err := value.Decode(&asInt); err == nil {
		d.Simple = asInt
		return nil
	}
	var asMap map[string][]string
	if err := value.Decode(&asMap); err != nil {
		return err
	}
	d.Exact = asMap
	return nil
}
