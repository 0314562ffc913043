package world

import "fmt"

// Grid is the W×H board together with the registries of every entity
// placed on it, plus the simulation clock. Obstacles and stations are
// fixed at construction; agents and items are the only mutable parts.
//
// Ownership: within a tick, the grid is mutated exclusively by the engine
// package; agents and the broker only ever read it (spec.md §5).
type Grid struct {
	Width, Height int
	Tick          int

	Obstacles        []*Obstacle
	PickupStations   []*PickupStation
	DeliveryStations []*DeliveryStation
	Agents           []*Agent

	obstacleAt map[Position]*Obstacle
	pickupAt   map[Position]*PickupStation
	deliverAt  map[Position]*DeliveryStation

	agentIndex   map[AgentID]int
	itemIndex    map[ItemID]*Item
	pickupIndex  map[StationID]*PickupStation
	deliverIndex map[StationID]*DeliveryStation
}

// NewGrid builds an empty W×H board. Complexity: O(1).
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:        width,
		Height:       height,
		obstacleAt:   make(map[Position]*Obstacle),
		pickupAt:     make(map[Position]*PickupStation),
		deliverAt:    make(map[Position]*DeliveryStation),
		agentIndex:   make(map[AgentID]int),
		itemIndex:    make(map[ItemID]*Item),
		pickupIndex:  make(map[StationID]*PickupStation),
		deliverIndex: make(map[StationID]*DeliveryStation),
	}
}

// InBounds reports whether pos lies within the board. Complexity: O(1).
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// AddObstacle places a new Obstacle at pos.
func (g *Grid) AddObstacle(pos Position) (*Obstacle, error) {
	if !g.InBounds(pos) {
		return nil, fmt.Errorf("world: obstacle at %v: %w", pos, ErrOutOfBounds)
	}
	o := &Obstacle{ID: len(g.Obstacles) + 1, Position: pos}
	g.Obstacles = append(g.Obstacles, o)
	g.obstacleAt[pos] = o
	return o, nil
}

// AddPickupStation places a new PickupStation at pos. Stations are indexed
// 1-based in the order they are added, matching the config's "pickup_<n>"
// addressing.
func (g *Grid) AddPickupStation(pos Position) (*PickupStation, error) {
	if !g.InBounds(pos) {
		return nil, fmt.Errorf("world: pickup station at %v: %w", pos, ErrOutOfBounds)
	}
	s := &PickupStation{ID: StationID(len(g.PickupStations) + 1), Position: pos}
	g.PickupStations = append(g.PickupStations, s)
	g.pickupAt[pos] = s
	g.pickupIndex[s.ID] = s
	return s, nil
}

// AddDeliveryStation places a new DeliveryStation at pos, 1-based indexed.
func (g *Grid) AddDeliveryStation(pos Position) (*DeliveryStation, error) {
	if !g.InBounds(pos) {
		return nil, fmt.Errorf("world: delivery station at %v: %w", pos, ErrOutOfBounds)
	}
	s := &DeliveryStation{ID: StationID(len(g.DeliveryStations) + 1), Position: pos}
	g.DeliveryStations = append(g.DeliveryStations, s)
	g.deliverAt[pos] = s
	g.deliverIndex[s.ID] = s
	return s, nil
}

// AddAgent places a new Agent at pos with the given capacity.
func (g *Grid) AddAgent(pos Position, capacity int) (*Agent, error) {
	if !g.InBounds(pos) {
		return nil, fmt.Errorf("world: agent at %v: %w", pos, ErrOutOfBounds)
	}
	a := &Agent{ID: newAgentID(), Position: pos, Capacity: capacity}
	g.agentIndex[a.ID] = len(g.Agents)
	g.Agents = append(g.Agents, a)
	return a, nil
}

// HasObstacle reports whether pos is occupied by an Obstacle.
func (g *Grid) HasObstacle(pos Position) bool {
	_, ok := g.obstacleAt[pos]
	return ok
}

// PickupStationAt returns the PickupStation at pos, if any.
func (g *Grid) PickupStationAt(pos Position) (*PickupStation, bool) {
	s, ok := g.pickupAt[pos]
	return s, ok
}

// DeliveryStationAt returns the DeliveryStation at pos, if any.
func (g *Grid) DeliveryStationAt(pos Position) (*DeliveryStation, bool) {
	s, ok := g.deliverAt[pos]
	return s, ok
}

// AgentsAt returns every agent currently standing at pos. Fleets in this
// simulation are small enough that a linear scan is cheaper than keeping a
// second position index in sync across every move.
func (g *Grid) AgentsAt(pos Position) []*Agent {
	var out []*Agent
	for _, a := range g.Agents {
		if a.Position == pos {
			out = append(out, a)
		}
	}
	return out
}

// AgentByID looks up an agent by identity.
func (g *Grid) AgentByID(id AgentID) (*Agent, bool) {
	idx, ok := g.agentIndex[id]
	if !ok {
		return nil, false
	}
	return g.Agents[idx], true
}

// ItemByID looks up any item ever created by identity, regardless of where
// it currently lives (a pickup queue, an agent's list, or delivered).
func (g *Grid) ItemByID(id ItemID) (*Item, bool) {
	it, ok := g.itemIndex[id]
	return it, ok
}

// PickupByID looks up a pickup station by its 1-based config index.
func (g *Grid) PickupByID(id StationID) (*PickupStation, bool) {
	s, ok := g.pickupIndex[id]
	return s, ok
}

// DeliveryByID looks up a delivery station by its 1-based config index.
func (g *Grid) DeliveryByID(id StationID) (*DeliveryStation, bool) {
	s, ok := g.deliverIndex[id]
	return s, ok
}

// TotalRemainingCapacity sums RemainingCapacity across the whole fleet; the
// broker uses this to cap the auctionable set, which bounds auction
// enumeration (spec.md §4.5/§4.6).
func (g *Grid) TotalRemainingCapacity() int {
	total := 0
	for _, a := range g.Agents {
		if rc := a.RemainingCapacity(); rc > 0 {
			total += rc
		}
	}
	return total
}

// MostCrowdedStations returns the pickup stations ordered by descending
// queue length, ties broken by ascending station id (stable sort over
// insertion order). Used by the reactive agent's unassigned fallback
// (spec.md §4.4 rule 5).
func (g *Grid) MostCrowdedStations() []*PickupStation {
	out := make([]*PickupStation, len(g.PickupStations))
	copy(out, g.PickupStations)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && len(out[j].Queue) > len(out[j-1].Queue) {
			out[j], out[j-1] = out[j-1], out[j]
			j--
		}
	}
	return out
}
