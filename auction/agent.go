package auction

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/lvlath-sim/dispatchgrid/pathfind"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// Agent wraps a world.Agent identity with the auction-side bidding policy.
type Agent struct {
	ID world.AgentID

	// Selfish is the --selfishness CLI flag, propagated here but left
	// unread by the bidding policy (spec.md §9 Open Question (b)).
	Selfish bool
}

// NewAgent constructs an auction-policy wrapper for the given agent identity.
func NewAgent(id world.AgentID, selfish bool) *Agent { return &Agent{ID: id, Selfish: selfish} }

// Bids enumerates every non-empty subset of available up to the agent's
// remaining capacity and returns one priced Bid per subset. Returns nil,
// nil if the agent has no remaining capacity.
//
// Enumeration cost is Σ_{k=1..c} C(|available|,k); callers MUST bound
// len(available) to the fleet's total remaining capacity (spec.md §4.5,
// §4.6) before calling, or this blows up combinatorially.
func (a *Agent) Bids(available []world.ItemID, g *world.Grid, cache *pathfind.Cache) ([]Bid, error) {
	agent, ok := g.AgentByID(a.ID)
	if !ok {
		return nil, fmt.Errorf("auction: agent %s: %w", a.ID, world.ErrAgentNotFound)
	}
	capacity := agent.RemainingCapacity()
	if capacity <= 0 {
		return nil, nil
	}

	subsets := enumerateSubsets(available, capacity)
	bids := make([]Bid, 0, len(subsets))
	for _, subset := range subsets {
		ordered, total, err := priceBundle(g, cache, agent.Position, subset)
		if err != nil {
			return nil, err
		}
		cost := int64(math.Round(float64(total) / float64(agent.Capacity)))
		bids = append(bids, Bid{Agent: a.ID, Bundle: ordered, Cost: cost})
	}
	return bids, nil
}

// enumerateSubsets returns every non-empty subset of items with size at
// most maxSize, as a bitmask walk (items are already capped to fleet
// capacity by the caller, keeping 2^n tractable).
func enumerateSubsets(items []world.ItemID, maxSize int) [][]world.ItemID {
	n := len(items)
	var subsets [][]world.ItemID
	for mask := 1; mask < (1 << uint(n)); mask++ {
		if bits.OnesCount(uint(mask)) > maxSize {
			continue
		}
		subset := make([]world.ItemID, 0, bits.OnesCount(uint(mask)))
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, items[i])
			}
		}
		subsets = append(subsets, subset)
	}
	return subsets
}

// priceBundle orders subset by nearest-insertion starting from start and
// returns the execution order plus the accumulated path length (excluding
// the starting cell).
func priceBundle(g *world.Grid, cache *pathfind.Cache, start world.Position, subset []world.ItemID) ([]world.ItemID, int, error) {
	remaining := make([]world.ItemID, len(subset))
	copy(remaining, subset)

	ordered := make([]world.ItemID, 0, len(subset))
	current := start
	total := 0

	for len(remaining) > 0 {
		bestIdx := -1
		bestLen := math.MaxInt
		for i, id := range remaining {
			pos, err := sourcePosition(g, id)
			if err != nil {
				return nil, 0, err
			}
			length, err := cache.PathLen(current, pos)
			if err != nil {
				return nil, 0, err
			}
			if length < bestLen {
				bestLen = length
				bestIdx = i
			}
		}
		chosen := remaining[bestIdx]
		ordered = append(ordered, chosen)
		total += bestLen

		pos, err := sourcePosition(g, chosen)
		if err != nil {
			return nil, 0, err
		}
		current = pos
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return ordered, total, nil
}

func sourcePosition(g *world.Grid, id world.ItemID) (world.Position, error) {
	item, ok := g.ItemByID(id)
	if !ok {
		return world.Position{}, fmt.Errorf("auction: item %s: %w", id, world.ErrItemNotFound)
	}
	station, ok := g.PickupByID(item.Source)
	if !ok {
		return world.Position{}, fmt.Errorf("auction: item %s source %d: %w", id, item.Source, world.ErrStationNotFound)
	}
	return station.Position, nil
}
