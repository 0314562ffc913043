package broker

import (
	"github.com/lvlath-sim/dispatchgrid/auction"
	"github.com/lvlath-sim/dispatchgrid/pathfind"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// Broker runs one auction round per tick.
type Broker struct {
	agents []*auction.Agent
}

// New constructs a Broker over the given auction-policy agents. Agent order
// is the stable enumeration order used to break cost ties in winner
// selection.
func New(agents []*auction.Agent) *Broker {
	return &Broker{agents: agents}
}

// Run executes one auction round: it determines the auctionable set,
// collects bids, picks the minimum-cost valid partition, and commits the
// winning assignments to the grid (spec.md §4.6). A round with no
// auctionable items or no agent capacity is a silent no-op.
func (b *Broker) Run(g *world.Grid) error {
	auctionable := b.auctionableItems(g)
	if len(auctionable) == 0 {
		return nil
	}

	cache := pathfind.NewCache(g)
	bidsByAgent := make([][]auction.Bid, len(b.agents))
	anyCapacity := false
	for i, a := range b.agents {
		agentBids, err := a.Bids(auctionable, g, cache)
		if err != nil {
			return err
		}
		if len(agentBids) > 0 {
			anyCapacity = true
		}
		bidsByAgent[i] = agentBids
	}
	if !anyCapacity {
		return nil
	}

	winners := selectWinners(auctionable, bidsByAgent)
	for _, w := range winners {
		if err := g.AssignBundle(w.Agent, w.Bundle, w.Cost); err != nil {
			return err
		}
	}
	return nil
}

// auctionableItems gathers every AWAITING_PICKUP item across pickup
// stations in arrival order, truncated to the fleet's total remaining
// capacity (spec.md §4.6 step 1).
func (b *Broker) auctionableItems(g *world.Grid) []world.ItemID {
	var items []world.ItemID
	for _, station := range g.PickupStations {
		for _, it := range station.Queue {
			items = append(items, it.ID)
		}
	}
	maxItems := g.TotalRemainingCapacity()
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}
