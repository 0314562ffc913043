package engine

import (
	"math/rand"

	"github.com/lvlath-sim/dispatchgrid/intention"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// stationPickups groups one pickup station's proposed Pickup intentions by
// the concrete item they target; wildcard is intentions with Item == nil.
type stationPickups struct {
	concrete      map[world.ItemID][]intention.Pickup
	concreteOrder []world.ItemID // keys of concrete, in first-proposed order
	wildcard      []intention.Pickup
}

// arbitrate implements spec.md §4.7 Phase 5. It returns the intentions that
// may be enacted this iteration and those that must be retried next
// iteration. Only Pickup intentions are ever contradicted — this
// environment does not model agent-agent collisions, so Move and Deliver
// are always consistent (spec.md §1 Non-goals, §4.7).
func arbitrate(g *world.Grid, intentions []intention.Intention, rng *rand.Rand) (consistent, inconsistent []intention.Intention) {
	byStation := make(map[world.StationID]*stationPickups)
	var stationOrder []world.StationID

	for _, in := range intentions {
		p, ok := in.(intention.Pickup)
		if !ok {
			consistent = append(consistent, in)
			continue
		}
		agent, ok := g.AgentByID(p.Agent)
		if !ok {
			continue // unreachable post-validation; defensive
		}
		station, ok := g.PickupStationAt(agent.Position)
		if !ok {
			continue // unreachable post-validation; defensive
		}
		grp, ok := byStation[station.ID]
		if !ok {
			grp = &stationPickups{concrete: make(map[world.ItemID][]intention.Pickup)}
			byStation[station.ID] = grp
			stationOrder = append(stationOrder, station.ID)
		}
		if p.Item != nil {
			if _, seen := grp.concrete[*p.Item]; !seen {
				grp.concreteOrder = append(grp.concreteOrder, *p.Item)
			}
			grp.concrete[*p.Item] = append(grp.concrete[*p.Item], p)
		} else {
			grp.wildcard = append(grp.wildcard, p)
		}
	}

	// Stations and concrete items are walked in first-proposed order, not
	// map order, so a fixed rng seed reproduces the same shuffles.
	for _, stationID := range stationOrder {
		grp := byStation[stationID]
		station, _ := g.PickupByID(stationID)

		// Same concrete item requested by more than one agent: shuffle,
		// keep the first, the rest become inconsistent.
		for _, itemID := range grp.concreteOrder {
			reqs := grp.concrete[itemID]
			rng.Shuffle(len(reqs), func(i, j int) { reqs[i], reqs[j] = reqs[j], reqs[i] })
			consistent = append(consistent, reqs[0])
			for _, loser := range reqs[1:] {
				inconsistent = append(inconsistent, loser)
			}
		}

		// Over-demand on wildcard pickups: r concrete winners already
		// claim r items, so at most max(0, a-r) wildcard requests can be
		// served, a = the station's current queue length.
		r := len(grp.concrete)
		a := len(station.Queue)
		allowed := a - r
		if allowed < 0 {
			allowed = 0
		}
		rng.Shuffle(len(grp.wildcard), func(i, j int) { grp.wildcard[i], grp.wildcard[j] = grp.wildcard[j], grp.wildcard[i] })
		for i, w := range grp.wildcard {
			if i < allowed {
				consistent = append(consistent, w)
			} else {
				inconsistent = append(inconsistent, w)
			}
		}
	}

	return consistent, inconsistent
}
