package reactive

import (
	"fmt"

	"github.com/lvlath-sim/dispatchgrid/intention"
	"github.com/lvlath-sim/dispatchgrid/pathfind"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// Agent wraps a world.Agent identity with the parameters the greedy policy
// needs. Rank selects which pickup station (1 = most crowded, 2 = second
// most crowded, ...) the unassigned-variant fallback chases; it is clamped
// to the last available rank (spec.md §4.4 rule 5).
type Agent struct {
	ID   world.AgentID
	Rank int
}

// NewAgent constructs a reactive policy for the given agent identity.
func NewAgent(id world.AgentID, rank int) *Agent {
	if rank < 1 {
		rank = 1
	}
	return &Agent{ID: id, Rank: rank}
}

// AgentID identifies the agent this policy proposes for, satisfying
// engine.Proposer.
func (a *Agent) AgentID() world.AgentID { return a.ID }

// MakeIntention returns the next intention this agent proposes, or
// (nil, nil) if it has nothing to do this tick (spec.md §4.7 Phase 3: "Agents
// with neither an assigned nor carried item and no reactive target do not
// propose"). A non-nil error wraps pathfind.ErrNoPath when a target cannot
// be reached (propagated per spec.md §7; in a well-formed config this should
// not occur), or world.ErrAgentNotFound / world.ErrStationNotFound when the
// agent or an item's station is not on the grid.
//
// hasBroker must be true whenever a broker is running the simulation's
// auction round. The "most crowded station" wildcard fallback (rule 5) is
// scoped to the unassigned, no-broker variant (spec.md §4.4 rule 5): with a
// broker present, an agent holding nothing this tick simply lost (or sat
// out) the auction round and must not self-assign an arbitrary item out of
// a station queue, which would bypass the broker's exact-cover assignment.
func (a *Agent) MakeIntention(g *world.Grid, hasBroker bool) (intention.Intention, error) {
	agent, ok := g.AgentByID(a.ID)
	if !ok {
		return nil, fmt.Errorf("reactive: agent %s: %w", a.ID, world.ErrAgentNotFound)
	}

	if carried := agent.InTransitItems(); len(carried) > 0 {
		return a.deliverOrApproach(g, agent, carried[0])
	}
	if assigned := agent.AssignedItems(); len(assigned) > 0 {
		return a.pickupOrApproach(g, agent, assigned[0])
	}
	if hasBroker {
		return nil, nil
	}
	return a.chaseMostCrowded(g, agent)
}

func (a *Agent) deliverOrApproach(g *world.Grid, agent *world.Agent, item *world.Item) (intention.Intention, error) {
	dest, ok := g.DeliveryByID(item.Destination)
	if !ok {
		return nil, fmt.Errorf("reactive: item %s destination %d: %w", item.ID, item.Destination, world.ErrStationNotFound)
	}
	if agent.Position == dest.Position {
		id := item.ID
		return intention.Deliver{Agent: a.ID, Item: &id}, nil
	}
	return a.moveTowards(g, agent.Position, dest.Position)
}

func (a *Agent) pickupOrApproach(g *world.Grid, agent *world.Agent, item *world.Item) (intention.Intention, error) {
	src, ok := g.PickupByID(item.Source)
	if !ok {
		return nil, fmt.Errorf("reactive: item %s source %d: %w", item.ID, item.Source, world.ErrStationNotFound)
	}
	if agent.Position == src.Position {
		id := item.ID
		return intention.Pickup{Agent: a.ID, Item: &id}, nil
	}
	return a.moveTowards(g, agent.Position, src.Position)
}

// chaseMostCrowded implements spec.md §4.4 rule 5, the fallback used when
// an agent carries nothing and has no ASSIGNED item (i.e. runs without a
// broker feeding it assignments).
func (a *Agent) chaseMostCrowded(g *world.Grid, agent *world.Agent) (intention.Intention, error) {
	stations := g.MostCrowdedStations()
	if len(stations) == 0 {
		return nil, nil
	}
	rank := a.Rank
	if rank > len(stations) {
		rank = len(stations)
	}
	target := stations[rank-1]
	if len(target.Queue) == 0 {
		return nil, nil
	}
	if agent.Position == target.Position {
		return intention.Pickup{Agent: a.ID, Item: nil}, nil
	}
	return a.moveTowards(g, agent.Position, target.Position)
}

func (a *Agent) moveTowards(g *world.Grid, from, to world.Position) (intention.Intention, error) {
	next, err := pathfind.NextStep(g, from, to)
	if err != nil {
		return nil, fmt.Errorf("reactive: agent %s: %w", a.ID, err)
	}
	dir := intention.Direction{DX: next.X - from.X, DY: next.Y - from.Y}
	mv, err := intention.NewMove(a.ID, dir)
	if err != nil {
		return nil, fmt.Errorf("reactive: agent %s: %w", a.ID, err)
	}
	return mv, nil
}
