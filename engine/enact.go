package engine

import (
	"fmt"

	"github.com/lvlath-sim/dispatchgrid/intention"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// enact implements spec.md §4.7 Phase 6. Enactment order among the
// consistent intentions does not affect the resulting state, since moves,
// pickups and deliveries on disjoint resources commute and conflicting
// ones were already removed in Phase 5 (spec.md §5).
func enact(g *world.Grid, intentions []intention.Intention, tick int) error {
	for _, in := range intentions {
		switch v := in.(type) {
		case intention.Move:
			dest, err := moveDestination(g, v)
			if err != nil {
				return err
			}
			if err := g.MoveAgent(v.Agent, dest); err != nil {
				return err
			}
		case intention.Pickup:
			if _, err := g.PickupItem(v.Agent, v.Item, tick); err != nil {
				return err
			}
		case intention.Deliver:
			if _, err := g.DeliverItem(v.Agent, v.Item, tick); err != nil {
				return err
			}
		default:
			return fmt.Errorf("engine: agent %s: %w", in.AgentID(), ErrUnsupportedIntent)
		}
	}
	return nil
}
