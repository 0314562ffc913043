package engine

import (
	"fmt"

	"github.com/lvlath-sim/dispatchgrid/intention"
	"github.com/lvlath-sim/dispatchgrid/world"
)

// validateIllegal implements spec.md §4.7 Phase 4. Any violation aborts the
// whole batch; callers must not enact any intention from a batch that
// failed this check.
func validateIllegal(g *world.Grid, intentions []intention.Intention) error {
	seen := make(map[world.AgentID]bool, len(intentions))
	for _, in := range intentions {
		if seen[in.AgentID()] {
			return fmt.Errorf("engine: agent %s: %w", in.AgentID(), ErrDuplicateOrigin)
		}
		seen[in.AgentID()] = true

		switch v := in.(type) {
		case intention.Move:
			if err := validateMove(g, v); err != nil {
				return err
			}
		case intention.Pickup:
			if err := validatePickup(g, v); err != nil {
				return err
			}
		case intention.Deliver:
			if err := validateDeliver(g, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("engine: agent %s: %w", in.AgentID(), ErrUnsupportedIntent)
		}
	}
	return nil
}

func validateMove(g *world.Grid, m intention.Move) error {
	agent, ok := g.AgentByID(m.Agent)
	if !ok {
		return fmt.Errorf("engine: move: %w", world.ErrAgentNotFound)
	}
	dest := agent.Position.Add(m.Direction.DX, m.Direction.DY)
	if !g.InBounds(dest) {
		return fmt.Errorf("engine: agent %s move to %v: %w", m.Agent, dest, ErrOutOfBoundsMove)
	}
	if g.HasObstacle(dest) {
		return fmt.Errorf("engine: agent %s move to %v: %w", m.Agent, dest, ErrObstacleCollision)
	}
	return nil
}

func validatePickup(g *world.Grid, p intention.Pickup) error {
	agent, ok := g.AgentByID(p.Agent)
	if !ok {
		return fmt.Errorf("engine: pickup: %w", world.ErrAgentNotFound)
	}
	if _, ok := g.PickupStationAt(agent.Position); !ok {
		return fmt.Errorf("engine: agent %s: %w", p.Agent, ErrPickupOffStation)
	}
	return nil
}

func validateDeliver(g *world.Grid, d intention.Deliver) error {
	agent, ok := g.AgentByID(d.Agent)
	if !ok {
		return fmt.Errorf("engine: deliver: %w", world.ErrAgentNotFound)
	}
	if _, ok := g.DeliveryStationAt(agent.Position); !ok {
		return fmt.Errorf("engine: agent %s: %w", d.Agent, ErrDeliverOffStation)
	}
	return nil
}

// moveDestination computes where a Move would land; enact uses it to
// relocate the agent (validateMove computes the same target itself).
func moveDestination(g *world.Grid, m intention.Move) (world.Position, error) {
	agent, ok := g.AgentByID(m.Agent)
	if !ok {
		return world.Position{}, fmt.Errorf("engine: move: %w", world.ErrAgentNotFound)
	}
	return agent.Position.Add(m.Direction.DX, m.Direction.DY), nil
}
