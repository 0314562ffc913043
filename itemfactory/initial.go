package itemfactory

import (
	"fmt"
	"math/rand"

	"github.com/lvlath-sim/dispatchgrid/world"
)

// InitialDistribution seeds items only at tick == 0; every later call is a
// no-op (spec.md Testable Property 8, "Factory idempotence").
type InitialDistribution struct {
	// Simple, when set (Exact == nil), seeds Simple items per pickup
	// station with destinations drawn uniformly from existing delivery
	// stations.
	Simple int
	// Exact, when non-nil, maps a 1-based pickup station id to the ordered
	// list of 1-based delivery station ids to create items for, added in
	// listed order. Exact takes priority over Simple when both are set.
	Exact map[world.StationID][]world.StationID
}

var _ Factory = (*InitialDistribution)(nil)

// AddItems implements Factory.
func (d *InitialDistribution) AddItems(g *world.Grid, tick int, rng *rand.Rand) error {
	if tick != 0 {
		return nil
	}
	if d.Exact != nil {
		return d.exact(g, tick)
	}
	return d.simple(g, tick, rng)
}

func (d *InitialDistribution) simple(g *world.Grid, tick int, rng *rand.Rand) error {
	if len(g.DeliveryStations) == 0 {
		return fmt.Errorf("itemfactory: simple distribution with no delivery stations: %w", ErrUnknownStation)
	}
	for _, station := range g.PickupStations {
		for i := 0; i < d.Simple; i++ {
			dest := g.DeliveryStations[rng.Intn(len(g.DeliveryStations))].ID
			if _, err := g.NewItem(tick, station.ID, dest); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *InitialDistribution) exact(g *world.Grid, tick int) error {
	for _, dests := range d.Exact {
		for _, dest := range dests {
			if _, ok := g.DeliveryByID(dest); !ok {
				return fmt.Errorf("itemfactory: exact distribution: delivery station %d: %w", dest, ErrUnknownStation)
			}
		}
	}
	for source, dests := range d.Exact {
		if _, ok := g.PickupByID(source); !ok {
			return fmt.Errorf("itemfactory: exact distribution: pickup station %d: %w", source, ErrUnknownStation)
		}
		for _, dest := range dests {
			if _, err := g.NewItem(tick, source, dest); err != nil {
				return err
			}
		}
	}
	return nil
}
