package itemfactory

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/lvlath-sim/dispatchgrid/world"
)

// WeightedDistribution draws new items every tick: for each pickup station,
// StepsPerTick independent Bernoulli(p) draws decide how many items to add
// (p from PickupProbability), and each item's destination is sampled from
// DeliveryWeights with probability proportional to weight (spec.md §4.3).
type WeightedDistribution struct {
	PickupProbability map[world.StationID]float64
	DeliveryWeights    map[world.StationID]float64
	StepsPerTick       int

	checked bool
}

var _ Factory = (*WeightedDistribution)(nil)

// AddItems implements Factory.
func (d *WeightedDistribution) AddItems(g *world.Grid, tick int, rng *rand.Rand) error {
	if err := d.checkTargets(g); err != nil {
		return err
	}

	// Deterministic iteration order: station ids ascending, so repeated
	// runs with the same seed draw in the same order.
	sources := make([]world.StationID, 0, len(d.PickupProbability))
	for id := range d.PickupProbability {
		sources = append(sources, id)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	for _, source := range sources {
		if _, ok := g.PickupByID(source); !ok {
			return fmt.Errorf("itemfactory: weighted distribution: pickup station %d: %w", source, ErrUnknownStation)
		}
		p := d.PickupProbability[source]
		successes := 0
		for i := 0; i < d.StepsPerTick; i++ {
			if rng.Float64() < p {
				successes++
			}
		}
		for i := 0; i < successes; i++ {
			dest := d.sampleDestination(rng)
			if _, err := g.NewItem(tick, source, dest); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkTargets validates every delivery station id referenced by
// DeliveryWeights exists, once, on first use (spec.md §4.3).
func (d *WeightedDistribution) checkTargets(g *world.Grid) error {
	if d.checked {
		return nil
	}
	for dest := range d.DeliveryWeights {
		if _, ok := g.DeliveryByID(dest); !ok {
			return fmt.Errorf("itemfactory: weighted distribution: delivery station %d: %w", dest, ErrUnknownStation)
		}
	}
	d.checked = true
	return nil
}

// sampleDestination draws one delivery station id with probability
// proportional to its weight. Iteration is over a stable ascending-id
// ordering so the draw is reproducible for a fixed rng sequence.
func (d *WeightedDistribution) sampleDestination(rng *rand.Rand) world.StationID {
	ids := make([]world.StationID, 0, len(d.DeliveryWeights))
	total := 0.0
	for id, w := range d.DeliveryWeights {
		ids = append(ids, id)
		total += w
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	target := rng.Float64() * total
	cum := 0.0
	for _, id := range ids {
		cum += d.DeliveryWeights[id]
		if target < cum {
			return id
		}
	}
	return ids[len(ids)-1]
}
