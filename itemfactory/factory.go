package itemfactory

import (
	"math/rand"

	"github.com/lvlath-sim/dispatchgrid/world"
)

// Factory generates new items on the grid for the given tick. Implementers
// are free to be no-ops on most ticks (InitialDistribution only acts at
// tick 0; WeightedDistribution acts every tick but may draw zero items).
type Factory interface {
	AddItems(g *world.Grid, tick int, rng *rand.Rand) error
}
