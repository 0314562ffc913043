// Package itemfactory implements pluggable item-generation strategies.
//
// InitialDistribution seeds items once, at tick 0 (simple per-station count
// or an exact pickup->deliveries mapping). WeightedDistribution draws new
// items every tick via per-station Bernoulli trials and weighted
// destination sampling (spec.md §4.3).
//
// Both strategies take a single injected *rand.Rand rather than touching
// the package-level math/rand source, following the teacher's
// builder.Config.rng convention (builder/config.go) of threading one PRNG
// through every randomized constructor so a run is reproducible end to end
// from a single seed (spec.md §5).
package itemfactory

import "errors"

// ErrUnknownStation indicates a distribution referenced a pickup or
// delivery station id that does not exist on the grid.
var ErrUnknownStation = errors.New("itemfactory: unknown station id")
