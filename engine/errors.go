package engine

import "errors"

// Sentinel errors for the illegal-intention family (spec.md §4.7 Phase 4,
// §7). Any of these aborts the tick and — per this module's fail-fast
// policy — the run, since they indicate an agent bug rather than ordinary
// contention.
var (
	ErrOutOfBoundsMove   = errors.New("engine: move target is out of bounds")
	ErrObstacleCollision = errors.New("engine: move target is occupied by an obstacle")
	ErrPickupOffStation  = errors.New("engine: pickup proposed off a pickup station")
	ErrDeliverOffStation = errors.New("engine: deliver proposed off a delivery station")
	ErrDuplicateOrigin   = errors.New("engine: multiple intentions from the same agent in one batch")
	ErrUnsupportedIntent = errors.New("engine: unsupported intention variant")
)
