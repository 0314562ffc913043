// Package engine drives the tick: generate items, assign them (broker or
// reactive self-selection), collect one intention per agent, reject
// illegal batches, arbitrate conflicting pickups, enact the consistent
// subset, and advance the clock (spec.md §4.7).
//
// This package implements the fixed-point iteration contract: phases 3-6
// repeat, re-soliciting intentions only from agents whose prior intention
// was inconsistent, until no inconsistent intentions remain or an
// iteration cap (fleet size) is reached — the safer, liveness-proven
// variant spec.md §9 Open Question (a) asks implementers to choose. The
// single-pass contract is also available via WithSinglePass.
package engine
