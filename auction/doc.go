// Package auction implements the combinatorial-auction agent side: given the
// currently auctionable items and its own remaining capacity, an Agent
// enumerates every feasible bundle, prices each via a nearest-insertion
// routing heuristic, and emits one Bid per bundle (spec.md §4.5).
//
// Enumeration is grounded on this module's subset-enumeration ancestor in
// tsp/exact.go (exhaustive search over small, hard-capped instances); the
// routing cost itself is grounded on tsp/approx.go's insertion-based
// approximate-TSP style, simplified from Christofides down to plain
// nearest-insertion since bundles here are small and the broker, not this
// package, is the one doing the real combinatorial optimization.
package auction
