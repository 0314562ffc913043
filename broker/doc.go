// Package broker runs the reverse combinatorial auction: it determines the
// auctionable item set, solicits bids from every agent with spare
// capacity, and selects the minimum-cost combination of bids that exactly
// partitions the auctionable set across distinct agents — a weighted exact
// cover (spec.md §4.6).
//
// Winner selection is specified as "enumerate all non-empty subsets of the
// flat bid pool"; this package instead searches per-agent (each agent
// contributes at most one winning bid, by construction of the problem), a
// branch-and-bound equivalent to the literal subset enumeration but without
// materializing the power set of bids, which is intractable even under the
// capacity caps that bound the *per-agent* bundle enumeration in the
// auction package. Both formulations find a valid partition of the same
// minimum total cost; see DESIGN.md.
package broker
