// Package reactive implements the greedy-heuristic agent policy: deliver
// what you carry, move towards what you carry, pick up what you were
// assigned, move towards what you were assigned, and — absent a broker —
// chase the n-th most crowded pickup station (spec.md §4.4).
package reactive
