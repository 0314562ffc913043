package pathfind

import "github.com/lvlath-sim/dispatchgrid/world"

// Cache memoizes Path-length lookups for a single tick. The auction agent's
// nearest-insertion routing and the broker's bundle costing both re-query
// the same handful of (from, to) pairs many times per tick; the teacher's
// own guidance ("implementers may memoize bundle costs per (agent, set)",
// tsp/approx.go) is applied here one level down, at the path-length grain
// shared by every bundle.
//
// A Cache is not safe across ticks: agent positions change, so it must be
// discarded (or Reset) at each tick boundary.
type Cache struct {
	g       *world.Grid
	lengths map[[2]world.Position]int
}

// NewCache returns a Cache bound to g.
func NewCache(g *world.Grid) *Cache {
	return &Cache{g: g, lengths: make(map[[2]world.Position]int)}
}

// Reset clears memoized entries, for reuse across ticks.
func (c *Cache) Reset() {
	c.lengths = make(map[[2]world.Position]int)
}

// PathLen returns the shortest-path length from -> to, excluding the
// starting cell (i.e. len(Path)-1), memoized for the lifetime of c.
func (c *Cache) PathLen(from, to world.Position) (int, error) {
	key := [2]world.Position{from, to}
	if n, ok := c.lengths[key]; ok {
		return n, nil
	}
	path, err := Path(c.g, from, to)
	if err != nil {
		return 0, err
	}
	n := len(path) - 1
	c.lengths[key] = n
	return n, nil
}
