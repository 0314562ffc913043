package pathfind

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/lvlath-sim/dispatchgrid/world"
)

// ErrNoPath indicates no passable route connects from and to.
var ErrNoPath = errors.New("pathfind: no path exists")

// neighborOffsets lists the four orthogonal moves; diagonals are never
// considered (spec.md §4.1).
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Path returns a shortest sequence of positions from from to to, inclusive
// of both endpoints. Returns ErrNoPath if to is unreachable.
func Path(g *world.Grid, from, to world.Position) ([]world.Position, error) {
	if from == to {
		return []world.Position{from}, nil
	}
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, fmt.Errorf("pathfind: %v -> %v: %w", from, to, ErrNoPath)
	}
	if g.HasObstacle(to) {
		return nil, fmt.Errorf("pathfind: destination %v is an obstacle: %w", to, ErrNoPath)
	}

	came, ok := search(g, from, to)
	if !ok {
		return nil, fmt.Errorf("pathfind: %v -> %v: %w", from, to, ErrNoPath)
	}
	return reconstruct(came, from, to), nil
}

// NextStep returns the first step on a shortest path from from to to.
// Returns ErrNoPath if to is unreachable.
func NextStep(g *world.Grid, from, to world.Position) (world.Position, error) {
	path, err := Path(g, from, to)
	if err != nil {
		return world.Position{}, err
	}
	if len(path) < 2 {
		// from == to: no movement needed; stay in place.
		return from, nil
	}
	return path[1], nil
}

func manhattan(a, b world.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// search runs A* from start towards goal and returns the predecessor map
// covering every expanded node, mirroring the lazy-decrease-key pattern
// used by this module's Dijkstra ancestor: duplicate heap entries are
// pushed on relaxation and stale ones are skipped on pop via gScore
// comparison rather than removed in place.
func search(g *world.Grid, start, goal world.Position) (map[world.Position]world.Position, bool) {
	open := &posHeap{}
	heap.Init(open)
	heap.Push(open, &posNode{pos: start, g: 0, f: manhattan(start, goal)})

	gScore := map[world.Position]int{start: 0}
	came := make(map[world.Position]world.Position)
	closed := make(map[world.Position]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*posNode)
		if closed[cur.pos] {
			continue
		}
		if cur.pos == goal {
			return came, true
		}
		closed[cur.pos] = true

		for _, d := range neighborOffsets {
			next := cur.pos.Add(d[0], d[1])
			if !g.InBounds(next) || g.HasObstacle(next) || closed[next] {
				continue
			}
			tentative := gScore[cur.pos] + 1
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			gScore[next] = tentative
			came[next] = cur.pos
			heap.Push(open, &posNode{pos: next, g: tentative, f: tentative + manhattan(next, goal)})
		}
	}
	return nil, false
}

func reconstruct(came map[world.Position]world.Position, start, goal world.Position) []world.Position {
	path := []world.Position{goal}
	cur := goal
	for cur != start {
		cur = came[cur]
		path = append(path, cur)
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// posNode is a single A* frontier entry.
type posNode struct {
	pos world.Position
	g   int // cost so far
	f   int // g + heuristic
}

// posHeap is a min-heap of *posNode ordered by ascending f, the same
// lazy-decrease-key shape as this module's Dijkstra predecessor.
type posHeap []*posNode

func (h posHeap) Len() int            { return len(h) }
func (h posHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h posHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *posHeap) Push(x interface{}) { *h = append(*h, x.(*posNode)) }
func (h *posHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
