// Package pathfind computes shortest paths on a world.Grid using A* with
// 4-connected movement, uniform step cost 1, and a Manhattan-distance
// heuristic. Cells containing an Obstacle are impassable; every other cell
// is passable, including cells holding stations or other agents — this
// environment does not model agent-agent collisions (world.Grid doc).
//
// Complexity: O((W·H) log(W·H)) worst case, the same bound as the
// lazy-decrease-key Dijkstra this package is modeled on, since an admissible
// heuristic on a uniform-cost grid never does asymptotically better than
// Dijkstra in the worst case.
package pathfind
