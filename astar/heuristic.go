package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// Heuristic estimates the remaining cost from a to b. It must be pure and
// non-negative.
type Heuristic func(a, b gridgraph.Coordinate) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// On a 4-connected unit-cost grid it is admissible and consistent, so the
// first time End leaves the frontier its cost is optimal.
func Manhattan(a, b gridgraph.Coordinate) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
