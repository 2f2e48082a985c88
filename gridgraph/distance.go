package gridgraph

import (
	"container/list"
)

// Distance returns the length of the shortest 4-connected path from `from`
// to `to` counting unit steps, and whether such a path exists.
// It is a plain breadth-first search with no heuristic, used to check
// search results and to answer reachability questions.
//
// Behavior:
//  1. Out-of-bounds or Obstacle endpoints are unreachable.
//  2. from == to has distance 0.
//  3. BFS over the current adjacency until `to` is dequeued.
//
// Complexity: O(N²) time, O(N²) memory for distances.
func (g *Grid) Distance(from, to Coordinate) (int, bool) {
	adj := g.RefreshNeighbors()
	if adj.Blocked(from) || adj.Blocked(to) {
		return 0, false
	}

	total := adj.size * adj.size
	const unseen = -1
	dist := make([]int, total)
	for i := range dist {
		dist[i] = unseen
	}

	q := list.New()
	dist[g.index(from)] = 0
	q.PushBack(from)

	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		u := e.Value.(Coordinate)
		if u == to {
			return dist[g.index(u)], true
		}
		for _, v := range adj.Neighbors(u) {
			vi := g.index(v)
			if dist[vi] != unseen {
				continue
			}
			dist[vi] = dist[g.index(u)] + 1
			q.PushBack(v)
		}
	}

	return 0, false
}
