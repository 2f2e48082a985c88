package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// reconstructPath walks cameFrom backward from end until it reaches a cell
// with no predecessor (start) and returns the cells in start … end order.
// Strict relaxation keeps cameFrom acyclic, so the walk terminates.
func reconstructPath(cameFrom map[gridgraph.Coordinate]gridgraph.Coordinate, end gridgraph.Coordinate) []gridgraph.Coordinate {
	path := []gridgraph.Coordinate{end}
	for cur, ok := cameFrom[end]; ok; cur, ok = cameFrom[cur] {
		path = append(path, cur)
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// animatePath marks the intermediate cells of path as MarkPath, walking from
// End back towards Start, and raises one EventPath per cell. Returns false if
// the search was cancelled part way; the caller withdraws the marks.
func (r *runner) animatePath(path []gridgraph.Coordinate) bool {
	step := 0
	for i := len(path) - 2; i >= 1; i-- {
		if r.cancelled() {
			return false
		}
		step++
		r.overlay.set(path[i], MarkPath)
		r.notify(Event{
			Kind:    EventPath,
			Step:    step,
			Current: path[i],
			Mark:    MarkPath,
			Overlay: r.overlay,
		})
	}

	return !r.cancelled()
}
