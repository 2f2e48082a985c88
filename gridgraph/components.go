package gridgraph

// Components finds all contiguous regions of traversable cells (any state
// other than Obstacle) under 4-connectivity.
// Returns a slice of components; each component lists its cells in BFS
// discovery order, and components appear in row-major order of their first cell.
//
// Time:   O(N²).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Components() [][]Coordinate {
	adj := g.RefreshNeighbors()
	total := adj.size * adj.size
	seen := make([]bool, total)
	var comps [][]Coordinate

	for i0 := 0; i0 < total; i0++ {
		if adj.blocked[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uc := g.Coordinate(u)
			comp = append(comp, uc)
			for _, v := range adj.neighbors[u] {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a and b lie in the same traversable region.
// Obstacle or out-of-bounds endpoints are never connected.
func (g *Grid) Connected(a, b Coordinate) bool {
	_, ok := g.Distance(a, b)

	return ok
}
