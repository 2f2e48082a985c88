package gridgraph

// Neighbors returns the in-bounds, non-Obstacle neighbors of c in the fixed
// order down, up, right, left. An out-of-bounds c has no neighbors.
// The result reflects obstacle state at the time of the call.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	if !g.InBounds(c) {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.neighborsLocked(c)
}

// neighborsLocked assumes g.mu is held for reading.
func (g *Grid) neighborsLocked(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !g.InBounds(n) || g.states[g.index(n)] == Obstacle {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Adjacency is an immutable snapshot of every cell's neighbor list, taken by
// RefreshNeighbors. Later edits to the Grid do not affect it.
type Adjacency struct {
	size      int
	blocked   []bool
	neighbors [][]Coordinate
}

// RefreshNeighbors recomputes the neighbor list of every cell once, under a
// single read lock, and returns the result as an Adjacency snapshot.
// A search calls this immediately before starting so that obstacle edits made
// while it runs are not seen.
// Complexity: O(N²) time and memory.
func (g *Grid) RefreshNeighbors() *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := g.size * g.size
	a := &Adjacency{
		size:      g.size,
		blocked:   make([]bool, total),
		neighbors: make([][]Coordinate, total),
	}
	for i := 0; i < total; i++ {
		c := g.Coordinate(i)
		a.blocked[i] = g.states[i] == Obstacle
		a.neighbors[i] = g.neighborsLocked(c)
	}

	return a
}

// Size returns N of the grid the snapshot was taken from.
func (a *Adjacency) Size() int {
	return a.size
}

// InBounds reports whether c lies within the snapshot's grid.
func (a *Adjacency) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < a.size && c.Col >= 0 && c.Col < a.size
}

// Blocked reports whether c was an Obstacle when the snapshot was taken.
// Out-of-bounds coordinates are reported as blocked.
func (a *Adjacency) Blocked(c Coordinate) bool {
	if !a.InBounds(c) {
		return true
	}

	return a.blocked[c.Row*a.size+c.Col]
}

// Neighbors returns the snapshot neighbor list of c in the order down, up,
// right, left. The returned slice must not be modified.
func (a *Adjacency) Neighbors(c Coordinate) []Coordinate {
	if !a.InBounds(c) {
		return nil
	}

	return a.neighbors[c.Row*a.size+c.Col]
}
