// Package gridgraph provides the square lattice a path search runs on.
// It supports:
//
//   - Per-cell states (Free, Obstacle, Start, End) with a single Start and End
//   - Four-connectivity adjacency in a fixed order, plus immutable snapshots
//   - Connected regions of traversable cells and BFS distances
//   - ASCII fixtures and random obstacle layouts
//
// Obstacle cells are impassable; every other state is traversable.
package gridgraph

import (
	"fmt"
)

// NewGrid allocates a size×size grid with every cell Free and no Start or End.
// Returns ErrInvalidTransition if size is not positive.
// Complexity: O(size²) time and memory.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidTransition, size)
	}

	return &Grid{
		size:   size,
		states: make([]State, size*size),
		start:  noCell,
		end:    noCell,
	}, nil
}

// Size returns N, the number of rows (and columns).
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// State returns the state of cell c.
func (g *Grid) State(c Coordinate) (State, error) {
	if !g.InBounds(c) {
		return Free, fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidTransition, c, g.size, g.size)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.states[g.index(c)], nil
}

// SetState assigns s to cell c.
//
// Setting Start or End first clears the previous holder of that role, which
// becomes Free. Overwriting the current Start or End cell with any other state
// clears the role. Returns ErrInvalidTransition if c is out of bounds or s is
// not a known state.
func (g *Grid) SetState(c Coordinate, s State) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: cannot set %v to %s: outside %dx%d grid", ErrInvalidTransition, c, s, g.size, g.size)
	}
	if s < Free || s > End {
		return fmt.Errorf("%w: unknown state %d", ErrInvalidTransition, int(s))
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Release whatever role c holds now.
	switch c {
	case g.start:
		g.start = noCell
	case g.end:
		g.end = noCell
	}

	switch s {
	case Start:
		if g.start != noCell {
			g.states[g.index(g.start)] = Free
		}
		g.start = c
	case End:
		if g.end != noCell {
			g.states[g.index(g.end)] = Free
		}
		g.end = c
	}
	g.states[g.index(c)] = s

	return nil
}

// Reset sets cell c back to Free, releasing any role it held.
func (g *Grid) Reset(c Coordinate) error {
	return g.SetState(c, Free)
}

// Clear sets every cell Free and unsets Start and End.
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.states {
		g.states[i] = Free
	}
	g.start, g.end = noCell, noCell
}

// Start returns the Start cell and whether one is set.
func (g *Grid) Start() (Coordinate, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.start != noCell
}

// End returns the End cell and whether one is set.
func (g *Grid) End() (Coordinate, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.end, g.end != noCell
}

// Count returns how many cells currently hold state s.
// Complexity: O(N²).
func (g *Grid) Count(s State) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, v := range g.states {
		if v == s {
			n++
		}
	}

	return n
}

// index maps c to a row-major index: Row*size + Col.
// Complexity: O(1).
func (g *Grid) index(c Coordinate) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.size, Col: idx % g.size}
}
