package gridgraph

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cell symbols used by Parse and String.
const (
	SymbolFree     = '.'
	SymbolObstacle = '#'
	SymbolStart    = 'S'
	SymbolEnd      = 'E'
)

// Parse builds a grid from ASCII rows, one string per row:
//
//	'.'       Free
//	'#', 'X'  Obstacle
//	'S'       Start
//	'E'       End
//
// Surrounding whitespace on each row is ignored and blank rows are skipped.
// The rows must form a square and hold at most one 'S' and one 'E'.
// Returns ErrEmptyGrid, ErrNonSquare or ErrBadSymbol for malformed input.
func Parse(rows ...string) (*Grid, error) {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		lines = append(lines, r)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(lines)
	for i, l := range lines {
		if len(l) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i, len(l), n)
		}
	}

	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	var seenStart, seenEnd bool
	for r, l := range lines {
		for c, ch := range []byte(l) {
			var s State
			switch ch {
			case SymbolFree:
				continue
			case SymbolObstacle, 'X':
				s = Obstacle
			case SymbolStart:
				if seenStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrBadSymbol, ch, r, c)
				}
				seenStart = true
				s = Start
			case SymbolEnd:
				if seenEnd {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrBadSymbol, ch, r, c)
				}
				seenEnd = true
				s = End
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, ch, r, c)
			}
			if err = g.SetState(Coordinate{Row: r, Col: c}, s); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}

	return g
}

// String renders the grid with the Parse alphabet, one line per row.
func (g *Grid) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for i, s := range g.states {
		switch s {
		case Obstacle:
			b.WriteByte(SymbolObstacle)
		case Start:
			b.WriteByte(SymbolStart)
		case End:
			b.WriteByte(SymbolEnd)
		default:
			b.WriteByte(SymbolFree)
		}
		if (i+1)%g.size == 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Scatter turns each Free cell into an Obstacle with probability density.
// Start, End and existing obstacles are left untouched. The same rng seed
// always yields the same layout.
// Returns ErrBadDensity if density is outside [0, 1].
// Complexity: O(N²).
func (g *Grid) Scatter(rng *rand.Rand, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, s := range g.states {
		// Draw for every cell so the layout depends only on the seed.
		p := rng.Float64()
		if s != Free {
			continue
		}
		if p < density {
			g.states[i] = Obstacle
		}
	}

	return nil
}
