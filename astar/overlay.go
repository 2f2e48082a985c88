package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// Overlay is the per-cell Mark table of one search. The engine owns and
// writes it; the grid is never touched. A nil *Overlay reads as all MarkNone.
type Overlay struct {
	size  int
	marks []Mark
}

func newOverlay(size int) *Overlay {
	return &Overlay{size: size, marks: make([]Mark, size*size)}
}

// Size returns N of the grid the overlay belongs to.
func (o *Overlay) Size() int {
	if o == nil {
		return 0
	}

	return o.size
}

// At returns the mark of c, or MarkNone if c is outside the overlay.
func (o *Overlay) At(c gridgraph.Coordinate) Mark {
	if o == nil || c.Row < 0 || c.Row >= o.size || c.Col < 0 || c.Col >= o.size {
		return MarkNone
	}

	return o.marks[c.Row*o.size+c.Col]
}

// Count returns how many cells carry mark m.
func (o *Overlay) Count(m Mark) int {
	if o == nil {
		return 0
	}
	n := 0
	for _, v := range o.marks {
		if v == m {
			n++
		}
	}

	return n
}

// Clone returns an independent copy of o.
func (o *Overlay) Clone() *Overlay {
	if o == nil {
		return nil
	}
	c := &Overlay{size: o.size, marks: make([]Mark, len(o.marks))}
	copy(c.marks, o.marks)

	return c
}

func (o *Overlay) set(c gridgraph.Coordinate, m Mark) {
	o.marks[c.Row*o.size+c.Col] = m
}

// clear resets every cell carrying mark m to MarkClosed.
// Used to withdraw path marks when path reconstruction is cancelled.
func (o *Overlay) clear(m Mark) {
	for i, v := range o.marks {
		if v == m {
			o.marks[i] = MarkClosed
		}
	}
}
