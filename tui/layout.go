package tui

import "github.com/katalvlaran/gridastar/gridgraph"

// Layout places an N×N grid on the terminal. The grid is framed by a
// one-cell border, so cell (0,0) starts at (OriginX, OriginY).
type Layout struct {
	Size       int // N
	CellWidth  int // terminal columns per cell
	CellHeight int // terminal rows per cell
	OriginX    int
	OriginY    int
}

// NewLayout returns a framed layout with one row per cell. Non-positive
// widths are raised to 1.
func NewLayout(size, cellWidth int) Layout {
	if cellWidth < 1 {
		cellWidth = 1
	}

	return Layout{Size: size, CellWidth: cellWidth, CellHeight: 1, OriginX: 1, OriginY: 1}
}

// CellAt maps a terminal position to the grid cell under it.
// Positions on the frame or outside the grid report false.
func (l Layout) CellAt(x, y int) (gridgraph.Coordinate, bool) {
	if x < l.OriginX || y < l.OriginY || l.CellWidth <= 0 || l.CellHeight <= 0 {
		return gridgraph.Coordinate{}, false
	}
	c := gridgraph.Coordinate{
		Row: (y - l.OriginY) / l.CellHeight,
		Col: (x - l.OriginX) / l.CellWidth,
	}
	if c.Row >= l.Size || c.Col >= l.Size {
		return gridgraph.Coordinate{}, false
	}

	return c, true
}

// Origin returns the top-left terminal position of cell c.
func (l Layout) Origin(c gridgraph.Coordinate) (x, y int) {
	return l.OriginX + c.Col*l.CellWidth, l.OriginY + c.Row*l.CellHeight
}

// Width is the framed grid width in terminal columns.
func (l Layout) Width() int {
	return 2*l.OriginX + l.Size*l.CellWidth
}

// Height is the framed grid height in terminal rows.
func (l Layout) Height() int {
	return 2*l.OriginY + l.Size*l.CellHeight
}
