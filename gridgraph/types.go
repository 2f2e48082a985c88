// Package gridgraph defines core types, states, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridastar.
package gridgraph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidTransition indicates a rejected grid mutation: a coordinate
	// outside the grid, or a grid constructed with a non-positive size.
	ErrInvalidTransition = errors.New("gridgraph: invalid transition")
	// ErrEmptyGrid indicates an ASCII fixture has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonSquare indicates an ASCII fixture whose rows differ in length or
	// whose row count differs from its column count.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrBadSymbol indicates an ASCII fixture contains an unknown cell symbol
	// or repeats 'S' or 'E'.
	ErrBadSymbol = errors.New("gridgraph: unknown cell symbol")
	// ErrBadDensity indicates an obstacle density outside [0, 1].
	ErrBadDensity = errors.New("gridgraph: density must be within [0, 1]")
)

// State is the traversal state and identity of a single cell.
// The four states are mutually exclusive.
type State int

const (
	// Free cells are traversable and carry no role.
	Free State = iota
	// Obstacle cells are never traversable.
	Obstacle
	// Start marks the unique search origin.
	Start
	// End marks the unique search target.
	End
)

// String returns the lower-case name of s.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Coordinate identifies a cell by position. Two cells are equal iff their
// coordinates match.
type Coordinate struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets is the fixed 4-directional neighbor order:
// down (row+1), up (row-1), right (col+1), left (col-1).
// The order only decides which of several equal-cost paths a search returns.
var neighborOffsets = [4]Coordinate{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// noCell marks an unset Start or End role.
var noCell = Coordinate{Row: -1, Col: -1}

// Grid is a fixed-size N×N lattice of cells. It owns every cell for its
// lifetime; cells never move. Start and End are tracked so that at most one
// cell holds each role.
//
// All methods are safe for concurrent use.
type Grid struct {
	mu     sync.RWMutex
	size   int
	states []State // row-major, len = size*size
	start  Coordinate
	end    Coordinate
}
