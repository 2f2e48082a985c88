// Package gridgraph models the square lattice that an A* search runs on.
//
// What:
//
//   - Grid is an N×N matrix of cells. Each cell holds exactly one State:
//     Free, Obstacle, Start or End. At most one cell is Start and one is End.
//   - Cells are addressed by Coordinate{Row, Col}; identity is positional.
//   - Adjacency is computed, not stored: a cell's neighbors are the in-bounds,
//     non-Obstacle cells below, above, right and left of it, in that order.
//   - RefreshNeighbors takes an immutable Adjacency snapshot for a search.
//   - Components and Distance give reachability and BFS distances.
//   - Parse / String / Scatter build fixtures and random layouts.
//
// Why:
//
//   - Keeps traversal state separate from search and presentation state.
//   - A fixed neighbor order makes searches over the grid reproducible.
//
// Complexity:
//
//   - NewGrid, Clear, RefreshNeighbors, Components, Distance: O(N²).
//   - SetState, State, Neighbors:                          O(1).
//
// Errors:
//
//   - ErrInvalidTransition: out-of-bounds coordinate or non-positive size.
//   - ErrEmptyGrid:         ASCII fixture has no rows.
//   - ErrNonSquare:         ASCII fixture rows are ragged or not square.
//   - ErrBadSymbol:         ASCII fixture has an unknown symbol or a second S/E.
//   - ErrBadDensity:        Scatter density outside [0, 1].
package gridgraph
