// Package astar provides a deterministic A* shortest-path search over a
// gridgraph.Grid with 4-directional unit-cost moves.
//
// Overview:
//
//   - FindPath searches from a start cell to an end cell; Solve uses the
//     grid's own Start and End roles.
//   - The frontier is a min-heap keyed by f = g + h with decrease-key; ties are
//     broken by insertion order, so repeated runs expand cells identically.
//   - Presentation state (open, closed, path) lives in an Overlay owned by the
//     engine. The grid is read once, through an Adjacency snapshot.
//   - OnProgress is raised after each expansion and once per path cell while
//     the path is traced back from End. Returning false cancels.
//
// Outcomes:
//
//   - Found:     Result.Path (start … end inclusive) and Result.Cost are set.
//   - Exhausted: the frontier emptied; no path exists. Not an error.
//   - Cancelled: ctx was done or OnProgress returned false. No path is applied.
//
// Performance and complexity:
//
//   - Time:  O(V log V), V = N² cells.
//   - Space: O(V).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil grid.
//   - ErrOutOfBounds:     start or end outside the grid; wraps
//     gridgraph.ErrInvalidTransition as well.
//   - ErrMissingEndpoint: Solve on a grid without Start or End.
//   - ErrOptionViolation: an invalid Option, e.g. WithMaxExpansions(-1).
//
// Observability:
//
//   - Each run gets a UUIDv7 id (Result.ID).
//   - An "astar.FindPath" span is opened on Options.Tracer.
//   - search.start and one of search.found / search.exhausted /
//     search.cancelled are sent to Options.Observer.
//
// API reference:
//
//	func FindPath(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Coordinate,
//	    opts ...Option) (Result, error)
//	func Solve(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error)
package astar
