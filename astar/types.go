// Package astar defines core types, options, and sentinel errors
// for the A* grid search engine.
package astar

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/observability"
)

// Sentinel errors returned by FindPath and Solve.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or end lies outside the grid.
	// It is always returned together with gridgraph.ErrInvalidTransition.
	ErrOutOfBounds = errors.New("astar: endpoint outside grid")

	// ErrMissingEndpoint indicates that Solve was called on a grid without
	// a Start or End cell.
	ErrMissingEndpoint = errors.New("astar: grid has no start or end")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Outcome is the terminal phase of a search.
// Exhausted and Cancelled are ordinary results, not errors.
type Outcome int

const (
	// Found means End was reached; Result.Path and Result.Cost are set.
	Found Outcome = iota + 1
	// Exhausted means the frontier emptied (or the expansion cap was hit)
	// without reaching End: no path exists under the current obstacles.
	Exhausted
	// Cancelled means the caller stopped the search early.
	Cancelled
)

// String returns the lower-case name of o.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Mark is the presentation classification of a cell during a search.
// Marks live in an Overlay owned by the engine, never in the Grid.
type Mark int

const (
	// MarkNone is an untouched cell (and always Start and End).
	MarkNone Mark = iota
	// MarkOpen is a cell currently queued in the frontier.
	MarkOpen
	// MarkClosed is a cell that has been expanded.
	MarkClosed
	// MarkPath is an intermediate cell on the returned path.
	MarkPath
)

// String returns the lower-case name of m.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkOpen:
		return "open"
	case MarkClosed:
		return "closed"
	case MarkPath:
		return "path"
	default:
		return fmt.Sprintf("mark(%d)", int(m))
	}
}

// EventKind tells where in the search a progress Event was raised.
type EventKind int

const (
	// EventExpand is raised once per expanded cell, after its neighbors
	// have been relaxed.
	EventExpand EventKind = iota + 1
	// EventPath is raised once per intermediate cell during path
	// reconstruction, walking from End back towards Start.
	EventPath
)

// String returns the lower-case name of k.
func (k EventKind) String() string {
	switch k {
	case EventExpand:
		return "expand"
	case EventPath:
		return "path"
	default:
		return "unknown"
	}
}

// Event carries what changed at a progress point.
type Event struct {
	// Kind is EventExpand or EventPath.
	Kind EventKind
	// Step counts events of this Kind, starting at 1.
	Step int
	// Current is the expanded cell or the path cell just marked.
	Current gridgraph.Coordinate
	// Mark is the new mark of Current. Start keeps MarkNone.
	Mark Mark
	// Opened lists the cells pushed onto the frontier during this
	// expansion, in neighbor order. Nil for EventPath.
	Opened []gridgraph.Coordinate
	// Overlay is the engine's live mark table. Read it, never modify it.
	Overlay *Overlay
}

// ProgressFunc observes a running search. It is called synchronously and
// must be fast and read-only: it must not mutate the grid or the Overlay.
// Returning false asks the engine to stop; the search then ends Cancelled.
type ProgressFunc func(ev Event) bool

// Result holds the outcome of one search:
//   - ID: unique run identifier (UUIDv7), also attached to observer events.
//   - Outcome: Found, Exhausted or Cancelled.
//   - Path: start … end inclusive when Found, nil otherwise.
//   - Cost: number of unit steps along Path (len(Path)-1) when Found.
//   - Expanded: number of cells popped from the frontier.
//   - Truncated: the search stopped at Options.MaxExpansions.
//   - Overlay: final presentation marks.
type Result struct {
	ID        string
	Outcome   Outcome
	Path      []gridgraph.Coordinate
	Cost      int
	Expanded  int
	Truncated bool
	Overlay   *Overlay
}

// Found reports whether a path was found.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// tracerName is the instrumentation scope used for spans.
const tracerName = "github.com/katalvlaran/gridastar/astar"

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. a negative expansion cap), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and hooks that customize a search.
type Options struct {
	// OnProgress is called once per expansion and once per path step.
	OnProgress ProgressFunc

	// Heuristic estimates the remaining cost. Must be admissible for the
	// returned path to be optimal. Default: Manhattan.
	Heuristic Heuristic

	// Observer receives search lifecycle events. Default: NoOpObserver.
	Observer observability.Observer

	// Tracer opens the astar.FindPath span. Default: the global otel tracer.
	Tracer trace.Tracer

	// MaxExpansions, if > 0, stops the search as Exhausted (Truncated)
	// after that many cells have been expanded. 0 means no cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no progress hook
//   - Manhattan heuristic
//   - NoOpObserver
//   - global otel tracer (no-op unless an SDK is installed)
//   - no expansion cap
func DefaultOptions() Options {
	return Options{
		OnProgress:    nil,
		Heuristic:     Manhattan,
		Observer:      observability.NoOpObserver{},
		Tracer:        otel.Tracer(tracerName),
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithOnProgress registers the progress hook.
func WithOnProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. Optimality holds only if
// h never overestimates the remaining number of steps.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithObserver sets the lifecycle event observer.
func WithObserver(obs observability.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithTracer sets the tracer used for the search span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0:  stop after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
