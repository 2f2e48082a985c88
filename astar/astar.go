package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/observability"
)

// eventSource is the Source of every observer event raised here.
const eventSource = "astar"

// FindPath searches g for a shortest 4-connected path from start to end.
//
// Returns:
//
//   - Result with Outcome Found (Path, Cost set), Exhausted or Cancelled.
//   - err: only for invalid input; "no path" and cancellation are Outcomes.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and end must lie inside g (ErrOutOfBounds, which also matches
//     gridgraph.ErrInvalidTransition).
//
// Cancellation is checked at the top of every iteration: ctx.Done(), or a
// previous OnProgress call returning false. A start or end cell that is an
// Obstacle yields Exhausted without expanding anything.
//
// Options customization:
//
//   - WithOnProgress(fn): one call per expanded cell and per path step.
//   - WithHeuristic(h): replace Manhattan.
//   - WithObserver(obs): lifecycle events (search.start, search.found, ...).
//   - WithTracer(t): tracer for the astar.FindPath span.
//   - WithMaxExpansions(n): cap the number of expansions (n ≥ 0).
func FindPath(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Coordinate, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v: %w", ErrOutOfBounds, start, gridgraph.ErrInvalidTransition)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v: %w", ErrOutOfBounds, end, gridgraph.ErrInvalidTransition)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 3) Open the span and announce the run
	id := uuid.Must(uuid.NewV7()).String()
	ctx, span := cfg.Tracer.Start(ctx, "astar.FindPath",
		trace.WithAttributes(
			attribute.String("search.id", id),
			attribute.String("search.start", start.String()),
			attribute.String("search.end", end.String()),
			attribute.Int("grid.size", g.Size()),
		),
	)
	defer span.End()

	began := time.Now()
	emit(ctx, cfg.Observer, observability.EventSearchStart, observability.LevelVerbose, map[string]any{
		observability.KeyID:    id,
		observability.KeyStart: start.String(),
		observability.KeyEnd:   end.String(),
		observability.KeySize:  g.Size(),
	})

	// 4) Refresh neighbors once, then run
	r := newRunner(ctx, g.RefreshNeighbors(), start, end, cfg)
	res := r.run()
	res.ID = id

	// 5) Report
	elapsed := time.Since(began)
	span.SetAttributes(
		attribute.String("search.outcome", res.Outcome.String()),
		attribute.Int("search.cost", res.Cost),
		attribute.Int("search.expanded", res.Expanded),
		attribute.Bool("search.truncated", res.Truncated),
	)
	span.SetStatus(codes.Ok, res.Outcome.String())

	data := map[string]any{
		observability.KeyID:       id,
		observability.KeyStart:    start.String(),
		observability.KeyEnd:      end.String(),
		observability.KeyExpanded: res.Expanded,
		observability.KeyDuration: elapsed,
	}
	switch res.Outcome {
	case Found:
		data[observability.KeyCost] = res.Cost
		emit(ctx, cfg.Observer, observability.EventSearchFound, observability.LevelInfo, data)
	case Exhausted:
		emit(ctx, cfg.Observer, observability.EventSearchExhausted, observability.LevelInfo, data)
	default:
		emit(ctx, cfg.Observer, observability.EventSearchCancelled, observability.LevelWarning, data)
	}

	return res, nil
}

// Solve runs FindPath between the grid's own Start and End cells.
// Returns ErrNilGrid, or ErrMissingEndpoint if either role is unset.
func Solve(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	start, okS := g.Start()
	end, okE := g.End()
	if !okS || !okE {
		return Result{}, ErrMissingEndpoint
	}

	return FindPath(ctx, g, start, end, opts...)
}

// emit sends one lifecycle event to obs.
func emit(ctx context.Context, obs observability.Observer, typ observability.EventType, lvl observability.Level, data map[string]any) {
	obs.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     lvl,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}

// runner holds the mutable state for a single A* execution. It is created
// fresh per call and discarded when the call returns.
type runner struct {
	ctx        context.Context
	adj        *gridgraph.Adjacency
	start, end gridgraph.Coordinate
	options    Options

	cameFrom map[gridgraph.Coordinate]gridgraph.Coordinate // predecessor on best known path
	gScore   map[gridgraph.Coordinate]int                  // best known cost from start; absent = +∞
	fScore   map[gridgraph.Coordinate]int                  // gScore + heuristic; absent = +∞

	frontier frontierPQ                             // min-heap on (f, seq)
	members  mapset.Set[gridgraph.Coordinate]       // cells with a live frontier entry
	items    map[gridgraph.Coordinate]*frontierItem // heap handles for decrease-key
	seq      int                                    // last insertion sequence used

	overlay  *Overlay
	expanded int
	steps    int  // EventExpand count
	stopped  bool // OnProgress asked to stop
}

func newRunner(ctx context.Context, adj *gridgraph.Adjacency, start, end gridgraph.Coordinate, cfg Options) *runner {
	n := adj.Size() * adj.Size()

	return &runner{
		ctx:      ctx,
		adj:      adj,
		start:    start,
		end:      end,
		options:  cfg,
		cameFrom: make(map[gridgraph.Coordinate]gridgraph.Coordinate, n),
		gScore:   make(map[gridgraph.Coordinate]int, n),
		fScore:   make(map[gridgraph.Coordinate]int, n),
		frontier: make(frontierPQ, 0, n),
		members:  mapset.New[gridgraph.Coordinate](),
		items:    make(map[gridgraph.Coordinate]*frontierItem, n),
		overlay:  newOverlay(adj.Size()),
	}
}

// run drives the search from Initializing through Expanding to Terminal.
func (r *runner) run() Result {
	res := Result{Overlay: r.overlay}

	// An obstacle endpoint can never lie on a legal path.
	if r.adj.Blocked(r.start) || r.adj.Blocked(r.end) {
		res.Outcome = Exhausted

		return res
	}

	r.init()
	res.Outcome, res.Truncated = r.process()
	res.Expanded = r.expanded
	if res.Outcome != Found {
		return res
	}

	path := reconstructPath(r.cameFrom, r.end)
	if !r.animatePath(path) {
		r.overlay.clear(MarkPath)
		res.Outcome = Cancelled

		return res
	}
	res.Path = path
	res.Cost = r.gScore[r.end]

	return res
}

// init seeds g(start)=0, f(start)=h(start,end) and pushes start with sequence 0.
func (r *runner) init() {
	heap.Init(&r.frontier)
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.options.Heuristic(r.start, r.end)
	r.push(r.start, r.fScore[r.start])
}

// process is the expansion loop. It returns the terminal outcome and
// whether the expansion cap cut the search short.
//
// Loop termination conditions:
//
//   - End is popped (Found).
//   - The frontier is empty, or MaxExpansions is reached (Exhausted).
//   - ctx is done or OnProgress returned false (Cancelled).
func (r *runner) process() (Outcome, bool) {
	for {
		// 1) cancellation check (once per loop)
		if r.cancelled() {
			return Cancelled, false
		}

		// 2) empty frontier: no path exists
		if r.frontier.Len() == 0 {
			return Exhausted, false
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Exhausted, true
		}

		// 3) pop the lowest (f, seq) and leave the frontier
		item := heap.Pop(&r.frontier).(*frontierItem)
		current := item.cell
		r.members.Remove(current)
		delete(r.items, current)
		r.expanded++

		// 4) goal test
		if current == r.end {
			return Found, false
		}

		// 5) relax neighbors, close current, report once
		opened := r.relax(current)
		mark := MarkNone
		if current != r.start {
			mark = MarkClosed
			r.overlay.set(current, mark)
		}
		r.steps++
		r.notify(Event{
			Kind:    EventExpand,
			Step:    r.steps,
			Current: current,
			Mark:    mark,
			Opened:  opened,
			Overlay: r.overlay,
		})
	}
}

// relax examines each neighbor of u and records any strictly cheaper path
// through u. Cells not yet queued are pushed with a fresh sequence number;
// queued cells get their key lowered in place. Returns the newly pushed cells.
func (r *runner) relax(u gridgraph.Coordinate) []gridgraph.Coordinate {
	var opened []gridgraph.Coordinate
	tentative := r.gScore[u] + 1 // unit edge cost

	for _, v := range r.adj.Neighbors(u) {
		// Strict improvement only; this is what keeps cameFrom acyclic.
		if tentative >= r.g(v) {
			continue
		}
		r.cameFrom[v] = u
		r.gScore[v] = tentative
		r.fScore[v] = tentative + r.options.Heuristic(v, r.end)

		if r.members.Has(v) {
			item := r.items[v]
			item.f = r.fScore[v]
			heap.Fix(&r.frontier, item.index)
			continue
		}

		r.push(v, r.fScore[v])
		if v != r.start && v != r.end {
			r.overlay.set(v, MarkOpen)
		}
		opened = append(opened, v)
	}

	return opened
}

// push queues c with key f and the next sequence number.
func (r *runner) push(c gridgraph.Coordinate, f int) {
	item := &frontierItem{cell: c, f: f, seq: r.seq}
	r.seq++
	heap.Push(&r.frontier, item)
	r.members.Put(c)
	r.items[c] = item
}

// g returns the best known cost of c, +∞ if none.
func (r *runner) g(c gridgraph.Coordinate) int {
	if v, ok := r.gScore[c]; ok {
		return v
	}

	return math.MaxInt
}

// notify hands ev to OnProgress and remembers a stop request.
func (r *runner) notify(ev Event) {
	if r.options.OnProgress == nil {
		return
	}
	if !r.options.OnProgress(ev) {
		r.stopped = true
	}
}

// cancelled reports whether the caller asked to stop.
func (r *runner) cancelled() bool {
	if r.stopped {
		return true
	}
	select {
	case <-r.ctx.Done():
		return true
	default:
		return false
	}
}
