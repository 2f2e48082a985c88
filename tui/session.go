package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/observability"
)

// eventSource is the Source of observer events raised by a Session.
const eventSource = "tui"

const helpText = "left: start/end/wall  right: erase  space: solve  c: clear  r: scatter  q: quit"

var (
	// ErrNilScreen indicates that NewSession was given a nil screen.
	ErrNilScreen = errors.New("tui: screen is nil")

	// ErrNilGrid indicates that NewSession was given a nil grid.
	ErrNilGrid = errors.New("tui: grid is nil")

	// ErrScreenInit wraps a failure to initialise the terminal.
	ErrScreenInit = errors.New("tui: cannot initialise screen")
)

// Session is one interactive run: it owns the screen, edits the grid in
// response to input and keeps the overlay of the last search for drawing.
// A Session is driven by a single goroutine (Run).
type Session struct {
	screen   tcell.Screen
	grid     *gridgraph.Grid
	layout   Layout
	palette  Palette
	observer observability.Observer

	stepDelay time.Duration
	density   float64
	rng       *rand.Rand

	events  <-chan tcell.Event
	overlay *astar.Overlay
	last    *astar.Result
	status  string
}

// Option configures a Session.
type Option func(*Session)

// WithStepDelay sets the pause after every redraw while a search animates.
// Zero disables the pause; negative values are ignored.
func WithStepDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.stepDelay = d
		}
	}
}

// WithDensity sets the obstacle fraction used by the scatter key.
func WithDensity(density float64) Option {
	return func(s *Session) {
		if density >= 0 && density <= 1 {
			s.density = density
		}
	}
}

// WithCellWidth sets how many terminal columns one cell takes.
func WithCellWidth(w int) Option {
	return func(s *Session) {
		if w > 0 {
			s.layout = NewLayout(s.grid.Size(), w)
		}
	}
}

// WithPalette replaces DefaultPalette.
func WithPalette(p Palette) Option {
	return func(s *Session) {
		s.palette = p
	}
}

// WithObserver sets the observer for session and search events.
func WithObserver(obs observability.Observer) Option {
	return func(s *Session) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// WithRand sets the random source used by the scatter key.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSession prepares a session over grid. The screen is initialised by Run.
func NewSession(screen tcell.Screen, grid *gridgraph.Grid, opts ...Option) (*Session, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if grid == nil {
		return nil, ErrNilGrid
	}

	s := &Session{
		screen:   screen,
		grid:     grid,
		layout:   NewLayout(grid.Size(), 2),
		palette:  DefaultPalette(),
		observer: observability.NoOpObserver{},
		density:  0.3,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		status:   helpText,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Grid returns the grid the session edits.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Overlay returns the marks of the last search, nil before the first one.
func (s *Session) Overlay() *astar.Overlay { return s.overlay }

// Status returns the text of the status line.
func (s *Session) Status() string { return s.status }

// Last returns the result of the last search.
func (s *Session) Last() (astar.Result, bool) {
	if s.last == nil {
		return astar.Result{}, false
	}

	return *s.last, true
}

// Run initialises the screen and processes input until the user quits or
// ctx is done. The screen is finalised before Run returns.
func (s *Session) Run(ctx context.Context) error {
	if err := s.start(); err != nil {
		return err
	}
	defer s.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(events, quit)
	defer close(quit)
	s.events = events

	s.emit(ctx, observability.EventSessionStart, map[string]any{
		observability.KeySize: s.grid.Size(),
	})
	defer s.emit(ctx, observability.EventSessionStop, nil)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if s.handle(ctx, ev) {
				return nil
			}
		}
	}
}

// start initialises the terminal and draws the first frame.
func (s *Session) start() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrScreenInit, err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.draw()

	return nil
}

// handle applies one input event and reports whether the session should end.
func (s *Session) handle(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case ' ':
			if s.solve(ctx) {
				return true
			}
		case 'c', 'C':
			s.clear(ctx)
		case 'r', 'R':
			s.scatter()
		}
	case *tcell.EventMouse:
		c, ok := s.layout.CellAt(ev.Position())
		if !ok {
			return false
		}
		switch btn := ev.Buttons(); {
		case btn&tcell.ButtonPrimary != 0:
			s.place(c)
		case btn&tcell.ButtonSecondary != 0:
			_ = s.grid.Reset(c)
		default:
			return false
		}
		s.invalidate()
	}
	s.draw()

	return false
}

// place puts Start on c if no Start exists, then End, and walls after that.
// Start and End are never overwritten by a wall.
func (s *Session) place(c gridgraph.Coordinate) {
	state, err := s.grid.State(c)
	if err != nil {
		return
	}
	_, hasStart := s.grid.Start()
	_, hasEnd := s.grid.End()

	switch {
	case !hasStart && state != gridgraph.End:
		_ = s.grid.SetState(c, gridgraph.Start)
	case !hasEnd && state != gridgraph.Start:
		_ = s.grid.SetState(c, gridgraph.End)
	case state != gridgraph.Start && state != gridgraph.End:
		_ = s.grid.SetState(c, gridgraph.Obstacle)
	}
}

// solve runs an animated search. It returns true if the user asked to quit
// while the search was running.
func (s *Session) solve(ctx context.Context) bool {
	start, okS := s.grid.Start()
	end, okE := s.grid.End()
	if !okS || !okE {
		s.status = "place a start and an end first"
		return false
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := false
	progress := func(ev astar.Event) bool {
		s.overlay = ev.Overlay
		s.draw()
		if s.pollQuit() {
			quit = true
			return false
		}
		s.pause(searchCtx)

		return true
	}

	s.status = "searching..."
	res, err := astar.FindPath(searchCtx, s.grid, start, end,
		astar.WithOnProgress(progress),
		astar.WithObserver(s.observer),
	)
	if err != nil {
		s.status = err.Error()
		return false
	}
	s.overlay = res.Overlay
	s.last = &res
	s.status = s.describe(res, start, end)

	return quit
}

// describe renders a search result for the status line.
func (s *Session) describe(res astar.Result, start, end gridgraph.Coordinate) string {
	switch res.Outcome {
	case astar.Found:
		return fmt.Sprintf("found: cost %d, %d cells expanded", res.Cost, res.Expanded)
	case astar.Exhausted:
		if !s.grid.Connected(start, end) {
			return fmt.Sprintf("no path: start and end lie in different regions (%d regions), %d cells expanded",
				len(s.grid.Components()), res.Expanded)
		}
		return fmt.Sprintf("no path: %d cells expanded", res.Expanded)
	default:
		return fmt.Sprintf("cancelled after %d cells", res.Expanded)
	}
}

// pollQuit drains pending input without blocking. Only quit requests and
// resizes are acted on; edits are dropped while a search runs.
func (s *Session) pollQuit() bool {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return true
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return false
		}
	}
}

// pause sleeps for the step delay or until ctx is done.
func (s *Session) pause(ctx context.Context) {
	if s.stepDelay <= 0 {
		return
	}
	t := time.NewTimer(s.stepDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *Session) clear(ctx context.Context) {
	s.grid.Clear()
	s.overlay = nil
	s.last = nil
	s.status = helpText
	s.emit(ctx, observability.EventSessionClear, nil)
}

func (s *Session) scatter() {
	if err := s.grid.Scatter(s.rng, s.density); err != nil {
		s.status = err.Error()
		return
	}
	s.invalidate()
	s.status = fmt.Sprintf("scattered walls at density %.2f", s.density)
}

// invalidate drops the marks and result of the last search once the grid
// has been edited, so no cell keeps a colour its new state contradicts.
func (s *Session) invalidate() {
	s.overlay = nil
	s.last = nil
}

func (s *Session) emit(ctx context.Context, typ observability.EventType, data map[string]any) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
