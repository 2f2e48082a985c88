package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Box-drawing runes for the frame around the grid.
const (
	frameH  = '─'
	frameV  = '│'
	frameTL = '┌'
	frameTR = '┐'
	frameBL = '└'
	frameBR = '┘'
)

// draw renders the frame, every cell and the status line, then shows the
// frame on screen.
func (s *Session) draw() {
	s.screen.Clear()
	s.drawFrame()

	n := s.grid.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := gridgraph.Coordinate{Row: r, Col: c}
			state, _ := s.grid.State(cell)
			s.fillCell(cell, s.palette.Cell(state, s.overlay.At(cell)))
		}
	}

	s.drawText(0, s.layout.Height(), s.status, s.palette.Status)
	s.screen.Show()
}

func (s *Session) fillCell(c gridgraph.Coordinate, style tcell.Style) {
	x0, y0 := s.layout.Origin(c)
	for dy := 0; dy < s.layout.CellHeight; dy++ {
		for dx := 0; dx < s.layout.CellWidth; dx++ {
			s.screen.SetContent(x0+dx, y0+dy, ' ', nil, style)
		}
	}
}

func (s *Session) drawFrame() {
	w, h := s.layout.Width(), s.layout.Height()
	st := s.palette.GridLine
	for x := 1; x < w-1; x++ {
		s.screen.SetContent(x, 0, frameH, nil, st)
		s.screen.SetContent(x, h-1, frameH, nil, st)
	}
	for y := 1; y < h-1; y++ {
		s.screen.SetContent(0, y, frameV, nil, st)
		s.screen.SetContent(w-1, y, frameV, nil, st)
	}
	s.screen.SetContent(0, 0, frameTL, nil, st)
	s.screen.SetContent(w-1, 0, frameTR, nil, st)
	s.screen.SetContent(0, h-1, frameBL, nil, st)
	s.screen.SetContent(w-1, h-1, frameBR, nil, st)
}

func (s *Session) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
