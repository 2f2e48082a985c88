package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/gridgraph"
)

// Palette maps cell states and search marks to tcell styles.
type Palette struct {
	Free     tcell.Style
	Obstacle tcell.Style
	Start    tcell.Style
	End      tcell.Style
	Open     tcell.Style
	Closed   tcell.Style
	Path     tcell.Style
	GridLine tcell.Style
	Status   tcell.Style
}

// DefaultPalette returns the classic A* visualizer colours: orange start,
// turquoise end, black walls, green frontier, red closed set, purple path on a
// white board framed in grey.
func DefaultPalette() Palette {
	bg := func(c tcell.Color) tcell.Style {
		return tcell.StyleDefault.Background(c).Foreground(c)
	}

	return Palette{
		Free:     bg(tcell.ColorWhite),
		Obstacle: bg(tcell.ColorBlack),
		Start:    bg(tcell.ColorOrange),
		End:      bg(tcell.ColorTurquoise),
		Open:     bg(tcell.ColorGreen),
		Closed:   bg(tcell.ColorRed),
		Path:     bg(tcell.ColorPurple),
		GridLine: tcell.StyleDefault.Foreground(tcell.ColorGrey),
		Status:   tcell.StyleDefault,
	}
}

// Cell returns the style of a cell in state s carrying mark m.
// Start, End and Obstacle win over any mark.
func (p Palette) Cell(s gridgraph.State, m astar.Mark) tcell.Style {
	switch s {
	case gridgraph.Start:
		return p.Start
	case gridgraph.End:
		return p.End
	case gridgraph.Obstacle:
		return p.Obstacle
	}

	switch m {
	case astar.MarkOpen:
		return p.Open
	case astar.MarkClosed:
		return p.Closed
	case astar.MarkPath:
		return p.Path
	default:
		return p.Free
	}
}
