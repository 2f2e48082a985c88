package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive sizes.
func TestNewGrid_Errors(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		g, err := gridgraph.NewGrid(size)
		if !errors.Is(err, gridgraph.ErrInvalidTransition) {
			t.Errorf("NewGrid(%d) error = %v; want ErrInvalidTransition", size, err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d) returned a grid alongside an error", size)
		}
	}
}

// TestNewGrid_AllFree checks a fresh grid has only Free cells and no roles.
func TestNewGrid_AllFree(t *testing.T) {
	g, err := gridgraph.NewGrid(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 16, g.Count(gridgraph.Free))
	_, ok := g.Start()
	assert.False(t, ok, "fresh grid must have no Start")
	_, ok = g.End()
	assert.False(t, ok, "fresh grid must have no End")
}

// TestInBounds checks InBounds on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)

	valid := []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 2}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Coordinate{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 1, Col: 3}, {Row: 0, Col: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// SetState Tests
//----------------------------------------------------------------------------//

// TestSetState_OutOfBounds ensures every state is rejected outside the grid.
func TestSetState_OutOfBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)

	for _, s := range []gridgraph.State{gridgraph.Start, gridgraph.End, gridgraph.Obstacle, gridgraph.Free} {
		err = g.SetState(gridgraph.Coordinate{Row: 3, Col: 0}, s)
		assert.ErrorIs(t, err, gridgraph.ErrInvalidTransition, "state %s", s)
	}
	err = g.SetState(gridgraph.Coordinate{Row: 0, Col: 0}, gridgraph.State(42))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidTransition)
	assert.Equal(t, 9, g.Count(gridgraph.Free), "rejected calls must not mutate the grid")
}

// TestSetState_SingleStartEnd verifies that a new Start/End clears the previous holder.
func TestSetState_SingleStartEnd(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)

	a := gridgraph.Coordinate{Row: 0, Col: 0}
	b := gridgraph.Coordinate{Row: 2, Col: 2}
	require.NoError(t, g.SetState(a, gridgraph.Start))
	require.NoError(t, g.SetState(b, gridgraph.Start))

	s, err := g.State(a)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Free, s, "previous Start must become Free")
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, b, start)
	assert.Equal(t, 1, g.Count(gridgraph.Start))

	require.NoError(t, g.SetState(a, gridgraph.End))
	require.NoError(t, g.SetState(gridgraph.Coordinate{Row: 1, Col: 1}, gridgraph.End))
	assert.Equal(t, 1, g.Count(gridgraph.End))
	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coordinate{Row: 1, Col: 1}, end)
}

// TestSetState_OverwriteRole checks that overwriting a role cell releases the role.
func TestSetState_OverwriteRole(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)

	c := gridgraph.Coordinate{Row: 1, Col: 1}
	require.NoError(t, g.SetState(c, gridgraph.Start))
	require.NoError(t, g.SetState(c, gridgraph.Obstacle))
	_, ok := g.Start()
	assert.False(t, ok, "Start role must be released")

	require.NoError(t, g.SetState(c, gridgraph.End))
	require.NoError(t, g.SetState(c, gridgraph.Start))
	_, ok = g.End()
	assert.False(t, ok, "End role must be released when the cell becomes Start")
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, c, start)

	require.NoError(t, g.Reset(c))
	_, ok = g.Start()
	assert.False(t, ok)
}

// TestClear resets all cells and roles.
func TestClear(t *testing.T) {
	g := gridgraph.MustParse(
		"S#.",
		".#.",
		"..E",
	)
	g.Clear()
	assert.Equal(t, 9, g.Count(gridgraph.Free))
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Neighbors and RefreshNeighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the documented order: down, up, right, left.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)

	got := g.Neighbors(gridgraph.Coordinate{Row: 1, Col: 1})
	want := []gridgraph.Coordinate{{Row: 2, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 0}}
	assert.Equal(t, want, got)
}

// TestNeighbors_BoundsAndObstacles verifies edge clipping and obstacle filtering.
func TestNeighbors_BoundsAndObstacles(t *testing.T) {
	g := gridgraph.MustParse(
		"S#.",
		"...",
		"..E",
	)
	cases := []struct {
		name string
		at   gridgraph.Coordinate
		want []gridgraph.Coordinate
	}{
		{"Corner", gridgraph.Coordinate{Row: 0, Col: 0}, []gridgraph.Coordinate{{Row: 1, Col: 0}}},
		{"BelowObstacle", gridgraph.Coordinate{Row: 1, Col: 1}, []gridgraph.Coordinate{{Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 0}}},
		{"EndCell", gridgraph.Coordinate{Row: 2, Col: 2}, []gridgraph.Coordinate{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
		{"OutOfBounds", gridgraph.Coordinate{Row: 5, Col: 5}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Neighbors(tc.at))
		})
	}
}

// TestRefreshNeighbors_Snapshot ensures edits after the refresh pass are invisible.
func TestRefreshNeighbors_Snapshot(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)
	adj := g.RefreshNeighbors()

	center := gridgraph.Coordinate{Row: 1, Col: 1}
	require.NoError(t, g.SetState(gridgraph.Coordinate{Row: 2, Col: 1}, gridgraph.Obstacle))

	assert.Len(t, adj.Neighbors(center), 4, "snapshot must not see the new obstacle")
	assert.Len(t, g.Neighbors(center), 3, "live view must see the new obstacle")
	assert.False(t, adj.Blocked(gridgraph.Coordinate{Row: 2, Col: 1}))
	assert.True(t, adj.Blocked(gridgraph.Coordinate{Row: -1, Col: 0}))
	assert.Equal(t, 3, adj.Size())
}

//----------------------------------------------------------------------------//
// Fixture Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that malformed fixtures are rejected.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, gridgraph.ErrEmptyGrid},
		{"Blank", []string{"", "  "}, gridgraph.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, gridgraph.ErrNonSquare},
		{"NotSquare", []string{"...", "..."}, gridgraph.ErrNonSquare},
		{"BadSymbol", []string{".?", ".."}, gridgraph.ErrBadSymbol},
		{"TwoStarts", []string{"S.S", "...", "..E"}, gridgraph.ErrBadSymbol},
		{"TwoEnds", []string{"SE.", "...", "..E"}, gridgraph.ErrBadSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.rows...)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestParse_SecondRoleNamed checks the error names the repeated cell.
func TestParse_SecondRoleNamed(t *testing.T) {
	_, err := gridgraph.Parse(
		"S..",
		"...",
		".SE",
	)
	require.ErrorIs(t, err, gridgraph.ErrBadSymbol)
	assert.Contains(t, err.Error(), "second 'S' at (2,1)")
}

// TestParse_RoundTrip checks String renders the Parse alphabet.
func TestParse_RoundTrip(t *testing.T) {
	g := gridgraph.MustParse(
		"S.#",
		".X.",
		"..E",
	)
	assert.Equal(t, "S.#\n.#.\n..E\n", g.String())
	assert.Equal(t, 2, g.Count(gridgraph.Obstacle))
}

// TestStateString covers the State names.
func TestStateString(t *testing.T) {
	assert.Equal(t, "free", gridgraph.Free.String())
	assert.Equal(t, "obstacle", gridgraph.Obstacle.String())
	assert.Equal(t, "start", gridgraph.Start.String())
	assert.Equal(t, "end", gridgraph.End.String())
	assert.Equal(t, "state(9)", gridgraph.State(9).String())
	assert.Equal(t, "(1,2)", gridgraph.Coordinate{Row: 1, Col: 2}.String())
}
