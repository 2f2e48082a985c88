// File: gridgraph/components_test.go
package gridgraph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponents_Split tests a 4×4 grid split by a wall into two regions.
//
// Grid:
//
//	S.#.
//	..#.
//	###.
//	...E
//
// Expected: 2 regions of sizes 4 and 7.
func TestComponents_Split(t *testing.T) {
	g := MustParse(
		"S.#.",
		"..#.",
		"###.",
		"...E",
	)
	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 7)
	assert.Equal(t, Coordinate{Row: 0, Col: 0}, comps[0][0], "first region starts at its first row-major cell")

	assert.False(t, g.Connected(Coordinate{0, 0}, Coordinate{3, 3}))
	assert.True(t, g.Connected(Coordinate{0, 3}, Coordinate{3, 0}))
}

// TestComponents_AllObstacle tests edge cases: all obstacles → zero regions.
func TestComponents_AllObstacle(t *testing.T) {
	g := MustParse(
		"##",
		"##",
	)
	assert.Empty(t, g.Components())
}

// TestDistance checks BFS distances, including blocked and identical endpoints.
func TestDistance(t *testing.T) {
	g := MustParse(
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	cases := []struct {
		name     string
		from, to Coordinate
		want     int
		ok       bool
	}{
		{"Same", Coordinate{0, 0}, Coordinate{0, 0}, 0, true},
		{"Adjacent", Coordinate{0, 0}, Coordinate{0, 1}, 1, true},
		{"AroundWall", Coordinate{0, 0}, Coordinate{4, 4}, 8, true},
		{"AcrossWallTop", Coordinate{0, 1}, Coordinate{0, 3}, 10, true},
		{"ToObstacle", Coordinate{0, 0}, Coordinate{0, 2}, 0, false},
		{"OutOfBounds", Coordinate{0, 0}, Coordinate{9, 9}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := g.Distance(tc.from, tc.to)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, d)
		})
	}
}

// TestScatter verifies density bounds, role preservation and seed determinism.
func TestScatter(t *testing.T) {
	g, err := NewGrid(8)
	require.NoError(t, err)
	require.ErrorIs(t, g.Scatter(rand.New(rand.NewSource(1)), -0.1), ErrBadDensity)
	require.ErrorIs(t, g.Scatter(rand.New(rand.NewSource(1)), 1.5), ErrBadDensity)

	require.NoError(t, g.SetState(Coordinate{0, 0}, Start))
	require.NoError(t, g.SetState(Coordinate{7, 7}, End))
	require.NoError(t, g.Scatter(rand.New(rand.NewSource(7)), 1))
	assert.Equal(t, 62, g.Count(Obstacle), "density 1 fills every free cell")
	_, ok := g.Start()
	assert.True(t, ok)

	a, _ := NewGrid(8)
	b, _ := NewGrid(8)
	require.NoError(t, a.Scatter(rand.New(rand.NewSource(42)), 0.3))
	require.NoError(t, b.Scatter(rand.New(rand.NewSource(42)), 0.3))
	assert.Equal(t, a.String(), b.String(), "same seed must yield the same layout")
}

// TestCoordinateIndex checks row-major index round trips.
func TestCoordinateIndex(t *testing.T) {
	g, err := NewGrid(5)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		c := g.Coordinate(i)
		if got := g.index(c); got != i {
			t.Errorf("index(Coordinate(%d)) = %d", i, got)
		}
	}
	assert.Equal(t, Coordinate{Row: 2, Col: 3}, g.Coordinate(13))
}
