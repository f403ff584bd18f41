package gridgraph_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enanyy/SphereGrid/astar"
	"github.com/Enanyy/SphereGrid/gridgraph"
)

var _ astar.Graph[gridgraph.Cell] = (*gridgraph.GridGraph)(nil)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{PassableThreshold: 1})
	require.NoError(t, err)

	grid[0][0] = 0
	assert.Equal(t, 1, gg.CellValues[0][0])
	assert.True(t, gg.Passable(gridgraph.Cell{X: 0, Y: 0}))
	assert.Equal(t, gridgraph.DefaultStraightCost, gg.StraightCost, "zero costs fall back to defaults")
	assert.Equal(t, gridgraph.DefaultDiagonalCost, gg.DiagonalCost)
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Callbacks
//----------------------------------------------------------------------------//

func TestNeighbors_Order(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	c := func(x, y int) gridgraph.Cell { return gridgraph.Cell{X: x, Y: y} }

	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t,
		[]gridgraph.Cell{c(1, 0), c(2, 1), c(1, 2), c(0, 1)},
		slices.Collect(g4.Neighbors(c(1, 1))))
	assert.Equal(t,
		[]gridgraph.Cell{c(1, 0), c(0, 1)},
		slices.Collect(g4.Neighbors(c(0, 0))))

	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t,
		[]gridgraph.Cell{c(1, 0), c(1, 1), c(0, 1)},
		slices.Collect(g8.Neighbors(c(0, 0))))
	assert.Len(t, slices.Collect(g8.Neighbors(c(1, 1))), 8)
}

func TestNeighbors_IncludeObstacles(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}}, gridgraph.Conn4)
	require.NoError(t, err)

	got := slices.Collect(gg.Neighbors(gridgraph.Cell{X: 0, Y: 0}))
	assert.Equal(t, []gridgraph.Cell{{X: 1, Y: 0}}, got, "filtering is Passable's job")
	assert.False(t, gg.Passable(got[0]))
}

func TestCost(t *testing.T) {
	grid := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	a, b := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 3}

	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, int64(50), g4.Cost(a, b))
	assert.Equal(t, g4.Cost(a, b), g4.Cost(b, a))
	assert.Equal(t, int64(0), g4.Cost(a, a))

	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, int64(38), g8.Cost(a, b))
	assert.Equal(t, int64(14), g8.Cost(a, gridgraph.Cell{X: 1, Y: 1}))
	assert.Equal(t, int64(10), g8.Cost(a, gridgraph.Cell{X: 0, Y: 1}))
}

func TestSetPassable(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	mid := gridgraph.Cell{X: 1, Y: 0}

	assert.Equal(t, 1, gg.ObstacleCount())
	assert.False(t, gg.Valid(mid))

	require.NoError(t, gg.SetPassable(mid, true))
	assert.True(t, gg.Passable(mid))
	assert.Equal(t, 0, gg.ObstacleCount())
	assert.Equal(t, 0, gg.CellValues[0][1], "terrain values are untouched")

	require.NoError(t, gg.SetPassable(gridgraph.Cell{X: 0, Y: 0}, false))
	assert.False(t, gg.Passable(gridgraph.Cell{X: 0, Y: 0}))

	err = gg.SetPassable(gridgraph.Cell{X: 5, Y: 0}, true)
	assert.True(t, errors.Is(err, gridgraph.ErrBadCell), "got %v", err)
	assert.False(t, gg.Passable(gridgraph.Cell{X: -1, Y: 0}))
}

func TestParseCell(t *testing.T) {
	c, err := gridgraph.ParseCell(" 3, 4 ")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 4}, c)
	assert.Equal(t, "3,4", c.String())

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := gridgraph.ParseCell(bad)
		assert.True(t, errors.Is(err, gridgraph.ErrBadCell), "ParseCell(%q) = %v", bad, err)
	}
}

func TestRender(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 1},
		{0, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	path := []gridgraph.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}
	assert.Equal(t, "S**\n##G\n", gg.Render(path))
	assert.Equal(t, "...\n##.\n", gg.Render(nil))
}
