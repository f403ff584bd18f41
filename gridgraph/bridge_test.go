package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enanyy/SphereGrid/gridgraph"
)

func TestBridge_Line(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 0, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	route, cost, err := gg.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Equal(t, []gridgraph.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}, route)
}

func TestBridge_PrefersFewerObstacles(t *testing.T) {
	// The top row needs two obstacles opened; stepping up or right from (2,1) needs one.
	grid := [][]int{
		{1, 0, 0, 1},
		{1, 1, 1, 0},
		{0, 0, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 3)

	route, cost, err := gg.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 0}, route[len(route)-1])

	opened := 0
	for _, c := range route {
		if !gg.Passable(c) {
			opened++
			require.NoError(t, gg.SetPassable(c, true))
		}
	}
	assert.Equal(t, cost, opened)
	assert.True(t, gg.Reachable(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 0}))
}

func TestBridge_SameComponent(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	route, cost, err := gg.Bridge(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Len(t, route, 1)
}

func TestBridge_BadIndex(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, _, err = gg.Bridge(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.Bridge(-1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
