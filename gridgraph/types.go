package gridgraph

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Default step costs. 14/10 approximates √2 with integers.
const (
	DefaultStraightCost int64 = 10
	DefaultDiagonalCost int64 = 14
)

// Cell is a grid coordinate and the node type handed to astar.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// PassableThreshold is the minimum cell value that can be walked on.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// StraightCost prices an orthogonal step.
	StraightCost int64
	// DiagonalCost prices a diagonal step (Conn8 only).
	DiagonalCost int64
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1, Conn=Conn4, StraightCost=10, DiagonalCost=14.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
		StraightCost:      DefaultStraightCost,
		DiagonalCost:      DefaultDiagonalCost,
	}
}

// GridGraph treats a 2D integer grid as a graph.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
// Obstacles are tracked separately so SetPassable can change them without
// rewriting terrain values. A GridGraph is not safe for concurrent mutation.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int
	StraightCost      int64
	DiagonalCost      int64

	offsets   [][2]int
	obstacles *roaring.Bitmap
	comps     [][]int // cached ConnectedComponents; nil when stale
	labels    []int32 // component label per cell, -1 for obstacles; nil when stale
}
