package gridgraph

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability of terrain values.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Zero step costs in opts are replaced by the defaults.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.StraightCost <= 0 {
		opts.StraightCost = DefaultStraightCost
	}
	if opts.DiagonalCost <= 0 {
		opts.DiagonalCost = DefaultDiagonalCost
	}

	// Deep copy to prevent external mutation, collecting obstacles on the way.
	obstacles := roaring.New()
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for x, v := range cells[y] {
			if v < opts.PassableThreshold {
				obstacles.Add(uint32(y*w + x))
			}
		}
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		StraightCost:      opts.StraightCost,
		DiagonalCost:      opts.DiagonalCost,
		offsets:           offsets,
		obstacles:         obstacles,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether c lies within the grid.
func (gg *GridGraph) Contains(c Cell) bool { return gg.InBounds(c.X, c.Y) }

// NeighborOffsets returns the neighbor offsets in enumeration order.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Index maps c to its row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CellAt converts a row-major index back to a Cell.
func (gg *GridGraph) CellAt(idx int) Cell {
	x, y := gg.Coordinate(idx)
	return Cell{X: x, Y: y}
}

// Passable reports whether c is inside the grid and not an obstacle.
// It is the validity test handed to astar.
func (gg *GridGraph) Passable(c Cell) bool {
	if !gg.Contains(c) {
		return false
	}
	return !gg.obstacles.Contains(uint32(gg.Index(c)))
}

// Valid is Passable; it lets *GridGraph satisfy astar.Graph[Cell].
func (gg *GridGraph) Valid(c Cell) bool { return gg.Passable(c) }

// SetPassable marks c as walkable or as an obstacle. Terrain values are left
// untouched. Returns ErrBadCell for cells outside the grid.
func (gg *GridGraph) SetPassable(c Cell, passable bool) error {
	if !gg.Contains(c) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrBadCell, c, gg.Width, gg.Height)
	}
	idx := uint32(gg.Index(c))
	if passable {
		gg.obstacles.Remove(idx)
	} else {
		gg.obstacles.Add(idx)
	}
	gg.invalidate()

	return nil
}

// ObstacleCount returns the number of obstacle cells.
func (gg *GridGraph) ObstacleCount() int {
	return int(gg.obstacles.GetCardinality())
}

// Neighbors lazily yields the in-bounds cells adjacent to c in offset order.
// Obstacles are not filtered here; astar filters them through Passable.
func (gg *GridGraph) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range gg.offsets {
			n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
			if !gg.Contains(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Cost returns the grid distance between a and b: octile under Conn8,
// Manhattan under Conn4. For adjacent cells this is the exact step cost.
func (gg *GridGraph) Cost(a, b Cell) int64 {
	dx := int64(abs(a.X - b.X))
	dy := int64(abs(a.Y - b.Y))
	if gg.Conn != Conn8 {
		return gg.StraightCost * (dx + dy)
	}
	lo, hi := min(dx, dy), max(dx, dy)

	return gg.DiagonalCost*lo + gg.StraightCost*(hi-lo)
}

// ParseCell parses "x,y" into a Cell.
func ParseCell(s string) (Cell, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q is not x,y", ErrBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrBadCell, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrBadCell, s, err)
	}

	return Cell{X: x, Y: y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
