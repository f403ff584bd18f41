package gridgraph

import (
	"fmt"
	"slices"
)

// ConnectedComponents finds all contiguous regions (“islands”) of passable
// cells according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order. Components are ordered by their first cell in
// row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// The result is cached until the obstacle set changes; callers get a copy.
//
// Time:   O(W·H·d) on the first call after a change (d = 4 or 8), then
// O(W·H) for the copy.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps := gg.components()
	out := make([][]int, len(comps))
	for k, comp := range comps {
		out[k] = slices.Clone(comp)
	}

	return out
}

// Component returns the cell-indices of the k-th component as ordered by
// ConnectedComponents. Returns ErrComponentIndex if k is out of range.
// Complexity: O(size of component k) once the cache is warm.
func (gg *GridGraph) Component(k int) ([]int, error) {
	comps := gg.components()
	if k < 0 || k >= len(comps) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrComponentIndex, k, len(comps))
	}
	return slices.Clone(comps[k]), nil
}

// ComponentOf returns the component label of c, or -1 for obstacles and
// cells outside the grid. Labels match ConnectedComponents indices and are
// cached until the obstacle set changes.
func (gg *GridGraph) ComponentOf(c Cell) int {
	if !gg.Passable(c) {
		return -1
	}
	if gg.labels == nil {
		gg.label()
	}
	return int(gg.labels[gg.Index(c)])
}

// Reachable reports whether a path of passable cells connects a and b.
func (gg *GridGraph) Reachable(a, b Cell) bool {
	la := gg.ComponentOf(a)
	return la >= 0 && la == gg.ComponentOf(b)
}

// components returns the cached components, computing them if stale. The
// result is shared and must not be modified.
func (gg *GridGraph) components() [][]int {
	if gg.comps != nil {
		return gg.comps
	}

	total := gg.Width * gg.Height
	seen := make([]bool, total)
	comps := [][]int{}

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !gg.Passable(gg.CellAt(i0)) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for n := range gg.Neighbors(gg.CellAt(queue[qi])) {
				if !gg.Passable(n) {
					continue
				}
				vi := gg.Index(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	gg.comps = comps

	return comps
}

func (gg *GridGraph) label() {
	labels := make([]int32, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	for k, comp := range gg.components() {
		for _, idx := range comp {
			labels[idx] = int32(k)
		}
	}
	gg.labels = labels
}

// invalidate drops the component caches after an obstacle change.
func (gg *GridGraph) invalidate() {
	gg.comps = nil
	gg.labels = nil
}
