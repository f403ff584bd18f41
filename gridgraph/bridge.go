package gridgraph

import (
	"container/list"
	"fmt"
	"math"
)

// Bridge finds the fewest obstacle cells that must be opened to join
// component src to component dst, with components numbered as by
// ConnectedComponents. It returns the connecting cells, starting in src and
// ending in dst, and the number of obstacles on that route.
//
// The search is a multi-source 0–1 BFS: stepping onto a passable cell costs 0,
// onto an obstacle 1. The grid itself is not modified; callers open the
// obstacles on the route with SetPassable.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) Bridge(src, dst int) ([]Cell, int, error) {
	comps := gg.components()
	for _, k := range []int{src, dst} {
		if k < 0 || k >= len(comps) {
			return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrComponentIndex, k, len(comps))
		}
	}
	target := make(map[int]struct{}, len(comps[dst]))
	for _, i := range comps[dst] {
		target[i] = struct{}{}
	}

	total := gg.Width * gg.Height
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// Zero-cost moves go to the front of the deque, obstacle moves to the back.
	dq := list.New()
	for _, i := range comps[src] {
		dist[i] = 0
		dq.PushFront(i)
	}

	end := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if _, ok := target[u]; ok {
			end = u
			break
		}
		for n := range gg.Neighbors(gg.CellAt(u)) {
			v := gg.Index(n)
			step := 0
			if !gg.Passable(n) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every in-bounds cell is reachable once obstacles may be crossed.
	var route []Cell
	for at := end; at >= 0; at = prev[at] {
		route = append(route, gg.CellAt(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[end], nil
}
