package adjacency

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodPath    = "AddPath"
	methodCycle   = "AddCycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// AddPath emits edges ids[i-1]→ids[i] with weight w for i=1..len(ids)-1,
// in that order.
func (g *Graph[N]) AddPath(w int64, ids ...N) error {
	if len(ids) < minPathNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, len(ids), minPathNodes, ErrTooFewVertices)
	}
	for i := 1; i < len(ids); i++ {
		if err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
			return fmt.Errorf("%s: AddEdge(%v, %v): %w", methodPath, ids[i-1], ids[i], err)
		}
	}

	return nil
}

// AddCycle emits the path over ids and closes it with ids[n-1]→ids[0].
func (g *Graph[N]) AddCycle(w int64, ids ...N) error {
	if len(ids) < minCycleNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, len(ids), minCycleNodes, ErrTooFewVertices)
	}
	if err := g.AddPath(w, ids...); err != nil {
		return err
	}
	last := ids[len(ids)-1]
	if err := g.AddEdge(last, ids[0], w); err != nil {
		return fmt.Errorf("%s: AddEdge(%v, %v): %w", methodCycle, last, ids[0], err)
	}

	return nil
}
