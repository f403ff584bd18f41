package adjacency

import (
	"fmt"
	"iter"
	"sync"
)

// Graph is a weighted adjacency list keyed by vertex ID.
type Graph[N comparable] struct {
	mu sync.RWMutex

	directed  bool
	heuristic func(a, b N) int64

	order   []N             // vertices in insertion order
	out     map[N][]edge[N] // vertex → outgoing edges in insertion order
	pos     map[N]map[N]int // vertex → neighbor → index into out[vertex]
	blocked map[N]struct{}  // impassable vertices
}

// New creates an empty, undirected graph unless WithDirected(true) is given.
// Complexity: O(1).
func New[N comparable](opts ...Option) *Graph[N] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		directed: cfg.directed,
		out:      make(map[N][]edge[N]),
		pos:      make(map[N]map[N]int),
		blocked:  make(map[N]struct{}),
	}
}

// SetHeuristic installs the estimate Cost returns for non-adjacent pairs.
// A nil fn restores the default of 0.
func (g *Graph[N]) SetHeuristic(fn func(a, b N) int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.heuristic = fn
}

// Directed reports whether new edges are one-way.
func (g *Graph[N]) Directed() bool { return g.directed }

// AddVertex inserts id if absent. Complexity: O(1).
func (g *Graph[N]) AddVertex(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

func (g *Graph[N]) addVertexLocked(id N) {
	if _, ok := g.pos[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.pos[id] = make(map[N]int)
}

// HasVertex reports whether id was added. Complexity: O(1).
func (g *Graph[N]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pos[id]
	return ok
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)
	return out
}

// AddEdge connects from→to with weight w, auto-adding missing vertices.
// Undirected graphs also add to→from. Adding an existing edge overwrites its
// weight without changing neighbor order.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, from, to, w)
	}
	if from == to {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.linkLocked(from, to, w)
	if !g.directed {
		g.linkLocked(to, from, w)
	}

	return nil
}

func (g *Graph[N]) linkLocked(from, to N, w int64) {
	if i, ok := g.pos[from][to]; ok {
		g.out[from][i].weight = w
		return
	}
	g.pos[from][to] = len(g.out[from])
	g.out[from] = append(g.out[from], edge[N]{to: to, weight: w})
}

// HasEdge reports whether from→to exists.
func (g *Graph[N]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pos[from][to]
	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g *Graph[N]) Weight(from, to N) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weightLocked(from, to)
}

func (g *Graph[N]) weightLocked(from, to N) (int64, bool) {
	i, ok := g.pos[from][to]
	if !ok {
		return 0, false
	}
	return g.out[from][i].weight, true
}

// Block marks id impassable. Unknown IDs return ErrVertexNotFound.
func (g *Graph[N]) Block(id N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pos[id]; !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	g.blocked[id] = struct{}{}
	return nil
}

// Unblock makes id passable again. It is a no-op for unblocked IDs.
func (g *Graph[N]) Unblock(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.blocked, id)
}

// Blocked reports whether id is marked impassable.
func (g *Graph[N]) Blocked(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.blocked[id]
	return ok
}

// Valid reports whether id exists and is not blocked.
func (g *Graph[N]) Valid(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.pos[id]; !ok {
		return false
	}
	_, blocked := g.blocked[id]
	return !blocked
}

// Neighbors yields the targets of id's outgoing edges in insertion order.
// The adjacency is copied under the read lock before the first yield.
func (g *Graph[N]) Neighbors(id N) iter.Seq[N] {
	return func(yield func(N) bool) {
		g.mu.RLock()
		edges := make([]edge[N], len(g.out[id]))
		copy(edges, g.out[id])
		g.mu.RUnlock()

		for _, e := range edges {
			if !yield(e.to) {
				return
			}
		}
	}
}

// Cost prices the move prev→next when that edge exists. Otherwise it returns
// the heuristic estimate between next and prev, which is how astar uses it
// for the distance to the goal.
func (g *Graph[N]) Cost(next, prev N) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if w, ok := g.weightLocked(prev, next); ok {
		return w
	}
	if g.heuristic == nil {
		return 0
	}
	return g.heuristic(next, prev)
}
