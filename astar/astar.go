package astar

import (
	"fmt"
	"iter"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PathFinder is a reusable search context. Its registry, frontier and visited
// set persist between calls and are cleared at the start of each search.
//
// The zero value is not usable; construct with New.
type PathFinder[N comparable] struct {
	opts     Options
	registry registry[N]
	open     frontier[N]
	closed   closedSet[N]
	stats    Stats
}

// New returns a PathFinder configured by opts.
func New[N comparable](opts ...Option) *PathFinder[N] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathFinder[N]{
		opts:     cfg,
		registry: newRegistry[N](cfg.Capacity),
		open:     newFrontier[N](cfg.Capacity),
		closed:   make(closedSet[N], cfg.Capacity),
	}
}

// FindPath searches for a path from origin to goal and writes it, origin
// first and goal last, into *result. It reports whether a path was found.
//
// isValid filters nodes that may never be traversed. neighborsOf yields the
// adjacent nodes of a node lazily. costOf(neighbor, current) prices a step
// and costOf(neighbor, goal) estimates the remaining distance.
//
// Validation (all failures are joined into one error and logged):
//  1. result must be non-nil (ErrNilResult).
//  2. origin must differ from goal (ErrSameEndpoints).
//  3. isValid, neighborsOf and costOf must be non-nil
//     (ErrNilValidity, ErrNilNeighbors, ErrNilCost).
//
// When no path exists FindPath returns false and a nil error; *result is
// left empty. *result is truncated, never reallocated, before the search, so
// a caller may reuse its backing array across calls.
func (pf *PathFinder[N]) FindPath(
	result *[]N,
	origin, goal N,
	isValid func(N) bool,
	neighborsOf func(N) iter.Seq[N],
	costOf func(a, b N) int64,
) (bool, error) {
	if result != nil {
		*result = (*result)[:0]
	}
	if err := validate(result, origin, goal, isValid, neighborsOf, costOf); err != nil {
		pf.opts.Logger.Error("astar: invalid FindPath arguments",
			zap.Any("origin", origin),
			zap.Any("goal", goal),
			zap.Error(err),
		)
		return false, err
	}

	// 1) Start from a clean context. The registry keeps its keys.
	pf.Reset()
	pf.registry.get(origin)
	pf.open.push(origin)
	pf.stats.MaxFrontier = 1

	for pf.open.len() > 0 {
		// 2) Pick the best frontier node and finalize it.
		i, cur, curRec := pf.selectNext()
		pf.open.removeAt(i)
		pf.closed.add(cur)
		pf.stats.Expanded++

		// 3) Goal reached: rebuild the chain of predecessors.
		if cur == goal {
			*result = pf.reconstruct(*result, goal)
			break
		}

		// 4) Relax every usable neighbor.
		pf.expand(cur, curRec, goal, isValid, neighborsOf, costOf)
		if n := pf.open.len(); n > pf.stats.MaxFrontier {
			pf.stats.MaxFrontier = n
		}
	}

	found := len(*result) > 0
	pf.opts.Logger.Debug("astar: search finished",
		zap.Bool("found", found),
		zap.Int("path_len", len(*result)),
		zap.Int("expanded", pf.stats.Expanded),
		zap.Int("relaxed", pf.stats.Relaxed),
		zap.Int("registry", pf.registry.len()),
	)

	return found, nil
}

// Search runs FindPath with the callbacks of g and returns a fresh path slice.
func (pf *PathFinder[N]) Search(origin, goal N, g Graph[N]) ([]N, bool, error) {
	if g == nil {
		pf.opts.Logger.Error("astar: invalid Search arguments", zap.Error(ErrNilGraph))
		return nil, false, ErrNilGraph
	}
	var path []N
	found, err := pf.FindPath(&path, origin, goal, g.Valid, g.Neighbors, g.Cost)
	if err != nil {
		return nil, false, err
	}

	return path, found, nil
}

// selectNext scans the frontier in insertion order. A candidate replaces the
// current best only if it is strictly lower in both f and h.
func (pf *PathFinder[N]) selectNext() (int, N, *record[N]) {
	best := 0
	cur := pf.open.at(0)
	curRec := pf.registry.get(cur)
	for i := 1; i < pf.open.len(); i++ {
		t := pf.open.at(i)
		rec := pf.registry.get(t)
		if rec.f() < curRec.f() && rec.h < curRec.h {
			best, cur, curRec = i, t, rec
		}
	}

	return best, cur, curRec
}

// expand relaxes the neighbors of cur. A neighbor is updated when the new
// cost beats its stored cost or when it is not queued yet.
func (pf *PathFinder[N]) expand(
	cur N,
	curRec *record[N],
	goal N,
	isValid func(N) bool,
	neighborsOf func(N) iter.Seq[N],
	costOf func(a, b N) int64,
) {
	seq := neighborsOf(cur)
	if seq == nil {
		return
	}
	for nb := range seq {
		if !isValid(nb) || pf.closed.contains(nb) {
			continue
		}
		cost := curRec.g + costOf(nb, cur)
		rec := pf.registry.get(nb)
		queued := pf.open.contains(nb)
		if cost < rec.g || !queued {
			rec.g = cost
			rec.h = costOf(nb, goal)
			rec.setParent(cur)
			pf.stats.Relaxed++
			if !queued {
				pf.open.push(nb)
			}
		}
	}
}

// reconstruct appends the predecessor chain ending at goal to dst and
// returns it in origin→goal order.
func (pf *PathFinder[N]) reconstruct(dst []N, goal N) []N {
	start := len(dst)
	for t := goal; ; {
		dst = append(dst, t)
		rec := pf.registry.lookup(t)
		if rec == nil || !rec.hasParent {
			break
		}
		t = rec.parent
	}
	slices.Reverse(dst[start:])

	return dst
}

// Reset clears the frontier, the visited set, every registry record and the
// statistics. FindPath calls it before each search.
func (pf *PathFinder[N]) Reset() {
	pf.open.clear()
	clear(pf.closed)
	pf.registry.reset()
	pf.stats = Stats{}
}

// Forget drops every registry entry. Searches never shrink the registry on
// their own; long-lived finders over an unbounded node space can call this
// between searches to release memory.
func (pf *PathFinder[N]) Forget() {
	pf.Reset()
	pf.registry.forget()
}

// Len returns the number of nodes the registry has ever recorded since the
// last Forget.
func (pf *PathFinder[N]) Len() int { return pf.registry.len() }

// Stats returns counters for the most recent search.
func (pf *PathFinder[N]) Stats() Stats { return pf.stats }

// PathCost sums costOf(path[i], path[i-1]) over consecutive nodes, the same
// step pricing FindPath uses. It returns 0 for paths shorter than two nodes.
func PathCost[N comparable](path []N, costOf func(a, b N) int64) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += costOf(path[i], path[i-1])
	}

	return total
}

func validate[N comparable](
	result *[]N,
	origin, goal N,
	isValid func(N) bool,
	neighborsOf func(N) iter.Seq[N],
	costOf func(a, b N) int64,
) error {
	var err error
	if result == nil {
		err = multierr.Append(err, ErrNilResult)
	}
	if origin == goal {
		err = multierr.Append(err, fmt.Errorf("%w: %v", ErrSameEndpoints, origin))
	}
	if isValid == nil {
		err = multierr.Append(err, ErrNilValidity)
	}
	if neighborsOf == nil {
		err = multierr.Append(err, ErrNilNeighbors)
	}
	if costOf == nil {
		err = multierr.Append(err, ErrNilCost)
	}

	return err
}
