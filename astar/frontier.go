package astar

import "slices"

// frontier is the open set. It keeps insertion order, which the selection
// scan depends on, and an index for O(1) membership tests.
type frontier[N comparable] struct {
	order   []N
	members map[N]struct{}
}

func newFrontier[N comparable](capacity int) frontier[N] {
	return frontier[N]{
		order:   make([]N, 0, capacity),
		members: make(map[N]struct{}, capacity),
	}
}

func (f *frontier[N]) len() int { return len(f.order) }

func (f *frontier[N]) at(i int) N { return f.order[i] }

func (f *frontier[N]) contains(n N) bool {
	_, ok := f.members[n]
	return ok
}

// push appends n unless it is already queued.
func (f *frontier[N]) push(n N) {
	if f.contains(n) {
		return
	}
	f.order = append(f.order, n)
	f.members[n] = struct{}{}
}

// removeAt deletes the i-th entry, preserving the order of the rest.
func (f *frontier[N]) removeAt(i int) N {
	n := f.order[i]
	f.order = slices.Delete(f.order, i, i+1)
	delete(f.members, n)

	return n
}

func (f *frontier[N]) clear() {
	clear(f.order)
	f.order = f.order[:0]
	clear(f.members)
}

// closedSet holds nodes that are finalized and never expanded again.
type closedSet[N comparable] map[N]struct{}

func (c closedSet[N]) add(n N) { c[n] = struct{}{} }

func (c closedSet[N]) contains(n N) bool {
	_, ok := c[n]
	return ok
}
