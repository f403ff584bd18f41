package astar

// record holds the per-node search metadata.
type record[N comparable] struct {
	g         int64 // accumulated cost from the origin
	h         int64 // estimated cost to the goal
	parent    N
	hasParent bool
}

// f is the total estimate g + h. It is never cached.
func (r *record[N]) f() int64 { return r.g + r.h }

// setParent links r to the node it was reached from.
func (r *record[N]) setParent(p N) {
	r.parent = p
	r.hasParent = true
}

// clear returns r to its pre-search state.
func (r *record[N]) clear() {
	var zero N
	r.g = 0
	r.h = 0
	r.parent = zero
	r.hasParent = false
}

// registry maps node identity to its record. Records are created on first
// reference and survive across searches; reset only clears them.
type registry[N comparable] struct {
	records map[N]*record[N]
}

func newRegistry[N comparable](capacity int) registry[N] {
	return registry[N]{records: make(map[N]*record[N], capacity)}
}

// lookup returns the record for n, or nil if n was never referenced.
func (r *registry[N]) lookup(n N) *record[N] {
	return r.records[n]
}

// get returns the record for n, creating it on first reference.
func (r *registry[N]) get(n N) *record[N] {
	rec, ok := r.records[n]
	if !ok {
		rec = &record[N]{}
		r.records[n] = rec
	}

	return rec
}

// reset clears every record while keeping the key set.
func (r *registry[N]) reset() {
	for _, rec := range r.records {
		rec.clear()
	}
}

// forget drops every record.
func (r *registry[N]) forget() {
	clear(r.records)
}

func (r *registry[N]) len() int { return len(r.records) }
