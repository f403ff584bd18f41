package astar

import (
	"errors"
	"iter"

	"go.uber.org/zap"
)

// Sentinel errors returned by FindPath and Search.
var (
	// ErrSameEndpoints indicates that origin and goal are the same node.
	ErrSameEndpoints = errors.New("astar: origin equals goal")

	// ErrNilValidity indicates that no validity test was supplied.
	ErrNilValidity = errors.New("astar: isValid is nil")

	// ErrNilNeighbors indicates that no neighbor enumerator was supplied.
	ErrNilNeighbors = errors.New("astar: neighborsOf is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("astar: costOf is nil")

	// ErrNilResult indicates that the result slice pointer is nil.
	ErrNilResult = errors.New("astar: result is nil")

	// ErrNilGraph indicates that Search was called with a nil Graph.
	ErrNilGraph = errors.New("astar: graph is nil")
)

// Graph bundles the three callbacks FindPath needs into one capability.
//
// Valid reports whether a node may ever be traversed.
// Neighbors yields the nodes adjacent to n; the sequence must terminate.
// Cost prices a step (neighbor, current) and estimates the remaining
// distance (neighbor, goal).
type Graph[N comparable] interface {
	Valid(n N) bool
	Neighbors(n N) iter.Seq[N]
	Cost(a, b N) int64
}

// Stats describes the most recent search run by a PathFinder.
type Stats struct {
	Expanded    int // nodes moved from the frontier to the visited set
	Relaxed     int // neighbor records updated with a new cost and predecessor
	MaxFrontier int // largest frontier size observed
}

// Options configures a PathFinder.
//
// Logger   – receives usage-error diagnostics and per-search debug lines.
// Capacity – initial size hint for the registry, frontier and visited set.
type Options struct {
	Logger   *zap.Logger
	Capacity int
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCapacity pre-sizes internal storage for roughly n nodes.
// Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns Options with a no-op logger and no size hint.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Capacity: 0,
	}
}
