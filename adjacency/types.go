package adjacency

import "errors"

// Sentinel errors for adjacency operations.
var (
	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("adjacency: negative edge weight")

	// ErrLoopNotAllowed indicates an edge whose endpoints are equal.
	ErrLoopNotAllowed = errors.New("adjacency: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("adjacency: vertex not found")

	// ErrTooFewVertices indicates a builder received fewer IDs than it needs.
	ErrTooFewVertices = errors.New("adjacency: too few vertices")
)

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected makes every new edge one-way (true) or two-way (false).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// edge is one outgoing arc in the adjacency list.
type edge[N comparable] struct {
	to     N
	weight int64
}
