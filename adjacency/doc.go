// Package adjacency provides a small thread-safe weighted adjacency list over
// comparable vertex IDs that satisfies astar.Graph.
//
// What:
//
//   - Vertices keep insertion order; neighbors are yielded in edge insertion
//     order, which makes astar's tie-break reproducible.
//   - Edges are undirected unless the graph is built WithDirected(true).
//   - Vertices can be blocked to make them impassable without removing them.
//   - Cost(next, prev) returns the weight of prev→next when that edge exists
//     and falls back to a heuristic estimate otherwise (0 by default).
//
// All mutations acquire a write lock; queries acquire a read lock. Neighbors
// snapshots the adjacency before yielding, so callers may query the graph
// from inside the loop.
//
// Errors:
//
//   - ErrNegativeWeight:  negative edge weight.
//   - ErrLoopNotAllowed:  edge from a vertex to itself.
//   - ErrVertexNotFound:  operation references an unknown vertex.
//   - ErrTooFewVertices:  AddPath/AddCycle called with too few IDs.
package adjacency
