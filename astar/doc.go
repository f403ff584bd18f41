// Package astar implements a reusable best-first (A*-style) path finder over
// caller-defined graphs.
//
// What:
//
//   - PathFinder[N] owns a node registry, an open set (frontier) and a closed
//     set (visited). All three survive between calls and are cleared at the
//     start of every FindPath, so one instance can serve many searches without
//     reallocating.
//   - The graph is never materialized. Topology and costs come from three
//     injected functions: a validity test, a lazy neighbor sequence
//     (iter.Seq) and a cost function.
//   - The same cost function prices a step (neighbor, current) and estimates
//     the remaining distance (neighbor, goal).
//
// Selection policy:
//
//	The frontier is scanned in insertion order starting from its first entry.
//	A candidate replaces the current best only when it is strictly lower in
//	BOTH total estimate f = g + h AND heuristic h. A candidate that improves
//	only one of the two keeps the earlier node selected. This can return a
//	different (occasionally more expensive) path than a textbook A* would;
//	callers depending on a particular path among equal-cost routes get a
//	deterministic answer from neighbor enumeration order.
//
// Errors:
//
//   - ErrSameEndpoints: origin equals goal.
//   - ErrNilValidity, ErrNilNeighbors, ErrNilCost: a callback is missing.
//   - ErrNilResult: no result slice to populate.
//   - ErrNilGraph: Search called with a nil Graph.
//
// Usage errors are aggregated into one error and logged on the configured
// zap logger. An exhausted frontier is not an error: FindPath reports
// found == false.
//
// Concurrency:
//
//	A PathFinder is not safe for concurrent use. Use one instance per
//	goroutine or guard it externally.
//
// Complexity:
//
//   - Time:  O(V²) worst case; every selection scans the frontier linearly.
//   - Space: O(V) for the registry, frontier and visited set, where V counts
//     every node ever referenced by this PathFinder.
package astar
