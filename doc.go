// Package spheregrid is a small path-finding toolkit built around one
// reusable A* search context.
//
// What is inside?
//
//	astar/          PathFinder: generic best-first search over any comparable
//	                node type, driven by three callbacks (validity, lazy
//	                neighbors, cost). One tie-break policy, explicit reset
//	                between searches, zap diagnostics.
//	adjacency/      thread-safe weighted adjacency list that satisfies
//	                astar.Graph; vertices can be blocked without being removed.
//	gridgraph/      2D grids as graphs: Conn4/Conn8 neighbors, octile or
//	                Manhattan costs, roaring-bitmap obstacles, connected
//	                components, obstacle bridging, YAML map files.
//	cmd/spheregrid  CLI over gridgraph map files (cobra + viper).
//
// Quick start:
//
//	gg, _ := gridgraph.From2D(values, gridgraph.Conn8)
//	pf := astar.New[gridgraph.Cell]()
//	var path []gridgraph.Cell
//	found, err := pf.FindPath(&path, from, to, gg.Passable, gg.Neighbors, gg.Cost)
//
// A PathFinder is not safe for concurrent use; give each goroutine its own.
package spheregrid
