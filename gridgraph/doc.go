// Package gridgraph treats a rectangular 2D grid of integer cells as a graph
// that plugs straight into astar.
//
// What:
//
//   - GridGraph wraps a [][]int grid. Cells with value < PassableThreshold are
//     obstacles; the obstacle set lives in a roaring bitmap keyed by row-major
//     index and can be toggled with SetPassable.
//   - Passable, Neighbors and Cost are the three callbacks astar.FindPath
//     expects, with Cell as the node type.
//   - Cost is the octile distance (Conn8) or Manhattan distance (Conn4)
//     scaled by StraightCost/DiagonalCost. It prices a single step exactly
//     and never overestimates the remaining distance.
//   - ConnectedComponents and Reachable label "islands" of passable cells;
//     Bridge finds the fewest obstacles separating two of them.
//   - Load and Encode read and write a YAML map file; Render draws a path.
//
// Map file:
//
//	conn: 8          # 4 or 8, default 4
//	threshold: 1     # default 1
//	straight: 10     # default 10
//	diagonal: 14     # default 14
//	rows:
//	  - "..#.."
//	  - ".3#.."      # '#' = 0, '.' = 1, digits are literal values
//
// Complexity:
//
//   - Neighbors, Cost, Passable: O(1).
//   - ConnectedComponents:       O(W×H×d), Memory: O(W×H)  (d = 4 or 8);
//     cached with the labels until the obstacle set changes.
//   - Reachable:                 O(1) after the first call, until the
//     obstacle set changes.
//   - Bridge:                    O(W×H×d), 0–1 BFS.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrBadCell: cell outside the grid or malformed "x,y".
//   - ErrBadMapFile: map file cannot be decoded or encoded.
package gridgraph
