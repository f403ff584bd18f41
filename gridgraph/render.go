package gridgraph

import "strings"

// Render draws the grid with '#' for obstacles and '.' for passable cells,
// overlaying path with '*', its first cell with 'S' and its last with 'G'.
// Path cells outside the grid are ignored. Each row ends with a newline.
func (gg *GridGraph) Render(path []Cell) string {
	canvas := make([][]byte, gg.Height)
	for y := range canvas {
		canvas[y] = make([]byte, gg.Width)
		for x := range canvas[y] {
			if gg.Passable(Cell{X: x, Y: y}) {
				canvas[y][x] = glyphFree
			} else {
				canvas[y][x] = glyphObstacle
			}
		}
	}

	for i, c := range path {
		if !gg.Contains(c) {
			continue
		}
		switch i {
		case 0:
			canvas[c.Y][c.X] = 'S'
		case len(path) - 1:
			canvas[c.Y][c.X] = 'G'
		default:
			canvas[c.Y][c.X] = '*'
		}
	}

	var sb strings.Builder
	sb.Grow(gg.Height * (gg.Width + 1))
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
