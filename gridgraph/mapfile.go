package gridgraph

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// mapFile is the YAML layout read by Load and written by Encode.
type mapFile struct {
	Conn      int      `yaml:"conn,omitempty"`
	Threshold *int     `yaml:"threshold,omitempty"`
	Straight  int64    `yaml:"straight,omitempty"`
	Diagonal  int64    `yaml:"diagonal,omitempty"`
	Rows      []string `yaml:"rows"`
}

// Row glyphs.
const (
	glyphObstacle = '#'
	glyphFree     = '.'
)

// Load decodes a YAML map file from r into a GridGraph.
// '#' cells have value 0, '.' cells value 1, digits their literal value.
func Load(r io.Reader) (*GridGraph, error) {
	var mf mapFile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadMapFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadMapFile, err)
	}

	opts := DefaultGridOptions()
	switch mf.Conn {
	case 0, 4:
		opts.Conn = Conn4
	case 8:
		opts.Conn = Conn8
	default:
		return nil, fmt.Errorf("%w: conn must be 4 or 8, got %d", ErrBadMapFile, mf.Conn)
	}
	if mf.Threshold != nil {
		opts.PassableThreshold = *mf.Threshold
	}
	if mf.Straight < 0 || mf.Diagonal < 0 {
		return nil, fmt.Errorf("%w: step costs must be non-negative", ErrBadMapFile)
	}
	opts.StraightCost = mf.Straight
	opts.DiagonalCost = mf.Diagonal

	values := make([][]int, len(mf.Rows))
	for y, row := range mf.Rows {
		values[y] = make([]int, 0, len(row))
		col := 0
		for _, ch := range row {
			v, err := decodeGlyph(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrBadMapFile, y, col, err)
			}
			values[y] = append(values[y], v)
			col++
		}
	}

	return NewGridGraph(values, opts)
}

// Encode writes gg as a YAML map file together with its threshold.
// A cell whose passability agrees with its value is written as that value:
// '#' for 0, '.' for 1, a digit otherwise. A cell toggled with SetPassable is
// written as a stand-in value that Load classifies the same way under the
// threshold: the threshold digit (or '.') when open, '#' when closed.
// ErrBadMapFile is returned for values outside 0..9 and for toggled cells no
// glyph can express, e.g. an obstacle under a threshold of 0 or less.
func (gg *GridGraph) Encode(w io.Writer) error {
	threshold := gg.PassableThreshold
	mf := mapFile{
		Threshold: &threshold,
		Straight:  gg.StraightCost,
		Diagonal:  gg.DiagonalCost,
		Rows:      make([]string, gg.Height),
	}
	if gg.Conn == Conn8 {
		mf.Conn = 8
	} else {
		mf.Conn = 4
	}

	var sb strings.Builder
	for y := 0; y < gg.Height; y++ {
		sb.Reset()
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			g, err := gg.encodeCell(c, threshold)
			if err != nil {
				return err
			}
			sb.WriteByte(g)
		}
		mf.Rows[y] = sb.String()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&mf); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMapFile, err)
	}

	return enc.Close()
}

// encodeCell picks the glyph for c that Load reads back with the same
// passability under threshold.
func (gg *GridGraph) encodeCell(c Cell, threshold int) (byte, error) {
	v := gg.CellValues[c.Y][c.X]
	passable := gg.Passable(c)

	if passable == (v >= threshold) {
		if v < 0 || v > 9 {
			return 0, fmt.Errorf("%w: value %d at %v does not fit a single digit", ErrBadMapFile, v, c)
		}
		return valueGlyph(v, passable), nil
	}

	// Toggled by SetPassable: write a stand-in value.
	switch {
	case passable && threshold < 0:
		return glyphFree, nil
	case passable && threshold <= 9:
		return valueGlyph(threshold, true), nil
	case !passable && threshold >= 1:
		return glyphObstacle, nil
	}

	state := "obstacle"
	if passable {
		state = "passable cell"
	}
	return 0, fmt.Errorf("%w: %s at %v cannot be expressed with threshold %d", ErrBadMapFile, state, c, threshold)
}

// valueGlyph returns the glyph Load decodes to v. A passable 0 is written as
// the digit so the map does not show it as a wall.
func valueGlyph(v int, passable bool) byte {
	switch {
	case v == 0 && !passable:
		return glyphObstacle
	case v == 1:
		return glyphFree
	default:
		return byte('0' + v)
	}
}

func decodeGlyph(ch rune) (int, error) {
	switch {
	case ch == glyphObstacle:
		return 0, nil
	case ch == glyphFree:
		return 1, nil
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), nil
	default:
		return 0, fmt.Errorf("unknown glyph %q", ch)
	}
}
