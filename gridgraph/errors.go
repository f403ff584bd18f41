package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrBadCell indicates a cell outside the grid or a malformed "x,y" string.
	ErrBadCell = errors.New("gridgraph: bad cell")
	// ErrBadMapFile indicates a map file that cannot be decoded or encoded.
	ErrBadMapFile = errors.New("gridgraph: bad map file")
)
