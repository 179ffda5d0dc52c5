package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell whose cost is below zero.
	ErrNegativeCost = errors.New("gridgraph: cell costs must be non-negative")
	// ErrInvalidCell indicates a non-digit character in parsed input.
	ErrInvalidCell = errors.New("gridgraph: cell is not a decimal digit")
)
