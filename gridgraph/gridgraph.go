// Package gridgraph provides a read-only cost table addressed by (x, y),
// where x is the column and y is the row, with (0, 0) at the top-left.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice
// of non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost
// (wrapped with the offending coordinate) for any cost below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Flatten while copying to prevent external mutation
	costs := make([]int, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := values[y][x]
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCost, x, y, c)
			}
			costs = append(costs, c)
		}
	}

	return &CostGrid{Width: w, Height: h, costs: costs}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cost returns the cost charged for entering cell (x,y).
// The coordinate must be in bounds; see InBounds.
// Complexity: O(1).
func (g *CostGrid) Cost(x, y int) int {
	return g.costs[g.index(x, y)]
}

// Target returns the bottom-right cell, the destination of every search.
func (g *CostGrid) Target() (x, y int) {
	return g.Width - 1, g.Height - 1
}

// Rows returns a fresh copy of the costs as a [][]int.
func (g *CostGrid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		copy(rows[y], g.costs[g.index(0, y):g.index(0, y)+g.Width])
	}

	return rows
}

// String renders the grid as digit rows. Costs above 9 are written in
// brackets so that the output stays unambiguous.
func (g *CostGrid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			c := g.Cost(x, y)
			if c <= 9 {
				sb.WriteByte(byte('0' + c))
				continue
			}
			fmt.Fprintf(&sb, "[%d]", c)
		}
	}

	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *CostGrid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *CostGrid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
