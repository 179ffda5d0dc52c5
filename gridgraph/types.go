// Package gridgraph defines the CostGrid type for the gridgraph subpackage
// of github.com/katalvlaran/heatpath.
package gridgraph

// CostGrid is an immutable rectangular table of non-negative cell costs.
// Width and Height define dimensions; costs are stored row-major so that
// cell (x, y) lives at index y*Width + x.
type CostGrid struct {
	Width, Height int
	costs         []int
}
