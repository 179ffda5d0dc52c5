// Package gridgraph treats a 2D table of per-cell traversal costs as the
// vertex set of an implicit grid graph.
//
// What:
//
//   - CostGrid wraps a rectangular [][]int of non-negative costs.
//   - It is immutable once built: the constructor deep-copies its input.
//   - Parse and ParseString turn a block of decimal digits into a CostGrid,
//     one row per line, one cell per character.
//   - Fingerprint hashes dimensions and costs so equal grids can share
//     memoized results.
//
// Why:
//
//   - Route planning over terrain: every entered cell charges its cost.
//   - Puzzle inputs: digit maps are the common interchange format.
//
// Complexity:
//
//   - NewCostGrid: O(W×H) time and memory.
//   - Cost, InBounds, Coordinate: O(1).
//   - Fingerprint: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrInvalidCell: Parse met a character that is not a decimal digit.
//
// Cost deliberately does not bounds-check: callers that walk the grid (the
// dijkstra package) test InBounds before every lookup.
package gridgraph
