package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// walkBack follows predecessors from end to a seed and returns the moves in
// travel order. Seeds are the only states with run length 0.
func (r *runner) walkBack(end State) []Step {
	var rev []Step
	for s := end; s.Run > 0; s = r.prev[s] {
		rev = append(rev, Step{X: s.X, Y: s.Y, Heading: s.Heading})
	}

	path := make([]Step, len(rev))
	for i, st := range rev {
		path[len(rev)-1-i] = st
	}

	return path
}

// Replay walks path from the top-left cell of g and returns its total cost,
// or ErrInvalidPath (wrapped with the failing step) if the path leaves the
// grid, skips a cell, reverses, breaks the run-length bounds of p, or does not
// end on the target with at least p.MinRun steps in its final heading.
// A total that would exceed math.MaxInt64 yields ErrCostOverflow.
//
// The first step may take either heading out of the start, mirroring the two
// seeds of Search. An empty path is valid only on a 1×1 grid with MinRun 0.
func Replay(g *gridgraph.CostGrid, p Policy, path []Step) (int64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	x, y := 0, 0
	var cur Heading
	run := 0
	var total int64
	for i, st := range path {
		if !st.Heading.Valid() {
			return 0, fmt.Errorf("%w: step %d: unknown heading %d", ErrInvalidPath, i, st.Heading)
		}
		dx, dy := st.Heading.Delta()
		if st.X != x+dx || st.Y != y+dy {
			return 0, fmt.Errorf("%w: step %d: (%d,%d) is not one %s step from (%d,%d)",
				ErrInvalidPath, i, st.X, st.Y, st.Heading, x, y)
		}
		if !g.InBounds(st.X, st.Y) {
			return 0, fmt.Errorf("%w: step %d: (%d,%d) is outside the grid", ErrInvalidPath, i, st.X, st.Y)
		}

		switch {
		case i == 0:
			run = 1
		case st.Heading == cur:
			run++
			if run > p.MaxRun {
				return 0, fmt.Errorf("%w: step %d: run of %d exceeds max_run %d", ErrInvalidPath, i, run, p.MaxRun)
			}
		case st.Heading == cur.TurnLeft() || st.Heading == cur.TurnRight():
			if run < p.MinRun {
				return 0, fmt.Errorf("%w: step %d: turn after %d steps, min_run is %d", ErrInvalidPath, i, run, p.MinRun)
			}
			run = 1
		default:
			return 0, fmt.Errorf("%w: step %d: reverses %s", ErrInvalidPath, i, cur)
		}

		cur = st.Heading
		x, y = st.X, st.Y
		c := int64(g.Cost(x, y))
		if c > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: step %d", ErrCostOverflow, i)
		}
		total += c
	}

	tx, ty := g.Target()
	if x != tx || y != ty {
		return 0, fmt.Errorf("%w: ends at (%d,%d), target is (%d,%d)", ErrInvalidPath, x, y, tx, ty)
	}
	if run < p.MinRun {
		return 0, fmt.Errorf("%w: final run of %d is shorter than min_run %d", ErrInvalidPath, run, p.MinRun)
	}

	return total, nil
}
