// Package dijkstra implements a run-length constrained variant of Dijkstra's
// shortest-path algorithm on a gridgraph.CostGrid.
//
// The graph is never materialized. Each node is a State (cell, heading, run
// length); its successors are the admissible moves straight ahead, a left
// turn and a right turn. Entering a cell costs that cell's value.
//
// Complexity:
//
//   - Time:  O(S log S) where S = W × H × 4 × (MaxRun + 1) bounds the state count.
//   - Each state is settled at most once; stale heap entries are skipped.
//   - Each settled state pushes at most three successors.
//   - Space: O(S) for the cost record, the heap and (optionally) predecessors.
//
// Notes on implementation choices:
//
//   - The cost record is keyed by the full State, not by cell: the cheapest way
//     into a cell depends on how it was entered.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The minimum-run requirement at the target is checked only when a target
//     state is popped, never when it is pushed.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// Search computes the minimum accumulated cost of a path from the top-left
// cell of g to the bottom-right cell that never reverses, never takes more
// than Policy.MaxRun steps in one heading, turns only after at least
// Policy.MinRun steps, and arrives with at least Policy.MinRun steps in its
// final heading. The start cell's own cost is not charged.
//
// Returns:
//
//   - Result with Cost, the terminal State and frontier Stats; Path is set
//     when WithReturnPath is given.
//   - ErrNilGrid, ErrBadRunPolicy for invalid inputs, checked before any work.
//   - ErrNoPath if the frontier empties before an admissible arrival.
//   - ErrCostOverflow instead of ErrNoPath if some successor was dropped
//     because its cost would exceed math.MaxInt64.
//
// A 1×1 grid costs 0 when MinRun is 0 and yields ErrNoPath otherwise: the
// start has run length 0, and no step can leave and come back.
//
// Search keeps all mutable state local, so concurrent calls may share g.
func Search(g *gridgraph.CostGrid, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Validate policy
	if err := cfg.Policy.Validate(); err != nil {
		return Result{}, err
	}

	// 4) Allocate per-call state. Capacity is a rough guess; maps grow as needed.
	hint := g.Width * g.Height * 2
	r := &runner{
		g:      g,
		cfg:    cfg,
		log:    cfg.Logger.With().Str("policy", cfg.Policy.String()).Logger(),
		best:   make(map[State]int64, hint),
		pq:     make(statePQ, 0, hint),
		target: [2]int{g.Width - 1, g.Height - 1},
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, hint)
	}

	// 5) Seed and run
	r.init()
	res, err := r.process()
	recordSearch(cfg.Policy, r.stats, err == nil)

	return res, err
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g      *gridgraph.CostGrid // read-only
	cfg    Options
	log    zerolog.Logger
	best   map[State]int64 // cost record: best known cost per state
	prev   map[State]State // predecessor per state; nil unless ReturnPath
	pq     statePQ
	target [2]int
	stats  Stats

	overflow bool // a successor was dropped because its cost would wrap
}

// init pushes the two seeds: the start cell has no incoming heading, so both
// axes are tried with run length 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, h := range [...]Heading{Right, Down} {
		s := State{X: 0, Y: 0, Heading: h, Run: 0}
		r.best[s] = 0
		r.push(s, 0)
	}
	r.log.Debug().
		Int("width", r.g.Width).
		Int("height", r.g.Height).
		Msg("search seeded")
}

// process is the main loop. It pops the cheapest state, returns when it is an
// admissible arrival, skips it when stale and otherwise expands it.
func (r *runner) process() (Result, error) {
	minRun := r.cfg.Policy.MinRun
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(stateItem)
		r.stats.Popped++
		s, c := item.state, item.cost

		// 2) Arrival: the target with a long enough final run ends the search.
		if s.X == r.target[0] && s.Y == r.target[1] && s.Run >= minRun {
			r.log.Debug().
				Int64("cost", c).
				Stringer("end", s).
				Int("popped", r.stats.Popped).
				Int("pushed", r.stats.Pushed).
				Msg("target reached")

			return r.result(s, c), nil
		}

		// 3) Stale: a cheaper route to this exact state was recorded later.
		if c > r.best[s] {
			r.stats.Stale++
			continue
		}

		// 4) Expand.
		r.relax(s, c)
	}

	r.log.Debug().
		Int("popped", r.stats.Popped).
		Int("states", len(r.best)).
		Bool("overflow", r.overflow).
		Msg("frontier exhausted")

	if r.overflow {
		return Result{Stats: r.stats}, ErrCostOverflow
	}

	return Result{Stats: r.stats}, ErrNoPath
}

// relax generates the admissible successors of s (settled at cost c) and
// pushes every one whose cost improves its record.
func (r *runner) relax(s State, c int64) {
	p := r.cfg.Policy

	var cand [3]State
	n := 0
	// Straight ahead while the run allows it.
	if s.Run+1 <= p.MaxRun {
		cand[n] = State{Heading: s.Heading, Run: s.Run + 1}
		n++
	}
	// Quarter turns once the current run is long enough. A reversal is never
	// generated.
	if s.Run >= p.MinRun {
		cand[n] = State{Heading: s.Heading.TurnLeft(), Run: 1}
		n++
		cand[n] = State{Heading: s.Heading.TurnRight(), Run: 1}
		n++
	}

	for _, next := range cand[:n] {
		dx, dy := next.Heading.Delta()
		next.X, next.Y = s.X+dx, s.Y+dy
		if !r.g.InBounds(next.X, next.Y) {
			continue
		}

		// c ≤ MaxCost, so the subtraction cannot wrap.
		step := int64(r.g.Cost(next.X, next.Y))
		if step > r.cfg.MaxCost-c {
			if r.cfg.MaxCost == math.MaxInt64 {
				r.overflow = true
			}
			continue
		}
		nc := c + step
		if old, seen := r.best[next]; seen && nc >= old {
			continue
		}

		r.best[next] = nc
		if r.prev != nil {
			r.prev[next] = s
		}
		r.push(next, nc)
	}
}

func (r *runner) push(s State, c int64) {
	heap.Push(&r.pq, stateItem{state: s, cost: c})
	r.stats.Pushed++
}

// result assembles the Result for the arrival state end.
func (r *runner) result(end State, cost int64) Result {
	res := Result{Cost: cost, End: end, Stats: r.stats}
	if r.prev != nil {
		res.Path = r.walkBack(end)
	}

	return res
}
