// Package dijkstra finds the cheapest route across a gridgraph.CostGrid for a
// vehicle that cannot reverse, must turn after a maximum run of straight
// steps, and may only turn or stop after a minimum run.
//
// Overview:
//
//   - The route starts at the top-left cell and ends at the bottom-right cell.
//   - Entering a cell charges its cost; the start cell is free.
//   - A Policy{MinRun, MaxRun} sets the run-length bounds. ShortHops (1..3)
//     and LongRuns (4..10) are the two common settings; the search itself
//     does not change between them.
//   - Dijkstra runs over an augmented graph whose nodes are State values
//     (cell, heading, run length). Costs are non-negative, so the first time
//     an admissible target state leaves the frontier its cost is optimal.
//
// When to use:
//
//   - Routing with momentum or turning constraints: heavy vehicles, cranes,
//     cable runs, or any grid walker that has to commit to straight segments.
//   - As a template for other shortest-path problems where the cheapest way
//     into a cell depends on how it was entered.
//
// Key features:
//
//   - Functional options in the style of the rest of the library.
//   - WithReturnPath: reconstructs one optimal route as a []Step.
//   - Replay: validates an arbitrary route against a policy and prices it.
//   - WithMaxCost: caps exploration; routes above the cap count as missing.
//   - Deterministic: frontier ties are broken by position, heading and run.
//   - OpenTelemetry counters for runs and frontier activity via the global
//     meter provider (no-op unless one is installed).
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = W × H × 4 × (MaxRun + 1).
//   - Space: O(S).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      nil grid passed to Search or Replay.
//   - ErrBadRunPolicy: MinRun < 0, MaxRun < 1, or MinRun > MaxRun.
//   - ErrNoPath:       the target is unreachable under the policy (or cap).
//   - ErrBadMaxCost:   raised via panic by WithMaxCost for negative caps.
//   - ErrInvalidPath:  Replay rejected a route.
//
// API reference:
//
//	func Search(g *gridgraph.CostGrid, opts ...Option) (Result, error)
//	func Replay(g *gridgraph.CostGrid, p Policy, path []Step) (int64, error)
//
// Thread safety:
//
//   - Search owns its frontier and cost record; nothing is shared between
//     calls. A CostGrid is immutable, so concurrent searches may share one.
//
// See also:
//
//   - gridgraph.Parse: builds a CostGrid from digit rows.
//   - solver.Solver: runs several policies over one grid concurrently.
package dijkstra
