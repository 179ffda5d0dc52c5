// Package dijkstra defines core types and configuration options for the
// run-length constrained shortest-path search over a gridgraph.CostGrid.
//
// Options:
//
//	– Policy:      minimum and maximum run length (default ShortHops).
//	– ReturnPath:  if true, Result.Path holds one optimal sequence of steps.
//	– MaxCost:     optional cap on accumulated cost; costlier states are skipped.
//	– Logger:      zerolog logger for debug events (default: disabled).
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrBadRunPolicy   if the policy bounds are inconsistent.
//	– ErrNoPath         if no admissible path reaches the target.
//	– ErrBadMaxCost     if MaxCost < 0.
//	– ErrInvalidPath    if Replay is given a path the policy does not allow.
//	– ErrCostOverflow   if the cheapest admissible cost does not fit in an int64.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the search implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadRunPolicy indicates MinRun < 0, MaxRun < 1 or MinRun > MaxRun.
	ErrBadRunPolicy = errors.New("dijkstra: invalid run-length policy")

	// ErrNoPath indicates that the target cannot be reached under the policy.
	// It is never conflated with a cost value.
	ErrNoPath = errors.New("dijkstra: no admissible path to target")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrInvalidPath indicates a path that breaks bounds, reversal or run rules.
	ErrInvalidPath = errors.New("dijkstra: path violates policy")

	// ErrCostOverflow indicates that every admissible route costs more than
	// an int64 can hold.
	ErrCostOverflow = errors.New("dijkstra: route cost overflows int64")
)

// Policy bounds the number of consecutive steps taken in one heading.
// A turn, and stopping at the target, both require at least MinRun steps in
// the current heading; no more than MaxRun steps may be taken before turning.
type Policy struct {
	MinRun int `toml:"min_run" msgpack:"min_run"`
	MaxRun int `toml:"max_run" msgpack:"max_run"`
}

var (
	// ShortHops allows at most three steps per heading, turning at will.
	ShortHops = Policy{MinRun: 1, MaxRun: 3}

	// LongRuns commits to four to ten steps per heading.
	LongRuns = Policy{MinRun: 4, MaxRun: 10}
)

// Validate reports ErrBadRunPolicy, wrapped with the bounds, unless
// 0 ≤ MinRun ≤ MaxRun and MaxRun ≥ 1.
func (p Policy) Validate() error {
	if p.MinRun < 0 || p.MaxRun < 1 || p.MinRun > p.MaxRun {
		return fmt.Errorf("%w: min_run=%d max_run=%d", ErrBadRunPolicy, p.MinRun, p.MaxRun)
	}

	return nil
}

// String formats the policy as "min..max".
func (p Policy) String() string {
	return fmt.Sprintf("%d..%d", p.MinRun, p.MaxRun)
}

// Options configures the behavior of Search.
//
// Policy     – run-length bounds; validated by Search.
// ReturnPath – if true, reconstruct the optimal path into Result.Path.
// MaxCost    – states whose accumulated cost exceeds this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Logger     – receives debug events; default zerolog.Nop().
type Options struct {
	Policy     Policy
	ReturnPath bool
	MaxCost    int64
	Logger     zerolog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithPolicy sets the run-length policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithRunBounds is shorthand for WithPolicy(Policy{MinRun: min, MaxRun: max}).
func WithRunBounds(min, max int) Option {
	return func(o *Options) {
		o.Policy = Policy{MinRun: min, MaxRun: max}
	}
}

// WithReturnPath enables reconstruction of the optimal path.
// If unset (default), Result.Path is nil and no predecessor map is kept.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a cap on accumulated cost.
// States whose cost would exceed the cap are not explored, so a target that
// is only reachable above the cap yields ErrNoPath.
// Must pass a non-negative value; WithMaxCost itself panics with
// ErrBadMaxCost on a negative one, before any Search sees the option.
func WithMaxCost(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithLogger routes debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Policy:     ShortHops.
//   - ReturnPath: false.
//   - MaxCost:    math.MaxInt64 (no cap).
//   - Logger:     zerolog.Nop().
func DefaultOptions() Options {
	return Options{
		Policy:     ShortHops,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		Logger:     zerolog.Nop(),
	}
}

// Step is one move of a path: the cell entered and the heading used to enter it.
type Step struct {
	X, Y    int
	Heading Heading
}

// Stats counts frontier activity for one search.
type Stats struct {
	Pushed int // states pushed onto the frontier, seeds included
	Popped int // states removed from the frontier
	Stale  int // popped states discarded because a cheaper record exists
}

// Result is the outcome of a successful Search.
type Result struct {
	Cost  int64  // minimum accumulated cost, start cell excluded
	End   State  // the state that reached the target
	Path  []Step // optimal moves in order; nil unless WithReturnPath
	Stats Stats
}
