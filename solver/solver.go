// Package solver answers a set of named run-length policies over one grid.
//
// Every policy is an independent dijkstra.Search with its own frontier and
// cost record; only the immutable grid and the optional result cache are
// shared between the goroutines.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatpath/cache"
	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// ErrNilGrid indicates Solve was called without a grid.
var ErrNilGrid = errors.New("solver: grid is nil")

// Answer is the outcome of one named policy.
type Answer struct {
	Name      string
	Policy    dijkstra.Policy
	Cost      int64 // valid only when Reachable
	Reachable bool
	Cached    bool
	Path      []dijkstra.Step // set when paths were requested and not served from cache
	Elapsed   time.Duration
}

// Solver runs policy sets. The zero value is not usable; call New.
type Solver struct {
	cache       *cache.ResultCache
	log         zerolog.Logger
	parallelism int
	withPath    bool
}

// Option configures a Solver.
type Option func(*Solver)

// WithCache memoizes answers in c. Answers are looked up before searching and
// stored after, including unreachable outcomes.
func WithCache(c *cache.ResultCache) Option {
	return func(s *Solver) {
		s.cache = c
	}
}

// WithLogger routes solver and search logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) {
		s.log = l
	}
}

// WithParallelism bounds concurrent searches; n < 1 means one at a time.
func WithParallelism(n int) Option {
	return func(s *Solver) {
		if n < 1 {
			n = 1
		}
		s.parallelism = n
	}
}

// WithPaths asks every search to reconstruct its route. Cached answers are
// bypassed so that a path is always available.
func WithPaths() Option {
	return func(s *Solver) {
		s.withPath = true
	}
}

// New builds a Solver with defaults: no cache, zerolog.Nop(), parallelism 4.
func New(opts ...Option) *Solver {
	s := &Solver{log: zerolog.Nop(), parallelism: 4}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve answers every policy over g and returns the answers in the order of
// policies. A policy with no admissible path yields Reachable=false; any
// other failure (an invalid policy, a cancelled ctx) aborts the whole call.
func (s *Solver) Solve(ctx context.Context, g *gridgraph.CostGrid, policies []config.NamedPolicy) ([]Answer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, np := range policies {
		if err := np.Validate(); err != nil {
			return nil, fmt.Errorf("solver: policy %q: %w", np.Name, err)
		}
	}

	answers := make([]Answer, len(policies))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.parallelism)
	for i, np := range policies {
		i, np := i, np
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := s.solveOne(g, np)
			if err != nil {
				return fmt.Errorf("solver: policy %q: %w", np.Name, err)
			}
			answers[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

func (s *Solver) solveOne(g *gridgraph.CostGrid, np config.NamedPolicy) (Answer, error) {
	log := s.log.With().Str("name", np.Name).Stringer("policy", np.Policy).Logger()
	a := Answer{Name: np.Name, Policy: np.Policy}

	var key cache.Key
	if s.cache != nil {
		key = cache.KeyFor(g, np.Policy)
		if e, ok := s.cache.Get(key); ok && !s.withPath {
			a.Cost, a.Reachable, a.Cached = e.Cost, e.Reachable, true
			log.Debug().Msg("cache hit")
			return a, nil
		}
	}

	opts := []dijkstra.Option{dijkstra.WithPolicy(np.Policy), dijkstra.WithLogger(log)}
	if s.withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	start := time.Now()
	res, err := dijkstra.Search(g, opts...)
	a.Elapsed = time.Since(start)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		a.Reachable = false
	case err != nil:
		return Answer{}, err
	default:
		a.Cost, a.Reachable, a.Path = res.Cost, true, res.Path
	}

	log.Info().
		Bool("reachable", a.Reachable).
		Int64("cost", a.Cost).
		Int("popped", res.Stats.Popped).
		Dur("elapsed", a.Elapsed).
		Msg("policy solved")

	if s.cache != nil {
		s.cache.Put(key, cache.Entry{Cost: a.Cost, Reachable: a.Reachable})
	}

	return a, nil
}
