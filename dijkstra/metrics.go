package dijkstra

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/katalvlaran/heatpath/dijkstra"

// searchMetrics are created once against the global meter provider. The
// global provider delegates, so instruments created before a real provider
// is installed still report once it is.
type searchMetrics struct {
	runs        metric.Int64Counter
	popped      metric.Int64Counter
	pushed      metric.Int64Counter
	stale       metric.Int64Counter
	unreachable metric.Int64Counter
}

var (
	metricsOnce sync.Once
	metrics     searchMetrics
)

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

func counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}

	return c
}

func loadMetrics() *searchMetrics {
	metricsOnce.Do(func() {
		m := meter()
		metrics = searchMetrics{
			runs:        counter(m, "heatpath.search.runs", "Searches executed"),
			popped:      counter(m, "heatpath.search.states.popped", "States removed from the frontier"),
			pushed:      counter(m, "heatpath.search.states.pushed", "States pushed onto the frontier"),
			stale:       counter(m, "heatpath.search.states.stale", "Popped states discarded as stale"),
			unreachable: counter(m, "heatpath.search.unreachable", "Searches that ended without a path"),
		}
	})

	return &metrics
}

// recordSearch adds one search's counters, tagged with its policy bounds.
func recordSearch(p Policy, st Stats, reached bool) {
	m := loadMetrics()
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.Int("min_run", p.MinRun),
		attribute.Int("max_run", p.MaxRun),
	)

	m.runs.Add(ctx, 1, attrs)
	m.popped.Add(ctx, int64(st.Popped), attrs)
	m.pushed.Add(ctx, int64(st.Pushed), attrs)
	m.stale.Add(ctx, int64(st.Stale), attrs)
	if !reached {
		m.unreachable.Add(ctx, 1, attrs)
	}
}
