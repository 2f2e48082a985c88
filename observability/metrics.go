package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for gridastar_search_total.
const (
	outcomeFound     = "found"
	outcomeExhausted = "exhausted"
	outcomeCancelled = "cancelled"
)

// MetricsObserver turns terminal search events into Prometheus metrics.
// Events other than search.found, search.exhausted and search.cancelled are
// ignored.
type MetricsObserver struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     prometheus.Histogram
	duration prometheus.Histogram
}

// NewMetricsObserver registers the search metrics with reg and returns an
// observer that records them. A nil reg uses prometheus.DefaultRegisterer.
// Registering twice on the same registerer panics, as promauto does.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &MetricsObserver{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridastar_search_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_search_expanded_nodes",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k cells
		}),
		cost: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_search_path_cost",
			Help:    "Cost of paths found",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048 steps
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_search_duration_seconds",
			Help:    "Search wall time in seconds, including progress callbacks",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
	}
}

func (m *MetricsObserver) OnEvent(ctx context.Context, event Event) {
	var outcome string
	switch event.Type {
	case EventSearchFound:
		outcome = outcomeFound
		if c, ok := event.Data[KeyCost].(int); ok {
			m.cost.Observe(float64(c))
		}
	case EventSearchExhausted:
		outcome = outcomeExhausted
	case EventSearchCancelled:
		outcome = outcomeCancelled
	default:
		return
	}

	m.searches.WithLabelValues(outcome).Inc()
	if n, ok := event.Data[KeyExpanded].(int); ok {
		m.expanded.Observe(float64(n))
	}
	if d, ok := event.Data[KeyDuration].(time.Duration); ok {
		m.duration.Observe(d.Seconds())
	}
}
