package navigation

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "autonav"
	metricsSubsystem = "navigation"
)

// Query result label values.
const (
	resultOK          = "ok"
	resultStale       = "stale"
	resultUnreachable = "unreachable"
	resultBadIndex    = "out_of_range"
	resultNotFound    = "not_found"
	resultError       = "error"
)

// metrics holds the per-instance collectors. They always exist; they are
// only exported when a Registerer was supplied.
type metrics struct {
	recomputes       prometheus.Counter
	recomputeSeconds prometheus.Histogram
	queries          *prometheus.CounterVec
	nodes            prometheus.Gauge
	edges            prometheus.Gauge
}

func newMetrics(name string) *metrics {
	var labels prometheus.Labels
	if name != "" {
		labels = prometheus.Labels{"graph": name}
	}

	return &metrics{
		recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "recomputes_total",
			Help:        "Number of completed shortest-path recomputes.",
			ConstLabels: labels,
		}),
		recomputeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "recompute_duration_seconds",
			Help:        "Wall time of a shortest-path recompute.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "route_queries_total",
			Help:        "Route queries by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "nodes",
			Help:        "Registered waypoints.",
			ConstLabels: labels,
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "edges",
			Help:        "Undirected edges in the waypoint graph.",
			ConstLabels: labels,
		}),
	}
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.recomputes, m.recomputeSeconds, m.queries, m.nodes, m.edges}
}

func (m *metrics) register(reg prometheus.Registerer) error {
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (m *metrics) observeRecompute(d time.Duration) {
	m.recomputes.Inc()
	m.recomputeSeconds.Observe(d.Seconds())
}

// observeQuery counts one route query under a label derived from its error.
func (m *metrics) observeQuery(err error) {
	result := resultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrStaleQuery):
		result = resultStale
	case errors.Is(err, ErrUnreachable):
		result = resultUnreachable
	case errors.Is(err, ErrIndexOutOfRange):
		result = resultBadIndex
	case errors.Is(err, ErrNodeNotFound):
		result = resultNotFound
	default:
		result = resultError
	}
	m.queries.WithLabelValues(result).Inc()
}
