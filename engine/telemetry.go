package engine

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/jbraz05/Spotify-Graph-Explorer/engine"

// telemetry bundles the Prometheus collectors and otel instruments of one Engine.
type telemetry struct {
	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	mutations     *prometheus.CounterVec
	negatedArcs   prometheus.Counter

	otelDuration metric.Float64Histogram
}

func newTelemetry(reg prometheus.Registerer, mp metric.MeterProvider) *telemetry {
	factory := promauto.With(reg)
	t := &telemetry{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spotigraph_queries_total",
			Help: "Queries answered by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spotigraph_query_duration_seconds",
			Help:    "Query latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50µs to ~1.6s
		}, []string{"algorithm"}),

		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spotigraph_mutations_total",
			Help: "Graph mutations by operation",
		}, []string{"operation"}),

		negatedArcs: factory.NewCounter(prometheus.CounterOpts{
			Name: "spotigraph_negated_arcs_total",
			Help: "Arcs turned negative by negate-and-direct",
		}),
	}

	hist, err := mp.Meter(instrumentationName).Float64Histogram("spotigraph.query.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Query latency"))
	if err != nil {
		hist = noop.Float64Histogram{}
	}
	t.otelDuration = hist

	return t
}

func (t *telemetry) observeQuery(ctx context.Context, alg Algorithm, outcome string, elapsed time.Duration) {
	t.queries.WithLabelValues(string(alg), outcome).Inc()
	t.queryDuration.WithLabelValues(string(alg)).Observe(elapsed.Seconds())
	t.otelDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("algorithm", string(alg)),
		attribute.String("outcome", outcome),
	))
}

func (t *telemetry) observeMutation(op string, negated int) {
	t.mutations.WithLabelValues(op).Inc()
	if negated > 0 {
		t.negatedArcs.Add(float64(negated))
	}
}
