package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBatchWorkers bounds Batch concurrency when WithBatchWorkers is not given.
const DefaultBatchWorkers = 4

type options struct {
	logger         logrus.FieldLogger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	registerer     prometheus.Registerer
	batchWorkers   int
}

// Option configures an Engine.
type Option func(*options)

// WithLogger sets the logger. Default: logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracerProvider sets the span source. Default: the otel global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the otel meter source. Default: the otel global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WithRegisterer registers the Prometheus collectors with r. Without it the
// collectors exist but are not registered anywhere.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithBatchWorkers bounds the number of queries Batch runs at once.
// Values below 1 fall back to DefaultBatchWorkers.
func WithBatchWorkers(n int) Option {
	return func(o *options) { o.batchWorkers = n }
}

func newOptions(opts []Option) options {
	o := options{
		logger:         logrus.StandardLogger(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		batchWorkers:   DefaultBatchWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batchWorkers < 1 {
		o.batchWorkers = DefaultBatchWorkers
	}

	return o
}
