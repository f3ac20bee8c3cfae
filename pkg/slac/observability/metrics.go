package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records evaluation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCompile records a compilation with its duration and error
	// status.
	RecordCompile(ctx context.Context, duration time.Duration, err error)

	// RecordEvaluation records an evaluation completion.
	RecordEvaluation(ctx context.Context, success bool, duration time.Duration)

	// RecordCacheLookup records a compiled-expression cache lookup.
	RecordCacheLookup(ctx context.Context, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	compiles       metric.Int64Counter
	compileLatency metric.Float64Histogram
	compileErrors  metric.Int64Counter
	evaluations    metric.Int64Counter
	evalLatency    metric.Float64Histogram
	cacheLookups   metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("slac")

	compiles, err := meter.Int64Counter("slac.compile.count",
		metric.WithDescription("Number of expression compilations"),
	)
	if err != nil {
		return nil, err
	}

	compileLatency, err := meter.Float64Histogram("slac.compile.latency_ms",
		metric.WithDescription("Compilation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	compileErrors, err := meter.Int64Counter("slac.compile.errors",
		metric.WithDescription("Number of scan and parse failures"),
	)
	if err != nil {
		return nil, err
	}

	evaluations, err := meter.Int64Counter("slac.eval.count",
		metric.WithDescription("Number of expression evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("slac.eval.latency_ms",
		metric.WithDescription("Evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheLookups, err := meter.Int64Counter("slac.cache.lookups",
		metric.WithDescription("Number of expression cache lookups"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		compiles:       compiles,
		compileLatency: compileLatency,
		compileErrors:  compileErrors,
		evaluations:    evaluations,
		evalLatency:    evalLatency,
		cacheLookups:   cacheLookups,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCompile records a compilation.
func (m *otelMetrics) RecordCompile(ctx context.Context, duration time.Duration, err error) {
	m.compiles.Add(ctx, 1)
	m.compileLatency.Record(ctx, float64(duration.Microseconds())/1000)
	if err != nil {
		m.compileErrors.Add(ctx, 1)
	}
}

// RecordEvaluation records an evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))
}

// RecordCacheLookup records a cache lookup.
func (m *otelMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("hit", hit),
	))
}
