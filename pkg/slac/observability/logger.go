// Package observability provides structured logging, metrics, and
// distributed tracing for expression evaluation.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds evaluation context to a logger.
// Returns a new logger with run_id and source fields.
func EnrichLogger(logger *slog.Logger, runID, source string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("source", source),
	)
}

// LogCompile logs a successful compilation.
func LogCompile(logger *slog.Logger, source string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expression compiled",
		slog.String("source", source),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCompileError logs a scan or parse failure.
func LogCompileError(logger *slog.Logger, source string, err error) {
	if logger == nil {
		return
	}
	logger.Error("expression compilation failed",
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}

// LogEvaluation logs a successful evaluation.
func LogEvaluation(logger *slog.Logger, runID string, durationMs float64, result string) {
	if logger == nil {
		return
	}
	logger.Info("expression evaluated",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.String("result", result),
	)
}

// LogEvaluationError logs an evaluation failure.
func LogEvaluationError(logger *slog.Logger, runID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("expression evaluation failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCacheHit logs a compiled-expression cache hit.
func LogCacheHit(logger *slog.Logger, source string) {
	if logger == nil {
		return
	}
	logger.Debug("expression cache hit",
		slog.String("source", source),
	)
}

// LogCacheMiss logs a compiled-expression cache miss.
func LogCacheMiss(logger *slog.Logger, source string) {
	if logger == nil {
		return
	}
	logger.Debug("expression cache miss",
		slog.String("source", source),
	)
}

// LogCacheError logs a cache failure (non-fatal, evaluation proceeds
// without the cache).
func LogCacheError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("expression cache failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
