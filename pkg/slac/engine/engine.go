// Package engine runs the full evaluation pipeline: compile,
// optimize, validate and execute, with optional expression caching
// and observability.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/cache"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/config"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/observability"
)

// Engine evaluates expression sources against a fixed environment.
// It is safe for concurrent use as long as the environment is.
type Engine struct {
	env      slac.Environment
	cache    *cache.Cache
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	optimize bool
	validate bool
	boolOnly bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache reuses compiled expressions across evaluations. Cache
// failures are logged and evaluation falls back to compiling.
func WithCache(c *cache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLogger enables structured logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables metrics recording.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithTracing enables span creation around evaluations and their
// pipeline phases.
func WithTracing(s observability.SpanManager) Option {
	return func(e *Engine) {
		if s != nil {
			e.spans = s
		}
	}
}

// WithoutOptimization skips the ternary rewrite and constant folding.
// Three-parameter conditional calls then evaluate eagerly.
func WithoutOptimization() Option {
	return func(e *Engine) {
		e.optimize = false
	}
}

// WithValidation checks variables, functions and arities against the
// environment before executing.
func WithValidation() Option {
	return func(e *Engine) {
		e.validate = true
	}
}

// WithBooleanResult rejects expressions that cannot produce a Boolean
// and fails evaluations that return any other type. Intended for
// filter and rule use.
func WithBooleanResult() Option {
	return func(e *Engine) {
		e.boolOnly = true
	}
}

// New creates an Engine evaluating against env. By default it
// optimizes, skips pre-execution validation, and records nothing.
func New(env slac.Environment, opts ...Option) *Engine {
	e := &Engine{
		env:      env,
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
		optimize: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromConfig builds an Engine from a loaded document: its variables
// become the environment (on top of base, which may be nil) and its
// engine section selects optimization, validation and the cache.
func FromConfig(cfg config.Config, base *slac.StaticEnvironment, opts ...Option) (*Engine, error) {
	env := base
	if env == nil {
		env = slac.NewStaticEnvironment()
	}
	if err := cfg.Apply(env); err != nil {
		return nil, err
	}

	var fromCfg []Option
	if cfg.Engine.Optimize != nil && !*cfg.Engine.Optimize {
		fromCfg = append(fromCfg, WithoutOptimization())
	}
	if cfg.Engine.Validate != nil && *cfg.Engine.Validate {
		fromCfg = append(fromCfg, WithValidation())
	}
	if cfg.Engine.CachePath != "" {
		store, err := cache.NewSQLiteStore(cfg.Engine.CachePath)
		if err != nil {
			return nil, err
		}
		fromCfg = append(fromCfg, WithCache(cache.New(store)))
	}

	return New(env, append(fromCfg, opts...)...), nil
}

// Compile turns a source into an executable tree, using the cache
// when one is configured.
func (e *Engine) Compile(ctx context.Context, source string) (slac.Expression, error) {
	start := time.Now()

	if e.cache != nil {
		expr, hit, err := e.cache.Load(source)
		e.metrics.RecordCacheLookup(ctx, hit && err == nil)
		switch {
		case err != nil:
			observability.LogCacheError(e.logger, "get", err)
		case hit:
			observability.LogCacheHit(e.logger, source)
			return expr, nil
		default:
			observability.LogCacheMiss(e.logger, source)
		}
	}

	ctx, span := e.spans.StartPhaseSpan(ctx, "compile")
	expr, err := slac.Compile(source)
	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordCompile(ctx, time.Since(start), err)
	if err != nil {
		observability.LogCompileError(e.logger, source, err)
		return nil, err
	}

	if e.optimize {
		_, span = e.spans.StartPhaseSpan(ctx, "optimize")
		expr, err = slac.OptimizeAll(e.env, expr)
		e.spans.EndSpanWithError(span, err)
		if err != nil {
			observability.LogCompileError(e.logger, source, err)
			return nil, err
		}
	}
	observability.LogCompile(e.logger, source, float64(time.Since(start).Microseconds())/1000)

	if e.cache != nil {
		if err := e.cache.Store(source, expr); err != nil {
			observability.LogCacheError(e.logger, "put", err)
		}
	}
	return expr, nil
}

// Evaluate compiles and executes a source.
func (e *Engine) Evaluate(ctx context.Context, source string) (slac.Value, error) {
	runID := uuid.NewString()
	ctx, span := e.spans.StartEvaluationSpan(ctx, source, runID)

	start := time.Now()
	result, err := e.evaluate(ctx, source)
	elapsed := time.Since(start)
	elapsedMs := float64(elapsed.Microseconds()) / 1000

	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordEvaluation(ctx, err == nil, elapsed)
	if err != nil {
		observability.LogEvaluationError(e.logger, runID, err, elapsedMs)
		return slac.Value{}, err
	}
	observability.LogEvaluation(e.logger, runID, elapsedMs, result.String())
	return result, nil
}

func (e *Engine) evaluate(ctx context.Context, source string) (slac.Value, error) {
	expr, err := e.Compile(ctx, source)
	if err != nil {
		return slac.Value{}, err
	}

	if e.validate || e.boolOnly {
		_, span := e.spans.StartPhaseSpan(ctx, "validate")
		err := e.validateTree(expr)
		e.spans.EndSpanWithError(span, err)
		if err != nil {
			return slac.Value{}, err
		}
	}

	_, span := e.spans.StartPhaseSpan(ctx, "execute")
	result, err := slac.Execute(e.env, expr)
	e.spans.EndSpanWithError(span, err)
	if err != nil {
		return slac.Value{}, err
	}

	if e.boolOnly && result.Kind() != slac.KindBoolean {
		return slac.Value{}, &slac.NonBooleanResultError{Expression: &slac.Literal{Value: result}}
	}
	return result, nil
}

func (e *Engine) validateTree(expr slac.Expression) error {
	if e.validate {
		if err := slac.CheckVariablesAndFunctions(e.env, expr); err != nil {
			return err
		}
	}
	if e.boolOnly {
		if err := slac.CheckBooleanResult(expr); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the cache, if any.
func (e *Engine) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}
