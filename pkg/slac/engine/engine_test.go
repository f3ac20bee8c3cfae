package engine

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/cache"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/config"
	"github.com/DennisPrediger/SLAC-sub000/pkg/slac/stdlib"
)

func testEnv() *slac.StaticEnvironment {
	env := slac.NewStaticEnvironment()
	stdlib.ExtendEnvironment(env)
	env.AddVariable("price", slac.NewNumber(150))
	env.AddVariable("active", slac.NewBoolean(true))
	return env
}

func TestEvaluate(t *testing.T) {
	e := New(testEnv())
	ctx := context.Background()

	result, err := e.Evaluate(ctx, "price > 100 and active")
	require.NoError(t, err)
	assert.Equal(t, slac.NewBoolean(true), result)

	result, err = e.Evaluate(ctx, "max(price, 200) * 2")
	require.NoError(t, err)
	assert.Equal(t, slac.NewNumber(400), result)

	_, err = e.Evaluate(ctx, "price +")
	assert.ErrorIs(t, err, slac.ErrUnexpectedToken)
}

func TestEvaluateWithCache(t *testing.T) {
	store := cache.NewMemoryStore()
	e := New(testEnv(), WithCache(cache.New(store)))
	defer e.Close()

	ctx := context.Background()

	result, err := e.Evaluate(ctx, "price * 2")
	require.NoError(t, err)
	assert.Equal(t, slac.NewNumber(300), result)
	assert.Equal(t, 1, store.Len())

	// second evaluation comes from the cache and agrees
	result, err = e.Evaluate(ctx, "price * 2")
	require.NoError(t, err)
	assert.Equal(t, slac.NewNumber(300), result)
	assert.Equal(t, 1, store.Len())
}

func TestEvaluateWithValidation(t *testing.T) {
	e := New(testEnv(), WithValidation())
	ctx := context.Background()

	_, err := e.Evaluate(ctx, "price > threshold")
	var missing *slac.MissingVariableError
	assert.ErrorAs(t, err, &missing)

	_, err = e.Evaluate(ctx, "frobnicate(price)")
	var missingFn *slac.MissingFunctionError
	assert.ErrorAs(t, err, &missingFn)

	result, err := e.Evaluate(ctx, "price > 100")
	require.NoError(t, err)
	assert.Equal(t, slac.NewBoolean(true), result)
}

func TestEvaluateBooleanOnly(t *testing.T) {
	e := New(testEnv(), WithBooleanResult())
	ctx := context.Background()

	result, err := e.Evaluate(ctx, "price > 100")
	require.NoError(t, err)
	assert.Equal(t, slac.NewBoolean(true), result)

	// statically rejected: addition cannot produce a boolean
	_, err = e.Evaluate(ctx, "price + 1")
	var nonBool *slac.NonBooleanResultError
	assert.ErrorAs(t, err, &nonBool)

	// statically fine (call result is unknown), rejected at runtime
	_, err = e.Evaluate(ctx, "max(1, 2)")
	assert.ErrorAs(t, err, &nonBool)
}

func TestEvaluateWithoutOptimization(t *testing.T) {
	env := testEnv()
	env.AddFunction(slac.Function{
		Name: "boom",
		Func: func([]slac.Value) (slac.Value, error) {
			return slac.Value{}, assert.AnError
		},
		Arity: slac.RequiredArity(0),
	})

	ctx := context.Background()

	// optimized: branches are lazy, boom is never called
	lazy := New(env)
	result, err := lazy.Evaluate(ctx, "if_then(true, 1, boom())")
	require.NoError(t, err)
	assert.Equal(t, slac.NewNumber(1), result)

	// unoptimized: the call stays eager and fails
	eager := New(env, WithoutOptimization())
	_, err = eager.Evaluate(ctx, "if_then(true, 1, boom())")
	assert.Error(t, err)
}

func TestEvaluateLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := New(testEnv(), WithLogger(logger), WithCache(cache.New(cache.NewMemoryStore())))
	defer e.Close()

	_, err := e.Evaluate(context.Background(), "price * 2")
	require.NoError(t, err)
	_, err = e.Evaluate(context.Background(), "price * 2")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "expression cache miss")
	assert.Contains(t, out, "expression compiled")
	assert.Contains(t, out, "expression cache hit")
	assert.Contains(t, out, "expression evaluated")
}

func TestFromConfig(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
variables:
  limit: 10
engine:
  validate: true
`))
	require.NoError(t, err)

	e, err := FromConfig(cfg, testEnv())
	require.NoError(t, err)
	defer e.Close()

	result, err := e.Evaluate(context.Background(), "price > limit")
	require.NoError(t, err)
	assert.Equal(t, slac.NewBoolean(true), result)

	// validation came from the document
	_, err = e.Evaluate(context.Background(), "undefined_var")
	var missing *slac.MissingVariableError
	assert.ErrorAs(t, err, &missing)
}

func TestFromConfigCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cfg, err := config.FromYAML([]byte("engine:\n  cache_path: " + path))
	require.NoError(t, err)

	e, err := FromConfig(cfg, testEnv())
	require.NoError(t, err)
	defer e.Close()

	result, err := e.Evaluate(context.Background(), "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, slac.NewNumber(3), result)
}
