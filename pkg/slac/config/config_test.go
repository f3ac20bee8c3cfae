package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

const sampleYAML = `
variables:
  price: 99.5
  name: Rincewind
  active: true
  tags: [new, sale]
expressions:
  discount: price > 50 and active
engine:
  optimize: true
  validate: false
`

func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)

	env, err := cfg.Environment()
	require.NoError(t, err)

	price, ok := env.Variable("price")
	require.True(t, ok)
	assert.Equal(t, slac.NewNumber(99.5), price)

	name, ok := env.Variable("name")
	require.True(t, ok)
	assert.Equal(t, slac.NewString("Rincewind"), name)

	active, ok := env.Variable("active")
	require.True(t, ok)
	assert.Equal(t, slac.NewBoolean(true), active)

	tags, ok := env.Variable("tags")
	require.True(t, ok)
	assert.Equal(t, slac.NewArray(slac.NewString("new"), slac.NewString("sale")), tags)

	require.NotNil(t, cfg.Engine.Optimize)
	assert.True(t, *cfg.Engine.Optimize)
	require.NotNil(t, cfg.Engine.Validate)
	assert.False(t, *cfg.Engine.Validate)
}

func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"variables": {"max": 10, "label": "x"}}`))
	require.NoError(t, err)

	env, err := cfg.Environment()
	require.NoError(t, err)

	max, ok := env.Variable("max")
	require.True(t, ok)
	assert.Equal(t, slac.NewNumber(10), max)

	assert.Nil(t, cfg.Engine.Optimize)
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`{not json`))
	assert.Error(t, err)

	_, err = FromYAML([]byte("\tvariables: x"))
	assert.Error(t, err)
}

func TestNamedExpression(t *testing.T) {
	cfg, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)

	expr, err := cfg.Expression("discount")
	require.NoError(t, err)

	env, err := cfg.Environment()
	require.NoError(t, err)

	result, err := slac.Execute(env, expr)
	require.NoError(t, err)
	assert.Equal(t, slac.NewBoolean(true), result)

	_, err = cfg.Expression("missing")
	assert.Error(t, err)
}

func TestApplyOverwrites(t *testing.T) {
	env := slac.NewStaticEnvironment()
	env.AddVariable("price", slac.NewNumber(1))

	cfg, err := FromYAML([]byte("variables:\n  price: 2"))
	require.NoError(t, err)
	require.NoError(t, cfg.Apply(env))

	price, ok := env.Variable("price")
	require.True(t, ok)
	assert.Equal(t, slac.NewNumber(2), price)
}

func TestUnsupportedVariableType(t *testing.T) {
	cfg, err := FromYAML([]byte("variables:\n  nested:\n    a: 1"))
	require.NoError(t, err)

	_, err = cfg.Environment()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested")
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := FromFile(path)
	require.NoError(t, err)
	assert.Contains(t, cfg.Variables, "price")

	jsonPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"variables":{"a":1}}`), 0o644))
	_, err = FromFile(jsonPath)
	assert.NoError(t, err)

	_, err = FromFile(filepath.Join(dir, "env.toml"))
	assert.Error(t, err)

	_, err = FromFile(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
