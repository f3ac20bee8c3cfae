package slac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEnvironmentVariables(t *testing.T) {
	env := NewStaticEnvironment()
	env.AddVariable("Price", NewNumber(100))

	t.Run("case-insensitive lookup", func(t *testing.T) {
		for _, name := range []string{"price", "PRICE", "Price"} {
			value, ok := env.Variable(name)
			require.True(t, ok)
			assert.Equal(t, NewNumber(100), value)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		env.AddVariable("PRICE", NewNumber(200))
		value, ok := env.Variable("price")
		require.True(t, ok)
		assert.Equal(t, NewNumber(200), value)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := env.Variable("missing")
		assert.False(t, ok)
	})

	t.Run("sorted name listing", func(t *testing.T) {
		env.AddVariable("active", NewBoolean(true))
		assert.Equal(t, []string{"active", "price"}, env.Variables())
	})
}

func TestStaticEnvironmentFunctions(t *testing.T) {
	env := NewStaticEnvironment()
	identity := func(params []Value) (Value, error) { return params[0], nil }
	env.AddFunction(Function{Name: "Echo", Func: identity, Arity: RequiredArity(1)})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		fn, ok := env.Function("echo")
		require.True(t, ok)
		assert.Equal(t, "Echo", fn.Name)
	})

	t.Run("last write wins", func(t *testing.T) {
		env.AddFunction(Function{Name: "ECHO", Func: identity, Arity: RequiredArity(2)})
		fn, ok := env.Function("echo")
		require.True(t, ok)
		assert.True(t, fn.Arity.Accepts(2))
		assert.False(t, fn.Arity.Accepts(1))
	})

	t.Run("sorted listing", func(t *testing.T) {
		env.AddFunctions([]Function{
			{Name: "beta", Func: identity, Arity: RequiredArity(1)},
			{Name: "Alpha", Func: identity, Arity: RequiredArity(1)},
		})
		names := make([]string, 0)
		for _, fn := range env.Functions() {
			names = append(names, fn.Name)
		}
		assert.Equal(t, []string{"Alpha", "beta", "ECHO"}, names)
	})
}

func TestArity(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		arity := RequiredArity(2)
		assert.False(t, arity.Accepts(1))
		assert.True(t, arity.Accepts(2))
		assert.False(t, arity.Accepts(3))
		assert.Equal(t, "2", arity.String())
	})

	t.Run("optional", func(t *testing.T) {
		arity := OptionalArity(2, 1)
		assert.False(t, arity.Accepts(1))
		assert.True(t, arity.Accepts(2))
		assert.True(t, arity.Accepts(3))
		assert.False(t, arity.Accepts(4))
		assert.Equal(t, "2..3", arity.String())
	})

	t.Run("variadic", func(t *testing.T) {
		arity := VariadicArity()
		assert.True(t, arity.Accepts(0))
		assert.True(t, arity.Accepts(100))
	})
}
