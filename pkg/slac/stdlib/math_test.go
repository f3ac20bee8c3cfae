package stdlib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

func TestNumericFunctions(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"abs(-11.2)", 11.2},
		{"abs(3)", 3},
		{"round(0.5)", 1},
		{"round(-0.5)", -1},
		{"trunc(1.9)", 1},
		{"trunc(-1.9)", -1},
		{"frac(1.5)", 0.5},
		{"sqrt(9)", 3},
		{"exp(0)", 1},
		{"ln(e)", 1},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"arc_tan(0)", 0},
		{"pow(3)", 9},
		{"pow(2, 10)", 1024},
		{"pow(4, 0.5)", 2},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := eval(t, tt.source)
			require.NoError(t, err)
			require.Equal(t, slac.KindNumber, got.Kind())
			assert.InDelta(t, tt.want, got.Float(), 1e-12)
		})
	}

	t.Run("wrong type", func(t *testing.T) {
		_, err := eval(t, "abs('eleven')")
		assert.ErrorIs(t, err, slac.ErrTypeMismatch)
	})
}

func TestIntToHex(t *testing.T) {
	got, err := eval(t, "int_to_hex(3735928559)")
	require.NoError(t, err)
	assert.Equal(t, str("DEADBEEF"), got)

	got, err = eval(t, "int_to_hex(15.9)")
	require.NoError(t, err)
	assert.Equal(t, str("F"), got)
}

func TestEvenOdd(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"even(2)", true},
		{"even(3)", false},
		{"even(-4)", true},
		{"even(0)", true},
		{"odd(3)", true},
		{"odd(2)", false},
		{"odd(-3)", true},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := eval(t, tt.source)
			require.NoError(t, err)
			assert.Equal(t, boolean(tt.want), got)
		})
	}
}

func TestConstants(t *testing.T) {
	got, err := eval(t, "pi")
	require.NoError(t, err)
	assert.Equal(t, num(math.Pi), got)

	got, err = eval(t, "tau / 2 = pi")
	require.NoError(t, err)
	assert.Equal(t, boolean(true), got)
}

func TestRandom(t *testing.T) {
	for range 20 {
		got, err := eval(t, "random()")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Float(), 0.0)
		assert.Less(t, got.Float(), 1.0)

		got, err = eval(t, "random(10)")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Float(), 0.0)
		assert.Less(t, got.Float(), 10.0)
	}
}

func TestChoice(t *testing.T) {
	got, err := eval(t, "choice(42)")
	require.NoError(t, err)
	assert.Equal(t, num(42), got)

	got, err = eval(t, "choice([7, 7, 7])")
	require.NoError(t, err)
	assert.Equal(t, num(7), got)

	for range 20 {
		got, err := eval(t, "choice(1, 2, 3)")
		require.NoError(t, err)
		assert.Contains(t, []float64{1, 2, 3}, got.Float())
	}

	_, err = eval(t, "choice([])")
	assert.ErrorIs(t, err, slac.ErrParamCount)
}
