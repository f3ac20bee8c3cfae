package slac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func number(f float64) Expression { return &Literal{Value: NewNumber(f)} }

func TestParsePrecedence(t *testing.T) {
	t.Run("multiplication binds tighter", func(t *testing.T) {
		expr, err := Compile("1+2*3")
		require.NoError(t, err)
		assert.Equal(t, &Binary{
			Operator: OperatorPlus,
			Left:     number(1),
			Right: &Binary{
				Operator: OperatorMultiply,
				Left:     number(2),
				Right:    number(3),
			},
		}, expr)
	})

	t.Run("grouping overrides precedence", func(t *testing.T) {
		expr, err := Compile("(1+2)*3")
		require.NoError(t, err)
		assert.Equal(t, &Binary{
			Operator: OperatorMultiply,
			Left: &Binary{
				Operator: OperatorPlus,
				Left:     number(1),
				Right:    number(2),
			},
			Right: number(3),
		}, expr)
	})

	t.Run("same precedence associates left", func(t *testing.T) {
		expr, err := Compile("1+2+3+4+5")
		require.NoError(t, err)
		assert.Equal(t, &Binary{
			Operator: OperatorPlus,
			Left: &Binary{
				Operator: OperatorPlus,
				Left: &Binary{
					Operator: OperatorPlus,
					Left: &Binary{
						Operator: OperatorPlus,
						Left:     number(1),
						Right:    number(2),
					},
					Right: number(3),
				},
				Right: number(4),
			},
			Right: number(5),
		}, expr)
	})

	t.Run("comparison binds tighter than and", func(t *testing.T) {
		expr, err := Compile("a > 1 and b < 2")
		require.NoError(t, err)
		binary, ok := expr.(*Binary)
		require.True(t, ok)
		assert.Equal(t, OperatorAnd, binary.Operator)
		assert.IsType(t, &Binary{}, binary.Left)
	})
}

func TestParseUnary(t *testing.T) {
	expr, err := Compile("-1 + not done")
	require.NoError(t, err)
	assert.Equal(t, &Binary{
		Operator: OperatorPlus,
		Left:     &Unary{Operator: OperatorMinus, Right: number(1)},
		Right:    &Unary{Operator: OperatorNot, Right: &Variable{Name: "done"}},
	}, expr)
}

func TestParseArray(t *testing.T) {
	t.Run("elements", func(t *testing.T) {
		expr, err := Compile("[1, 'two', true]")
		require.NoError(t, err)
		assert.Equal(t, &Array{Expressions: []Expression{
			number(1),
			&Literal{Value: NewString("two")},
			&Literal{Value: NewBoolean(true)},
		}}, expr)
	})

	t.Run("empty", func(t *testing.T) {
		expr, err := Compile("[]")
		require.NoError(t, err)
		assert.Equal(t, &Array{}, expr)
	})

	t.Run("nested", func(t *testing.T) {
		expr, err := Compile("[[1],[2]]")
		require.NoError(t, err)
		assert.Equal(t, &Array{Expressions: []Expression{
			&Array{Expressions: []Expression{number(1)}},
			&Array{Expressions: []Expression{number(2)}},
		}}, expr)
	})
}

func TestParseCall(t *testing.T) {
	t.Run("with parameters", func(t *testing.T) {
		expr, err := Compile("max(1, 2)")
		require.NoError(t, err)
		assert.Equal(t, &Call{
			Name:   "max",
			Params: []Expression{number(1), number(2)},
		}, expr)
	})

	t.Run("no parameters", func(t *testing.T) {
		expr, err := Compile("random()")
		require.NoError(t, err)
		assert.Equal(t, &Call{Name: "random"}, expr)
	})

	t.Run("nested calls", func(t *testing.T) {
		expr, err := Compile("max(min(1, 2), 3)")
		require.NoError(t, err)
		assert.Equal(t, &Call{
			Name: "max",
			Params: []Expression{
				&Call{Name: "min", Params: []Expression{number(1), number(2)}},
				number(3),
			},
		}, expr)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"trailing tokens", "1 + 2 3"},
		{"missing operand", "1 +"},
		{"missing closing paren", "(1 + 2"},
		{"missing closing bracket", "[1, 2"},
		{"lone operator", "*"},
		{"call on literal", "1(2)"},
		{"empty group", "()"},
		{"dangling comma", "max(1,)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.source)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedToken)

			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestParseEmptyTokens(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyExpression)
}
