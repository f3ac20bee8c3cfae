package slac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeOperators(t *testing.T) {
	tokens, err := Tokenize("+ - * / = <> < <= > >= ( ) [ ] ,")
	require.NoError(t, err)

	kinds := make([]TokenKind, len(tokens))
	for i, token := range tokens {
		kinds[i] = token.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenPlus, TokenMinus, TokenStar, TokenSlash,
		TokenEqual, TokenNotEqual, TokenLess, TokenLessEqual,
		TokenGreater, TokenGreaterEqual,
		TokenLeftParen, TokenRightParen,
		TokenLeftBracket, TokenRightBracket, TokenComma,
	}, kinds)
}

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		source string
		kind   TokenKind
	}{
		{"and", TokenAnd},
		{"AND", TokenAnd},
		{"or", TokenOr},
		{"xor", TokenXor},
		{"not", TokenNot},
		{"div", TokenDiv},
		{"DIV", TokenDiv},
		{"mod", TokenMod},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.kind, tokens[0].Kind)
		})
	}
}

func TestTokenizeLiterals(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   Value
	}{
		{"integer", "42", NewNumber(42)},
		{"decimal", "3.14", NewNumber(3.14)},
		{"leading dot", ".5", NewNumber(0.5)},
		{"string", "'hello'", NewString("hello")},
		{"empty string", "''", NewString("")},
		{"true", "true", NewBoolean(true)},
		{"false upper", "FALSE", NewBoolean(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenLiteral, tokens[0].Kind)
			assert.Equal(t, tt.want, tokens[0].Value)
		})
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	tokens, err := Tokenize("price _hidden unit-cost var2")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	names := []string{"price", "_hidden", "unit-cost", "var2"}
	for i, token := range tokens {
		assert.Equal(t, TokenIdentifier, token.Kind)
		assert.Equal(t, names[i], token.Name)
	}
}

func TestTokenizeKeepsIdentifierCase(t *testing.T) {
	tokens, err := Tokenize("SomeVar")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "SomeVar", tokens[0].Name)
}

func TestTokenizeFullExpression(t *testing.T) {
	tokens, err := Tokenize("max(1, 2) >= price and not done")
	require.NoError(t, err)

	kinds := make([]TokenKind, len(tokens))
	for i, token := range tokens {
		kinds[i] = token.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenIdentifier, TokenLeftParen, TokenLiteral, TokenComma,
		TokenLiteral, TokenRightParen, TokenGreaterEqual,
		TokenIdentifier, TokenAnd, TokenNot, TokenIdentifier,
	}, kinds)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"empty input", "", ErrEmptyExpression},
		{"whitespace only", "  \t\r\n ", ErrEmptyExpression},
		{"invalid character", "1 + #", ErrInvalidCharacter},
		{"invalid number", "1.2.3", ErrInvalidNumber},
		{"lone dot", ".", ErrInvalidNumber},
		{"unterminated string", "'abc", ErrUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.source)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
