package slac

// TokenKind identifies the lexical class of a Token.
type TokenKind uint8

const (
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenLeftBracket
	TokenRightBracket
	TokenComma
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual
	TokenEqual
	TokenNotEqual
	TokenAnd
	TokenOr
	TokenXor
	TokenNot
	TokenDiv
	TokenMod
	TokenLiteral
	TokenIdentifier
)

// Token is a single lexical element. Literal tokens carry their Value,
// identifier tokens their case-preserved name.
type Token struct {
	Kind  TokenKind
	Value Value
	Name  string
}

// Precedence orders operators for the Pratt parser; higher binds
// tighter.
type Precedence uint8

const (
	PrecedenceNone Precedence = iota
	PrecedenceOr
	PrecedenceAnd
	PrecedenceEquality
	PrecedenceComparison
	PrecedenceTerm
	PrecedenceFactor
	PrecedenceUnary
	PrecedenceCall
	PrecedencePrimary
)

// Next returns the next-higher precedence level. Parsing the right
// operand one level above the operator makes binary operators
// left-associative.
func (p Precedence) Next() Precedence {
	if p >= PrecedencePrimary {
		return PrecedencePrimary
	}
	return p + 1
}

// precedence returns the infix binding power of a token kind, or
// PrecedenceNone if the token cannot appear in infix position.
func (k TokenKind) precedence() Precedence {
	switch k {
	case TokenOr, TokenXor:
		return PrecedenceOr
	case TokenAnd:
		return PrecedenceAnd
	case TokenEqual, TokenNotEqual:
		return PrecedenceEquality
	case TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual:
		return PrecedenceComparison
	case TokenPlus, TokenMinus:
		return PrecedenceTerm
	case TokenStar, TokenSlash, TokenDiv, TokenMod:
		return PrecedenceFactor
	case TokenLeftParen:
		return PrecedenceCall
	default:
		return PrecedenceNone
	}
}
