package slac

import (
	"strconv"
	"strings"
	"unicode"
)

// scanner walks the source code points left to right, emitting one token
// at a time without backtracking.
type scanner struct {
	source []rune
	pos    int
}

// Tokenize splits source into its lexical tokens. Empty or
// whitespace-only input is an error, not an empty token sequence.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{source: []rune(source)}
	var tokens []Token
	for {
		token, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		return nil, &SyntaxError{Position: 0, Err: ErrEmptyExpression}
	}
	return tokens, nil
}

func (s *scanner) next() (Token, bool, error) {
	s.skipWhitespace()
	if s.atEnd() {
		return Token{}, false, nil
	}

	start := s.pos
	c := s.advance()

	switch {
	case c == '(':
		return Token{Kind: TokenLeftParen}, true, nil
	case c == ')':
		return Token{Kind: TokenRightParen}, true, nil
	case c == '[':
		return Token{Kind: TokenLeftBracket}, true, nil
	case c == ']':
		return Token{Kind: TokenRightBracket}, true, nil
	case c == ',':
		return Token{Kind: TokenComma}, true, nil
	case c == '+':
		return Token{Kind: TokenPlus}, true, nil
	case c == '-':
		return Token{Kind: TokenMinus}, true, nil
	case c == '*':
		return Token{Kind: TokenStar}, true, nil
	case c == '/':
		return Token{Kind: TokenSlash}, true, nil
	case c == '=':
		return Token{Kind: TokenEqual}, true, nil
	case c == '>':
		if s.match('=') {
			return Token{Kind: TokenGreaterEqual}, true, nil
		}
		return Token{Kind: TokenGreater}, true, nil
	case c == '<':
		switch {
		case s.match('='):
			return Token{Kind: TokenLessEqual}, true, nil
		case s.match('>'):
			return Token{Kind: TokenNotEqual}, true, nil
		default:
			return Token{Kind: TokenLess}, true, nil
		}
	case c == '\'':
		return s.string(start)
	case unicode.IsDigit(c) || c == '.':
		return s.number(start)
	case unicode.IsLetter(c) || c == '_':
		return s.identifier(start), true, nil
	default:
		return Token{}, false, &SyntaxError{
			Position: start,
			Detail:   strconv.QuoteRune(c),
			Err:      ErrInvalidCharacter,
		}
	}
}

// string consumes a single-quoted literal; the opening quote is already
// consumed.
func (s *scanner) string(start int) (Token, bool, error) {
	for !s.atEnd() {
		if s.advance() == '\'' {
			text := string(s.source[start+1 : s.pos-1])
			return Token{Kind: TokenLiteral, Value: NewString(text)}, true, nil
		}
	}
	return Token{}, false, &SyntaxError{Position: start, Err: ErrUnterminatedString}
}

func (s *scanner) number(start int) (Token, bool, error) {
	for !s.atEnd() && (unicode.IsDigit(s.peek()) || s.peek() == '.') {
		s.pos++
	}
	text := string(s.source[start:s.pos])
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, false, &SyntaxError{
			Position: start,
			Detail:   text,
			Err:      ErrInvalidNumber,
		}
	}
	return Token{Kind: TokenLiteral, Value: NewNumber(number)}, true, nil
}

func (s *scanner) identifier(start int) Token {
	for !s.atEnd() {
		c := s.peek()
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '-' {
			break
		}
		s.pos++
	}
	name := string(s.source[start:s.pos])
	switch strings.ToLower(name) {
	case "true":
		return Token{Kind: TokenLiteral, Value: NewBoolean(true)}
	case "false":
		return Token{Kind: TokenLiteral, Value: NewBoolean(false)}
	case "and":
		return Token{Kind: TokenAnd}
	case "or":
		return Token{Kind: TokenOr}
	case "xor":
		return Token{Kind: TokenXor}
	case "not":
		return Token{Kind: TokenNot}
	case "div":
		return Token{Kind: TokenDiv}
	case "mod":
		return Token{Kind: TokenMod}
	default:
		return Token{Kind: TokenIdentifier, Name: name}
	}
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.source) }

func (s *scanner) peek() rune { return s.source[s.pos] }

func (s *scanner) advance() rune {
	c := s.source[s.pos]
	s.pos++
	return c
}

func (s *scanner) match(want rune) bool {
	if s.atEnd() || s.source[s.pos] != want {
		return false
	}
	s.pos++
	return true
}
