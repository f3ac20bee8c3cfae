package slac

// parser folds a token sequence into an Expression by precedence
// climbing: each call to parsePrecedence consumes a prefix construct and
// then keeps folding infix operators as long as they bind at least as
// tightly as the requested level.
type parser struct {
	tokens []Token
	pos    int
}

// Compile tokenizes and parses source in one step.
func Compile(source string) (Expression, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds the expression tree for a token sequence. Every token
// must be consumed; trailing tokens after a complete expression are a
// syntax error.
func Parse(tokens []Token) (Expression, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Position: 0, Err: ErrEmptyExpression}
	}
	p := &parser{tokens: tokens}
	expr, err := p.parsePrecedence(PrecedenceOr)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, &SyntaxError{
			Position: p.pos,
			Detail:   "expected end of expression",
			Err:      ErrUnexpectedToken,
		}
	}
	return expr, nil
}

func (p *parser) parsePrecedence(min Precedence) (Expression, error) {
	token, err := p.advance("expression expected")
	if err != nil {
		return nil, err
	}
	expr, err := p.prefix(token)
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek().Kind.precedence() >= min {
		token, err = p.advance("operator expected")
		if err != nil {
			return nil, err
		}
		expr, err = p.infix(expr, token)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *parser) prefix(token Token) (Expression, error) {
	switch token.Kind {
	case TokenLiteral:
		return &Literal{Value: token.Value}, nil
	case TokenIdentifier:
		return &Variable{Name: token.Name}, nil
	case TokenLeftParen:
		return p.grouping()
	case TokenLeftBracket:
		return p.array()
	case TokenMinus:
		return p.unary(OperatorMinus)
	case TokenNot:
		return p.unary(OperatorNot)
	default:
		return nil, &SyntaxError{
			Position: p.pos - 1,
			Detail:   "expression expected",
			Err:      ErrUnexpectedToken,
		}
	}
}

func (p *parser) infix(left Expression, token Token) (Expression, error) {
	if token.Kind == TokenLeftParen {
		return p.call(left)
	}
	operator, ok := operatorFromToken(token.Kind)
	if !ok {
		return nil, &SyntaxError{
			Position: p.pos - 1,
			Detail:   "operator expected",
			Err:      ErrUnexpectedToken,
		}
	}
	right, err := p.parsePrecedence(token.Kind.precedence().Next())
	if err != nil {
		return nil, err
	}
	return &Binary{Operator: operator, Left: left, Right: right}, nil
}

func (p *parser) unary(operator Operator) (Expression, error) {
	right, err := p.parsePrecedence(PrecedenceUnary)
	if err != nil {
		return nil, err
	}
	return &Unary{Operator: operator, Right: right}, nil
}

func (p *parser) grouping() (Expression, error) {
	expr, err := p.parsePrecedence(PrecedenceOr)
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen, "')' expected"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) array() (Expression, error) {
	expressions, err := p.arguments(TokenRightBracket, "']' expected")
	if err != nil {
		return nil, err
	}
	return &Array{Expressions: expressions}, nil
}

// call turns "left(...)" into a Call node. Only a plain variable can be
// called.
func (p *parser) call(left Expression) (Expression, error) {
	variable, ok := left.(*Variable)
	if !ok {
		return nil, &SyntaxError{
			Position: p.pos - 1,
			Detail:   "not a valid call target",
			Err:      ErrUnexpectedToken,
		}
	}
	params, err := p.arguments(TokenRightParen, "')' expected")
	if err != nil {
		return nil, err
	}
	return &Call{Name: variable.Name, Params: params}, nil
}

// arguments parses a possibly empty comma-separated expression list up
// to and including the closing token.
func (p *parser) arguments(closing TokenKind, detail string) ([]Expression, error) {
	var list []Expression
	if p.match(closing) {
		return list, nil
	}
	for {
		expr, err := p.parsePrecedence(PrecedenceOr)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if !p.match(TokenComma) {
			break
		}
	}
	if err := p.expect(closing, detail); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) advance(detail string) (Token, error) {
	if p.atEnd() {
		return Token{}, &SyntaxError{
			Position: p.pos,
			Detail:   detail,
			Err:      ErrUnexpectedToken,
		}
	}
	token := p.tokens[p.pos]
	p.pos++
	return token, nil
}

func (p *parser) match(kind TokenKind) bool {
	if p.atEnd() || p.tokens[p.pos].Kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) expect(kind TokenKind, detail string) error {
	if p.match(kind) {
		return nil
	}
	return &SyntaxError{Position: p.pos, Detail: detail, Err: ErrUnexpectedToken}
}
