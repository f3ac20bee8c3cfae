package slac

// Operator identifies a unary, binary or ternary operation in the tree.
type Operator uint8

const (
	OperatorPlus Operator = iota
	OperatorMinus
	OperatorMultiply
	OperatorDivide
	OperatorDiv
	OperatorMod
	OperatorGreater
	OperatorGreaterEqual
	OperatorLess
	OperatorLessEqual
	OperatorEqual
	OperatorNotEqual
	OperatorAnd
	OperatorOr
	OperatorXor
	OperatorNot
	// OperatorTernaryCondition marks a Ternary node produced by Optimize
	// from a three-parameter if_then call.
	OperatorTernaryCondition
)

// String returns the operator's surface syntax, as written in an
// expression and as used by the JSON wire form.
func (o Operator) String() string {
	switch o {
	case OperatorPlus:
		return "+"
	case OperatorMinus:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	case OperatorDiv:
		return "div"
	case OperatorMod:
		return "mod"
	case OperatorGreater:
		return ">"
	case OperatorGreaterEqual:
		return ">="
	case OperatorLess:
		return "<"
	case OperatorLessEqual:
		return "<="
	case OperatorEqual:
		return "="
	case OperatorNotEqual:
		return "<>"
	case OperatorAnd:
		return "and"
	case OperatorOr:
		return "or"
	case OperatorXor:
		return "xor"
	case OperatorNot:
		return "not"
	case OperatorTernaryCondition:
		return TernaryFunctionName
	default:
		return "invalid"
	}
}

// operatorFromSymbol resolves a surface symbol back to its Operator.
// It is the inverse of String and is used by deserialization.
func operatorFromSymbol(symbol string) (Operator, bool) {
	switch symbol {
	case "+":
		return OperatorPlus, true
	case "-":
		return OperatorMinus, true
	case "*":
		return OperatorMultiply, true
	case "/":
		return OperatorDivide, true
	case "div":
		return OperatorDiv, true
	case "mod":
		return OperatorMod, true
	case ">":
		return OperatorGreater, true
	case ">=":
		return OperatorGreaterEqual, true
	case "<":
		return OperatorLess, true
	case "<=":
		return OperatorLessEqual, true
	case "=":
		return OperatorEqual, true
	case "<>":
		return OperatorNotEqual, true
	case "and":
		return OperatorAnd, true
	case "or":
		return OperatorOr, true
	case "xor":
		return OperatorXor, true
	case "not":
		return OperatorNot, true
	case TernaryFunctionName:
		return OperatorTernaryCondition, true
	default:
		return 0, false
	}
}

// operatorFromToken maps an operator token to its Operator.
func operatorFromToken(kind TokenKind) (Operator, bool) {
	switch kind {
	case TokenPlus:
		return OperatorPlus, true
	case TokenMinus:
		return OperatorMinus, true
	case TokenStar:
		return OperatorMultiply, true
	case TokenSlash:
		return OperatorDivide, true
	case TokenDiv:
		return OperatorDiv, true
	case TokenMod:
		return OperatorMod, true
	case TokenGreater:
		return OperatorGreater, true
	case TokenGreaterEqual:
		return OperatorGreaterEqual, true
	case TokenLess:
		return OperatorLess, true
	case TokenLessEqual:
		return OperatorLessEqual, true
	case TokenEqual:
		return OperatorEqual, true
	case TokenNotEqual:
		return OperatorNotEqual, true
	case TokenAnd:
		return OperatorAnd, true
	case TokenOr:
		return OperatorOr, true
	case TokenXor:
		return OperatorXor, true
	case TokenNot:
		return OperatorNot, true
	default:
		return 0, false
	}
}
