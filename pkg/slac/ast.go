package slac

// Expression is a node of the compiled tree. Expressions are strict
// trees built once by Parse; evaluation never mutates them, so a single
// tree can be shared between goroutines.
type Expression interface {
	exprNode()
}

// Literal is a constant value appearing in the source, or produced by
// constant folding.
type Literal struct {
	Value Value
}

// Variable references a named value resolved through the Environment at
// evaluation time. The name keeps its source spelling; lookups are
// case-insensitive.
type Variable struct {
	Name string
}

// Unary applies '-' or 'not' to a single operand.
type Unary struct {
	Operator Operator
	Right    Expression
}

// Binary applies an infix operator to two operands.
type Binary struct {
	Operator Operator
	Left     Expression
	Right    Expression
}

// Ternary is the lazy conditional produced by Optimize from a
// three-parameter if_then call: Left is the condition, Middle the value
// when true, Right the value when false. Only the selected branch is
// evaluated.
type Ternary struct {
	Operator Operator
	Left     Expression
	Middle   Expression
	Right    Expression
}

// Array is a bracketed list of element expressions.
type Array struct {
	Expressions []Expression
}

// Call invokes a native function from the Environment with eagerly
// evaluated parameters.
type Call struct {
	Name   string
	Params []Expression
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Ternary) exprNode()  {}
func (*Array) exprNode()    {}
func (*Call) exprNode()     {}
