package slac

// Execute evaluates a compiled expression against an environment by
// walking the tree. 'and' and 'or' short-circuit, a Ternary evaluates
// only the selected branch, and a Call evaluates all parameters eagerly.
// Any type mismatch or failing function aborts the whole evaluation.
func Execute(env Environment, expr Expression) (Value, error) {
	switch node := expr.(type) {
	case *Literal:
		return node.Value, nil
	case *Variable:
		// An absent variable is not an error: it evaluates to the empty
		// "nothing" value, which compares equal to any empty value.
		if value, ok := env.Variable(node.Name); ok {
			return value, nil
		}
		return nothing, nil
	case *Unary:
		return executeUnary(env, node)
	case *Binary:
		return executeBinary(env, node)
	case *Ternary:
		return executeTernary(env, node)
	case *Array:
		return executeArray(env, node)
	case *Call:
		return executeCall(env, node)
	default:
		return nothing, ErrEmptyExpression
	}
}

func executeUnary(env Environment, node *Unary) (Value, error) {
	right, err := Execute(env, node.Right)
	if err != nil {
		return nothing, err
	}
	switch node.Operator {
	case OperatorMinus:
		return right.Neg()
	case OperatorNot:
		return right.Not()
	default:
		return nothing, &InvalidOperatorError{Operator: node.Operator}
	}
}

func executeBinary(env Environment, node *Binary) (Value, error) {
	if node.Operator == OperatorAnd || node.Operator == OperatorOr {
		return executeLogical(env, node)
	}
	left, err := Execute(env, node.Left)
	if err != nil {
		return nothing, err
	}
	right, err := Execute(env, node.Right)
	if err != nil {
		return nothing, err
	}
	switch node.Operator {
	case OperatorPlus:
		return left.Add(right)
	case OperatorMinus:
		return left.Sub(right)
	case OperatorMultiply:
		return left.Mul(right)
	case OperatorDivide:
		return left.Div(right)
	case OperatorDiv:
		return left.IntDiv(right)
	case OperatorMod:
		return left.Mod(right)
	case OperatorXor:
		return left.Xor(right)
	case OperatorEqual:
		return NewBoolean(left.Equal(right)), nil
	case OperatorNotEqual:
		return NewBoolean(!left.Equal(right)), nil
	case OperatorGreater, OperatorGreaterEqual, OperatorLess, OperatorLessEqual:
		return executeOrdering(node.Operator, left, right), nil
	default:
		return nothing, &InvalidOperatorError{Operator: node.Operator}
	}
}

// executeLogical evaluates 'and'/'or' with short-circuiting. Both
// operands must be booleans; there is no implicit conversion.
func executeLogical(env Environment, node *Binary) (Value, error) {
	left, err := Execute(env, node.Left)
	if err != nil {
		return nothing, err
	}
	if left.Kind() != KindBoolean {
		return nothing, &InvalidOperatorError{Operator: node.Operator}
	}
	if node.Operator == OperatorOr && left.Bool() {
		return NewBoolean(true), nil
	}
	if node.Operator == OperatorAnd && !left.Bool() {
		return NewBoolean(false), nil
	}
	right, err := Execute(env, node.Right)
	if err != nil {
		return nothing, err
	}
	if right.Kind() != KindBoolean {
		return nothing, &InvalidOperatorError{Operator: node.Operator}
	}
	return right, nil
}

// executeOrdering resolves '<', '<=', '>' and '>='. Values of different
// kinds are not ordered; any such comparison is simply false.
func executeOrdering(operator Operator, left, right Value) Value {
	c, ok := left.Compare(right)
	if !ok {
		return NewBoolean(false)
	}
	switch operator {
	case OperatorGreater:
		return NewBoolean(c > 0)
	case OperatorGreaterEqual:
		return NewBoolean(c >= 0)
	case OperatorLess:
		return NewBoolean(c < 0)
	default:
		return NewBoolean(c <= 0)
	}
}

func executeTernary(env Environment, node *Ternary) (Value, error) {
	if node.Operator != OperatorTernaryCondition {
		return nothing, &InvalidOperatorError{Operator: node.Operator}
	}
	condition, err := Execute(env, node.Left)
	if err != nil {
		return nothing, err
	}
	if condition.Kind() != KindBoolean {
		return nothing, &InvalidOperatorError{Operator: node.Operator}
	}
	if condition.Bool() {
		return Execute(env, node.Middle)
	}
	return Execute(env, node.Right)
}

func executeArray(env Environment, node *Array) (Value, error) {
	values := make([]Value, 0, len(node.Expressions))
	for _, expr := range node.Expressions {
		value, err := Execute(env, expr)
		if err != nil {
			return nothing, err
		}
		values = append(values, value)
	}
	return NewArray(values...), nil
}

func executeCall(env Environment, node *Call) (Value, error) {
	function, ok := env.Function(node.Name)
	if !ok {
		return nothing, &UnknownFunctionError{Name: node.Name}
	}
	if !function.Arity.Accepts(len(node.Params)) {
		return nothing, &ParamCountError{
			Function: node.Name,
			Arity:    function.Arity,
			Found:    len(node.Params),
		}
	}
	params := make([]Value, 0, len(node.Params))
	for _, expr := range node.Params {
		value, err := Execute(env, expr)
		if err != nil {
			return nothing, err
		}
		params = append(params, value)
	}
	result, err := function.Func(params)
	if err != nil {
		return nothing, &NativeFunctionError{Function: node.Name, Err: err}
	}
	return result, nil
}
