package slac

// CheckVariablesAndFunctions verifies that every variable and function
// an expression references is present in the environment and that every
// call matches its function's arity. The walk is depth-first, left to
// right, and stops at the first failure; nil means the expression
// resolves completely. The check is advisory: evaluation does not
// depend on it and surfaces the same conditions as runtime errors.
func CheckVariablesAndFunctions(env Environment, expr Expression) error {
	switch node := expr.(type) {
	case *Variable:
		if _, ok := env.Variable(node.Name); !ok {
			return &MissingVariableError{Name: node.Name}
		}
		return nil
	case *Unary:
		return CheckVariablesAndFunctions(env, node.Right)
	case *Binary:
		if err := CheckVariablesAndFunctions(env, node.Left); err != nil {
			return err
		}
		return CheckVariablesAndFunctions(env, node.Right)
	case *Ternary:
		// A ternary stands for the reserved if_then call, so the
		// function must still resolve even though evaluation itself
		// never dispatches through the environment.
		if err := checkFunction(env, TernaryFunctionName, 3); err != nil {
			return err
		}
		return checkList(env, []Expression{node.Left, node.Middle, node.Right})
	case *Array:
		return checkList(env, node.Expressions)
	case *Call:
		if err := checkFunction(env, node.Name, len(node.Params)); err != nil {
			return err
		}
		return checkList(env, node.Params)
	default:
		return nil
	}
}

func checkFunction(env Environment, name string, params int) error {
	function, ok := env.Function(name)
	if !ok {
		return &MissingFunctionError{Name: name}
	}
	if !function.Arity.Accepts(params) {
		return &ParamCountError{
			Function: name,
			Arity:    function.Arity,
			Found:    params,
		}
	}
	return nil
}

func checkList(env Environment, expressions []Expression) error {
	for _, expr := range expressions {
		if err := CheckVariablesAndFunctions(env, expr); err != nil {
			return err
		}
	}
	return nil
}

// CheckBooleanResult verifies that the top level node of an expression
// can produce a boolean. Variables and calls always pass since their
// runtime type is unknown; arrays and non-boolean literals always fail.
func CheckBooleanResult(expr Expression) error {
	switch node := expr.(type) {
	case *Literal:
		if node.Value.Kind() != KindBoolean {
			return &NonBooleanResultError{Expression: expr}
		}
		return nil
	case *Variable, *Call:
		return nil
	case *Unary:
		if node.Operator != OperatorNot {
			return &NonBooleanResultError{Expression: expr}
		}
		return nil
	case *Binary:
		switch node.Operator {
		case OperatorEqual, OperatorNotEqual,
			OperatorGreater, OperatorGreaterEqual,
			OperatorLess, OperatorLessEqual,
			OperatorAnd, OperatorOr, OperatorXor:
			return nil
		default:
			return &NonBooleanResultError{Expression: expr}
		}
	case *Ternary:
		if err := CheckBooleanResult(node.Middle); err != nil {
			return err
		}
		return CheckBooleanResult(node.Right)
	default:
		return &NonBooleanResultError{Expression: expr}
	}
}
