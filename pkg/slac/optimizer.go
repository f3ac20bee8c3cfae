package slac

import "strings"

// TernaryFunctionName is the reserved function name rewritten by
// Optimize into a lazy Ternary node when called with three parameters.
const TernaryFunctionName = "if_then"

// Optimize rewrites every three-parameter if_then call into a Ternary
// node, bottom-up, so that only the selected branch is evaluated. The
// rewrite is total: it never fails and leaves every other node as it
// is. Calls with a different parameter count are left alone and keep
// their eager call semantics.
func Optimize(expr Expression) Expression {
	optimized, _ := rewriteTernary(expr)
	return optimized
}

func rewriteTernary(expr Expression) (Expression, bool) {
	switch node := expr.(type) {
	case *Unary:
		right, changed := rewriteTernary(node.Right)
		if !changed {
			return node, false
		}
		return &Unary{Operator: node.Operator, Right: right}, true
	case *Binary:
		left, changedLeft := rewriteTernary(node.Left)
		right, changedRight := rewriteTernary(node.Right)
		if !changedLeft && !changedRight {
			return node, false
		}
		return &Binary{Operator: node.Operator, Left: left, Right: right}, true
	case *Ternary:
		left, changedLeft := rewriteTernary(node.Left)
		middle, changedMiddle := rewriteTernary(node.Middle)
		right, changedRight := rewriteTernary(node.Right)
		if !changedLeft && !changedMiddle && !changedRight {
			return node, false
		}
		return &Ternary{Operator: node.Operator, Left: left, Middle: middle, Right: right}, true
	case *Array:
		expressions, changed := rewriteTernaryList(node.Expressions)
		if !changed {
			return node, false
		}
		return &Array{Expressions: expressions}, true
	case *Call:
		params, changed := rewriteTernaryList(node.Params)
		if len(params) == 3 && strings.EqualFold(node.Name, TernaryFunctionName) {
			return &Ternary{
				Operator: OperatorTernaryCondition,
				Left:     params[0],
				Middle:   params[1],
				Right:    params[2],
			}, true
		}
		if !changed {
			return node, false
		}
		return &Call{Name: node.Name, Params: params}, true
	default:
		return expr, false
	}
}

func rewriteTernaryList(expressions []Expression) ([]Expression, bool) {
	changed := false
	rewritten := make([]Expression, len(expressions))
	for i, expr := range expressions {
		rewritten[i], changed = rewriteOne(expr, changed)
	}
	if !changed {
		return expressions, false
	}
	return rewritten, true
}

func rewriteOne(expr Expression, changedSoFar bool) (Expression, bool) {
	rewritten, changed := rewriteTernary(expr)
	return rewritten, changedSoFar || changed
}

// OptimizeAll applies the ternary rewrite and constant folding until the
// tree no longer changes. Folding evaluates subtrees whose operands are
// all literal, including calls to pure functions the environment knows;
// a subtree that would fail at runtime (e.g. "1 + true") fails here
// instead. A nil environment folds operators but no calls.
func OptimizeAll(env Environment, expr Expression) (Expression, error) {
	for {
		rewritten, changedTernary := rewriteTernary(expr)
		folded, changedFold, err := foldConstants(env, rewritten)
		if err != nil {
			return nil, err
		}
		expr = folded
		if !changedTernary && !changedFold {
			return expr, nil
		}
	}
}

// FoldConstants performs a single constant folding pass without the
// ternary rewrite.
func FoldConstants(env Environment, expr Expression) (Expression, error) {
	folded, _, err := foldConstants(env, expr)
	return folded, err
}

func foldConstants(env Environment, expr Expression) (Expression, bool, error) {
	switch node := expr.(type) {
	case *Unary:
		right, changed, err := foldConstants(env, node.Right)
		if err != nil {
			return nil, false, err
		}
		folded := &Unary{Operator: node.Operator, Right: right}
		if isLiteral(right) {
			return foldNode(env, folded)
		}
		return pick(node, folded, changed), changed, nil
	case *Binary:
		left, changedLeft, err := foldConstants(env, node.Left)
		if err != nil {
			return nil, false, err
		}
		right, changedRight, err := foldConstants(env, node.Right)
		if err != nil {
			return nil, false, err
		}
		changed := changedLeft || changedRight
		folded := &Binary{Operator: node.Operator, Left: left, Right: right}
		if isLiteral(left) && isLiteral(right) {
			return foldNode(env, folded)
		}
		return pick(node, folded, changed), changed, nil
	case *Ternary:
		left, changedLeft, err := foldConstants(env, node.Left)
		if err != nil {
			return nil, false, err
		}
		// A literal boolean condition selects its branch statically,
		// before the branches are folded: the discarded branch is never
		// evaluated, so errors in it stay as unreachable as they are at
		// runtime. Conditions of any other literal kind stay put so the
		// type error still surfaces at evaluation time.
		if literal, ok := left.(*Literal); ok && literal.Value.Kind() == KindBoolean {
			branch := node.Right
			if literal.Value.Bool() {
				branch = node.Middle
			}
			folded, _, err := foldConstants(env, branch)
			if err != nil {
				return nil, false, err
			}
			return folded, true, nil
		}
		middle, changedMiddle, err := foldConstants(env, node.Middle)
		if err != nil {
			return nil, false, err
		}
		right, changedRight, err := foldConstants(env, node.Right)
		if err != nil {
			return nil, false, err
		}
		changed := changedLeft || changedMiddle || changedRight
		folded := &Ternary{Operator: node.Operator, Left: left, Middle: middle, Right: right}
		return pick(node, folded, changed), changed, nil
	case *Array:
		changed := false
		expressions := make([]Expression, len(node.Expressions))
		allLiteral := true
		for i, element := range node.Expressions {
			foldedElement, changedElement, err := foldConstants(env, element)
			if err != nil {
				return nil, false, err
			}
			expressions[i] = foldedElement
			changed = changed || changedElement
			allLiteral = allLiteral && isLiteral(foldedElement)
		}
		folded := &Array{Expressions: expressions}
		if allLiteral {
			return foldNode(env, folded)
		}
		return pick(node, folded, changed), changed, nil
	case *Call:
		changed := false
		params := make([]Expression, len(node.Params))
		allLiteral := true
		for i, param := range node.Params {
			foldedParam, changedParam, err := foldConstants(env, param)
			if err != nil {
				return nil, false, err
			}
			params[i] = foldedParam
			changed = changed || changedParam
			allLiteral = allLiteral && isLiteral(foldedParam)
		}
		folded := &Call{Name: node.Name, Params: params}
		if allLiteral && foldableCall(env, folded) {
			return foldNode(env, folded)
		}
		return pick(node, folded, changed), changed, nil
	default:
		return expr, false, nil
	}
}

// foldableCall reports whether a call can be evaluated at optimization
// time: the function must exist, be pure and accept the parameter
// count.
func foldableCall(env Environment, node *Call) bool {
	if env == nil {
		return false
	}
	function, ok := env.Function(node.Name)
	return ok && function.Pure && function.Arity.Accepts(len(node.Params))
}

func foldNode(env Environment, expr Expression) (Expression, bool, error) {
	value, err := Execute(env, expr)
	if err != nil {
		return nil, false, err
	}
	return &Literal{Value: value}, true, nil
}

func isLiteral(expr Expression) bool {
	_, ok := expr.(*Literal)
	return ok
}

// pick avoids allocating a fresh node when nothing underneath changed.
func pick(original, folded Expression, changed bool) Expression {
	if changed {
		return folded
	}
	return original
}
