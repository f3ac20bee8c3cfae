package slac

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidWireFormat is returned when serialized data does not
// describe a valid expression tree or value.
var ErrInvalidWireFormat = errors.New("invalid wire format")

// MarshalJSON encodes a Value as a single-key object naming its
// variant, e.g. {"number":5}, {"boolean":true}, {"string":"x"} or
// {"array":[...]}. The nothing state has no wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBoolean:
		return json.Marshal(map[string]bool{"boolean": v.b})
	case KindNumber:
		return json.Marshal(map[string]float64{"number": v.num})
	case KindString:
		return json.Marshal(map[string]string{"string": v.str})
	case KindArray:
		return json.Marshal(map[string][]Value{"array": v.arr})
	default:
		return nil, fmt.Errorf("%w: cannot encode %s value", ErrInvalidWireFormat, v.kind)
	}
}

// UnmarshalJSON decodes the single-key object form produced by
// MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWireFormat, err)
	}
	if len(wire) != 1 {
		return fmt.Errorf("%w: value must have exactly one variant key", ErrInvalidWireFormat)
	}
	for variant, payload := range wire {
		switch variant {
		case "boolean":
			var b bool
			if err := json.Unmarshal(payload, &b); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidWireFormat, err)
			}
			*v = NewBoolean(b)
		case "number":
			var f float64
			if err := json.Unmarshal(payload, &f); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidWireFormat, err)
			}
			*v = NewNumber(f)
		case "string":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidWireFormat, err)
			}
			*v = NewString(s)
		case "array":
			var items []Value
			if err := json.Unmarshal(payload, &items); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidWireFormat, err)
			}
			*v = NewArray(items...)
		default:
			return fmt.Errorf("%w: unknown value variant %q", ErrInvalidWireFormat, variant)
		}
	}
	return nil
}

// wireExpr defers marshaling of a child expression to
// MarshalExpression.
type wireExpr struct {
	expr Expression
}

func (w wireExpr) MarshalJSON() ([]byte, error) { return MarshalExpression(w.expr) }

func wireList(expressions []Expression) []wireExpr {
	list := make([]wireExpr, len(expressions))
	for i, expr := range expressions {
		list[i] = wireExpr{expr: expr}
	}
	return list
}

// MarshalExpression encodes a tree into its JSON wire form: each node
// is an object with a "type" discriminant and its typed fields, with
// operators spelled as their surface symbols. The format exists for
// caching compiled trees; a deserialized tree evaluates identically.
func MarshalExpression(expr Expression) ([]byte, error) {
	switch node := expr.(type) {
	case *Literal:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Value Value  `json:"value"`
		}{"literal", node.Value})
	case *Variable:
		return json.Marshal(struct {
			Type string `json:"type"`
			Name string `json:"name"`
		}{"variable", node.Name})
	case *Unary:
		return json.Marshal(struct {
			Type     string   `json:"type"`
			Operator string   `json:"operator"`
			Right    wireExpr `json:"right"`
		}{"unary", node.Operator.String(), wireExpr{node.Right}})
	case *Binary:
		return json.Marshal(struct {
			Type     string   `json:"type"`
			Operator string   `json:"operator"`
			Left     wireExpr `json:"left"`
			Right    wireExpr `json:"right"`
		}{"binary", node.Operator.String(), wireExpr{node.Left}, wireExpr{node.Right}})
	case *Ternary:
		return json.Marshal(struct {
			Type     string   `json:"type"`
			Operator string   `json:"operator"`
			Left     wireExpr `json:"left"`
			Middle   wireExpr `json:"middle"`
			Right    wireExpr `json:"right"`
		}{"ternary", node.Operator.String(), wireExpr{node.Left}, wireExpr{node.Middle}, wireExpr{node.Right}})
	case *Array:
		return json.Marshal(struct {
			Type        string     `json:"type"`
			Expressions []wireExpr `json:"expressions"`
		}{"array", wireList(node.Expressions)})
	case *Call:
		return json.Marshal(struct {
			Type   string     `json:"type"`
			Name   string     `json:"name"`
			Params []wireExpr `json:"params"`
		}{"call", node.Name, wireList(node.Params)})
	default:
		return nil, fmt.Errorf("%w: unknown node type %T", ErrInvalidWireFormat, expr)
	}
}

// UnmarshalExpression decodes the JSON wire form produced by
// MarshalExpression.
func UnmarshalExpression(data []byte) (Expression, error) {
	var wire struct {
		Type        string            `json:"type"`
		Value       json.RawMessage   `json:"value"`
		Name        string            `json:"name"`
		Operator    string            `json:"operator"`
		Left        json.RawMessage   `json:"left"`
		Middle      json.RawMessage   `json:"middle"`
		Right       json.RawMessage   `json:"right"`
		Expressions []json.RawMessage `json:"expressions"`
		Params      []json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWireFormat, err)
	}

	switch wire.Type {
	case "literal":
		var value Value
		if err := json.Unmarshal(wire.Value, &value); err != nil {
			return nil, err
		}
		return &Literal{Value: value}, nil
	case "variable":
		if wire.Name == "" {
			return nil, fmt.Errorf("%w: variable without name", ErrInvalidWireFormat)
		}
		return &Variable{Name: wire.Name}, nil
	case "unary":
		operator, err := unmarshalOperator(wire.Operator)
		if err != nil {
			return nil, err
		}
		right, err := unmarshalChild(wire.Right, "right")
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: operator, Right: right}, nil
	case "binary":
		operator, err := unmarshalOperator(wire.Operator)
		if err != nil {
			return nil, err
		}
		left, err := unmarshalChild(wire.Left, "left")
		if err != nil {
			return nil, err
		}
		right, err := unmarshalChild(wire.Right, "right")
		if err != nil {
			return nil, err
		}
		return &Binary{Operator: operator, Left: left, Right: right}, nil
	case "ternary":
		operator, err := unmarshalOperator(wire.Operator)
		if err != nil {
			return nil, err
		}
		left, err := unmarshalChild(wire.Left, "left")
		if err != nil {
			return nil, err
		}
		middle, err := unmarshalChild(wire.Middle, "middle")
		if err != nil {
			return nil, err
		}
		right, err := unmarshalChild(wire.Right, "right")
		if err != nil {
			return nil, err
		}
		return &Ternary{Operator: operator, Left: left, Middle: middle, Right: right}, nil
	case "array":
		expressions, err := unmarshalChildren(wire.Expressions)
		if err != nil {
			return nil, err
		}
		return &Array{Expressions: expressions}, nil
	case "call":
		if wire.Name == "" {
			return nil, fmt.Errorf("%w: call without name", ErrInvalidWireFormat)
		}
		params, err := unmarshalChildren(wire.Params)
		if err != nil {
			return nil, err
		}
		return &Call{Name: wire.Name, Params: params}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %q", ErrInvalidWireFormat, wire.Type)
	}
}

func unmarshalOperator(symbol string) (Operator, error) {
	operator, ok := operatorFromSymbol(symbol)
	if !ok {
		return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidWireFormat, symbol)
	}
	return operator, nil
}

func unmarshalChild(data json.RawMessage, field string) (Expression, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing %s child", ErrInvalidWireFormat, field)
	}
	return UnmarshalExpression(data)
}

func unmarshalChildren(list []json.RawMessage) ([]Expression, error) {
	expressions := make([]Expression, len(list))
	for i, data := range list {
		expr, err := UnmarshalExpression(data)
		if err != nil {
			return nil, err
		}
		expressions[i] = expr
	}
	return expressions, nil
}
