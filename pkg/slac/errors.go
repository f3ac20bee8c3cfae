package slac

import (
	"errors"
	"fmt"
)

// Compile-time errors reported by Tokenize and Parse.
var (
	// ErrEmptyExpression is returned when the source contains no tokens.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrInvalidCharacter is returned when the scanner hits a code point
	// that cannot start any token.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidNumber is returned when a number literal does not parse.
	ErrInvalidNumber = errors.New("invalid number literal")

	// ErrUnterminatedString is returned when a string literal is missing
	// its closing quote.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrUnexpectedToken is returned when the parser finds a token that
	// fits no grammar rule at the current position.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Runtime errors reported by Execute.
var (
	// ErrUnknownFunction is returned when a call names a function the
	// environment does not provide.
	ErrUnknownFunction = errors.New("function not found")

	// ErrParamCount is returned when a call's parameter count falls
	// outside the function's arity.
	ErrParamCount = errors.New("wrong parameter count")

	// ErrTypeMismatch is returned when an operator or function is applied
	// to operands of the wrong type.
	ErrTypeMismatch = errors.New("wrong parameter type")

	// ErrIndexOutOfBounds is returned when an index lies outside a string
	// or array.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// SyntaxError describes a compile-time failure at a token position.
type SyntaxError struct {
	// Position is the index of the offending token or code point.
	Position int
	// Detail describes what was being parsed.
	Detail string
	// Err is the underlying sentinel error.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at position %d", e.Err, e.Position)
	}
	return fmt.Sprintf("%v at position %d: %s", e.Err, e.Position, e.Detail)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// InvalidOperatorError is returned when an operator is applied to operand
// types it is not defined for, e.g. "true + 1".
type InvalidOperatorError struct {
	Operator Operator
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("operator %q is not defined for the given operands", e.Operator)
}

func (e *InvalidOperatorError) Unwrap() error { return ErrTypeMismatch }

// UnknownFunctionError is returned when an expression calls a function
// the environment does not know.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("function %q not found", e.Name)
}

func (e *UnknownFunctionError) Unwrap() error { return ErrUnknownFunction }

// ParamCountError is returned when a call supplies fewer or more
// parameters than the function accepts.
type ParamCountError struct {
	Function string
	Arity    Arity
	Found    int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("function %q expects %s parameters, found %d",
		e.Function, e.Arity, e.Found)
}

func (e *ParamCountError) Unwrap() error { return ErrParamCount }

// NativeFunctionError wraps an error returned by a native function so the
// failing function can be identified.
type NativeFunctionError struct {
	Function string
	Err      error
}

func (e *NativeFunctionError) Error() string {
	return fmt.Sprintf("function %q: %v", e.Function, e.Err)
}

func (e *NativeFunctionError) Unwrap() error { return e.Err }

// MissingVariableError is reported by CheckVariablesAndFunctions for a
// variable the environment does not provide.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("variable %q not found", e.Name)
}

// MissingFunctionError is reported by CheckVariablesAndFunctions for a
// function the environment does not provide.
type MissingFunctionError struct {
	Name string
}

func (e *MissingFunctionError) Error() string {
	return fmt.Sprintf("function %q not found", e.Name)
}

func (e *MissingFunctionError) Unwrap() error { return ErrUnknownFunction }

// NonBooleanResultError is reported by CheckBooleanResult when the top
// level node of an expression cannot produce a Boolean.
type NonBooleanResultError struct {
	Expression Expression
}

func (e *NonBooleanResultError) Error() string {
	return "expression does not produce a boolean result"
}
