package slac

import (
	"fmt"
	"slices"
	"strings"
)

// Environment supplies the variables and native functions an expression
// can reference. Lookups are case-insensitive. Implementations must be
// safe for concurrent reads if trees are evaluated from multiple
// goroutines.
type Environment interface {
	// Variable returns the value bound to name, if any.
	Variable(name string) (Value, bool)
	// Function returns the function registered under name, if any.
	Function(name string) (Function, bool)
}

// NativeFunc is the signature of a host function callable from an
// expression.
type NativeFunc func(params []Value) (Value, error)

// Arity describes how many parameters a function accepts: a required
// count plus an optional count, or any number at all (variadic).
type Arity struct {
	required int
	optional int
	variadic bool
}

// RequiredArity accepts exactly n parameters.
func RequiredArity(n int) Arity { return Arity{required: n} }

// OptionalArity accepts between required and required+optional
// parameters.
func OptionalArity(required, optional int) Arity {
	return Arity{required: required, optional: optional}
}

// VariadicArity accepts any number of parameters.
func VariadicArity() Arity { return Arity{variadic: true} }

// Accepts reports whether a call with count parameters satisfies the
// arity.
func (a Arity) Accepts(count int) bool {
	if a.variadic {
		return true
	}
	return count >= a.required && count <= a.required+a.optional
}

// Min returns the smallest accepted parameter count.
func (a Arity) Min() int {
	if a.variadic {
		return 0
	}
	return a.required
}

func (a Arity) String() string {
	switch {
	case a.variadic:
		return "any number of"
	case a.optional == 0:
		return fmt.Sprintf("%d", a.required)
	default:
		return fmt.Sprintf("%d..%d", a.required, a.required+a.optional)
	}
}

// Function is a named native function with its arity. Pure functions
// always produce the same result for the same parameters and may be
// evaluated at optimization time.
type Function struct {
	Name  string
	Func  NativeFunc
	Arity Arity
	Pure  bool
}

// StaticEnvironment is a map-backed Environment. Registration is
// last-write-wins and lookups are case-insensitive. It is safe for
// concurrent reads once populated, but not for concurrent mutation.
type StaticEnvironment struct {
	variables map[string]Value
	functions map[string]Function
}

var _ Environment = (*StaticEnvironment)(nil)

// NewStaticEnvironment returns an empty environment.
func NewStaticEnvironment() *StaticEnvironment {
	return &StaticEnvironment{
		variables: make(map[string]Value),
		functions: make(map[string]Function),
	}
}

// Variable implements Environment.
func (e *StaticEnvironment) Variable(name string) (Value, bool) {
	value, ok := e.variables[strings.ToLower(name)]
	return value, ok
}

// Function implements Environment.
func (e *StaticEnvironment) Function(name string) (Function, bool) {
	function, ok := e.functions[strings.ToLower(name)]
	return function, ok
}

// AddVariable binds value to name, replacing any previous binding.
func (e *StaticEnvironment) AddVariable(name string, value Value) {
	e.variables[strings.ToLower(name)] = value
}

// AddFunction registers fn under its name, replacing any previous
// registration.
func (e *StaticEnvironment) AddFunction(fn Function) {
	e.functions[strings.ToLower(fn.Name)] = fn
}

// AddFunctions registers a batch of functions.
func (e *StaticEnvironment) AddFunctions(fns []Function) {
	for _, fn := range fns {
		e.AddFunction(fn)
	}
}

// Variables returns the bound variable names sorted alphabetically.
func (e *StaticEnvironment) Variables() []string {
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Functions returns the registered functions sorted by name.
func (e *StaticEnvironment) Functions() []Function {
	list := make([]Function, 0, len(e.functions))
	for _, fn := range e.functions {
		list = append(list, fn)
	}
	slices.SortFunc(list, func(a, b Function) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return list
}
