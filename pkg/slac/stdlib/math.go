package stdlib

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// MathFunctions returns the numeric functions.
func MathFunctions() []slac.Function {
	return []slac.Function{
		{Name: "abs", Func: numeric(math.Abs), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "arc_tan", Func: numeric(math.Atan), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "cos", Func: numeric(math.Cos), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "exp", Func: numeric(math.Exp), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "frac", Func: numeric(frac), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "ln", Func: numeric(math.Log), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "round", Func: numeric(math.Round), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "sin", Func: numeric(math.Sin), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "sqrt", Func: numeric(math.Sqrt), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "trunc", Func: numeric(math.Trunc), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "int_to_hex", Func: intToHex, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "even", Func: even, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "odd", Func: odd, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "pow", Func: pow, Arity: slac.OptionalArity(1, 1), Pure: true},
		{Name: "random", Func: random, Arity: slac.OptionalArity(0, 1)},
		{Name: "choice", Func: choice, Arity: slac.VariadicArity()},
	}
}

// Constants returns the named constants registered alongside the math
// functions.
func Constants() map[string]slac.Value {
	return map[string]slac.Value{
		"pi":  slac.NewNumber(math.Pi),
		"e":   slac.NewNumber(math.E),
		"tau": slac.NewNumber(2 * math.Pi),
	}
}

// numeric lifts a float64 function into a single-parameter native
// function.
func numeric(f func(float64) float64) slac.NativeFunc {
	return func(params []slac.Value) (slac.Value, error) {
		if params[0].Kind() != slac.KindNumber {
			return slac.Value{}, errWrongType()
		}
		return slac.NewNumber(f(params[0].Float())), nil
	}
}

func frac(value float64) float64 { return value - math.Trunc(value) }

// intToHex renders the integral part of a number as uppercase hex.
func intToHex(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindNumber {
		return slac.Value{}, errWrongType()
	}
	return slac.NewString(fmt.Sprintf("%X", int64(math.Trunc(params[0].Float())))), nil
}

func even(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindNumber {
		return slac.Value{}, errWrongType()
	}
	return slac.NewBoolean(int64(math.Abs(math.Trunc(params[0].Float())))%2 == 0), nil
}

func odd(params []slac.Value) (slac.Value, error) {
	value, err := even(params)
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewBoolean(!value.Bool()), nil
}

// pow raises the base to an exponent, squaring by default.
func pow(params []slac.Value) (slac.Value, error) {
	exponent, err := defaultNumber(params, 1, 2)
	if err != nil {
		return slac.Value{}, err
	}
	if params[0].Kind() != slac.KindNumber {
		return slac.Value{}, errWrongType()
	}
	return slac.NewNumber(math.Pow(params[0].Float(), exponent)), nil
}

// random returns a random number in [0, range), defaulting to a range
// of 1.
func random(params []slac.Value) (slac.Value, error) {
	upper, err := defaultNumber(params, 0, 1)
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewNumber(rand.Float64() * upper), nil
}

// choice returns one of the parameters (or one element of a sole array
// parameter) at random.
func choice(params []slac.Value) (slac.Value, error) {
	choices := smartSlice(params)
	if len(choices) == 0 {
		return slac.Value{}, errWrongCount(1)
	}
	return choices[rand.IntN(len(choices))], nil
}
