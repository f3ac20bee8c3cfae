package stdlib

import (
	"errors"
	"fmt"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// StringOffset is the base of string indexes: at('abc', 1) is 'a'.
// Array indexes are always 0-based.
const StringOffset = 1

// ErrIndexNegative is returned when a position parameter is negative.
var ErrIndexNegative = errors.New("index must not be negative")

// Builtins returns all standard library functions.
func Builtins() []slac.Function {
	return concat(
		CommonFunctions(),
		MathFunctions(),
		StringFunctions(),
		TimeFunctions(),
		RegexFunctions(),
	)
}

// ExtendEnvironment registers all standard library functions and the
// constants pi, e and tau.
func ExtendEnvironment(env *slac.StaticEnvironment) {
	env.AddFunctions(Builtins())
	for name, value := range Constants() {
		env.AddVariable(name, value)
	}
}

func concat(lists ...[]slac.Function) []slac.Function {
	var all []slac.Function
	for _, list := range lists {
		all = append(all, list...)
	}
	return all
}

func errWrongType() error { return slac.ErrTypeMismatch }

func errWrongCount(expected int) error {
	return fmt.Errorf("%w: %d expected", slac.ErrParamCount, expected)
}

func errOutOfBounds(index int) error {
	return fmt.Errorf("%w: %d", slac.ErrIndexOutOfBounds, index)
}

// arrayIndex converts a number parameter into a 0-based array index.
func arrayIndex(value slac.Value) (int, error) {
	if value.Kind() != slac.KindNumber {
		return 0, errWrongType()
	}
	index := int(value.Float())
	if index < 0 {
		return 0, ErrIndexNegative
	}
	return index, nil
}

// stringIndex converts a number parameter into a 0-based rune index,
// shifting it down by StringOffset.
func stringIndex(value slac.Value) (int, error) {
	index, err := arrayIndex(value)
	if err != nil {
		return 0, err
	}
	return index - StringOffset, nil
}

// defaultString returns the string parameter at index, or the default
// when the parameter is absent.
func defaultString(params []slac.Value, index int, def string) (string, error) {
	if index >= len(params) {
		return def, nil
	}
	if params[index].Kind() != slac.KindString {
		return "", errWrongType()
	}
	return params[index].Text(), nil
}

// defaultNumber returns the number parameter at index, or the default
// when the parameter is absent.
func defaultNumber(params []slac.Value, index int, def float64) (float64, error) {
	if index >= len(params) {
		return def, nil
	}
	if params[index].Kind() != slac.KindNumber {
		return 0, errWrongType()
	}
	return params[index].Float(), nil
}

// smartSlice supports the "variadic or single array" calling
// convention: a sole array parameter contributes its elements, any
// other parameter list is taken as-is.
func smartSlice(params []slac.Value) []slac.Value {
	if len(params) == 1 && params[0].Kind() == slac.KindArray {
		return params[0].Items()
	}
	return params
}
