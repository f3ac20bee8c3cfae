package stdlib

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// CommonFunctions returns the conversion, inspection and array helper
// functions.
func CommonFunctions() []slac.Function {
	return []slac.Function{
		{Name: "all", Func: all, Arity: slac.VariadicArity(), Pure: true},
		{Name: "any", Func: anyOf, Arity: slac.VariadicArity(), Pure: true},
		{Name: "at", Func: at, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "between", Func: between, Arity: slac.RequiredArity(3), Pure: true},
		{Name: "bool", Func: toBool, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "contains", Func: contains, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "compare", Func: compare, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "copy", Func: copySlice, Arity: slac.RequiredArity(3), Pure: true},
		{Name: "empty", Func: empty, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "find", Func: find, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "float", Func: toFloat, Arity: slac.RequiredArity(1), Pure: true},
		{Name: slac.TernaryFunctionName, Func: ifThen, Arity: slac.OptionalArity(2, 1), Pure: true},
		{Name: "insert", Func: insert, Arity: slac.RequiredArity(3), Pure: true},
		{Name: "int", Func: toInt, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "length", Func: length, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "max", Func: maxOf, Arity: slac.VariadicArity(), Pure: true},
		{Name: "min", Func: minOf, Arity: slac.VariadicArity(), Pure: true},
		{Name: "replace", Func: replace, Arity: slac.OptionalArity(2, 1), Pure: true},
		// replace without a third parameter drops the matches, which is
		// exactly what remove does.
		{Name: "remove", Func: replace, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "reverse", Func: reverse, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "str", Func: toStr, Arity: slac.RequiredArity(1), Pure: true},
	}
}

var valueTrue = slac.NewBoolean(true)

// all reports whether every parameter (or every element of a sole
// array parameter) is true.
func all(params []slac.Value) (slac.Value, error) {
	for _, value := range smartSlice(params) {
		if !value.Equal(valueTrue) {
			return slac.NewBoolean(false), nil
		}
	}
	return slac.NewBoolean(true), nil
}

// anyOf reports whether at least one parameter (or element of a sole
// array parameter) is true.
func anyOf(params []slac.Value) (slac.Value, error) {
	for _, value := range smartSlice(params) {
		if value.Equal(valueTrue) {
			return slac.NewBoolean(true), nil
		}
	}
	return slac.NewBoolean(false), nil
}

// at returns the element at an index: 1-based characters for strings,
// 0-based elements for arrays.
func at(params []slac.Value) (slac.Value, error) {
	switch params[0].Kind() {
	case slac.KindString:
		index, err := stringIndex(params[1])
		if err != nil {
			return slac.Value{}, err
		}
		runes := []rune(params[0].Text())
		if index < 0 || index >= len(runes) {
			return slac.Value{}, errOutOfBounds(index)
		}
		return slac.NewString(string(runes[index])), nil
	case slac.KindArray:
		index, err := arrayIndex(params[1])
		if err != nil {
			return slac.Value{}, err
		}
		items := params[0].Items()
		if index >= len(items) {
			return slac.Value{}, errOutOfBounds(index)
		}
		return items[index], nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// between reports whether value lies in the inclusive range
// [lower, upper]. Incomparable values are never in range.
func between(params []slac.Value) (slac.Value, error) {
	value, lower, upper := params[0], params[1], params[2]

	low, okLow := value.Compare(lower)
	high, okHigh := value.Compare(upper)
	return slac.NewBoolean(okLow && low >= 0 && okHigh && high <= 0), nil
}

// toBool converts any value to a boolean: numbers equal to 1, the
// string 'true' (case-insensitive) and non-empty arrays are true.
func toBool(params []slac.Value) (slac.Value, error) {
	value := params[0]
	switch value.Kind() {
	case slac.KindBoolean:
		return value, nil
	case slac.KindNumber:
		return slac.NewBoolean(value.Float() == 1), nil
	case slac.KindString:
		return slac.NewBoolean(strings.EqualFold(value.Text(), "true")), nil
	case slac.KindArray:
		return slac.NewBoolean(len(value.Items()) > 0), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// contains searches a substring in a string or a value in an array.
func contains(params []slac.Value) (slac.Value, error) {
	haystack, needle := params[0], params[1]
	switch {
	case haystack.Kind() == slac.KindString && needle.Kind() == slac.KindString:
		return slac.NewBoolean(strings.Contains(haystack.Text(), needle.Text())), nil
	case haystack.Kind() == slac.KindArray:
		for _, value := range haystack.Items() {
			if value.Equal(needle) {
				return slac.NewBoolean(true), nil
			}
		}
		return slac.NewBoolean(false), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// compare orders two values and returns -1, 0 or 1.
func compare(params []slac.Value) (slac.Value, error) {
	c, ok := params[0].Compare(params[1])
	if !ok {
		return slac.Value{}, errors.New("values not comparable")
	}
	return slac.NewNumber(float64(c)), nil
}

// copySlice copies count characters or elements starting at an index:
// 1-based for strings, 0-based for arrays.
func copySlice(params []slac.Value) (slac.Value, error) {
	count, err := arrayIndex(params[2])
	if err != nil {
		return slac.Value{}, err
	}
	switch params[0].Kind() {
	case slac.KindString:
		start, err := stringIndex(params[1])
		if err != nil {
			return slac.Value{}, err
		}
		runes := []rune(params[0].Text())
		return slac.NewString(string(slice(runes, start, count))), nil
	case slac.KindArray:
		start, err := arrayIndex(params[1])
		if err != nil {
			return slac.Value{}, err
		}
		return slac.NewArray(slice(params[0].Items(), start, count)...), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// slice takes count elements starting at start, clamping both ends.
func slice[T any](values []T, start, count int) []T {
	if start < 0 {
		start = 0
	}
	if start > len(values) {
		start = len(values)
	}
	end := start + count
	if end > len(values) {
		end = len(values)
	}
	out := make([]T, end-start)
	copy(out, values[start:end])
	return out
}

// empty reports whether the value is the empty value of its kind.
func empty(params []slac.Value) (slac.Value, error) {
	return slac.NewBoolean(params[0].IsEmpty()), nil
}

// find returns the position of a substring (1-based, 0 if absent) or
// the index of an array element (0-based, -1 if absent).
func find(params []slac.Value) (slac.Value, error) {
	haystack, needle := params[0], params[1]
	switch {
	case haystack.Kind() == slac.KindString && needle.Kind() == slac.KindString:
		index := strings.Index(haystack.Text(), needle.Text())
		if index < 0 {
			return slac.NewNumber(-1 + StringOffset), nil
		}
		runes := len([]rune(haystack.Text()[:index]))
		return slac.NewNumber(float64(runes + StringOffset)), nil
	case haystack.Kind() == slac.KindArray:
		for i, value := range haystack.Items() {
			if value.Equal(needle) {
				return slac.NewNumber(float64(i)), nil
			}
		}
		return slac.NewNumber(-1), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// toFloat converts a boolean, string or number to a number.
func toFloat(params []slac.Value) (slac.Value, error) {
	value := params[0]
	switch value.Kind() {
	case slac.KindNumber:
		return value, nil
	case slac.KindBoolean:
		if value.Bool() {
			return slac.NewNumber(1), nil
		}
		return slac.NewNumber(0), nil
	case slac.KindString:
		f, err := strconv.ParseFloat(value.Text(), 64)
		if err != nil {
			return slac.Value{}, err
		}
		return slac.NewNumber(f), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// ifThen is the eager function form of the ternary idiom: it returns
// the second parameter when the condition is true, otherwise the third
// parameter, or the empty value of the second when only two are given.
// The optimizer rewrites three-parameter calls into the lazy form.
func ifThen(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindBoolean {
		return slac.Value{}, errWrongType()
	}
	if params[0].Bool() {
		return params[1], nil
	}
	if len(params) > 2 {
		return params[2], nil
	}
	return params[1].Empty(), nil
}

// insert places a string into a string or a value into an array at an
// index: 1-based for strings, 0-based for arrays.
func insert(params []slac.Value) (slac.Value, error) {
	switch params[0].Kind() {
	case slac.KindString:
		if params[1].Kind() != slac.KindString {
			return slac.Value{}, errWrongType()
		}
		index, err := stringIndex(params[2])
		if err != nil {
			return slac.Value{}, err
		}
		runes := []rune(params[0].Text())
		if index < 0 || index > len(runes) {
			return slac.Value{}, errOutOfBounds(index)
		}
		return slac.NewString(string(runes[:index]) + params[1].Text() + string(runes[index:])), nil
	case slac.KindArray:
		index, err := arrayIndex(params[2])
		if err != nil {
			return slac.Value{}, err
		}
		items := params[0].Items()
		if index > len(items) {
			return slac.Value{}, errOutOfBounds(index)
		}
		out := make([]slac.Value, 0, len(items)+1)
		out = append(out, items[:index]...)
		out = append(out, params[1])
		out = append(out, items[index:]...)
		return slac.NewArray(out...), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// toInt converts like float and truncates toward zero.
func toInt(params []slac.Value) (slac.Value, error) {
	value, err := toFloat(params)
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewNumber(math.Trunc(value.Float())), nil
}

// length returns the character count of a string or the element count
// of an array; 0 for every other kind.
func length(params []slac.Value) (slac.Value, error) {
	switch params[0].Kind() {
	case slac.KindString:
		return slac.NewNumber(float64(len([]rune(params[0].Text())))), nil
	case slac.KindArray:
		return slac.NewNumber(float64(len(params[0].Items()))), nil
	default:
		return slac.NewNumber(0), nil
	}
}

// maxOf returns the largest parameter (or element of a sole array
// parameter).
func maxOf(params []slac.Value) (slac.Value, error) {
	return pickBy(params, func(c int) bool { return c > 0 })
}

// minOf returns the smallest parameter (or element of a sole array
// parameter).
func minOf(params []slac.Value) (slac.Value, error) {
	return pickBy(params, func(c int) bool { return c < 0 })
}

func pickBy(params []slac.Value, better func(int) bool) (slac.Value, error) {
	values := smartSlice(params)
	if len(values) == 0 {
		return slac.Value{}, errWrongCount(1)
	}
	best := values[0]
	for _, value := range values[1:] {
		if c, ok := value.Compare(best); ok && better(c) {
			best = value
		}
	}
	return best, nil
}

// replace substitutes matches of the second parameter with the third.
// Without a third parameter the matches are removed. Strings replace
// substrings, arrays replace whole elements.
func replace(params []slac.Value) (slac.Value, error) {
	switch params[0].Kind() {
	case slac.KindString:
		if params[1].Kind() != slac.KindString {
			return slac.Value{}, errWrongType()
		}
		to, err := defaultString(params, 2, "")
		if err != nil {
			return slac.Value{}, err
		}
		return slac.NewString(strings.ReplaceAll(params[0].Text(), params[1].Text(), to)), nil
	case slac.KindArray:
		from := params[1]
		out := make([]slac.Value, 0, len(params[0].Items()))
		for _, value := range params[0].Items() {
			if !value.Equal(from) {
				out = append(out, value)
				continue
			}
			if len(params) > 2 {
				out = append(out, params[2])
			}
		}
		return slac.NewArray(out...), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// reverse flips the characters of a string or the elements of an
// array.
func reverse(params []slac.Value) (slac.Value, error) {
	switch params[0].Kind() {
	case slac.KindString:
		runes := []rune(params[0].Text())
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return slac.NewString(string(runes)), nil
	case slac.KindArray:
		items := params[0].Items()
		out := make([]slac.Value, len(items))
		for i, value := range items {
			out[len(items)-1-i] = value
		}
		return slac.NewArray(out...), nil
	default:
		return slac.Value{}, errWrongType()
	}
}

// toStr renders any value as a string.
func toStr(params []slac.Value) (slac.Value, error) {
	return slac.NewString(params[0].String()), nil
}
