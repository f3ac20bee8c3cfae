package stdlib

import (
	"errors"
	"strings"
	"unicode"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// StringFunctions returns the text manipulation functions.
func StringFunctions() []slac.Function {
	return []slac.Function{
		{Name: "chr", Func: chr, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "ord", Func: ord, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "lowercase", Func: lowercase, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "uppercase", Func: uppercase, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "same_text", Func: sameText, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "split", Func: split, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "split_csv", Func: splitCSV, Arity: slac.OptionalArity(1, 1), Pure: true},
		{Name: "trim", Func: trimmer(strings.TrimSpace), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "trim_left", Func: trimmer(trimLeft), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "trim_right", Func: trimmer(trimRight), Arity: slac.RequiredArity(1), Pure: true},
	}
}

// chr converts an ASCII ordinal into a one-character string.
func chr(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindNumber {
		return slac.Value{}, errWrongType()
	}
	ordinal := params[0].Float()
	if ordinal < 0 || ordinal >= 127 {
		return slac.Value{}, errors.New("number is out of ASCII range")
	}
	return slac.NewString(string(rune(int(ordinal)))), nil
}

// ord converts a one-character ASCII string into its ordinal.
func ord(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	runes := []rune(params[0].Text())
	if len(runes) != 1 {
		return slac.Value{}, errors.New("string is too long")
	}
	if runes[0] > unicode.MaxASCII {
		return slac.Value{}, errors.New("character is out of ASCII range")
	}
	return slac.NewNumber(float64(runes[0])), nil
}

func lowercase(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	return slac.NewString(strings.ToLower(params[0].Text())), nil
}

func uppercase(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	return slac.NewString(strings.ToUpper(params[0].Text())), nil
}

// sameText compares two strings ignoring case.
func sameText(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString || params[1].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	return slac.NewBoolean(strings.EqualFold(params[0].Text(), params[1].Text())), nil
}

// split cuts a string at every separator into an array of strings.
func split(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString || params[1].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	parts := strings.Split(params[0].Text(), params[1].Text())
	values := make([]slac.Value, len(parts))
	for i, part := range parts {
		values[i] = slac.NewString(part)
	}
	return slac.NewArray(values...), nil
}

// splitCSV splits a delimited line into fields, honoring double-quoted
// sections. The separator defaults to ';'.
func splitCSV(params []slac.Value) (slac.Value, error) {
	separator, err := defaultString(params, 1, ";")
	if err != nil {
		return slac.Value{}, err
	}
	sep := ';'
	if runes := []rune(separator); len(runes) == 1 {
		sep = runes[0]
	}
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}

	var fields []slac.Value
	var field strings.Builder
	inQuotes := false
	for _, c := range params[0].Text() {
		switch {
		case c == sep && !inQuotes:
			fields = append(fields, slac.NewString(field.String()))
			field.Reset()
		case c == '"':
			inQuotes = !inQuotes
		default:
			field.WriteRune(c)
		}
	}
	fields = append(fields, slac.NewString(field.String()))

	return slac.NewArray(fields...), nil
}

func trimmer(f func(string) string) slac.NativeFunc {
	return func(params []slac.Value) (slac.Value, error) {
		if params[0].Kind() != slac.KindString {
			return slac.Value{}, errWrongType()
		}
		return slac.NewString(f(params[0].Text())), nil
	}
}

func trimLeft(s string) string  { return strings.TrimLeftFunc(s, unicode.IsSpace) }
func trimRight(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }
