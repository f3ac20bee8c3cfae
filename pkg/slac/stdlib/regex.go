package stdlib

import (
	"regexp"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// RegexFunctions returns the regular expression functions. Patterns use
// the RE2 syntax of the regexp package.
func RegexFunctions() []slac.Function {
	return []slac.Function{
		{Name: "re_is_match", Func: reIsMatch, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "re_find", Func: reFind, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "re_capture", Func: reCapture, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "re_replace", Func: reReplace, Arity: slac.OptionalArity(2, 2), Pure: true},
	}
}

func compilePattern(params []slac.Value) (*regexp.Regexp, string, error) {
	if params[0].Kind() != slac.KindString || params[1].Kind() != slac.KindString {
		return nil, "", errWrongType()
	}
	re, err := regexp.Compile(params[1].Text())
	if err != nil {
		return nil, "", err
	}
	return re, params[0].Text(), nil
}

// reIsMatch reports whether the pattern matches anywhere in the
// haystack.
func reIsMatch(params []slac.Value) (slac.Value, error) {
	re, haystack, err := compilePattern(params)
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewBoolean(re.MatchString(haystack)), nil
}

// reFind returns all non-overlapping matches as an array of strings.
func reFind(params []slac.Value) (slac.Value, error) {
	re, haystack, err := compilePattern(params)
	if err != nil {
		return slac.Value{}, err
	}
	matches := re.FindAllString(haystack, -1)
	values := make([]slac.Value, len(matches))
	for i, match := range matches {
		values[i] = slac.NewString(match)
	}
	return slac.NewArray(values...), nil
}

// reCapture returns the first match and its capture groups: index 0 is
// the full match, 1..n the groups. Without a match every entry is the
// empty string.
func reCapture(params []slac.Value) (slac.Value, error) {
	re, haystack, err := compilePattern(params)
	if err != nil {
		return slac.Value{}, err
	}
	groups := make([]slac.Value, re.NumSubexp()+1)
	match := re.FindStringSubmatch(haystack)
	for i := range groups {
		if match != nil {
			groups[i] = slac.NewString(match[i])
		} else {
			groups[i] = slac.NewString("")
		}
	}
	return slac.NewArray(groups...), nil
}

// reReplace substitutes pattern matches with a replacement (which may
// reference capture groups as $1, $name). A fourth parameter limits
// the number of replacements; 0 replaces all.
func reReplace(params []slac.Value) (slac.Value, error) {
	replacement, err := defaultString(params, 2, "")
	if err != nil {
		return slac.Value{}, err
	}
	limit, err := defaultNumber(params, 3, 0)
	if err != nil {
		return slac.Value{}, err
	}
	re, haystack, err := compilePattern(params)
	if err != nil {
		return slac.Value{}, err
	}

	if limit <= 0 {
		return slac.NewString(re.ReplaceAllString(haystack, replacement)), nil
	}

	out := make([]byte, 0, len(haystack))
	last := 0
	for _, match := range re.FindAllStringSubmatchIndex(haystack, int(limit)) {
		out = append(out, haystack[last:match[0]]...)
		out = re.ExpandString(out, replacement, haystack, match)
		last = match[1]
	}
	out = append(out, haystack[last:]...)
	return slac.NewString(string(out)), nil
}
