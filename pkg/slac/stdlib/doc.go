/*
Package stdlib provides the optional standard function library for slac
expressions: conversions and array helpers, math, string manipulation,
date/time arithmetic on fractional day numbers, and regular expressions.

The library is plain data, a list of slac.Function values, and is
wired into an environment explicitly:

	env := slac.NewStaticEnvironment()
	stdlib.ExtendEnvironment(env)

	result, err := slac.Execute(env, expr)

Functions that read strings by position (at, copy, insert, find) use
1-based indexes on strings and 0-based indexes on arrays, following the
Delphi convention the library descends from.

Date and time values are plain numbers: the integral part counts days
since January 1, 1970, the fraction is the time of day (0.25 = 06:00).
Adding 7 to a datetime moves it a week; encode_date and encode_time
build such numbers, year/month/day/... take them apart.
*/
package stdlib
