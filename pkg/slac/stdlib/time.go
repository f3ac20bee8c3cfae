package stdlib

import (
	"errors"
	"math"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// TimeFunctions returns the date and time functions. Datetimes are
// numbers: days since January 1, 1970 with the time of day as the
// fractional part, so date offsets are plain additions.
func TimeFunctions() []slac.Function {
	return []slac.Function{
		{Name: "date", Func: numeric(math.Trunc), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "time", Func: numeric(frac), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "date_to_string", Func: dateToString, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "time_to_string", Func: dateToString, Arity: slac.RequiredArity(2), Pure: true},
		{Name: "string_to_date", Func: stringToDate, Arity: slac.OptionalArity(1, 1), Pure: true},
		{Name: "string_to_time", Func: stringToTime, Arity: slac.OptionalArity(1, 1), Pure: true},
		{Name: "string_to_datetime", Func: stringToDateTime, Arity: slac.OptionalArity(1, 1), Pure: true},
		{Name: "date_from_rfc2822", Func: dateFromRFC2822, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "date_from_rfc3339", Func: dateFromRFC3339, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "date_to_rfc2822", Func: dateToRFC2822, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "date_to_rfc3339", Func: dateToRFC3339, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "day_of_week", Func: dayOfWeek, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "encode_date", Func: encodeDate, Arity: slac.RequiredArity(3), Pure: true},
		{Name: "encode_time", Func: encodeTime, Arity: slac.OptionalArity(3, 1), Pure: true},
		{Name: "inc_month", Func: incMonth, Arity: slac.OptionalArity(1, 1), Pure: true},
		{Name: "is_leap_year", Func: isLeapYear, Arity: slac.RequiredArity(1), Pure: true},
		{Name: "year", Func: datePart(func(t time.Time) int { return t.Year() }), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "month", Func: datePart(func(t time.Time) int { return int(t.Month()) }), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "day", Func: datePart(time.Time.Day), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "hour", Func: datePart(time.Time.Hour), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "minute", Func: datePart(time.Time.Minute), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "second", Func: datePart(time.Time.Second), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "millisecond", Func: datePart(func(t time.Time) int { return t.Nanosecond() / 1e6 }), Arity: slac.RequiredArity(1), Pure: true},
		{Name: "now", Func: now, Arity: slac.RequiredArity(0)},
		{Name: "today", Func: today, Arity: slac.RequiredArity(0)},
	}
}

const millisecondsPerDay = 24 * 60 * 60 * 1000

// toTime converts a datetime number into a UTC time.Time.
func toTime(value slac.Value) (time.Time, error) {
	if value.Kind() != slac.KindNumber {
		return time.Time{}, errWrongType()
	}
	// Round instead of truncating: the fractional day is a quotient of
	// integers and can land one ulp below the exact millisecond.
	milliseconds := int64(math.Round(value.Float() * millisecondsPerDay))
	return time.UnixMilli(milliseconds).UTC(), nil
}

// fromTime converts a time.Time back into a datetime number.
func fromTime(t time.Time) slac.Value {
	return slac.NewNumber(float64(t.UnixMilli()) / millisecondsPerDay)
}

// dateToString formats a datetime with a strftime format string, e.g.
// date_to_string('%Y-%m-%d', encode_date(2023, 12, 24)).
func dateToString(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	t, err := toTime(params[1])
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewString(strftime.Format(params[0].Text(), t)), nil
}

func parseWith(params []slac.Value, defaultFormat string) (slac.Value, error) {
	format, err := defaultString(params, 1, defaultFormat)
	if err != nil {
		return slac.Value{}, err
	}
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	t, err := strftime.Parse(format, params[0].Text())
	if err != nil {
		return slac.Value{}, err
	}
	return fromTime(t.UTC()), nil
}

// stringToDate parses a date string, by default as '%Y-%m-%d'.
func stringToDate(params []slac.Value) (slac.Value, error) {
	return parseWith(params, "%Y-%m-%d")
}

// stringToTime parses a time string, by default as '%H:%M:%S'.
func stringToTime(params []slac.Value) (slac.Value, error) {
	return parseWith(params, "%H:%M:%S")
}

// stringToDateTime parses a datetime string, by default as
// '%Y-%m-%d %H:%M:%S'.
func stringToDateTime(params []slac.Value) (slac.Value, error) {
	return parseWith(params, "%Y-%m-%d %H:%M:%S")
}

const rfc2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

// dateFromRFC2822 parses e.g. 'Fri, 21 Nov 1997 09:55:06 -0600',
// normalized to UTC.
func dateFromRFC2822(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	t, err := time.Parse(rfc2822, params[0].Text())
	if err != nil {
		return slac.Value{}, err
	}
	return fromTime(t.UTC()), nil
}

// dateFromRFC3339 parses e.g. '1997-11-21T09:55:06-06:00', normalized
// to UTC.
func dateFromRFC3339(params []slac.Value) (slac.Value, error) {
	if params[0].Kind() != slac.KindString {
		return slac.Value{}, errWrongType()
	}
	t, err := time.Parse(time.RFC3339, params[0].Text())
	if err != nil {
		return slac.Value{}, err
	}
	return fromTime(t.UTC()), nil
}

func dateToRFC2822(params []slac.Value) (slac.Value, error) {
	t, err := toTime(params[0])
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewString(t.Format(rfc2822)), nil
}

func dateToRFC3339(params []slac.Value) (slac.Value, error) {
	t, err := toTime(params[0])
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewString(t.Format(time.RFC3339)), nil
}

// dayOfWeek returns 0 for Monday through 6 for Sunday.
func dayOfWeek(params []slac.Value) (slac.Value, error) {
	t, err := toTime(params[0])
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewNumber(float64((int(t.Weekday()) + 6) % 7)), nil
}

// encodeDate builds a datetime number from year, month and day.
func encodeDate(params []slac.Value) (slac.Value, error) {
	for _, param := range params {
		if param.Kind() != slac.KindNumber {
			return slac.Value{}, errWrongType()
		}
	}
	year := int(params[0].Float())
	month := int(params[1].Float())
	day := int(params[2].Float())

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range fields instead of failing.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return slac.Value{}, errors.New("invalid date parameters")
	}
	return fromTime(t), nil
}

// encodeTime builds a fractional day from hour, minute, second and an
// optional millisecond.
func encodeTime(params []slac.Value) (slac.Value, error) {
	millisecond, err := defaultNumber(params, 3, 0)
	if err != nil {
		return slac.Value{}, err
	}
	for _, param := range params[:3] {
		if param.Kind() != slac.KindNumber {
			return slac.Value{}, errWrongType()
		}
	}
	hour := int(params[0].Float())
	minute := int(params[1].Float())
	second := int(params[2].Float())
	milli := int(millisecond)

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 ||
		second < 0 || second > 59 || milli < 0 || milli > 999 {
		return slac.Value{}, errors.New("invalid time parameters")
	}
	total := ((hour*60+minute)*60+second)*1000 + milli
	return slac.NewNumber(float64(total) / millisecondsPerDay), nil
}

// incMonth shifts a datetime by whole months (negative to go back),
// clamping the day to the target month's length like Delphi's
// IncMonth.
func incMonth(params []slac.Value) (slac.Value, error) {
	increment, err := defaultNumber(params, 1, 1)
	if err != nil {
		return slac.Value{}, err
	}
	t, err := toTime(params[0])
	if err != nil {
		return slac.Value{}, err
	}

	months := int(t.Month()) - 1 + int(increment)
	year := t.Year() + months/12
	months %= 12
	if months < 0 {
		months += 12
		year--
	}
	month := time.Month(months + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	shifted := time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return fromTime(shifted), nil
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isLeapYear reports whether the year of a datetime is a leap year.
func isLeapYear(params []slac.Value) (slac.Value, error) {
	t, err := toTime(params[0])
	if err != nil {
		return slac.Value{}, err
	}
	year := t.Year()
	leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
	return slac.NewBoolean(leap), nil
}

func datePart(part func(time.Time) int) slac.NativeFunc {
	return func(params []slac.Value) (slac.Value, error) {
		t, err := toTime(params[0])
		if err != nil {
			return slac.Value{}, err
		}
		return slac.NewNumber(float64(part(t))), nil
	}
}

// now returns the current datetime number.
func now([]slac.Value) (slac.Value, error) {
	return fromTime(time.Now()), nil
}

// today returns the current date with the time of day stripped.
func today([]slac.Value) (slac.Value, error) {
	value, err := now(nil)
	if err != nil {
		return slac.Value{}, err
	}
	return slac.NewNumber(math.Trunc(value.Float())), nil
}
