package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

func TestEncodeDate(t *testing.T) {
	// Day zero of the datetime model.
	got, err := eval(t, "encode_date(1970, 1, 1)")
	require.NoError(t, err)
	assert.Equal(t, num(0), got)

	got, err = eval(t, "encode_date(1970, 1, 2)")
	require.NoError(t, err)
	assert.Equal(t, num(1), got)

	got, err = eval(t, "encode_date(1970, 2, 1)")
	require.NoError(t, err)
	assert.Equal(t, num(31), got)

	_, err = eval(t, "encode_date(2023, 13, 1)")
	assert.Error(t, err)

	_, err = eval(t, "encode_date(2023, 2, 30)")
	assert.Error(t, err)
}

func TestEncodeTime(t *testing.T) {
	got, err := eval(t, "encode_time(12, 0, 0)")
	require.NoError(t, err)
	assert.Equal(t, num(0.5), got)

	got, err = eval(t, "encode_time(6, 0, 0)")
	require.NoError(t, err)
	assert.Equal(t, num(0.25), got)

	got, err = eval(t, "encode_time(0, 0, 0, 500) * 2")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/86400, got.Float(), 1e-12)

	_, err = eval(t, "encode_time(24, 0, 0)")
	assert.Error(t, err)

	_, err = eval(t, "encode_time(1, 60, 0)")
	assert.Error(t, err)
}

func TestDateParts(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"year(encode_date(2023, 12, 24))", 2023},
		{"month(encode_date(2023, 12, 24))", 12},
		{"day(encode_date(2023, 12, 24))", 24},
		{"hour(encode_time(13, 34, 45))", 13},
		{"minute(encode_time(13, 34, 45))", 34},
		{"second(encode_time(13, 34, 45))", 45},
		{"millisecond(encode_time(13, 34, 45, 123))", 123},
		{"date(encode_date(2023, 12, 24) + encode_time(13, 34, 45))", 19715},
		{"time(encode_time(12, 0, 0))", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := eval(t, tt.source)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Float(), 1e-9)
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	// 1970-01-01 was a Thursday; Monday is 0.
	got, err := eval(t, "day_of_week(encode_date(1970, 1, 1))")
	require.NoError(t, err)
	assert.Equal(t, num(3), got)

	got, err = eval(t, "day_of_week(encode_date(2023, 12, 25))")
	require.NoError(t, err)
	assert.Equal(t, num(0), got)

	got, err = eval(t, "day_of_week(encode_date(2023, 12, 24))")
	require.NoError(t, err)
	assert.Equal(t, num(6), got)
}

func TestFormatting(t *testing.T) {
	got, err := eval(t, "date_to_string('%Y-%m-%d', encode_date(2023, 12, 24))")
	require.NoError(t, err)
	assert.Equal(t, str("2023-12-24"), got)

	got, err = eval(t, "time_to_string('%H:%M:%S', encode_time(13, 34, 45))")
	require.NoError(t, err)
	assert.Equal(t, str("13:34:45"), got)
}

func TestParsing(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"default date format", "string_to_date('2023-12-24')", "encode_date(2023, 12, 24)"},
		{"explicit date format", "string_to_date('24.12.2023', '%d.%m.%Y')", "encode_date(2023, 12, 24)"},
		{"default time format", "string_to_time('13:34:45')", "encode_time(13, 34, 45)"},
		{"default datetime format", "string_to_datetime('2023-12-24 13:34:45')", "encode_date(2023, 12, 24) + encode_time(13, 34, 45)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.source)
			require.NoError(t, err)
			want, err := eval(t, tt.expected)
			require.NoError(t, err)
			assert.InDelta(t, want.Float(), got.Float(), 1e-9)
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		_, err := eval(t, "string_to_date('christmas eve')")
		assert.Error(t, err)
	})
}

func TestRFCRoundTrips(t *testing.T) {
	got, err := eval(t, "date_to_rfc3339(encode_date(1997, 11, 21) + encode_time(9, 55, 6))")
	require.NoError(t, err)
	assert.Equal(t, str("1997-11-21T09:55:06Z"), got)

	got, err = eval(t, "date_from_rfc3339('1997-11-21T09:55:06-06:00')")
	require.NoError(t, err)
	want, err := eval(t, "encode_date(1997, 11, 21) + encode_time(15, 55, 6)")
	require.NoError(t, err)
	assert.InDelta(t, want.Float(), got.Float(), 1e-9)

	got, err = eval(t, "date_from_rfc2822('Fri, 21 Nov 1997 09:55:06 -0600')")
	require.NoError(t, err)
	assert.InDelta(t, want.Float(), got.Float(), 1e-9)

	got, err = eval(t, "date_from_rfc2822(date_to_rfc2822(encode_date(2023, 12, 24)))")
	require.NoError(t, err)
	assert.InDelta(t, 19715, got.Float(), 1e-9)
}

func TestIncMonth(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"inc_month(encode_date(2023, 1, 15))", "encode_date(2023, 2, 15)"},
		{"inc_month(encode_date(2023, 1, 31))", "encode_date(2023, 2, 28)"},
		{"inc_month(encode_date(2024, 1, 31))", "encode_date(2024, 2, 29)"},
		{"inc_month(encode_date(2023, 12, 1))", "encode_date(2024, 1, 1)"},
		{"inc_month(encode_date(2023, 3, 31), -1)", "encode_date(2023, 2, 28)"},
		{"inc_month(encode_date(2023, 6, 15), 12)", "encode_date(2024, 6, 15)"},
		{"inc_month(encode_date(2023, 6, 15), -18)", "encode_date(2021, 12, 15)"},
		{"inc_month(encode_date(2023, 6, 15), 0)", "encode_date(2023, 6, 15)"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := eval(t, tt.source)
			require.NoError(t, err)
			want, err := eval(t, tt.want)
			require.NoError(t, err)
			assert.InDelta(t, want.Float(), got.Float(), 1e-9)
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"is_leap_year(encode_date(2024, 1, 1))", true},
		{"is_leap_year(encode_date(2023, 1, 1))", false},
		{"is_leap_year(encode_date(2000, 1, 1))", true},
		{"is_leap_year(encode_date(2100, 1, 1))", false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := eval(t, tt.source)
			require.NoError(t, err)
			assert.Equal(t, boolean(tt.want), got)
		})
	}
}

func TestNowToday(t *testing.T) {
	now, err := eval(t, "now()")
	require.NoError(t, err)
	today, err := eval(t, "today()")
	require.NoError(t, err)

	// A recent datetime, and today is now with the fraction stripped.
	assert.Greater(t, now.Float(), 19715.0)
	assert.LessOrEqual(t, today.Float(), now.Float())
	assert.Equal(t, 0.0, today.Float()-float64(int(today.Float())))
}

func TestTimeWrongTypes(t *testing.T) {
	_, err := eval(t, "year('2023')")
	assert.ErrorIs(t, err, slac.ErrTypeMismatch)

	_, err = eval(t, "date_to_string(5, 5)")
	assert.ErrorIs(t, err, slac.ErrTypeMismatch)
}
