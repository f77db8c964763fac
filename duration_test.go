package chrono_test

import (
	"flag"
	"math"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/chrono"
	chronotest "github.com/blockberries/chrono/testing"
	"github.com/blockberries/chrono/types"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text    string
		seconds int64
		micros  int64
	}{
		{"P1DT2H3M4S", 93784, 0},
		{"PT0S", 0, 0},
		{"P0D", 0, 0},
		{"PT1.5S", 1, 500_000},
		{"PT-0.5S", -1, 500_000},
		{"-PT0.5S", -1, 500_000},
		{"PT0.123456789S", 0, 123_456},
		{"+PT1M", 60, 0},
		{"P2DT-1H", 2*86400 - 3600, 0},
		{"-P1DT-1H", -86400 + 3600, 0},
		{"PT-9223372036854775808S", math.MinInt64, 0},
		{"-PT9223372036854775808S", math.MinInt64, 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := chrono.ParseDuration(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.seconds, d.Seconds())
			assert.Equal(t, tt.micros, d.Micros())
		})
	}
}

func TestParseDuration_MatchesBuilder(t *testing.T) {
	d, err := chrono.ParseDuration("-P1DT2H3M4.523S")
	require.NoError(t, err)
	want := chrono.DurationOfDays(1).PlusHours(2).PlusMinutes(3).PlusSeconds(4).PlusMillis(523).Negated()
	assert.Equal(t, want, d)
	assert.True(t, d.Equal(want))
}

func TestParseDuration_Errors(t *testing.T) {
	for _, text := range []string{
		"",
		"P",
		"PT",
		"1D",
		"P1D2D",
		"PT1S1M",
		"P1H",
		"P1Y",
		"PT1.5M",
		"PT1.S",
		"PT1.1234567890S",
		"P1DT",
		"PTS",
		"P-D",
		"PT1",
		"pt1s",
		"PT9223372036854775808S",
		"P106751991167301D",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := chrono.ParseDuration(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, chrono.ErrInvalidFormat)
		})
	}
}

func TestDuration_Normalization(t *testing.T) {
	tests := []struct {
		name    string
		d       chrono.Duration
		seconds int64
		micros  int64
	}{
		{"negative adjustment", chrono.DurationOfSeconds(1, -500_000), 0, 500_000},
		{"carry over a second", chrono.DurationOfSeconds(-1, 2_500_000), 1, 500_000},
		{"negative millis", chrono.DurationOfMillis(-1), -1, 999_000},
		{"borrow to 3.000001", chrono.DurationOfSeconds(4, -999_999), 3, 1},
		{"carry to 3.000001", chrono.DurationOfSeconds(2, 1_000_001), 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.seconds, tt.d.Seconds())
			assert.Equal(t, tt.micros, tt.d.Micros())
		})
	}

	assert.Equal(t, chrono.DurationOfSeconds(3, 1), chrono.DurationOfSeconds(4, -999_999))
	assert.Equal(t, chrono.DurationOfSeconds(3, 1), chrono.DurationOfSeconds(2, 1_000_001))
	assert.Equal(t, chrono.DurationOfMicros(1_500_000), chrono.DurationOfSeconds(1, 500_000))
	assert.Equal(t, chrono.DurationOfMinutes(90), chrono.DurationOfHours(1).PlusMinutes(30))

	for _, d := range []chrono.Duration{
		chrono.ZeroDuration(),
		chrono.DurationOfSeconds(-1, 999_999),
		chrono.DurationOfSeconds(math.MaxInt64, 999_999),
		chrono.DurationOfSeconds(math.MinInt64, 0),
	} {
		assert.Equal(t, d, d.PlusDuration(chrono.ZeroDuration()), d.String())
	}
}

func TestDurationOf(t *testing.T) {
	d, err := chrono.DurationOf(2, chrono.Days)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfHours(48), d)

	d, err = chrono.DurationOf(3, chrono.HalfDays)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfHours(36), d)

	d, err = chrono.DurationOf(-1500, chrono.Millis)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfSeconds(-2, 500_000), d)

	for _, u := range []chrono.ChronoUnit{chrono.Weeks, chrono.Months, chrono.Years, chrono.Forever} {
		_, err := chrono.DurationOf(1, u)
		assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit, u.String())
	}

	_, err = chrono.DurationOf(math.MaxInt64, chrono.Hours)
	assert.ErrorIs(t, err, chrono.ErrArithmeticOverflow)
}

// fixedAmount is a TemporalAmount over arbitrary units.
type fixedAmount map[chrono.ChronoUnit]int64

func (a fixedAmount) Units() []chrono.TemporalUnit {
	var out []chrono.TemporalUnit
	for _, u := range chrono.Units() {
		if _, ok := a[u]; ok {
			out = append(out, u)
		}
	}
	return out
}

func (a fixedAmount) Get(unit chrono.TemporalUnit) (int64, error) {
	if cu, ok := unit.(chrono.ChronoUnit); ok {
		if v, ok := a[cu]; ok {
			return v, nil
		}
	}
	return 0, &chrono.UnsupportedUnitError{Unit: unit}
}

func (a fixedAmount) AddTo(t chrono.Temporal) (chrono.Temporal, error) {
	for _, u := range a.Units() {
		var err error
		if t, err = t.Plus(a[u.(chrono.ChronoUnit)], u); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (a fixedAmount) SubtractFrom(t chrono.Temporal) (chrono.Temporal, error) {
	for _, u := range a.Units() {
		var err error
		if t, err = t.Minus(a[u.(chrono.ChronoUnit)], u); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func TestDurationFrom(t *testing.T) {
	d, err := chrono.DurationFrom(fixedAmount{chrono.Days: 1, chrono.Hours: 2, chrono.Millis: 5})
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfSeconds(93600, 5_000), d)

	same := chrono.DurationOfSeconds(7, 1)
	d, err = chrono.DurationFrom(same)
	require.NoError(t, err)
	assert.Equal(t, same, d)

	_, err = chrono.DurationFrom(fixedAmount{chrono.Hours: 1, chrono.Months: 1})
	u, ok := chrono.IsUnsupportedUnit(err)
	require.True(t, ok)
	assert.Equal(t, chrono.TemporalUnit(chrono.Months), u.Unit)

	_, err = chrono.DurationFrom(chrono.PeriodOfDays(1))
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit, "Period exposes Years and Months")

	d, err = chrono.DurationFrom(fixedAmount{chrono.Seconds: math.MaxInt64, chrono.Days: 1})
	assert.ErrorIs(t, err, chrono.ErrArithmeticOverflow)
	assert.Equal(t, chrono.ZeroDuration(), d, "no partial sum on overflow")
}

func TestDuration_Arithmetic(t *testing.T) {
	d := chrono.DurationOfSeconds(10, 3)
	half := d.DividedBy(3)
	assert.Equal(t, int64(3), half.Seconds())
	assert.Equal(t, int64(333_334), half.Micros())

	assert.Equal(t, d, d.DividedBy(0))
	assert.Equal(t, chrono.ZeroDuration(), chrono.ZeroDuration().DividedBy(7))
	assert.Equal(t, chrono.DurationOfMillis(-3500), chrono.DurationOfSeconds(-7, 0).DividedBy(2))

	assert.Equal(t, chrono.DurationOfSeconds(-30, -9), d.MultipliedBy(-3))
	assert.Equal(t, chrono.ZeroDuration(), d.MultipliedBy(0))

	sum := chrono.DurationOfSeconds(1, 600_000).PlusDuration(chrono.DurationOfSeconds(1, 700_000))
	assert.Equal(t, chrono.DurationOfSeconds(3, 300_000), sum)
	assert.Equal(t, chrono.DurationOfSeconds(1, 600_000), sum.MinusDuration(chrono.DurationOfSeconds(1, 700_000)))

	assert.Equal(t, chrono.DurationOfSeconds(0, 999_000), chrono.ZeroDuration().PlusSeconds(1).MinusMillis(1))
	assert.Equal(t, chrono.DurationOfSeconds(-1, 999_999), chrono.ZeroDuration().MinusMicros(1))
	assert.Equal(t, chrono.DurationOfDays(-1), chrono.DurationOfHours(1).MinusHours(1).MinusDays(1))
	assert.Equal(t, chrono.DurationOfMinutes(-1), chrono.ZeroDuration().MinusMinutes(1))

	p, err := d.Plus(2, chrono.Seconds)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfSeconds(12, 3), p)
	m, err := d.Minus(4, chrono.Micros)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfSeconds(9, 999_999), m)
	_, err = d.Plus(1, chrono.Minutes)
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit)
	_, err = chrono.DurationOfSeconds(math.MaxInt64, 0).Plus(1, chrono.Seconds)
	assert.ErrorIs(t, err, chrono.ErrArithmeticOverflow)

	assert.Panics(t, func() { chrono.DurationOfSeconds(math.MaxInt64, 0).MultipliedBy(2) })
	assert.Panics(t, func() { chrono.DurationOfSeconds(math.MinInt64, 0).Negated() })
}

func TestDuration_SignLaws(t *testing.T) {
	samples := []chrono.Duration{
		chrono.ZeroDuration(),
		chrono.DurationOfSeconds(5, 0),
		chrono.DurationOfSeconds(-5, 0),
		chrono.DurationOfSeconds(0, 1),
		chrono.DurationOfSeconds(-1, 999_999),
		chrono.DurationOfSeconds(math.MaxInt64, 999_999),
		chrono.DurationOfSeconds(math.MinInt64, 1),
	}
	for _, d := range samples {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, d, d.Negated().Negated())
			assert.True(t, d.PlusDuration(d.Negated()).IsZero())
			assert.False(t, d.Abs().IsNegative())
			assert.Equal(t, d.IsNegative(), d.Compare(chrono.ZeroDuration()) < 0)
			assert.Equal(t, d.IsPositive(), d.Compare(chrono.ZeroDuration()) > 0)
			if !d.IsZero() {
				assert.Equal(t, -d.Compare(chrono.ZeroDuration()), d.Negated().Compare(chrono.ZeroDuration()))
			}
		})
	}
}

func TestDuration_Compare(t *testing.T) {
	a := chrono.DurationOfSeconds(-1, 500_000)
	b := chrono.DurationOfSeconds(0, 100)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(chrono.DurationOfMillis(-500)))
	assert.Equal(t, -1, chrono.DurationOfSeconds(2, 1).Compare(chrono.DurationOfSeconds(2, 2)))
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		d    chrono.Duration
		want string
	}{
		{chrono.ZeroDuration(), "PT0S"},
		{chrono.DurationOfSeconds(93784, 0), "P1DT2H3M4S"},
		{chrono.DurationOfDays(2), "P2D"},
		{chrono.DurationOfHours(23), "PT23H"},
		{chrono.DurationOfSeconds(0, 500_000), "PT0.5S"},
		{chrono.DurationOfSeconds(-1, 500_000), "-PT0.5S"},
		{chrono.DurationOfSeconds(0, 1), "PT0.000001S"},
		{chrono.DurationOfMinutes(-61), "-PT1H1M"},
		{chrono.DurationOfSeconds(12, 345_000), "PT12.345S"},
		{chrono.DurationOfSeconds(math.MinInt64, 0), "-P106751991167300DT15H30M8S"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	samples := []chrono.Duration{
		chrono.ZeroDuration(),
		chrono.DurationOfSeconds(93784, 523_000),
		chrono.DurationOfSeconds(-93784, 1),
		chrono.DurationOfSeconds(math.MaxInt64, 999_999),
		chrono.DurationOfSeconds(math.MinInt64, 0),
		chrono.DurationOfSeconds(math.MinInt64, 1),
	}
	for _, d := range samples {
		t.Run(d.String(), func(t *testing.T) {
			back, err := chrono.ParseDuration(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, back)
			assert.Equal(t, d.String(), back.String())
		})
	}
}

func TestDuration_Conversions(t *testing.T) {
	d := chrono.DurationOfSeconds(93784, 523_456)
	assert.Equal(t, int64(1), d.ToDays())
	assert.Equal(t, int64(26), d.ToHours())
	assert.Equal(t, int64(1563), d.ToMinutes())
	assert.Equal(t, int64(93784), d.ToSeconds())
	assert.Equal(t, int64(93784523), d.ToMillis())
	assert.Equal(t, int64(93784523456), d.ToMicros())
	assert.Equal(t, int64(1), d.ToDaysPart())
	assert.Equal(t, int64(2), d.ToHoursPart())
	assert.Equal(t, int64(3), d.ToMinutesPart())
	assert.Equal(t, int64(4), d.ToSecondsPart())
	assert.Equal(t, int64(523), d.ToMillisPart())
	assert.Equal(t, int64(456), d.ToMicrosPart())

	neg := chrono.DurationOfSeconds(-90, 0)
	assert.Equal(t, int64(-2), neg.ToMinutes())
	assert.Equal(t, int64(30), neg.ToSecondsPart())
	assert.Equal(t, int64(-1), chrono.DurationOfMicros(-1).ToMicros())
	assert.Panics(t, func() { chrono.DurationOfSeconds(math.MaxInt64, 0).ToMillis() })
}

func TestDuration_Std(t *testing.T) {
	d := chrono.DurationOfStd(-1500*time.Millisecond - 7*time.Nanosecond)
	assert.Equal(t, chrono.DurationOfMillis(-1500), d)

	std, err := chrono.DurationOfSeconds(90, 250).ToStd()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second+250*time.Microsecond, std)

	_, err = chrono.DurationOfDays(400 * 365).ToStd()
	assert.ErrorIs(t, err, chrono.ErrDateTime)
	assert.ErrorIs(t, err, chrono.ErrArithmeticOverflow)
}

func TestDuration_WithParts(t *testing.T) {
	d := chrono.DurationOfSeconds(5, 10)
	assert.Equal(t, chrono.DurationOfSeconds(-2, 10), d.WithSeconds(-2))

	w, err := d.WithMicros(999_999)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfSeconds(5, 999_999), w)

	_, err = d.WithMicros(1_000_000)
	var re *chrono.RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, chrono.TemporalField(chrono.MicroOfSecond), re.Field)
}

func TestDuration_Amount(t *testing.T) {
	d := chrono.DurationOfSeconds(3, 7)
	assert.Equal(t, []chrono.TemporalUnit{chrono.Seconds, chrono.Micros}, d.Units())
	v, err := d.Get(chrono.Micros)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
	_, err = d.Get(chrono.Days)
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit)

	m := &chronotest.MockTemporal{}
	_, err = d.AddTo(m)
	require.NoError(t, err)
	_, err = chrono.DurationOfSeconds(0, 0).SubtractFrom(m)
	require.NoError(t, err)
	_, err = chrono.DurationOfSeconds(0, 5).SubtractFrom(m)
	require.NoError(t, err)
	assert.Equal(t, []chronotest.Call{
		{Method: "Plus", Amount: 3, Unit: chrono.Seconds},
		{Method: "Plus", Amount: 7, Unit: chrono.Micros},
		{Method: "Minus", Amount: 5, Unit: chrono.Micros},
	}, m.Calls())

	_, err = d.AddTo(&chronotest.MockTemporal{
		SupportsUnitFn: func(u chrono.TemporalUnit) bool { return u == chrono.TemporalUnit(chrono.Seconds) },
	})
	assert.ErrorIs(t, err, chrono.ErrUnsupportedUnit)
}

func TestDuration_TextAndFlag(t *testing.T) {
	var d chrono.Duration
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&d, "timeout", "request timeout")
	require.NoError(t, fs.Parse([]string{"-timeout", "PT1M30S"}))
	assert.Equal(t, chrono.DurationOfSeconds(90, 0), d)
	assert.Equal(t, "duration", d.Type())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "PT1M30S", string(text))

	assert.Error(t, d.UnmarshalText([]byte("nope")))
	assert.Equal(t, chrono.DurationOfSeconds(90, 0), d, "failed unmarshal leaves the value alone")
}

func TestDuration_Wire(t *testing.T) {
	d := chrono.DurationOfSeconds(-1, 250)
	assert.Equal(t, types.Duration{Seconds: -1, Micros: 250}, d.Wire())

	back, err := chrono.DurationOfWire(types.Duration{Seconds: 1, Micros: -250})
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfSeconds(0, 999_750), back)

	_, err = chrono.DurationOfWire(types.Duration{Seconds: math.MaxInt64, Micros: 1_000_000})
	assert.ErrorIs(t, err, chrono.ErrArithmeticOverflow)
}

func TestDuration_ISOPeriod(t *testing.T) {
	d := chrono.DurationOfSeconds(93784, 500_000)
	p, err := d.ToISOPeriod()
	require.NoError(t, err)
	for _, part := range []struct {
		value decimal.Decimal
		want  int64
	}{{p.DaysDecimal(), 1}, {p.HoursDecimal(), 2}, {p.MinutesDecimal(), 3}, {p.SecondsDecimal(), 4}} {
		whole, _, ok := part.value.Int64(0)
		require.True(t, ok)
		assert.Equal(t, part.want, whole)
	}

	back, err := chrono.DurationOfISOPeriod(p)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	neg, err := d.Negated().ToISOPeriod()
	require.NoError(t, err)
	back, err = chrono.DurationOfISOPeriod(neg)
	require.NoError(t, err)
	assert.Equal(t, d.Negated(), back)

	_, err = chrono.DurationOfSeconds(math.MinInt64, 0).ToISOPeriod()
	assert.ErrorIs(t, err, chrono.ErrDateTime)

	halfDay, err := period.NewDecimal(decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.MustNew(5, 1), decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	back, err = chrono.DurationOfISOPeriod(halfDay)
	require.NoError(t, err)
	assert.Equal(t, chrono.DurationOfHours(12), back)

	withMonths, err := period.NewDecimal(decimal.Zero, decimal.MustNew(1, 0), decimal.Zero,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	_, err = chrono.DurationOfISOPeriod(withMonths)
	assert.ErrorIs(t, err, chrono.ErrDateTime)
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)
}
