package chrono

import (
	"math"

	"github.com/govalues/decimal"
	"github.com/rickb777/period"

	"github.com/blockberries/chrono/types"
)

// Text, flag and wire encodings of Duration and Period, and conversion
// to and from the coarse period.Period interval type.

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Set enables use of Duration by the flag API.
func (d *Duration) Set(text string) error { return d.UnmarshalText([]byte(text)) }

// Type is for compatibility with the spf13/pflag library.
func (d Duration) Type() string { return "duration" }

// Wire returns the serializable form of d.
func (d Duration) Wire() types.Duration {
	return types.Duration{Seconds: d.seconds, Micros: d.micros}
}

// DurationOfWire converts the serializable form back, normalizing the
// microsecond part.
func DurationOfWire(w types.Duration) (d Duration, err error) {
	defer recoverOverflow(&err)
	return DurationOfSeconds(w.Seconds, w.Micros), nil
}

// ToISOPeriod converts d to a period.Period of days, hours, minutes and
// seconds. Days are 24 hours long.
func (d Duration) ToISOPeriod() (period.Period, error) {
	abs := d
	if d.IsNegative() {
		if d.micros == 0 && d.seconds == math.MinInt64 {
			return period.Zero, &DateTimeError{Op: "convert " + d.String() + " to period", Err: ErrArithmeticOverflow}
		}
		abs = d.Negated()
	}
	rem := abs.seconds % secondsPerDay
	seconds, err := decimal.New((rem%secondsPerMinute)*microsPerSecond+abs.micros, 6)
	if err != nil {
		return period.Zero, &DateTimeError{Op: "convert " + d.String() + " to period", Err: err}
	}
	p, err := period.NewDecimal(decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.MustNew(abs.seconds/secondsPerDay, 0),
		decimal.MustNew(rem/secondsPerHour, 0),
		decimal.MustNew(rem%secondsPerHour/secondsPerMinute, 0),
		seconds)
	if err != nil {
		return period.Zero, &DateTimeError{Op: "convert " + d.String() + " to period", Err: err}
	}
	if d.IsNegative() {
		p = p.Negate()
	}
	return p, nil
}

// DurationOfISOPeriod converts the days, hours, minutes and seconds of p
// to a Duration, truncating below the microsecond. It fails with a
// DateTimeError if p has years, months or weeks, whose length is not
// fixed.
func DurationOfISOPeriod(p period.Period) (Duration, error) {
	if p.YearsDecimal().Sign() != 0 || p.MonthsDecimal().Sign() != 0 || p.WeeksDecimal().Sign() != 0 {
		return Duration{}, &DateTimeError{Op: "convert " + p.String() + " to duration: years, months and weeks have no fixed length", Err: ErrInvalidArgument}
	}
	d, err := sumISOFields(p)
	if err != nil {
		return Duration{}, &DateTimeError{Op: "convert " + p.String() + " to duration", Err: err}
	}
	return d, nil
}

func sumISOFields(p period.Period) (d Duration, err error) {
	defer recoverOverflow(&err)
	for _, f := range [...]struct {
		value   decimal.Decimal
		seconds int64
	}{
		{p.DaysDecimal(), secondsPerDay},
		{p.HoursDecimal(), secondsPerHour},
		{p.MinutesDecimal(), secondsPerMinute},
		{p.SecondsDecimal(), 1},
	} {
		if f.value.Sign() == 0 {
			continue
		}
		// frac is in units of 1e-12 so that a fraction of a day keeps
		// microsecond precision.
		whole, frac, ok := f.value.Int64(12)
		if !ok {
			return Duration{}, ErrArithmeticOverflow
		}
		d = d.plus(mulExact(whole, f.seconds, "period conversion"), frac*f.seconds/microsPerSecond)
	}
	return d, nil
}

func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Set enables use of Period by the flag API.
func (p *Period) Set(text string) error { return p.UnmarshalText([]byte(text)) }

// Type is for compatibility with the spf13/pflag library.
func (p Period) Type() string { return "period" }

// Wire returns the serializable form of p.
func (p Period) Wire() types.Period {
	return types.Period{Years: p.years, Months: p.months, Days: p.days}
}

func PeriodOfWire(w types.Period) Period {
	return Period{years: w.Years, months: w.Months, days: w.Days}
}

// ToISOPeriod converts p to a period.Period of years, months and days.
func (p Period) ToISOPeriod() (period.Period, error) {
	out, err := period.NewDecimal(
		decimal.MustNew(p.years, 0),
		decimal.MustNew(p.months, 0),
		decimal.Zero,
		decimal.MustNew(p.days, 0),
		decimal.Zero, decimal.Zero, decimal.Zero)
	if err != nil {
		return period.Zero, &DateTimeError{Op: "convert " + p.String() + " to period", Err: err}
	}
	return out, nil
}

// PeriodOfISOPeriod converts the years, months, weeks and days of p to a
// Period. Weeks become 7 days. It fails with a DateTimeError if p has a
// time part or a fraction.
func PeriodOfISOPeriod(p period.Period) (Period, error) {
	if p.HoursDecimal().Sign() != 0 || p.MinutesDecimal().Sign() != 0 || p.SecondsDecimal().Sign() != 0 {
		return Period{}, &DateTimeError{Op: "convert " + p.String() + " to period: time fields are not allowed", Err: ErrInvalidArgument}
	}
	var whole [4]int64
	for i, v := range [...]decimal.Decimal{p.YearsDecimal(), p.MonthsDecimal(), p.WeeksDecimal(), p.DaysDecimal()} {
		w, frac, ok := v.Int64(9)
		if !ok || frac != 0 {
			return Period{}, &DateTimeError{Op: "convert " + p.String() + " to period: fractions are not allowed", Err: ErrInvalidArgument}
		}
		whole[i] = w
	}
	return periodOfWeeksAndDays(whole[0], whole[1], whole[2], whole[3])
}

func periodOfWeeksAndDays(years, months, weeks, days int64) (p Period, err error) {
	defer recoverOverflow(&err)
	return PeriodOf(years, months, addExact(mulExact(weeks, 7, "period weeks"), days, "period weeks")), nil
}
