package chrono

import (
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Duration is an exact amount of time in seconds and microseconds.
//
// The microsecond part is always in [0, 1_000_000), whatever the sign
// of the seconds, so that -0.5s is stored as (-1, 500_000). Equal
// durations therefore have equal fields and can be compared with ==.
type Duration struct {
	seconds int64
	micros  int64
}

var _ TemporalAmount = Duration{}

var microsPerSecondBig = big.NewInt(microsPerSecond)

// ZeroDuration returns the duration of length zero.
func ZeroDuration() Duration { return Duration{} }

// DurationOfSeconds returns seconds plus microAdjustment microseconds.
// The adjustment may be any value; whole seconds are carried into the
// seconds part. It panics with an ArithmeticError on overflow.
func DurationOfSeconds(seconds, microAdjustment int64) Duration {
	if microAdjustment >= 0 && microAdjustment < microsPerSecond {
		return Duration{seconds: seconds, micros: microAdjustment}
	}
	return Duration{
		seconds: addExact(seconds, floorDiv(microAdjustment, microsPerSecond), "duration seconds"),
		micros:  floorMod(microAdjustment, microsPerSecond),
	}
}

// DurationOfDays returns a duration of standard 24 hour days.
func DurationOfDays(days int64) Duration {
	return Duration{seconds: mulExact(days, secondsPerDay, "duration days")}
}

func DurationOfHours(hours int64) Duration {
	return Duration{seconds: mulExact(hours, secondsPerHour, "duration hours")}
}

func DurationOfMinutes(minutes int64) Duration {
	return Duration{seconds: mulExact(minutes, secondsPerMinute, "duration minutes")}
}

func DurationOfMillis(millis int64) Duration {
	return Duration{
		seconds: floorDiv(millis, millisPerSecond),
		micros:  floorMod(millis, millisPerSecond) * microsPerMilli,
	}
}

func DurationOfMicros(micros int64) Duration {
	return DurationOfSeconds(0, micros)
}

// DurationOf returns amount of unit. The unit must have an exact
// duration or be Days, which counts as exactly 24 hours.
func DurationOf(amount int64, unit TemporalUnit) (d Duration, err error) {
	defer recoverOverflow(&err)
	if unit == TemporalUnit(Days) {
		return DurationOfDays(amount), nil
	}
	if unit.IsDurationEstimated() {
		return Duration{}, unsupportedUnit(unit)
	}
	ud, err := unit.Duration()
	if err != nil {
		return Duration{}, err
	}
	return ud.MultipliedBy(amount), nil
}

// DurationFrom sums the duration of every unit in amount. It fails
// with an UnsupportedUnitError if amount exposes a unit other than Days
// whose duration is estimated.
func DurationFrom(amount TemporalAmount) (d Duration, err error) {
	if dd, ok := amount.(Duration); ok {
		return dd, nil
	}
	defer func() {
		if err != nil {
			d = Duration{}
		}
	}()
	defer recoverOverflow(&err)
	for _, unit := range amount.Units() {
		if unit.IsDurationEstimated() && unit != TemporalUnit(Days) {
			return Duration{}, unsupportedUnit(unit)
		}
		v, err := amount.Get(unit)
		if err != nil {
			return Duration{}, err
		}
		part, err := DurationOf(v, unit)
		if err != nil {
			return Duration{}, err
		}
		d = d.PlusDuration(part)
	}
	return d, nil
}

// DurationOfStd converts a standard library duration, truncating
// nanoseconds toward zero.
func DurationOfStd(d time.Duration) Duration {
	return DurationOfSeconds(int64(d/time.Second), int64(d%time.Second)/int64(time.Microsecond))
}

// Seconds returns the seconds part.
func (d Duration) Seconds() int64 { return d.seconds }

// Micros returns the microsecond part, in [0, 1_000_000).
func (d Duration) Micros() int64 { return d.micros }

// WithSeconds returns a copy with the seconds part replaced.
func (d Duration) WithSeconds(seconds int64) Duration {
	return Duration{seconds: seconds, micros: d.micros}
}

// WithMicros returns a copy with the microsecond part replaced. The
// value must be a valid MicroOfSecond.
func (d Duration) WithMicros(micros int64) (Duration, error) {
	if _, err := MicroOfSecond.CheckValidValue(micros); err != nil {
		return Duration{}, err
	}
	return Duration{seconds: d.seconds, micros: micros}, nil
}

func (d Duration) IsZero() bool { return d.seconds == 0 && d.micros == 0 }

func (d Duration) IsNegative() bool { return d.seconds < 0 }

func (d Duration) IsPositive() bool { return d.seconds > 0 || (d.seconds == 0 && d.micros > 0) }

// Units returns Seconds and Micros.
func (d Duration) Units() []TemporalUnit {
	return []TemporalUnit{Seconds, Micros}
}

// Get returns the seconds part for Seconds and the microsecond part for
// Micros.
func (d Duration) Get(unit TemporalUnit) (int64, error) {
	switch unit {
	case Seconds:
		return d.seconds, nil
	case Micros:
		return d.micros, nil
	}
	return 0, unsupportedUnit(unit)
}

// AddTo adds the seconds and then the microseconds to t. Zero parts are
// skipped.
func (d Duration) AddTo(t Temporal) (Temporal, error) {
	var err error
	if d.seconds != 0 {
		if t, err = t.Plus(d.seconds, Seconds); err != nil {
			return nil, err
		}
	}
	if d.micros != 0 {
		if t, err = t.Plus(d.micros, Micros); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SubtractFrom subtracts the seconds and then the microseconds from t.
// Zero parts are skipped.
func (d Duration) SubtractFrom(t Temporal) (Temporal, error) {
	var err error
	if d.seconds != 0 {
		if t, err = t.Minus(d.seconds, Seconds); err != nil {
			return nil, err
		}
	}
	if d.micros != 0 {
		if t, err = t.Minus(d.micros, Micros); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Plus adds amount of unit, which must be Seconds or Micros.
func (d Duration) Plus(amount int64, unit TemporalUnit) (res Duration, err error) {
	defer recoverOverflow(&err)
	switch unit {
	case Seconds:
		return d.PlusSeconds(amount), nil
	case Micros:
		return d.PlusMicros(amount), nil
	}
	return Duration{}, unsupportedUnit(unit)
}

// Minus subtracts amount of unit, which must be Seconds or Micros.
func (d Duration) Minus(amount int64, unit TemporalUnit) (res Duration, err error) {
	defer recoverOverflow(&err)
	switch unit {
	case Seconds:
		return d.MinusSeconds(amount), nil
	case Micros:
		return d.MinusMicros(amount), nil
	}
	return Duration{}, unsupportedUnit(unit)
}

// The Plus* and Minus* helpers below panic with an ArithmeticError
// when the result does not fit.

func (d Duration) plus(seconds, micros int64) Duration {
	if seconds == 0 && micros == 0 {
		return d
	}
	s := addExact(d.seconds, seconds, "duration addition")
	s = addExact(s, micros/microsPerSecond, "duration addition")
	return DurationOfSeconds(s, d.micros+micros%microsPerSecond)
}

func (d Duration) minus(seconds, micros int64) Duration {
	if seconds == 0 && micros == 0 {
		return d
	}
	s := subExact(d.seconds, seconds, "duration subtraction")
	s = subExact(s, micros/microsPerSecond, "duration subtraction")
	return DurationOfSeconds(s, d.micros-micros%microsPerSecond)
}

func (d Duration) PlusDuration(other Duration) Duration { return d.plus(other.seconds, other.micros) }

func (d Duration) MinusDuration(other Duration) Duration {
	return d.minus(other.seconds, other.micros)
}

func (d Duration) PlusDays(days int64) Duration {
	return d.plus(mulExact(days, secondsPerDay, "duration days"), 0)
}

func (d Duration) PlusHours(hours int64) Duration {
	return d.plus(mulExact(hours, secondsPerHour, "duration hours"), 0)
}

func (d Duration) PlusMinutes(minutes int64) Duration {
	return d.plus(mulExact(minutes, secondsPerMinute, "duration minutes"), 0)
}

func (d Duration) PlusSeconds(seconds int64) Duration { return d.plus(seconds, 0) }

func (d Duration) PlusMillis(millis int64) Duration {
	return d.plus(millis/millisPerSecond, (millis%millisPerSecond)*microsPerMilli)
}

func (d Duration) PlusMicros(micros int64) Duration { return d.plus(0, micros) }

func (d Duration) MinusDays(days int64) Duration {
	return d.minus(mulExact(days, secondsPerDay, "duration days"), 0)
}

func (d Duration) MinusHours(hours int64) Duration {
	return d.minus(mulExact(hours, secondsPerHour, "duration hours"), 0)
}

func (d Duration) MinusMinutes(minutes int64) Duration {
	return d.minus(mulExact(minutes, secondsPerMinute, "duration minutes"), 0)
}

func (d Duration) MinusSeconds(seconds int64) Duration { return d.minus(seconds, 0) }

func (d Duration) MinusMillis(millis int64) Duration {
	return d.minus(millis/millisPerSecond, (millis%millisPerSecond)*microsPerMilli)
}

func (d Duration) MinusMicros(micros int64) Duration { return d.minus(0, micros) }

// totalMicros returns the duration as a whole number of microseconds.
func (d Duration) totalMicros() *big.Int {
	t := big.NewInt(d.seconds)
	t.Mul(t, microsPerSecondBig)
	return t.Add(t, big.NewInt(d.micros))
}

// durationOfTotalMicros is the inverse of totalMicros.
func durationOfTotalMicros(total *big.Int, op string) Duration {
	s, us := new(big.Int), new(big.Int)
	s.DivMod(total, microsPerSecondBig, us)
	if !s.IsInt64() {
		panic(&ArithmeticError{Op: op})
	}
	return Duration{seconds: s.Int64(), micros: us.Int64()}
}

// MultipliedBy returns the duration scaled by k.
func (d Duration) MultipliedBy(k int64) Duration {
	switch {
	case k == 1:
		return d
	case k == 0 || d.IsZero():
		return Duration{}
	}
	t := d.totalMicros()
	return durationOfTotalMicros(t.Mul(t, big.NewInt(k)), "duration multiplication")
}

// DividedBy returns the duration divided by k, truncated toward zero to
// the microsecond. Dividing by zero, or dividing a zero duration,
// returns d unchanged.
func (d Duration) DividedBy(k int64) Duration {
	if k == 0 || k == 1 || d.IsZero() {
		return d
	}
	t := d.totalMicros()
	return durationOfTotalMicros(t.Quo(t, big.NewInt(k)), "duration division")
}

// Negated returns the duration with its sign reversed.
func (d Duration) Negated() Duration {
	if d.micros == 0 {
		return Duration{seconds: negateExact(d.seconds, "duration negation")}
	}
	return Duration{seconds: -1 - d.seconds, micros: microsPerSecond - d.micros}
}

// Abs returns a non-negative copy of the duration.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Negated()
	}
	return d
}

// Compare orders durations by length.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	case d.micros < other.micros:
		return -1
	case d.micros > other.micros:
		return 1
	}
	return 0
}

func (d Duration) Equal(other Duration) bool { return d == other }

// ToDays returns the number of whole days, rounded toward negative
// infinity like the other To* conversions.
func (d Duration) ToDays() int64 { return floorDiv(d.seconds, secondsPerDay) }

func (d Duration) ToHours() int64 { return floorDiv(d.seconds, secondsPerHour) }

func (d Duration) ToMinutes() int64 { return floorDiv(d.seconds, secondsPerMinute) }

func (d Duration) ToSeconds() int64 { return d.seconds }

// ToMillis panics with an ArithmeticError if the result does not fit.
func (d Duration) ToMillis() int64 {
	return addExact(mulExact(d.seconds, millisPerSecond, "duration millis"), d.micros/microsPerMilli, "duration millis")
}

// ToMicros panics with an ArithmeticError if the result does not fit.
func (d Duration) ToMicros() int64 {
	return addExact(mulExact(d.seconds, microsPerSecond, "duration micros"), d.micros, "duration micros")
}

// ToDaysPart is the same as ToDays.
func (d Duration) ToDaysPart() int64 { return d.ToDays() }

// ToHoursPart returns the hours within the day, in [0, 23].
func (d Duration) ToHoursPart() int64 { return floorMod(d.ToHours(), 24) }

// ToMinutesPart returns the minutes within the hour, in [0, 59].
func (d Duration) ToMinutesPart() int64 { return floorMod(d.ToMinutes(), 60) }

// ToSecondsPart returns the seconds within the minute, in [0, 59].
func (d Duration) ToSecondsPart() int64 { return floorMod(d.seconds, 60) }

// ToMillisPart returns the milliseconds within the second.
func (d Duration) ToMillisPart() int64 { return d.micros / microsPerMilli }

// ToMicrosPart returns the microseconds within the millisecond.
func (d Duration) ToMicrosPart() int64 { return d.micros % microsPerMilli }

// ToStd converts to a standard library duration. It fails with a
// DateTimeError when the duration is outside the range of
// time.Duration.
func (d Duration) ToStd() (time.Duration, error) {
	ns, err := d.nanos()
	if err != nil {
		return 0, &DateTimeError{Op: "convert " + d.String() + " to time.Duration", Err: err}
	}
	return time.Duration(ns), nil
}

func (d Duration) nanos() (ns int64, err error) {
	defer recoverOverflow(&err)
	ns = mulExact(d.seconds, int64(time.Second), "duration nanos")
	return addExact(ns, d.micros*int64(time.Microsecond), "duration nanos"), nil
}

// String formats the duration as ISO-8601, such as "PT8H6M12.345S".
// Days are only written for durations of at least 24 hours. A negative
// duration has a single leading sign.
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}

	var mag, us uint64
	switch {
	case !d.IsNegative():
		mag, us = uint64(d.seconds), uint64(d.micros)
	case d.micros == 0:
		mag = uint64(-d.seconds)
	default:
		mag, us = uint64(-1-d.seconds), uint64(microsPerSecond-d.micros)
	}

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('P')

	days, rem := mag/secondsPerDay, mag%secondsPerDay
	if days > 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteByte('D')
	}
	if rem == 0 && us == 0 {
		return b.String()
	}

	b.WriteByte('T')
	if h := rem / secondsPerHour; h > 0 {
		b.WriteString(strconv.FormatUint(h, 10))
		b.WriteByte('H')
	}
	if m := rem % secondsPerHour / secondsPerMinute; m > 0 {
		b.WriteString(strconv.FormatUint(m, 10))
		b.WriteByte('M')
	}
	if s := rem % secondsPerMinute; s > 0 || us > 0 {
		b.WriteString(strconv.FormatUint(s, 10))
		if us > 0 {
			frac := strconv.FormatUint(us+microsPerSecond, 10)[1:]
			b.WriteByte('.')
			b.WriteString(strings.TrimRight(frac, "0"))
		}
		b.WriteByte('S')
	}
	return b.String()
}
