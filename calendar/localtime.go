package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/blockberries/chrono"
)

const (
	microsPerSecond = 1_000_000
	microsPerMinute = 60 * microsPerSecond
	microsPerHour   = 60 * microsPerMinute
	microsPerDay    = 24 * microsPerHour
)

// LocalTime is a time of day without a date or zone, at microsecond
// precision, such as 10:15:30.5.
type LocalTime struct {
	micro int64 // of day
}

var _ chrono.Temporal = LocalTime{}

var (
	Midnight = LocalTime{}
	Noon     = LocalTime{micro: 12 * microsPerHour}
)

// LocalTimeOf validates and combines an hour, minute, second and
// microsecond.
func LocalTimeOf(hour, minute, second, micro int64) (LocalTime, error) {
	for _, c := range [...]struct {
		field chrono.ChronoField
		value int64
	}{
		{chrono.HourOfDay, hour},
		{chrono.MinuteOfHour, minute},
		{chrono.SecondOfMinute, second},
		{chrono.MicroOfSecond, micro},
	} {
		if _, err := c.field.CheckValidValue(c.value); err != nil {
			return LocalTime{}, err
		}
	}
	return LocalTime{micro: hour*microsPerHour + minute*microsPerMinute + second*microsPerSecond + micro}, nil
}

// LocalTimeOfMicroOfDay returns the time n microseconds after midnight.
func LocalTimeOfMicroOfDay(n int64) (LocalTime, error) {
	if _, err := chrono.MicroOfDay.CheckValidValue(n); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{micro: n}, nil
}

// ParseLocalTime parses "15:04", "15:04:05" or "15:04:05.999999".
// Digits beyond the microsecond are truncated.
func ParseLocalTime(text string) (LocalTime, error) {
	layout := "15:04"
	if strings.Count(text, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return LocalTime{}, &chrono.FormatError{Kind: "ISO-8601 time", Text: text, Reason: err.Error()}
	}
	return LocalTimeFromNative(t), nil
}

// LocalTimeFromNative reads the wall clock of t.
func LocalTimeFromNative(t time.Time) LocalTime {
	return LocalTime{micro: chrono.MicroOfDay.FromNative(t)}
}

func (lt LocalTime) Hour() int { return int(lt.micro / microsPerHour) }

func (lt LocalTime) Minute() int { return int(lt.micro / microsPerMinute % 60) }

func (lt LocalTime) Second() int { return int(lt.micro / microsPerSecond % 60) }

func (lt LocalTime) Micro() int { return int(lt.micro % microsPerSecond) }

func (lt LocalTime) MicroOfDay() int64 { return lt.micro }

// SupportsField reports true for every time-based ChronoField.
func (lt LocalTime) SupportsField(field chrono.TemporalField) bool {
	cf, ok := field.(chrono.ChronoField)
	return ok && cf.IsTimeBased()
}

func (lt LocalTime) Get(field chrono.TemporalField) (int64, error) {
	if !lt.SupportsField(field) {
		return 0, &chrono.UnsupportedFieldError{Field: field}
	}
	h := lt.micro / microsPerHour
	switch field {
	case chrono.MicroOfSecond:
		return lt.micro % microsPerSecond, nil
	case chrono.MicroOfDay:
		return lt.micro, nil
	case chrono.MilliOfSecond:
		return lt.micro % microsPerSecond / 1000, nil
	case chrono.MilliOfDay:
		return lt.micro / 1000, nil
	case chrono.SecondOfMinute:
		return lt.micro / microsPerSecond % 60, nil
	case chrono.SecondOfDay:
		return lt.micro / microsPerSecond, nil
	case chrono.MinuteOfHour:
		return lt.micro / microsPerMinute % 60, nil
	case chrono.MinuteOfDay:
		return lt.micro / microsPerMinute, nil
	case chrono.HourOfAmPm:
		return h % 12, nil
	case chrono.ClockHourOfAmPm:
		if h%12 == 0 {
			return 12, nil
		}
		return h % 12, nil
	case chrono.HourOfDay:
		return h, nil
	case chrono.ClockHourOfDay:
		if h == 0 {
			return 24, nil
		}
		return h, nil
	case chrono.AmPmOfDay:
		return h / 12, nil
	}
	return 0, &chrono.UnsupportedFieldError{Field: field}
}

// With returns a copy with field set to value. Setting a second,
// minute or hour field keeps the smaller fields; setting a milli or
// micro field replaces everything below its range.
func (lt LocalTime) With(field chrono.TemporalField, value int64) (LocalTime, error) {
	if !lt.SupportsField(field) {
		return LocalTime{}, &chrono.UnsupportedFieldError{Field: field}
	}
	cf := field.(chrono.ChronoField)
	if _, err := cf.CheckValidValue(value); err != nil {
		return LocalTime{}, err
	}
	switch cf {
	case chrono.MicroOfSecond:
		return LocalTime{micro: lt.micro - lt.micro%microsPerSecond + value}, nil
	case chrono.MicroOfDay:
		return LocalTime{micro: value}, nil
	case chrono.MilliOfSecond:
		return LocalTime{micro: lt.micro - lt.micro%microsPerSecond + value*1000}, nil
	case chrono.MilliOfDay:
		return LocalTime{micro: value * 1000}, nil
	case chrono.ClockHourOfAmPm:
		cf, value = chrono.HourOfAmPm, value%12
	case chrono.ClockHourOfDay:
		cf, value = chrono.HourOfDay, value%24
	}
	current, err := lt.Get(cf)
	if err != nil {
		return LocalTime{}, err
	}
	step, err := cf.BaseUnit().Duration()
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{micro: lt.micro + (value-current)*step.ToMicros()}, nil
}

// SupportsUnit reports true for the time-based ChronoUnits.
func (lt LocalTime) SupportsUnit(unit chrono.TemporalUnit) bool {
	cu, ok := unit.(chrono.ChronoUnit)
	return ok && cu.IsTimeBased()
}

// Plus adds amount of a time-based unit, wrapping around midnight.
func (lt LocalTime) Plus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	step, err := unitMicros(unit)
	if err != nil {
		return nil, err
	}
	t, _ := lt.plusWithCarry(amount, step)
	return t, nil
}

func (lt LocalTime) Minus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	step, err := unitMicros(unit)
	if err != nil {
		return nil, err
	}
	t, _ := lt.plusWithCarry(-(amount % (microsPerDay / step)), step)
	return t, nil
}

func (lt LocalTime) PlusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.AddTo(lt)
}

func (lt LocalTime) MinusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.SubtractFrom(lt)
}

// unitMicros returns the length of a time-based ChronoUnit. Every such
// unit divides a day exactly.
func unitMicros(unit chrono.TemporalUnit) (int64, error) {
	cu, ok := unit.(chrono.ChronoUnit)
	if !ok || !cu.IsTimeBased() {
		return 0, &chrono.UnsupportedUnitError{Unit: unit}
	}
	d, err := cu.Duration()
	if err != nil {
		return 0, err
	}
	return d.ToMicros(), nil
}

// plusWithCarry adds amount steps and returns the wrapped time and the
// number of days carried.
func (lt LocalTime) plusWithCarry(amount, step int64) (LocalTime, int64) {
	perDay := microsPerDay / step
	days := amount / perDay
	total := lt.micro + amount%perDay*step
	days += floorDiv(total, microsPerDay)
	return LocalTime{micro: floorMod(total, microsPerDay)}, days
}

func (lt LocalTime) Compare(other LocalTime) int {
	switch {
	case lt.micro < other.micro:
		return -1
	case lt.micro > other.micro:
		return 1
	}
	return 0
}

func (lt LocalTime) IsBefore(other LocalTime) bool { return lt.micro < other.micro }

func (lt LocalTime) IsAfter(other LocalTime) bool { return lt.micro > other.micro }

// String formats the time as ISO-8601. Seconds are omitted when zero
// and the fraction is written as 3 or 6 digits.
func (lt LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d", lt.Hour(), lt.Minute())
	sec, us := lt.Second(), lt.Micro()
	switch {
	case us == 0 && sec == 0:
		return s
	case us == 0:
		return s + fmt.Sprintf(":%02d", sec)
	case us%1000 == 0:
		return s + fmt.Sprintf(":%02d.%03d", sec, us/1000)
	default:
		return s + fmt.Sprintf(":%02d.%06d", sec, us)
	}
}
