package calendar

import (
	"time"

	"github.com/blockberries/chrono"
)

// LocalDateTime is a date and a time of day without a zone, such as
// 2024-02-29T10:15:30.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

var _ chrono.Temporal = LocalDateTime{}

// LocalDateTimeOf combines a date and a time.
func LocalDateTimeOf(d LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// LocalDateTimeFromNative reads the wall clock of t in t's own
// location.
func LocalDateTimeFromNative(t time.Time) LocalDateTime {
	return LocalDateTime{date: LocalDateFromNative(t), time: LocalTimeFromNative(t)}
}

func (dt LocalDateTime) Date() LocalDate { return dt.date }

func (dt LocalDateTime) Time() LocalTime { return dt.time }

// Std returns the date-time as a time.Time in loc.
func (dt LocalDateTime) Std(loc *time.Location) time.Time {
	return time.Date(int(dt.date.Year()), time.Month(dt.date.Month()), dt.date.Day(),
		dt.time.Hour(), dt.time.Minute(), dt.time.Second(), dt.time.Micro()*1000, loc)
}

func (dt LocalDateTime) SupportsField(field chrono.TemporalField) bool {
	return dt.time.SupportsField(field) || dt.date.SupportsField(field)
}

func (dt LocalDateTime) Get(field chrono.TemporalField) (int64, error) {
	if dt.time.SupportsField(field) {
		return dt.time.Get(field)
	}
	return dt.date.Get(field)
}

// With returns a copy with a date or time field set to value.
func (dt LocalDateTime) With(field chrono.TemporalField, value int64) (LocalDateTime, error) {
	if dt.time.SupportsField(field) {
		t, err := dt.time.With(field, value)
		if err != nil {
			return LocalDateTime{}, err
		}
		return LocalDateTime{date: dt.date, time: t}, nil
	}
	d, err := dt.date.With(field, value)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// SupportsUnit reports true for every ChronoUnit except Forever.
func (dt LocalDateTime) SupportsUnit(unit chrono.TemporalUnit) bool {
	return dt.time.SupportsUnit(unit) || dt.date.SupportsUnit(unit)
}

// Plus adds amount of unit. Time units carry into the date.
func (dt LocalDateTime) Plus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	if !dt.time.SupportsUnit(unit) {
		d, err := dt.date.plus(amount, unit)
		if err != nil {
			return nil, err
		}
		return LocalDateTime{date: d, time: dt.time}, nil
	}
	step, err := unitMicros(unit)
	if err != nil {
		return nil, err
	}
	t, days := dt.time.plusWithCarry(amount, step)
	d, err := dt.date.plusDays(days)
	if err != nil {
		return nil, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

// Minus subtracts amount of unit. Time-based amounts are split into
// whole days and a remainder before negating, so math.MinInt64 is
// accepted.
func (dt LocalDateTime) Minus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	if !dt.time.SupportsUnit(unit) {
		return minus(amount, unit, dt.Plus)
	}
	step, err := unitMicros(unit)
	if err != nil {
		return nil, err
	}
	perDay := microsPerDay / step
	t, carry := dt.time.plusWithCarry(-(amount % perDay), step)
	d, err := dt.date.plusDays(carry - amount/perDay)
	if err != nil {
		return nil, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

func (dt LocalDateTime) PlusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.AddTo(dt)
}

func (dt LocalDateTime) MinusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.SubtractFrom(dt)
}

func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

func (dt LocalDateTime) IsBefore(other LocalDateTime) bool { return dt.Compare(other) < 0 }

func (dt LocalDateTime) IsAfter(other LocalDateTime) bool { return dt.Compare(other) > 0 }

func (dt LocalDateTime) Equal(other LocalDateTime) bool { return dt.Compare(other) == 0 }

// String formats the date-time as ISO-8601, such as
// "2024-02-29T10:15:30".
func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}
