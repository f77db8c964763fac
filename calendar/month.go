// Package calendar provides ISO-8601 calendar values that implement
// chrono.Temporal: years, months, dates, times and date-times without
// a zone.
package calendar

import (
	"time"

	"github.com/blockberries/chrono"
)

// Month is a month-of-year, January (1) to December (12).
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var _ chrono.TemporalAccessor = January

// MonthOf returns the month with the given number.
func MonthOf(month int64) (Month, error) {
	if _, err := chrono.MonthOfYear.CheckValidValue(month); err != nil {
		return 0, err
	}
	return Month(month), nil
}

func (m Month) Value() int64 { return int64(m) }

func (m Month) SupportsField(field chrono.TemporalField) bool {
	return field == chrono.TemporalField(chrono.MonthOfYear)
}

func (m Month) Get(field chrono.TemporalField) (int64, error) {
	if !m.SupportsField(field) {
		return 0, &chrono.UnsupportedFieldError{Field: field}
	}
	return int64(m), nil
}

// Plus returns the month n months later, wrapping around December.
func (m Month) Plus(n int64) Month {
	return Month(floorMod(int64(m)-1+n%12, 12) + 1)
}

// Minus returns the month n months earlier, wrapping around January.
func (m Month) Minus(n int64) Month {
	return m.Plus(-(n % 12))
}

// Length returns the number of days in the month.
func (m Month) Length(leapYear bool) int {
	switch m {
	case February:
		if leapYear {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

func (m Month) MinLength() int { return m.Length(false) }

func (m Month) MaxLength() int { return m.Length(true) }

// FirstDayOfYear returns the day-of-year of the first day of the month.
func (m Month) FirstDayOfYear(leapYear bool) int {
	day := 1
	for prev := January; prev < m; prev++ {
		day += prev.Length(leapYear)
	}
	return day
}

func (m Month) String() string { return time.Month(m).String() }

// DayOfWeek is an ISO day-of-week, Monday (1) to Sunday (7).
type DayOfWeek uint8

const (
	Monday DayOfWeek = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var _ chrono.TemporalAccessor = Monday

// DayOfWeekOf returns the day with the given ISO number.
func DayOfWeekOf(day int64) (DayOfWeek, error) {
	if _, err := chrono.DayOfWeek.CheckValidValue(day); err != nil {
		return 0, err
	}
	return DayOfWeek(day), nil
}

// DayOfWeekOfStd converts a standard library weekday.
func DayOfWeekOfStd(wd time.Weekday) DayOfWeek {
	if wd == time.Sunday {
		return Sunday
	}
	return DayOfWeek(wd)
}

func (d DayOfWeek) Value() int64 { return int64(d) }

func (d DayOfWeek) SupportsField(field chrono.TemporalField) bool {
	return field == chrono.TemporalField(chrono.DayOfWeek)
}

func (d DayOfWeek) Get(field chrono.TemporalField) (int64, error) {
	if !d.SupportsField(field) {
		return 0, &chrono.UnsupportedFieldError{Field: field}
	}
	return int64(d), nil
}

// Plus returns the day n days later, wrapping around Sunday.
func (d DayOfWeek) Plus(n int64) DayOfWeek {
	return DayOfWeek(floorMod(int64(d)-1+n%7, 7) + 1)
}

// Minus returns the day n days earlier, wrapping around Monday.
func (d DayOfWeek) Minus(n int64) DayOfWeek {
	return d.Plus(-(n % 7))
}

// Std converts to a standard library weekday.
func (d DayOfWeek) Std() time.Weekday { return time.Weekday(d % 7) }

func (d DayOfWeek) String() string { return d.Std().String() }
