package calendar

import (
	"strconv"

	"github.com/blockberries/chrono"
)

// Year is a year in the proleptic ISO calendar, such as 2024.
type Year struct {
	year int64
}

var _ chrono.Temporal = Year{}

// YearOf returns the given year, which must lie within the Year field.
func YearOf(year int64) (Year, error) {
	if _, err := chrono.Year.CheckValidValue(year); err != nil {
		return Year{}, err
	}
	return Year{year: year}, nil
}

// IsLeapYear applies the proleptic Gregorian leap year rule.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (y Year) Value() int64 { return y.year }

func (y Year) IsLeap() bool { return IsLeapYear(y.year) }

// Length returns the number of days in the year.
func (y Year) Length() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// AtMonth combines the year with a month.
func (y Year) AtMonth(m Month) YearMonth {
	return YearMonth{year: y.year, month: m}
}

// AtDay returns the date at the given day-of-year.
func (y Year) AtDay(dayOfYear int64) (LocalDate, error) {
	if _, err := chrono.DayOfYear.CheckValidValue(dayOfYear); err != nil {
		return LocalDate{}, err
	}
	if dayOfYear == 366 && !y.IsLeap() {
		return LocalDate{}, &chrono.DateTimeError{Op: "invalid date 'DayOfYear 366' as '" + y.String() + "' is not a leap year"}
	}
	start, err := LocalDateOf(y.year, January, 1)
	if err != nil {
		return LocalDate{}, err
	}
	return start.plusDays(dayOfYear - 1)
}

func (y Year) SupportsField(field chrono.TemporalField) bool {
	return field == chrono.TemporalField(chrono.Year)
}

func (y Year) Get(field chrono.TemporalField) (int64, error) {
	if !y.SupportsField(field) {
		return 0, &chrono.UnsupportedFieldError{Field: field}
	}
	return y.year, nil
}

// SupportsUnit reports true for Years, Decades, Centuries and
// Millennia.
func (y Year) SupportsUnit(unit chrono.TemporalUnit) bool {
	_, ok := yearsIn(unit)
	return ok
}

func (y Year) Plus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	factor, ok := yearsIn(unit)
	if !ok {
		return nil, &chrono.UnsupportedUnitError{Unit: unit}
	}
	years, err := mulExact(amount, factor, "year addition")
	if err != nil {
		return nil, err
	}
	return y.PlusYears(years)
}

func (y Year) Minus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	return minus(amount, unit, y.Plus)
}

func (y Year) PlusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.AddTo(y)
}

func (y Year) MinusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.SubtractFrom(y)
}

// PlusYears returns the year n years later.
func (y Year) PlusYears(n int64) (Year, error) {
	if n == 0 {
		return y, nil
	}
	v, err := addExact(y.year, n, "year addition")
	if err != nil {
		return Year{}, err
	}
	return YearOf(v)
}

func (y Year) Compare(other Year) int {
	switch {
	case y.year < other.year:
		return -1
	case y.year > other.year:
		return 1
	}
	return 0
}

func (y Year) IsBefore(other Year) bool { return y.year < other.year }

func (y Year) IsAfter(other Year) bool { return y.year > other.year }

func (y Year) String() string { return strconv.FormatInt(y.year, 10) }
