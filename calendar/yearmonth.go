package calendar

import (
	"fmt"

	"github.com/blockberries/chrono"
)

// YearMonth is a month in a specific year, such as 2024-02.
type YearMonth struct {
	year  int64
	month Month
}

var _ chrono.Temporal = YearMonth{}

// YearMonthOf validates and combines a year and a month.
func YearMonthOf(year int64, month Month) (YearMonth, error) {
	if _, err := chrono.Year.CheckValidValue(year); err != nil {
		return YearMonth{}, err
	}
	if _, err := chrono.MonthOfYear.CheckValidValue(int64(month)); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: year, month: month}, nil
}

// yearMonthOfProleptic is the inverse of YearMonth.prolepticMonth.
func yearMonthOfProleptic(pm int64) (YearMonth, error) {
	if _, err := chrono.ProlepticMonth.CheckValidValue(pm); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: floorDiv(pm, 12), month: Month(floorMod(pm, 12) + 1)}, nil
}

func (ym YearMonth) Year() int64 { return ym.year }

func (ym YearMonth) Month() Month { return ym.month }

func (ym YearMonth) prolepticMonth() int64 { return ym.year*12 + int64(ym.month) - 1 }

func (ym YearMonth) IsLeapYear() bool { return IsLeapYear(ym.year) }

// LengthOfMonth returns the number of days in the month.
func (ym YearMonth) LengthOfMonth() int { return ym.month.Length(ym.IsLeapYear()) }

// IsValidDay reports whether day exists in the month.
func (ym YearMonth) IsValidDay(day int64) bool {
	return day >= 1 && day <= int64(ym.LengthOfMonth())
}

// AtDay returns the date at the given day-of-month.
func (ym YearMonth) AtDay(day int64) (LocalDate, error) {
	return LocalDateOf(ym.year, ym.month, day)
}

// AtEndOfMonth returns the last date of the month.
func (ym YearMonth) AtEndOfMonth() LocalDate {
	return newLocalDate(ym.year, ym.month, ym.LengthOfMonth())
}

// With returns a copy with field set to value. Year, MonthOfYear and
// ProlepticMonth are supported.
func (ym YearMonth) With(field chrono.TemporalField, value int64) (YearMonth, error) {
	switch field {
	case chrono.Year:
		return YearMonthOf(value, ym.month)
	case chrono.MonthOfYear:
		m, err := MonthOf(value)
		if err != nil {
			return YearMonth{}, err
		}
		return YearMonth{year: ym.year, month: m}, nil
	case chrono.ProlepticMonth:
		return yearMonthOfProleptic(value)
	}
	return YearMonth{}, &chrono.UnsupportedFieldError{Field: field}
}

func (ym YearMonth) SupportsField(field chrono.TemporalField) bool {
	switch field {
	case chrono.Year, chrono.MonthOfYear, chrono.ProlepticMonth:
		return true
	}
	return false
}

func (ym YearMonth) Get(field chrono.TemporalField) (int64, error) {
	switch field {
	case chrono.Year:
		return ym.year, nil
	case chrono.MonthOfYear:
		return int64(ym.month), nil
	case chrono.ProlepticMonth:
		return ym.prolepticMonth(), nil
	}
	return 0, &chrono.UnsupportedFieldError{Field: field}
}

// SupportsUnit reports true for Months and the year-based units.
func (ym YearMonth) SupportsUnit(unit chrono.TemporalUnit) bool {
	if unit == chrono.TemporalUnit(chrono.Months) {
		return true
	}
	_, ok := yearsIn(unit)
	return ok
}

func (ym YearMonth) Plus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	if unit == chrono.TemporalUnit(chrono.Months) {
		return ym.PlusMonths(amount)
	}
	factor, ok := yearsIn(unit)
	if !ok {
		return nil, &chrono.UnsupportedUnitError{Unit: unit}
	}
	years, err := mulExact(amount, factor, "year-month addition")
	if err != nil {
		return nil, err
	}
	return ym.PlusYears(years)
}

func (ym YearMonth) Minus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	return minus(amount, unit, ym.Plus)
}

func (ym YearMonth) PlusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.AddTo(ym)
}

func (ym YearMonth) MinusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.SubtractFrom(ym)
}

func (ym YearMonth) PlusMonths(n int64) (YearMonth, error) {
	if n == 0 {
		return ym, nil
	}
	pm, err := addExact(ym.prolepticMonth(), n, "year-month addition")
	if err != nil {
		return YearMonth{}, err
	}
	return yearMonthOfProleptic(pm)
}

func (ym YearMonth) PlusYears(n int64) (YearMonth, error) {
	if n == 0 {
		return ym, nil
	}
	y, err := addExact(ym.year, n, "year-month addition")
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonthOf(y, ym.month)
}

func (ym YearMonth) Compare(other YearMonth) int {
	a, b := ym.prolepticMonth(), other.prolepticMonth()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String formats the year-month as ISO-8601, such as "2024-02".
func (ym YearMonth) String() string {
	return formatYear(ym.year) + fmt.Sprintf("-%02d", int(ym.month))
}

// formatYear writes at least four digits. Years beyond 9999 carry an
// explicit '+'.
func formatYear(year int64) string {
	switch {
	case year > 9999:
		return fmt.Sprintf("+%d", year)
	case year < 0:
		return fmt.Sprintf("-%04d", -year)
	default:
		return fmt.Sprintf("%04d", year)
	}
}
