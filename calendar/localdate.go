package calendar

import (
	"fmt"
	"time"

	"github.com/rickb777/date/v2"

	"github.com/blockberries/chrono"
)

// LocalDate is a date without a time or zone, such as 2024-02-29. It
// is stored as a day count by date.Date.
type LocalDate struct {
	d date.Date
}

var _ chrono.Temporal = LocalDate{}

var epoch = date.New(1970, time.January, 1)

// newLocalDate builds a date whose fields are already known to be valid.
func newLocalDate(year int64, month Month, day int) LocalDate {
	return LocalDate{d: date.New(int(year), time.Month(month), day)}
}

// LocalDateOf validates and combines a year, month and day-of-month.
func LocalDateOf(year int64, month Month, day int64) (LocalDate, error) {
	ym, err := YearMonthOf(year, month)
	if err != nil {
		return LocalDate{}, err
	}
	if _, err := chrono.DayOfMonth.CheckValidValue(day); err != nil {
		return LocalDate{}, err
	}
	if !ym.IsValidDay(day) {
		return LocalDate{}, &chrono.DateTimeError{Op: fmt.Sprintf("invalid date '%s %d' in %s", month, day, ym)}
	}
	return newLocalDate(year, month, int(day)), nil
}

// LocalDateOfEpochDay returns the date n days after 1970-01-01.
func LocalDateOfEpochDay(n int64) (LocalDate, error) {
	if _, err := chrono.EpochDay.CheckValidValue(n); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{d: epoch.AddDate(0, 0, int(n))}, nil
}

// ParseLocalDate parses an ISO-8601 calendar date such as "2024-02-29".
func ParseLocalDate(text string) (LocalDate, error) {
	d, err := date.ParseISO(text)
	if err != nil {
		return LocalDate{}, &chrono.FormatError{Kind: "ISO-8601 date", Text: text, Reason: err.Error()}
	}
	ld := LocalDate{d: d}
	if _, err := chrono.Year.CheckValidValue(ld.Year()); err != nil {
		return LocalDate{}, err
	}
	return ld, nil
}

// LocalDateFromNative reads the date of t in t's own location.
func LocalDateFromNative(t time.Time) LocalDate {
	return LocalDate{d: date.New(t.Year(), t.Month(), t.Day())}
}

func (ld LocalDate) Year() int64 { return int64(ld.d.Year()) }

func (ld LocalDate) Month() Month { return Month(ld.d.Month()) }

func (ld LocalDate) Day() int { return ld.d.Day() }

func (ld LocalDate) DayOfWeek() DayOfWeek { return DayOfWeekOfStd(ld.d.Weekday()) }

func (ld LocalDate) DayOfYear() int { return ld.d.YearDay() }

// EpochDay returns the number of days since 1970-01-01.
func (ld LocalDate) EpochDay() int64 { return int64(ld.d - epoch) }

func (ld LocalDate) YearMonth() YearMonth { return YearMonth{year: ld.Year(), month: ld.Month()} }

func (ld LocalDate) IsLeapYear() bool { return IsLeapYear(ld.Year()) }

func (ld LocalDate) LengthOfMonth() int { return ld.YearMonth().LengthOfMonth() }

// AtTime combines the date with a time of day.
func (ld LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: ld, time: t}
}

// AtStartOfDay returns midnight at the start of the date.
func (ld LocalDate) AtStartOfDay() LocalDateTime { return ld.AtTime(Midnight) }

func (ld LocalDate) SupportsField(field chrono.TemporalField) bool {
	switch field {
	case chrono.DayOfWeek, chrono.DayOfMonth, chrono.DayOfYear, chrono.EpochDay,
		chrono.MonthOfYear, chrono.ProlepticMonth, chrono.Year:
		return true
	}
	return false
}

func (ld LocalDate) Get(field chrono.TemporalField) (int64, error) {
	switch field {
	case chrono.DayOfWeek:
		return int64(ld.DayOfWeek()), nil
	case chrono.DayOfMonth:
		return int64(ld.Day()), nil
	case chrono.DayOfYear:
		return int64(ld.DayOfYear()), nil
	case chrono.EpochDay:
		return ld.EpochDay(), nil
	case chrono.MonthOfYear:
		return int64(ld.Month()), nil
	case chrono.ProlepticMonth:
		return ld.YearMonth().prolepticMonth(), nil
	case chrono.Year:
		return ld.Year(), nil
	}
	return 0, &chrono.UnsupportedFieldError{Field: field}
}

// With returns a copy with field set to value. Changing the month or
// year keeps the day-of-month, clamped to the end of the new month.
func (ld LocalDate) With(field chrono.TemporalField, value int64) (LocalDate, error) {
	cf, ok := field.(chrono.ChronoField)
	if !ok || !ld.SupportsField(cf) {
		return LocalDate{}, &chrono.UnsupportedFieldError{Field: field}
	}
	if _, err := cf.CheckValidValue(value); err != nil {
		return LocalDate{}, err
	}
	switch cf {
	case chrono.DayOfWeek:
		return ld.plusDays(value - int64(ld.DayOfWeek()))
	case chrono.DayOfMonth:
		return LocalDateOf(ld.Year(), ld.Month(), value)
	case chrono.DayOfYear:
		return Year{year: ld.Year()}.AtDay(value)
	case chrono.EpochDay:
		return LocalDateOfEpochDay(value)
	}
	ym, err := ld.YearMonth().With(cf, value)
	if err != nil {
		return LocalDate{}, err
	}
	return ld.clampTo(ym), nil
}

// SupportsUnit reports true for Days, Weeks, Months and the year-based
// units.
func (ld LocalDate) SupportsUnit(unit chrono.TemporalUnit) bool {
	switch unit {
	case chrono.Days, chrono.Weeks, chrono.Months:
		return true
	}
	_, ok := yearsIn(unit)
	return ok
}

func (ld LocalDate) Plus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	return ld.plus(amount, unit)
}

func (ld LocalDate) plus(amount int64, unit chrono.TemporalUnit) (LocalDate, error) {
	switch unit {
	case chrono.Days:
		return ld.plusDays(amount)
	case chrono.Weeks:
		days, err := mulExact(amount, 7, "date addition")
		if err != nil {
			return LocalDate{}, err
		}
		return ld.plusDays(days)
	case chrono.Months:
		return ld.PlusMonths(amount)
	}
	factor, ok := yearsIn(unit)
	if !ok {
		return LocalDate{}, &chrono.UnsupportedUnitError{Unit: unit}
	}
	years, err := mulExact(amount, factor, "date addition")
	if err != nil {
		return LocalDate{}, err
	}
	return ld.PlusYears(years)
}

func (ld LocalDate) Minus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	return minus(amount, unit, ld.Plus)
}

func (ld LocalDate) PlusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.AddTo(ld)
}

func (ld LocalDate) MinusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.SubtractFrom(ld)
}

func (ld LocalDate) plusDays(n int64) (LocalDate, error) {
	if n == 0 {
		return ld, nil
	}
	e, err := addExact(ld.EpochDay(), n, "date addition")
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateOfEpochDay(e)
}

func (ld LocalDate) PlusDays(n int64) (LocalDate, error) { return ld.plusDays(n) }

// PlusMonths adds n months. The day-of-month is clamped to the end of
// the resulting month, so 2024-01-31 plus one month is 2024-02-29.
func (ld LocalDate) PlusMonths(n int64) (LocalDate, error) {
	ym, err := ld.YearMonth().PlusMonths(n)
	if err != nil {
		return LocalDate{}, err
	}
	return ld.clampTo(ym), nil
}

// PlusYears adds n years. February 29 becomes February 28 in a common
// year.
func (ld LocalDate) PlusYears(n int64) (LocalDate, error) {
	ym, err := ld.YearMonth().PlusYears(n)
	if err != nil {
		return LocalDate{}, err
	}
	return ld.clampTo(ym), nil
}

func (ld LocalDate) clampTo(ym YearMonth) LocalDate {
	return newLocalDate(ym.year, ym.month, min(ld.Day(), ym.LengthOfMonth()))
}

func (ld LocalDate) Compare(other LocalDate) int {
	switch diff := ld.d - other.d; {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}

func (ld LocalDate) IsBefore(other LocalDate) bool { return ld.Compare(other) < 0 }

func (ld LocalDate) IsAfter(other LocalDate) bool { return ld.Compare(other) > 0 }

func (ld LocalDate) Equal(other LocalDate) bool { return ld.d == other.d }

// String formats the date as ISO-8601, such as "2024-02-29".
func (ld LocalDate) String() string {
	return formatYear(ld.Year()) + fmt.Sprintf("-%02d-%02d", int(ld.Month()), ld.Day())
}
