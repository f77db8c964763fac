package chrono

import (
	"strconv"
	"strings"
)

// Period is a calendar amount of years, months and days, such as
// "2 years, 3 months and 4 days".
//
// The components are independently signed and are never normalized
// implicitly: 15 months stays 15 months until Normalized is called.
// Adding a Period to a date follows the calendar, so one month may be
// 28 to 31 days long.
type Period struct {
	years  int64
	months int64
	days   int64
}

var _ TemporalAmount = Period{}

// ZeroPeriod returns the period of length zero.
func ZeroPeriod() Period { return Period{} }

// PeriodOf returns a period of the given components.
func PeriodOf(years, months, days int64) Period {
	return Period{years: years, months: months, days: days}
}

func PeriodOfYears(years int64) Period { return Period{years: years} }

func PeriodOfMonths(months int64) Period { return Period{months: months} }

// PeriodOfWeeks returns a period of 7 × weeks days. It panics with an
// ArithmeticError on overflow.
func PeriodOfWeeks(weeks int64) Period {
	return Period{days: mulExact(weeks, 7, "period weeks")}
}

func PeriodOfDays(days int64) Period { return Period{days: days} }

// PeriodFrom returns amount itself if it is a Period. Otherwise it
// sums the Years, Months and Days values of amount and ignores every
// other unit.
func PeriodFrom(amount TemporalAmount) (p Period, err error) {
	if pp, ok := amount.(Period); ok {
		return pp, nil
	}
	defer recoverOverflow(&err)
	for _, unit := range amount.Units() {
		switch unit {
		case Years, Months, Days:
		default:
			continue
		}
		v, err := amount.Get(unit)
		if err != nil {
			return Period{}, err
		}
		switch unit {
		case Years:
			p.years = addExact(p.years, v, "period years")
		case Months:
			p.months = addExact(p.months, v, "period months")
		case Days:
			p.days = addExact(p.days, v, "period days")
		}
	}
	return p, nil
}

func (p Period) Years() int64 { return p.years }

func (p Period) Months() int64 { return p.months }

func (p Period) Days() int64 { return p.days }

func (p Period) WithYears(years int64) Period { return Period{years: years, months: p.months, days: p.days} }

func (p Period) WithMonths(months int64) Period { return Period{years: p.years, months: months, days: p.days} }

func (p Period) WithDays(days int64) Period { return Period{years: p.years, months: p.months, days: days} }

// IsZero reports whether all three components are zero.
func (p Period) IsZero() bool { return p == Period{} }

// IsNegative reports whether any component is negative.
func (p Period) IsNegative() bool { return p.years < 0 || p.months < 0 || p.days < 0 }

func (p Period) Equal(other Period) bool { return p == other }

// Units returns Years, Months and Days.
func (p Period) Units() []TemporalUnit {
	return []TemporalUnit{Years, Months, Days}
}

// Get returns the component for Years, Months or Days.
func (p Period) Get(unit TemporalUnit) (int64, error) {
	switch unit {
	case Years:
		return p.years, nil
	case Months:
		return p.months, nil
	case Days:
		return p.days, nil
	}
	return 0, unsupportedUnit(unit)
}

// AddTo adds the years, then the months, then the days to t. Zero
// components are skipped, so t only needs to support the units the
// period actually uses.
func (p Period) AddTo(t Temporal) (Temporal, error) {
	return p.apply(t, Temporal.Plus)
}

// SubtractFrom subtracts the years, then the months, then the days from
// t. Zero components are skipped.
func (p Period) SubtractFrom(t Temporal) (Temporal, error) {
	return p.apply(t, Temporal.Minus)
}

func (p Period) apply(t Temporal, step func(Temporal, int64, TemporalUnit) (Temporal, error)) (Temporal, error) {
	var err error
	for _, c := range [...]struct {
		v    int64
		unit ChronoUnit
	}{{p.years, Years}, {p.months, Months}, {p.days, Days}} {
		if c.v == 0 {
			continue
		}
		if t, err = step(t, c.v, c.unit); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// PlusAmount adds each Years, Months and Days value of amount.
func (p Period) PlusAmount(amount TemporalAmount) (res Period, err error) {
	other, err := PeriodFrom(amount)
	if err != nil {
		return Period{}, err
	}
	defer recoverOverflow(&err)
	return p.PlusYears(other.years).PlusMonths(other.months).PlusDays(other.days), nil
}

// MinusAmount subtracts each Years, Months and Days value of amount.
func (p Period) MinusAmount(amount TemporalAmount) (res Period, err error) {
	other, err := PeriodFrom(amount)
	if err != nil {
		return Period{}, err
	}
	defer recoverOverflow(&err)
	return p.MinusYears(other.years).MinusMonths(other.months).MinusDays(other.days), nil
}

// The Plus*, Minus*, MultipliedBy and Negated methods panic with an
// ArithmeticError when a component does not fit.

func (p Period) PlusYears(years int64) Period {
	return p.WithYears(addExact(p.years, years, "period years"))
}

func (p Period) PlusMonths(months int64) Period {
	return p.WithMonths(addExact(p.months, months, "period months"))
}

func (p Period) PlusDays(days int64) Period {
	return p.WithDays(addExact(p.days, days, "period days"))
}

func (p Period) MinusYears(years int64) Period {
	return p.WithYears(subExact(p.years, years, "period years"))
}

func (p Period) MinusMonths(months int64) Period {
	return p.WithMonths(subExact(p.months, months, "period months"))
}

func (p Period) MinusDays(days int64) Period {
	return p.WithDays(subExact(p.days, days, "period days"))
}

// MultipliedBy scales each component by k.
func (p Period) MultipliedBy(k int64) Period {
	if k == 1 || p.IsZero() {
		return p
	}
	return Period{
		years:  mulExact(p.years, k, "period multiplication"),
		months: mulExact(p.months, k, "period multiplication"),
		days:   mulExact(p.days, k, "period multiplication"),
	}
}

// Negated negates each component independently, so (2, -3, 4) becomes
// (-2, 3, -4).
func (p Period) Negated() Period {
	return Period{
		years:  negateExact(p.years, "period negation"),
		months: negateExact(p.months, "period negation"),
		days:   negateExact(p.days, "period negation"),
	}
}

// Normalized folds whole years out of the months so that |months| < 12
// and years and months share a sign. Days are left alone. If the period
// is already normal it is returned unchanged.
func (p Period) Normalized() Period {
	years := addExact(p.years, p.months/12, "period normalization")
	months := p.months % 12
	switch {
	case years > 0 && months < 0:
		years--
		months += 12
	case years < 0 && months > 0:
		years++
		months -= 12
	}
	if years == p.years && months == p.months {
		return p
	}
	return Period{years: years, months: months, days: p.days}
}

// ToTotalMonths returns years × 12 + months. It panics with an
// ArithmeticError on overflow.
func (p Period) ToTotalMonths() int64 {
	return addExact(mulExact(p.years, 12, "period total months"), p.months, "period total months")
}

// String formats the period as ISO-8601, such as "P1Y2M3D". The zero
// period is "P0D". When every non-zero component is negative the
// period is written with one leading sign, as in "-P1Y2M"; otherwise
// each negative component carries its own sign.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	allNeg := p.years <= 0 && p.months <= 0 && p.days <= 0

	var b strings.Builder
	if allNeg {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	for _, c := range [...]struct {
		v          int64
		designator byte
	}{{p.years, 'Y'}, {p.months, 'M'}, {p.days, 'D'}} {
		if c.v == 0 {
			continue
		}
		switch {
		case allNeg:
			b.WriteString(strconv.FormatUint(uint64(-c.v), 10))
		default:
			b.WriteString(strconv.FormatInt(c.v, 10))
		}
		b.WriteByte(c.designator)
	}
	return b.String()
}
