package chrono

import "fmt"

// ChronoUnit is the standard catalogue of units. The zero value is
// Micros; values compare by catalogue position.
type ChronoUnit uint8

const (
	Micros ChronoUnit = iota
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Forever
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
	microsPerMilli   = 1_000
	microsPerSecond  = 1_000_000
	millisPerSecond  = 1_000
)

type unitInfo struct {
	name      string
	dateBased bool
	timeBased bool
	seconds   int64
	micros    int64
}

var unitTable = [...]unitInfo{
	Micros:    {name: "Micros", timeBased: true, micros: 1},
	Millis:    {name: "Millis", timeBased: true, micros: microsPerMilli},
	Seconds:   {name: "Seconds", timeBased: true, seconds: 1},
	Minutes:   {name: "Minutes", timeBased: true, seconds: secondsPerMinute},
	Hours:     {name: "Hours", timeBased: true, seconds: secondsPerHour},
	HalfDays:  {name: "HalfDays", timeBased: true, seconds: 12 * secondsPerHour},
	Days:      {name: "Days", dateBased: true, seconds: secondsPerDay},
	Weeks:     {name: "Weeks", dateBased: true, seconds: 7 * secondsPerDay},
	Months:    {name: "Months", dateBased: true, seconds: secondsPerYear / 12},
	Years:     {name: "Years", dateBased: true, seconds: secondsPerYear},
	Decades:   {name: "Decades", dateBased: true, seconds: 10 * secondsPerYear},
	Centuries: {name: "Centuries", dateBased: true, seconds: 100 * secondsPerYear},
	Millennia: {name: "Millennia", dateBased: true, seconds: 1000 * secondsPerYear},
	Forever:   {name: "Forever"},
}

var _ TemporalUnit = Days

// Units returns every ChronoUnit in catalogue order.
func Units() []ChronoUnit {
	out := make([]ChronoUnit, len(unitTable))
	for i := range unitTable {
		out[i] = ChronoUnit(i)
	}
	return out
}

// UnitOf returns the unit with the given name, as printed by String.
func UnitOf(name string) (ChronoUnit, error) {
	for i, info := range unitTable {
		if info.name == name {
			return ChronoUnit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: no unit named %q", ErrInvalidArgument, name)
}

func (u ChronoUnit) info() unitInfo {
	if int(u) >= len(unitTable) {
		return unitInfo{name: fmt.Sprintf("ChronoUnit(%d)", u)}
	}
	return unitTable[u]
}

func (u ChronoUnit) IsDateBased() bool { return u.info().dateBased }

func (u ChronoUnit) IsTimeBased() bool { return u.info().timeBased }

// IsDurationEstimated is true for the date-based units.
func (u ChronoUnit) IsDurationEstimated() bool { return u.info().dateBased }

// Duration returns the length of the unit. Date-based units are
// estimated from a 365-day year. Forever has no duration.
func (u ChronoUnit) Duration() (Duration, error) {
	info := u.info()
	if !info.dateBased && !info.timeBased {
		return Duration{}, unsupportedUnit(u)
	}
	return DurationOfSeconds(info.seconds, info.micros), nil
}

// IsSupportedBy delegates to t.SupportsUnit.
func (u ChronoUnit) IsSupportedBy(t Temporal) bool {
	return t.SupportsUnit(u)
}

// Compare orders units by catalogue position.
func (u ChronoUnit) Compare(other ChronoUnit) int {
	switch {
	case u < other:
		return -1
	case u > other:
		return 1
	default:
		return 0
	}
}

func (u ChronoUnit) String() string { return u.info().name }
