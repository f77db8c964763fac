package chrono

import (
	"fmt"
	"time"
)

// ChronoField is the standard catalogue of fields.
type ChronoField uint8

const (
	MicroOfSecond ChronoField = iota
	MicroOfDay
	MilliOfSecond
	MilliOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfAmPm
	ClockHourOfAmPm
	HourOfDay
	ClockHourOfDay
	AmPmOfDay
	DayOfWeek
	DayOfMonth
	DayOfYear
	EpochDay
	MonthOfYear
	ProlepticMonth
	Year
)

// Year limits shared by the date fields.
const (
	MinYear int64 = -999_999_999
	MaxYear int64 = 999_999_999
)

type fieldInfo struct {
	name      string
	baseUnit  ChronoUnit
	rangeUnit ChronoUnit
	bounds    []int64
	native    func(time.Time) int64
}

var fieldTable = [...]fieldInfo{
	MicroOfSecond: {"MicroOfSecond", Micros, Seconds, []int64{0, microsPerSecond - 1},
		func(t time.Time) int64 { return int64(t.Nanosecond() / 1_000) }},
	MicroOfDay: {"MicroOfDay", Micros, Days, []int64{0, secondsPerDay*microsPerSecond - 1},
		func(t time.Time) int64 { return nativeSecondOfDay(t)*microsPerSecond + int64(t.Nanosecond()/1_000) }},
	MilliOfSecond: {"MilliOfSecond", Millis, Seconds, []int64{0, millisPerSecond - 1},
		func(t time.Time) int64 { return int64(t.Nanosecond() / 1_000_000) }},
	MilliOfDay: {"MilliOfDay", Millis, Days, []int64{0, secondsPerDay*millisPerSecond - 1},
		func(t time.Time) int64 { return nativeSecondOfDay(t)*millisPerSecond + int64(t.Nanosecond()/1_000_000) }},
	SecondOfMinute: {"SecondOfMinute", Seconds, Minutes, []int64{0, 59},
		func(t time.Time) int64 { return int64(t.Second()) }},
	SecondOfDay: {"SecondOfDay", Seconds, Days, []int64{0, secondsPerDay - 1},
		nativeSecondOfDay},
	MinuteOfHour: {"MinuteOfHour", Minutes, Hours, []int64{0, 59},
		func(t time.Time) int64 { return int64(t.Minute()) }},
	MinuteOfDay: {"MinuteOfDay", Minutes, Days, []int64{0, 24*60 - 1},
		func(t time.Time) int64 { return int64(t.Hour()*60 + t.Minute()) }},
	HourOfAmPm: {"HourOfAmPm", Hours, HalfDays, []int64{0, 11},
		func(t time.Time) int64 { return int64(t.Hour() % 12) }},
	ClockHourOfAmPm: {"ClockHourOfAmPm", Hours, HalfDays, []int64{1, 12},
		func(t time.Time) int64 {
			if h := t.Hour() % 12; h != 0 {
				return int64(h)
			}
			return 12
		}},
	HourOfDay: {"HourOfDay", Hours, Days, []int64{0, 23},
		func(t time.Time) int64 { return int64(t.Hour()) }},
	ClockHourOfDay: {"ClockHourOfDay", Hours, Days, []int64{1, 24},
		func(t time.Time) int64 {
			if h := t.Hour(); h != 0 {
				return int64(h)
			}
			return 24
		}},
	AmPmOfDay: {"AmPmOfDay", HalfDays, Days, []int64{0, 1},
		func(t time.Time) int64 { return int64(t.Hour() / 12) }},
	DayOfWeek: {"DayOfWeek", Days, Weeks, []int64{1, 7},
		func(t time.Time) int64 {
			if wd := t.Weekday(); wd != time.Sunday {
				return int64(wd)
			}
			return 7
		}},
	DayOfMonth: {"DayOfMonth", Days, Months, []int64{1, 28, 31},
		func(t time.Time) int64 { return int64(t.Day()) }},
	DayOfYear: {"DayOfYear", Days, Years, []int64{1, 365, 366},
		func(t time.Time) int64 { return int64(t.YearDay()) }},
	EpochDay: {"EpochDay", Days, Forever, []int64{-365_243_219_162, 365_241_780_471},
		func(t time.Time) int64 {
			y, m, d := t.Date()
			return floorDiv(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix(), secondsPerDay)
		}},
	MonthOfYear: {"MonthOfYear", Months, Years, []int64{1, 12},
		func(t time.Time) int64 { return int64(t.Month()) }},
	ProlepticMonth: {"ProlepticMonth", Months, Forever, []int64{MinYear * 12, MaxYear*12 + 11},
		func(t time.Time) int64 { return int64(t.Year())*12 + int64(t.Month()) - 1 }},
	Year: {"Year", Years, Forever, []int64{MinYear, MaxYear},
		func(t time.Time) int64 { return int64(t.Year()) }},
}

var _ TemporalField = DayOfMonth

func nativeSecondOfDay(t time.Time) int64 {
	return int64(t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second())
}

// Fields returns every ChronoField in catalogue order.
func Fields() []ChronoField {
	out := make([]ChronoField, len(fieldTable))
	for i := range fieldTable {
		out[i] = ChronoField(i)
	}
	return out
}

// FieldOf returns the field with the given name, as printed by String.
func FieldOf(name string) (ChronoField, error) {
	for i, info := range fieldTable {
		if info.name == name {
			return ChronoField(i), nil
		}
	}
	return 0, fmt.Errorf("%w: no field named %q", ErrInvalidArgument, name)
}

func (f ChronoField) info() fieldInfo {
	if int(f) >= len(fieldTable) {
		return fieldInfo{
			name:      fmt.Sprintf("ChronoField(%d)", f),
			baseUnit:  Forever,
			rangeUnit: Forever,
			bounds:    []int64{0, 0},
			native:    func(time.Time) int64 { return 0 },
		}
	}
	return fieldTable[f]
}

func (f ChronoField) BaseUnit() TemporalUnit { return f.info().baseUnit }

func (f ChronoField) RangeUnit() TemporalUnit { return f.info().rangeUnit }

// Range builds the field's ValueRange from its stored bounds: two
// bounds give a fixed range, three a variable maximum, four a fully
// variable range.
func (f ChronoField) Range() ValueRange {
	bounds := f.info().bounds
	if bounds[0] == bounds[len(bounds)-1] {
		return ValueRange{smallestMin: bounds[0], largestMin: bounds[0], smallestMax: bounds[0], largestMax: bounds[0]}
	}
	return mustRange(bounds...)
}

// IsDateBased is true when the field counts date units within a
// date-based or unbounded range.
func (f ChronoField) IsDateBased() bool {
	info := f.info()
	return info.baseUnit.IsDateBased() && (info.rangeUnit.IsDateBased() || info.rangeUnit == Forever)
}

// IsTimeBased is true when the field counts time units within at most
// a day.
func (f ChronoField) IsTimeBased() bool {
	info := f.info()
	return info.baseUnit.IsTimeBased() && (info.rangeUnit.IsTimeBased() || info.rangeUnit == Days)
}

// IsSupportedBy delegates to t.SupportsField.
func (f ChronoField) IsSupportedBy(t TemporalAccessor) bool {
	return t.SupportsField(f)
}

// FromNative reads the field from the wall clock of t.
func (f ChronoField) FromNative(t time.Time) int64 {
	return f.info().native(t)
}

// CheckValidValue returns v if it lies within the field's range.
func (f ChronoField) CheckValidValue(v int64) (int64, error) {
	return f.Range().CheckValidValue(v, f)
}

func (f ChronoField) String() string { return f.info().name }
