package types

import "time"

// Duration is a wire-safe exact amount of time: whole seconds plus a
// microsecond part in [0, 1_000_000).
type Duration struct {
	Seconds int64 `cramberry:"1"`
	Micros  int64 `cramberry:"2"`
}

// Period is a wire-safe calendar amount. The components are
// independently signed.
type Period struct {
	Years  int64 `cramberry:"1"`
	Months int64 `cramberry:"2"`
	Days   int64 `cramberry:"3"`
}

// DateTime is a wire-safe local date-time without a zone, at
// microsecond precision.
type DateTime struct {
	Year   int64 `cramberry:"1" validate:"min=-999999999,max=999999999"`
	Month  int32 `cramberry:"2" validate:"min=1,max=12"`
	Day    int32 `cramberry:"3" validate:"min=1,max=31"`
	Hour   int32 `cramberry:"4" validate:"min=0,max=23"`
	Minute int32 `cramberry:"5" validate:"min=0,max=59"`
	Second int32 `cramberry:"6" validate:"min=0,max=59"`
	Micro  int32 `cramberry:"7" validate:"min=0,max=999999"`
}

// DateTimeOf reads the wall clock of t. The location is dropped and
// nanoseconds are truncated to microseconds.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{
		Year:   int64(t.Year()),
		Month:  int32(t.Month()),
		Day:    int32(t.Day()),
		Hour:   int32(t.Hour()),
		Minute: int32(t.Minute()),
		Second: int32(t.Second()),
		Micro:  int32(t.Nanosecond() / 1000),
	}
}

// ToTime converts a DateTime to a time.Time in UTC. Out of range
// fields are normalized by time.Date.
func (dt DateTime) ToTime() time.Time {
	return time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second), int(dt.Micro)*1000, time.UTC)
}
