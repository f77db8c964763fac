// Package chrono defines calendar-neutral amounts of time and the
// protocol through which point-in-time types are queried and moved.
//
// Two amounts are provided: [Duration], an exact number of seconds and
// microseconds, and [Period], a calendar-relative number of years,
// months and days. Both implement [TemporalAmount] and can be applied
// to any [Temporal]. The [ChronoUnit] and [ChronoField] catalogues
// describe the units and fields a temporal may support; custom units
// and fields implement [TemporalUnit] and [TemporalField].
//
// All values are immutable. Every "mutating" method returns a new value.
package chrono

import "time"

// TemporalAccessor is the read-only view of a point in time.
type TemporalAccessor interface {
	// SupportsField reports whether Get can be called with field.
	SupportsField(field TemporalField) bool

	// Get returns the value of field. It fails with an
	// UnsupportedFieldError when SupportsField(field) is false.
	Get(field TemporalField) (int64, error)
}

// Temporal is a point in time that can be moved by units and amounts.
//
// Every method returns a new value of the implementation's own concrete
// type; use [Add] and [Subtract] to recover that type without a type
// assertion.
type Temporal interface {
	TemporalAccessor

	// SupportsUnit reports whether Plus and Minus accept unit.
	SupportsUnit(unit TemporalUnit) bool

	// Plus returns a copy advanced by amount of unit.
	Plus(amount int64, unit TemporalUnit) (Temporal, error)

	// Minus returns a copy moved back by amount of unit.
	Minus(amount int64, unit TemporalUnit) (Temporal, error)

	// PlusAmount returns amount.AddTo(self).
	PlusAmount(amount TemporalAmount) (Temporal, error)

	// MinusAmount returns amount.SubtractFrom(self).
	MinusAmount(amount TemporalAmount) (Temporal, error)
}

// TemporalAmount is an amount of time expressed as values over a fixed,
// ordered list of units. AddTo and SubtractFrom walk that list and call
// back into Temporal.Plus and Temporal.Minus.
type TemporalAmount interface {
	// Units returns the units the amount is defined over, in the order
	// AddTo applies them.
	Units() []TemporalUnit

	// Get returns the value for one of the amount's units.
	Get(unit TemporalUnit) (int64, error)

	// AddTo returns t advanced by this amount.
	AddTo(t Temporal) (Temporal, error)

	// SubtractFrom returns t moved back by this amount.
	SubtractFrom(t Temporal) (Temporal, error)
}

// TemporalUnit is a unit of time such as days or seconds.
type TemporalUnit interface {
	IsDateBased() bool
	IsTimeBased() bool

	// IsDurationEstimated reports whether Duration is an approximation.
	IsDurationEstimated() bool

	// Duration returns the exact or estimated length of the unit.
	Duration() (Duration, error)

	// IsSupportedBy reports whether t accepts this unit. It delegates
	// to t.SupportsUnit.
	IsSupportedBy(t Temporal) bool

	String() string
}

// TemporalField is a queryable component of a point in time, such as
// day-of-month.
type TemporalField interface {
	// BaseUnit is the unit the field is measured in.
	BaseUnit() TemporalUnit

	// RangeUnit is the unit the field is bounded by.
	RangeUnit() TemporalUnit

	// Range returns the legal values of the field.
	Range() ValueRange

	IsDateBased() bool
	IsTimeBased() bool

	// IsSupportedBy reports whether t can return this field. It
	// delegates to t.SupportsField.
	IsSupportedBy(t TemporalAccessor) bool

	// FromNative extracts the field from a standard library time.
	FromNative(t time.Time) int64

	String() string
}

// Add applies amount to t and returns the result as t's own type.
func Add[T Temporal](t T, amount TemporalAmount) (T, error) {
	return sameType(t, amount.AddTo)
}

// Subtract removes amount from t and returns the result as t's own type.
func Subtract[T Temporal](t T, amount TemporalAmount) (T, error) {
	return sameType(t, amount.SubtractFrom)
}

func sameType[T Temporal](t T, apply func(Temporal) (Temporal, error)) (T, error) {
	var zero T
	res, err := apply(t)
	if err != nil {
		return zero, err
	}
	out, ok := res.(T)
	if !ok {
		return zero, &DateTimeError{Op: "temporal arithmetic changed the concrete type"}
	}
	return out, nil
}
