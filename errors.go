package chrono

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this module matches one of these
// through errors.Is. A DateTimeError also matches the kind of its cause.
var (
	ErrInvalidArgument    = errors.New("chrono: invalid argument")
	ErrInvalidFormat      = errors.New("chrono: invalid format")
	ErrUnsupportedUnit    = errors.New("chrono: unsupported unit")
	ErrUnsupportedField   = errors.New("chrono: unsupported field")
	ErrDateTime           = errors.New("chrono: date-time conversion failed")
	ErrArithmeticOverflow = errors.New("chrono: arithmetic overflow")
)

// UnsupportedUnitError reports a unit outside the receiver's supported set.
type UnsupportedUnitError struct {
	Unit TemporalUnit
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("Unsupported unit: %s", unitName(e.Unit))
}

func (e *UnsupportedUnitError) Is(target error) bool { return target == ErrUnsupportedUnit }

// UnsupportedFieldError reports a field outside the receiver's supported set.
type UnsupportedFieldError struct {
	Field TemporalField
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("Unsupported field: %s", fieldName(e.Field))
}

func (e *UnsupportedFieldError) Is(target error) bool { return target == ErrUnsupportedField }

// FormatError reports text that does not match an ISO-8601 grammar.
type FormatError struct {
	Kind   string // e.g. "ISO-8601 duration"
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Invalid %s string, got %q", e.Kind, e.Text)
	}
	return fmt.Sprintf("Invalid %s string, got %q: %s", e.Kind, e.Text, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

// RangeError reports a value outside a field's ValueRange, or malformed
// ValueRange bounds when Field is nil.
type RangeError struct {
	Field TemporalField
	Value int64
	Range string
	msg   string
}

func (e *RangeError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("Invalid value for %s (valid values %s): %d", fieldName(e.Field), e.Range, e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrInvalidArgument }

// DateTimeError wraps a failure converting to or from an external
// representation of time.
type DateTimeError struct {
	Op  string
	Err error
}

func (e *DateTimeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("chrono: %s", e.Op)
	}
	return fmt.Sprintf("chrono: %s: %v", e.Op, e.Err)
}

func (e *DateTimeError) Unwrap() error { return e.Err }

func (e *DateTimeError) Is(target error) bool { return target == ErrDateTime }

// ArithmeticError is the panic value of value-returning arithmetic that
// overflows int64. Error-returning operations convert it into an
// ordinary error.
type ArithmeticError struct {
	Op string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("chrono: %s overflows int64", e.Op)
}

func (e *ArithmeticError) Is(target error) bool { return target == ErrArithmeticOverflow }

// IsUnsupportedUnit checks whether err is an UnsupportedUnitError and returns it.
func IsUnsupportedUnit(err error) (*UnsupportedUnitError, bool) {
	var u *UnsupportedUnitError
	if errors.As(err, &u) {
		return u, true
	}
	return nil, false
}

// IsUnsupportedField checks whether err is an UnsupportedFieldError and returns it.
func IsUnsupportedField(err error) (*UnsupportedFieldError, bool) {
	var f *UnsupportedFieldError
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsFormat checks whether err is a FormatError and returns it.
func IsFormat(err error) (*FormatError, bool) {
	var f *FormatError
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func unsupportedUnit(unit TemporalUnit) error {
	return &UnsupportedUnitError{Unit: unit}
}

func unsupportedField(field TemporalField) error {
	return &UnsupportedFieldError{Field: field}
}

func unitName(u TemporalUnit) string {
	if u == nil {
		return "<nil>"
	}
	return u.String()
}

func fieldName(f TemporalField) string {
	if f == nil {
		return "<nil>"
	}
	return f.String()
}

// recoverOverflow converts an ArithmeticError panic into *errp. Other
// panics propagate.
func recoverOverflow(errp *error) {
	if r := recover(); r != nil {
		if ae, ok := r.(*ArithmeticError); ok {
			*errp = ae
			return
		}
		panic(r)
	}
}
