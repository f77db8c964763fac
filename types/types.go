// Package types defines the wire representation of chrono amounts and
// of the requests served by the amount calculator.
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. Transport concerns
// (gRPC codec registration) are handled in the transport packages.
package types

// AmountKind selects which kind of amount a text holds.
type AmountKind uint8

const (
	// AmountDuration is an exact ISO-8601 duration such as "PT1H30M".
	AmountDuration AmountKind = 1
	// AmountPeriod is a calendar ISO-8601 period such as "P1Y2M".
	AmountPeriod AmountKind = 2
)

// String returns a human-readable representation.
func (k AmountKind) String() string {
	switch k {
	case AmountDuration:
		return "duration"
	case AmountPeriod:
		return "period"
	default:
		return "unknown"
	}
}

// ShiftOp is the direction an amount is applied in.
type ShiftOp uint8

const (
	ShiftPlus  ShiftOp = 1
	ShiftMinus ShiftOp = 2
)

func (op ShiftOp) String() string {
	switch op {
	case ShiftPlus:
		return "plus"
	case ShiftMinus:
		return "minus"
	default:
		return "unknown"
	}
}
