package chronogrpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/chrono"
)

func TestStatusRoundTrip(t *testing.T) {
	_, parseErr := chrono.ParsePeriod("P1.5Y")
	overflowInDateTime := &chrono.DateTimeError{Op: "convert", Err: &chrono.ArithmeticError{Op: "duration nanos"}}

	tests := []struct {
		name string
		err  error
		code codes.Code
		kind error
	}{
		{"format", fmt.Errorf("chrono server: parse: %w", parseErr), codes.InvalidArgument, chrono.ErrInvalidFormat},
		{"unit", &chrono.UnsupportedUnitError{Unit: chrono.Forever}, codes.InvalidArgument, chrono.ErrUnsupportedUnit},
		{"field", &chrono.UnsupportedFieldError{Field: chrono.Year}, codes.InvalidArgument, chrono.ErrUnsupportedField},
		{"range", &chrono.RangeError{Field: chrono.MonthOfYear, Value: 13, Range: "1 - 12"}, codes.InvalidArgument, chrono.ErrInvalidArgument},
		{"date time", &chrono.DateTimeError{Op: "invalid date"}, codes.InvalidArgument, chrono.ErrDateTime},
		{"overflow", &chrono.ArithmeticError{Op: "period total months"}, codes.OutOfRange, chrono.ErrArithmeticOverflow},
		{"overflow cause", overflowInDateTime, codes.OutOfRange, chrono.ErrArithmeticOverflow},
		{"canceled", fmt.Errorf("chrono server: shift: %w", context.Canceled), codes.Canceled, context.Canceled},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := toStatus(tt.err)
			if got := status.Code(wire); got != tt.code {
				t.Fatalf("expected code %v, got %v", tt.code, got)
			}
			if got := status.Convert(wire).Message(); got != tt.err.Error() {
				t.Fatalf("expected message %q, got %q", tt.err.Error(), got)
			}

			back := fromStatus(wire)
			if !errors.Is(back, tt.kind) {
				t.Fatalf("expected errors.Is(%v, %v)", back, tt.kind)
			}
			if status.Code(back) != tt.code {
				t.Fatalf("expected RemoteError to keep code %v", tt.code)
			}
		})
	}
}

func TestStatus_Internal(t *testing.T) {
	wire := toStatus(errors.New("boom"))
	if status.Code(wire) != codes.Internal {
		t.Fatalf("expected Internal, got %v", wire)
	}
	back := fromStatus(wire)
	for _, k := range errorKinds {
		if errors.Is(back, k.kind) {
			t.Fatalf("internal error should match no chrono kind, matched %v", k.kind)
		}
	}
}

func TestStatus_Passthrough(t *testing.T) {
	if toStatus(nil) != nil || fromStatus(nil) != nil {
		t.Fatal("nil errors must stay nil")
	}
	plain := errors.New("transport closed")
	if got := fromStatus(plain); got != plain {
		t.Fatalf("non-status errors must pass through, got %v", got)
	}

	// A status from another service carries no chrono detail.
	foreign := status.Error(codes.InvalidArgument, "bad")
	if errors.Is(fromStatus(foreign), chrono.ErrInvalidArgument) {
		t.Fatal("status without detail must not match a chrono kind")
	}
}
