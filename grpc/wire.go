package chronogrpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/chrono"
)

// errorDomain tags the ErrorInfo detail attached to calculator
// failures, so clients can recover the chrono error kind.
const errorDomain = "chrono.blockberries.dev"

// errorKinds maps each chrono error kind to its status code and the
// reason carried on the wire. Overflow is listed first so that a
// DateTimeError caused by overflow reports OutOfRange.
var errorKinds = []struct {
	kind   error
	code   codes.Code
	reason string
}{
	{chrono.ErrArithmeticOverflow, codes.OutOfRange, "ARITHMETIC_OVERFLOW"},
	{chrono.ErrInvalidFormat, codes.InvalidArgument, "INVALID_FORMAT"},
	{chrono.ErrUnsupportedUnit, codes.InvalidArgument, "UNSUPPORTED_UNIT"},
	{chrono.ErrUnsupportedField, codes.InvalidArgument, "UNSUPPORTED_FIELD"},
	{chrono.ErrDateTime, codes.InvalidArgument, "DATE_TIME"},
	{chrono.ErrInvalidArgument, codes.InvalidArgument, "INVALID_ARGUMENT"},
}

// toStatus converts a calculator error into a gRPC status error.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	for _, k := range errorKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		st := status.New(k.code, err.Error())
		detailed, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: k.reason, Domain: errorDomain})
		if derr != nil {
			return st.Err()
		}
		return detailed.Err()
	}
	return status.Error(codes.Internal, err.Error())
}

// RemoteError is a calculator failure reported by a remote server. It
// matches the chrono error kind the server reported through errors.Is.
type RemoteError struct {
	Code    codes.Code
	Message string
	kind    error
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Is(target error) bool { return e.kind != nil && target == e.kind }

// GRPCStatus lets status.FromError and status.Code see the original
// status.
func (e *RemoteError) GRPCStatus() *status.Status { return status.New(e.Code, e.Message) }

// fromStatus converts a gRPC status error from the server back into a
// RemoteError. Errors without a status pass through unchanged.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	re := &RemoteError{Code: st.Code(), Message: st.Message()}
	switch st.Code() {
	case codes.Canceled:
		re.kind = context.Canceled
	case codes.DeadlineExceeded:
		re.kind = context.DeadlineExceeded
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		for _, k := range errorKinds {
			if k.reason == info.GetReason() {
				re.kind = k.kind
			}
		}
	}
	return re
}
