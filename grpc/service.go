package chronogrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/blockberries/chrono/types"
)

const serviceName = "blockberries.chrono.v1.Calculator"

// CalculatorServer is the server-side interface for the Calculator
// gRPC service.
type CalculatorServer interface {
	Parse(context.Context, *types.ParseRequest) (*types.ParseResult, error)
	Shift(context.Context, *types.ShiftRequest) (*types.ShiftResult, error)
	Normalize(context.Context, *types.NormalizeRequest) (*types.NormalizeResult, error)
}

// RegisterCalculatorServer registers srv on a gRPC server.
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorServer) {
	s.RegisterService(&serviceDesc, srv)
}

// unary builds the method descriptor for one request/response RPC.
// Interceptors installed on the gRPC server see the decoded request.
func unary[Req, Res any](method string, call func(CalculatorServer, context.Context, *Req) (*Res, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			req := new(Req)
			if err := dec(req); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CalculatorServer), ctx, req)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			return interceptor(ctx, req, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(CalculatorServer), ctx, req.(*Req))
			})
		},
	}
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the calculator.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Parse", CalculatorServer.Parse),
		unary("Shift", CalculatorServer.Shift),
		unary("Normalize", CalculatorServer.Normalize),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "github.com/blockberries/chrono/v1/calculator.cram",
}
