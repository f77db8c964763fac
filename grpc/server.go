package chronogrpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/blockberries/chrono/server"
	"github.com/blockberries/chrono/types"
)

// Compile-time interface check.
var _ CalculatorServer = (*GRPCServer)(nil)

// GRPCServer exposes a Calculator as a gRPC service. Requests and
// results are serialized directly via cramberry.
type GRPCServer struct {
	calc server.Calculator
}

// NewGRPCServer wraps calc. A nil calc gets a server.Server with
// default options.
func NewGRPCServer(calc server.Calculator) *GRPCServer {
	if calc == nil {
		calc = server.New()
	}
	return &GRPCServer{calc: calc}
}

// Register adds the Calculator service to a gRPC server.
func (s *GRPCServer) Register(gs grpc.ServiceRegistrar) {
	RegisterCalculatorServer(gs, s)
}

// Serve starts a new gRPC server on the given listener.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// Calculator returns the wrapped calculator.
func (s *GRPCServer) Calculator() server.Calculator {
	return s.calc
}

func (s *GRPCServer) Parse(ctx context.Context, req *types.ParseRequest) (*types.ParseResult, error) {
	res, err := s.calc.Parse(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &res, nil
}

func (s *GRPCServer) Shift(ctx context.Context, req *types.ShiftRequest) (*types.ShiftResult, error) {
	res, err := s.calc.Shift(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &res, nil
}

func (s *GRPCServer) Normalize(ctx context.Context, req *types.NormalizeRequest) (*types.NormalizeResult, error) {
	res, err := s.calc.Normalize(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &res, nil
}
