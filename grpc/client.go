package chronogrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/blockberries/chrono/server"
	"github.com/blockberries/chrono/types"
)

// Compile-time interface check.
var _ server.Calculator = (*Client)(nil)

// Client implements server.Calculator for a remote calculator over
// gRPC using cramberry serialization. Failures come back as
// *RemoteError and match the chrono error kinds.
type Client struct {
	cc *grpc.ClientConn
}

// Dial creates a client for the calculator at addr. The connection is
// established lazily on the first call.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("chrono client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) Parse(ctx context.Context, req types.ParseRequest) (types.ParseResult, error) {
	resp := new(types.ParseResult)
	if err := c.cc.Invoke(ctx, fullMethod("Parse"), &req, resp); err != nil {
		return types.ParseResult{}, fromStatus(err)
	}
	return *resp, nil
}

func (c *Client) Shift(ctx context.Context, req types.ShiftRequest) (types.ShiftResult, error) {
	resp := new(types.ShiftResult)
	if err := c.cc.Invoke(ctx, fullMethod("Shift"), &req, resp); err != nil {
		return types.ShiftResult{}, fromStatus(err)
	}
	return *resp, nil
}

func (c *Client) Normalize(ctx context.Context, req types.NormalizeRequest) (types.NormalizeResult, error) {
	resp := new(types.NormalizeResult)
	if err := c.cc.Invoke(ctx, fullMethod("Normalize"), &req, resp); err != nil {
		return types.NormalizeResult{}, fromStatus(err)
	}
	return *resp, nil
}
