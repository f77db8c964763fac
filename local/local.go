// Package local provides an in-process calculator connection.
//
// For callers compiled into the same binary as the calculator, this
// adapter exposes a server.Server through the Calculator interface
// with no serialization overhead. Requests still pass through the
// server's validation and logging.
package local

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/blockberries/chrono/server"
	"github.com/blockberries/chrono/types"
)

// ErrClosed is returned by calls made after Close.
var ErrClosed = errors.New("chrono local: connection closed")

// Compile-time interface check.
var _ server.Calculator = (*Connection)(nil)

// Connection is an in-process Calculator.
type Connection struct {
	srv    *server.Server
	closed atomic.Bool
}

// NewConnection creates an in-process connection to a new
// server.Server configured with opts.
func NewConnection(opts ...server.Option) *Connection {
	return &Connection{srv: server.New(opts...)}
}

func (c *Connection) Parse(ctx context.Context, req types.ParseRequest) (types.ParseResult, error) {
	if c.closed.Load() {
		return types.ParseResult{}, ErrClosed
	}
	return c.srv.Parse(ctx, req)
}

func (c *Connection) Shift(ctx context.Context, req types.ShiftRequest) (types.ShiftResult, error) {
	if c.closed.Load() {
		return types.ShiftResult{}, ErrClosed
	}
	return c.srv.Shift(ctx, req)
}

func (c *Connection) Normalize(ctx context.Context, req types.NormalizeRequest) (types.NormalizeResult, error) {
	if c.closed.Load() {
		return types.NormalizeResult{}, ErrClosed
	}
	return c.srv.Normalize(ctx, req)
}

// Close marks the connection closed. It is safe to call more than once.
func (c *Connection) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.srv.Close()
}

// Server returns the underlying server for advanced use cases.
func (c *Connection) Server() *server.Server {
	return c.srv
}
