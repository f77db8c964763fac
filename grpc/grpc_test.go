package chronogrpc_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/blockberries/chrono"
	chronogrpc "github.com/blockberries/chrono/grpc"
	chronotest "github.com/blockberries/chrono/testing"
	"github.com/blockberries/chrono/types"
)

// startServer starts a gRPC server on a random port and returns
// the listener address and a cleanup function.
func startServer(t *testing.T, gs *chronogrpc.GRPCServer, opts ...grpc.ServerOption) (string, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := grpc.NewServer(opts...)
	gs.Register(s)

	go func() {
		// Serve returns nil after GracefulStop.
		_ = s.Serve(lis)
	}()

	return lis.Addr().String(), func() {
		s.GracefulStop()
	}
}

func dial(t *testing.T, addr string) *chronogrpc.Client {
	t.Helper()
	client, err := chronogrpc.Dial(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return client
}

func TestGRPC_Harness(t *testing.T) {
	addr, cleanup := startServer(t, chronogrpc.NewGRPCServer(nil))
	defer cleanup()

	h := chronotest.NewHarness(t, dial(t, addr))

	d := h.ParseDuration("PT36H")
	if d.Duration == nil || d.Duration.Seconds != 129_600 || d.Duration.Micros != 0 {
		t.Fatalf("unexpected duration %+v", d.Duration)
	}
	if d.Canonical != "P1DT12H" {
		t.Fatalf("expected canonical P1DT12H, got %q", d.Canonical)
	}
	if d.Period != nil {
		t.Fatalf("expected no period, got %+v", d.Period)
	}

	p := h.ParsePeriod("-P1Y2W")
	if p.Period == nil || *p.Period != (types.Period{Years: -1, Days: -14}) {
		t.Fatalf("unexpected period %+v", p.Period)
	}

	shifted := h.Plus(chronotest.Date(2024, 1, 31), types.AmountPeriod, "P1M")
	if shifted.Result != chronotest.Date(2024, 2, 29) {
		t.Fatalf("expected 2024-02-29, got %+v", shifted.Result)
	}
	if shifted.DayOfWeek != 4 {
		t.Fatalf("expected Thursday (4), got %d", shifted.DayOfWeek)
	}
	if shifted.Applied != "P1M" {
		t.Fatalf("expected applied P1M, got %q", shifted.Applied)
	}

	back := h.Minus(shifted.Result, types.AmountDuration, "PT1S")
	want := chronotest.Date(2024, 2, 28)
	want.Hour, want.Minute, want.Second = 23, 59, 59
	if back.Result != want {
		t.Fatalf("expected %+v, got %+v", want, back.Result)
	}

	n := h.Normalize(types.Period{Years: 1, Months: 15, Days: 40})
	if n.Period != (types.Period{Years: 2, Months: 3, Days: 40}) || n.TotalMonths != 27 {
		t.Fatalf("unexpected normalize result %+v", n)
	}
}

func TestGRPC_ErrorKinds(t *testing.T) {
	addr, cleanup := startServer(t, chronogrpc.NewGRPCServer(nil))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code codes.Code
		kind error
	}{
		{
			name: "bad text",
			call: func() error {
				_, err := client.Parse(ctx, types.ParseRequest{Kind: types.AmountDuration, Text: "P1Y"})
				return err
			},
			code: codes.InvalidArgument,
			kind: chrono.ErrInvalidFormat,
		},
		{
			name: "unknown kind",
			call: func() error {
				_, err := client.Parse(ctx, types.ParseRequest{Kind: 9, Text: "P1D"})
				return err
			},
			code: codes.InvalidArgument,
			kind: chrono.ErrInvalidArgument,
		},
		{
			name: "nonexistent date",
			call: func() error {
				_, err := client.Shift(ctx, types.ShiftRequest{
					Start:  chronotest.Date(2023, 2, 29),
					Op:     types.ShiftPlus,
					Kind:   types.AmountPeriod,
					Amount: "P1D",
				})
				return err
			},
			code: codes.InvalidArgument,
			kind: chrono.ErrDateTime,
		},
		{
			name: "overflow",
			call: func() error {
				_, err := client.Normalize(ctx, types.NormalizeRequest{Period: types.Period{Years: 1 << 62}})
				return err
			},
			code: codes.OutOfRange,
			kind: chrono.ErrArithmeticOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := status.Code(err); got != tt.code {
				t.Fatalf("expected code %v, got %v (%v)", tt.code, got, err)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected errors.Is(err, %v), got %v", tt.kind, err)
			}
			var re *chronogrpc.RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("expected a RemoteError, got %T", err)
			}
		})
	}
}

func TestGRPC_CanceledContext(t *testing.T) {
	addr, cleanup := startServer(t, chronogrpc.NewGRPCServer(nil))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Parse(ctx, types.ParseRequest{Kind: types.AmountPeriod, Text: "P1D"})
	if status.Code(err) != codes.Canceled {
		t.Fatalf("expected Canceled, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected errors.Is(err, context.Canceled), got %v", err)
	}
}

func TestGRPC_Interceptor(t *testing.T) {
	var (
		mu      sync.Mutex
		methods []string
	)
	record := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		mu.Lock()
		methods = append(methods, info.FullMethod)
		mu.Unlock()
		return handler(ctx, req)
	}
	addr, cleanup := startServer(t, chronogrpc.NewGRPCServer(nil), grpc.UnaryInterceptor(record))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ctx := context.Background()
	if _, err := client.Parse(ctx, types.ParseRequest{Kind: types.AmountPeriod, Text: "P1D"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := client.Normalize(ctx, types.NormalizeRequest{Period: types.Period{Months: 13}}); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{
		"/blockberries.chrono.v1.Calculator/Parse",
		"/blockberries.chrono.v1.Calculator/Normalize",
	}
	if len(methods) != len(want) {
		t.Fatalf("expected %d intercepted calls, got %v", len(want), methods)
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], methods[i])
		}
	}
}

func TestGRPC_ConcurrentClients(t *testing.T) {
	addr, cleanup := startServer(t, chronogrpc.NewGRPCServer(nil))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := client.Normalize(context.Background(), types.NormalizeRequest{Period: types.Period{Months: int64(i)}})
			if err != nil {
				errs <- err
				return
			}
			if res.TotalMonths != int64(i) {
				errs <- errors.New("total months mismatch")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
