package chronotest

import (
	"context"
	"testing"

	"github.com/blockberries/chrono/server"
	"github.com/blockberries/chrono/types"
)

// Harness drives a Calculator from tests, failing the test on any
// unexpected error.
type Harness struct {
	t    *testing.T
	calc server.Calculator
}

// NewHarness creates a test harness around calc. A nil calc gets a
// fresh server.Server.
func NewHarness(t *testing.T, calc server.Calculator) *Harness {
	t.Helper()
	if calc == nil {
		calc = server.New()
	}
	t.Cleanup(func() {
		if err := calc.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return &Harness{t: t, calc: calc}
}

// Calculator returns the underlying calculator for direct access.
func (h *Harness) Calculator() server.Calculator {
	return h.calc
}

// ParseDuration parses text as a duration.
func (h *Harness) ParseDuration(text string) types.ParseResult {
	h.t.Helper()
	return h.parse(types.AmountDuration, text)
}

// ParsePeriod parses text as a period.
func (h *Harness) ParsePeriod(text string) types.ParseResult {
	h.t.Helper()
	return h.parse(types.AmountPeriod, text)
}

func (h *Harness) parse(kind types.AmountKind, text string) types.ParseResult {
	h.t.Helper()
	res, err := h.calc.Parse(context.Background(), types.ParseRequest{Kind: kind, Text: text})
	if err != nil {
		h.t.Fatalf("Parse (%s %q) failed: %v", kind, text, err)
	}
	return res
}

// Plus shifts start forward by the amount text.
func (h *Harness) Plus(start types.DateTime, kind types.AmountKind, amount string) types.ShiftResult {
	h.t.Helper()
	return h.shift(start, types.ShiftPlus, kind, amount)
}

// Minus shifts start back by the amount text.
func (h *Harness) Minus(start types.DateTime, kind types.AmountKind, amount string) types.ShiftResult {
	h.t.Helper()
	return h.shift(start, types.ShiftMinus, kind, amount)
}

func (h *Harness) shift(start types.DateTime, op types.ShiftOp, kind types.AmountKind, amount string) types.ShiftResult {
	h.t.Helper()
	res, err := h.calc.Shift(context.Background(), types.ShiftRequest{Start: start, Op: op, Kind: kind, Amount: amount})
	if err != nil {
		h.t.Fatalf("Shift (%s %s %q) failed: %v", op, kind, amount, err)
	}
	return res
}

// Normalize normalizes p.
func (h *Harness) Normalize(p types.Period) types.NormalizeResult {
	h.t.Helper()
	res, err := h.calc.Normalize(context.Background(), types.NormalizeRequest{Period: p})
	if err != nil {
		h.t.Fatalf("Normalize (%+v) failed: %v", p, err)
	}
	return res
}

// ExpectParseError parses text and fails the test unless it is
// rejected.
func (h *Harness) ExpectParseError(kind types.AmountKind, text string) error {
	h.t.Helper()
	_, err := h.calc.Parse(context.Background(), types.ParseRequest{Kind: kind, Text: text})
	if err == nil {
		h.t.Fatalf("Parse (%s %q) succeeded, want error", kind, text)
	}
	return err
}

// Date returns the wire form of a midnight date.
func Date(year int64, month, day int32) types.DateTime {
	return types.DateTime{Year: year, Month: month, Day: day}
}
