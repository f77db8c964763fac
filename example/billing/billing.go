// Package billing computes subscription billing dates. It shows how a
// Period cycle and a Duration grace window drive calendar arithmetic,
// both directly through the chrono packages and remotely through a
// server.Calculator.
//
// Due dates are always computed from the anchor, never chained from the
// previous invoice: a plan anchored on January 31 bills on February 29
// and then March 31, not March 29.
package billing

import (
	"context"
	"fmt"

	"github.com/blockberries/chrono"
	"github.com/blockberries/chrono/calendar"
	"github.com/blockberries/chrono/server"
	"github.com/blockberries/chrono/types"
)

// maxScan bounds the invoices InvoiceAt walks through.
const maxScan = 1_000_000

// Plan is a billing plan: one invoice per Cycle, payable until Grace
// after it falls due.
type Plan struct {
	Name  string
	Cycle chrono.Period
	Grace chrono.Duration
}

// Validate checks that the cycle moves forward and the grace window is
// not negative.
func (p Plan) Validate() error {
	if p.Cycle.IsZero() || p.Cycle.IsNegative() {
		return fmt.Errorf("billing: %w: plan %q: cycle must be positive, got %s", chrono.ErrInvalidArgument, p.Name, p.Cycle)
	}
	if p.Grace.IsNegative() {
		return fmt.Errorf("billing: %w: plan %q: grace must not be negative, got %s", chrono.ErrInvalidArgument, p.Name, p.Grace)
	}
	return nil
}

// ParsePlan builds a plan from ISO-8601 text, parsed by calc.
func ParsePlan(ctx context.Context, calc server.Calculator, name, cycle, grace string) (Plan, error) {
	c, err := calc.Parse(ctx, types.ParseRequest{Kind: types.AmountPeriod, Text: cycle})
	if err != nil {
		return Plan{}, fmt.Errorf("billing: plan %q cycle: %w", name, err)
	}
	g, err := calc.Parse(ctx, types.ParseRequest{Kind: types.AmountDuration, Text: grace})
	if err != nil {
		return Plan{}, fmt.Errorf("billing: plan %q grace: %w", name, err)
	}
	d, err := chrono.DurationOfWire(*g.Duration)
	if err != nil {
		return Plan{}, fmt.Errorf("billing: plan %q grace: %w", name, err)
	}
	p := Plan{Name: name, Cycle: chrono.PeriodOfWire(*c.Period), Grace: d}
	return p, p.Validate()
}

// Invoice is one billing event. Numbers start at 1.
type Invoice struct {
	Number    int
	Due       calendar.LocalDateTime
	GraceEnds calendar.LocalDateTime
}

// Schedule lists the invoices of a plan from an anchor date-time.
// It is immutable and safe for concurrent use.
type Schedule struct {
	plan   Plan
	anchor calendar.LocalDateTime
}

// NewSchedule validates plan and anchors it at the first due date.
func NewSchedule(plan Plan, anchor calendar.LocalDateTime) (*Schedule, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &Schedule{plan: plan, anchor: anchor}, nil
}

func (s *Schedule) Plan() Plan { return s.plan }

func (s *Schedule) Anchor() calendar.LocalDateTime { return s.anchor }

// Invoice returns invoice n.
func (s *Schedule) Invoice(n int) (Invoice, error) {
	if n < 1 {
		return Invoice{}, fmt.Errorf("billing: %w: invoice number %d", chrono.ErrInvalidArgument, n)
	}
	due, err := s.due(n)
	if err != nil {
		return Invoice{}, fmt.Errorf("billing: invoice %d: %w", n, err)
	}
	grace, err := chrono.Add(due, s.plan.Grace)
	if err != nil {
		return Invoice{}, fmt.Errorf("billing: invoice %d grace: %w", n, err)
	}
	return Invoice{Number: n, Due: due, GraceEnds: grace}, nil
}

// Invoices returns the first n invoices.
func (s *Schedule) Invoices(n int) ([]Invoice, error) {
	out := make([]Invoice, 0, n)
	for i := 1; i <= n; i++ {
		inv, err := s.Invoice(i)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

// InvoiceAt returns the latest invoice due at or before at.
func (s *Schedule) InvoiceAt(at calendar.LocalDateTime) (Invoice, error) {
	if at.IsBefore(s.anchor) {
		return Invoice{}, fmt.Errorf("billing: %w: %s is before the first invoice", chrono.ErrInvalidArgument, at)
	}
	for n := 2; n <= maxScan; n++ {
		due, err := s.due(n)
		if err != nil {
			return Invoice{}, fmt.Errorf("billing: invoice %d: %w", n, err)
		}
		if due.IsAfter(at) {
			return s.Invoice(n - 1)
		}
	}
	return Invoice{}, fmt.Errorf("billing: %w: %s is more than %d cycles after the anchor", chrono.ErrInvalidArgument, at, maxScan)
}

// due returns anchor + cycle × (n-1).
func (s *Schedule) due(n int) (due calendar.LocalDateTime, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*chrono.ArithmeticError)
			if !ok {
				panic(r)
			}
			err = ae
		}
	}()
	return chrono.Add(s.anchor, s.plan.Cycle.MultipliedBy(int64(n-1)))
}

// RemoteDue computes the due date of invoice n through calc, so the
// result matches whatever calculator the caller is connected to.
func (s *Schedule) RemoteDue(ctx context.Context, calc server.Calculator, n int) (calendar.LocalDateTime, error) {
	if n < 1 {
		return calendar.LocalDateTime{}, fmt.Errorf("billing: %w: invoice number %d", chrono.ErrInvalidArgument, n)
	}
	res, err := calc.Shift(ctx, types.ShiftRequest{
		Start:  server.WireOfLocalDateTime(s.anchor),
		Op:     types.ShiftPlus,
		Kind:   types.AmountPeriod,
		Amount: s.plan.Cycle.MultipliedBy(int64(n - 1)).String(),
	})
	if err != nil {
		return calendar.LocalDateTime{}, fmt.Errorf("billing: invoice %d: %w", n, err)
	}
	return server.LocalDateTimeOfWire(res.Result)
}
