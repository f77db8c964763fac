// Package chronotest provides test utilities for chrono: a configurable
// Temporal mock, a harness around the amount calculator, and a suite
// that checks a Temporal implementation against the protocol laws.
package chronotest

import (
	"sync"
	"sync/atomic"

	"github.com/blockberries/chrono"
)

// Compile-time interface check.
var _ chrono.Temporal = (*MockTemporal)(nil)

// Call is one Plus or Minus call seen by a MockTemporal.
type Call struct {
	Method string // "Plus" or "Minus"
	Amount int64
	Unit   chrono.TemporalUnit
}

// MockTemporal is a configurable Temporal for testing amounts. All
// methods are configurable via function fields. Unconfigured methods
// support every ChronoUnit except Forever and no fields, and Plus and
// Minus return the mock itself, so the calls an amount makes can be
// read back from Calls in order.
type MockTemporal struct {
	mu    sync.Mutex
	calls []Call

	// Configurable handlers. If nil, defaults are used.
	SupportsFieldFn func(chrono.TemporalField) bool
	GetFn           func(chrono.TemporalField) (int64, error)
	SupportsUnitFn  func(chrono.TemporalUnit) bool
	PlusFn          func(int64, chrono.TemporalUnit) (chrono.Temporal, error)
	MinusFn         func(int64, chrono.TemporalUnit) (chrono.Temporal, error)

	// Call counters (atomic for concurrent access).
	GetCalls   atomic.Int64
	PlusCalls  atomic.Int64
	MinusCalls atomic.Int64
}

func (m *MockTemporal) SupportsField(field chrono.TemporalField) bool {
	if m.SupportsFieldFn != nil {
		return m.SupportsFieldFn(field)
	}
	return false
}

func (m *MockTemporal) Get(field chrono.TemporalField) (int64, error) {
	m.GetCalls.Add(1)
	if m.GetFn != nil {
		return m.GetFn(field)
	}
	if !m.SupportsField(field) {
		return 0, &chrono.UnsupportedFieldError{Field: field}
	}
	return 0, nil
}

func (m *MockTemporal) SupportsUnit(unit chrono.TemporalUnit) bool {
	if m.SupportsUnitFn != nil {
		return m.SupportsUnitFn(unit)
	}
	cu, ok := unit.(chrono.ChronoUnit)
	return ok && cu != chrono.Forever
}

func (m *MockTemporal) Plus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	m.PlusCalls.Add(1)
	m.record("Plus", amount, unit)
	if m.PlusFn != nil {
		return m.PlusFn(amount, unit)
	}
	if !m.SupportsUnit(unit) {
		return nil, &chrono.UnsupportedUnitError{Unit: unit}
	}
	return m, nil
}

func (m *MockTemporal) Minus(amount int64, unit chrono.TemporalUnit) (chrono.Temporal, error) {
	m.MinusCalls.Add(1)
	m.record("Minus", amount, unit)
	if m.MinusFn != nil {
		return m.MinusFn(amount, unit)
	}
	if !m.SupportsUnit(unit) {
		return nil, &chrono.UnsupportedUnitError{Unit: unit}
	}
	return m, nil
}

func (m *MockTemporal) PlusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.AddTo(m)
}

func (m *MockTemporal) MinusAmount(amount chrono.TemporalAmount) (chrono.Temporal, error) {
	return amount.SubtractFrom(m)
}

func (m *MockTemporal) record(method string, amount int64, unit chrono.TemporalUnit) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: method, Amount: amount, Unit: unit})
}

// Calls returns a copy of the Plus and Minus calls made so far.
func (m *MockTemporal) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears the recorded calls and counters.
func (m *MockTemporal) Reset() {
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
	m.GetCalls.Store(0)
	m.PlusCalls.Store(0)
	m.MinusCalls.Store(0)
}
