package chronotest

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/blockberries/chrono"
)

// RunComplianceSuite runs a standard compliance test suite against a
// Temporal implementation to verify that it follows the protocol.
//
// The factory function should return the value under test. It is
// called once per subtest.
func RunComplianceSuite(t *testing.T, factory func() chrono.Temporal) {
	t.Helper()

	t.Run("unsupported_fields_fail", func(t *testing.T) {
		tp := factory()
		for _, f := range chrono.Fields() {
			if tp.SupportsField(f) {
				continue
			}
			_, err := tp.Get(f)
			if !errors.Is(err, chrono.ErrUnsupportedField) {
				t.Errorf("Get(%s): expected ErrUnsupportedField, got %v", f, err)
			}
		}
	})

	t.Run("supported_fields_in_range", func(t *testing.T) {
		tp := factory()
		for _, f := range chrono.Fields() {
			if !tp.SupportsField(f) {
				continue
			}
			v, err := tp.Get(f)
			if err != nil {
				t.Errorf("Get(%s): %v", f, err)
				continue
			}
			if !f.Range().IsValidValue(v) {
				t.Errorf("Get(%s) = %d, outside %s", f, v, f.Range())
			}
		}
	})

	t.Run("unsupported_units_fail", func(t *testing.T) {
		tp := factory()
		for _, u := range chrono.Units() {
			if tp.SupportsUnit(u) {
				continue
			}
			if _, err := tp.Plus(1, u); !errors.Is(err, chrono.ErrUnsupportedUnit) {
				t.Errorf("Plus(1, %s): expected ErrUnsupportedUnit, got %v", u, err)
			}
			if _, err := tp.Minus(1, u); !errors.Is(err, chrono.ErrUnsupportedUnit) {
				t.Errorf("Minus(1, %s): expected ErrUnsupportedUnit, got %v", u, err)
			}
		}
	})

	t.Run("is_supported_by_delegates", func(t *testing.T) {
		tp := factory()
		for _, u := range chrono.Units() {
			if u.IsSupportedBy(tp) != tp.SupportsUnit(u) {
				t.Errorf("%s.IsSupportedBy disagrees with SupportsUnit", u)
			}
		}
		for _, f := range chrono.Fields() {
			if f.IsSupportedBy(tp) != tp.SupportsField(f) {
				t.Errorf("%s.IsSupportedBy disagrees with SupportsField", f)
			}
		}
	})

	t.Run("zero_is_identity", func(t *testing.T) {
		tp := factory()
		want := snapshot(t, tp)
		for _, u := range supportedUnits(tp) {
			got, err := tp.Plus(0, u)
			if err != nil {
				t.Errorf("Plus(0, %s): %v", u, err)
				continue
			}
			expectSame(t, "Plus(0, "+u.String()+")", want, snapshot(t, got))
		}
		for _, amount := range []chrono.TemporalAmount{chrono.ZeroDuration(), chrono.ZeroPeriod()} {
			got, err := tp.PlusAmount(amount)
			if err != nil {
				t.Errorf("PlusAmount(zero): %v", err)
				continue
			}
			expectSame(t, "PlusAmount(zero)", want, snapshot(t, got))
		}
	})

	t.Run("plus_keeps_type", func(t *testing.T) {
		tp := factory()
		for _, u := range supportedUnits(tp) {
			got, err := tp.Plus(1, u)
			if err != nil {
				t.Errorf("Plus(1, %s): %v", u, err)
				continue
			}
			if reflect.TypeOf(got) != reflect.TypeOf(tp) {
				t.Errorf("Plus(1, %s) returned %T, want %T", u, got, tp)
			}
		}
	})

	t.Run("plus_minus_inverse", func(t *testing.T) {
		tp := factory()
		want := snapshot(t, tp)
		for _, u := range supportedUnits(tp) {
			// Calendar units may clamp the day-of-month.
			if u.IsDurationEstimated() && u != chrono.Days && u != chrono.Weeks {
				continue
			}
			moved, err := tp.Plus(3, u)
			if err != nil {
				t.Errorf("Plus(3, %s): %v", u, err)
				continue
			}
			back, err := moved.Minus(3, u)
			if err != nil {
				t.Errorf("Minus(3, %s): %v", u, err)
				continue
			}
			expectSame(t, "Plus(3, "+u.String()+").Minus", want, snapshot(t, back))
		}
	})

	t.Run("plus_amount_matches_add_to", func(t *testing.T) {
		tp := factory()
		amounts := []chrono.TemporalAmount{
			chrono.DurationOfSeconds(90061, 500_000),
			chrono.PeriodOf(1, 2, 3),
		}
		for _, amount := range amounts {
			direct, err1 := tp.PlusAmount(amount)
			viaAmount, err2 := amount.AddTo(tp)
			if (err1 == nil) != (err2 == nil) {
				t.Errorf("PlusAmount(%v) and AddTo disagree: %v vs %v", amount, err1, err2)
				continue
			}
			if err1 != nil {
				continue
			}
			expectSame(t, "PlusAmount", snapshot(t, viaAmount), snapshot(t, direct))

			back, err := direct.MinusAmount(chrono.ZeroPeriod())
			if err != nil {
				t.Errorf("MinusAmount(zero): %v", err)
				continue
			}
			expectSame(t, "MinusAmount(zero)", snapshot(t, direct), snapshot(t, back))
		}
	})

	t.Run("concurrent_plus_leaves_receiver", func(t *testing.T) {
		tp := factory()
		want := snapshot(t, tp)
		units := supportedUnits(tp)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for _, u := range units {
					if _, err := tp.Plus(int64(i), u); err != nil {
						t.Errorf("concurrent Plus(%d, %s): %v", i, u, err)
					}
				}
			}(i)
		}
		wg.Wait()
		expectSame(t, "receiver after concurrent Plus", want, snapshot(t, tp))
	})
}

func supportedUnits(tp chrono.Temporal) []chrono.ChronoUnit {
	var out []chrono.ChronoUnit
	for _, u := range chrono.Units() {
		if tp.SupportsUnit(u) {
			out = append(out, u)
		}
	}
	return out
}

// snapshot reads every supported ChronoField.
func snapshot(t *testing.T, tp chrono.TemporalAccessor) map[chrono.ChronoField]int64 {
	t.Helper()
	out := make(map[chrono.ChronoField]int64)
	for _, f := range chrono.Fields() {
		if !tp.SupportsField(f) {
			continue
		}
		v, err := tp.Get(f)
		if err != nil {
			t.Fatalf("Get(%s): %v", f, err)
		}
		out[f] = v
	}
	return out
}

func expectSame(t *testing.T, what string, want, got map[chrono.ChronoField]int64) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("%s: fields changed: want %v, got %v", what, want, got)
	}
}
