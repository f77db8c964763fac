package calendar

import (
	"math"

	"github.com/blockberries/chrono"
)

// Checked int64 arithmetic for the Temporal implementations, which
// report overflow as an error rather than panicking.

func addExact(a, b int64, op string) (int64, error) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, &chrono.ArithmeticError{Op: op}
	}
	return r, nil
}

func mulExact(a, b int64, op string) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, &chrono.ArithmeticError{Op: op}
	}
	return r, nil
}

// negate returns -a, failing only for math.MinInt64.
func negate(a int64, op string) (int64, error) {
	if a == math.MinInt64 {
		return 0, &chrono.ArithmeticError{Op: op}
	}
	return -a, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// yearsIn returns how many years one unit of a year-based unit spans.
func yearsIn(unit chrono.TemporalUnit) (int64, bool) {
	switch unit {
	case chrono.Years:
		return 1, true
	case chrono.Decades:
		return 10, true
	case chrono.Centuries:
		return 100, true
	case chrono.Millennia:
		return 1000, true
	}
	return 0, false
}

// minus turns a subtraction into an addition of the negated amount.
func minus(amount int64, unit chrono.TemporalUnit, plus func(int64, chrono.TemporalUnit) (chrono.Temporal, error)) (chrono.Temporal, error) {
	n, err := negate(amount, "temporal subtraction")
	if err != nil {
		return nil, err
	}
	return plus(n, unit)
}
