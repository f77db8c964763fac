package chrono

import "math"

// Checked int64 arithmetic. Each helper panics with *ArithmeticError
// on overflow.

func addExact(a, b int64, op string) int64 {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		panic(&ArithmeticError{Op: op})
	}
	return r
}

func subExact(a, b int64, op string) int64 {
	r := a - b
	if (b < 0 && a >= 0 && r < 0) || (b > 0 && a < 0 && r >= 0) {
		panic(&ArithmeticError{Op: op})
	}
	return r
}

func mulExact(a, b int64, op string) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(&ArithmeticError{Op: op})
	}
	return r
}

func negateExact(a int64, op string) int64 {
	if a == math.MinInt64 {
		panic(&ArithmeticError{Op: op})
	}
	return -a
}

// floorDiv and floorMod round toward negative infinity.
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
