package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueRange is the inclusive range of legal values of a field. The
// bounds may vary: day-of-month has a minimum of 1 and a maximum of
// between 28 and 31.
type ValueRange struct {
	smallestMin int64
	largestMin  int64
	smallestMax int64
	largestMax  int64
}

// RangeOfFixed returns the range [min, max].
func RangeOfFixed(min, max int64) (ValueRange, error) {
	return newValueRange(min, min, max, max)
}

// RangeOfVariableMax returns a range with a fixed minimum and a maximum
// between smallestMax and largestMax.
func RangeOfVariableMax(min, smallestMax, largestMax int64) (ValueRange, error) {
	return newValueRange(min, min, smallestMax, largestMax)
}

// RangeOfVariable returns a range whose minimum and maximum both vary.
func RangeOfVariable(smallestMin, largestMin, smallestMax, largestMax int64) (ValueRange, error) {
	return newValueRange(smallestMin, largestMin, smallestMax, largestMax)
}

func newValueRange(smallestMin, largestMin, smallestMax, largestMax int64) (ValueRange, error) {
	switch {
	case smallestMin > largestMin:
		return ValueRange{}, boundsError("smallest minimum %d must be less than or equal to largest minimum %d", smallestMin, largestMin)
	case largestMin >= smallestMax:
		return ValueRange{}, boundsError("largest minimum %d must be less than smallest maximum %d", largestMin, smallestMax)
	case smallestMax > largestMax:
		return ValueRange{}, boundsError("smallest maximum %d must be less than or equal to largest maximum %d", smallestMax, largestMax)
	}
	return ValueRange{
		smallestMin: smallestMin,
		largestMin:  largestMin,
		smallestMax: smallestMax,
		largestMax:  largestMax,
	}, nil
}

func boundsError(format string, a, b int64) error {
	return &RangeError{msg: "chrono: invalid value range: " + fmt.Sprintf(format, a, b)}
}

// mustRange builds a catalogue range. The bounds are constants, so a
// failure is a programming error.
func mustRange(bounds ...int64) ValueRange {
	var (
		r   ValueRange
		err error
	)
	switch len(bounds) {
	case 2:
		r, err = RangeOfFixed(bounds[0], bounds[1])
	case 3:
		r, err = RangeOfVariableMax(bounds[0], bounds[1], bounds[2])
	case 4:
		r, err = RangeOfVariable(bounds[0], bounds[1], bounds[2], bounds[3])
	default:
		err = fmt.Errorf("%w: %d range bounds", ErrInvalidArgument, len(bounds))
	}
	if err != nil {
		panic(err)
	}
	return r
}

// Minimum is the smallest legal value.
func (r ValueRange) Minimum() int64 { return r.smallestMin }

// LargestMinimum is the largest value the minimum can take.
func (r ValueRange) LargestMinimum() int64 { return r.largestMin }

// SmallestMaximum is the smallest value the maximum can take.
func (r ValueRange) SmallestMaximum() int64 { return r.smallestMax }

// Maximum is the largest legal value.
func (r ValueRange) Maximum() int64 { return r.largestMax }

// IsFixed reports whether neither bound varies.
func (r ValueRange) IsFixed() bool {
	return r.smallestMin == r.largestMin && r.smallestMax == r.largestMax
}

// IsValidValue reports whether v lies within [Minimum, Maximum].
func (r ValueRange) IsValidValue(v int64) bool {
	return v >= r.smallestMin && v <= r.largestMax
}

// CheckValidValue returns v if it is valid and a RangeError naming field
// otherwise.
func (r ValueRange) CheckValidValue(v int64, field TemporalField) (int64, error) {
	if !r.IsValidValue(v) {
		return 0, &RangeError{Field: field, Value: v, Range: r.String()}
	}
	return v, nil
}

func (r ValueRange) Equal(other ValueRange) bool { return r == other }

// String renders the range as "min[/largestMin] - smallestMax[/max]".
func (r ValueRange) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(r.smallestMin, 10))
	if r.smallestMin != r.largestMin {
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(r.largestMin, 10))
	}
	b.WriteString(" - ")
	b.WriteString(strconv.FormatInt(r.smallestMax, 10))
	if r.smallestMax != r.largestMax {
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(r.largestMax, 10))
	}
	return b.String()
}
