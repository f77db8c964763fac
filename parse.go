package chrono

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	durationKind = "ISO-8601 duration"
	periodKind   = "ISO-8601 period"
)

// isoComponent is one number and its designator, such as "-4.5S".
type isoComponent struct {
	neg         bool
	magnitude   uint64
	micros      int64 // fraction of the component, always non-negative
	hasFraction bool
	designator  byte
}

// value applies the component's own sign and the overall sign.
func (c isoComponent) value(negateAll bool) (v, micros int64, ok bool) {
	neg := c.neg != negateAll
	switch {
	case neg && c.magnitude > 1<<63:
		return 0, 0, false
	case !neg && c.magnitude > math.MaxInt64:
		return 0, 0, false
	case neg:
		return -int64(c.magnitude), -c.micros, true
	default:
		return int64(c.magnitude), c.micros, true
	}
}

// isoScanner walks ISO-8601 amount text one component at a time.
type isoScanner struct {
	kind string
	text string
	pos  int
}

func (s *isoScanner) fail(reason string) error {
	return &FormatError{Kind: s.kind, Text: s.text, Reason: reason}
}

func (s *isoScanner) more() bool { return s.pos < len(s.text) }

func (s *isoScanner) peek() byte {
	if s.more() {
		return s.text[s.pos]
	}
	return 0
}

func (s *isoScanner) consume(c byte) bool {
	if s.peek() == c {
		s.pos++
		return true
	}
	return false
}

// prefix consumes the optional overall sign and the 'P' designator,
// which must be followed by at least one more character.
func (s *isoScanner) prefix() (neg bool, err error) {
	switch s.peek() {
	case '-':
		neg = true
		s.pos++
	case '+':
		s.pos++
	}
	if !s.consume('P') {
		return false, s.fail("missing 'P'")
	}
	if !s.more() {
		return false, s.fail("no components")
	}
	return neg, nil
}

// component scans [-+]?digits(.digits)?designator.
func (s *isoScanner) component() (isoComponent, error) {
	var c isoComponent
	switch s.peek() {
	case '-':
		c.neg = true
		s.pos++
	case '+':
		s.pos++
	}
	start := s.pos
	for s.more() && isDigit(s.peek()) {
		s.pos++
	}
	if s.pos == start {
		return c, s.fail(fmt.Sprintf("expected digits at offset %d", start))
	}
	mag, err := strconv.ParseUint(s.text[start:s.pos], 10, 64)
	if err != nil {
		return c, s.fail("number out of range")
	}
	c.magnitude = mag

	if s.consume('.') {
		start = s.pos
		for s.more() && isDigit(s.peek()) {
			s.pos++
		}
		n := s.pos - start
		if n == 0 || n > 9 {
			return c, s.fail("fraction must have 1 to 9 digits")
		}
		c.micros = fractionMicros(s.text[start:s.pos])
		c.hasFraction = true
	}

	if !s.more() {
		return c, s.fail("missing designator")
	}
	c.designator = s.text[s.pos]
	s.pos++
	return c, nil
}

// ordered checks that c.designator appears in order after the
// designator at index last, and returns its index.
func (s *isoScanner) ordered(c isoComponent, order string, last int) (int, error) {
	idx := strings.IndexByte(order, c.designator)
	if idx <= last {
		return 0, s.fail(fmt.Sprintf("unexpected designator %q", c.designator))
	}
	return idx, nil
}

// recoverOverflow reports arithmetic overflow while summing components
// as a format error.
func (s *isoScanner) recoverOverflow(errp *error) {
	if r := recover(); r != nil {
		if _, ok := r.(*ArithmeticError); ok {
			*errp = s.fail("value out of range")
			return
		}
		panic(r)
	}
}

// fractionMicros truncates a fraction of up to nine digits to
// microseconds.
func fractionMicros(digits string) int64 {
	if len(digits) > 6 {
		digits = digits[:6]
	}
	var us int64
	for i := 0; i < 6; i++ {
		us *= 10
		if i < len(digits) {
			us += int64(digits[i] - '0')
		}
	}
	return us
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseDuration parses text of the form [-+]PnDTnHnMn.nS. Each component
// may carry its own sign and a leading sign negates the whole amount.
// Days are exactly 24 hours. Fractional seconds may have up to nine
// digits and are truncated to microseconds.
func ParseDuration(text string) (d Duration, err error) {
	s := &isoScanner{kind: durationKind, text: text}
	defer s.recoverOverflow(&err)

	neg, err := s.prefix()
	if err != nil {
		return Duration{}, err
	}

	order, last, inTime := "D", -1, false
	for s.more() {
		if !inTime && s.consume('T') {
			if c := s.peek(); c != '-' && c != '+' && !isDigit(c) {
				return Duration{}, s.fail("'T' must be followed by a time component")
			}
			order, last, inTime = "HMS", -1, true
			continue
		}
		c, err := s.component()
		if err != nil {
			return Duration{}, err
		}
		if last, err = s.ordered(c, order, last); err != nil {
			return Duration{}, err
		}
		if c.hasFraction && c.designator != 'S' {
			return Duration{}, s.fail("only seconds may have a fraction")
		}
		v, us, ok := c.value(neg)
		if !ok {
			return Duration{}, s.fail("number out of range")
		}
		switch c.designator {
		case 'D':
			d = d.PlusDays(v)
		case 'H':
			d = d.PlusHours(v)
		case 'M':
			d = d.PlusMinutes(v)
		case 'S':
			d = d.PlusSeconds(v).PlusMicros(us)
		}
	}
	return d, nil
}

// ParsePeriod parses text of the form [-+]PnYnMnWnD. Weeks are folded
// into days. Each component may carry its own sign and a leading sign
// negates every component.
func ParsePeriod(text string) (p Period, err error) {
	s := &isoScanner{kind: periodKind, text: text}
	defer s.recoverOverflow(&err)

	neg, err := s.prefix()
	if err != nil {
		return Period{}, err
	}

	last := -1
	for s.more() {
		c, err := s.component()
		if err != nil {
			return Period{}, err
		}
		if last, err = s.ordered(c, "YMWD", last); err != nil {
			return Period{}, err
		}
		if c.hasFraction {
			return Period{}, s.fail("fractions are not allowed")
		}
		v, _, ok := c.value(neg)
		if !ok {
			return Period{}, s.fail("number out of range")
		}
		switch c.designator {
		case 'Y':
			p.years = v
		case 'M':
			p.months = v
		case 'W':
			p.days = addExact(p.days, mulExact(v, 7, "period weeks"), "period weeks")
		case 'D':
			p.days = addExact(p.days, v, "period days")
		}
	}
	return p, nil
}
