package radix

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Number type is a representation of a finite fixed-point number written in
// a positional numeral system with a radix from 2 to 36.
// The zero value is the numeric value of 0 in radix 10 with the default
// fraction bound.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A number is a struct with the following parameters:
//
//   - Sign: a boolean indicating whether the number is negative.
//   - Radix: the base of the numeral system.
//   - Digits: the magnitude of the number without the radix point,
//     most significant digit first.
//   - Scale: the number of digits after the radix point.
//   - Fraction bound: the maximum number of digits after the radix point
//     that any operation is allowed to keep.
//
// Numbers returned by this package are always in canonical form:
// the integer part has no leading zeros (except for a single 0), the fractional
// part has no trailing zeros, and zero is never negative.
// As a consequence, two numbers with the same radix and fraction bound
// are numerically equal if and only if they are equal according to the == operator.
type Number struct {
	neg   bool   // indicates whether the number is negative
	rdx   int8   // radix minus 10, so that the zero value is decimal
	scale int    // number of digits after the radix point
	bound int    // fraction bound minus DefaultMaxFracLen
	digs  string // magnitude in upper-case digits, empty for 0
}

const (
	MinRadix          = 2       // minimum supported radix
	MaxRadix          = 36      // maximum supported radix
	DefaultMaxFracLen = 128     // default fraction bound
	MaxFracLenLimit   = 1 << 16 // maximum fraction bound
)

// alphabet maps digit values to digit characters.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	ErrRadixRange          = errors.New("radix out of range")          // radix outside [MinRadix, MaxRadix]
	ErrFracLenRange        = errors.New("fraction bound out of range") // bound outside [0, MaxFracLenLimit]
	ErrMultipleRadixPoints = errors.New("multiple radix points")       // more than one '.' in a string
	ErrInvalidDigit        = errors.New("invalid digit")               // digit not valid in the radix
	ErrDivisionByZero      = errors.New("division by zero")            // zero divisor or its image
	ErrInvalidOperation    = errors.New("invalid operation")           // integer operation on a fraction
	ErrOverflow            = errors.New("overflow")                    // result or argument out of range
)

// newNumber assembles a canonical number from a raw magnitude.
// The magnitude does not have to be normalized: the radix point may lie
// outside of the digit buffer, and leading or trailing zeros are allowed.
// Fractional digits beyond maxFrac are truncated.
func newNumber(neg bool, radix int, m mag, maxFrac int) Number {
	dig, point := m.dig, m.point

	// Radix point alignment
	switch {
	case point < 0:
		dig = append(zeros(-point), dig...)
		point = 0
	case point > len(dig):
		dig = append(append(make([]byte, 0, point), dig...), zeros(point-len(dig))...)
	}

	// Truncation
	if len(dig)-point > maxFrac {
		dig = dig[:point+maxFrac]
	}

	// Trailing zeros
	for len(dig) > point && dig[len(dig)-1] == 0 {
		dig = dig[:len(dig)-1]
	}

	// Leading zeros
	for point > 1 && dig[0] == 0 {
		dig = dig[1:]
		point--
	}
	if point == 0 {
		dig = append([]byte{0}, dig...)
		point = 1
	}

	z := Number{
		rdx:   int8(radix - 10),
		bound: maxFrac - DefaultMaxFracLen,
	}

	// Zero
	if len(dig) == 1 && dig[0] == 0 {
		return z
	}

	buf := make([]byte, len(dig))
	for i, v := range dig {
		buf[i] = alphabet[v]
	}
	z.neg = neg
	z.scale = len(dig) - point
	z.digs = string(buf)
	return z
}

// Parse converts a decimal string to a number with the default fraction bound.
// See [ParseExact] for the supported format.
func Parse(s string) (Number, error) {
	return ParseExact(s, 10, DefaultMaxFracLen)
}

// ParseRadix converts a string in the given radix to a number with
// the default fraction bound.
// See [ParseExact] for the supported format.
func ParseRadix(s string, radix int) (Number, error) {
	return ParseExact(s, radix, DefaultMaxFracLen)
}

// ParseExact converts a string in the given radix to a number whose fraction
// bound is maxFracLen.
// The input string must be in one of the following formats:
//
//	1.234
//	-FF.8
//	+0.000001
//	.5
//	zz
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digit          ::= '0' ... '9' | 'A' ... 'Z' | 'a' ... 'z'
//	digits         ::= { digit }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Letter digits are case-insensitive and every digit must be less than radix.
// Fractional digits beyond maxFracLen are truncated, not rounded.
// Leading zeros of the integer part and trailing zeros of the fractional part
// are removed.
//
// ParseExact returns an error:
//   - if radix is less than [MinRadix] or greater than [MaxRadix];
//   - if maxFracLen is negative or greater than [MaxFracLenLimit];
//   - if the string contains more than one radix point;
//   - if the string contains a character that is not a valid digit or has no digits.
func ParseExact(s string, radix, maxFracLen int) (Number, error) {
	if radix < MinRadix || MaxRadix < radix {
		return Number{}, fmt.Errorf("parsing %q in radix %v: %w", s, radix, ErrRadixRange)
	}
	if maxFracLen < 0 || MaxFracLenLimit < maxFracLen {
		return Number{}, fmt.Errorf("parsing %q with fraction bound %v: %w", s, maxFracLen, ErrFracLenRange)
	}

	var (
		pos    int
		width  int
		neg    bool
		dig    []byte
		point  int
		hasdot bool
		hasdig bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Significand
	dig = make([]byte, 0, width-pos)
	for ; pos < width; pos++ {
		c := s[pos]
		if c == '.' {
			if hasdot {
				return Number{}, fmt.Errorf("parsing %q: %w", s, ErrMultipleRadixPoints)
			}
			hasdot = true
			point = len(dig)
			continue
		}
		v, ok := parseDigit(c)
		if !ok || int(v) >= radix {
			return Number{}, fmt.Errorf("parsing %q: character %q in radix %v: %w", s, c, radix, ErrInvalidDigit)
		}
		hasdig = true
		if hasdot && len(dig)-point >= maxFracLen {
			continue // truncation
		}
		dig = append(dig, v)
	}

	if !hasdig {
		return Number{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidDigit)
	}
	if !hasdot {
		point = len(dig)
	}

	return newNumber(neg, radix, mag{dig: dig, point: point}, maxFracLen), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustParseRadix is like [ParseRadix] but panics if the string cannot be parsed.
func MustParseRadix(s string, radix int) Number {
	d, err := ParseRadix(s, radix)
	if err != nil {
		panic(fmt.Sprintf("MustParseRadix(%q, %v) failed: %v", s, radix, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical string representation of a number.
// Digits greater than 9 are written as upper-case letters and
// the radix itself is not included.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digit          ::= '0' ... '9' | 'A' ... 'Z'
//	digits         ::= digit { digit }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Number) String() string {
	digs := d.digits()
	point := len(digs) - d.scale

	var b strings.Builder
	b.Grow(len(digs) + 2)

	// Sign
	if d.IsNeg() {
		b.WriteByte('-')
	}

	// Integer
	b.WriteString(digs[:point])

	// Fraction
	if d.scale > 0 {
		b.WriteByte('.')
		b.WriteString(digs[point:])
	}

	return b.String()
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -FF.8
//	%q:    "-FF.8"
//
// Width is supported for all verbs, the '-' flag pads on the right.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Number) Format(state fmt.State, verb rune) {
	s := d.String()

	// Quotes
	if verb == 'q' || verb == 'Q' {
		s = `"` + s + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s = s + pad
		} else {
			s = pad + s
		}
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		io.WriteString(state, s) //nolint:errcheck
	default:
		fmt.Fprintf(state, "%%!%c(radix.Number=%s)", verb, s)
	}
}

// Radix returns the base of the numeral system of d.
func (d Number) Radix() int {
	return int(d.rdx) + 10
}

// MaxFracLen returns the fraction bound of d, that is the maximum number
// of digits after the radix point that operations on d may keep.
func (d Number) MaxFracLen() int {
	return d.bound + DefaultMaxFracLen
}

// Prec returns the total number of digits of d.
// Zero has exactly one digit.
func (d Number) Prec() int {
	return len(d.digits())
}

// IntLen returns the number of digits before the radix point.
func (d Number) IntLen() int {
	return d.Prec() - d.scale
}

// FracLen returns the number of digits after the radix point.
func (d Number) FracLen() int {
	return min(d.scale, d.MaxFracLen())
}

// digits returns the magnitude digits of d.
func (d Number) digits() string {
	if d.digs == "" {
		return "0"
	}
	return d.digs
}

// WithMaxFracLen returns d with the fraction bound set to n.
// Fractional digits beyond the new bound are truncated.
//
// WithMaxFracLen returns an error if n is negative or greater than [MaxFracLenLimit].
func (d Number) WithMaxFracLen(n int) (Number, error) {
	if n < 0 || MaxFracLenLimit < n {
		return Number{}, fmt.Errorf("%v.WithMaxFracLen(%v): %w", d, n, ErrFracLenRange)
	}
	return newNumber(d.IsNeg(), d.Radix(), d.mag(), n), nil
}

// rebound returns d with the fraction bound set to n.
// n must not be less than the fraction length of d.
func (d Number) rebound(n int) Number {
	d.bound = n - DefaultMaxFracLen
	return d
}

// Zero returns a number with a value 0 but the same radix and fraction bound as d.
func (d Number) Zero() Number {
	return Number{rdx: d.rdx, bound: d.bound}
}

// One returns a number with a value 1 but the same radix and fraction bound as d.
func (d Number) One() Number {
	return Number{rdx: d.rdx, bound: d.bound, digs: "1"}
}

// Trunc returns the integer part of d.
// Fractional digits are discarded, the result is rounded towards zero.
func (d Number) Trunc() Number {
	m := d.mag()
	m.dig = m.dig[:m.point]
	return newNumber(d.IsNeg(), d.Radix(), m, d.MaxFracLen())
}

// IsInt returns true if d has no fractional digits.
func (d Number) IsInt() bool {
	return d.scale == 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Number) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Number) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Number) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Number) IsZero() bool {
	return d.digs == ""
}
