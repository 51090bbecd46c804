package radix

import "fmt"

// parseDigit returns the value of a digit character.
// Letters are case-insensitive.
func parseDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'Z':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'z':
		return c - 'a' + 10, true
	}
	return 0, false
}

// digitValue returns the value of a canonical (upper-case) digit character.
func digitValue(c byte) byte {
	if c <= '9' {
		return c - '0'
	}
	return c - 'A' + 10
}

// digit returns the value of the digit at position i.
func (d Number) digit(i int) byte {
	digs := d.digits()
	k := len(digs) - d.scale - 1 - i
	if k < 0 || k >= len(digs) {
		return 0
	}
	return digitValue(digs[k])
}

// DigitAt returns the digit character at position i.
// Position 0 is the units digit, positive positions move towards
// more significant digits, and negative positions address the fractional part,
// so that -1 is the first digit after the radix point.
// Positions outside of the representation of d hold implicit zeros.
func (d Number) DigitAt(i int) byte {
	return alphabet[d.digit(i)]
}

// WithDigitAt returns d with the digit at position i replaced by
// the digit character c.
// The number is zero-padded as needed, so i may lie outside of the current
// integer or fractional part.
// Digits beyond the fraction bound of d are discarded.
// See [Number.DigitAt] for the meaning of positions.
//
// WithDigitAt returns an error if c is not a valid digit in the radix of d.
func (d Number) WithDigitAt(i int, c byte) (Number, error) {
	v, ok := parseDigit(c)
	if !ok || int(v) >= d.Radix() {
		return Number{}, fmt.Errorf("%v.WithDigitAt(%v, %q) in radix %v: %w", d, i, c, d.Radix(), ErrInvalidDigit)
	}
	m := d.mag()
	if i >= 0 {
		m = m.widen(i+1, 0)
	} else {
		m = m.widen(0, -i)
	}
	m.dig[m.point-1-i] = v
	return newNumber(d.IsNeg(), d.Radix(), m, d.MaxFracLen()), nil
}

// ExtractDigitAt returns a non-negative number equal to DigitAt(i) * radix^i,
// that is the contribution of a single digit to the magnitude of d.
func (d Number) ExtractDigitAt(i int) Number {
	v := d.digit(i)
	var m mag
	if i >= 0 {
		m.dig = append([]byte{v}, zeros(i)...)
		m.point = i + 1
	} else {
		m.dig = append(zeros(-i-1), v)
		m.point = 0
	}
	return newNumber(false, d.Radix(), m, d.MaxFracLen())
}

// MoveFloatPoint returns d * radix^shift.
// The digits are not recomputed, only the radix point is moved
// to the right (positive shift) or to the left (negative shift).
// Fractional digits beyond the fraction bound of d are truncated.
func (d Number) MoveFloatPoint(shift int) Number {
	m := d.mag()
	m.point += shift
	return newNumber(d.IsNeg(), d.Radix(), m, d.MaxFracLen())
}
