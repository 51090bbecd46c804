package radix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// bitWidth maps power-of-two radices to the number of bits per digit.
var bitWidth = map[int]int{
	2:  1,
	4:  2,
	8:  3,
	16: 4,
	32: 5,
}

// ToDecimal returns d converted to radix 10.
// The integer part is converted exactly.
// The fractional part is converted digit by digit from the least significant
// digit, dividing by the radix at every step, so fractions without a finite
// decimal expansion are truncated after d.MaxFracLen() digits.
func (d Number) ToDecimal() Number {
	radix := d.Radix()
	if radix == 10 {
		return d
	}
	bound := d.MaxFracLen()
	base := smallNumber(radix, 10, bound)

	// Integer
	ipart := smallNumber(0, 10, bound)
	for i := d.IntLen() - 1; i >= 0; i-- {
		ipart = ipart.Mul(base).Add(smallNumber(int(d.digit(i)), 10, bound))
	}

	// Fraction
	fpart := smallNumber(0, 10, bound)
	for i := -d.FracLen(); i < 0; i++ {
		fpart, _ = fpart.Add(smallNumber(int(d.digit(i)), 10, bound)).quo(base, bound) // base is never zero
	}

	z := ipart.Add(fpart)
	if d.IsNeg() {
		z = z.Neg()
	}
	return z
}

// ToRadix returns d converted to the given radix.
// Conversion between power-of-two radices (2, 4, 8, 16 and 32) regroups
// the bits of the digits and does not lose precision except for
// truncation at the fraction bound.
// Other conversions go through radix 10, and the fractional part is
// truncated after d.MaxFracLen() digits.
//
// ToRadix returns an error if radix is less than [MinRadix] or greater than [MaxRadix].
func (d Number) ToRadix(radix int) (Number, error) {
	if radix < MinRadix || MaxRadix < radix {
		return Number{}, fmt.Errorf("%v.ToRadix(%v): %w", d, radix, ErrRadixRange)
	}
	return d.convert(radix), nil
}

// ToBinary returns d converted to radix 2.
func (d Number) ToBinary() Number {
	return d.convert(2)
}

// ToOctal returns d converted to radix 8.
func (d Number) ToOctal() Number {
	return d.convert(8)
}

// ToHex returns d converted to radix 16.
func (d Number) ToHex() Number {
	return d.convert(16)
}

// convert returns d converted to a valid radix.
func (d Number) convert(radix int) Number {
	// Special case: same radix
	if d.Radix() == radix {
		return d
	}

	// Special case: zero
	if d.IsZero() {
		return Number{rdx: int8(radix - 10), bound: d.bound}
	}

	// Special case: power-of-two radices
	_, fromOK := bitWidth[d.Radix()]
	_, toOK := bitWidth[radix]
	if fromOK && toOK {
		return d.regroup(radix)
	}

	// General case
	f := d.ToDecimal()
	if radix == 10 {
		return f
	}
	return f.fromDecimal(radix)
}

// regroup converts d between power-of-two radices by expanding every digit
// into its bits and regrouping the bits into digits of the target radix.
// The integer bits are padded on the left, and the fractional bits are padded
// on the right.
func (d Number) regroup(radix int) Number {
	from, to := bitWidth[d.Radix()], bitWidth[radix]
	m := d.mag()

	ibits := m.intLen() * from
	fbits := m.fracLen() * from
	lpad := (to - ibits%to) % to
	rpad := (to - fbits%to) % to
	bits := expandBits(m.dig, from, lpad, lpad+ibits+fbits+rpad)

	idig := collapseBits(bits, to, 0, (lpad+ibits)/to)
	fdig := collapseBits(bits, to, lpad+ibits, (fbits+rpad)/to)
	z := mag{dig: append(idig, fdig...), point: len(idig)}
	return newNumber(d.IsNeg(), radix, z, d.MaxFracLen())
}

// expandBits returns a set of length bits holding the bits of the digits,
// most significant first, width bits per digit, starting at bit offset.
func expandBits(dig []byte, width, offset, length int) *bitset.BitSet {
	bits := bitset.New(uint(length))
	for k, v := range dig {
		for b := 0; b < width; b++ {
			if (v>>(width-1-b))&1 == 1 {
				bits.Set(uint(offset + k*width + b))
			}
		}
	}
	return bits
}

// collapseBits returns n digits of width bits each, read from the set
// starting at bit offset.
func collapseBits(bits *bitset.BitSet, width, offset, n int) []byte {
	dig := make([]byte, n)
	for k := range dig {
		var v byte
		for b := 0; b < width; b++ {
			v <<= 1
			if bits.Test(uint(offset + k*width + b)) {
				v |= 1
			}
		}
		dig[k] = v
	}
	return dig
}

// fromDecimal converts a decimal number d to the given radix.
// The integer digits are the remainders of repeated division by the radix,
// and the fractional digits are the integer parts of repeated multiplication
// by the radix, up to d.MaxFracLen() digits.
func (d Number) fromDecimal(radix int) Number {
	bound := d.MaxFracLen()
	base := smallNumber(radix, 10, bound)
	ipart := d.Abs().Trunc()
	fpart := d.Abs().Sub(ipart)

	// Integer
	var dig []byte
	for !ipart.IsZero() {
		q, r, _ := ipart.QuoRem(base)
		dig = append(dig, r.smallValue())
		ipart = q
	}
	for i, j := 0, len(dig)-1; i < j; i, j = i+1, j-1 {
		dig[i], dig[j] = dig[j], dig[i]
	}
	point := len(dig)

	// Fraction
	for k := 0; k < bound && !fpart.IsZero(); k++ {
		fpart = fpart.Mul(base)
		v := fpart.Trunc()
		dig = append(dig, v.smallValue())
		fpart = fpart.Sub(v)
	}

	return newNumber(d.IsNeg(), radix, mag{dig: dig, point: point}, bound)
}

// smallNumber returns a non-negative integer v less than radix^2 as a number
// in the given radix.
func smallNumber(v, radix, bound int) Number {
	m := mag{dig: []byte{byte(v / radix), byte(v % radix)}, point: 2}
	return newNumber(false, radix, m, bound)
}

// smallValue returns the value of a non-negative integer d less than 256.
func (d Number) smallValue() byte {
	var v int
	for i := d.IntLen() - 1; i >= 0; i-- {
		v = v*d.Radix() + int(d.digit(i))
	}
	return byte(v)
}
