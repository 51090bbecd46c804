package radix

import (
	"fmt"
	"math"
	"strconv"
)

// NewFromInt64 converts an integer to a decimal number with the default
// fraction bound.
func NewFromInt64(v int64) Number {
	d, err := ParseRadix(strconv.FormatInt(v, 10), 10)
	if err != nil {
		panic(fmt.Sprintf("NewFromInt64(%v) failed: %v", v, err))
	}
	return d
}

// NewFromInt64Radix converts an integer to a number in the given radix
// with the default fraction bound.
//
// NewFromInt64Radix returns an error if radix is less than [MinRadix]
// or greater than [MaxRadix].
func NewFromInt64Radix(v int64, radix int) (Number, error) {
	if radix < MinRadix || MaxRadix < radix {
		return Number{}, fmt.Errorf("converting %v to radix %v: %w", v, radix, ErrRadixRange)
	}
	return ParseRadix(strconv.FormatInt(v, radix), radix)
}

// Int64 returns the integer part of d as an int64.
// Fractional digits are discarded, the result is rounded towards zero.
//
// Int64 returns an error if the integer part of d does not fit in an int64.
func (d Number) Int64() (int64, error) {
	radix := uint64(d.Radix())
	limit := uint64(math.MaxInt64)
	if d.IsNeg() {
		limit++
	}
	var v uint64
	for i := d.IntLen() - 1; i >= 0; i-- {
		r := uint64(d.digit(i))
		if v > (limit-r)/radix {
			return 0, fmt.Errorf("converting %v to int64: %w", d, ErrOverflow)
		}
		v = v*radix + r
	}
	if d.IsNeg() {
		return -int64(v), nil
	}
	return int64(v), nil
}
