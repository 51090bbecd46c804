package radix

import "fmt"

// Neg returns d with opposite sign.
// Zero remains non-negative.
func (d Number) Neg() Number {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns absolute value of d.
func (d Number) Abs() Number {
	d.neg = false
	return d
}

// Add returns the sum of d and e.
// If e has a different radix, it is converted to the radix of d first.
// The fraction bound of the result is the larger of the bounds of d and e.
func (d Number) Add(e Number) Number {
	radix := d.Radix()
	bound := max(d.MaxFracLen(), e.MaxFracLen())

	// Special case: zero operand
	switch {
	case e.IsZero():
		return d.rebound(bound)
	case d.IsZero():
		return e.convert(radix).rebound(bound)
	}

	// Alignment
	e = e.convert(radix)

	// Special case: different signs
	switch {
	case d.IsNeg() && !e.IsNeg():
		return e.Sub(d.Neg())
	case !d.IsNeg() && e.IsNeg():
		return d.Sub(e.Neg())
	case d.IsNeg() && e.IsNeg():
		return d.Neg().Add(e.Neg()).Neg()
	}

	// General case
	z := addMag(d.mag(), e.mag(), radix)
	return newNumber(false, radix, z, bound)
}

// Sub returns the difference of d and e.
// If e has a different radix, it is converted to the radix of d first.
// The fraction bound of the result is the larger of the bounds of d and e.
func (d Number) Sub(e Number) Number {
	radix := d.Radix()
	bound := max(d.MaxFracLen(), e.MaxFracLen())

	// Special case: zero operand
	switch {
	case e.IsZero():
		return d.rebound(bound)
	case d.IsZero():
		return e.convert(radix).Neg().rebound(bound)
	}

	// Alignment
	e = e.convert(radix)

	// Special case: equal operands
	if d.Equal(e) {
		return d.Zero().rebound(bound)
	}

	// Special case: different signs
	switch {
	case !d.IsNeg() && e.IsNeg():
		return d.Add(e.Neg())
	case d.IsNeg() && !e.IsNeg():
		return d.Neg().Add(e).Neg()
	case d.IsNeg() && e.IsNeg():
		return e.Neg().Sub(d.Neg())
	}

	// Special case: subtrahend is larger
	x, y := d.mag(), e.mag()
	if cmpMag(x, y) < 0 {
		return e.Sub(d).Neg()
	}

	// General case
	z := subMag(x, y, radix)
	return newNumber(false, radix, z, bound)
}

// Mul returns the product of d and e.
// If e has a different radix, it is converted to the radix of d first.
// Fractional digits of the product beyond the larger of the fraction bounds
// of d and e are truncated.
func (d Number) Mul(e Number) Number {
	radix := d.Radix()
	bound := max(d.MaxFracLen(), e.MaxFracLen())

	// Special case: zero operand
	if d.IsZero() || e.IsZero() {
		return d.Zero().rebound(bound)
	}

	// Alignment
	e = e.convert(radix)

	// Multiplier is the operand with fewer digits
	x, y := d.mag(), e.mag()
	if len(y.dig) > len(x.dig) {
		x, y = y, x
	}

	// Partial products
	var z mag
	for j := 0; j < len(y.dig); j++ {
		v := y.dig[len(y.dig)-1-j]
		if v == 0 {
			continue
		}
		p := append(mulDigit(x.dig, v, radix), zeros(j)...)
		z = addMag(z, mag{dig: p, point: len(p)}, radix)
	}

	// Radix point
	z.point -= x.fracLen() + y.fracLen()

	return newNumber(d.IsNeg() != e.IsNeg(), radix, z, bound)
}

// MulInt64 returns the product of d and the integer v.
// The result has the radix and the fraction bound of d.
func (d Number) MulInt64(v int64) Number {
	return d.Mul(NewFromInt64(v).rebound(d.MaxFracLen()))
}

// Quo returns the quotient of d and e.
// If e has a different radix, it is converted to the radix of d first.
// The quotient is computed by long division and truncated after
// d.MaxFracLen() fractional digits.
//
// Quo returns an error if e is zero or becomes zero when converted
// to the radix of d.
func (d Number) Quo(e Number) (Number, error) {
	// Alignment
	f := e.convert(d.Radix())

	// Special case: zero divisor
	if f.IsZero() {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}

	q, err := d.quo(f, d.MaxFracLen())
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return q, nil
}

// quo returns the quotient of d and e truncated after maxFrac fractional digits.
// e must already have the radix of d.
func (d Number) quo(e Number, maxFrac int) (Number, error) {
	radix := d.Radix()
	bound := max(d.MaxFracLen(), e.MaxFracLen())

	// Both operands are scaled to integers
	x, y := d.mag(), e.mag()
	shift := max(x.fracLen(), y.fracLen())
	dividend := x.scaled(shift)
	divisor := trimInt(y.scaled(shift))

	// Special case: zero divisor
	if len(divisor) == 0 {
		return Number{}, ErrDivisionByZero
	}

	// Special case: zero dividend
	if d.IsZero() {
		return d.Zero().rebound(bound), nil
	}

	// Long division
	q, _ := quoMag(dividend, divisor, radix, maxFrac)

	return newNumber(d.IsNeg() != e.IsNeg(), radix, q, bound), nil
}

// QuoRem returns the quotient q and remainder r of d and e such that
// d = q * e + r, where q is an integer and r has the sign of d.
// Both operands must be integers.
//
// QuoRem returns an error if:
//   - d or e has a fractional part;
//   - e is zero.
func (d Number) QuoRem(e Number) (q, r Number, err error) {
	// Special case: fractional operand
	if !d.IsInt() || !e.IsInt() {
		return Number{}, Number{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: fractional operand: %w", d, e, d, e, ErrInvalidOperation)
	}

	// Special case: zero divisor
	if e.IsZero() {
		return Number{}, Number{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", d, e, d, e, ErrDivisionByZero)
	}

	q, err = d.quo(e.convert(d.Radix()), 0)
	if err != nil {
		return Number{}, Number{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", d, e, d, e, err)
	}
	r = d.Sub(e.Mul(q))
	return q, r, nil
}

// Rem returns the remainder of d and e, which has the sign of d.
// Also see method [Number.QuoRem].
func (d Number) Rem(e Number) (Number, error) {
	_, r, err := d.QuoRem(e)
	if err != nil {
		return Number{}, err
	}
	return r, nil
}

// Pow returns d raised to the integer power exp.
// Negative powers are computed as the quotient of 1 and the positive power,
// so they are truncated after d.MaxFracLen() fractional digits.
//
// Pow returns an error if:
//   - d is zero and exp is negative;
//   - |d| is not 0 or 1 and |exp| exceeds [MaxFracLenLimit].
func (d Number) Pow(exp int) (Number, error) {
	switch {
	case exp == 0:
		return d.One(), nil
	case d.IsZero():
		if exp < 0 {
			return Number{}, fmt.Errorf("computing [%v^%v]: %w", d, exp, ErrDivisionByZero)
		}
		return d, nil
	case d.Abs() == d.One():
		if exp%2 == 0 {
			return d.Abs(), nil
		}
		return d, nil
	case exp < -MaxFracLenLimit || MaxFracLenLimit < exp:
		return Number{}, fmt.Errorf("computing [%v^%v]: exponent out of range: %w", d, exp, ErrOverflow)
	}

	// Special case: negative exponent
	if exp < 0 {
		p, err := d.Pow(-exp)
		if err != nil {
			return Number{}, err
		}
		f, err := d.One().Quo(p)
		if err != nil {
			return Number{}, fmt.Errorf("computing [%v^%v]: %w", d, exp, ErrDivisionByZero)
		}
		return f, nil
	}

	// General case
	f, err := d.Pow(exp / 2)
	if err != nil {
		return Number{}, err
	}
	f = f.Mul(f)
	if exp%2 == 1 {
		f = f.Mul(d)
	}
	return f, nil
}
