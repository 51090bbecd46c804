package radix

// mag (MAGnitude) is an unnormalized unsigned number.
// The digit values are stored most significant first and the first point
// digits form the integer part.
// Leading and trailing zeros are allowed, so the same value can have
// multiple representations.
type mag struct {
	dig   []byte // digit values, not characters
	point int    // number of digits in the integer part
}

// mag returns the magnitude of d as a fresh digit buffer.
func (d Number) mag() mag {
	digs := d.digits()
	dig := make([]byte, len(digs))
	for i := 0; i < len(digs); i++ {
		dig[i] = digitValue(digs[i])
	}
	return mag{dig: dig, point: len(digs) - d.scale}
}

// intLen returns number of digits before the radix point.
func (x mag) intLen() int {
	return x.point
}

// fracLen returns number of digits after the radix point.
func (x mag) fracLen() int {
	return len(x.dig) - x.point
}

// at returns the value of the digit at position i, where 0 is the units digit
// and negative positions address the fractional part.
// Positions outside of the buffer hold implicit zeros.
func (x mag) at(i int) byte {
	k := x.point - 1 - i
	if k < 0 || k >= len(x.dig) {
		return 0
	}
	return x.dig[k]
}

// widen returns a copy of x with at least intLen integer digits and
// at least fracLen fractional digits.
func (x mag) widen(intLen, fracLen int) mag {
	lpad := max(intLen-x.intLen(), 0)
	rpad := max(fracLen-x.fracLen(), 0)
	dig := make([]byte, 0, lpad+len(x.dig)+rpad)
	dig = append(dig, zeros(lpad)...)
	dig = append(dig, x.dig...)
	dig = append(dig, zeros(rpad)...)
	return mag{dig: dig, point: x.point + lpad}
}

// scaled returns the digits of x * radix^shift as an integer digit buffer.
// shift must not be less than the fractional length of x.
func (x mag) scaled(shift int) []byte {
	return x.widen(0, shift).dig
}

// addMag calculates x + y.
// The window spans the longer integer part and the longer fractional part
// of the operands, plus one digit for the final carry.
func addMag(x, y mag, radix int) mag {
	intLen := max(x.intLen(), y.intLen())
	fracLen := max(x.fracLen(), y.fracLen())
	z := make([]byte, intLen+fracLen+1)
	var carry byte
	for i := -fracLen; i < intLen; i++ {
		s := x.at(i) + y.at(i) + carry
		carry = 0
		if s >= byte(radix) {
			s -= byte(radix)
			carry = 1
		}
		z[len(z)-1-(i+fracLen)] = s
	}
	z[0] = carry
	return mag{dig: z, point: intLen + 1}
}

// subMag calculates x - y.
// x must not be less than y.
func subMag(x, y mag, radix int) mag {
	intLen := max(x.intLen(), y.intLen())
	fracLen := max(x.fracLen(), y.fracLen())
	z := make([]byte, intLen+fracLen)
	borrow := 0
	for i := -fracLen; i < intLen; i++ {
		s := int(x.at(i)) - int(y.at(i)) - borrow
		borrow = 0
		if s < 0 {
			s += radix
			borrow = 1
		}
		z[len(z)-1-(i+fracLen)] = byte(s)
	}
	return mag{dig: z, point: intLen}
}

// cmpMag compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func cmpMag(x, y mag) int {
	intLen := max(x.intLen(), y.intLen())
	fracLen := max(x.fracLen(), y.fracLen())
	for i := intLen - 1; i >= -fracLen; i-- {
		a, b := x.at(i), y.at(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// mulDigit calculates x * v for an integer digit buffer x and a single digit v.
// The result is one digit longer than x.
func mulDigit(x []byte, v byte, radix int) []byte {
	z := make([]byte, len(x)+1)
	carry := 0
	for k := len(x) - 1; k >= 0; k-- {
		p := int(x[k])*int(v) + carry
		z[k+1] = byte(p % radix)
		carry = p / radix
	}
	z[0] = byte(carry)
	return z
}

// trimInt removes leading zeros from an integer digit buffer.
func trimInt(x []byte) []byte {
	for len(x) > 0 && x[0] == 0 {
		x = x[1:]
	}
	return x
}

// cmpInt compares integer digit buffers x and y.
func cmpInt(x, y []byte) int {
	x, y = trimInt(x), trimInt(y)
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for k := range x {
		switch {
		case x[k] < y[k]:
			return -1
		case x[k] > y[k]:
			return 1
		}
	}
	return 0
}

// subInt calculates x - y for integer digit buffers.
// x must not be less than y.
func subInt(x, y []byte, radix int) []byte {
	return subMag(mag{dig: x, point: len(x)}, mag{dig: y, point: len(y)}, radix).dig
}

// quoMag divides integer digit buffers x by y using long division.
// Digits of x are brought down one at a time into the working remainder,
// and each quotient digit is found by repeated subtraction of y, so it never
// exceeds radix-1.
// Once the digits of x are exhausted, zeros are brought down until the
// remainder vanishes or maxFrac fractional digits have been produced.
// y must not be zero.
func quoMag(x, y []byte, radix, maxFrac int) (q mag, r []byte) {
	if len(y) == 0 {
		panic("quoMag: zero divisor")
	}
	q.dig = make([]byte, 0, len(x)+1)
	q.point = len(x)
	r = make([]byte, 0, len(y)+1)
	for k := 0; ; k++ {
		switch {
		case k < len(x):
			r = append(r, x[k])
		case len(trimInt(r)) == 0 || k-len(x) >= maxFrac:
			return q, r
		default:
			r = append(r, 0)
		}
		r = trimInt(r)
		var v byte
		for cmpInt(r, y) >= 0 {
			r = trimInt(subInt(r, y, radix))
			v++
		}
		q.dig = append(q.dig, v)
	}
}

// zeros returns a buffer of n zero digits.
func zeros(n int) []byte {
	return make([]byte, n)
}
