package radix

import "fmt"

// MustQuo is like [Number.Quo] but panics if computing error.
func (d Number) MustQuo(e Number) Number {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustQuoRem is like [Number.QuoRem] but panics if computing error.
func (d Number) MustQuoRem(e Number) (Number, Number) {
	q, r, err := d.QuoRem(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", d, err))
	}
	return q, r
}

// MustRem is like [Number.Rem] but panics if computing error.
func (d Number) MustRem(e Number) Number {
	r, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", d, err))
	}
	return r
}

// MustPow is like [Number.Pow] but panics if computing error.
func (d Number) MustPow(exp int) Number {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", d, err))
	}
	return f
}

// MustToRadix is like [Number.ToRadix] but panics if conversion error.
func (d Number) MustToRadix(radix int) Number {
	f, err := d.ToRadix(radix)
	if err != nil {
		panic(fmt.Sprintf("MustToRadix(%v) failed: %v", d, err))
	}
	return f
}

// MustInt64 is like [Number.Int64] but panics if conversion error.
func (d Number) MustInt64() int64 {
	v, err := d.Int64()
	if err != nil {
		panic(fmt.Sprintf("MustInt64(%v) failed: %v", d, err))
	}
	return v
}
