package radix

// Equal returns true if d and e are numerically equal.
// Numbers in different radices are compared after conversion to decimal,
// which may truncate fractions that have no finite decimal expansion.
// The fraction bounds of d and e are ignored.
func (d Number) Equal(e Number) bool {
	// Special case: zero
	if d.IsZero() || e.IsZero() {
		return d.IsZero() && e.IsZero()
	}

	// Special case: different signs
	if d.IsNeg() != e.IsNeg() {
		return false
	}

	// Alignment
	if d.Radix() != e.Radix() {
		d, e = d.ToDecimal(), e.ToDecimal()
	}

	// Comparison
	if d.Prec() != e.Prec() {
		return false
	}
	for i := -d.FracLen(); i < d.IntLen(); i++ {
		if d.digit(i) != e.digit(i) {
			return false
		}
	}
	return true
}

// NotEqual returns true if d and e are not numerically equal.
// Also see method [Number.Equal].
func (d Number) NotEqual(e Number) bool {
	return !d.Equal(e)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Numbers in different radices are compared after conversion to decimal.
func (d Number) Cmp(e Number) int {
	// Special case: zero
	if d.IsZero() || e.IsZero() {
		return d.Sign() - e.Sign()
	}

	// Special case: different signs
	switch {
	case d.IsNeg() && !e.IsNeg():
		return -1
	case !d.IsNeg() && e.IsNeg():
		return 1
	}

	// Alignment
	if d.Radix() != e.Radix() {
		d, e = d.ToDecimal(), e.ToDecimal()
	}

	// Comparison
	intLen := max(d.IntLen(), e.IntLen())
	fracLen := max(d.FracLen(), e.FracLen())
	for i := intLen - 1; i >= -fracLen; i-- {
		a, b := d.digit(i), e.digit(i)
		if a == b {
			continue
		}
		r := 1
		if a < b {
			r = -1
		}
		if d.IsNeg() {
			r = -r
		}
		return r
	}
	return 0
}

// Less returns true if d < e.
func (d Number) Less(e Number) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Number) LessOrEqual(e Number) bool {
	return d.Less(e) || d.Equal(e)
}

// Greater returns true if d > e.
func (d Number) Greater(e Number) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Number) GreaterOrEqual(e Number) bool {
	return d.Greater(e) || d.Equal(e)
}

// Max returns maximum of d and e.
// If d and e are numerically equal, d is returned.
func (d Number) Max(e Number) Number {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// If d and e are numerically equal, d is returned.
func (d Number) Min(e Number) Number {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
