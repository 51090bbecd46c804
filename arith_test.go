package radix

import (
	"errors"
	"math"
	"testing"
)

func TestNumber_Neg(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"0", "0"},
		{"1", "-1"},
		{"-1", "1"},
		{"-0.5", "0.5"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		got := d.Neg()
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Neg() = %q, want %q", d, got, want)
		}
	}
}

func TestNumber_Abs(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"-1", "1"},
		{"-0.5", "0.5"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		got := d.Abs()
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Abs() = %q, want %q", d, got, want)
		}
	}
}

func TestNumber_Add(t *testing.T) {
	t.Run("same radix", func(t *testing.T) {
		tests := []struct {
			d, e  string
			radix int
			want  string
		}{
			// Zeros
			{"0", "0", 10, "0"},
			{"0", "-7.5", 10, "-7.5"},
			{"-7.5", "0", 10, "-7.5"},

			// Carries
			{"1", "1", 10, "2"},
			{"9", "1", 10, "10"},
			{"0.5", "0.5", 10, "1"},
			{"99.99", "0.01", 10, "100"},
			{"999", "1", 10, "1000"},
			{"1.234", "5", 10, "6.234"},

			// Signs
			{"-1", "1", 10, "0"},
			{"1", "-3", 10, "-2"},
			{"-1", "-2", 10, "-3"},
			{"-5", "3", 10, "-2"},
			{"1.234", "-0.234", 10, "1"},

			// Other radices
			{"FF", "1", 16, "100"},
			{"1", "1", 2, "10"},
			{"0.1", "0.1", 2, "1"},
			{"Z", "1", 36, "10"},
			{"7.7", "0.1", 8, "10"},
		}
		for _, tt := range tests {
			d := MustParseRadix(tt.d, tt.radix)
			e := MustParseRadix(tt.e, tt.radix)
			got := d.Add(e)
			want := MustParseRadix(tt.want, tt.radix)
			if got != want {
				t.Errorf("%q.Add(%q) = %q, want %q", d, e, got, want)
			}
		}
	})

	t.Run("different radices", func(t *testing.T) {
		tests := []struct {
			d, e, want Number
		}{
			{MustParseRadix("F", 16), MustParse("1"), MustParseRadix("10", 16)},
			{MustParse("1"), MustParseRadix("F", 16), MustParse("16")},
			{MustParse("0"), MustParseRadix("F", 16), MustParse("15")},
			{MustParse("0.5"), MustParseRadix("0.1", 2), MustParse("1")},
			{MustParseRadix("-1", 2), MustParse("-2"), MustParseRadix("-11", 2)},
		}
		for _, tt := range tests {
			got := tt.d.Add(tt.e)
			if got != tt.want {
				t.Errorf("%q.Add(%q) = %q in radix %v, want %q in radix %v", tt.d, tt.e, got, got.Radix(), tt.want, tt.want.Radix())
			}
		}
	})

	t.Run("fraction bound", func(t *testing.T) {
		d, _ := ParseExact("1", 10, 2)
		e, _ := ParseExact("0.001", 10, 5)
		got := d.Add(e)
		if got.String() != "1.001" || got.MaxFracLen() != 5 {
			t.Errorf("%q.Add(%q) = %q with bound %v, want \"1.001\" with bound 5", d, e, got, got.MaxFracLen())
		}
	})
}

func TestNumber_Sub(t *testing.T) {
	t.Run("same radix", func(t *testing.T) {
		tests := []struct {
			d, e  string
			radix int
			want  string
		}{
			// Zeros
			{"0", "5", 10, "-5"},
			{"5", "0", 10, "5"},
			{"0", "-5", 10, "5"},

			// Equal operands
			{"1.5", "1.5", 10, "0"},
			{"-1", "-1", 10, "0"},

			// Borrows
			{"3", "1", 10, "2"},
			{"10", "0.01", 10, "9.99"},
			{"100", "1", 10, "99"},
			{"1000.5", "0.75", 10, "999.75"},

			// Signs
			{"1", "3", 10, "-2"},
			{"-1", "1", 10, "-2"},
			{"1", "-1", 10, "2"},
			{"-3", "-5", 10, "2"},
			{"-5", "-3", 10, "-2"},

			// Other radices
			{"100", "1", 16, "FF"},
			{"10", "1", 2, "1"},
			{"1", "0.1", 2, "0.1"},
			{"10", "1", 36, "Z"},
		}
		for _, tt := range tests {
			d := MustParseRadix(tt.d, tt.radix)
			e := MustParseRadix(tt.e, tt.radix)
			got := d.Sub(e)
			want := MustParseRadix(tt.want, tt.radix)
			if got != want {
				t.Errorf("%q.Sub(%q) = %q, want %q", d, e, got, want)
			}
		}
	})

	t.Run("different radices", func(t *testing.T) {
		tests := []struct {
			d, e, want Number
		}{
			{MustParseRadix("10", 16), MustParse("1"), MustParseRadix("F", 16)},
			{MustParse("1"), MustParseRadix("F", 16), MustParse("-14")},
			{MustParse("0.5"), MustParseRadix("0.1", 2), MustParse("0")},
			{MustParseRadix("0", 2), MustParse("3"), MustParseRadix("-11", 2)},
			{MustParseRadix("-1", 2), MustParse("-2"), MustParseRadix("1", 2)},
		}
		for _, tt := range tests {
			got := tt.d.Sub(tt.e)
			if got != tt.want {
				t.Errorf("%q.Sub(%q) = %q in radix %v, want %q in radix %v", tt.d, tt.e, got, got.Radix(), tt.want, tt.want.Radix())
			}
		}
	})
}

func TestNumber_Mul(t *testing.T) {
	t.Run("same radix", func(t *testing.T) {
		tests := []struct {
			d, e  string
			radix int
			want  string
		}{
			{"25", "41", 10, "1025"},
			{"0", "5", 10, "0"},
			{"-2", "0", 10, "0"},
			{"-2", "3", 10, "-6"},
			{"-2", "-3", 10, "6"},
			{"1.5", "1.5", 10, "2.25"},
			{"0.1", "0.1", 10, "0.01"},
			{"123.456", "1", 10, "123.456"},
			{"12", "0.5", 10, "6"},
			{"999", "999", 10, "998001"},
			{"100", "100", 10, "10000"},
			{"7", "123456789", 10, "864197523"},
			{"FF", "FF", 16, "FE01"},
			{"11", "11", 2, "1001"},
			{"Z", "Z", 36, "Y1"},
			{"0.8", "2", 16, "1"},
		}
		for _, tt := range tests {
			d := MustParseRadix(tt.d, tt.radix)
			e := MustParseRadix(tt.e, tt.radix)
			got := d.Mul(e)
			want := MustParseRadix(tt.want, tt.radix)
			if got != want {
				t.Errorf("%q.Mul(%q) = %q, want %q", d, e, got, want)
			}
		}
	})

	t.Run("different radices", func(t *testing.T) {
		d := MustParseRadix("10", 16)
		e := MustParse("2")
		got := d.Mul(e)
		want := MustParseRadix("20", 16)
		if got != want {
			t.Errorf("%q.Mul(%q) = %q, want %q", d, e, got, want)
		}
	})

	t.Run("fraction bound", func(t *testing.T) {
		d, _ := ParseExact("0.11", 10, 3)
		got := d.Mul(d)
		if got.String() != "0.012" {
			t.Errorf("%q.Mul(%q) = %q, want \"0.012\"", d, d, got)
		}
	})
}

func TestNumber_MulInt64(t *testing.T) {
	tests := []struct {
		d     string
		radix int
		v     int64
		want  string
	}{
		{"1.5", 10, 3, "4.5"},
		{"1.5", 10, 0, "0"},
		{"F", 16, -2, "-1E"},
		{"-0.1", 2, 4, "-10"},
	}
	for _, tt := range tests {
		d := MustParseRadix(tt.d, tt.radix)
		got := d.MulInt64(tt.v)
		want := MustParseRadix(tt.want, tt.radix)
		if got != want {
			t.Errorf("%q.MulInt64(%v) = %q, want %q", d, tt.v, got, want)
		}
	}
}

func TestNumber_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e  string
			radix int
			want  string
		}{
			{"0", "7", 10, "0"},
			{"1", "4", 10, "0.25"},
			{"10", "4", 10, "2.5"},
			{"-9", "3", 10, "-3"},
			{"9", "-0.3", 10, "-30"},
			{"-0.5", "-0.25", 10, "2"},
			{"1025", "25", 10, "41"},
			{"1", "8", 10, "0.125"},
			{"7", "7", 10, "1"},
			{"100", "0.01", 10, "10000"},
			{"0.01", "100", 10, "0.0001"},
			{"1", "2", 2, "0.1"},
			{"FE01", "FF", 16, "FF"},
			{"1", "10", 36, "0.1"},
		}
		for _, tt := range tests {
			d := MustParseRadix(tt.d, tt.radix)
			e := MustParseRadix(tt.e, tt.radix)
			got, err := d.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", d, e, err)
				continue
			}
			want := MustParseRadix(tt.want, tt.radix)
			if got != want {
				t.Errorf("%q.Quo(%q) = %q, want %q", d, e, got, want)
			}
		}
	})

	t.Run("truncation", func(t *testing.T) {
		tests := []struct {
			d, e       string
			radix      int
			maxFracLen int
			want       string
		}{
			{"1", "3", 10, 10, "0.3333333333"},
			{"2", "3", 10, 5, "0.66666"},
			{"-1", "3", 10, 3, "-0.333"},
			{"1", "3", 10, 0, "0"},
			{"10", "3", 10, 0, "3"},
			{"1", "3", 16, 4, "0.5555"},
			{"1", "7", 10, 12, "0.142857142857"},
		}
		for _, tt := range tests {
			d, err := ParseExact(tt.d, tt.radix, tt.maxFracLen)
			if err != nil {
				t.Fatalf("ParseExact(%q) failed: %v", tt.d, err)
			}
			e := MustParseRadix(tt.e, tt.radix)
			got, err := d.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", d, e, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Quo(%q) = %q, want %q", d, e, got, tt.want)
			}
			if got.FracLen() > tt.maxFracLen {
				t.Errorf("%q.Quo(%q) has %v fractional digit(s), want at most %v", d, e, got.FracLen(), tt.maxFracLen)
			}
		}
	})

	t.Run("different radices", func(t *testing.T) {
		tests := []struct {
			d, e, want Number
		}{
			{MustParse("255"), MustParseRadix("F", 16), MustParse("17")},
			{MustParseRadix("FF", 16), MustParse("15"), MustParseRadix("11", 16)},
			{MustParse("1"), MustParseRadix("0.1", 2), MustParse("2")},
			{MustParseRadix("1", 2), MustParse("4"), MustParseRadix("0.01", 2)},
			{MustParse("0"), MustParseRadix("Z", 36), MustParse("0")},
		}
		for _, tt := range tests {
			got, err := tt.d.Quo(tt.e)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", tt.d, tt.e, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Quo(%q) = %q in radix %v, want %q in radix %v", tt.d, tt.e, got, got.Radix(), tt.want, tt.want.Radix())
			}
		}
	})

	t.Run("vanishing divisor", func(t *testing.T) {
		// 0.1 in radix 16 is 1/16, which has no digits in radix 10 with a bound of 1.
		e, err := ParseExact("0.1", 16, 1)
		if err != nil {
			t.Fatalf("ParseExact failed: %v", err)
		}
		for _, d := range []Number{MustParse("1"), MustParse("0")} {
			_, err := d.Quo(e)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%q.Quo(%q) failed with %v, want %v", d, e, err, ErrDivisionByZero)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d, e string
		}{
			"zero divisor 1": {"1", "0"},
			"zero divisor 2": {"0", "0"},
			"zero divisor 3": {"-1.5", "-0"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d, e := MustParse(tt.d), MustParse(tt.e)
				_, err := d.Quo(e)
				if !errors.Is(err, ErrDivisionByZero) {
					t.Errorf("%q.Quo(%q) failed with %v, want %v", d, e, err, ErrDivisionByZero)
				}
			})
		}
	})
}

func TestNumber_QuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e  string
			radix int
			q, r  string
		}{
			{"7", "2", 10, "3", "1"},
			{"-7", "2", 10, "-3", "-1"},
			{"7", "-2", 10, "-3", "1"},
			{"-7", "-2", 10, "3", "-1"},
			{"6", "3", 10, "2", "0"},
			{"1", "5", 10, "0", "1"},
			{"0", "5", 10, "0", "0"},
			{"1000000", "7", 10, "142857", "1"},
			{"FF", "10", 16, "F", "F"},
			{"111", "10", 2, "11", "1"},
		}
		for _, tt := range tests {
			d := MustParseRadix(tt.d, tt.radix)
			e := MustParseRadix(tt.e, tt.radix)
			gotQ, gotR, err := d.QuoRem(e)
			if err != nil {
				t.Errorf("%q.QuoRem(%q) failed: %v", d, e, err)
				continue
			}
			wantQ := MustParseRadix(tt.q, tt.radix)
			wantR := MustParseRadix(tt.r, tt.radix)
			if gotQ != wantQ || gotR != wantR {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), want (%q, %q)", d, e, gotQ, gotR, wantQ, wantR)
			}
			gotR, err = d.Rem(e)
			if err != nil {
				t.Errorf("%q.Rem(%q) failed: %v", d, e, err)
				continue
			}
			if gotR != wantR {
				t.Errorf("%q.Rem(%q) = %q, want %q", d, e, gotR, wantR)
			}
		}
	})

	t.Run("different radices", func(t *testing.T) {
		tests := []struct {
			d, e, q, r Number
		}{
			{MustParse("100"), MustParseRadix("F", 16), MustParse("6"), MustParse("10")},
			{MustParseRadix("FF", 16), MustParse("-16"), MustParseRadix("-F", 16), MustParseRadix("F", 16)},
			{MustParseRadix("-111", 2), MustParse("2"), MustParseRadix("-11", 2), MustParseRadix("-1", 2)},
		}
		for _, tt := range tests {
			gotQ, gotR, err := tt.d.QuoRem(tt.e)
			if err != nil {
				t.Errorf("%q.QuoRem(%q) failed: %v", tt.d, tt.e, err)
				continue
			}
			if gotQ != tt.q || gotR != tt.r {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), want (%q, %q)", tt.d, tt.e, gotQ, gotR, tt.q, tt.r)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d, e string
			want error
		}{
			"fractional operand 1": {"1.5", "1", ErrInvalidOperation},
			"fractional operand 2": {"1", "0.5", ErrInvalidOperation},
			"zero divisor 1":       {"1", "0", ErrDivisionByZero},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d, e := MustParse(tt.d), MustParse(tt.e)
				_, _, err := d.QuoRem(e)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.QuoRem(%q) failed with %v, want %v", d, e, err, tt.want)
				}
				_, err = d.Rem(e)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.Rem(%q) failed with %v, want %v", d, e, err, tt.want)
				}
			})
		}
	})
}

func TestNumber_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d     string
			radix int
			exp   int
			want  string
		}{
			{"2", 10, 10, "1024"},
			{"2", 10, 0, "1"},
			{"0", 10, 0, "1"},
			{"0", 10, 3, "0"},
			{"-2", 10, 3, "-8"},
			{"-2", 10, 2, "4"},
			{"2", 10, -2, "0.25"},
			{"1.5", 10, 2, "2.25"},
			{"10", 16, 2, "100"},
			{"10", 2, 5, "100000"},
			{"0", 10, math.MaxInt, "0"},
			{"1", 10, math.MinInt, "1"},
			{"-1", 10, math.MinInt, "1"},
			{"-1", 10, math.MaxInt, "-1"},
			{"1", 16, math.MaxInt, "1"},
		}
		for _, tt := range tests {
			d := MustParseRadix(tt.d, tt.radix)
			got, err := d.Pow(tt.exp)
			if err != nil {
				t.Errorf("%q.Pow(%v) failed: %v", d, tt.exp, err)
				continue
			}
			want := MustParseRadix(tt.want, tt.radix)
			if got != want {
				t.Errorf("%q.Pow(%v) = %q, want %q", d, tt.exp, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d    string
			exp  int
			want error
		}{
			"zero to negative 1": {"0", -1, ErrDivisionByZero},
			"zero to negative 2": {"0", math.MinInt, ErrDivisionByZero},
			"overflow 1":         {"2", math.MinInt, ErrOverflow},
			"overflow 2":         {"2", math.MaxInt, ErrOverflow},
			"overflow 3":         {"0.5", -MaxFracLenLimit - 1, ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d := MustParse(tt.d)
				_, err := d.Pow(tt.exp)
				if !errors.Is(err, tt.want) {
					t.Errorf("%q.Pow(%v) failed with %v, want %v", d, tt.exp, err, tt.want)
				}
			})
		}
	})
}

func FuzzNumber_QuoRem(f *testing.F) {
	for _, v := range []int64{0, 1, -1, 7, -7, 255, 1000000} {
		for _, r := range []int{2, 10, 16, 36} {
			f.Add(v, int64(3), r)
			f.Add(v, int64(-16), r)
		}
	}

	f.Fuzz(
		func(t *testing.T, a, b int64, radix int) {
			d, err := NewFromInt64Radix(a, radix)
			if err != nil {
				t.Skip()
				return
			}
			e, err := NewFromInt64Radix(b, radix)
			if err != nil || e.IsZero() {
				t.Skip()
				return
			}
			q, r, err := d.QuoRem(e)
			if err != nil {
				t.Errorf("%q.QuoRem(%q) failed: %v", d, e, err)
				return
			}
			got := q.Mul(e).Add(r)
			if got != d {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), but q * e + r = %q", d, e, q, r, got)
			}
			if r.Abs().Cmp(e.Abs()) >= 0 {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), remainder is not less than divisor", d, e, q, r)
			}
		},
	)
}
