/*
Package radix implements immutable arbitrary-precision fixed-point numbers
in positional numeral systems with radices from 2 to 36.
It favors correctness and clarity over speed: every operation works digit by
digit, the way it would be done with pen and paper.

# Representation

[Number] is a struct with the following fields:

  - Sign: a boolean indicating whether the number is negative.
  - Radix: an integer from [MinRadix] to [MaxRadix].
  - Digits: the magnitude of the number without the radix point,
    most significant digit first.
    Digits greater than 9 are written as letters 'A' to 'Z'.
  - Scale: the number of digits after the radix point.
  - Fraction bound: the maximum number of digits after the radix point.
    It is [DefaultMaxFracLen] unless specified with [ParseExact] or
    [Number.WithMaxFracLen], and it cannot exceed [MaxFracLenLimit].

Numbers are always kept in canonical form: the integer part has no leading
zeros, the fractional part has no trailing zeros, and zero is never negative.
For example, parsing "007.50" in radix 8 produces the number 7.5 with one
integer digit and one fractional digit.

# Positions

Digits are addressed by their position relative to the radix point:

  - 0 is the units digit;
  - positive positions move towards more significant digits;
  - negative positions address the fractional part, -1 being the first
    digit after the radix point.

Positions outside of the representation hold implicit zeros.
See [Number.DigitAt], [Number.WithDigitAt], [Number.ExtractDigitAt] and
[Number.MoveFloatPoint].

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [ParseRadix], [ParseExact], [Number.String], [Number.Format].
  - from/to int64:
    [NewFromInt64], [NewFromInt64Radix], [Number.Int64].
  - between radices:
    [Number.ToDecimal], [Number.ToRadix], [Number.ToBinary], [Number.ToOctal],
    [Number.ToHex].

Conversions between power-of-two radices (2, 4, 8, 16 and 32) regroup the bits
of the digits directly.
All other conversions go through radix 10.
Fractions that have no finite expansion in the target radix are truncated
at the fraction bound.

# Operations

Binary operations accept operands in different radices.
The right operand is converted to the radix of the left operand, and the
result has the radix of the left operand and the larger of the two
fraction bounds.

  - [Number.Add] and [Number.Sub] propagate carries and borrows digit by digit.
  - [Number.Mul] accumulates partial products of the longer operand and each
    digit of the shorter one.
  - [Number.Quo] performs long division and truncates the quotient after
    the fraction bound of the dividend.
  - [Number.QuoRem] and [Number.Rem] are defined for integers only.

Comparison methods [Number.Equal], [Number.Cmp] and friends compare numbers
in different radices after converting both to radix 10.

# Rounding

The only rounding mode is truncation towards zero at the fraction bound.
It is applied while parsing, multiplying, dividing and converting between radices.

# Errors

All methods are panic-free and pure, except for the Must* variants.
Errors are returned in the following cases:

  - [ErrRadixRange]: a radix outside of [MinRadix] to [MaxRadix].
  - [ErrFracLenRange]: a fraction bound outside of 0 to [MaxFracLenLimit].
  - [ErrMultipleRadixPoints]: a string with more than one radix point.
  - [ErrInvalidDigit]: a character that is not a digit in the radix.
  - [ErrDivisionByZero]: a zero divisor.
  - [ErrInvalidOperation]: [Number.QuoRem] or [Number.Rem] with a fractional operand.
  - [ErrOverflow]: [Number.Int64] of a number out of the int64 range.

All errors are wrapped with context and can be tested with [errors.Is].
*/
package radix
