package radix

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The text is parsed as a decimal number, see method [Parse].
// Use [ParseRadix] for numbers in other radices.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Number) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The radix is not included in the text, so numbers in radices other than 10
// should be converted with [Number.ToDecimal] first, or marshaled with
// [Number.MarshalBinary].
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Number) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// numberCBOR is the CBOR representation of a number.
type numberCBOR struct {
	_       struct{} `cbor:",toarray"`
	Radix   uint8
	Text    string
	MaxFrac uint32
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The number is encoded as a CBOR array of its radix, its canonical text
// and its fraction bound, so the encoding is lossless.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Number) MarshalBinary() ([]byte, error) {
	v := numberCBOR{
		Radix:   uint8(d.Radix()),
		Text:    d.String(),
		MaxFrac: uint32(d.MaxFracLen()),
	}
	data, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %v: %w", d, err)
	}
	return data, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// Also see method [Number.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Number) UnmarshalBinary(data []byte) error {
	var v numberCBOR
	if err := cbor.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}
	f, err := ParseExact(v.Text, int(v.Radix), int(v.MaxFrac))
	if err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}
	*d = f
	return nil
}

// Hash returns a hash of the representation of d, that is its radix, sign,
// radix point position, digits and fraction bound.
// Numbers that are equal according to the == operator have equal hashes.
// Numerically equal numbers in different radices generally have different hashes.
func (d Number) Hash() uint64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(d.Radix()))
	if d.IsNeg() {
		h = fnv1a.AddUint64(h, 1)
	} else {
		h = fnv1a.AddUint64(h, 0)
	}
	h = fnv1a.AddUint64(h, uint64(d.IntLen()))
	h = fnv1a.AddUint64(h, uint64(d.MaxFracLen()))
	h = fnv1a.AddString64(h, d.digits())
	return h
}
