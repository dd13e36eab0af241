package xfield

import (
	"fmt"

	"stark-math/field"
)

// Bytes is the encoded width: the three coordinate encodings concatenated
// in basis order.
const Bytes = Degree * field.Bytes

// Encode returns the fixed-width encoding of a.
func (a Element) Encode() []byte {
	out := make([]byte, 0, Bytes)
	for _, c := range a {
		out = append(out, c.Encode()...)
	}
	return out
}

// Decode parses the fixed-width coordinate encoding, failing with the
// field length/range errors on malformed input.
func Decode(data []byte) (Element, error) {
	if len(data) != Bytes {
		return Element{}, fmt.Errorf("xfield: encoded element must be %d bytes, got %d: %w", Bytes, len(data), field.ErrLengthMismatch)
	}
	var out Element
	for i := range out {
		c, err := field.Decode(data[i*field.Bytes : (i+1)*field.Bytes])
		if err != nil {
			return Element{}, fmt.Errorf("xfield: coordinate %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}
