package field

import (
	"encoding/binary"
	"fmt"
)

// Bytes is the encoded width of an element: ceil(64/8) little-endian bytes.
const Bytes = 8

// Encode returns the fixed-width little-endian encoding of a.
func (a Element) Encode() []byte {
	out := make([]byte, Bytes)
	binary.LittleEndian.PutUint64(out, uint64(a))
	return out
}

// Decode parses a fixed-width little-endian encoding. It fails with
// ErrLengthMismatch on a wrong width and ErrOutOfRange if the decoded
// integer is not canonical.
func Decode(data []byte) (Element, error) {
	if len(data) != Bytes {
		return 0, fmt.Errorf("field: encoded element must be %d bytes, got %d: %w", Bytes, len(data), ErrLengthMismatch)
	}
	v := binary.LittleEndian.Uint64(data)
	if v >= Modulus {
		return 0, fmt.Errorf("field: decoded value %d is not canonical: %w", v, ErrOutOfRange)
	}
	return Element(v), nil
}
