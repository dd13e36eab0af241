package field

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Random samples a uniform element by rejection: 8-byte draws from src are
// resampled while >= p, never reduced, so the output carries no modular
// bias. A nil src falls back to crypto/rand.
func Random(src io.Reader) (Element, error) {
	if src == nil {
		src = rand.Reader
	}
	var buf [8]byte
	for {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return 0, fmt.Errorf("field: sampling: %w", err)
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v < Modulus {
			return Element(v), nil
		}
	}
}

// RandomElements samples n uniform elements from src.
func RandomElements(src io.Reader, n int) ([]Element, error) {
	out := make([]Element, n)
	for i := range out {
		e, err := Random(src)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
