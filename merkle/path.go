package merkle

import (
	"encoding/binary"
	"fmt"
)

// Path is an authentication path: the sibling digests ordered leaf to
// root plus the leaf index whose bits (least-significant first) select
// the concatenation side at each level. Once produced it is an
// immutable, transferable value.
type Path struct {
	Index    int
	Siblings [][]byte
}

// Encode serializes the path as the concatenated fixed-width sibling
// digests followed by the index as an 8-byte little-endian integer.
func (p *Path) Encode() []byte {
	var width int
	if len(p.Siblings) > 0 {
		width = len(p.Siblings[0])
	}
	out := make([]byte, 0, len(p.Siblings)*width+8)
	for _, sib := range p.Siblings {
		out = append(out, sib...)
	}
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(p.Index))
	return append(out, idx[:]...)
}

// DecodePath parses an encoded path whose digests are digestSize bytes
// wide. It fails with ErrLengthMismatch when the byte count does not
// decompose into whole digests plus the trailing index.
func DecodePath(data []byte, digestSize int) (*Path, error) {
	if digestSize <= 0 {
		return nil, fmt.Errorf("merkle: digest size %d: %w", digestSize, ErrLengthMismatch)
	}
	if len(data) < 8 || (len(data)-8)%digestSize != 0 {
		return nil, fmt.Errorf("merkle: %d bytes do not hold whole %d-byte digests plus an index: %w",
			len(data), digestSize, ErrLengthMismatch)
	}
	height := (len(data) - 8) / digestSize
	siblings := make([][]byte, height)
	for i := range siblings {
		siblings[i] = append([]byte(nil), data[i*digestSize:(i+1)*digestSize]...)
	}
	index := binary.LittleEndian.Uint64(data[len(data)-8:])
	if height < 64 && index>>uint(height) != 0 {
		return nil, ErrMalformedPath
	}
	return &Path{Index: int(index), Siblings: siblings}, nil
}
