// Package merkle implements a domain-separated binary hash tree over an
// ordered leaf sequence, with membership openings and stateless
// verification. The hash function is pluggable and fixed per tree; it
// only ever sees bytes, so the package is independent of the field types
// whose encodings typically make up the leaves.
//
// Leaf hashes are H(0x00 || leaf) and internal nodes H(0x01 || l || r),
// so a leaf digest can never be replayed as an internal node. Leaf
// counts that are not a power of two are padded with the digest of the
// empty sentinel leaf, H(0x00); padded positions cannot be opened.
package merkle

import (
	"bytes"
	"errors"
	"hash"
	"runtime"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

var (
	ErrEmptyInput      = errors.New("merkle: no leaves")
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
	ErrMalformedPath   = errors.New("merkle: authentication path has wrong shape")
	ErrLengthMismatch  = errors.New("merkle: encoded path length mismatch")
)

// DefaultHasher returns a BLAKE2b-256 instance, the tree's default hash.
func DefaultHasher() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("merkle: blake2b init: " + err.Error())
	}
	return h
}

// Tree is a built Merkle tree: the padded leaf-digest layer, every
// internal layer up to the root, and the hash constructor the digests
// were produced with.
type Tree struct {
	newHash   func() hash.Hash
	digestLen int
	leafCount int
	layers    [][][]byte
}

// New builds a tree over leaves with the given hash constructor (nil
// selects DefaultHasher). It fails with ErrEmptyInput on an empty leaf
// sequence. Layer hashing fans out over worker goroutines writing into
// fixed index slots, so the digests are bit-identical for any worker
// count.
func New(newHash func() hash.Hash, leaves [][]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyInput
	}
	if newHash == nil {
		newHash = DefaultHasher
	}
	size := 1
	for size < len(leaves) {
		size <<= 1
	}
	layer := make([][]byte, size)
	parallelFor(len(leaves), func(i int) {
		layer[i] = leafDigest(newHash, leaves[i])
	})
	padding := leafDigest(newHash, nil)
	for i := len(leaves); i < size; i++ {
		layer[i] = padding
	}
	layers := [][][]byte{layer}
	for sz := size; sz > 1; sz >>= 1 {
		prev := layers[len(layers)-1]
		next := make([][]byte, sz/2)
		parallelFor(sz/2, func(i int) {
			next[i] = nodeDigest(newHash, prev[2*i], prev[2*i+1])
		})
		layers = append(layers, next)
	}
	return &Tree{
		newHash:   newHash,
		digestLen: len(padding),
		leafCount: len(leaves),
		layers:    layers,
	}, nil
}

// Root returns the committed root digest.
func (t *Tree) Root() []byte {
	root := t.layers[len(t.layers)-1][0]
	out := make([]byte, len(root))
	copy(out, root)
	return out
}

// Height returns the number of levels between a leaf and the root.
func (t *Tree) Height() int { return len(t.layers) - 1 }

// LeafCount returns the number of committed (unpadded) leaves.
func (t *Tree) LeafCount() int { return t.leafCount }

// DigestSize returns the width in bytes of the tree's digests, as needed
// by DecodePath.
func (t *Tree) DigestSize() int { return t.digestLen }

// Open returns the authentication path for leaf index: the sibling
// digests ordered leaf to root, together with the index. It fails with
// ErrIndexOutOfRange beyond the committed leaf count.
func (t *Tree) Open(index int) (*Path, error) {
	if index < 0 || index >= t.leafCount {
		return nil, ErrIndexOutOfRange
	}
	siblings := make([][]byte, t.Height())
	idx := index
	for lvl := 0; lvl < t.Height(); lvl++ {
		sib := t.layers[lvl][idx^1]
		siblings[lvl] = append([]byte(nil), sib...)
		idx >>= 1
	}
	return &Path{Index: index, Siblings: siblings}, nil
}

// Verify recomputes the root from leaf, index and the sibling digests,
// consuming the index bits least-significant first to pick the
// concatenation order at each level. A digest mismatch is a normal
// false outcome; only a structurally invalid path (index not addressable
// within the path's height, or a sibling of the wrong width) fails, with
// ErrMalformedPath. Verify is stateless and does not know the tree's
// height, so a truncated path whose index still fits its level count is
// indistinguishable from a path for a shallower tree and reports a
// mismatch, not an error.
func Verify(newHash func() hash.Hash, root, leaf []byte, index int, siblings [][]byte) (bool, error) {
	if newHash == nil {
		newHash = DefaultHasher
	}
	if index < 0 || (len(siblings) < 64 && uint64(index) >= uint64(1)<<uint(len(siblings))) {
		return false, ErrMalformedPath
	}
	acc := leafDigest(newHash, leaf)
	idx := index
	for _, sib := range siblings {
		if len(sib) != len(acc) {
			return false, ErrMalformedPath
		}
		if idx&1 == 0 {
			acc = nodeDigest(newHash, acc, sib)
		} else {
			acc = nodeDigest(newHash, sib, acc)
		}
		idx >>= 1
	}
	return bytes.Equal(acc, root), nil
}

func leafDigest(newHash func() hash.Hash, leaf []byte) []byte {
	h := newHash()
	h.Write([]byte{leafPrefix})
	h.Write(leaf)
	return h.Sum(nil)
}

func nodeDigest(newHash func() hash.Hash, left, right []byte) []byte {
	h := newHash()
	h.Write([]byte{nodePrefix})
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// parallelFor runs fn(0..n-1) over at most GOMAXPROCS workers, each
// owning a contiguous index range. Small batches stay on the caller.
func parallelFor(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers < 2 || n < 4*workers {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
