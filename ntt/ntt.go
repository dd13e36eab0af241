// Package ntt implements the forward and inverse number-theoretic
// transform over the base field and, through the generic element set,
// its extension. Transform sizes are the powers of two dividing p-1.
//
// Input and output are both in natural order: Forward(coefficients)[i]
// is the evaluation at omega^i, and Inverse is its exact two-sided
// inverse. The per-size twiddle tables live in a process-wide cache
// built at most once per size.
package ntt

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/utils"

	"stark-math/ff"
	"stark-math/field"
)

// Forward evaluates the polynomial with coefficient vector values at all
// len(values)-th roots of unity. The size must be a power of two with a
// primitive root of that order; otherwise the field unsupported-size
// error is returned. The input slice is not modified.
func Forward[E ff.Element[E]](values []E) ([]E, error) {
	return transform(values, false)
}

// Inverse is the exact inverse of Forward: the same butterfly passes over
// the inverse root followed by scaling with n^-1.
func Inverse[E ff.Element[E]](values []E) ([]E, error) {
	out, err := transform(values, true)
	if err != nil {
		return nil, err
	}
	tbl, err := rootTable(len(values))
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].ScalarMul(tbl.nInv)
	}
	return out, nil
}

func transform[E ff.Element[E]](values []E, inverse bool) ([]E, error) {
	n := len(values)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ntt: size %d is not a power of two: %w", n, field.ErrUnsupportedSize)
	}
	tbl, err := rootTable(n)
	if err != nil {
		return nil, err
	}
	out := make([]E, n)
	if n == 1 {
		out[0] = values[0]
		return out, nil
	}
	logN := bits.Len(uint(n)) - 1
	for i := range values {
		out[utils.BitReverse64(uint64(i), uint64(logN))] = values[i]
	}
	roots := tbl.fwd
	if inverse {
		roots = tbl.bwd
	}
	// In-place Cooley-Tukey over the bit-reversed input; butterfly order
	// is fixed by the loop nest, independent of the caller's environment.
	for m := 1; m < n; m <<= 1 {
		step := n / (2 * m)
		for k := 0; k < n; k += 2 * m {
			for j := 0; j < m; j++ {
				w := roots[j*step]
				t := out[k+m+j].ScalarMul(w)
				u := out[k+j]
				out[k+j] = u.Add(t)
				out[k+m+j] = u.Sub(t)
			}
		}
	}
	return out, nil
}
