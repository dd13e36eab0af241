package poly

import (
	"errors"
	"fmt"

	"stark-math/ff"
	"stark-math/field"
	"stark-math/ntt"
)

// Interpolate returns the unique polynomial of degree < len(points)
// through the pairs (points[i], values[i]), by Lagrange interpolation.
// It fails with the field length-mismatch error when the slices differ
// in length and with ErrDuplicatePoint when two points coincide.
func Interpolate[E ff.Element[E]](points, values []E) (Polynomial[E], error) {
	if len(points) != len(values) {
		return Polynomial[E]{}, fmt.Errorf("poly: %d points against %d values: %w",
			len(points), len(values), field.ErrLengthMismatch)
	}
	if len(points) == 0 {
		return Polynomial[E]{}, nil
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Equal(points[j]) {
				return Polynomial[E]{}, fmt.Errorf("poly: points %d and %d coincide: %w", i, j, ErrDuplicatePoint)
			}
		}
	}
	var one E
	zerofier := Zerofier(points)
	acc := Polynomial[E]{}
	for i := range points {
		// numerator_i = zerofier / (x - points[i]); the division is exact.
		num, rem, err := zerofier.DivMod(New([]E{points[i].Neg(), one.One()}))
		if err != nil {
			return Polynomial[E]{}, err
		}
		if !rem.IsZero() {
			panic("poly: zerofier not divisible by its own linear factor")
		}
		denomInv, err := num.Evaluate(points[i]).Inverse()
		if err != nil {
			// Unreachable after the duplicate check above.
			return Polynomial[E]{}, fmt.Errorf("poly: degenerate interpolation point %d: %w", i, ErrDuplicatePoint)
		}
		acc = acc.Add(num.Scale(values[i].Mul(denomInv)))
	}
	return acc, nil
}

// InterpolateRootsOfUnity interpolates values given at the len(values)-th
// roots of unity (values[i] at omega^i) via the inverse transform. The
// result matches Lagrange interpolation over the same point set.
func InterpolateRootsOfUnity[E ff.Element[E]](values []E) (Polynomial[E], error) {
	coeffs, err := ntt.Inverse(values)
	if err != nil {
		return Polynomial[E]{}, err
	}
	return New(coeffs), nil
}

// EvaluateRootsOfUnity evaluates p at all n-th roots of unity in one
// forward transform; entry i is p(omega^i). n must be a supported
// transform size covering the degree of p.
func (p Polynomial[E]) EvaluateRootsOfUnity(n int) ([]E, error) {
	if len(p.coeffs) > n {
		return nil, errors.New("poly: transform size smaller than coefficient count")
	}
	padded := make([]E, n)
	copy(padded, p.coeffs)
	return ntt.Forward(padded)
}
