// Package ff declares the capability set a field element must expose for
// the polynomial and transform machinery to be instantiated over it. Both
// the base field and its degree-3 extension satisfy it, so the same
// generic code serves both without runtime type inspection.
package ff

import "stark-math/field"

// Element is the operation set required of a field element type E. The
// zero value of E must be the additive identity; One supplies the
// multiplicative identity from any receiver.
type Element[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Neg() E
	Inverse() (E, error)
	// ScalarMul multiplies by a base-field scalar. Transform twiddle
	// factors live in the base field, so the extension transform is the
	// coordinate-wise lift of the base one.
	ScalarMul(field.Element) E
	One() E
	IsZero() bool
	Equal(E) bool
}
