// Package xfield implements the degree-3 extension of the base field,
// F_p[x]/(x^3 - x + 1). Elements are coordinate triples over the power
// basis {1, x, x^2}; multiplication is schoolbook followed by reduction
// with the defining relation x^3 = x - 1.
package xfield

import (
	"fmt"
	"io"
	"math/big"

	"stark-math/field"
)

// Degree is the extension degree over the base field.
const Degree = 3

// Element is an extension-field element; coordinate i is the coefficient
// of x^i. The zero value is the additive identity.
type Element [Degree]field.Element

// New builds an element from its three coordinates.
func New(c0, c1, c2 field.Element) Element {
	return Element{c0, c1, c2}
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element { return Element{1, 0, 0} }

// Lift embeds a base-field element as the constant coordinate. The lift
// commutes with addition and multiplication.
func Lift(a field.Element) Element {
	return Element{a, 0, 0}
}

// Coordinates returns the coordinate triple of a.
func (a Element) Coordinates() [Degree]field.Element { return [Degree]field.Element(a) }

func (a Element) String() string {
	return fmt.Sprintf("(%s, %s, %s)", a[0], a[1], a[2])
}

// IsZero reports whether a is the zero tuple.
func (a Element) IsZero() bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0
}

// IsOne reports whether a is the multiplicative identity.
func (a Element) IsOne() bool {
	return a[0].IsOne() && a[1] == 0 && a[2] == 0
}

// Equal reports whether a and b coincide coordinate-wise.
func (a Element) Equal(b Element) bool { return a == b }

// One returns the multiplicative identity from any receiver.
func (a Element) One() Element { return Element{1, 0, 0} }

// Add returns a + b coordinate-wise.
func (a Element) Add(b Element) Element {
	return Element{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2])}
}

// Sub returns a - b coordinate-wise.
func (a Element) Sub(b Element) Element {
	return Element{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2])}
}

// Neg returns -a.
func (a Element) Neg() Element {
	return Element{a[0].Neg(), a[1].Neg(), a[2].Neg()}
}

// ScalarMul multiplies every coordinate by the base-field scalar c.
func (a Element) ScalarMul(c field.Element) Element {
	return Element{a[0].Mul(c), a[1].Mul(c), a[2].Mul(c)}
}

// Mul returns a * b: schoolbook product of the coordinate tuples, then
// substitution of x^3 = x - 1 and x^4 = x^2 - x for the high terms.
func (a Element) Mul(b Element) Element {
	t0 := a[0].Mul(b[0])
	t1 := a[0].Mul(b[1]).Add(a[1].Mul(b[0]))
	t2 := a[0].Mul(b[2]).Add(a[1].Mul(b[1])).Add(a[2].Mul(b[0]))
	t3 := a[1].Mul(b[2]).Add(a[2].Mul(b[1]))
	t4 := a[2].Mul(b[2])
	return Element{
		t0.Sub(t3),
		t1.Add(t3).Sub(t4),
		t2.Add(t4),
	}
}

// Square returns a * a.
func (a Element) Square() Element { return a.Mul(a) }

// Pow returns a^exp by square and multiply. A nil or zero exponent gives 1.
func (a Element) Pow(exp *big.Int) Element {
	if exp == nil || exp.Sign() == 0 {
		return One()
	}
	acc := One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		acc = acc.Square()
		if exp.Bit(i) == 1 {
			acc = acc.Mul(a)
		}
	}
	return acc
}

// Inverse returns a^-1 via the extended Euclidean algorithm over the
// coordinate representation modulo x^3 - x + 1. It fails with the field
// division-by-zero error for the zero tuple.
func (a Element) Inverse() (Element, error) {
	if a.IsZero() {
		return Element{}, fmt.Errorf("xfield: inverse of zero tuple: %w", field.ErrDivisionByZero)
	}
	// r0 = x^3 - x + 1, r1 = a; maintain t with t*a = r (mod r0).
	r0 := xpoly{1, field.New(field.Modulus - 1), 0, 1}
	r1 := xpoly{a[0], a[1], a[2]}.trim()
	t0 := xpoly{}
	t1 := xpoly{1}
	for !r1.isZero() {
		q, r := r0.divMod(r1)
		r0, r1 = r1, r
		t0, t1 = t1, t0.sub(q.mul(t1))
	}
	// r0 is a nonzero constant since the modulus is irreducible.
	lead, err := r0[0].Inverse()
	if err != nil {
		panic("xfield: euclidean remainder chain ended at zero")
	}
	t0 = t0.scale(lead)
	var out Element
	for i := 0; i < Degree && i < len(t0); i++ {
		out[i] = t0[i]
	}
	return out, nil
}

// Random samples a uniform element by drawing three uniform coordinates.
func Random(src io.Reader) (Element, error) {
	var out Element
	for i := range out {
		c, err := field.Random(src)
		if err != nil {
			return Element{}, err
		}
		out[i] = c
	}
	return out, nil
}
