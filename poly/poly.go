// Package poly implements dense univariate polynomials over any element
// type satisfying the generic field capability set, so the same code
// serves the base field and its extension. Coefficient vectors are kept
// trimmed: no trailing zero ever survives a constructor or operation,
// and the zero polynomial is the empty vector.
package poly

import (
	"errors"

	"stark-math/ff"
	"stark-math/field"
	"stark-math/ntt"
)

// ErrDuplicatePoint reports repeated interpolation points.
var ErrDuplicatePoint = errors.New("poly: duplicate interpolation point")

// Result lengths up to this bound multiply by schoolbook convolution;
// larger products go through the transform. Both paths agree exactly.
const naiveMulThreshold = 64

// Polynomial is a dense coefficient vector; index i holds the x^i
// coefficient. The zero value is the zero polynomial.
type Polynomial[E ff.Element[E]] struct {
	coeffs []E
}

// New builds a polynomial from the given coefficients, copying and
// trimming trailing zeros.
func New[E ff.Element[E]](coeffs []E) Polynomial[E] {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	out := make([]E, n)
	copy(out, coeffs[:n])
	return Polynomial[E]{coeffs: out}
}

// Constant returns the degree-0 polynomial c (or zero for c == 0).
func Constant[E ff.Element[E]](c E) Polynomial[E] {
	return New([]E{c})
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[E]) IsZero() bool { return len(p.coeffs) == 0 }

// Degree returns the degree of p. The second return is false for the
// zero polynomial, whose degree is undefined.
func (p Polynomial[E]) Degree() (int, bool) {
	if len(p.coeffs) == 0 {
		return 0, false
	}
	return len(p.coeffs) - 1, true
}

// Coefficients returns a copy of the trimmed coefficient vector.
func (p Polynomial[E]) Coefficients() []E {
	out := make([]E, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coefficient returns the x^i coefficient, zero beyond the degree.
func (p Polynomial[E]) Coefficient(i int) E {
	if i < 0 || i >= len(p.coeffs) {
		var zero E
		return zero
	}
	return p.coeffs[i]
}

// LeadingCoefficient returns the highest nonzero coefficient, or zero
// for the zero polynomial.
func (p Polynomial[E]) LeadingCoefficient() E {
	if len(p.coeffs) == 0 {
		var zero E
		return zero
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Equal reports whether p and q have identical coefficient vectors.
func (p Polynomial[E]) Equal(q Polynomial[E]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Polynomial[E]) Add(q Polynomial[E]) Polynomial[E] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]E, n)
	for i := range out {
		out[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	return New(out)
}

// Sub returns p - q.
func (p Polynomial[E]) Sub(q Polynomial[E]) Polynomial[E] {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial[E]) Neg() Polynomial[E] {
	out := make([]E, len(p.coeffs))
	for i := range p.coeffs {
		out[i] = p.coeffs[i].Neg()
	}
	return Polynomial[E]{coeffs: out}
}

// Scale returns the coefficient-wise product with c.
func (p Polynomial[E]) Scale(c E) Polynomial[E] {
	out := make([]E, len(p.coeffs))
	for i := range p.coeffs {
		out[i] = p.coeffs[i].Mul(c)
	}
	return New(out)
}

// MulNaive returns p * q by schoolbook convolution.
func (p Polynomial[E]) MulNaive(q Polynomial[E]) Polynomial[E] {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial[E]{}
	}
	out := make([]E, len(p.coeffs)+len(q.coeffs)-1)
	for i, pi := range p.coeffs {
		if pi.IsZero() {
			continue
		}
		for j, qj := range q.coeffs {
			out[i+j] = out[i+j].Add(pi.Mul(qj))
		}
	}
	return New(out)
}

// Mul returns p * q. Small products use schoolbook convolution; larger
// ones are zero-padded to the least power of two covering the result,
// transformed, multiplied pointwise and transformed back. Both paths
// produce identical coefficients.
func (p Polynomial[E]) Mul(q Polynomial[E]) Polynomial[E] {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial[E]{}
	}
	resLen := len(p.coeffs) + len(q.coeffs) - 1
	if resLen <= naiveMulThreshold {
		return p.MulNaive(q)
	}
	n := 1
	for n < resLen {
		n <<= 1
	}
	pa := make([]E, n)
	copy(pa, p.coeffs)
	qa := make([]E, n)
	copy(qa, q.coeffs)
	fa, err := ntt.Forward(pa)
	if err != nil {
		// Sizes beyond the 2-adicity of p-1; exact but slow fallback.
		return p.MulNaive(q)
	}
	fb, err := ntt.Forward(qa)
	if err != nil {
		return p.MulNaive(q)
	}
	for i := range fa {
		fa[i] = fa[i].Mul(fb[i])
	}
	prod, err := ntt.Inverse(fa)
	if err != nil {
		return p.MulNaive(q)
	}
	return New(prod[:resLen])
}

// DivMod returns (quotient, remainder) of p by q with p = quotient*q +
// remainder and deg remainder < deg q, by long division. Dividing by the
// zero polynomial fails with the field division-by-zero error.
func (p Polynomial[E]) DivMod(q Polynomial[E]) (Polynomial[E], Polynomial[E], error) {
	if len(q.coeffs) == 0 {
		return Polynomial[E]{}, Polynomial[E]{}, field.ErrDivisionByZero
	}
	if len(p.coeffs) < len(q.coeffs) {
		return Polynomial[E]{}, p, nil
	}
	leadInv, err := q.LeadingCoefficient().Inverse()
	if err != nil {
		panic("poly: trimmed divisor has zero leading coefficient")
	}
	rem := make([]E, len(p.coeffs))
	copy(rem, p.coeffs)
	quo := make([]E, len(p.coeffs)-len(q.coeffs)+1)
	for i := len(p.coeffs) - 1; i >= len(q.coeffs)-1; i-- {
		if rem[i].IsZero() {
			continue
		}
		c := rem[i].Mul(leadInv)
		shift := i - (len(q.coeffs) - 1)
		quo[shift] = c
		for j, qj := range q.coeffs {
			rem[shift+j] = rem[shift+j].Sub(c.Mul(qj))
		}
	}
	return New(quo), New(rem[:len(q.coeffs)-1]), nil
}

// Evaluate returns p(x) by Horner's method.
func (p Polynomial[E]) Evaluate(x E) E {
	var acc E
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Zerofier returns the monic polynomial whose roots are exactly points,
// as the product of the linear factors (x - point).
func Zerofier[E ff.Element[E]](points []E) Polynomial[E] {
	var one E
	acc := Constant(one.One())
	for _, pt := range points {
		acc = acc.Mul(New([]E{pt.Neg(), one.One()}))
	}
	return acc
}
