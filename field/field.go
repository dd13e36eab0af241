package field

import (
	"errors"
	"fmt"
	"math/bits"
)

// Modulus is the field characteristic p = 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// epsilon = 2^32 - 1 satisfies 2^64 = epsilon (mod p) and 2^96 = -1 (mod p).
const epsilon uint64 = 0xFFFFFFFF

var (
	ErrDivisionByZero  = errors.New("field: division by zero")
	ErrOutOfRange      = errors.New("field: value out of canonical range")
	ErrLengthMismatch  = errors.New("field: length mismatch")
	ErrUnsupportedSize = errors.New("field: no primitive root of unity for this order")
)

// Element is a field element in canonical form, always < Modulus.
type Element uint64

// New reduces v into the canonical range.
func New(v uint64) Element {
	if v >= Modulus {
		v -= Modulus
	}
	return Element(v)
}

// Zero returns the additive identity.
func Zero() Element { return 0 }

// One returns the multiplicative identity.
func One() Element { return 1 }

// Uint64 returns the canonical representative.
func (a Element) Uint64() uint64 { return uint64(a) }

func (a Element) String() string { return fmt.Sprintf("%d", uint64(a)) }

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool { return a == 0 }

// IsOne reports whether a is the multiplicative identity.
func (a Element) IsOne() bool { return a == 1 }

// Equal reports whether a and b are the same element.
func (a Element) Equal(b Element) bool { return a == b }

// One returns the multiplicative identity. It ignores the receiver and
// exists so Element satisfies the generic element capability set.
func (a Element) One() Element { return 1 }

// Add returns a + b.
func (a Element) Add(b Element) Element {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		// a + b = s + 2^64 = s + epsilon (mod p), and a+b-p < p so no overflow.
		s += epsilon
	} else if s >= Modulus {
		s -= Modulus
	}
	return Element(s)
}

// Sub returns a - b.
func (a Element) Sub(b Element) Element {
	d, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		// Wrapped by 2^64; -2^64 = -epsilon (mod p).
		d -= epsilon
	}
	return Element(d)
}

// Neg returns -a.
func (a Element) Neg() Element {
	if a == 0 {
		return 0
	}
	return Element(Modulus - uint64(a))
}

// Mul returns a * b, folding the 128-bit product with the identities
// 2^64 = 2^32 - 1 and 2^96 = -1 (mod p). Exact for all canonical inputs.
func (a Element) Mul(b Element) Element {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return reduce128(hi, lo)
}

func reduce128(hi, lo uint64) Element {
	hiHi := hi >> 32
	hiLo := hi & epsilon
	// hi*2^64 + lo = hiHi*2^96 + hiLo*2^64 + lo = lo - hiHi + hiLo*epsilon (mod p).
	t, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		t -= epsilon
	}
	r, carry := bits.Add64(t, hiLo*epsilon, 0)
	if carry != 0 {
		r += epsilon
	}
	if r >= Modulus {
		r -= Modulus
	}
	return Element(r)
}

// ScalarMul multiplies by a base-field scalar. For the base field itself
// this is plain multiplication; it exists for the generic element set.
func (a Element) ScalarMul(c Element) Element { return a.Mul(c) }

// Square returns a * a.
func (a Element) Square() Element { return a.Mul(a) }

// Pow returns a^exp by square and multiply. Pow(0, 0) is 1.
func (a Element) Pow(exp uint64) Element {
	acc := Element(1)
	base := a
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
	}
	return acc
}

// Inverse returns a^-1 via Fermat's little theorem, a^(p-2). It fails
// with ErrDivisionByZero for the additive identity. The result equals
// the extended-Euclidean inverse bit for bit.
func (a Element) Inverse() (Element, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return a.Pow(Modulus - 2), nil
}

// Div returns a / b.
func (a Element) Div(b Element) (Element, error) {
	bInv, err := b.Inverse()
	if err != nil {
		return 0, err
	}
	return a.Mul(bInv), nil
}

// Legendre returns the Legendre symbol of a: 1 for a nonzero square,
// -1 for a non-square, 0 for zero.
func (a Element) Legendre() int {
	s := a.Pow((Modulus - 1) / 2)
	switch s {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return -1
	}
}

// BatchInverse inverts all elements with a single field inversion using
// Montgomery's trick. It fails with ErrDivisionByZero if any input is zero.
func BatchInverse(values []Element) ([]Element, error) {
	if len(values) == 0 {
		return nil, nil
	}
	prefix := make([]Element, len(values))
	acc := Element(1)
	for i, v := range values {
		if v == 0 {
			return nil, ErrDivisionByZero
		}
		prefix[i] = acc
		acc = acc.Mul(v)
	}
	inv, err := acc.Inverse()
	if err != nil {
		return nil, err
	}
	out := make([]Element, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		out[i] = inv.Mul(prefix[i])
		inv = inv.Mul(values[i])
	}
	return out, nil
}
