package xfield

import "stark-math/field"

// xpoly is a coefficient vector over the base field used only by the
// Euclidean inversion; index i holds the x^i coefficient.
type xpoly []field.Element

func (p xpoly) trim() xpoly {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

func (p xpoly) isZero() bool { return len(p.trim()) == 0 }

func (p xpoly) sub(q xpoly) xpoly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(xpoly, n)
	for i := range out {
		var pi, qi field.Element
		if i < len(p) {
			pi = p[i]
		}
		if i < len(q) {
			qi = q[i]
		}
		out[i] = pi.Sub(qi)
	}
	return out.trim()
}

func (p xpoly) scale(c field.Element) xpoly {
	out := make(xpoly, len(p))
	for i := range p {
		out[i] = p[i].Mul(c)
	}
	return out.trim()
}

func (p xpoly) mul(q xpoly) xpoly {
	a, b := p.trim(), q.trim()
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(xpoly, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] = out[i+j].Add(ai.Mul(bj))
		}
	}
	return out.trim()
}

// divMod performs polynomial long division; q must be nonzero.
func (p xpoly) divMod(q xpoly) (xpoly, xpoly) {
	a, b := p.trim(), q.trim()
	if len(b) == 0 {
		panic("xfield: division by zero polynomial")
	}
	if len(a) < len(b) {
		return nil, a
	}
	rem := make(xpoly, len(a))
	copy(rem, a)
	quo := make(xpoly, len(a)-len(b)+1)
	leadInv, err := b[len(b)-1].Inverse()
	if err != nil {
		panic("xfield: trimmed divisor has zero leading coefficient")
	}
	for i := len(a) - 1; i >= len(b)-1; i-- {
		c := rem[i]
		if c == 0 {
			continue
		}
		c = c.Mul(leadInv)
		quo[i-(len(b)-1)] = c
		for j, bj := range b {
			k := i - (len(b) - 1) + j
			rem[k] = rem[k].Sub(c.Mul(bj))
		}
	}
	return quo.trim(), rem[:len(b)-1].trim()
}
