package field

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genElement() gopter.Gen {
	// Draw directly below p so the generator carries no modular bias.
	return gen.UInt64Range(0, Modulus-1).Map(func(v uint64) Element {
		return Element(v)
	})
}

func TestFieldAxioms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a+b == b+a", prop.ForAll(
		func(a, b Element) bool {
			return a.Add(b) == b.Add(a)
		},
		genElement(), genElement(),
	))

	properties.Property("(a+b)+c == a+(b+c)", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Add(b).Add(c) == a.Add(b.Add(c))
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a*b == b*a", prop.ForAll(
		func(a, b Element) bool {
			return a.Mul(b) == b.Mul(a)
		},
		genElement(), genElement(),
	))

	properties.Property("(a*b)*c == a*(b*c)", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Mul(b).Mul(c) == a.Mul(b.Mul(c))
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a*(b+c) == a*b + a*c", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Mul(b.Add(c)) == a.Mul(b).Add(a.Mul(c))
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a - b + b == a", prop.ForAll(
		func(a, b Element) bool {
			return a.Sub(b).Add(b) == a
		},
		genElement(), genElement(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Element) bool {
			return a.Add(a.Neg()) == 0
		},
		genElement(),
	))

	properties.Property("a != 0 -> a * inv(a) == 1", prop.ForAll(
		func(a Element) bool {
			if a == 0 {
				return true
			}
			inv, err := a.Inverse()
			if err != nil {
				return false
			}
			return a.Mul(inv) == 1
		},
		genElement(),
	))

	properties.Property("decode(encode(a)) == a", prop.ForAll(
		func(a Element) bool {
			dec, err := Decode(a.Encode())
			return err == nil && dec == a
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
