package bench

import (
	"fmt"
	mrand "math/rand"
	"testing"

	"stark-math/field"
	"stark-math/ntt"
	"stark-math/poly"
)

func BenchmarkNTTForward(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 14, 1 << 18} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := mrand.New(mrand.NewSource(int64(n)))
			vec, err := field.RandomElements(src, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ntt.Forward(vec); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNTTRoundTrip(b *testing.B) {
	const n = 1 << 14
	src := mrand.New(mrand.NewSource(7))
	vec, err := field.RandomElements(src, n)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fwd, err := ntt.Forward(vec)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := ntt.Inverse(fwd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPolyMul(b *testing.B) {
	for _, deg := range []int{1 << 8, 1 << 12} {
		b.Run(fmt.Sprintf("deg=%d", deg), func(b *testing.B) {
			src := mrand.New(mrand.NewSource(int64(deg)))
			fc, err := field.RandomElements(src, deg+1)
			if err != nil {
				b.Fatal(err)
			}
			gc, err := field.RandomElements(src, deg+1)
			if err != nil {
				b.Fatal(err)
			}
			f := poly.New(fc)
			g := poly.New(gc)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = f.Mul(g)
			}
		})
	}
}
