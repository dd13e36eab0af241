package field

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"
)

func bigModulus() *big.Int {
	return new(big.Int).SetUint64(Modulus)
}

func randomElements(t *testing.T, seed int64, n int) []Element {
	t.Helper()
	src := mrand.New(mrand.NewSource(seed))
	out, err := RandomElements(src, n)
	if err != nil {
		t.Fatalf("sampling: %v", err)
	}
	return out
}

func TestNewReduces(t *testing.T) {
	if New(Modulus) != 0 {
		t.Fatalf("New(p) must be zero")
	}
	if New(Modulus+1) != 1 {
		t.Fatalf("New(p+1) must be one")
	}
	if New(Modulus-1) != Element(Modulus-1) {
		t.Fatalf("New(p-1) must stay canonical")
	}
}

func TestArithmeticAgainstBigInt(t *testing.T) {
	src := mrand.New(mrand.NewSource(42))
	p := bigModulus()
	for i := 0; i < 2000; i++ {
		a, err := Random(src)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Random(src)
		if err != nil {
			t.Fatal(err)
		}
		ab := new(big.Int).SetUint64(uint64(a))
		bb := new(big.Int).SetUint64(uint64(b))

		sum := new(big.Int).Add(ab, bb)
		sum.Mod(sum, p)
		if got := a.Add(b); uint64(got) != sum.Uint64() {
			t.Fatalf("add mismatch: %d + %d: got %d want %d", a, b, got, sum)
		}

		diff := new(big.Int).Sub(ab, bb)
		diff.Mod(diff, p)
		if got := a.Sub(b); uint64(got) != diff.Uint64() {
			t.Fatalf("sub mismatch: %d - %d: got %d want %d", a, b, got, diff)
		}

		prod := new(big.Int).Mul(ab, bb)
		prod.Mod(prod, p)
		if got := a.Mul(b); uint64(got) != prod.Uint64() {
			t.Fatalf("mul mismatch: %d * %d: got %d want %d", a, b, got, prod)
		}
	}
}

func TestMulBoundaryValues(t *testing.T) {
	p := bigModulus()
	extremes := []Element{0, 1, 2, Element(Modulus - 1), Element(Modulus - 2), Element(1 << 32), Element((1 << 32) - 1), Element(1<<32 + 1)}
	for _, a := range extremes {
		for _, b := range extremes {
			want := new(big.Int).Mul(new(big.Int).SetUint64(uint64(a)), new(big.Int).SetUint64(uint64(b)))
			want.Mod(want, p)
			if got := a.Mul(b); uint64(got) != want.Uint64() {
				t.Fatalf("mul mismatch at boundary: %d * %d: got %d want %d", a, b, got, want)
			}
		}
	}
}

// Inverse vectors carried over from the reference system's test suite.
func TestInverseKnownVectors(t *testing.T) {
	vectors := map[uint64]uint64{
		1:        1,
		2:        9223372034707292161,
		3:        12297829379609722881,
		4:        13835058052060938241,
		5:        14757395255531667457,
		6:        15372286724512153601,
		7:        2635249152773512046,
		8:        16140901060737761281,
		9:        4099276459869907627,
		10:       16602069662473125889,
		85671106: 13115294102219178839,
	}
	for v, want := range vectors {
		got, err := Element(v).Inverse()
		if err != nil {
			t.Fatalf("inverse(%d): %v", v, err)
		}
		if uint64(got) != want {
			t.Fatalf("inverse(%d): got %d want %d", v, got, want)
		}
	}
}

func TestInverseZeroFails(t *testing.T) {
	if _, err := Element(0).Inverse(); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("inverse of zero: got %v want ErrDivisionByZero", err)
	}
	if _, err := Element(5).Div(0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("division by zero: got %v want ErrDivisionByZero", err)
	}
}

// The Fermat inverse must agree bit for bit with the extended-Euclidean
// inverse; big.Int's ModInverse is the Euclidean oracle.
func TestInverseMatchesEuclidean(t *testing.T) {
	p := bigModulus()
	for _, a := range randomElements(t, 7, 500) {
		if a == 0 {
			continue
		}
		want := new(big.Int).ModInverse(new(big.Int).SetUint64(uint64(a)), p)
		got, err := a.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		if uint64(got) != want.Uint64() {
			t.Fatalf("inverse(%d): fermat %d, euclid %d", a, got, want)
		}
	}
}

func TestBatchInverse(t *testing.T) {
	values := randomElements(t, 11, 64)
	inv, err := BatchInverse(values)
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		want, err := values[i].Inverse()
		if err != nil {
			t.Fatal(err)
		}
		if inv[i] != want {
			t.Fatalf("batch inverse mismatch at %d", i)
		}
	}

	if out, err := BatchInverse(nil); err != nil || out != nil {
		t.Fatalf("empty batch: got (%v, %v)", out, err)
	}
	if _, err := BatchInverse([]Element{3, 0, 5}); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("batch with zero: got %v want ErrDivisionByZero", err)
	}
}

func TestPow(t *testing.T) {
	if Element(0).Pow(0) != 1 {
		t.Fatalf("0^0 must be 1")
	}
	if Element(281474976710656).Pow(4) != 1 {
		t.Fatalf("4th root to the 4th must be 1")
	}
	if Element(281474976710656).Pow(5) != Element(281474976710656) {
		t.Fatalf("4th root to the 5th must be itself")
	}
	a := Element(123456789)
	want := One()
	for i := 0; i < 20; i++ {
		if got := a.Pow(uint64(i)); got != want {
			t.Fatalf("pow(%d): got %s want %s", i, got, want)
		}
		want = want.Mul(a)
	}
}

func TestLegendre(t *testing.T) {
	if Element(0).Legendre() != 0 {
		t.Fatal("legendre(0) must be 0")
	}
	for _, a := range randomElements(t, 3, 50) {
		if a == 0 {
			continue
		}
		sq := a.Mul(a)
		if sq.Legendre() != 1 {
			t.Fatalf("legendre of square %s must be 1", sq)
		}
	}
}

func TestPrimitiveRootsOfUnity(t *testing.T) {
	if r, err := PrimitiveRootOfUnity(1); err != nil || r != 1 {
		t.Fatalf("order 1: got (%v, %v)", r, err)
	}
	for k := 1; k <= 32; k++ {
		n := uint64(1) << uint(k)
		root, err := PrimitiveRootOfUnity(n)
		if err != nil {
			t.Fatalf("order 2^%d: %v", k, err)
		}
		if root.Pow(n) != 1 {
			t.Fatalf("root of order 2^%d: root^n != 1", k)
		}
		if root.Pow(n/2) == 1 {
			t.Fatalf("root of order 2^%d has smaller order", k)
		}
		if k > 1 {
			prev, _ := PrimitiveRootOfUnity(n / 2)
			if root.Mul(root) != prev {
				t.Fatalf("root tower broken at 2^%d", k)
			}
		}
	}

	for _, n := range []uint64{0, 3, 6, 100, 1 << 33} {
		if _, err := PrimitiveRootOfUnity(n); !errors.Is(err, ErrUnsupportedSize) {
			t.Fatalf("order %d: got %v want ErrUnsupportedSize", n, err)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, a := range append(randomElements(t, 5, 100), 0, 1, Element(Modulus-1)) {
		enc := a.Encode()
		if len(enc) != Bytes {
			t.Fatalf("encoding must be %d bytes", Bytes)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatal(err)
		}
		if dec != a {
			t.Fatalf("round trip: got %s want %s", dec, a)
		}
	}

	if _, err := Decode([]byte{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short input: got %v want ErrLengthMismatch", err)
	}
	// p itself and the all-ones word are both non-canonical.
	nonCanonical := Element(0).Encode()
	copy(nonCanonical, []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF})
	if _, err := Decode(nonCanonical); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("encoding of p: got %v want ErrOutOfRange", err)
	}
	if _, err := Decode([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("max word: got %v want ErrOutOfRange", err)
	}
}

func TestSamplingIsCanonical(t *testing.T) {
	for _, a := range randomElements(t, 99, 1000) {
		if uint64(a) >= Modulus {
			t.Fatalf("sampled non-canonical value %d", a)
		}
	}
}
