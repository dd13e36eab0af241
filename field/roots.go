package field

import "fmt"

// primitiveRoots[k] is a primitive 2^k-th root of unity, for k in 1..32.
// 2^32 is the largest power of two dividing p-1, so no table entry (and
// no root) exists beyond k = 32. Entry k squares to entry k-1.
var primitiveRoots = [33]Element{
	1:  18446744069414584320,
	2:  281474976710656,
	3:  18446744069397807105,
	4:  17293822564807737345,
	5:  70368744161280,
	6:  549755813888,
	7:  17870292113338400769,
	8:  13797081185216407910,
	9:  1803076106186727246,
	10: 11353340290879379826,
	11: 455906449640507599,
	12: 17492915097719143606,
	13: 1532612707718625687,
	14: 16207902636198568418,
	15: 17776499369601055404,
	16: 6115771955107415310,
	17: 12380578893860276750,
	18: 9306717745644682924,
	19: 18146160046829613826,
	20: 3511170319078647661,
	21: 17654865857378133588,
	22: 5416168637041100469,
	23: 16905767614792059275,
	24: 9713644485405565297,
	25: 5456943929260765144,
	26: 17096174751763063430,
	27: 1213594585890690845,
	28: 6414415596519834757,
	29: 16116352524544190054,
	30: 9123114210336311365,
	31: 4614640910117430873,
	32: 1753635133440165772,
}

// PrimitiveRootOfUnity returns an element of multiplicative order exactly n.
// n must be a power of two dividing p-1 (so n <= 2^32); other orders fail
// with ErrUnsupportedSize.
func PrimitiveRootOfUnity(n uint64) (Element, error) {
	if n == 1 {
		return 1, nil
	}
	if n == 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("field: order %d is not a power of two: %w", n, ErrUnsupportedSize)
	}
	k := 0
	for m := n; m > 1; m >>= 1 {
		k++
	}
	if k > 32 {
		return 0, fmt.Errorf("field: order 2^%d exceeds the 2-adicity of p-1: %w", k, ErrUnsupportedSize)
	}
	return primitiveRoots[k], nil
}
