package kernels

import (
	"fmt"
	"math"
)

// isqrt returns floor(sqrt(n)). Panics if n is negative.
//
// The float64 estimate is exact for every int32 perfect square, and the two
// correction loops settle the rest; each runs at most once.
func isqrt(n int32) int32 {
	if n < 0 {
		panic(fmt.Sprintf("kernels: isqrt of negative value %d", n))
	}
	x := int64(n)
	r := int64(math.Sqrt(float64(x)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return int32(r)
}
