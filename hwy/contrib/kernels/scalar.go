package kernels

// This file holds the scalar reference kernels. They use ordinary slices and
// index loops and define the expected output for the SIMD versions in simd.go.

// ScalarSum returns 15 + 40.
func ScalarSum() int32 {
	return ScalarSumOf(sumX, sumY)
}

// ScalarSumOf returns x + y.
func ScalarSumOf(x, y int32) int32 {
	return x + y
}

// ScalarVectorAdd adds two fixed 4-element vectors elementwise.
//
// The kernel this pair derives from was called a "dot product", but it has
// always computed an elementwise sum, not an inner product. That behavior is
// kept; only the name changed.
func ScalarVectorAdd() []int32 {
	return ScalarVectorAddOf(vecA[:], vecB[:])
}

// ScalarVectorAddOf returns c where c[i] = a[i] + b[i].
// Panics if len(b) < len(a).
func ScalarVectorAddOf(a, b []int32) []int32 {
	c := make([]int32, len(a))
	for i := 0; i < len(a); i++ {
		c[i] = a[i] + b[i]
	}
	return c
}

// ScalarArrayOps returns the elementwise sum, difference and product of two
// fixed 4-element vectors, in that order.
func ScalarArrayOps() [][]int32 {
	return ScalarArrayOpsOf(vecA[:], vecB[:])
}

// ScalarArrayOpsOf returns [a+b, a-b, a*b], each computed elementwise.
// Panics if len(b) < len(a).
func ScalarArrayOpsOf(a, b []int32) [][]int32 {
	addArr := make([]int32, len(a))
	subArr := make([]int32, len(a))
	mulArr := make([]int32, len(a))

	for i := 0; i < len(a); i++ {
		addArr[i] = a[i] + b[i]
		subArr[i] = a[i] - b[i]
		mulArr[i] = a[i] * b[i]
	}

	return [][]int32{addArr, subArr, mulArr}
}

// ScalarMaxMin returns [max, min] of a fixed 8-element array.
func ScalarMaxMin() [2]int32 {
	return ScalarMaxMinOf(maxMinInput[:])
}

// ScalarMaxMinOf returns [max, min] of values.
// values must be non-empty; ScalarMaxMinOf panics otherwise.
func ScalarMaxMinOf(values []int32) [2]int32 {
	if len(values) == 0 {
		panic("kernels: ScalarMaxMinOf of empty slice")
	}
	hi, lo := values[0], values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return [2]int32{hi, lo}
}

// ScalarMatMul multiplies the fixed 4x4 matrix by itself.
func ScalarMatMul() Matrix4 {
	return ScalarMatMulOf(matA, matB)
}

// ScalarMatMulOf returns a*b with the classic i, j, k loop nest:
// result[i][j] = sum over k of a[i][k] * b[k][j].
func ScalarMatMulOf(a, b Matrix4) Matrix4 {
	var result Matrix4
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			var sum int32
			for k := 0; k < len(a); k++ {
				sum += a[i][k] * b[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// ScalarEuclideanDistance returns the integer Euclidean distance between the
// fixed points (1, 2, 3, 4) and (5, 6, 7, 8).
func ScalarEuclideanDistance() int32 {
	return ScalarEuclideanDistanceOf(pointP1[:], pointP2[:])
}

// ScalarEuclideanDistanceOf returns floor(sqrt(sum((p2[i]-p1[i])^2))).
// Panics if len(p2) < len(p1).
func ScalarEuclideanDistanceOf(p1, p2 []int32) int32 {
	var distSqr int32
	for i := 0; i < len(p1); i++ {
		d := p2[i] - p1[i]
		distSqr += d * d
	}
	return isqrt(distSqr)
}
