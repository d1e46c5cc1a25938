package kernels

import "github.com/ajroetker/simdcheck/hwy"

// This file holds the SIMD kernels. Each one computes the same value as its
// counterpart in scalar.go using hwy lane operations and horizontal reductions
// instead of per-element loops.

// SIMDSum broadcasts 15 and 40 to four lanes and adds them.
// Every lane of the result holds 55; the vector is not collapsed to a scalar.
func SIMDSum() hwy.Vec4[int32] {
	return SIMDSumOf(sumX, sumY)
}

// SIMDSumOf returns x + y replicated in all four lanes.
func SIMDSumOf(x, y int32) hwy.Vec4[int32] {
	return hwy.Set4(x).Add(hwy.Set4(y))
}

// SIMDVectorAdd adds two fixed 4-element vectors lane-wise.
// See ScalarVectorAdd for the naming history of this pair.
func SIMDVectorAdd() hwy.Vec4[int32] {
	return SIMDVectorAddOf(hwy.Load4(vecA), hwy.Load4(vecB))
}

// SIMDVectorAddOf returns a + b.
func SIMDVectorAddOf(a, b hwy.Vec4[int32]) hwy.Vec4[int32] {
	return a.Add(b)
}

// SIMDArrayOps returns [a+b, a-b, a*b] for the fixed 4-element vectors,
// in the same order as ScalarArrayOps.
func SIMDArrayOps() [3]hwy.Vec4[int32] {
	return SIMDArrayOpsOf(hwy.Load4(vecA), hwy.Load4(vecB))
}

// SIMDArrayOpsOf returns [a+b, a-b, a*b].
func SIMDArrayOpsOf(a, b hwy.Vec4[int32]) [3]hwy.Vec4[int32] {
	return [3]hwy.Vec4[int32]{a.Add(b), a.Sub(b), a.Mul(b)}
}

// SIMDMaxMin loads the fixed 8 elements into one vector and returns
// [max, min] packed into a 2-lane vector.
func SIMDMaxMin() hwy.Vec2[int32] {
	return SIMDMaxMinOf(hwy.Load8(maxMinInput))
}

// SIMDMaxMinOf returns [v.ReduceMax(), v.ReduceMin()].
func SIMDMaxMinOf(v hwy.Vec8[int32]) hwy.Vec2[int32] {
	return hwy.Load2([2]int32{v.ReduceMax(), v.ReduceMin()})
}

// SIMDMatMul multiplies the fixed 4x4 matrix by itself.
func SIMDMatMul() LaneMatrix4 {
	return SIMDMatMulOf(matA.LaneMatrix(), matB.LaneMatrix())
}

// SIMDMatMulOf returns a*b. Element (i, j) is the lane-wise product of row i
// of a and column j of b, reduced with ReduceSum. Columns are gathered once
// up front since every row uses all four of them.
func SIMDMatMulOf(a, b LaneMatrix4) LaneMatrix4 {
	var cols [4]hwy.Vec4[int32]
	for j := range cols {
		cols[j] = b.Column(j)
	}

	var result LaneMatrix4
	for i, row := range a {
		var out [4]int32
		for j, col := range cols {
			out[j] = row.Mul(col).ReduceSum()
		}
		result[i] = hwy.Load4(out)
	}
	return result
}

// SIMDEuclideanDistance returns the integer Euclidean distance between the
// fixed points (1, 2, 3, 4) and (5, 6, 7, 8).
func SIMDEuclideanDistance() int32 {
	return SIMDEuclideanDistanceOf(hwy.Load4(pointP1), hwy.Load4(pointP2))
}

// SIMDEuclideanDistanceOf returns floor(sqrt(ReduceSum((p2-p1)^2))).
func SIMDEuclideanDistanceOf(p1, p2 hwy.Vec4[int32]) int32 {
	diff := p2.Sub(p1)
	return isqrt(diff.Mul(diff).ReduceSum())
}
