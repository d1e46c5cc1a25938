package kernels

import "github.com/ajroetker/simdcheck/hwy"

// Matrix4 is a 4x4 int32 matrix stored as four rows.
type Matrix4 [4][4]int32

// LaneMatrix4 is a 4x4 int32 matrix stored as four 4-lane row vectors.
type LaneMatrix4 [4]hwy.Vec4[int32]

// LaneMatrix converts m to row vectors.
func (m Matrix4) LaneMatrix() LaneMatrix4 {
	var lm LaneMatrix4
	for i := range m {
		lm[i] = hwy.Load4(m[i])
	}
	return lm
}

// Rows converts m back to plain rows.
func (m LaneMatrix4) Rows() Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i].Array()
	}
	return r
}

// Column gathers column j as a vector: lane k is m[k][j].
func (m LaneMatrix4) Column(j int) hwy.Vec4[int32] {
	return hwy.Load4([4]int32{m[0].Get(j), m[1].Get(j), m[2].Get(j), m[3].Get(j)})
}

// Flatten returns the elements in row-major order.
func (m Matrix4) Flatten() []int32 {
	out := make([]int32, 0, 16)
	for i := range m {
		out = append(out, m[i][:]...)
	}
	return out
}
