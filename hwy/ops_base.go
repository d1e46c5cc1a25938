// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// This file provides the lane-wise and horizontal operations for all vector
// widths. Each width delegates to a slice helper over its backing array so the
// loop body is written once; the fixed array lengths let the compiler drop
// bounds checks and unroll.
//
// Horizontal reductions fold as a pairwise tree (8 -> 4 -> 2 -> 1), the same
// shape as a hardware reduction that repeatedly combines the low and high
// register halves. For sum, max and min the result equals a left-to-right fold.

func addLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func minLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

func maxLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

// Add performs lane-wise addition.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	addLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Sub performs lane-wise subtraction (v - o).
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	subLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Mul performs lane-wise multiplication, keeping the low bits of each product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	mulLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Min returns the lane-wise minimum.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	minLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Max returns the lane-wise maximum.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	maxLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// ReduceSum sums both lanes.
func (v Vec2[T]) ReduceSum() T {
	return v.lanes[0] + v.lanes[1]
}

// ReduceMax returns the larger lane.
func (v Vec2[T]) ReduceMax() T {
	return max(v.lanes[0], v.lanes[1])
}

// ReduceMin returns the smaller lane.
func (v Vec2[T]) ReduceMin() T {
	return min(v.lanes[0], v.lanes[1])
}

// Add performs lane-wise addition.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	addLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Sub performs lane-wise subtraction (v - o).
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	subLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Mul performs lane-wise multiplication, keeping the low bits of each product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	mulLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Min returns the lane-wise minimum.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	minLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Max returns the lane-wise maximum.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	maxLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// ReduceSum sums all lanes: (l0+l2) + (l1+l3).
func (v Vec4[T]) ReduceSum() T {
	return v.Lo().Add(v.Hi()).ReduceSum()
}

// ReduceMax returns the maximum value across all lanes.
func (v Vec4[T]) ReduceMax() T {
	return v.Lo().Max(v.Hi()).ReduceMax()
}

// ReduceMin returns the minimum value across all lanes.
func (v Vec4[T]) ReduceMin() T {
	return v.Lo().Min(v.Hi()).ReduceMin()
}

// Add performs lane-wise addition.
func (v Vec8[T]) Add(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	addLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Sub performs lane-wise subtraction (v - o).
func (v Vec8[T]) Sub(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	subLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Mul performs lane-wise multiplication, keeping the low bits of each product.
func (v Vec8[T]) Mul(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	mulLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Min returns the lane-wise minimum.
func (v Vec8[T]) Min(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	minLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// Max returns the lane-wise maximum.
func (v Vec8[T]) Max(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	maxLanes(r.lanes[:], v.lanes[:], o.lanes[:])
	return r
}

// ReduceSum sums all lanes.
// Reduce 8 -> 4 -> 2 -> 1.
func (v Vec8[T]) ReduceSum() T {
	return v.Lo().Add(v.Hi()).ReduceSum()
}

// ReduceMax returns the maximum value across all lanes.
func (v Vec8[T]) ReduceMax() T {
	return v.Lo().Max(v.Hi()).ReduceMax()
}

// ReduceMin returns the minimum value across all lanes.
func (v Vec8[T]) ReduceMin() T {
	return v.Lo().Min(v.Hi()).ReduceMin()
}
