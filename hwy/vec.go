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

import "fmt"

// Vec2 is a 2-lane vector, the integer analogue of a 64-bit register half.
//
// Vec2 is a value type: assigning or passing it copies all lanes, and no
// operation modifies its receiver.
type Vec2[T Integers] struct {
	lanes [2]T
}

// Vec4 is a 4-lane vector. For int32 lanes it matches a 128-bit
// SSE or NEON register.
type Vec4[T Integers] struct {
	lanes [4]T
}

// Vec8 is an 8-lane vector. For int32 lanes it matches a 256-bit
// AVX2 register.
type Vec8[T Integers] struct {
	lanes [8]T
}

// Set2 creates a vector with both lanes set to value.
func Set2[T Integers](value T) Vec2[T] {
	return Vec2[T]{lanes: [2]T{value, value}}
}

// Set4 creates a vector with all 4 lanes set to value.
func Set4[T Integers](value T) Vec4[T] {
	var v Vec4[T]
	for i := range v.lanes {
		v.lanes[i] = value
	}
	return v
}

// Set8 creates a vector with all 8 lanes set to value.
func Set8[T Integers](value T) Vec8[T] {
	var v Vec8[T]
	for i := range v.lanes {
		v.lanes[i] = value
	}
	return v
}

// Zero4 creates a 4-lane vector with all lanes set to zero.
func Zero4[T Integers]() Vec4[T] {
	return Vec4[T]{}
}

// Load2 creates a vector whose lane i is src[i].
// The element count is part of the parameter type, so a wrong count does not compile.
func Load2[T Integers](src [2]T) Vec2[T] {
	return Vec2[T]{lanes: src}
}

// Load4 creates a vector whose lane i is src[i].
func Load4[T Integers](src [4]T) Vec4[T] {
	return Vec4[T]{lanes: src}
}

// Load8 creates a vector whose lane i is src[i].
func Load8[T Integers](src [8]T) Vec8[T] {
	return Vec8[T]{lanes: src}
}

// LoadSlice2 loads the first 2 elements of src.
// Panics if len(src) < 2.
func LoadSlice2[T Integers](src []T) Vec2[T] {
	if len(src) < 2 {
		panic(fmt.Sprintf("hwy: LoadSlice2 needs 2 elements, got %d", len(src)))
	}
	return Vec2[T]{lanes: [2]T(src[:2])}
}

// LoadSlice4 loads the first 4 elements of src.
// Panics if len(src) < 4.
func LoadSlice4[T Integers](src []T) Vec4[T] {
	if len(src) < 4 {
		panic(fmt.Sprintf("hwy: LoadSlice4 needs 4 elements, got %d", len(src)))
	}
	return Vec4[T]{lanes: [4]T(src[:4])}
}

// LoadSlice8 loads the first 8 elements of src.
// Panics if len(src) < 8.
func LoadSlice8[T Integers](src []T) Vec8[T] {
	if len(src) < 8 {
		panic(fmt.Sprintf("hwy: LoadSlice8 needs 8 elements, got %d", len(src)))
	}
	return Vec8[T]{lanes: [8]T(src[:8])}
}

// Combine4 joins two halves into a 4-lane vector: lo fills lanes 0-1, hi lanes 2-3.
func Combine4[T Integers](lo, hi Vec2[T]) Vec4[T] {
	return Vec4[T]{lanes: [4]T{lo.lanes[0], lo.lanes[1], hi.lanes[0], hi.lanes[1]}}
}

// Combine8 joins two halves into an 8-lane vector: lo fills lanes 0-3, hi lanes 4-7.
func Combine8[T Integers](lo, hi Vec4[T]) Vec8[T] {
	var v Vec8[T]
	copy(v.lanes[:4], lo.lanes[:])
	copy(v.lanes[4:], hi.lanes[:])
	return v
}

// NumLanes returns 2.
func (v Vec2[T]) NumLanes() int { return len(v.lanes) }

// NumLanes returns 4.
func (v Vec4[T]) NumLanes() int { return len(v.lanes) }

// NumLanes returns 8.
func (v Vec8[T]) NumLanes() int { return len(v.lanes) }

// Get returns lane i. Panics if i is outside [0, 2).
func (v Vec2[T]) Get(i int) T { return v.lanes[i] }

// Get returns lane i. Panics if i is outside [0, 4).
func (v Vec4[T]) Get(i int) T { return v.lanes[i] }

// Get returns lane i. Panics if i is outside [0, 8).
func (v Vec8[T]) Get(i int) T { return v.lanes[i] }

// Array returns a copy of the lanes.
func (v Vec2[T]) Array() [2]T { return v.lanes }

// Array returns a copy of the lanes.
func (v Vec4[T]) Array() [4]T { return v.lanes }

// Array returns a copy of the lanes.
func (v Vec8[T]) Array() [8]T { return v.lanes }

// Store writes the lanes to dst. If dst is shorter than the vector,
// only len(dst) lanes are written.
func (v Vec2[T]) Store(dst []T) { copy(dst, v.lanes[:]) }

// Store writes the lanes to dst. If dst is shorter than the vector,
// only len(dst) lanes are written.
func (v Vec4[T]) Store(dst []T) { copy(dst, v.lanes[:]) }

// Store writes the lanes to dst. If dst is shorter than the vector,
// only len(dst) lanes are written.
func (v Vec8[T]) Store(dst []T) { copy(dst, v.lanes[:]) }

// Lo returns lanes 0-1.
func (v Vec4[T]) Lo() Vec2[T] { return Vec2[T]{lanes: [2]T(v.lanes[:2])} }

// Hi returns lanes 2-3.
func (v Vec4[T]) Hi() Vec2[T] { return Vec2[T]{lanes: [2]T(v.lanes[2:])} }

// Lo returns lanes 0-3.
func (v Vec8[T]) Lo() Vec4[T] { return Vec4[T]{lanes: [4]T(v.lanes[:4])} }

// Hi returns lanes 4-7.
func (v Vec8[T]) Hi() Vec4[T] { return Vec4[T]{lanes: [4]T(v.lanes[4:])} }

func (v Vec2[T]) String() string { return fmt.Sprint(v.lanes) }

func (v Vec4[T]) String() string { return fmt.Sprint(v.lanes) }

func (v Vec8[T]) String() string { return fmt.Sprint(v.lanes) }
