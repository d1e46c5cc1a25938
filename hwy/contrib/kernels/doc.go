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

// Package kernels provides six small integer kernels, each in two versions:
// a scalar reference that loops element by element, and a SIMD version built
// on the fixed-width lane vectors of package hwy.
//
// # Kernel Pairs
//
//   - Sum:                  15 + 40
//   - Vector Add:           elementwise a + b over 4 elements
//   - Array Operations:     elementwise a+b, a-b, a*b over 4 elements
//   - Max Min:              [max, min] of 8 elements
//   - Matrix Multiplication: 4x4 by 4x4
//   - Euclidean Distance:   floor(sqrt(sum((p2-p1)^2))) in 4 dimensions
//
// Each kernel takes no arguments and works on fixed inputs, so it can be
// called repeatedly by a benchmark with no setup. The parameterized forms
// (ScalarVectorAddOf, SIMDMatMulOf, ...) accept other inputs of the same shape.
//
// For the same inputs the two versions of a pair produce equal results. The
// shapes differ where noted: SIMDSum returns the sum replicated in all four
// lanes, and SIMD results are lane vectors where the scalar results are
// slices or arrays. [Pairs] describes how each pair is compared.
//
// # Arithmetic
//
// All arithmetic is int32 and wraps on overflow on both paths. The integer
// square root used by the distance kernels panics on a negative argument,
// which can only happen after the sum of squares has wrapped.
//
// # Example Usage
//
//	import "github.com/ajroetker/simdcheck/hwy/contrib/kernels"
//
//	kernels.ScalarMaxMin() // [329 0]
//	kernels.SIMDMaxMin()   // [329 0] as an hwy.Vec2[int32]
//
//	for _, p := range kernels.Pairs() {
//	    if err := p.Check(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package kernels
