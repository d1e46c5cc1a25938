// Package hwy provides fixed-width integer lane vectors.
//
// It follows the Highway C++ library's vocabulary (Set, Load, ReduceSum, ...)
// but with the width fixed by the type rather than chosen at runtime: a Vec4
// always has four lanes on every architecture. Operations are written as plain
// Go array loops that the compiler is free to vectorize; correctness never
// depends on whether it does.
//
// Basic usage:
//
//	import "github.com/ajroetker/simdcheck/hwy"
//
//	a := hwy.Load4([4]int32{1, 2, 3, 4})
//	b := hwy.Set4[int32](10)
//	sum := a.Add(b)        // [11 12 13 14]
//	total := sum.ReduceSum() // 50
//
// Integer overflow wraps, exactly as it does for the scalar Go operators.
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types that can be stored in lanes.
type Integers interface {
	SignedInts | UnsignedInts
}
