package kernels

import (
	"fmt"

	"github.com/ajroetker/simdcheck/hwy"
)

// Pair groups the scalar and SIMD versions of one kernel.
type Pair struct {
	// ID is a stable identifier such as "matrix_multiply".
	ID string
	// Name is the lower-case human-readable name, e.g. "matrix multiplication".
	Name string

	// Scalar and SIMD call the kernels and return their results boxed,
	// for printing.
	Scalar func() any
	SIMD   func() any

	// RunScalar and RunSIMD call the kernel n times without boxing each
	// result, for timing. They write Sink, so calls must not overlap.
	RunScalar func(n int)
	RunSIMD   func(n int)

	outputs func() (scalar, simd []int32, err error)
}

// Outputs runs both kernels and returns their results flattened to int32
// slices of equal shape. An error means the SIMD result had a shape the
// scalar result cannot be compared against (for example, SIMDSum lanes that
// are not all equal).
func (p Pair) Outputs() (scalar, simd []int32, err error) {
	return p.outputs()
}

// Check runs both kernels and reports the first element where they differ.
func (p Pair) Check() error {
	scalar, simd, err := p.outputs()
	if err != nil {
		return fmt.Errorf("%s: %w", p.ID, err)
	}
	if len(scalar) != len(simd) {
		return fmt.Errorf("%s: scalar has %d elements, simd has %d", p.ID, len(scalar), len(simd))
	}
	for i := range scalar {
		if scalar[i] != simd[i] {
			return fmt.Errorf("%s: element %d: scalar %d, simd %d", p.ID, i, scalar[i], simd[i])
		}
	}
	return nil
}

// Sink receives the last result of every RunScalar/RunSIMD call so the
// repeated calls cannot be optimized away.
var Sink any

func repeat[R any](fn func() R) func(n int) {
	return func(n int) {
		var r R
		for range n {
			r = fn()
		}
		Sink = r
	}
}

func newPair[S, V any](id, name string, scalar func() S, simd func() V,
	flatScalar func(S) []int32, flatSIMD func(V) ([]int32, error)) Pair {
	return Pair{
		ID:        id,
		Name:      name,
		Scalar:    func() any { return scalar() },
		SIMD:      func() any { return simd() },
		RunScalar: repeat(scalar),
		RunSIMD:   repeat(simd),
		outputs: func() ([]int32, []int32, error) {
			s := flatScalar(scalar())
			v, err := flatSIMD(simd())
			return s, v, err
		},
	}
}

// Pairs returns the six kernel pairs in their canonical order:
// sum, vector_add, array_ops, max_min, matrix_multiply, euclidean_distance.
func Pairs() []Pair {
	return []Pair{
		newPair("sum", "sum", ScalarSum, SIMDSum,
			func(s int32) []int32 { return []int32{s} },
			flattenReplicated),
		newPair("vector_add", "vector add", ScalarVectorAdd, SIMDVectorAdd,
			identity,
			func(v hwy.Vec4[int32]) ([]int32, error) { return lanes4(v), nil }),
		newPair("array_ops", "array operations", ScalarArrayOps, SIMDArrayOps,
			concat,
			func(vs [3]hwy.Vec4[int32]) ([]int32, error) {
				return concat([][]int32{lanes4(vs[0]), lanes4(vs[1]), lanes4(vs[2])}), nil
			}),
		newPair("max_min", "max min", ScalarMaxMin, SIMDMaxMin,
			func(s [2]int32) []int32 { return s[:] },
			func(v hwy.Vec2[int32]) ([]int32, error) {
				a := v.Array()
				return a[:], nil
			}),
		newPair("matrix_multiply", "matrix multiplication", ScalarMatMul, SIMDMatMul,
			Matrix4.Flatten,
			func(m LaneMatrix4) ([]int32, error) { return m.Rows().Flatten(), nil }),
		newPair("euclidean_distance", "euclidean distance", ScalarEuclideanDistance, SIMDEuclideanDistance,
			func(s int32) []int32 { return []int32{s} },
			func(v int32) ([]int32, error) { return []int32{v}, nil }),
	}
}

// Lookup returns the pair with the given ID.
func Lookup(id string) (Pair, bool) {
	for _, p := range Pairs() {
		if p.ID == id {
			return p, true
		}
	}
	return Pair{}, false
}

// flattenReplicated collapses a broadcast result to its single value after
// checking that every lane carries it.
func flattenReplicated(v hwy.Vec4[int32]) ([]int32, error) {
	for i := 1; i < v.NumLanes(); i++ {
		if v.Get(i) != v.Get(0) {
			return nil, fmt.Errorf("lanes not replicated: %v", v)
		}
	}
	return []int32{v.Get(0)}, nil
}

func lanes4(v hwy.Vec4[int32]) []int32 {
	a := v.Array()
	return a[:]
}

func identity(s []int32) []int32 { return s }

func concat(parts [][]int32) []int32 {
	var out []int32
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
