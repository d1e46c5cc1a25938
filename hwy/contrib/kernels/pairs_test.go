package kernels

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/simdcheck/hwy"
)

func TestPairsOrder(t *testing.T) {
	var ids []string
	for _, p := range Pairs() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{
		"sum", "vector_add", "array_ops", "max_min", "matrix_multiply", "euclidean_distance",
	}, ids)
}

func TestPairsCheck(t *testing.T) {
	for _, p := range Pairs() {
		t.Run(p.ID, func(t *testing.T) {
			require.NoError(t, p.Check())

			scalar, simd, err := p.Outputs()
			require.NoError(t, err)
			assert.NotEmpty(t, scalar)
			assert.Equal(t, scalar, simd)
		})
	}
}

func TestPairOutputs(t *testing.T) {
	tests := []struct {
		id   string
		want []int32
	}{
		{"sum", []int32{55}},
		{"vector_add", []int32{103, 242, 119, 1003}},
		{"array_ops", []int32{103, 242, 119, 1003, -79, 158, -11, 961, 1092, 8400, 3510, 20622}},
		{"max_min", []int32{329, 0}},
		{"matrix_multiply", matSquared.Flatten()},
		{"euclidean_distance", []int32{8}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, ok := Lookup(tt.id)
			require.True(t, ok)
			scalar, _, err := p.Outputs()
			require.NoError(t, err)
			assert.Equal(t, tt.want, scalar)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("dot_product")
	assert.False(t, ok)
}

func TestCheckReportsMismatch(t *testing.T) {
	broken := newPair("broken", "broken", ScalarVectorAdd,
		func() hwy.Vec4[int32] { return SIMDVectorAdd().Add(hwy.Load4([4]int32{0, 0, 1, 0})) },
		identity,
		func(v hwy.Vec4[int32]) ([]int32, error) { return lanes4(v), nil })

	err := broken.Check()
	require.Error(t, err)
	assert.Equal(t, "broken: element 2: scalar 119, simd 120", err.Error())
}

func TestCheckReportsShapeMismatch(t *testing.T) {
	short := newPair("short", "short", ScalarVectorAdd, SIMDMaxMin,
		identity,
		func(v hwy.Vec2[int32]) ([]int32, error) {
			a := v.Array()
			return a[:], nil
		})
	assert.EqualError(t, short.Check(), "short: scalar has 4 elements, simd has 2")
}

func TestFlattenReplicated(t *testing.T) {
	got, err := flattenReplicated(hwy.Set4[int32](55))
	require.NoError(t, err)
	assert.Equal(t, []int32{55}, got)

	_, err = flattenReplicated(hwy.Load4([4]int32{55, 55, 54, 55}))
	assert.Error(t, err)
}

func TestRunStoresSink(t *testing.T) {
	p, ok := Lookup("euclidean_distance")
	require.True(t, ok)

	Sink = nil
	p.RunSIMD(3)
	assert.Equal(t, int32(8), Sink)

	p.RunScalar(0)
	assert.Equal(t, int32(0), Sink, "zero iterations stores the zero value")
}

// TestConcurrentInvocation runs every kernel from many goroutines at once and
// expects identical results each time.
func TestConcurrentInvocation(t *testing.T) {
	pairs := Pairs()
	want := make([]string, len(pairs))
	for i, p := range pairs {
		want[i] = fmt.Sprint(p.Scalar(), p.SIMD())
	}

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 100 {
				for i, p := range pairs {
					if err := p.Check(); err != nil {
						return err
					}
					if got := fmt.Sprint(p.Scalar(), p.SIMD()); got != want[i] {
						return fmt.Errorf("%s: got %s, want %s", p.ID, got, want[i])
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
