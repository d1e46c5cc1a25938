package harness

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/simdcheck/hwy/contrib/kernels"
)

// fakeBench runs the benchmark body once with a small N and returns timings
// from durations in order, cycling when exhausted.
func fakeBench(durations ...time.Duration) (func(func(*testing.B)) testing.BenchmarkResult, *int) {
	calls := 0
	return func(f func(*testing.B)) testing.BenchmarkResult {
		f(&testing.B{N: 3})
		d := durations[calls%len(durations)]
		calls++
		return testing.BenchmarkResult{N: 1000, T: d, MemAllocs: 2000, MemBytes: 64000}
	}, &calls
}

func TestSelect(t *testing.T) {
	pairs := kernels.Pairs()

	all, err := Select(pairs, nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	some, err := Select(pairs, []string{"euclidean_distance", "sum", "sum"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "sum", some[0].ID, "canonical order is kept")
	assert.Equal(t, "euclidean_distance", some[1].ID)

	_, err = Select(pairs, []string{"sum", "dot_product"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown group dot_product")
	assert.Contains(t, err.Error(), "vector_add")
}

func TestTitle(t *testing.T) {
	want := []string{"Sum", "Vector Add", "Array Operations", "Max Min", "Matrix Multiplication", "Euclidean Distance"}
	for i, p := range kernels.Pairs() {
		assert.Equal(t, want[i], Title(p))
	}
}

func TestRun(t *testing.T) {
	bench, calls := fakeBench(30*time.Microsecond, 10*time.Microsecond, 20*time.Microsecond)
	results, err := Run(context.Background(), Config{Rounds: 3, bench: bench})
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.Equal(t, 6*2*3, *calls)

	for _, g := range results {
		assert.Equal(t, PathScalar, g.Scalar.Path)
		assert.Equal(t, PathSIMD, g.SIMD.Path)
		// Fastest of the three rounds: 10µs over 1000 iterations.
		assert.InDelta(t, 10.0, g.Scalar.NsPerOp, 1e-9)
		assert.InDelta(t, 10.0, g.SIMD.NsPerOp, 1e-9)
		assert.Equal(t, int64(2), g.Scalar.AllocsPerOp)
		assert.Equal(t, int64(64), g.SIMD.BytesPerOp)
		assert.Equal(t, 1000, g.SIMD.Iterations)
	}
	assert.Equal(t, "Matrix Multiplication", results[4].Title)
}

func TestRunGroupsAndRoundsDefault(t *testing.T) {
	bench, calls := fakeBench(time.Microsecond)
	results, err := Run(context.Background(), Config{Groups: []string{"max_min"}, bench: bench})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "max_min", results[0].ID)
	assert.Equal(t, 2, *calls, "rounds below 1 run once per path")
}

func TestRunUnknownGroup(t *testing.T) {
	bench, calls := fakeBench(time.Microsecond)
	_, err := Run(context.Background(), Config{Groups: []string{"nope"}, bench: bench})
	assert.Error(t, err)
	assert.Zero(t, *calls)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bench, calls := fakeBench(time.Microsecond)
	results, err := Run(ctx, Config{bench: bench})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Zero(t, *calls)
}

func TestRunCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	bench := func(f func(*testing.B)) testing.BenchmarkResult {
		calls++
		if calls == 3 {
			// Third measurement is the scalar path of the second group.
			cancel()
		}
		return testing.BenchmarkResult{N: 1, T: time.Nanosecond}
	}
	results, err := Run(ctx, Config{bench: bench})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Equal(t, "sum", results[0].ID)
}

func TestSpeedup(t *testing.T) {
	g := GroupResult{Scalar: Measurement{NsPerOp: 9}, SIMD: Measurement{NsPerOp: 3}}
	assert.InDelta(t, 3.0, g.Speedup(), 1e-9)
	assert.Zero(t, GroupResult{Scalar: Measurement{NsPerOp: 9}}.Speedup())
}

func sampleResults() []GroupResult {
	return []GroupResult{{
		ID:     "matrix_multiply",
		Title:  "Matrix Multiplication",
		Scalar: Measurement{Path: PathScalar, Iterations: 1000, NsPerOp: 12.5, AllocsPerOp: 0},
		SIMD:   Measurement{Path: PathSIMD, Iterations: 2000, NsPerOp: 5, AllocsPerOp: 0},
	}}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, 1, sampleResults()))
	out := buf.String()
	assert.Contains(t, out, "Matrix Multiplication\n")
	assert.Contains(t, out, "12.50 ns/op")
	assert.Contains(t, out, "5.00 ns/op")
	assert.Contains(t, out, "2.50x")
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, 3, sampleResults()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, NewReport(3, sampleResults()), got)
	assert.Contains(t, buf.String(), "speedup: 2.5\n")
	assert.Contains(t, buf.String(), "ns_per_op: 12.5\n")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "csv", 1, nil)
	assert.EqualError(t, err, `unknown format "csv" (want one of [text yaml])`)
}

func TestRunRealBenchmark(t *testing.T) {
	if testing.Short() {
		t.Skip("runs testing.Benchmark for real")
	}
	results, err := Run(context.Background(), Config{Groups: []string{"sum"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Positive(t, results[0].Scalar.Iterations)
	assert.Positive(t, results[0].SIMD.NsPerOp)
	assert.Equal(t, int32(55), kernels.Sink.(interface{ Get(int) int32 }).Get(2))
}
