// Package harness times the scalar and SIMD path of each kernel pair.
//
// Each measurement is a testing.Benchmark run, so iteration counts grow until
// the run lasts about a second, exactly as under go test -bench. Results are
// kept observable through kernels.Sink.
package harness

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/simdcheck/hwy/contrib/kernels"
)

// Path names used in results.
const (
	PathScalar = "scalar"
	PathSIMD   = "simd"
)

// Config controls a harness run.
type Config struct {
	// Rounds is the number of testing.Benchmark runs per path. The reported
	// figure is the fastest round. Values below 1 mean 1.
	Rounds int
	// Groups restricts the run to these pair IDs. Empty means all pairs.
	Groups []string

	// bench replaces testing.Benchmark in tests.
	bench func(func(b *testing.B)) testing.BenchmarkResult
}

// Measurement is the timing of one path of one pair.
type Measurement struct {
	Path        string  `yaml:"path"`
	Iterations  int     `yaml:"iterations"`
	NsPerOp     float64 `yaml:"ns_per_op"`
	AllocsPerOp int64   `yaml:"allocs_per_op"`
	BytesPerOp  int64   `yaml:"bytes_per_op"`
}

// GroupResult holds both measurements of a pair.
type GroupResult struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Scalar Measurement `yaml:"scalar"`
	SIMD   Measurement `yaml:"simd"`
}

// Speedup returns scalar ns/op divided by SIMD ns/op, or 0 if SIMD took no time.
func (g GroupResult) Speedup() float64 {
	if g.SIMD.NsPerOp == 0 {
		return 0
	}
	return g.Scalar.NsPerOp / g.SIMD.NsPerOp
}

var titleCaser = cases.Title(language.English)

// Title returns the display heading of a pair, e.g. "Matrix Multiplication".
func Title(p kernels.Pair) string {
	return titleCaser.String(p.Name)
}

// Select returns the pairs whose IDs are listed in ids, in canonical order.
// An empty ids selects every pair. Unknown IDs are an error.
func Select(pairs []kernels.Pair, ids []string) ([]kernels.Pair, error) {
	if len(ids) == 0 {
		return pairs, nil
	}
	known := lo.Map(pairs, func(p kernels.Pair, _ int) string { return p.ID })
	if unknown := lo.Without(lo.Uniq(ids), known...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown group %s (known: %s)",
			strings.Join(unknown, ", "), strings.Join(known, ", "))
	}
	return lo.Filter(pairs, func(p kernels.Pair, _ int) bool {
		return lo.Contains(ids, p.ID)
	}), nil
}

// Run measures every selected pair, one group at a time, scalar before SIMD.
// It checks ctx between measurements and returns ctx.Err() once cancelled,
// along with the groups completed so far.
func Run(ctx context.Context, cfg Config) ([]GroupResult, error) {
	pairs, err := Select(kernels.Pairs(), cfg.Groups)
	if err != nil {
		return nil, err
	}
	rounds := max(cfg.Rounds, 1)
	bench := cfg.bench
	if bench == nil {
		bench = testing.Benchmark
	}

	results := make([]GroupResult, 0, len(pairs))
	for _, p := range pairs {
		g := GroupResult{ID: p.ID, Title: Title(p)}
		if g.Scalar, err = measure(ctx, bench, rounds, PathScalar, p.RunScalar); err != nil {
			return results, err
		}
		if g.SIMD, err = measure(ctx, bench, rounds, PathSIMD, p.RunSIMD); err != nil {
			return results, err
		}
		results = append(results, g)
	}
	return results, nil
}

func measure(ctx context.Context, bench func(func(b *testing.B)) testing.BenchmarkResult,
	rounds int, path string, run func(n int)) (Measurement, error) {
	samples := make([]Measurement, 0, rounds)
	for range rounds {
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}
		r := bench(func(b *testing.B) {
			b.ReportAllocs()
			run(b.N)
		})
		samples = append(samples, Measurement{
			Path:        path,
			Iterations:  r.N,
			NsPerOp:     nsPerOp(r),
			AllocsPerOp: r.AllocsPerOp(),
			BytesPerOp:  r.AllocedBytesPerOp(),
		})
	}
	return slices.MinFunc(samples, func(a, b Measurement) int {
		switch {
		case a.NsPerOp < b.NsPerOp:
			return -1
		case a.NsPerOp > b.NsPerOp:
			return 1
		}
		return 0
	}), nil
}

// nsPerOp is testing.BenchmarkResult.NsPerOp without the truncation to whole
// nanoseconds, which matters for kernels that run in a few ns.
func nsPerOp(r testing.BenchmarkResult) float64 {
	if r.N <= 0 {
		return 0
	}
	return float64(r.T.Nanoseconds()) / float64(r.N)
}
