package main

import (
	"fmt"
	"io"

	"github.com/ajroetker/simdcheck/hwy/contrib/kernels"
)

// writeDemo prints one line per kernel, scalar then SIMD for each pair.
func writeDemo(w io.Writer) error {
	for _, p := range kernels.Pairs() {
		if _, err := fmt.Fprintf(w, "Scalar %s: %v\n", p.Name, p.Scalar()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "SIMD %s: %v\n", p.Name, p.SIMD()); err != nil {
			return err
		}
	}
	return nil
}
