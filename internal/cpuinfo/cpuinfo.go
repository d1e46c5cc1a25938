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

// Package cpuinfo reports the SIMD features of the host CPU as seen by
// golang.org/x/sys/cpu. It is diagnostic only: nothing in simdcheck selects a
// code path based on it.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one CPU capability flag.
type Feature struct {
	Name    string
	Enabled bool
	Note    string
}

// Report describes the host.
type Report struct {
	GOOS   string
	GOARCH string
	NumCPU int

	// Features lists the flags relevant to the GOARCH; empty on other architectures.
	Features []Feature

	// RegisterBytes is the widest SIMD register the CPU offers, in bytes.
	// 0 when no SIMD extension is detected.
	RegisterBytes int
	// RegisterName names that extension ("avx512", "avx2", "sse2", "neon").
	RegisterName string
}

// Detect builds a Report for the running process.
func Detect() Report {
	r := Report{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}

	switch runtime.GOARCH {
	case "arm64":
		r.Features = arm64Features()
		if cpu.ARM64.HasASIMD {
			r.RegisterBytes, r.RegisterName = 16, "neon"
		}
	case "amd64":
		r.Features = amd64Features()
		switch {
		case cpu.X86.HasAVX512F:
			r.RegisterBytes, r.RegisterName = 64, "avx512"
		case cpu.X86.HasAVX2:
			r.RegisterBytes, r.RegisterName = 32, "avx2"
		case cpu.X86.HasSSE2:
			r.RegisterBytes, r.RegisterName = 16, "sse2"
		}
	}
	return r
}

func arm64Features() []Feature {
	return []Feature{
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFP", cpu.ARM64.HasFP, "Floating point"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"HasASIMDDP", cpu.ARM64.HasASIMDDP, "int8 dot product"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"HasSVE2", cpu.ARM64.HasSVE2, "SVE2"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"HasSSE2", cpu.X86.HasSSE2, ""},
		{"HasSSE41", cpu.X86.HasSSE41, "PMULLD: 4 x int32 multiply"},
		{"HasSSE42", cpu.X86.HasSSE42, ""},
		{"HasAVX", cpu.X86.HasAVX, ""},
		{"HasAVX2", cpu.X86.HasAVX2, "8 x int32 lanes"},
		{"HasFMA", cpu.X86.HasFMA, ""},
		{"HasAVX512F", cpu.X86.HasAVX512F, "16 x int32 lanes"},
		{"HasAVX512BW", cpu.X86.HasAVX512BW, ""},
		{"HasAVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

// Fits reports whether a vector of the given size in bytes fits in one
// SIMD register of the host.
func (r Report) Fits(vectorBytes int) bool {
	return vectorBytes <= r.RegisterBytes
}

// Write prints the report in the same layout as the go-highway cpuinfo tool.
func (r Report) Write(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("GOOS: %s\n", r.GOOS)
	ew.printf("GOARCH: %s\n", r.GOARCH)
	ew.printf("NumCPU: %d\n", r.NumCPU)
	ew.printf("\n")

	if len(r.Features) > 0 {
		ew.printf("=== golang.org/x/sys/cpu (%s) ===\n", r.GOARCH)
		for _, f := range r.Features {
			if f.Note != "" {
				ew.printf("  %-12s %v (%s)\n", f.Name+":", f.Enabled, f.Note)
			} else {
				ew.printf("  %-12s %v\n", f.Name+":", f.Enabled)
			}
		}
		ew.printf("\n")
	}

	if r.RegisterBytes == 0 {
		ew.printf("SIMD register: none detected\n")
	} else {
		ew.printf("SIMD register: %s, %d bytes\n", r.RegisterName, r.RegisterBytes)
	}
	for _, v := range []struct {
		name  string
		bytes int
	}{
		{"Vec2[int32]", 8},
		{"Vec4[int32]", 16},
		{"Vec8[int32]", 32},
	} {
		ew.printf("  %-12s %2d bytes, fits one register: %v\n", v.name, v.bytes, r.Fits(v.bytes))
	}
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
