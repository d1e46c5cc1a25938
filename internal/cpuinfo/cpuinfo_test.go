package cpuinfo

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	r := Detect()
	assert.Equal(t, runtime.GOOS, r.GOOS)
	assert.Equal(t, runtime.GOARCH, r.GOARCH)
	assert.Positive(t, r.NumCPU)

	switch runtime.GOARCH {
	case "amd64":
		// SSE2 is part of the amd64 baseline.
		assert.GreaterOrEqual(t, r.RegisterBytes, 16)
		assert.NotEmpty(t, r.Features)
	case "arm64":
		assert.Equal(t, 16, r.RegisterBytes)
		assert.Equal(t, "neon", r.RegisterName)
	}
}

func TestFits(t *testing.T) {
	r := Report{RegisterBytes: 16, RegisterName: "sse2"}
	assert.True(t, r.Fits(8))
	assert.True(t, r.Fits(16))
	assert.False(t, r.Fits(32))

	assert.False(t, Report{}.Fits(8))
}

func TestWrite(t *testing.T) {
	r := Report{
		GOOS:          "linux",
		GOARCH:        "amd64",
		NumCPU:        8,
		Features:      []Feature{{"HasAVX2", true, "8 x int32 lanes"}, {"HasSSE42", false, ""}},
		RegisterBytes: 32,
		RegisterName:  "avx2",
	}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()

	assert.Contains(t, out, "GOARCH: amd64\n")
	assert.Contains(t, out, "HasAVX2:     true (8 x int32 lanes)\n")
	assert.Contains(t, out, "HasSSE42:    false\n")
	assert.Contains(t, out, "SIMD register: avx2, 32 bytes\n")
	assert.Contains(t, out, "Vec8[int32]  32 bytes, fits one register: true\n")
	assert.False(t, strings.Contains(out, "none detected"))
}

func TestWriteNoSIMD(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report{GOOS: "plan9", GOARCH: "386", NumCPU: 1}.Write(&buf))
	assert.Contains(t, buf.String(), "SIMD register: none detected\n")
	assert.Contains(t, buf.String(), "Vec4[int32]  16 bytes, fits one register: false\n")
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	fw := &failingWriter{}
	err := Detect().Write(fw)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, fw.n, "writes stop after the first error")
}
