//go:build amd64

package lanes

import "testing"

func TestSseOps(t *testing.T) {
	token, ok := DetectSse()
	if !ok {
		t.Skip("SSE4.1 not available")
	}

	runOpsSuite[float32, SseF32x1, *SseF32x1](t, "f32x1", token)
	runOpsSuite[float32, SseF32x2, *SseF32x2](t, "f32x2", token)
	runOpsSuite[float32, SseF32x4, *SseF32x4](t, "f32x4", token)
	runOpsSuite[float32, SseF32x8, *SseF32x8](t, "f32x8", token)

	runOpsSuite[float64, SseF64x1, *SseF64x1](t, "f64x1", token)
	runOpsSuite[float64, SseF64x2, *SseF64x2](t, "f64x2", token)
	runOpsSuite[float64, SseF64x4, *SseF64x4](t, "f64x4", token)
	runOpsSuite[float64, SseF64x8, *SseF64x8](t, "f64x8", token)

	runOpsSuite[complex64, SseC64x1, *SseC64x1](t, "c64x1", token)
	runOpsSuite[complex64, SseC64x2, *SseC64x2](t, "c64x2", token)
	runOpsSuite[complex64, SseC64x4, *SseC64x4](t, "c64x4", token)
	runOpsSuite[complex64, SseC64x8, *SseC64x8](t, "c64x8", token)

	runOpsSuite[complex128, SseC128x1, *SseC128x1](t, "c128x1", token)
	runOpsSuite[complex128, SseC128x2, *SseC128x2](t, "c128x2", token)
	runOpsSuite[complex128, SseC128x4, *SseC128x4](t, "c128x4", token)
	runOpsSuite[complex128, SseC128x8, *SseC128x8](t, "c128x8", token)

	runComplexSuite[complex64, SseC64x2](t, "conj/c64x2", token)
	runComplexSuite[complex128, SseC128x4](t, "conj/c128x4", token)
}

func TestAvxOps(t *testing.T) {
	token, ok := DetectAvx()
	if !ok {
		t.Skip("AVX not available")
	}

	runOpsSuite[float32, AvxF32x1, *AvxF32x1](t, "f32x1", token)
	runOpsSuite[float32, AvxF32x2, *AvxF32x2](t, "f32x2", token)
	runOpsSuite[float32, AvxF32x4, *AvxF32x4](t, "f32x4", token)
	runOpsSuite[float32, AvxF32x8, *AvxF32x8](t, "f32x8", token)

	runOpsSuite[float64, AvxF64x1, *AvxF64x1](t, "f64x1", token)
	runOpsSuite[float64, AvxF64x2, *AvxF64x2](t, "f64x2", token)
	runOpsSuite[float64, AvxF64x4, *AvxF64x4](t, "f64x4", token)
	runOpsSuite[float64, AvxF64x8, *AvxF64x8](t, "f64x8", token)

	runOpsSuite[complex64, AvxC64x1, *AvxC64x1](t, "c64x1", token)
	runOpsSuite[complex64, AvxC64x2, *AvxC64x2](t, "c64x2", token)
	runOpsSuite[complex64, AvxC64x4, *AvxC64x4](t, "c64x4", token)
	runOpsSuite[complex64, AvxC64x8, *AvxC64x8](t, "c64x8", token)

	runOpsSuite[complex128, AvxC128x1, *AvxC128x1](t, "c128x1", token)
	runOpsSuite[complex128, AvxC128x2, *AvxC128x2](t, "c128x2", token)
	runOpsSuite[complex128, AvxC128x4, *AvxC128x4](t, "c128x4", token)
	runOpsSuite[complex128, AvxC128x8, *AvxC128x8](t, "c128x8", token)

	runComplexSuite[complex64, AvxC64x4](t, "conj/c64x4", token)
	runComplexSuite[complex128, AvxC128x2](t, "conj/c128x2", token)
}

func TestAvxImpliesSse(t *testing.T) {
	if _, ok := DetectAvx(); !ok {
		t.Skip("AVX not available")
	}
	if _, ok := DetectSse(); !ok {
		t.Error("AVX detected but SSE4.1 not; downgrade would be unsound")
	}
}

func TestTokenDowngrades(t *testing.T) {
	avx := AssumeAvx()
	sse := avx.Sse()
	gen := sse.Generic()

	if sse.Name() != "sse" || gen.Name() != "generic" || avx.Generic().Name() != "generic" {
		t.Error("downgrade chain produced wrong tokens")
	}
}

func TestNoSimdDisablesDetection(t *testing.T) {
	t.Setenv("LANES_NO_SIMD", "1")
	if _, ok := DetectSse(); ok {
		t.Error("DetectSse succeeded with LANES_NO_SIMD set")
	}
	if _, ok := DetectAvx(); ok {
		t.Error("DetectAvx succeeded with LANES_NO_SIMD set")
	}
}
