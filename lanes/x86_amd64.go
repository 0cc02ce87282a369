// Copyright 2025 go-lanes Authors
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

//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

// Sse proves SSE4.1 (128-bit registers) may be used.
type Sse struct{}

// Avx proves AVX (256-bit registers) may be used. Avx implies Sse.
type Avx struct{}

// DetectSse returns an Sse token if the CPU supports SSE4.1.
func DetectSse() (Sse, bool) {
	if NoSimdEnv() {
		return Sse{}, false
	}
	return Sse{}, cpu.X86.HasSSE41
}

// AssumeSse returns an Sse token without probing the CPU.
//
// Using the token on a CPU without SSE4.1 is undefined behavior. Callers
// must have proven support independently, e.g. via a build-target guarantee
// or an earlier DetectSse.
func AssumeSse() Sse { return Sse{} }

// DetectAvx returns an Avx token if the CPU supports AVX.
func DetectAvx() (Avx, bool) {
	if NoSimdEnv() {
		return Avx{}, false
	}
	return Avx{}, cpu.X86.HasAVX
}

// AssumeAvx returns an Avx token without probing the CPU.
//
// Using the token on a CPU without AVX is undefined behavior.
func AssumeAvx() Avx { return Avx{} }

// Name returns "sse".
func (Sse) Name() string { return "sse" }

func (Sse) isToken() {}

// Generic converts down to the fallback token.
func (Sse) Generic() Generic { return Generic{} }

// Name returns "avx".
func (Avx) Name() string { return "avx" }

func (Avx) isToken() {}

// Sse converts down to the 128-bit token. AVX-capable CPUs support SSE4.1.
func (Avx) Sse() Sse { return Sse{} }

// Generic converts down to the fallback token.
func (Avx) Generic() Generic { return Generic{} }

// Tokens returns the capability tokens available at this call, most capable
// first, always ending with Generic.
func Tokens() []Token {
	ts := make([]Token, 0, 3)
	if t, ok := DetectAvx(); ok {
		ts = append(ts, t)
	}
	if t, ok := DetectSse(); ok {
		ts = append(ts, t)
	}
	return append(ts, Generic{})
}

// Detect returns the most capable available token.
func Detect() Token {
	if t, ok := DetectAvx(); ok {
		return t
	}
	if t, ok := DetectSse(); ok {
		return t
	}
	return Generic{}
}

// 128-bit SSE bindings. Widths up to the native register use lane carriers
// directly; wider widths are shim-composed.
type (
	SseF32x1 = Vec1[float32, Sse]
	SseF32x2 = Vec2[float32, Sse]
	SseF32x4 = Vec4[float32, Sse]
	SseF32x8 = Shim2[SseF32x4, float32]

	SseF64x1 = Vec1[float64, Sse]
	SseF64x2 = Vec2[float64, Sse]
	SseF64x4 = Shim2[SseF64x2, float64]
	SseF64x8 = Shim4[SseF64x2, float64]

	SseC64x1 = Vec1[complex64, Sse]
	SseC64x2 = Vec2[complex64, Sse]
	SseC64x4 = Shim2[SseC64x2, complex64]
	SseC64x8 = Shim4[SseC64x2, complex64]

	SseC128x1 = Vec1[complex128, Sse]
	SseC128x2 = Shim2[SseC128x1, complex128]
	SseC128x4 = Shim4[SseC128x1, complex128]
	SseC128x8 = Shim8[SseC128x1, complex128]
)

// Widest native vectors for the Sse token.
type (
	SseF32  = SseF32x4
	SseF64  = SseF64x2
	SseC64  = SseC64x2
	SseC128 = SseC128x1
)

// 256-bit AVX bindings.
type (
	AvxF32x1 = Vec1[float32, Avx]
	AvxF32x2 = Vec2[float32, Avx]
	AvxF32x4 = Vec4[float32, Avx]
	AvxF32x8 = Vec8[float32, Avx]

	AvxF64x1 = Vec1[float64, Avx]
	AvxF64x2 = Vec2[float64, Avx]
	AvxF64x4 = Vec4[float64, Avx]
	AvxF64x8 = Shim2[AvxF64x4, float64]

	AvxC64x1 = Vec1[complex64, Avx]
	AvxC64x2 = Vec2[complex64, Avx]
	AvxC64x4 = Vec4[complex64, Avx]
	AvxC64x8 = Shim2[AvxC64x4, complex64]

	AvxC128x1 = Vec1[complex128, Avx]
	AvxC128x2 = Vec2[complex128, Avx]
	AvxC128x4 = Shim2[AvxC128x2, complex128]
	AvxC128x8 = Shim4[AvxC128x2, complex128]
)

// Widest native vectors for the Avx token.
type (
	AvxF32  = AvxF32x8
	AvxF64  = AvxF64x4
	AvxC64  = AvxC64x4
	AvxC128 = AvxC128x2
)
