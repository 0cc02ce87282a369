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

//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

// Neon proves NEON/ASIMD (128-bit registers) may be used.
//
// NEON is part of the ARMv8-A base architecture, so detection succeeds on
// every arm64 CPU unless LANES_NO_SIMD disables it.
type Neon struct{}

// DetectNeon returns a Neon token if the CPU supports ASIMD.
func DetectNeon() (Neon, bool) {
	if NoSimdEnv() {
		return Neon{}, false
	}
	return Neon{}, cpu.ARM64.HasASIMD
}

// AssumeNeon returns a Neon token without probing the CPU.
//
// Using the token on a CPU without ASIMD is undefined behavior.
func AssumeNeon() Neon { return Neon{} }

// Name returns "neon".
func (Neon) Name() string { return "neon" }

func (Neon) isToken() {}

// Generic converts down to the fallback token.
func (Neon) Generic() Generic { return Generic{} }

// Tokens returns the capability tokens available at this call, most capable
// first, always ending with Generic.
func Tokens() []Token {
	ts := make([]Token, 0, 2)
	if t, ok := DetectNeon(); ok {
		ts = append(ts, t)
	}
	return append(ts, Generic{})
}

// Detect returns the most capable available token.
func Detect() Token {
	if t, ok := DetectNeon(); ok {
		return t
	}
	return Generic{}
}

// 128-bit NEON bindings. Widths up to the native register use lane carriers
// directly; wider widths are shim-composed.
type (
	NeonF32x1 = Vec1[float32, Neon]
	NeonF32x2 = Vec2[float32, Neon]
	NeonF32x4 = Vec4[float32, Neon]
	NeonF32x8 = Shim2[NeonF32x4, float32]

	NeonF64x1 = Vec1[float64, Neon]
	NeonF64x2 = Vec2[float64, Neon]
	NeonF64x4 = Shim2[NeonF64x2, float64]
	NeonF64x8 = Shim4[NeonF64x2, float64]

	NeonC64x1 = Vec1[complex64, Neon]
	NeonC64x2 = Vec2[complex64, Neon]
	NeonC64x4 = Shim2[NeonC64x2, complex64]
	NeonC64x8 = Shim4[NeonC64x2, complex64]

	NeonC128x1 = Vec1[complex128, Neon]
	NeonC128x2 = Shim2[NeonC128x1, complex128]
	NeonC128x4 = Shim4[NeonC128x1, complex128]
	NeonC128x8 = Shim8[NeonC128x1, complex128]
)

// Widest native vectors for the Neon token.
type (
	NeonF32  = NeonF32x4
	NeonF64  = NeonF64x2
	NeonC64  = NeonC64x2
	NeonC128 = NeonC128x1
)
