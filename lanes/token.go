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

package lanes

import (
	"os"
	"strconv"
)

// Token is a capability proof: holding a value of a Token type asserts that
// the corresponding CPU feature set may be used.
//
// Tokens are zero-sized, freely copyable values. Each token type has exactly
// two factories: a Detect constructor that probes the CPU and fails cleanly,
// and an Assume constructor that skips the probe. A token obtained any other
// way (including the zero value of an exported token type) carries no proof;
// issuing operations with it on hardware lacking the feature is undefined
// behavior, exactly as for the Assume constructors.
//
// The interface is sealed: only token types declared in this package satisfy
// it. Tokens convert to any less capable token via conversion methods, never
// the other way.
type Token interface {
	// Name returns the lower-case feature-tier name ("avx", "neon", ...).
	Name() string

	isToken()
}

// Generic is the universal fallback token. It is available on every target
// and licenses only the width-1 portable vectors (wider widths are
// shim-composed).
type Generic struct{}

// DetectGeneric always succeeds; the portable fallback needs no CPU feature.
func DetectGeneric() (Generic, bool) { return Generic{}, true }

// AssumeGeneric returns the fallback token. It is always safe.
func AssumeGeneric() Generic { return Generic{} }

// Name returns "generic".
func (Generic) Name() string { return "generic" }

func (Generic) isToken() {}

// NoSimdEnv reports whether the LANES_NO_SIMD environment variable is set.
// When set, every non-Generic detection fails, forcing the portable
// fallback. Useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
