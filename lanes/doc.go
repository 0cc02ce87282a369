// Package lanes is a portable abstraction over hardware vector registers.
//
// Numeric code is written once against fixed-width lane vectors and bound,
// at compile time, to whichever instruction-set tier the executing CPU
// actually supports. A capability token proves that a tier's instructions
// may be issued; vector types are tagged with the token that licenses them,
// so a vector for an unsupported tier is never constructed.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/lanes"
//
//	token, ok := lanes.DetectSse()
//	if !ok {
//		// fall back to lanes.Generic vectors
//	}
//
//	a := lanes.Splat[lanes.SseF32x4, float32](token, 3.0)
//	b := lanes.Splat[lanes.SseF32x4, float32](token, 4.0)
//	sum := a.Add(b) // every lane is 7.0
//
// Widths a tier has no native register for are composed from pairs of
// narrower vectors by Shim2/Shim4/Shim8; the composed types are used through
// the same operations as native ones.
//
// Dispatch is static: choosing a token chooses the vector types, and no
// operation branches on CPU features afterwards. Setting the LANES_NO_SIMD
// environment variable makes every non-Generic detection fail, which forces
// the portable fallback for testing.
package lanes
