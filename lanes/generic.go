package lanes

// Bindings for the Generic token, available on every target. The portable
// tier has no vector registers, so only width 1 is native; every wider
// width is shim-composed.
type (
	F32x1 = Vec1[float32, Generic]
	F32x2 = Shim2[F32x1, float32]
	F32x4 = Shim4[F32x1, float32]
	F32x8 = Shim8[F32x1, float32]

	F64x1 = Vec1[float64, Generic]
	F64x2 = Shim2[F64x1, float64]
	F64x4 = Shim4[F64x1, float64]
	F64x8 = Shim8[F64x1, float64]

	C64x1 = Vec1[complex64, Generic]
	C64x2 = Shim2[C64x1, complex64]
	C64x4 = Shim4[C64x1, complex64]
	C64x8 = Shim8[C64x1, complex64]

	C128x1 = Vec1[complex128, Generic]
	C128x2 = Shim2[C128x1, complex128]
	C128x4 = Shim4[C128x1, complex128]
	C128x8 = Shim8[C128x1, complex128]
)

// Widest native vectors for the Generic token.
type (
	GenericF32  = F32x1
	GenericF64  = F64x1
	GenericC64  = C64x1
	GenericC128 = C128x1
)
