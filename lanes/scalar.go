package lanes

// Scalar is the constraint for types that can occupy a vector lane.
//
// The type set is exact (no ~) so that lane-level helpers may recover the
// concrete type with a type assertion.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Floats is the constraint for real floating-point lane types.
type Floats interface {
	float32 | float64
}

// Complexes is the constraint for complex lane types.
type Complexes interface {
	complex64 | complex128
}

// one returns the multiplicative identity of S.
func one[S Scalar]() S {
	return S(1)
}

// Go does not allow real, imag, or complex on type-parameter operands, so
// the complex lane helpers recover the concrete type first.

func conjHelper[C Complexes](z C) C {
	if zc, ok := any(z).(complex64); ok {
		return any(complex(real(zc), -imag(zc))).(C)
	}
	zc := any(z).(complex128)
	return any(complex(real(zc), -imag(zc))).(C)
}

func mulIHelper[C Complexes](z C) C {
	if zc, ok := any(z).(complex64); ok {
		return any(complex(-imag(zc), real(zc))).(C)
	}
	zc := any(z).(complex128)
	return any(complex(-imag(zc), real(zc))).(C)
}

func mulNegIHelper[C Complexes](z C) C {
	if zc, ok := any(z).(complex64); ok {
		return any(complex(imag(zc), -real(zc))).(C)
	}
	zc := any(z).(complex128)
	return any(complex(imag(zc), -real(zc))).(C)
}
