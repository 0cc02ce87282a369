package lanes

// Complex facade. These are free functions rather than methods because a
// method on Vec4[S, T] cannot narrow S to the complex types; a free
// function can. Operating through the central slice view makes them apply
// to lane carriers and shim composites alike, so composition through
// Shim2/4/8 needs no forwarding code: each half's lanes are rotated
// independently, which is the required behavior.
//
// The C type parameter must be the lane type of V; calling with any other
// C reinterprets memory and is a caller error, as for the raw operations
// in vector.go.

// Conj negates the imaginary part of every lane.
func Conj[C Complexes, V any](v V) V {
	s := AsSlice[C](&v)
	for i, z := range s {
		s[i] = conjHelper(z)
	}
	return v
}

// MulI multiplies every lane by i: (re, im) becomes (-im, re).
func MulI[C Complexes, V any](v V) V {
	s := AsSlice[C](&v)
	for i, z := range s {
		s[i] = mulIHelper(z)
	}
	return v
}

// MulNegI multiplies every lane by -i: (re, im) becomes (im, -re).
func MulNegI[C Complexes, V any](v V) V {
	s := AsSlice[C](&v)
	for i, z := range s {
		s[i] = mulNegIHelper(z)
	}
	return v
}
