package lanes

import (
	"math/rand/v2"
	"testing"
)

func conjRef[C Complexes](z C) C {
	if zc, ok := any(z).(complex64); ok {
		return any(complex(real(zc), -imag(zc))).(C)
	}
	zc := any(z).(complex128)
	return any(complex(real(zc), -imag(zc))).(C)
}

func runComplexSuite[C Complexes, V Signed[V, C], T Token](t *testing.T, name string, token T) {
	t.Run(name, func(t *testing.T) {
		r := rand.New(rand.NewPCG(19, 31))
		v := randomVec[C, V](r, token)
		zs := lanesOf[C](v)

		got := Conj[C](v)
		for i, z := range lanesOf[C](got) {
			if want := conjRef(zs[i]); z != want {
				t.Errorf("Conj lane %d = %v, want %v", i, z, want)
			}
		}

		back := Conj[C](got)
		if !equalLanes(lanesOf[C](back), zs) {
			t.Error("conj(conj(v)) != v")
		}

		// Multiplication by the exact constants i and -i is lossless, so
		// the rotations must agree bit for bit with the ring operations.
		iC := C(1i)
		negIC := C(-1i)

		got = MulI[C](v)
		for i, z := range lanesOf[C](got) {
			if want := zs[i] * iC; z != want {
				t.Errorf("MulI lane %d = %v, want %v", i, z, want)
			}
		}

		got = MulNegI[C](v)
		for i, z := range lanesOf[C](got) {
			if want := zs[i] * negIC; z != want {
				t.Errorf("MulNegI lane %d = %v, want %v", i, z, want)
			}
		}

		if !equalLanes(lanesOf[C](MulI[C](MulNegI[C](v))), zs) {
			t.Error("mul_i(mul_neg_i(v)) != v")
		}
	})
}

func TestComplexOpsGeneric(t *testing.T) {
	token := AssumeGeneric()

	runComplexSuite[complex64, C64x1](t, "c64x1", token)
	runComplexSuite[complex64, C64x2](t, "c64x2", token)
	runComplexSuite[complex64, C64x4](t, "c64x4", token)
	runComplexSuite[complex64, C64x8](t, "c64x8", token)

	runComplexSuite[complex128, C128x1](t, "c128x1", token)
	runComplexSuite[complex128, C128x2](t, "c128x2", token)
	runComplexSuite[complex128, C128x4](t, "c128x4", token)
	runComplexSuite[complex128, C128x8](t, "c128x8", token)
}

func TestMulIRotation(t *testing.T) {
	token := AssumeGeneric()
	v := Read[C64x2](token, []complex64{3 + 4i, -1 + 2i})

	want := []complex64{-4 + 3i, -2 - 1i}
	if got := lanesOf[complex64](MulI[complex64](v)); !equalLanes(got, want) {
		t.Errorf("MulI = %v, want %v", got, want)
	}

	want = []complex64{4 - 3i, 2 + 1i}
	if got := lanesOf[complex64](MulNegI[complex64](v)); !equalLanes(got, want) {
		t.Errorf("MulNegI = %v, want %v", got, want)
	}
}
