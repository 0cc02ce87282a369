package lanes

import (
	"testing"
)

func TestWidth(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"F32x1", Width[float32, F32x1](), 1},
		{"F32x2", Width[float32, F32x2](), 2},
		{"F32x4", Width[float32, F32x4](), 4},
		{"F32x8", Width[float32, F32x8](), 8},
		{"F64x8", Width[float64, F64x8](), 8},
		{"C64x4", Width[complex64, C64x4](), 4},
		{"C128x8", Width[complex128, C128x8](), 8},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("Width[%s] = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestAsSliceIsAView(t *testing.T) {
	token := AssumeGeneric()
	v := Splat[F32x4, float32](token, 1.0)

	s := AsSlice[float32](&v)
	if len(s) != 4 {
		t.Fatalf("AsSlice length = %d, want 4", len(s))
	}
	s[2] = 42

	out := make([]float32, 4)
	Write(v, out)
	if out[2] != 42 {
		t.Errorf("mutation through the slice view did not reach the vector: %v", out)
	}

	// The method form must alias the same memory.
	v.Slice()[0] = -1
	if AsSlice[float32](&v)[0] != -1 {
		t.Error("Slice() does not alias AsSlice()")
	}
}

func TestReadBoundsPanics(t *testing.T) {
	token := AssumeGeneric()

	defer func() {
		if recover() == nil {
			t.Fatal("Read from a short slice did not panic")
		}
	}()
	Read[F32x4](token, []float32{1, 2, 3})
}

func TestWriteBoundsPanics(t *testing.T) {
	token := AssumeGeneric()
	v := Splat[F32x4, float32](token, 1.0)

	defer func() {
		if recover() == nil {
			t.Fatal("Write to a short slice did not panic")
		}
	}()
	Write(v, make([]float32, 3))
}

func TestReadPtr(t *testing.T) {
	token := AssumeGeneric()
	src := []float64{1, 2, 3, 4, 5}

	v := ReadPtr[F64x4](token, &src[1])
	want := []float64{2, 3, 4, 5}
	if got := lanesOf[float64](v); !equalLanes(got, want) {
		t.Errorf("ReadPtr = %v, want %v", got, want)
	}

	// &src[0] is allocator-aligned for the vector's natural alignment.
	v = ReadAlignedPtr[F64x4](token, &src[0])
	want = []float64{1, 2, 3, 4}
	if got := lanesOf[float64](v); !equalLanes(got, want) {
		t.Errorf("ReadAlignedPtr = %v, want %v", got, want)
	}

	dst := make([]float64, 4)
	WritePtr(v, &dst[0])
	if !equalLanes(dst, want) {
		t.Errorf("WritePtr = %v, want %v", dst, want)
	}
}

func TestUnderlyingRoundTrip(t *testing.T) {
	token := AssumeGeneric()
	src := []float32{1, 2, 3, 4}
	v := Read[F32x4](token, src)

	u := ToUnderlying[[4]float32](v)
	if u != [4]float32{1, 2, 3, 4} {
		t.Fatalf("ToUnderlying = %v", u)
	}

	back := FromUnderlying[F32x4](token, u)
	if got := lanesOf[float32](back); !equalLanes(got, src) {
		t.Errorf("FromUnderlying round trip = %v, want %v", got, src)
	}
}

func TestUnderlyingSizeMismatchPanics(t *testing.T) {
	token := AssumeGeneric()
	v := Splat[F32x4, float32](token, 1.0)

	defer func() {
		if recover() == nil {
			t.Fatal("ToUnderlying with a wrong-size type did not panic")
		}
	}()
	ToUnderlying[[2]float32](v)
}

func TestUnderlyingAlignMismatchPanics(t *testing.T) {
	token := AssumeGeneric()
	v := Splat[F32x2, float32](token, 1.0)

	// Same size (8 bytes) but stricter alignment.
	defer func() {
		if recover() == nil {
			t.Fatal("ToUnderlying with a wrong-alignment type did not panic")
		}
	}()
	ToUnderlying[float64](v)
}

func TestZeroedTakesNoScalar(t *testing.T) {
	token := AssumeGeneric()
	v := Zeroed[C128x2](token)
	for i, z := range lanesOf[complex128](v) {
		if z != 0 {
			t.Errorf("Zeroed lane %d = %v, want 0", i, z)
		}
	}
}
