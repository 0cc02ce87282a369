package lanes

import "testing"

func TestTransform(t *testing.T) {
	token := AssumeGeneric()

	// 10 elements with an 8-lane vector: one full stride plus a tail.
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	dst := make([]float32, len(src))

	Transform(token, dst, src, func(v F32x8) F32x8 {
		return v.MulScalar(2).AddScalar(1)
	})

	for i, x := range src {
		if want := 2*x + 1; dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestTransformExactMultiple(t *testing.T) {
	token := AssumeGeneric()
	src := []float64{1, 2, 3, 4}
	dst := make([]float64, 4)

	Transform(token, dst, src, func(v F64x2) F64x2 { return v.Neg() })

	if want := []float64{-1, -2, -3, -4}; !equalLanes(dst, want) {
		t.Errorf("Transform = %v, want %v", dst, want)
	}
}

func TestTransformShortDst(t *testing.T) {
	token := AssumeGeneric()
	src := []float32{1, 2, 3, 4, 5}
	dst := make([]float32, 3)

	Transform(token, dst, src, func(v F32x2) F32x2 { return v.AddScalar(10) })

	if want := []float32{11, 12, 13}; !equalLanes(dst, want) {
		t.Errorf("Transform with short dst = %v, want %v", dst, want)
	}
}

func TestAccumulate(t *testing.T) {
	token := AssumeGeneric()
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9} // 9 elements, 4-lane vector

	acc := Accumulate(token, src, func(acc, chunk F32x4) F32x4 {
		return acc.Add(chunk)
	})

	if got := Sum[float32]([]F32x4{acc}); got != 45 {
		t.Errorf("accumulated sum = %v, want 45", got)
	}
}

func TestAccumulateEmpty(t *testing.T) {
	token := AssumeGeneric()

	acc := Accumulate(token, []float64{}, func(acc, chunk F64x4) F64x4 {
		return acc.Add(chunk)
	})

	for i, x := range lanesOf[float64](acc) {
		if x != 0 {
			t.Errorf("lane %d = %v, want 0", i, x)
		}
	}
}
