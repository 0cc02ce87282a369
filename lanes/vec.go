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

// The lane carriers are transparent wrappers over [W]S, tagged with the
// token type T that licenses them. The tag is a zero-length leading field,
// so the struct layout stays bit-identical to the lane array and the
// contract in vector.go holds.
//
// An instruction-set binding replaces the loop bodies below with hardware
// kernels; these portable bodies are the universal binding.

// Vec1 is a single-lane vector of S licensed by token type T.
type Vec1[S Scalar, T Token] struct {
	_     [0]T
	lanes [1]S
}

// Vec2 is a 2-lane vector of S licensed by token type T.
type Vec2[S Scalar, T Token] struct {
	_     [0]T
	lanes [2]S
}

// Vec4 is a 4-lane vector of S licensed by token type T.
type Vec4[S Scalar, T Token] struct {
	_     [0]T
	lanes [4]S
}

// Vec8 is an 8-lane vector of S licensed by token type T.
type Vec8[S Scalar, T Token] struct {
	_     [0]T
	lanes [8]S
}

// Lanes returns the number of lanes.
func (v Vec1[S, T]) Lanes() int { return len(v.lanes) }

// Slice returns the lanes as a view over v's memory.
func (v *Vec1[S, T]) Slice() []S { return v.lanes[:] }

// Token materializes the licensing token. A value of this vector type can
// only exist if the token was obtainable, so this is sound without a probe.
func (v Vec1[S, T]) Token() T { var t T; return t }

// Add returns the elementwise sum of v and o.
func (v Vec1[S, T]) Add(o Vec1[S, T]) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
	return v
}

// AddScalar returns v with x added to every lane.
func (v Vec1[S, T]) AddScalar(x S) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] += x
	}
	return v
}

// Sub returns the elementwise difference of v and o.
func (v Vec1[S, T]) Sub(o Vec1[S, T]) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
	return v
}

// SubScalar returns v with x subtracted from every lane.
func (v Vec1[S, T]) SubScalar(x S) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
	return v
}

// Mul returns the elementwise product of v and o.
func (v Vec1[S, T]) Mul(o Vec1[S, T]) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
	return v
}

// MulScalar returns v with every lane multiplied by x.
func (v Vec1[S, T]) MulScalar(x S) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
	return v
}

// Div returns the elementwise quotient of v and o.
func (v Vec1[S, T]) Div(o Vec1[S, T]) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
	return v
}

// DivScalar returns v with every lane divided by x.
func (v Vec1[S, T]) DivScalar(x S) Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
	return v
}

// Neg returns v with every lane negated.
func (v Vec1[S, T]) Neg() Vec1[S, T] {
	for i := range v.lanes {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

// AddAssign adds o into v in place; the other *Assign methods follow the
// same pattern for their operators.
func (v *Vec1[S, T]) AddAssign(o Vec1[S, T]) {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
}

func (v *Vec1[S, T]) AddScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] += x
	}
}

func (v *Vec1[S, T]) SubAssign(o Vec1[S, T]) {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
}

func (v *Vec1[S, T]) SubScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
}

func (v *Vec1[S, T]) MulAssign(o Vec1[S, T]) {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
}

func (v *Vec1[S, T]) MulScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
}

func (v *Vec1[S, T]) DivAssign(o Vec1[S, T]) {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
}

func (v *Vec1[S, T]) DivScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
}

// Vec2 mirrors Vec1.

func (v Vec2[S, T]) Lanes() int { return len(v.lanes) }

func (v *Vec2[S, T]) Slice() []S { return v.lanes[:] }

func (v Vec2[S, T]) Token() T { var t T; return t }

func (v Vec2[S, T]) Add(o Vec2[S, T]) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
	return v
}

func (v Vec2[S, T]) AddScalar(x S) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] += x
	}
	return v
}

func (v Vec2[S, T]) Sub(o Vec2[S, T]) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
	return v
}

func (v Vec2[S, T]) SubScalar(x S) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
	return v
}

func (v Vec2[S, T]) Mul(o Vec2[S, T]) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
	return v
}

func (v Vec2[S, T]) MulScalar(x S) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
	return v
}

func (v Vec2[S, T]) Div(o Vec2[S, T]) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
	return v
}

func (v Vec2[S, T]) DivScalar(x S) Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
	return v
}

func (v Vec2[S, T]) Neg() Vec2[S, T] {
	for i := range v.lanes {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

func (v *Vec2[S, T]) AddAssign(o Vec2[S, T]) {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
}

func (v *Vec2[S, T]) AddScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] += x
	}
}

func (v *Vec2[S, T]) SubAssign(o Vec2[S, T]) {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
}

func (v *Vec2[S, T]) SubScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
}

func (v *Vec2[S, T]) MulAssign(o Vec2[S, T]) {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
}

func (v *Vec2[S, T]) MulScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
}

func (v *Vec2[S, T]) DivAssign(o Vec2[S, T]) {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
}

func (v *Vec2[S, T]) DivScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
}

// Vec4 mirrors Vec1.

func (v Vec4[S, T]) Lanes() int { return len(v.lanes) }

func (v *Vec4[S, T]) Slice() []S { return v.lanes[:] }

func (v Vec4[S, T]) Token() T { var t T; return t }

func (v Vec4[S, T]) Add(o Vec4[S, T]) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
	return v
}

func (v Vec4[S, T]) AddScalar(x S) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] += x
	}
	return v
}

func (v Vec4[S, T]) Sub(o Vec4[S, T]) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
	return v
}

func (v Vec4[S, T]) SubScalar(x S) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
	return v
}

func (v Vec4[S, T]) Mul(o Vec4[S, T]) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
	return v
}

func (v Vec4[S, T]) MulScalar(x S) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
	return v
}

func (v Vec4[S, T]) Div(o Vec4[S, T]) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
	return v
}

func (v Vec4[S, T]) DivScalar(x S) Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
	return v
}

func (v Vec4[S, T]) Neg() Vec4[S, T] {
	for i := range v.lanes {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

func (v *Vec4[S, T]) AddAssign(o Vec4[S, T]) {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
}

func (v *Vec4[S, T]) AddScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] += x
	}
}

func (v *Vec4[S, T]) SubAssign(o Vec4[S, T]) {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
}

func (v *Vec4[S, T]) SubScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
}

func (v *Vec4[S, T]) MulAssign(o Vec4[S, T]) {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
}

func (v *Vec4[S, T]) MulScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
}

func (v *Vec4[S, T]) DivAssign(o Vec4[S, T]) {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
}

func (v *Vec4[S, T]) DivScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
}

// Vec8 mirrors Vec1.

func (v Vec8[S, T]) Lanes() int { return len(v.lanes) }

func (v *Vec8[S, T]) Slice() []S { return v.lanes[:] }

func (v Vec8[S, T]) Token() T { var t T; return t }

func (v Vec8[S, T]) Add(o Vec8[S, T]) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
	return v
}

func (v Vec8[S, T]) AddScalar(x S) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] += x
	}
	return v
}

func (v Vec8[S, T]) Sub(o Vec8[S, T]) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
	return v
}

func (v Vec8[S, T]) SubScalar(x S) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
	return v
}

func (v Vec8[S, T]) Mul(o Vec8[S, T]) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
	return v
}

func (v Vec8[S, T]) MulScalar(x S) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
	return v
}

func (v Vec8[S, T]) Div(o Vec8[S, T]) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
	return v
}

func (v Vec8[S, T]) DivScalar(x S) Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
	return v
}

func (v Vec8[S, T]) Neg() Vec8[S, T] {
	for i := range v.lanes {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

func (v *Vec8[S, T]) AddAssign(o Vec8[S, T]) {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
}

func (v *Vec8[S, T]) AddScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] += x
	}
}

func (v *Vec8[S, T]) SubAssign(o Vec8[S, T]) {
	for i := range v.lanes {
		v.lanes[i] -= o.lanes[i]
	}
}

func (v *Vec8[S, T]) SubScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] -= x
	}
}

func (v *Vec8[S, T]) MulAssign(o Vec8[S, T]) {
	for i := range v.lanes {
		v.lanes[i] *= o.lanes[i]
	}
}

func (v *Vec8[S, T]) MulScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] *= x
	}
}

func (v *Vec8[S, T]) DivAssign(o Vec8[S, T]) {
	for i := range v.lanes {
		v.lanes[i] /= o.lanes[i]
	}
}

func (v *Vec8[S, T]) DivScalarAssign(x S) {
	for i := range v.lanes {
		v.lanes[i] /= x
	}
}
