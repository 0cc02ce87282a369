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

// Shim2 doubles the width of a vector by holding two instances side by
// side. The halves are stored in lane order, so the composite's memory is
// the concatenation of its halves and the layout contract in vector.go
// carries over: a Shim2 over a W-lane vector is bit-identical to [2W]S.
// The generic Read/Write/AsSlice/Splat machinery therefore works on
// composites with no code of its own.
//
// Elementwise operations act on each half independently; the halves never
// interact except in the reductions (reduce.go), which fold all lanes into
// a scalar.
type Shim2[V Signed[V, S], S Scalar] struct {
	lo, hi V
}

// Shim4 quadruples the width of a vector.
type Shim4[V Signed[V, S], S Scalar] = Shim2[Shim2[V, S], S]

// Shim8 octuples the width of a vector.
type Shim8[V Signed[V, S], S Scalar] = Shim2[Shim4[V, S], S]

// Compose2 builds a double-width vector from two halves. Lane i of the
// result is lane i of lo for i < W, and lane i-W of hi otherwise.
func Compose2[S Scalar, V Signed[V, S]](lo, hi V) Shim2[V, S] {
	return Shim2[V, S]{lo: lo, hi: hi}
}

// Halves returns the two underlying half-width vectors in lane order.
func (v Shim2[V, S]) Halves() (lo, hi V) {
	return v.lo, v.hi
}

// Lanes returns the number of lanes, double that of a half.
func (v Shim2[V, S]) Lanes() int {
	return 2 * v.lo.Lanes()
}

// Slice returns the lanes as a view over v's memory, spanning both halves.
func (v *Shim2[V, S]) Slice() []S {
	return AsSlice[S](v)
}

// Add returns the elementwise sum of v and o.
func (v Shim2[V, S]) Add(o Shim2[V, S]) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.Add(o.lo), hi: v.hi.Add(o.hi)}
}

// AddScalar returns v with x added to every lane.
func (v Shim2[V, S]) AddScalar(x S) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.AddScalar(x), hi: v.hi.AddScalar(x)}
}

// Sub returns the elementwise difference of v and o.
func (v Shim2[V, S]) Sub(o Shim2[V, S]) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.Sub(o.lo), hi: v.hi.Sub(o.hi)}
}

// SubScalar returns v with x subtracted from every lane.
func (v Shim2[V, S]) SubScalar(x S) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.SubScalar(x), hi: v.hi.SubScalar(x)}
}

// Mul returns the elementwise product of v and o.
func (v Shim2[V, S]) Mul(o Shim2[V, S]) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.Mul(o.lo), hi: v.hi.Mul(o.hi)}
}

// MulScalar returns v with every lane multiplied by x.
func (v Shim2[V, S]) MulScalar(x S) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.MulScalar(x), hi: v.hi.MulScalar(x)}
}

// Div returns the elementwise quotient of v and o.
func (v Shim2[V, S]) Div(o Shim2[V, S]) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.Div(o.lo), hi: v.hi.Div(o.hi)}
}

// DivScalar returns v with every lane divided by x.
func (v Shim2[V, S]) DivScalar(x S) Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.DivScalar(x), hi: v.hi.DivScalar(x)}
}

// Neg returns v with every lane negated.
func (v Shim2[V, S]) Neg() Shim2[V, S] {
	return Shim2[V, S]{lo: v.lo.Neg(), hi: v.hi.Neg()}
}

// In-place forms, mirroring the lane carriers.

func (v *Shim2[V, S]) AddAssign(o Shim2[V, S]) {
	v.lo = v.lo.Add(o.lo)
	v.hi = v.hi.Add(o.hi)
}

func (v *Shim2[V, S]) AddScalarAssign(x S) {
	v.lo = v.lo.AddScalar(x)
	v.hi = v.hi.AddScalar(x)
}

func (v *Shim2[V, S]) SubAssign(o Shim2[V, S]) {
	v.lo = v.lo.Sub(o.lo)
	v.hi = v.hi.Sub(o.hi)
}

func (v *Shim2[V, S]) SubScalarAssign(x S) {
	v.lo = v.lo.SubScalar(x)
	v.hi = v.hi.SubScalar(x)
}

func (v *Shim2[V, S]) MulAssign(o Shim2[V, S]) {
	v.lo = v.lo.Mul(o.lo)
	v.hi = v.hi.Mul(o.hi)
}

func (v *Shim2[V, S]) MulScalarAssign(x S) {
	v.lo = v.lo.MulScalar(x)
	v.hi = v.hi.MulScalar(x)
}

func (v *Shim2[V, S]) DivAssign(o Shim2[V, S]) {
	v.lo = v.lo.Div(o.lo)
	v.hi = v.hi.Div(o.hi)
}

func (v *Shim2[V, S]) DivScalarAssign(x S) {
	v.lo = v.lo.DivScalar(x)
	v.hi = v.hi.DivScalar(x)
}
