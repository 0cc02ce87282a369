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
	"fmt"
	"unsafe"
)

// Layout contract
//
// Every vector type V over scalar S — the Vec1/2/4/8 lane carriers and any
// Shim2 composition of them — has memory bit-identical to [W]S, where
// W = Sizeof(V)/Sizeof(S). Every reinterpretation in this file is justified
// by that contract alone; no other file re-types vector memory.
//
// Passing a type that does not satisfy the contract to these functions is a
// caller error with undefined behavior, the same class of obligation as the
// unchecked pointer operations below.

// Width returns the number of S lanes in vector type V.
func Width[S Scalar, V any]() int {
	var v V
	var s S
	return int(unsafe.Sizeof(v) / unsafe.Sizeof(s))
}

// AsSlice returns v's lanes as a slice re-typed over v's own memory, never
// a copy. Mutating the slice mutates the vector. The usual aliasing rules
// apply: the slice must not outlive v, and concurrent mutation is the
// caller's problem, as for any non-atomic value.
func AsSlice[S Scalar, V any](v *V) []S {
	return unsafe.Slice((*S)(unsafe.Pointer(v)), Width[S, V]())
}

// Read copies Width lanes from the start of src into a new vector. No
// alignment is required. The token is evidence that V's instruction tier is
// usable; it is not otherwise consumed.
//
// Panics if src has fewer than Width elements.
func Read[V any, S Scalar, T Token](token T, src []S) V {
	if w := Width[S, V](); len(src) < w {
		panic(fmt.Sprintf("lanes: Read: source length %d shorter than vector width %d", len(src), w))
	}
	return ReadUnchecked[V](token, src)
}

// ReadUnchecked is Read without the length check.
//
// src must have at least Width elements; anything less reads out of bounds
// and is undefined behavior.
func ReadUnchecked[V any, S Scalar, T Token](token T, src []S) V {
	return ReadPtr[V](token, &src[0])
}

// ReadPtr reads a vector from src, which must point to at least Width
// scalars. No alignment is required.
func ReadPtr[V any, S Scalar, T Token](token T, src *S) V {
	return *(*V)(unsafe.Pointer(src))
}

// ReadAlignedPtr reads a vector from src, which must point to at least
// Width scalars and be aligned to the vector's natural alignment.
func ReadAlignedPtr[V any, S Scalar, T Token](token T, src *S) V {
	return *(*V)(unsafe.Pointer(src))
}

// Write copies v's lanes to the start of dst. No alignment is required.
//
// Panics if dst has fewer than Width elements.
func Write[V any, S Scalar](v V, dst []S) {
	if w := Width[S, V](); len(dst) < w {
		panic(fmt.Sprintf("lanes: Write: destination length %d shorter than vector width %d", len(dst), w))
	}
	WriteUnchecked(v, dst)
}

// WriteUnchecked is Write without the length check.
//
// dst must have at least Width elements; anything less writes out of bounds
// and is undefined behavior.
func WriteUnchecked[V any, S Scalar](v V, dst []S) {
	WritePtr(v, &dst[0])
}

// WritePtr writes v's lanes to dst, which must point to at least Width
// scalars. No alignment is required.
func WritePtr[V any, S Scalar](v V, dst *S) {
	*(*V)(unsafe.Pointer(dst)) = v
}

// Zeroed returns a vector with every lane zero. The token is evidence that
// V's instruction tier is usable.
func Zeroed[V any, T Token](token T) V {
	var v V
	return v
}

// Splat returns a vector with every lane set to value.
func Splat[V any, S Scalar, T Token](token T, value S) V {
	var v V
	s := AsSlice[S](&v)
	for i := range s {
		s[i] = value
	}
	return v
}

// ToUnderlying reinterprets v as U, the representation an instruction-set
// binding consumes natively (for the portable carriers, the plain [W]S
// array).
//
// Panics if U and V differ in size or alignment; a mismatch means the
// scalar binding is misconfigured, which is fatal rather than recoverable.
func ToUnderlying[U any, V any](v V) U {
	var u U
	if unsafe.Sizeof(u) != unsafe.Sizeof(v) || unsafe.Alignof(u) != unsafe.Alignof(v) {
		panic(fmt.Sprintf("lanes: ToUnderlying: layout mismatch: %d/%d-byte underlying vs %d/%d-byte vector",
			unsafe.Sizeof(u), unsafe.Alignof(u), unsafe.Sizeof(v), unsafe.Alignof(v)))
	}
	return *(*U)(unsafe.Pointer(&v))
}

// FromUnderlying reinterprets an underlying representation as vector type V.
// The token is evidence that V's instruction tier is usable.
//
// Panics if U and V differ in size or alignment.
func FromUnderlying[V any, U any, T Token](token T, u U) V {
	var v V
	if unsafe.Sizeof(u) != unsafe.Sizeof(v) || unsafe.Alignof(u) != unsafe.Alignof(v) {
		panic(fmt.Sprintf("lanes: FromUnderlying: layout mismatch: %d/%d-byte underlying vs %d/%d-byte vector",
			unsafe.Sizeof(u), unsafe.Alignof(u), unsafe.Sizeof(v), unsafe.Alignof(v)))
	}
	return *(*V)(unsafe.Pointer(&u))
}
