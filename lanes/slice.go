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

// Whole-slice helpers: the consumer idiom for running a vector kernel
// across scalar data that is not a multiple of the vector width. The tail
// is staged through a zero-padded buffer so the kernel always sees full
// vectors; the padding lanes are computed and discarded.

// Transform applies f across src in vector-width steps, writing results to
// dst. It processes min(len(dst), len(src)) scalars.
func Transform[V any, S Scalar, T Token](token T, dst, src []S, f func(V) V) {
	w := Width[S, V]()
	n := min(len(dst), len(src))

	i := 0
	for ; i+w <= n; i += w {
		v := Read[V](token, src[i:])
		Write(f(v), dst[i:])
	}

	if i < n {
		buf := make([]S, w)
		copy(buf, src[i:n])
		v := Read[V](token, buf)
		Write(f(v), buf)
		copy(dst[i:n], buf)
	}
}

// Accumulate folds src into a single vector in vector-width steps:
// acc = f(acc, chunk) for each chunk, starting from a zeroed accumulator.
// A short tail is zero-padded, so f must treat zero lanes as neutral (true
// for sums and dot products; not for products).
func Accumulate[V any, S Scalar, T Token](token T, src []S, f func(acc, chunk V) V) V {
	w := Width[S, V]()
	acc := Zeroed[V](token)

	i := 0
	for ; i+w <= len(src); i += w {
		acc = f(acc, Read[V](token, src[i:]))
	}

	if i < len(src) {
		buf := make([]S, w)
		copy(buf, src[i:])
		acc = f(acc, Read[V](token, buf))
	}
	return acc
}
