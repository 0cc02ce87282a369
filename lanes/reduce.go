package lanes

// The reductions run in two stages. Stage 1 folds the input with the
// vector-level operator, so no vector-level identity is ever needed; an
// empty input skips straight to the scalar identity. Stage 2 flattens the
// single accumulator's lanes with the scalar operator, starting from the
// scalar identity.
//
// For floating point this lane-then-flatten order differs from naive
// left-to-right scalar summation. The order is part of the contract; do not
// reorder it.

// Sum returns the sum of every lane of every vector in vs. An empty vs
// yields the additive identity of S.
func Sum[S Scalar, V Ops[V, S]](vs []V) S {
	var total S
	if len(vs) == 0 {
		return total
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	for _, x := range AsSlice[S](&acc) {
		total += x
	}
	return total
}

// Product returns the product of every lane of every vector in vs. An
// empty vs yields the multiplicative identity of S.
func Product[S Scalar, V Ops[V, S]](vs []V) S {
	total := one[S]()
	if len(vs) == 0 {
		return total
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Mul(v)
	}
	for _, x := range AsSlice[S](&acc) {
		total *= x
	}
	return total
}
