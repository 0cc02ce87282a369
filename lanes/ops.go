package lanes

// The facade constraints are structural: a type qualifies by carrying the
// methods, with no registration step. They deliberately list only the value
// forms; the in-place *Assign methods exist on the concrete types but a
// constraint spanning value and pointer receivers would force an extra
// pointer type parameter on every generic consumer.

// Ops is the constraint for vectors supporting elementwise arithmetic, in
// vector-vector and vector-scalar forms.
type Ops[V any, S Scalar] interface {
	Lanes() int
	Add(V) V
	AddScalar(S) V
	Sub(V) V
	SubScalar(S) V
	Mul(V) V
	MulScalar(S) V
	Div(V) V
	DivScalar(S) V
}

// Signed is the constraint for vectors that additionally support negation.
// Every scalar this package supports is signed, so all carriers satisfy it.
type Signed[V any, S Scalar] interface {
	Ops[V, S]
	Neg() V
}
