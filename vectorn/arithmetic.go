package vectorn

// Arithmetic is the set of operations an interpolation driver needs from a value
// it animates: an identity, pairwise addition and subtraction, scaling, and a
// squared magnitude used to decide when two values are close enough.
//
// Mutating methods have pointer receivers, so implementations are usually *T.
type Arithmetic[T any] interface {
	Zero() T
	Add(rhs T) T
	Subtract(rhs T) T
	AddInPlace(rhs T)
	SubtractInPlace(rhs T)
	Scale(rhs float64)
	MagnitudeSquared() float64
}

var _ Arithmetic[V] = (*V)(nil)
