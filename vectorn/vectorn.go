package vectorn

import (
	"strconv"
	"strings"
)

// V represents an n-dimensional vector with a cached squared magnitude.
//
// Mutating methods replace the component storage instead of writing into it,
// so a V copied by assignment is never changed through the copy.
type V struct {
	values           []float64
	magnitudeSquared float64
}

// zero is the additive identity handed out by Zero. It is never mutated.
var zero = New(1)

// Zero returns the additive identity: a single zero component.
func Zero() V {
	return zero.Clone()
}

// New returns a vector of count zero components.
func New(count int) V {
	if count < 0 {
		count = 0
	}
	return V{values: make([]float64, count)}
}

// FromValues returns a vector holding a copy of values.
func FromValues(values []float64) V {
	v := V{values: make([]float64, len(values))}
	copy(v.values, values)
	v.RecomputeMagnitude()
	return v
}

// Of is the variadic form of FromValues.
func Of(values ...float64) V {
	return FromValues(values)
}

// Len returns the number of components.
func (v V) Len() int {
	return len(v.values)
}

// At returns component i.
func (v V) At(i int) float64 {
	return v.values[i]
}

// Values returns a copy of the components.
func (v V) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Clone returns a vector that shares no storage with v.
func (v V) Clone() V {
	return V{values: v.Values(), magnitudeSquared: v.magnitudeSquared}
}

// MagnitudeSquared returns the cached sum of squared components.
func (v V) MagnitudeSquared() float64 {
	return v.magnitudeSquared
}

// ComputeMagnitude returns the sum of squared components without touching the cache.
func (v V) ComputeMagnitude() float64 {
	var sum float64
	for _, x := range v.values {
		sum += x * x
	}
	return sum
}

// RecomputeMagnitude refreshes the cached magnitude from the components.
func (v *V) RecomputeMagnitude() {
	v.magnitudeSquared = v.ComputeMagnitude()
}

// Scale multiplies all components of the vector by a scalar
func (v *V) Scale(rhs float64) {
	values := make([]float64, len(v.values))
	for i, x := range v.values {
		values[i] = x * rhs
	}
	v.values = values
	v.RecomputeMagnitude()
}

// Add returns the sum of two vectors, truncated to the shorter one.
func (v V) Add(rhs V) V {
	n := min(len(v.values), len(rhs.values))
	out := V{values: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.values[i] = v.values[i] + rhs.values[i]
	}
	out.RecomputeMagnitude()
	return out
}

// Subtract returns the difference between two vectors, truncated to the shorter one.
func (v V) Subtract(rhs V) V {
	n := min(len(v.values), len(rhs.values))
	out := V{values: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.values[i] = v.values[i] - rhs.values[i]
	}
	out.RecomputeMagnitude()
	return out
}

// AddInPlace adds rhs to v over the overlapping components.
// Components of v past the end of rhs keep their values; v's length never changes.
func (v *V) AddInPlace(rhs V) {
	values := v.Values()
	n := min(len(values), len(rhs.values))
	for i := 0; i < n; i++ {
		values[i] += rhs.values[i]
	}
	v.values = values
	v.RecomputeMagnitude()
}

// SubtractInPlace subtracts rhs from v over the overlapping components.
func (v *V) SubtractInPlace(rhs V) {
	values := v.Values()
	n := min(len(values), len(rhs.values))
	for i := 0; i < n; i++ {
		values[i] -= rhs.values[i]
	}
	v.values = values
	v.RecomputeMagnitude()
}

// Zero returns the additive identity. It lets *V satisfy Arithmetic.
func (V) Zero() V {
	return Zero()
}

// String formats the components as [x y z].
func (v V) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
