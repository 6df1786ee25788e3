package vectorn

import (
	"github.com/deeean/go-vector/vector2"
	"github.com/deeean/go-vector/vector3"
)

// FromVector2 returns the 2-dimensional vector {X, Y}.
func FromVector2(p *vector2.Vector2) V {
	return Of(p.X, p.Y)
}

// FromVector3 returns the 3-dimensional vector {X, Y, Z}.
func FromVector3(p *vector3.Vector3) V {
	return Of(p.X, p.Y, p.Z)
}

// Vector3 returns the first three components as a vector3.Vector3.
// Missing components read as 0.
func (v V) Vector3() *vector3.Vector3 {
	var xyz [3]float64
	copy(xyz[:], v.values)
	return &vector3.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}
