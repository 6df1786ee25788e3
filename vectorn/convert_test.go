package vectorn

import (
	"testing"

	"github.com/deeean/go-vector/vector2"
	"github.com/deeean/go-vector/vector3"
	"github.com/stretchr/testify/assert"
)

func TestFromVector2(t *testing.T) {
	v := FromVector2(&vector2.Vector2{X: 3, Y: 4})
	assert.Equal(t, []float64{3, 4}, v.Values())
	assert.Equal(t, 25.0, v.MagnitudeSquared())
}

func TestFromVector3(t *testing.T) {
	p := &vector3.Vector3{X: 1, Y: 2, Z: 2}
	v := FromVector3(p)
	assert.Equal(t, []float64{1, 2, 2}, v.Values())
	assert.Equal(t, 9.0, v.MagnitudeSquared())

	assert.Equal(t, *p, *v.Vector3())
}

func TestVector3_Short(t *testing.T) {
	got := Of(7).Vector3()
	assert.Equal(t, vector3.Vector3{X: 7}, *got)

	got = Of(1, 2, 3, 4).Vector3()
	assert.Equal(t, vector3.Vector3{X: 1, Y: 2, Z: 3}, *got)
}
