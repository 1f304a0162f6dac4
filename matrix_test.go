package stadium3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4Rotate(0, 1, 0.2, 0.24).Mult(NewMatrix4Translate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4Rotate(0, 1, 0, 0.1),
		NewMatrix4Translate(-10, 0.1, 3232.1976),
		NewMatrix4Scale(10, 0.1, -0.45),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4Rotate(1, 0, 0.1, 0.334)).Mult(NewMatrix4Scale(10, 1, 2)),
	}

	for i, mat := range matrices {
		assert.Truef(t, mat.Mult(mat.Inverted()).IsIdentity(), "matrix #%d * matrix.Inverted() is not identity:\n%s", i, mat.Mult(mat.Inverted()))
	}

}

func TestMatrixRotateCounterClockwise(t *testing.T) {

	v := NewMatrix4Rotate(0, 0, 1, math.Pi/2).MultVec(VecX)
	assert.True(t, v.Equals(VecY), "rotating +X a quarter turn about +Z should give +Y, got %v", v)

	// Translation is applied after rotation when it comes second.
	v = NewMatrix4Rotate(0, 0, 1, math.Pi/2).Mult(NewMatrix4Translate(0, 0, 2)).MultVec(VecX)
	assert.True(t, v.Equals(NewVector(0, 1, 2)), "got %v", v)

}

func TestProjectionPerspective(t *testing.T) {

	proj := NewProjectionPerspective(90, 0.1, 100, 200, 100)

	// A point straight ahead lands in the middle of the screen, with W equal to its distance.
	p := proj.MultVecW(NewVector(0, 0, -5))
	assert.InDelta(t, 0, p.X/p.W, 1e-9)
	assert.InDelta(t, 0, p.Y/p.W, 1e-9)
	assert.InDelta(t, 5, p.W, 1e-9)

	// With a 90 degree vertical fov, Y == distance is the top edge of the screen.
	p = proj.MultVecW(NewVector(0, 5, -5))
	assert.InDelta(t, 1, p.Y/p.W, 1e-9)

	// Depth runs from -1 at the near plane to 1 at the far plane.
	p = proj.MultVecW(NewVector(0, 0, -0.1))
	assert.InDelta(t, -1, p.Z/p.W, 1e-9)
	p = proj.MultVecW(NewVector(0, 0, -100))
	assert.InDelta(t, 1, p.Z/p.W, 1e-9)

}
