package wlw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wlwengine/wlw/math32"
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
		NewMatrix4Translate(-10, 0.1, 323.1976),
		NewMatrix4Scale(10, 0.1, -0.45),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4Rotate(1, 0, 0.1, 0.334)).Mult(NewMatrix4Scale(10, 1, 2)),
	}

	for i, mat := range matrices {
		assert.True(t, mat.Mult(mat.Inverted()).IsIdentity(), "matrix #%d * its inverse is not identity", i)
	}

}

func TestSingularMatrixInvertsToIdentity(t *testing.T) {
	assert.True(t, NewMatrix4Scale(1, 1, 0).Inverted().IsIdentity())
}

func TestModelMatrixScalesThenRotatesThenTranslates(t *testing.T) {

	mat := NewModelMatrix(Vector3{10, 0, 0}, Vector3{2, 2, 2}, Vector3{0, 0, 90})

	// (1, 0, 0) scaled to (2, 0, 0), turned 90 degrees around Z to (0, 2, 0), then moved by (10, 0, 0).
	got := mat.MultVec(Vector3{1, 0, 0})
	assert.True(t, got.Equals(Vector3{10, 2, 0}), "got %s", got)

	assert.True(t, NewModelMatrix(Vector3{}, NewVector3One(), Vector3{}).IsIdentity())

}

func TestColumnMajorRoundTrip(t *testing.T) {
	mat := NewMatrix4Rotate(0, 1, 0, 0.5).Mult(NewMatrix4Translate(1, 2, 3))
	values := [16]float64{}
	for i, v := range mat.ColumnMajor() {
		values[i] = float64(v)
	}
	assert.True(t, NewMatrix4FromColumnMajor(values).Equals(mat))
	// The translation ends up in elements 12 to 14, as in OpenGL.
	cm := mat.ColumnMajor()
	assert.InDelta(t, 1, cm[12], 0.0001)
	assert.InDelta(t, 3, cm[14], 0.0001)
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {

	eye := Vector3{0, -5, 0}
	view := NewLookAtMatrix(eye, Vector3{}, WorldUp)

	assert.True(t, view.MultVec(eye).Equals(Vector3{}))

	// The target lies straight ahead, down -Z in view space.
	target := view.MultVec(Vector3{})
	assert.True(t, target.Equals(Vector3{0, 0, -5}), "got %s", target)

}

func TestProjectionMapsNearAndFarPlanes(t *testing.T) {

	proj := NewProjectionPerspective(90, 1, 10, 1, 1)

	near := proj.MultVecW(Vector3{0, 0, -1})
	far := proj.MultVecW(Vector3{0, 0, -10})

	assert.InDelta(t, -1, near.Z/near.W, 0.0001)
	assert.InDelta(t, 1, far.Z/far.W, 0.0001)

}

func TestQuaternionMatchesAxisAngle(t *testing.T) {
	angle := float32(0.7)
	fromAxis := NewMatrix4Rotate(0, 0, 1, angle)
	fromQuat := NewQuaternionFromAxisAngle(Vector3{0, 0, 2}, angle).Matrix4()
	assert.True(t, fromAxis.Equals(fromQuat))

	// Unnormalized file data still gives a rotation.
	scaled := NewQuaternion(0, 0, 3*math32.Sin(angle/2), 3*math32.Cos(angle/2)).Unit().Matrix4()
	assert.True(t, fromAxis.Equals(scaled))
	assert.True(t, Quaternion{}.Unit().Matrix4().IsIdentity())
}
