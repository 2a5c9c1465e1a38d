package wlw

import "github.com/wlwengine/wlw/math32"

// Quaternion is a rotation stored as the imaginary vector (X, Y, Z) and real part W, the way glTF files store
// node rotations.
type Quaternion struct {
	X, Y, Z, W float32
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionFromAxisAngle returns the rotation of angle radians around axis.
func NewQuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	axis = axis.Unit()
	s := math32.Sin(angle / 2)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math32.Cos(angle / 2)}
}

func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Unit returns the Quaternion scaled to unit length. A zero Quaternion becomes the identity rotation.
func (quat Quaternion) Unit() Quaternion {
	l := math32.Sqrt(quat.Dot(quat))
	if l < 1e-8 {
		return Quaternion{W: 1}
	}
	return Quaternion{quat.X / l, quat.Y / l, quat.Z / l, quat.W / l}
}

// Matrix4 returns the rotation matrix of a unit Quaternion.
func (quat Quaternion) Matrix4() Matrix4 {
	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W
	return Matrix4{
		{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0},
		{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0},
		{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}
}
