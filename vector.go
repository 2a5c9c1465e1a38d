package wlw

import (
	"fmt"

	"github.com/wlwengine/wlw/math32"
)

// WorldUp is the world's up direction. wlw scenes are Z-up, matching Blender.
var WorldUp = Vector3{0, 0, 1}

// Vector2 is a 2D vector, used for 2D vertex positions, texture coordinates and window sizes.
type Vector2 struct {
	X, Y float32
}

func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

func (vec Vector2) Scale(scalar float32) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

func (vec Vector2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", vec.X, vec.Y)
}

// Vector3 represents a 3D vector (position, direction, scale or euler rotation in degrees).
// Any Vector3 function that modifies the vector returns a modified copy, so calls can be chained.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3One returns a Vector3 of {1, 1, 1}, which is the default scale.
func NewVector3One() Vector3 {
	return Vector3{1, 1, 1}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector3 with every component multiplied by scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// MultComp multiplies the vectors component-wise.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Cross returns the cross product of the calling Vector3 and other.
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Dot returns the dot product of the calling Vector3 and other.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3, skipping the square root.
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

func (vec Vector3) Distance(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length). A zero-length vector is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Reflect reflects the (incoming) vector around the given normal, the same way GLSL's reflect() does.
func (vec Vector3) Reflect(normal Vector3) Vector3 {
	return vec.Sub(normal.Scale(2 * normal.Dot(vec)))
}

// Lerp interpolates between the calling vector and other by t.
func (vec Vector3) Lerp(other Vector3, t float32) Vector3 {
	return vec.Add(other.Sub(vec).Scale(t))
}

// Equals returns true if the two vectors are equal within a tolerance of 0.0001 on every axis.
func (vec Vector3) Equals(other Vector3) bool {
	eps := float32(0.0001)
	return math32.Abs(vec.X-other.X) < eps && math32.Abs(vec.Y-other.Y) < eps && math32.Abs(vec.Z-other.Z) < eps
}

// IsZero returns true if every component is exactly 0.
func (vec Vector3) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

func (vec Vector3) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}
