package wlw

import (
	"strconv"

	"github.com/wlwengine/wlw/math32"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 in wlw is row-major and
// transforms row vectors (v * M), so the translation lives in matrix[3] and matrices compose left to right:
// A.Mult(B) applies A first, then B.
type Matrix4 [4][4]float32

// Vector4 is a homogeneous coordinate, as returned by Matrix4.MultVecW.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// The rotation is counter-clockwise when looking down the axis towards the origin.
func NewMatrix4Rotate(x, y, z, angle float32) Matrix4 {

	// Default to spinning on +Z (world up) if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		z = 1
	}

	mat := NewMatrix4()
	axis := Vector3{X: x, Y: y, Z: z}.Unit()
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewMatrix4FromColumnMajor builds a Matrix4 out of 16 column-major values, the layout glTF and OpenGL use.
// Because wlw matrices transform row vectors, the column-major array maps directly onto the rows.
func NewMatrix4FromColumnMajor(values [16]float64) Matrix4 {
	mat := Matrix4{}
	for i, v := range values {
		mat[i/4][i%4] = float32(v)
	}
	return mat
}

// ColumnMajor returns the matrix as 16 floats in the column-major layout that GPU uniforms expect.
func (matrix Matrix4) ColumnMajor() [16]float32 {
	out := [16]float32{}
	for r := range 4 {
		for c := range 4 {
			out[r*4+c] = matrix[r][c]
		}
	}
	return out
}

// Transposed returns a transposed copy of the Matrix4.
func (matrix Matrix4) Transposed() Matrix4 {

	new := NewMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// Inverted returns an inverted version of the Matrix4 (cofactor expansion over 2x2 sub-determinants).
// A singular matrix yields an identity Matrix4.
func (matrix Matrix4) Inverted() Matrix4 {

	var A2323 = matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	var A1323 = matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	var A1223 = matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	var A0323 = matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	var A0223 = matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	var A0123 = matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]
	var A2313 = matrix[1][2]*matrix[3][3] - matrix[1][3]*matrix[3][2]
	var A1313 = matrix[1][1]*matrix[3][3] - matrix[1][3]*matrix[3][1]
	var A1213 = matrix[1][1]*matrix[3][2] - matrix[1][2]*matrix[3][1]
	var A2312 = matrix[1][2]*matrix[2][3] - matrix[1][3]*matrix[2][2]
	var A1312 = matrix[1][1]*matrix[2][3] - matrix[1][3]*matrix[2][1]
	var A1212 = matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]
	var A0313 = matrix[1][0]*matrix[3][3] - matrix[1][3]*matrix[3][0]
	var A0213 = matrix[1][0]*matrix[3][2] - matrix[1][2]*matrix[3][0]
	var A0312 = matrix[1][0]*matrix[2][3] - matrix[1][3]*matrix[2][0]
	var A0212 = matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0]
	var A0113 = matrix[1][0]*matrix[3][1] - matrix[1][1]*matrix[3][0]
	var A0112 = matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]

	var det = matrix[0][0]*(matrix[1][1]*A2323-matrix[1][2]*A1323+matrix[1][3]*A1223) -
		matrix[0][1]*(matrix[1][0]*A2323-matrix[1][2]*A0323+matrix[1][3]*A0223) +
		matrix[0][2]*(matrix[1][0]*A1323-matrix[1][1]*A0323+matrix[1][3]*A0123) -
		matrix[0][3]*(matrix[1][0]*A1223-matrix[1][1]*A0223+matrix[1][2]*A0123)

	if det == 0 {
		return NewMatrix4()
	}

	det = 1 / det

	m := NewMatrix4()

	m[0][0] = det * (matrix[1][1]*A2323 - matrix[1][2]*A1323 + matrix[1][3]*A1223)
	m[0][1] = det * -(matrix[0][1]*A2323 - matrix[0][2]*A1323 + matrix[0][3]*A1223)
	m[0][2] = det * (matrix[0][1]*A2313 - matrix[0][2]*A1313 + matrix[0][3]*A1213)
	m[0][3] = det * -(matrix[0][1]*A2312 - matrix[0][2]*A1312 + matrix[0][3]*A1212)
	m[1][0] = det * -(matrix[1][0]*A2323 - matrix[1][2]*A0323 + matrix[1][3]*A0223)
	m[1][1] = det * (matrix[0][0]*A2323 - matrix[0][2]*A0323 + matrix[0][3]*A0223)
	m[1][2] = det * -(matrix[0][0]*A2313 - matrix[0][2]*A0313 + matrix[0][3]*A0213)
	m[1][3] = det * (matrix[0][0]*A2312 - matrix[0][2]*A0312 + matrix[0][3]*A0212)
	m[2][0] = det * (matrix[1][0]*A1323 - matrix[1][1]*A0323 + matrix[1][3]*A0123)
	m[2][1] = det * -(matrix[0][0]*A1323 - matrix[0][1]*A0323 + matrix[0][3]*A0123)
	m[2][2] = det * (matrix[0][0]*A1313 - matrix[0][1]*A0313 + matrix[0][3]*A0113)
	m[2][3] = det * -(matrix[0][0]*A1312 - matrix[0][1]*A0312 + matrix[0][3]*A0112)
	m[3][0] = det * -(matrix[1][0]*A1223 - matrix[1][1]*A0223 + matrix[1][2]*A0123)
	m[3][1] = det * (matrix[0][0]*A1223 - matrix[0][1]*A0223 + matrix[0][2]*A0123)
	m[3][2] = det * -(matrix[0][0]*A1213 - matrix[0][1]*A0213 + matrix[0][2]*A0113)
	m[3][3] = det * (matrix[0][0]*A1212 - matrix[0][1]*A0212 + matrix[0][2]*A0112)

	return m

}

// NormalMatrix returns the inverse-transpose of the matrix. Normals transformed with NormalMatrix().MultDir()
// stay perpendicular to their surfaces under non-uniform scale.
func (matrix Matrix4) NormalMatrix() Matrix4 {
	return matrix.Inverted().Transposed()
}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component. This is used for projection.
func (matrix Matrix4) MultVecW(vect Vector3) Vector4 {

	return Vector4{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}

}

// MultDir multiplies a direction by the upper 3x3 portion of the Matrix4, ignoring translation.
func (matrix Matrix4) MultDir(vect Vector3) Vector3 {
	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}
}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			newMat[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return newMat

}

// Translation returns the translation component of the Matrix4.
func (matrix Matrix4) Translation() Vector3 {
	return Vector3{X: matrix[3][0], Y: matrix[3][1], Z: matrix[3][2]}
}

// Row returns the indiced row from the Matrix4 as a Vector3, dropping the fourth column.
func (matrix Matrix4) Row(rowIndex int) Vector3 {
	return Vector3{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
	}
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {

	eps := float32(0.0001) // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// NewProjectionPerspective generates a perspective frustum Matrix4 mapping view space into OpenGL-style clip space
// (depth -1 to 1). fovy is the vertical field of view in degrees, near and far are the clipping planes, and viewWidth and
// viewHeight give the aspect ratio.
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float32) Matrix4 {

	aspect := viewWidth / viewHeight
	if viewHeight == 0 {
		aspect = 1
	}

	f := 1 / math32.Tan(math32.ToRadians(fovy)/2)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), -1},
		{0, 0, (2 * far * near) / (near - far), 0},
	}

}

// NewLookAtMatrix generates a view Matrix4 for an eye at from, looking towards to, with up being the upward direction
// (+Z in wlw scenes). The result moves world space into view space, where the eye looks down -Z.
func NewLookAtMatrix(from, to, up Vector3) Matrix4 {

	// If from and to are the same, then an identity Matrix4 should be a sensible default
	if from.Equals(to) {
		return NewMatrix4()
	}

	f := to.Sub(from).Unit()
	s := f.Cross(up).Unit()
	u := s.Cross(f)

	return Matrix4{
		{s.X, u.X, -f.X, 0},
		{s.Y, u.Y, -f.Y, 0},
		{s.Z, u.Z, -f.Z, 0},
		{-s.Dot(from), -u.Dot(from), f.Dot(from), 1},
	}
}

// NewModelMatrix composes the local transform of a scene node: scale first, then rotation around X, Y and Z (in that
// order, rotation given in degrees) and translation last.
func NewModelMatrix(position, scale, rotationDegrees Vector3) Matrix4 {
	return NewMatrix4Scale(scale.X, scale.Y, scale.Z).
		Mult(NewMatrix4Rotate(1, 0, 0, math32.ToRadians(rotationDegrees.X))).
		Mult(NewMatrix4Rotate(0, 1, 0, math32.ToRadians(rotationDegrees.Y))).
		Mult(NewMatrix4Rotate(0, 0, 1, math32.ToRadians(rotationDegrees.Z))).
		Mult(NewMatrix4Translate(position.X, position.Y, position.Z))
}
