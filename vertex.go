package wlw

// Vertex2D is a vertex of a 2D node. Positions are given in normalized device coordinates (-1 to 1 on both axes).
type Vertex2D struct {
	Position Vector2
	Color    Color
}

func (v Vertex2D) toVertex3D() Vertex3D {
	return Vertex3D{
		Position: Vector3{v.Position.X, v.Position.Y, 0},
		Color:    v.Color,
	}
}

// Vertex3D is a vertex of a 3D mesh.
type Vertex3D struct {
	Position  Vector3
	Color     Color
	Normal    Vector3
	TexCoords Vector2
}

func (v Vertex3D) toVertex3D() Vertex3D { return v }

// NewVertex3D returns a white Vertex3D at the given position, with the given normal and texture coordinates.
func NewVertex3D(position, normal Vector3, u, v float32) Vertex3D {
	return Vertex3D{
		Position:  position,
		Color:     NewColor(1, 1, 1, 1),
		Normal:    normal,
		TexCoords: Vector2{u, v},
	}
}

// Vertex is the set of vertex layouts that nodes, models and meshes can be built from.
type Vertex interface {
	Vertex2D | Vertex3D
	toVertex3D() Vertex3D
}
