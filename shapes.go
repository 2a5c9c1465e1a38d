package wlw

import "github.com/wlwengine/wlw/math32"

type meshBuilder struct {
	vertices []Vertex3D
	indices  []uint32
}

// quad adds a face through four corners given counter-clockwise from the bottom left, with one color per corner.
func (b *meshBuilder) quad(corners [4]Vector3, colors [4]Color, normal Vector3) {
	uvs := [4]Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	start := uint32(len(b.vertices))
	for i := range corners {
		b.vertices = append(b.vertices, Vertex3D{
			Position:  corners[i],
			Color:     colors[i],
			Normal:    normal,
			TexCoords: uvs[i],
		})
	}
	b.indices = append(b.indices, start, start+1, start+2, start+2, start+3, start)
}

func (b *meshBuilder) mesh(name string) *Mesh3D {
	mesh := NewMesh[Vertex3D](name)
	mesh.SetVertices(b.vertices)
	mesh.SetIndices(b.indices)
	return mesh
}

func faceNormal(a, b, c Vector3) Vector3 {
	return b.Sub(a).Cross(c.Sub(a)).Unit()
}

// NewQuadMesh returns a width x height rectangle in the XY plane, centered on the origin and facing +Z: four vertices
// and two triangles.
func NewQuadMesh(width, height float32) *Mesh3D {
	w, h := width/2, height/2
	white := NewColor(1, 1, 1, 1)
	b := &meshBuilder{}
	b.quad(
		[4]Vector3{{-w, -h, 0}, {w, -h, 0}, {w, h, 0}, {-w, h, 0}},
		[4]Color{white, white, white, white},
		Vector3{0, 0, 1},
	)
	return b.mesh("Quad")
}

// NewCubeMesh returns a red cube with sides of length size, centered on the origin. Each face has its own four
// vertices so normals and texture coordinates stay sharp along the edges.
func NewCubeMesh(size float32) *Mesh3D {

	s := size / 2
	red := NewColor(1, 0, 0, 1)
	c := [4]Color{red, red, red, red}

	b := &meshBuilder{}
	b.quad([4]Vector3{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}, c, Vector3{0, 0, 1})     // +Z
	b.quad([4]Vector3{{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}, c, Vector3{0, 0, -1}) // -Z
	b.quad([4]Vector3{{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s}}, c, Vector3{0, 1, 0})     // +Y
	b.quad([4]Vector3{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}, c, Vector3{0, -1, 0}) // -Y
	b.quad([4]Vector3{{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s}}, c, Vector3{1, 0, 0})     // +X
	b.quad([4]Vector3{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}, c, Vector3{-1, 0, 0}) // -X

	return b.mesh("Cube")

}

// NewPyramidFrustumMesh returns a truncated pyramid standing on the XY plane's origin along +Z: a square base with
// sides of baseSize, a square top with sides of topSize, and the given height. Corners are colored so the shape
// reads well without a texture.
func NewPyramidFrustumMesh(baseSize, topSize, height float32) *Mesh3D {

	hb, ht, hh := baseSize/2, topSize/2, height/2

	p := [8]Vector3{
		{-hb, -hb, -hh}, {hb, -hb, -hh}, {hb, hb, -hh}, {-hb, hb, -hh}, // base
		{-ht, -ht, hh}, {ht, -ht, hh}, {ht, ht, hh}, {-ht, ht, hh}, // top
	}

	c := [8]Color{
		{1, 0, 0, 1}, {1, 0.5, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1},
		{1, 1, 1, 1}, {0.5, 0.5, 0.5, 1}, {1, 1, 0, 1}, {0, 1, 1, 1},
	}

	face := func(b *meshBuilder, i0, i1, i2, i3 int, normal Vector3) {
		b.quad([4]Vector3{p[i0], p[i1], p[i2], p[i3]}, [4]Color{c[i0], c[i1], c[i2], c[i3]}, normal)
	}

	b := &meshBuilder{}
	face(b, 1, 0, 3, 2, Vector3{0, 0, -1})
	face(b, 4, 5, 6, 7, Vector3{0, 0, 1})
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		face(b, i, next, next+4, i+4, faceNormal(p[i], p[next], p[i+4]))
	}

	return b.mesh("PyramidFrustum")

}

// NewSphereMesh returns a UV sphere of the given radius around the Z axis, built from stacks rings of sectors
// quads each.
func NewSphereMesh(radius float32, stacks, sectors int) *Mesh3D {

	stacks = max(stacks, 2)
	sectors = max(sectors, 3)

	gray := NewColor(0.8, 0.8, 0.8, 1)
	stackStep := math32.Pi / float32(stacks)
	sectorStep := 2 * math32.Pi / float32(sectors)

	vertices := make([]Vertex3D, 0, (stacks+1)*(sectors+1))
	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		ringRadius := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)
		for j := 0; j <= sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			position := Vector3{ringRadius * math32.Cos(sectorAngle), ringRadius * math32.Sin(sectorAngle), z}
			vertices = append(vertices, Vertex3D{
				Position:  position,
				Color:     gray,
				Normal:    position.Unit(),
				TexCoords: Vector2{float32(j) / float32(sectors), float32(i) / float32(stacks)},
			})
		}
	}

	indices := []uint32{}
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := uint32((i + 1) * (sectors + 1))
		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			// The first and last rings meet at a pole, so they only need one triangle per sector.
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	mesh := NewMesh[Vertex3D]("Sphere")
	mesh.SetVertices(vertices)
	mesh.SetIndices(indices)
	return mesh

}

// NewTriangle2D returns a 2D node drawing a single triangle through the three vertices given.
func NewTriangle2D(name string, vertices [3]Vertex2D) *Node2D {
	mesh := NewMesh[Vertex2D](name)
	mesh.SetVertices(vertices[:])
	mesh.SetIndices([]uint32{0, 1, 2})
	return NewNode2D(name, NewModel(name, mesh))
}
