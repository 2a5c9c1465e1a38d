package wlw

// Dimensions represents the minimum and maximum corners of a Mesh's bounding box.
type Dimensions [2]Vector3

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector3 {
	return dim[0].Add(dim[1]).Scale(0.5)
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float32 {
	size := dim[1].Sub(dim[0])
	return max(size.X, size.Y, size.Z)
}

// Merge returns the smallest Dimensions containing both dimension sets.
func (dim Dimensions) Merge(other Dimensions) Dimensions {
	return Dimensions{
		{min(dim[0].X, other[0].X), min(dim[0].Y, other[0].Y), min(dim[0].Z, other[0].Z)},
		{max(dim[1].X, other[1].X), max(dim[1].Y, other[1].Y), max(dim[1].Z, other[1].Z)},
	}
}

// Mesh is a fixed vertex and index buffer pair plus an optional Material; it is the unit of a single draw call.
// Indices form a flat triangle list. Vertex and index data are only ever replaced wholesale.
type Mesh[V Vertex] struct {
	Name     string
	vertices []V
	indices  []uint32
	material *Material

	vertexBuffer VertexBuffer
	indexBuffer  IndexBuffer
}

type (
	Mesh2D = Mesh[Vertex2D]
	Mesh3D = Mesh[Vertex3D]
)

// NewMesh creates a new, empty Mesh with the name given.
func NewMesh[V Vertex](name string) *Mesh[V] {
	return &Mesh[V]{Name: name}
}

// Vertices returns the Mesh's vertices. The returned slice must not be modified; use SetVertices instead.
func (mesh *Mesh[V]) Vertices() []V {
	return mesh.vertices
}

// Indices returns the Mesh's triangle indices. The returned slice must not be modified; use SetIndices instead.
func (mesh *Mesh[V]) Indices() []uint32 {
	return mesh.indices
}

// SetVertices replaces the Mesh's vertices with a copy of the slice given.
func (mesh *Mesh[V]) SetVertices(vertices []V) {
	mesh.vertices = append([]V(nil), vertices...)
	if mesh.vertexBuffer != nil {
		mesh.vertexBuffer.Release()
		mesh.vertexBuffer = nil
	}
}

// SetIndices replaces the Mesh's indices with a copy of the slice given.
func (mesh *Mesh[V]) SetIndices(indices []uint32) {
	mesh.indices = append([]uint32(nil), indices...)
	if mesh.indexBuffer != nil {
		mesh.indexBuffer.Release()
		mesh.indexBuffer = nil
	}
}

// Material returns the Mesh's Material, which may be nil.
func (mesh *Mesh[V]) Material() *Material {
	return mesh.material
}

// SetMaterial sets the Material the Mesh is drawn with. Passing nil clears it.
func (mesh *Mesh[V]) SetMaterial(material *Material) {
	mesh.material = material
}

// TriangleCount returns the number of triangles described by the Mesh's indices.
func (mesh *Mesh[V]) TriangleCount() int {
	return len(mesh.indices) / 3
}

// Dimensions returns the bounding box of the Mesh's vertex positions.
func (mesh *Mesh[V]) Dimensions() Dimensions {
	dim := Dimensions{}
	for i, v := range mesh.vertices {
		p := v.toVertex3D().Position
		if i == 0 {
			dim = Dimensions{p, p}
			continue
		}
		dim = dim.Merge(Dimensions{p, p})
	}
	return dim
}

// buffers returns the backend buffers for the Mesh, creating them through the driver the first time they are needed
// (and again after SetVertices or SetIndices replaced the data).
func (mesh *Mesh[V]) buffers(driver RenderingDriver) (VertexBuffer, IndexBuffer) {
	if mesh.vertexBuffer == nil {
		converted := make([]Vertex3D, len(mesh.vertices))
		for i, v := range mesh.vertices {
			converted[i] = v.toVertex3D()
		}
		mesh.vertexBuffer = driver.CreateVertexBuffer(converted)
	}
	if mesh.indexBuffer == nil {
		mesh.indexBuffer = driver.CreateIndexBuffer(mesh.indices)
	}
	return mesh.vertexBuffer, mesh.indexBuffer
}

// Release frees the backend buffers owned by the Mesh. The Mesh stays usable; buffers are recreated on the next draw.
func (mesh *Mesh[V]) Release() {
	if mesh.vertexBuffer != nil {
		mesh.vertexBuffer.Release()
		mesh.vertexBuffer = nil
	}
	if mesh.indexBuffer != nil {
		mesh.indexBuffer.Release()
		mesh.indexBuffer = nil
	}
}
