package wlw

// Model is a named group of meshes plus the textures and materials they may reference. Textures and Materials
// loaded alongside the meshes are kept here so they stay alive as long as the Model does, even if no Mesh
// currently points at them.
type Model[V Vertex] struct {
	Name      string
	Meshes    []*Mesh[V]
	Textures  []*Texture
	Materials []*Material
}

type (
	Model2D = Model[Vertex2D]
	Model3D = Model[Vertex3D]
)

// NewModel creates a new Model with the name given, containing the meshes provided (in draw order).
func NewModel[V Vertex](name string, meshes ...*Mesh[V]) *Model[V] {
	return &Model[V]{
		Name:   name,
		Meshes: meshes,
	}
}

// AddMesh appends a Mesh to the Model; meshes are drawn in the order they were added.
func (model *Model[V]) AddMesh(mesh *Mesh[V]) {
	model.Meshes = append(model.Meshes, mesh)
}

// MeshByName returns the first Mesh with the given name, or nil if there is none.
func (model *Model[V]) MeshByName(name string) *Mesh[V] {
	for _, mesh := range model.Meshes {
		if mesh.Name == name {
			return mesh
		}
	}
	return nil
}

// Dimensions returns the bounding box of all of the Model's meshes.
func (model *Model[V]) Dimensions() Dimensions {
	dim := Dimensions{}
	first := true
	for _, mesh := range model.Meshes {
		if len(mesh.vertices) == 0 {
			continue
		}
		if first {
			dim = mesh.Dimensions()
			first = false
			continue
		}
		dim = dim.Merge(mesh.Dimensions())
	}
	return dim
}

// Release frees the backend resources held by the Model's meshes and materials.
func (model *Model[V]) Release() {
	for _, mesh := range model.Meshes {
		mesh.Release()
	}
	for _, mat := range model.Materials {
		mat.Release()
	}
}
