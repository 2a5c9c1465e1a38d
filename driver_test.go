package wlw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBuffer struct {
	n        int
	released bool
}

func (b *fakeBuffer) Len() int { return b.n }
func (b *fakeBuffer) Release() { b.released = true }

type fakeTexture struct {
	texture  *Texture
	released bool
}

func (tex *fakeTexture) Release() { tex.released = true }

// fakeDevice records the commands a FrameDriver sends it.
type fakeDevice struct {
	initErr error

	uploads       int
	vertexBuffers int
	indexBuffers  int
	clears        []Color
	viewports     [][4]int
	frames        int
	draws         []DrawState
}

func (d *fakeDevice) CreateTexture(texture *Texture, sampler SamplerOptions) (TextureHandle, error) {
	d.uploads++
	return &fakeTexture{texture: texture}, nil
}

func (d *fakeDevice) Initialize(window *Window) error { return d.initErr }
func (d *fakeDevice) AttachWindow(window *Window)     {}
func (d *fakeDevice) BeginFrame(window *Window)       {}
func (d *fakeDevice) EndFrame(window *Window)         { d.frames++ }
func (d *fakeDevice) Clear(color Color)               { d.clears = append(d.clears, color) }

func (d *fakeDevice) SetViewport(x, y, width, height int) {
	d.viewports = append(d.viewports, [4]int{x, y, width, height})
}

func (d *fakeDevice) CreateVertexBuffer(vertices []Vertex3D) VertexBuffer {
	d.vertexBuffers++
	return &fakeBuffer{n: len(vertices)}
}

func (d *fakeDevice) CreateIndexBuffer(indices []uint32) IndexBuffer {
	d.indexBuffers++
	return &fakeBuffer{n: len(indices)}
}

func (d *fakeDevice) DrawIndexed(state *DrawState, vertices VertexBuffer, indices IndexBuffer) {
	d.draws = append(d.draws, *state)
}

func newTestTexture() *Texture {
	return NewTexture(2, 2, 3, make([]byte, 2*2*3))
}

func newTexturedMaterial(name string) *Material {
	mat := NewMaterial(name)
	mat.SetTexture(newTestTexture())
	return mat
}

func TestDrawWindowDrawsEveryMesh(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)
	window.ClearColor = NewColor(0.5, 0.25, 0, 1)

	cube := NewNode3D("cube", NewModel("cube", NewCubeMesh(1)))
	quad := NewNode3D("quad", NewModel("quad", NewQuadMesh(1, 1)))
	cube.AddNode(quad)
	window.AddNode3D(cube)
	window.AddNode3D(NewNode3D("empty", nil))
	window.AddNode2D(NewTriangle2D("tri", [3]Vertex2D{}))

	driver.DrawWindow(window)

	assert.Equal(t, FrameStats{NodesVisited: 4, DrawCalls: 3, Triangles: 12 + 2 + 1}, driver.Stats)
	require.Len(t, device.draws, 3)
	assert.False(t, device.draws[0].Mode2D)
	assert.True(t, device.draws[2].Mode2D)
	assert.Equal(t, []Color{window.ClearColor}, device.clears)
	assert.Equal(t, [][4]int{{0, 0, 64, 48}}, device.viewports)
	assert.Equal(t, 1, device.frames)
	assert.Equal(t, uint64(1), window.FrameCount())

	assert.True(t, device.draws[0].Model.Equals(cube.ModelMatrix()))
	assert.True(t, device.draws[0].View.Equals(window.Camera().ViewMatrix()))

}

func TestBuffersAreCreatedOnce(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)

	mesh := NewQuadMesh(1, 1)
	window.AddNode3D(NewNode3D("quad", NewModel("quad", mesh)))

	driver.DrawWindow(window)
	driver.DrawWindow(window)
	assert.Equal(t, 1, device.vertexBuffers)
	assert.Equal(t, 1, device.indexBuffers)

	// Replacing the data uploads it again.
	mesh.SetVertices(mesh.Vertices())
	driver.DrawWindow(window)
	assert.Equal(t, 2, device.vertexBuffers)
	assert.Equal(t, 1, device.indexBuffers)

}

func TestSkipsInvisibleAndEmptyNodes(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)

	hidden := NewNode3D("hidden", NewModel("quad", NewQuadMesh(1, 1)))
	hidden.SetVisible(false)
	// Children of a hidden node are still drawn.
	hidden.AddNode(NewNode3D("shown", NewModel("quad", NewQuadMesh(1, 1))))
	window.AddNode3D(hidden)
	window.AddNode3D(NewNode3D("no meshes", NewModel[Vertex3D]("empty")))
	window.AddNode3D(NewNode3D("no indices", NewModel("empty", NewMesh[Vertex3D]("empty"))))

	driver.DrawWindow(window)

	assert.Equal(t, 4, driver.Stats.NodesVisited)
	assert.Equal(t, 1, driver.Stats.DrawCalls)

}

func TestTextureUploadedOnceAcrossBinds(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	mat := newTexturedMaterial("shared")

	state := DrawState{}
	driver.BindMaterial(&state, mat, Vector3{})
	first := state.Texture
	driver.BindMaterial(&state, mat, Vector3{})

	assert.Equal(t, 1, device.uploads)
	assert.True(t, state.UseTexture)
	assert.Same(t, first, state.Texture)
	assert.Same(t, mat.TextureHandle(), state.Texture)

}

func TestSharedMaterialUploadsOncePerFrame(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)

	mat := newTexturedMaterial("shared")
	for _, name := range []string{"a", "b", "c"} {
		node := NewNode3D(name, NewModel(name, NewQuadMesh(1, 1)))
		node.SetMaterial(mat)
		window.AddNode3D(node)
	}

	driver.DrawWindow(window)
	driver.DrawWindow(window)

	assert.Equal(t, 1, device.uploads)

}

func TestNodeMaterialOverridesMeshMaterial(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)

	meshMat := newTexturedMaterial("mesh")
	meshMat.SetLighting(NewLighting(Vector3{1, 2, 3}, 0.5, 32))

	nodeMat := NewMaterial("node")
	nodeMat.Color = NewColor(0, 1, 0, 1)

	mesh := NewQuadMesh(1, 1)
	mesh.SetMaterial(meshMat)
	node := NewNode3D("quad", NewModel("quad", mesh))
	node.SetMaterial(nodeMat)
	window.AddNode3D(node)

	driver.DrawWindow(window)

	require.Len(t, device.draws, 1)
	state := device.draws[0]
	// The node's untextured, unlit material replaces everything the mesh's material set.
	assert.False(t, state.UseTexture)
	assert.Nil(t, state.Texture)
	assert.False(t, state.UseLighting)
	assert.Equal(t, nodeMat.Color, state.ObjectColor)

	// The mesh material was still bound first, so its texture was uploaded.
	assert.Equal(t, 1, device.uploads)

}

func TestMeshMaterialAppliesWithoutNodeMaterial(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)

	meshMat := newTexturedMaterial("mesh")
	meshMat.Color = NewColor(1, 0, 0, 1)
	meshMat.SetLighting(NewLighting(Vector3{1, 2, 3}, 0.5, 32))

	mesh := NewQuadMesh(1, 1)
	mesh.SetMaterial(meshMat)
	window.AddNode3D(NewNode3D("quad", NewModel("quad", mesh)))

	driver.DrawWindow(window)

	require.Len(t, device.draws, 1)
	state := device.draws[0]
	assert.True(t, state.UseTexture)
	assert.Same(t, meshMat.TextureHandle(), state.Texture)
	assert.True(t, state.UseLighting)
	assert.Equal(t, float32(32), state.Shininess)
	assert.Equal(t, meshMat.Color, state.ObjectColor)

}

func TestNoMaterialsDrawsVertexColor(t *testing.T) {

	device := &fakeDevice{}
	driver := NewFrameDriver(device)
	window := newTestWindow(t)
	window.AddNode3D(NewNode3D("quad", NewModel("quad", NewQuadMesh(1, 1))))

	driver.DrawWindow(window)

	require.Len(t, device.draws, 1)
	state := device.draws[0]
	assert.False(t, state.UseTexture)
	assert.False(t, state.UseLighting)
	assert.Equal(t, NewColor(1, 1, 1, 1), state.ObjectColor)
	assert.Zero(t, device.uploads)

}

func TestBindMaterialLighting(t *testing.T) {

	driver := NewFrameDriver(&fakeDevice{})
	mat := NewMaterial("lit")
	light := NewLighting(Vector3{1.2, 1, 2}, 0.5, 128)
	light.Color = NewColor(1, 0.5, 0.5, 1)
	mat.SetLighting(light)

	state := DrawState{}
	cameraPosition := Vector3{0, -3, 1}
	driver.BindMaterial(&state, mat, cameraPosition)

	assert.True(t, state.UseLighting)
	assert.False(t, state.UseTexture)
	assert.Equal(t, cameraPosition, state.ViewPosition)
	assert.Equal(t, light.Position, state.LightPosition)
	assert.Equal(t, light.Color, state.LightColor)
	assert.Equal(t, float32(0.5), state.AmbientStrength)
	assert.Equal(t, float32(128), state.Shininess)

	driver.BindMaterial(&state, nil, cameraPosition)
	assert.False(t, state.UseLighting)
	assert.False(t, state.UseTexture)

}

func TestInitializeNilWindow(t *testing.T) {
	driver := NewFrameDriver(&fakeDevice{})
	assert.ErrorIs(t, driver.Initialize(nil), ErrNilWindow)
}

func TestInitializePassesDeviceError(t *testing.T) {
	failure := errors.New("no context")
	driver := NewFrameDriver(&fakeDevice{initErr: failure})
	assert.ErrorIs(t, driver.Initialize(newTestWindow(t)), failure)
}
