package wlw

// VertexBuffer is vertex data uploaded to a backend. It is owned by exactly one Mesh.
type VertexBuffer interface {
	Len() int
	Release()
}

// IndexBuffer is triangle index data uploaded to a backend. It is owned by exactly one Mesh.
type IndexBuffer interface {
	Len() int
	Release()
}

// TextureHandle is a texture uploaded to a backend. It is owned by exactly one Material.
type TextureHandle interface {
	Release()
}

// TextureUploader creates backend textures from raw pixel data.
type TextureUploader interface {
	CreateTexture(texture *Texture, sampler SamplerOptions) (TextureHandle, error)
}

// RenderingDriver is what an Engine draws its windows with.
type RenderingDriver interface {
	// Initialize prepares the driver to draw into window. An error means nothing can be drawn.
	Initialize(window *Window) error
	// AttachWindow prepares an additional window, sharing resources with the one passed to Initialize.
	AttachWindow(window *Window)
	// DrawWindow draws one frame of window.
	DrawWindow(window *Window)
	CreateVertexBuffer(vertices []Vertex3D) VertexBuffer
	CreateIndexBuffer(indices []uint32) IndexBuffer
	SetViewport(x, y, width, height int)
	Clear()
}

// Device is the graphics backend a FrameDriver issues commands to. The ebiten3d and softraster packages provide
// implementations.
type Device interface {
	TextureUploader
	Initialize(window *Window) error
	AttachWindow(window *Window)
	// BeginFrame makes window the target of the commands that follow.
	BeginFrame(window *Window)
	// EndFrame presents what was drawn into window since BeginFrame.
	EndFrame(window *Window)
	SetViewport(x, y, width, height int)
	// Clear clears the color target to color and resets depth.
	Clear(color Color)
	CreateVertexBuffer(vertices []Vertex3D) VertexBuffer
	CreateIndexBuffer(indices []uint32) IndexBuffer
	// DrawIndexed draws the triangle list described by indices, using the state given.
	DrawIndexed(state *DrawState, vertices VertexBuffer, indices IndexBuffer)
}

// DrawState is everything a Device needs to shade one mesh: the transforms plus the texture and lighting state
// resolved from the mesh's and node's materials.
type DrawState struct {
	// Mode2D draws vertex positions as normalized device coordinates with their vertex colors, ignoring everything below.
	Mode2D bool

	Model      Matrix4
	View       Matrix4
	Projection Matrix4

	UseTexture bool
	Texture    TextureHandle

	UseLighting     bool
	ViewPosition    Vector3
	LightPosition   Vector3
	LightColor      Color
	ObjectColor     Color
	AmbientStrength float32
	Shininess       float32
}

// FrameStats counts the work done while drawing the last window.
type FrameStats struct {
	NodesVisited int
	DrawCalls    int
	Triangles    int
}

// FrameDriver is the RenderingDriver that walks a Window's scene graph and turns it into Device commands: one draw
// call per mesh, with the mesh's material bound first and the node's material bound over it.
type FrameDriver struct {
	device  Device
	current *Window
	Stats   FrameStats
}

// NewFrameDriver returns a FrameDriver issuing commands to device.
func NewFrameDriver(device Device) *FrameDriver {
	return &FrameDriver{device: device}
}

// Device returns the Device the FrameDriver draws with.
func (driver *FrameDriver) Device() Device {
	return driver.device
}

func (driver *FrameDriver) Initialize(window *Window) error {
	if failIf(window == nil, "cannot initialize renderer for nil window") {
		return ErrNilWindow
	}
	return driver.device.Initialize(window)
}

func (driver *FrameDriver) AttachWindow(window *Window) {
	if failIf(window == nil, "cannot attach nil window to renderer") {
		return
	}
	driver.device.AttachWindow(window)
}

func (driver *FrameDriver) CreateVertexBuffer(vertices []Vertex3D) VertexBuffer {
	return driver.device.CreateVertexBuffer(vertices)
}

func (driver *FrameDriver) CreateIndexBuffer(indices []uint32) IndexBuffer {
	return driver.device.CreateIndexBuffer(indices)
}

func (driver *FrameDriver) SetViewport(x, y, width, height int) {
	driver.device.SetViewport(x, y, width, height)
}

// Clear clears the window being drawn to its clear color.
func (driver *FrameDriver) Clear() {
	color := NewColor(0.1, 0.1, 0.15, 1)
	if driver.current != nil {
		color = driver.current.ClearColor
	}
	driver.device.Clear(color)
}

// DrawWindow draws one frame: it processes the window's events, clears it, draws every 3D node breadth first through
// the window's camera, then draws the 2D nodes on top.
func (driver *FrameDriver) DrawWindow(window *Window) {

	if failIf(window == nil, "cannot draw nil window") {
		return
	}

	driver.current = window
	driver.Stats = FrameStats{}

	driver.device.BeginFrame(window)
	window.ProcessEvents()

	size := window.Size()
	driver.SetViewport(0, 0, int(size.X), int(size.Y))
	driver.Clear()

	camera := window.UpdatedCamera()
	view := camera.ViewMatrix()
	projection := camera.ProjectionMatrix()
	cameraPosition := camera.Position()

	window.Traverse3D(func(node *Node3D) {
		driver.Stats.NodesVisited++

		model := node.Model()
		if model == nil || len(model.Meshes) == 0 || !node.Visible() {
			return
		}

		for _, mesh := range model.Meshes {
			state := DrawState{
				Model:      node.ModelMatrix(),
				View:       view,
				Projection: projection,
			}
			driver.BindMaterial(&state, mesh.Material(), cameraPosition)
			if node.Material() != nil {
				driver.BindMaterial(&state, node.Material(), cameraPosition)
			}
			drawMesh(driver, &state, mesh)
		}
	})

	window.Traverse2D(func(node *Node2D) {
		driver.Stats.NodesVisited++

		model := node.Model()
		if model == nil || !node.Visible() {
			return
		}

		for _, mesh := range model.Meshes {
			state := DrawState{
				Mode2D:     true,
				Model:      NewMatrix4(),
				View:       NewMatrix4(),
				Projection: NewMatrix4(),
			}
			drawMesh(driver, &state, mesh)
		}
	})

	driver.device.EndFrame(window)

}

func drawMesh[V Vertex](driver *FrameDriver, state *DrawState, mesh *Mesh[V]) {
	if len(mesh.Indices()) == 0 {
		return
	}
	vertices, indices := mesh.buffers(driver)
	driver.device.DrawIndexed(state, vertices, indices)
	driver.Stats.DrawCalls++
	driver.Stats.Triangles += mesh.TriangleCount()
}

// BindMaterial writes material's texture and lighting state into state, replacing whatever state held before.
// A nil material turns texturing and lighting off. The material's texture is uploaded the first time it is bound.
func (driver *FrameDriver) BindMaterial(state *DrawState, material *Material, cameraPosition Vector3) {

	state.UseTexture = false
	state.Texture = nil
	state.UseLighting = false
	state.ObjectColor = NewColor(1, 1, 1, 1)

	if material == nil {
		return
	}

	state.ObjectColor = material.Color

	if material.HasTexture() {
		handle, err := material.GenerateTexture(driver.device)
		if err != nil {
			logger.Error("texture upload failed", "material", material.Name, "err", err)
		} else {
			state.UseTexture = true
			state.Texture = handle
		}
	}

	if lighting := material.Lighting(); lighting != nil {
		state.UseLighting = true
		state.ViewPosition = cameraPosition
		state.LightPosition = lighting.Position
		state.LightColor = lighting.Color
		state.AmbientStrength = lighting.AmbientStrength
		state.Shininess = lighting.Shininess
	}

}
