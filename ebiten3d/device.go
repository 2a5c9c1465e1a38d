package ebiten3d

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wlwengine/wlw"
)

// Device is a wlw.Device drawing into one offscreen *ebiten.Image per window.
type Device struct {
	targets  map[*wlw.Window]*ebiten.Image
	current  *ebiten.Image
	viewport image.Rectangle

	// TextureUploads counts CreateTexture calls that produced an image.
	TextureUploads int
}

// NewDevice returns a Device with no windows.
func NewDevice() *Device {
	return &Device{
		targets: map[*wlw.Window]*ebiten.Image{},
	}
}

func (device *Device) Initialize(window *wlw.Window) error {
	if window == nil {
		return wlw.ErrNilWindow
	}
	size := window.Size()
	if size.X < 1 || size.Y < 1 {
		return fmt.Errorf("ebiten3d: %w: window %q has size %s", wlw.ErrBackendInit, window.Title(), size)
	}
	device.AttachWindow(window)
	return nil
}

func (device *Device) AttachWindow(window *wlw.Window) {
	if window == nil {
		return
	}
	device.target(window)
}

// target returns window's offscreen image, recreating it when the window changed size.
func (device *Device) target(window *wlw.Window) *ebiten.Image {
	size := window.Size()
	w, h := max(int(size.X), 1), max(int(size.Y), 1)
	img := device.targets[window]
	if img != nil && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	if img != nil {
		img.Deallocate()
	}
	img = ebiten.NewImage(w, h)
	device.targets[window] = img
	return img
}

// Image returns the image window was last drawn into, or nil if the window isn't attached. Draw it onto the screen
// from the game's Draw method.
func (device *Device) Image(window *wlw.Window) *ebiten.Image {
	return device.targets[window]
}

func (device *Device) BeginFrame(window *wlw.Window) {
	device.current = device.target(window)
	device.viewport = device.current.Bounds()
}

func (device *Device) EndFrame(window *wlw.Window) {
	device.current = nil
}

func (device *Device) SetViewport(x, y, width, height int) {
	device.viewport = image.Rect(x, y, x+width, y+height)
}

func (device *Device) Clear(color wlw.Color) {
	if device.current == nil {
		return
	}
	device.current.Fill(color.NRGBA())
}

func (device *Device) CreateVertexBuffer(vertices []wlw.Vertex3D) wlw.VertexBuffer {
	return &vertexBuffer{vertices: append([]wlw.Vertex3D(nil), vertices...)}
}

func (device *Device) CreateIndexBuffer(indices []uint32) wlw.IndexBuffer {
	return &indexBuffer{indices: append([]uint32(nil), indices...)}
}

func (device *Device) CreateTexture(texture *wlw.Texture, sampler wlw.SamplerOptions) (wlw.TextureHandle, error) {
	if texture == nil {
		return nil, wlw.ErrNilTexture
	}
	if texture.Width < 1 || texture.Height < 1 || len(texture.Data) < texture.Width*texture.Height*texture.Channels {
		return nil, fmt.Errorf("ebiten3d: texture %dx%dx%d has %d bytes of data", texture.Width, texture.Height, texture.Channels, len(texture.Data))
	}
	device.TextureUploads++
	return &Texture{
		Image:   ebiten.NewImageFromImage(texture.ToNRGBA()),
		sampler: sampler,
	}, nil
}

func (device *Device) DrawIndexed(state *wlw.DrawState, vertices wlw.VertexBuffer, indices wlw.IndexBuffer) {

	if device.current == nil {
		return
	}

	vb, ok := vertices.(*vertexBuffer)
	if !ok {
		return
	}
	ib, ok := indices.(*indexBuffer)
	if !ok {
		return
	}

	target := device.current
	if device.viewport != target.Bounds() {
		target = target.SubImage(device.viewport.Intersect(target.Bounds())).(*ebiten.Image)
	}

	r := &renderer{target: target, viewport: device.viewport, state: state}
	r.render(vb.vertices, ib.indices)

}
