// Package softraster is a headless wlw.Device that rasterizes on the CPU into in-memory frame buffers. It needs no
// window system or GPU, which makes it the backend for snapshots, servers and tests.
package softraster

import (
	"fmt"
	"image"

	"github.com/wlwengine/wlw"
)

// Stats counts the resources and work the Device has seen since it was created.
type Stats struct {
	TextureUploads int
	VertexBuffers  int
	IndexBuffers   int
	DrawCalls      int
	Triangles      int // Triangles that survived clipping and were rasterized.
	Frames         int
}

// Device is a software wlw.Device. Each window gets its own FrameBuffer, sized to the window when a frame begins.
type Device struct {
	buffers  map[*wlw.Window]*FrameBuffer
	current  *FrameBuffer
	viewport image.Rectangle

	Stats Stats
}

// NewDevice returns a Device with no windows.
func NewDevice() *Device {
	return &Device{
		buffers: map[*wlw.Window]*FrameBuffer{},
	}
}

func (device *Device) Initialize(window *wlw.Window) error {
	if window == nil {
		return wlw.ErrNilWindow
	}
	size := window.Size()
	if size.X < 1 || size.Y < 1 {
		return fmt.Errorf("softraster: %w: window %q has size %s", wlw.ErrBackendInit, window.Title(), size)
	}
	device.AttachWindow(window)
	return nil
}

func (device *Device) AttachWindow(window *wlw.Window) {
	if window == nil {
		return
	}
	device.frameBuffer(window)
}

func (device *Device) frameBuffer(window *wlw.Window) *FrameBuffer {
	size := window.Size()
	w, h := max(int(size.X), 1), max(int(size.Y), 1)
	fb := device.buffers[window]
	if fb == nil || fb.Width != w || fb.Height != h {
		fb = NewFrameBuffer(w, h)
		device.buffers[window] = fb
	}
	return fb
}

func (device *Device) BeginFrame(window *wlw.Window) {
	device.current = device.frameBuffer(window)
	device.viewport = image.Rect(0, 0, device.current.Width, device.current.Height)
}

func (device *Device) EndFrame(window *wlw.Window) {
	device.current = nil
	device.Stats.Frames++
}

func (device *Device) SetViewport(x, y, width, height int) {
	device.viewport = image.Rect(x, y, x+width, y+height)
}

func (device *Device) Clear(color wlw.Color) {
	if device.current != nil {
		device.current.Clear(color)
	}
}

// Frame returns a copy of the last frame drawn into window, or nil if the window was never attached.
func (device *Device) Frame(window *wlw.Window) *image.NRGBA {
	fb := device.buffers[window]
	if fb == nil {
		return nil
	}
	return fb.Image()
}

// FrameBuffer returns the frame buffer window is drawn into, or nil.
func (device *Device) FrameBuffer(window *wlw.Window) *FrameBuffer {
	return device.buffers[window]
}

type vertexBuffer struct {
	vertices []wlw.Vertex3D
}

func (vb *vertexBuffer) Len() int { return len(vb.vertices) }
func (vb *vertexBuffer) Release() { vb.vertices = nil }

type indexBuffer struct {
	indices []uint32
}

func (ib *indexBuffer) Len() int { return len(ib.indices) }
func (ib *indexBuffer) Release() { ib.indices = nil }

func (device *Device) CreateVertexBuffer(vertices []wlw.Vertex3D) wlw.VertexBuffer {
	device.Stats.VertexBuffers++
	return &vertexBuffer{vertices: append([]wlw.Vertex3D(nil), vertices...)}
}

func (device *Device) CreateIndexBuffer(indices []uint32) wlw.IndexBuffer {
	device.Stats.IndexBuffers++
	return &indexBuffer{indices: append([]uint32(nil), indices...)}
}

func (device *Device) CreateTexture(texture *wlw.Texture, sampler wlw.SamplerOptions) (wlw.TextureHandle, error) {
	if texture == nil {
		return nil, wlw.ErrNilTexture
	}
	if texture.Width < 1 || texture.Height < 1 || len(texture.Data) < texture.Width*texture.Height*texture.Channels {
		return nil, fmt.Errorf("softraster: texture %dx%dx%d has %d bytes of data", texture.Width, texture.Height, texture.Channels, len(texture.Data))
	}
	device.Stats.TextureUploads++
	return &Texture{img: texture.ToNRGBA(), sampler: sampler}, nil
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

	device.Stats.DrawCalls++

	r := newRasterizer(device.current, device.viewport, state)
	r.transform(vb.vertices)

	for i := 0; i+2 < len(ib.indices); i += 3 {
		a, b, c := int(ib.indices[i]), int(ib.indices[i+1]), int(ib.indices[i+2])
		if a >= len(vb.vertices) || b >= len(vb.vertices) || c >= len(vb.vertices) {
			continue
		}
		if r.triangle(a, b, c) {
			device.Stats.Triangles++
		}
	}

}
