package softraster

import (
	"image"

	"github.com/wlwengine/wlw"
	"github.com/wlwengine/wlw/math32"
)

// FrameBuffer holds one window's render target as flat slices.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // NDC depth per pixel, len = W*H, cleared to +inf
}

// NewFrameBuffer allocates a transparent color buffer and a cleared depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		Depth:  make([]float32, w*h),
	}
	fb.ClearDepth()
	return fb
}

// Clear fills the color buffer with c and resets depth.
func (fb *FrameBuffer) Clear(c wlw.Color) {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
	fb.ClearDepth()
}

func (fb *FrameBuffer) ClearDepth() {
	inf := math32.Inf(1)
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// Image copies the color buffer into a new image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func (fb *FrameBuffer) set(x, y int, c wlw.Color) {
	i := (y*fb.Width + x) * 4
	fb.Color[i] = to8(c.R)
	fb.Color[i+1] = to8(c.G)
	fb.Color[i+2] = to8(c.B)
	fb.Color[i+3] = to8(c.A)
}

func to8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}
