package softraster

import (
	"image"

	"github.com/wlwengine/wlw"
	"github.com/wlwengine/wlw/math32"
)

// Texture is a wlw texture uploaded to the software device.
type Texture struct {
	img      *image.NRGBA
	sampler  wlw.SamplerOptions
	released bool
}

// Released reports whether the owning material has freed the texture.
func (tex *Texture) Released() bool {
	return tex.released
}

func (tex *Texture) Release() {
	tex.released = true
	tex.img = nil
}

// Sample returns the texel color at the texture coordinates given, wrapping or clamping them according to the
// texture's sampler and filtering bilinearly unless the sampler asks for nearest texels.
func (tex *Texture) Sample(u, v float32) wlw.Color {

	if tex.img == nil {
		return wlw.NewColor(1, 1, 1, 1)
	}

	w := tex.img.Rect.Dx()
	h := tex.img.Rect.Dy()

	if tex.sampler.Wrap == wlw.TextureWrapClamp {
		u = math32.Clamp(u, 0, 1)
		v = math32.Clamp(v, 0, 1)
	} else {
		u = math32.Wrap(u)
		v = math32.Wrap(v)
	}

	fx := u * float32(w-1)
	fy := v * float32(h-1)

	if tex.sampler.MagFilter == wlw.TextureFilterNearest {
		return tex.texel(int(fx+0.5)%w, int(fy+0.5)%h)
	}

	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	if tex.sampler.Wrap == wlw.TextureWrapClamp {
		x1 = min(x0+1, w-1)
		y1 = min(y0+1, h-1)
	}
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	c00 := tex.texel(x0, y0)
	c10 := tex.texel(x1, y0)
	c01 := tex.texel(x0, y1)
	c11 := tex.texel(x1, y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	return wlw.Color{
		R: c00.R*w00 + c10.R*w10 + c01.R*w01 + c11.R*w11,
		G: c00.G*w00 + c10.G*w10 + c01.G*w01 + c11.G*w11,
		B: c00.B*w00 + c10.B*w10 + c01.B*w01 + c11.B*w11,
		A: c00.A*w00 + c10.A*w10 + c01.A*w01 + c11.A*w11,
	}

}

func (tex *Texture) texel(x, y int) wlw.Color {
	i := tex.img.PixOffset(x, y)
	p := tex.img.Pix
	return wlw.Color{
		R: float32(p[i]) / 255,
		G: float32(p[i+1]) / 255,
		B: float32(p[i+2]) / 255,
		A: float32(p[i+3]) / 255,
	}
}
