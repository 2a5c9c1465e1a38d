package wlw

import (
	"image"
	"image/color"
	"image/draw"
)

// TextureFormat is the pixel layout a Texture is uploaded with.
type TextureFormat int

const (
	TextureFormatRGB  TextureFormat = iota // Three 8-bit channels; the default for anything not 1 or 4 channels.
	TextureFormatRGBA                      // Four 8-bit channels.
	TextureFormatRed                       // A single 8-bit channel, sampled as red.
)

func (format TextureFormat) String() string {
	switch format {
	case TextureFormatRGBA:
		return "RGBA"
	case TextureFormatRed:
		return "Red"
	}
	return "RGB"
}

// TextureWrap is how texture coordinates outside of 0 to 1 are handled.
type TextureWrap int

const (
	TextureWrapRepeat TextureWrap = iota
	TextureWrapClamp
)

// TextureFilter is how texels are filtered when sampled.
type TextureFilter int

const (
	TextureFilterLinear TextureFilter = iota
	TextureFilterNearest
)

// SamplerOptions describes how a backend should sample an uploaded texture.
type SamplerOptions struct {
	Wrap      TextureWrap
	MinFilter TextureFilter
	MagFilter TextureFilter
	Mipmaps   bool
}

// DefaultSamplerOptions are the sampler settings every material texture is uploaded with: repeat wrapping,
// linear filtering and generated mipmaps.
var DefaultSamplerOptions = SamplerOptions{
	Wrap:      TextureWrapRepeat,
	MinFilter: TextureFilterLinear,
	MagFilter: TextureFilterLinear,
	Mipmaps:   true,
}

// Texture is raw, tightly packed 8-bit pixel data as decoded from an image file, rows top to bottom.
type Texture struct {
	Width, Height int
	Channels      int
	Data          []byte
}

// NewTexture returns a Texture wrapping the pixel data given.
func NewTexture(width, height, channels int, data []byte) *Texture {
	return &Texture{Width: width, Height: height, Channels: channels, Data: data}
}

// NewTextureFromImage converts a decoded image into a Texture, keeping the channel count the image was stored
// with. Grayscale images become single channel textures. Images stored with an alpha channel (non-premultiplied
// color, the form decoders return for files that carry alpha) stay four channel even when fully opaque. Color
// images without stored alpha become three channel textures.
func NewTextureFromImage(img image.Image) *Texture {

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	channels := 4
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		channels = 1
	case *image.YCbCr, *image.CMYK:
		channels = 3
	case *image.NRGBA, *image.NRGBA64:
		// Stored with alpha.
	default:
		if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
			channels = 3
		}
	}

	if channels == 1 {
		gray := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
		return NewTexture(w, h, 1, gray.Pix)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	if channels == 4 {
		return NewTexture(w, h, 4, nrgba.Pix)
	}

	data := make([]byte, 0, w*h*3)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		data = append(data, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
	}
	return NewTexture(w, h, 3, data)

}

// Format returns the upload format matching the Texture's channel count.
func (texture *Texture) Format() TextureFormat {
	switch texture.Channels {
	case 4:
		return TextureFormatRGBA
	case 1:
		return TextureFormatRed
	}
	return TextureFormatRGB
}

// At returns the texel at x, y as a Color, expanded according to the Texture's format. Coordinates outside of the
// Texture return transparent black. Textures with a channel count other than 1 or 4 are read as opaque RGB: their
// first three bytes per texel fill red, green and blue, with missing channels left at zero.
func (texture *Texture) At(x, y int) Color {
	if x < 0 || y < 0 || x >= texture.Width || y >= texture.Height {
		return Color{}
	}
	switch texture.Format() {
	case TextureFormatRed:
		i := y*texture.Width + x
		if i >= len(texture.Data) {
			return Color{}
		}
		return Color{float32(texture.Data[i]) / 255, 0, 0, 1}
	case TextureFormatRGBA:
		i := (y*texture.Width + x) * 4
		if i+3 >= len(texture.Data) {
			return Color{}
		}
		d := texture.Data[i : i+4]
		return Color{float32(d[0]) / 255, float32(d[1]) / 255, float32(d[2]) / 255, float32(d[3]) / 255}
	}
	if texture.Channels < 1 {
		return Color{}
	}
	i := (y*texture.Width + x) * texture.Channels
	if i+texture.Channels > len(texture.Data) {
		return Color{}
	}
	rgb := [3]float32{}
	for c := 0; c < min(texture.Channels, 3); c++ {
		rgb[c] = float32(texture.Data[i+c]) / 255
	}
	return Color{rgb[0], rgb[1], rgb[2], 1}
}

// ToNRGBA expands the Texture into an NRGBA image the way a GPU would see it after upload
// (single channel textures become red, three channel textures become opaque).
func (texture *Texture) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, texture.Width, texture.Height))
	for y := 0; y < texture.Height; y++ {
		for x := 0; x < texture.Width; x++ {
			c := texture.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(c.R*255 + 0.5),
				G: uint8(c.G*255 + 0.5),
				B: uint8(c.B*255 + 0.5),
				A: uint8(c.A*255 + 0.5),
			})
		}
	}
	return img
}
