package wlw

import (
	"fmt"
	"image/color"

	"github.com/wlwengine/wlw/math32"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromRGBA converts a standard library color into a Color.
func NewColorFromRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

func (c *Color) SetRGBA(r, g, b, a float32) {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
}

// MultRGB returns a copy of the Color with the RGB channels multiplied by the other Color's.
func (c Color) MultRGB(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	return c
}

// RGB returns the color channels as a Vector3, which is how lighting math treats them.
func (c Color) RGB() Vector3 {
	return Vector3{c.R, c.G, c.B}
}

// NRGBA converts the Color to an 8-bit non-premultiplied color, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math32.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(math32.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(math32.Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(math32.Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// ConvertTosRGB converts the Color from linear space to sRGB. glTF base color factors are linear.
func (c *Color) ConvertTosRGB() {
	c.R = linearTosRGB(c.R)
	c.G = linearTosRGB(c.G)
	c.B = linearTosRGB(c.B)
}

func linearTosRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

func (c Color) String() string {
	return fmt.Sprintf("{%.3f, %.3f, %.3f, %.3f}", c.R, c.G, c.B, c.A)
}
