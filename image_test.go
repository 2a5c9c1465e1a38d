package wlw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestLoadImageMissingFile(t *testing.T) {
	logs := captureLogs(t)
	assert.Nil(t, LoadImage(filepath.Join(t.TempDir(), "missing.png")))
	assert.Equal(t, 1, logs.count())
}

func TestLoadImageKeepsChannelCount(t *testing.T) {

	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(1, 0, color.Gray{Y: 200})

	opaque := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	translucent := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			opaque.SetNRGBA(x, y, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
			translucent.SetNRGBA(x, y, color.NRGBA{R: 255, G: 128, B: 0, A: 100})
		}
	}

	for _, c := range []struct {
		name     string
		img      image.Image
		channels int
	}{
		{"gray", gray, 1},
		{"opaque", opaque, 3},
		{"translucent", translucent, 4},
	} {
		t.Run(c.name, func(t *testing.T) {
			texture := LoadImage(writePNG(t, c.img))
			require.NotNil(t, texture)
			assert.Equal(t, 3, texture.Width)
			assert.Equal(t, 2, texture.Height)
			assert.Equal(t, c.channels, texture.Channels)
			assert.Len(t, texture.Data, 3*2*c.channels)
		})
	}

	texture := LoadImage(writePNG(t, gray))
	require.NotNil(t, texture)
	assert.Equal(t, TextureFormatRed, texture.Format())
	assert.InDelta(t, 200.0/255, texture.At(1, 0).R, 0.001)

}

func TestDecodeImageUnknownFormat(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTextureAt(t *testing.T) {

	rgba := NewTexture(2, 1, 4, []byte{255, 0, 0, 255, 0, 0, 255, 51})
	assert.Equal(t, NewColor(1, 0, 0, 1), rgba.At(0, 0))
	assert.InDelta(t, 0.2, rgba.At(1, 0).A, 0.001)
	assert.Equal(t, Color{}, rgba.At(2, 0))

	rgb := NewTexture(1, 1, 3, []byte{0, 255, 0})
	assert.Equal(t, NewColor(0, 1, 0, 1), rgb.At(0, 0))

	img := rgb.ToNRGBA()
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, img.NRGBAAt(0, 0))

	// Two channel textures upload as RGB, so they read back as opaque red and green.
	twoChannel := NewTexture(2, 1, 2, []byte{255, 0, 0, 51})
	assert.Equal(t, TextureFormatRGB, twoChannel.Format())
	assert.Equal(t, NewColor(1, 0, 0, 1), twoChannel.At(0, 0))
	assert.Equal(t, NewColor(0, 0.2, 0, 1), twoChannel.At(1, 0))

}

func TestNewTextureFromImageKeepsStoredAlpha(t *testing.T) {

	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range opaque.Pix {
		opaque.Pix[i] = 255
	}
	assert.Equal(t, 4, NewTextureFromImage(opaque).Channels)

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range rgba.Pix {
		rgba.Pix[i] = 255
	}
	assert.Equal(t, 3, NewTextureFromImage(rgba).Channels)

	assert.Equal(t, 1, NewTextureFromImage(image.NewGray16(image.Rect(0, 0, 2, 2))).Channels)

}
