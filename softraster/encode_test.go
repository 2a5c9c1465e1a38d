package softraster

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlwengine/wlw"

	_ "image/png"

	_ "golang.org/x/image/webp"
)

func checkerboard(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func TestSaveRoundTrip(t *testing.T) {

	img := checkerboard(4)

	for _, name := range []string{"frame.png", "frame.webp"} {
		t.Run(name, func(t *testing.T) {

			path := filepath.Join(t.TempDir(), "out", name)
			require.NoError(t, Save(path, "", img))

			file, err := os.Open(path)
			require.NoError(t, err)
			defer file.Close()

			decoded, _, err := image.Decode(file)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), decoded.Bounds())

			r, g, b, a := decoded.At(1, 0).RGBA()
			assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})

		})
	}

}

func TestSaveUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	assert.Error(t, Save(path, "", checkerboard(2)))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveLoadsAsTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.webp")
	require.NoError(t, Save(path, "webp", checkerboard(4)))
	texture := wlw.LoadImage(path)
	require.NotNil(t, texture)
	assert.Equal(t, 4, texture.Width)
}

func TestDownsample(t *testing.T) {

	img := checkerboard(8)

	assert.Same(t, img, Downsample(img, 1))

	small := Downsample(img, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 4), small.Bounds())

	// A checkerboard averages out to purple.
	c := small.NRGBAAt(1, 1)
	assert.InDelta(t, 128, int(c.R), 20)
	assert.InDelta(t, 128, int(c.B), 20)

}
