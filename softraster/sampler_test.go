package softraster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlwengine/wlw"
)

func newSampledTexture(t *testing.T, sampler wlw.SamplerOptions) *Texture {
	t.Helper()
	// One red texel, then one blue one.
	handle, err := NewDevice().CreateTexture(wlw.NewTexture(2, 1, 3, []byte{255, 0, 0, 0, 0, 255}), sampler)
	require.NoError(t, err)
	return handle.(*Texture)
}

func assertColor(t *testing.T, expected, got wlw.Color) {
	t.Helper()
	assert.InDelta(t, expected.R, got.R, 0.01, "red of %s", got)
	assert.InDelta(t, expected.G, got.G, 0.01, "green of %s", got)
	assert.InDelta(t, expected.B, got.B, 0.01, "blue of %s", got)
	assert.InDelta(t, expected.A, got.A, 0.01, "alpha of %s", got)
}

func TestSampleNearestClamp(t *testing.T) {

	tex := newSampledTexture(t, wlw.SamplerOptions{Wrap: wlw.TextureWrapClamp, MagFilter: wlw.TextureFilterNearest})

	red := wlw.NewColor(1, 0, 0, 1)
	blue := wlw.NewColor(0, 0, 1, 1)

	assertColor(t, red, tex.Sample(0, 0))
	assertColor(t, blue, tex.Sample(1, 0))
	assertColor(t, blue, tex.Sample(3, 0))
	assertColor(t, red, tex.Sample(-2, 0))

}

func TestSampleRepeat(t *testing.T) {

	tex := newSampledTexture(t, wlw.SamplerOptions{Wrap: wlw.TextureWrapRepeat, MagFilter: wlw.TextureFilterNearest})

	// Whole numbers wrap back to the first texel.
	assertColor(t, wlw.NewColor(1, 0, 0, 1), tex.Sample(1, 0))
	assertColor(t, wlw.NewColor(1, 0, 0, 1), tex.Sample(-1, 0))
	assertColor(t, wlw.NewColor(0, 0, 1, 1), tex.Sample(1.9, 0))

}

func TestSampleLinear(t *testing.T) {
	tex := newSampledTexture(t, wlw.SamplerOptions{Wrap: wlw.TextureWrapClamp})
	assertColor(t, wlw.NewColor(0.5, 0, 0.5, 1), tex.Sample(0.5, 0.5))
}

func TestSampleReleased(t *testing.T) {
	tex := newSampledTexture(t, wlw.DefaultSamplerOptions)
	tex.Release()
	assert.True(t, tex.Released())
	assertColor(t, wlw.NewColor(1, 1, 1, 1), tex.Sample(0, 0))
}
