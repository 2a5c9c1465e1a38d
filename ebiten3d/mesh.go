package ebiten3d

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wlwengine/wlw"
)

// vertexBuffer keeps a mesh's vertices on the CPU; Ebitengine takes vertex data per draw call.
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

// Texture is a material texture uploaded to an *ebiten.Image.
type Texture struct {
	Image   *ebiten.Image
	sampler wlw.SamplerOptions
}

func (tex *Texture) Release() {
	if tex.Image != nil {
		tex.Image.Deallocate()
		tex.Image = nil
	}
}

func (tex *Texture) drawOptions() *ebiten.DrawTrianglesOptions {
	opt := &ebiten.DrawTrianglesOptions{
		Filter:  ebiten.FilterLinear,
		Address: ebiten.AddressRepeat,
	}
	if tex.sampler.MagFilter == wlw.TextureFilterNearest {
		opt.Filter = ebiten.FilterNearest
	}
	if tex.sampler.Wrap == wlw.TextureWrapClamp {
		opt.Address = ebiten.AddressClampToZero
	}
	return opt
}
