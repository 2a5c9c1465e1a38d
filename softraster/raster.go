package softraster

import (
	"image"

	"github.com/wlwengine/wlw"
	"github.com/wlwengine/wlw/math32"
)

type projectedVertex struct {
	x, y, z float32 // Screen space position and NDC depth.
	invW    float32
	clipped bool // Behind the near plane.

	world  wlw.Vector3
	normal wlw.Vector3
	color  wlw.Color
	uv     wlw.Vector2
}

type rasterizer struct {
	fb       *FrameBuffer
	viewport image.Rectangle
	state    *wlw.DrawState
	texture  *Texture
	vertices []projectedVertex
}

func newRasterizer(fb *FrameBuffer, viewport image.Rectangle, state *wlw.DrawState) *rasterizer {
	r := &rasterizer{
		fb:       fb,
		viewport: viewport.Intersect(image.Rect(0, 0, fb.Width, fb.Height)),
		state:    state,
	}
	if state.UseTexture {
		r.texture, _ = state.Texture.(*Texture)
	}
	return r
}

// transform runs every vertex through the model, view and projection matrices once, ahead of rasterizing.
func (r *rasterizer) transform(vertices []wlw.Vertex3D) {

	r.vertices = make([]projectedVertex, len(vertices))

	mvp := r.state.Model.Mult(r.state.View).Mult(r.state.Projection)
	normalMatrix := r.state.Model.NormalMatrix()

	vw := float32(r.viewport.Dx())
	vh := float32(r.viewport.Dy())
	vx := float32(r.viewport.Min.X)
	vy := float32(r.viewport.Min.Y)

	for i, v := range vertices {

		var clip wlw.Vector4
		if r.state.Mode2D {
			clip = wlw.Vector4{X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z, W: 1}
		} else {
			clip = mvp.MultVecW(v.Position)
		}

		p := &r.vertices[i]
		p.color = v.Color
		p.uv = v.TexCoords
		p.world = r.state.Model.MultVec(v.Position)
		p.normal = normalMatrix.MultDir(v.Normal)

		if clip.W <= 1e-6 || clip.Z < -clip.W {
			p.clipped = true
			continue
		}

		p.invW = 1 / clip.W
		ndcX := clip.X * p.invW
		ndcY := clip.Y * p.invW
		p.z = clip.Z * p.invW
		p.x = vx + (ndcX+1)/2*vw
		p.y = vy + (1-ndcY)/2*vh

	}

}

// triangle rasterizes one triangle and reports whether it was drawn at all. Triangles crossing the near plane are
// dropped whole.
func (r *rasterizer) triangle(ia, ib, ic int) bool {

	a, b, c := &r.vertices[ia], &r.vertices[ib], &r.vertices[ic]
	if a.clipped || b.clipped || c.clipped {
		return false
	}

	det := (b.y-c.y)*(a.x-c.x) + (c.x-b.x)*(a.y-c.y)
	if math32.Abs(det) < 1e-8 {
		return false
	}
	invDet := 1 / det

	minX := max(int(math32.Floor(min(a.x, b.x, c.x))), r.viewport.Min.X)
	maxX := min(int(math32.Ceil(max(a.x, b.x, c.x))), r.viewport.Max.X-1)
	minY := max(int(math32.Floor(min(a.y, b.y, c.y))), r.viewport.Min.Y)
	maxY := min(int(math32.Ceil(max(a.y, b.y, c.y))), r.viewport.Max.Y-1)
	if minX > maxX || minY > maxY {
		return false
	}

	dyBC := b.y - c.y
	dxCB := c.x - b.x
	dyCA := c.y - a.y
	dxAC := a.x - c.x

	for sy := minY; sy <= maxY; sy++ {
		py := float32(sy) + 0.5 - c.y
		for sx := minX; sx <= maxX; sx++ {
			px := float32(sx) + 0.5 - c.x

			w0 := (dyBC*px + dxCB*py) * invDet
			w1 := (dyCA*px + dxAC*py) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*c.z
			i := sy*r.fb.Width + sx
			if z >= r.fb.Depth[i] {
				continue
			}

			// Perspective-correct weights for the varyings.
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*c.invW
			sum := p0 + p1 + p2
			p0, p1, p2 = p0/sum, p1/sum, p2/sum

			color := r.shade(a, b, c, p0, p1, p2)
			if color.A <= 0 {
				continue
			}

			r.fb.Depth[i] = z
			r.fb.set(sx, sy, color)
		}
	}

	return true

}

func (r *rasterizer) shade(a, b, c *projectedVertex, p0, p1, p2 float32) wlw.Color {

	surface := wlw.Color{
		R: a.color.R*p0 + b.color.R*p1 + c.color.R*p2,
		G: a.color.G*p0 + b.color.G*p1 + c.color.G*p2,
		B: a.color.B*p0 + b.color.B*p1 + c.color.B*p2,
		A: a.color.A*p0 + b.color.A*p1 + c.color.A*p2,
	}

	if r.state.Mode2D {
		return surface
	}

	if r.texture != nil {
		u := a.uv.X*p0 + b.uv.X*p1 + c.uv.X*p2
		v := a.uv.Y*p0 + b.uv.Y*p1 + c.uv.Y*p2
		surface = r.texture.Sample(u, v)
	}

	world := a.world.Scale(p0).Add(b.world.Scale(p1)).Add(c.world.Scale(p2))
	normal := a.normal.Scale(p0).Add(b.normal.Scale(p1)).Add(c.normal.Scale(p2))

	return r.state.Shade(surface, world, normal)

}
