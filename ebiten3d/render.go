package ebiten3d

import (
	"cmp"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wlwengine/wlw"
)

type transformedVertex struct {
	x, y    float32 // Screen position.
	depth   float32 // Clip space W, the distance along the view direction.
	clipped bool
	color   wlw.Color
	u, v    float32
}

// sortingTriangle is a triangle queued for drawing, ordered by depth.
type sortingTriangle struct {
	depth   float32
	indices [3]uint32
}

type renderer struct {
	target   *ebiten.Image
	viewport image.Rectangle
	state    *wlw.DrawState

	vertices  []transformedVertex
	triangles []sortingTriangle
}

func (r *renderer) render(vertices []wlw.Vertex3D, indices []uint32) {

	var texture *Texture
	if r.state.UseTexture {
		texture, _ = r.state.Texture.(*Texture)
		if texture != nil && texture.Image == nil {
			texture = nil
		}
	}

	r.transform(vertices, texture)

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(max(a, b, c)) >= len(r.vertices) {
			continue
		}
		va, vb, vc := &r.vertices[a], &r.vertices[b], &r.vertices[c]
		if va.clipped || vb.clipped || vc.clipped {
			continue
		}
		r.triangles = append(r.triangles, sortingTriangle{
			depth:   (va.depth + vb.depth + vc.depth) / 3,
			indices: [3]uint32{a, b, c},
		})
	}

	// Painter's order: farthest first. 2D triangles keep their submission order.
	if !r.state.Mode2D {
		slices.SortStableFunc(r.triangles, func(a, b sortingTriangle) int {
			return cmp.Compare(b.depth, a.depth)
		})
	}

	img := whiteImg
	var opt *ebiten.DrawTrianglesOptions
	if texture != nil {
		img = texture.Image
		opt = texture.drawOptions()
	}

	vertexListIndex := 0
	for _, tri := range r.triangles {
		for _, index := range tri.indices {
			tv := &r.vertices[index]
			vert := &vertexList[vertexListIndex]
			vert.DstX = tv.x
			vert.DstY = tv.y
			vert.SrcX = tv.u
			vert.SrcY = tv.v
			setVertexColor(vert, tv.color)
			indexList[vertexListIndex] = uint16(vertexListIndex)
			vertexListIndex++
		}
		if vertexListIndex == len(vertexList) {
			r.target.DrawTriangles(vertexList[:vertexListIndex], indexList[:vertexListIndex], img, opt)
			vertexListIndex = 0
		}
	}

	if vertexListIndex > 0 {
		r.target.DrawTriangles(vertexList[:vertexListIndex], indexList[:vertexListIndex], img, opt)
	}

}

// transform projects every vertex and lights it. Lighting is evaluated per vertex; with a texture bound the lit color
// tints the texture.
func (r *renderer) transform(vertices []wlw.Vertex3D, texture *Texture) {

	r.vertices = make([]transformedVertex, len(vertices))

	state := r.state
	mvp := state.Model.Mult(state.View).Mult(state.Projection)
	normalMatrix := state.Model.NormalMatrix()

	vw := float32(r.viewport.Dx())
	vh := float32(r.viewport.Dy())
	vx := float32(r.viewport.Min.X)
	vy := float32(r.viewport.Min.Y)

	srcW, srcH := float32(1), float32(1)
	if texture != nil {
		srcW = float32(texture.Image.Bounds().Dx())
		srcH = float32(texture.Image.Bounds().Dy())
	}

	for i, v := range vertices {

		tv := &r.vertices[i]

		var clip wlw.Vector4
		if state.Mode2D {
			clip = wlw.Vector4{X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z, W: 1}
		} else {
			clip = mvp.MultVecW(v.Position)
		}

		if clip.W <= 1e-6 || clip.Z < -clip.W {
			tv.clipped = true
			continue
		}

		tv.x = vx + (clip.X/clip.W+1)/2*vw
		tv.y = vy + (1-clip.Y/clip.W)/2*vh
		tv.depth = clip.W

		if state.Mode2D {
			tv.color = v.Color
			tv.u, tv.v = 1.5, 1.5
			continue
		}

		surface := v.Color
		if texture != nil {
			surface = wlw.NewColor(1, 1, 1, 1)
			tv.u = v.TexCoords.X * srcW
			tv.v = v.TexCoords.Y * srcH
		} else {
			tv.u, tv.v = 1.5, 1.5
		}

		world := state.Model.MultVec(v.Position)
		normal := normalMatrix.MultDir(v.Normal)
		tv.color = state.Shade(surface, world, normal)

	}

}
