// Package ebiten3d draws wlw windows with Ebitengine. Each window renders into its own offscreen *ebiten.Image,
// which a game's Draw method composites onto the screen. Vertices are transformed and lit on the CPU, and every mesh
// is drawn as one or more Image.DrawTriangles batches with its triangles sorted back to front.
package ebiten3d

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxTriangleCount is the number of triangles that fit into one DrawTriangles call with 16-bit indices.
const MaxTriangleCount = 21845

var defaultImg = ebiten.NewImage(3, 3)

// whiteImg is the center pixel of defaultImg, so linear filtering never samples outside of it.
var whiteImg = defaultImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

var vertexList = make([]ebiten.Vertex, MaxTriangleCount*3)
var indexList = make([]uint16, MaxTriangleCount*3)

func init() {
	defaultImg.Fill(color.White)
}
