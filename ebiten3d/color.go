package ebiten3d

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wlwengine/wlw"
)

func setVertexColor(vertex *ebiten.Vertex, color wlw.Color) {
	vertex.ColorR = color.R
	vertex.ColorG = color.G
	vertex.ColorB = color.B
	vertex.ColorA = color.A
}
