package ebiten3d

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wlwengine/wlw"
)

var keyMap = map[wlw.Key]ebiten.Key{
	wlw.KeyW:           ebiten.KeyW,
	wlw.KeyA:           ebiten.KeyA,
	wlw.KeyS:           ebiten.KeyS,
	wlw.KeyD:           ebiten.KeyD,
	wlw.KeyE:           ebiten.KeyE,
	wlw.KeyQ:           ebiten.KeyQ,
	wlw.KeyLeftControl: ebiten.KeyControlLeft,
}

// Input is a wlw.InputSource reading Ebitengine's keyboard and cursor state. Every attached window gets its own
// wlw.InputController, which steers the window's camera each frame.
type Input struct {
	// NewController creates the controller for a newly attached window. Nil uses wlw.NewInputController.
	NewController func() *wlw.InputController

	hasCursor  bool
	lastCursor wlw.Vector2
}

// NewInput returns an Input with default controllers.
func NewInput() *Input {
	return &Input{}
}

func (input *Input) AttachWindow(window *wlw.Window) {

	if window == nil {
		return
	}

	newController := input.NewController
	if newController == nil {
		newController = wlw.NewInputController
	}
	controller := newController()

	window.OnEvents(func(w *wlw.Window) {
		controller.Apply(w.Camera(), input.Poll())
	})

}

// Poll returns the current keyboard and cursor state.
func (input *Input) Poll() wlw.InputState {

	state := wlw.InputState{Pressed: map[wlw.Key]bool{}}

	for key, ebitenKey := range keyMap {
		if ebiten.IsKeyPressed(ebitenKey) {
			state.Pressed[key] = true
		}
	}

	mx, my := ebiten.CursorPosition()
	cursor := wlw.Vector2{X: float32(mx), Y: float32(my)}
	state.Cursor = cursor
	state.CursorMoved = !input.hasCursor || cursor != input.lastCursor
	input.hasCursor = true
	input.lastCursor = cursor

	return state

}
