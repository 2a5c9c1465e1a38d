package wlw

// Key is a keyboard key the engine's camera controls react to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyE
	KeyQ
	KeyLeftControl
)

// InputState is a snapshot of the input devices, taken once per frame by an InputSource.
type InputState struct {
	Pressed map[Key]bool
	// Cursor is the cursor position in window pixels. CursorMoved is false when the position is unknown or unchanged.
	Cursor      Vector2
	CursorMoved bool
}

// IsPressed returns whether key is held down.
func (state InputState) IsPressed(key Key) bool {
	return state.Pressed[key]
}

const (
	defaultInputStep        = 0.016 // One 60 FPS frame.
	defaultInputSpeedFactor = 0.5
)

// InputController turns InputState snapshots into camera movement: W, A, S and D move the camera (or, with left control
// held, turn it), E and Q raise and lower it, and cursor motion looks around.
type InputController struct {
	Step        float32 // Time step, in seconds, that one frame of held keys represents.
	SpeedFactor float32 // Multiplier applied to Step.

	firstCursor bool
	lastCursor  Vector2
}

// NewInputController returns an InputController with a fixed 60 FPS step at half speed.
func NewInputController() *InputController {
	return &InputController{
		Step:        defaultInputStep,
		SpeedFactor: defaultInputSpeedFactor,
		firstCursor: true,
	}
}

// Apply steers camera according to state.
func (controller *InputController) Apply(camera Camera, state InputState) {

	if failIf(camera == nil, "cannot apply input to nil camera") {
		return
	}

	dt := controller.Step * controller.SpeedFactor
	rotate := state.IsPressed(KeyLeftControl)

	bindings := []struct {
		key            Key
		move, rotation CameraMovement
	}{
		{KeyW, CameraForward, CameraUpRotate},
		{KeyS, CameraBackward, CameraDownRotate},
		{KeyA, CameraLeft, CameraLeftRotate},
		{KeyD, CameraRight, CameraRightRotate},
	}

	for _, b := range bindings {
		if !state.IsPressed(b.key) {
			continue
		}
		if rotate {
			camera.ProcessKeyboard(b.rotation, dt)
		} else {
			camera.ProcessKeyboard(b.move, dt)
		}
	}

	if state.IsPressed(KeyE) {
		camera.ProcessKeyboard(CameraUp, dt)
	}
	if state.IsPressed(KeyQ) {
		camera.ProcessKeyboard(CameraDown, dt)
	}

	if state.CursorMoved {
		controller.moveCursor(camera, state.Cursor)
	}

}

func (controller *InputController) moveCursor(camera Camera, cursor Vector2) {
	if controller.firstCursor {
		controller.lastCursor = cursor
		controller.firstCursor = false
	}
	dx := cursor.X - controller.lastCursor.X
	dy := controller.lastCursor.Y - cursor.Y // Screen Y grows downwards.
	controller.lastCursor = cursor
	camera.ProcessMouseMovement(dx, dy)
}
