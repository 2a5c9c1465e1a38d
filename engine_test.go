package wlw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInput struct {
	attached []*Window
}

func (input *recordingInput) AttachWindow(window *Window) {
	input.attached = append(input.attached, window)
}

// orderDriver wraps a FrameDriver and records which windows it drew.
type orderDriver struct {
	*FrameDriver
	drawn []*Window
}

func (driver *orderDriver) DrawWindow(window *Window) {
	driver.drawn = append(driver.drawn, window)
	driver.FrameDriver.DrawWindow(window)
}

func TestEngineStart(t *testing.T) {

	input := &recordingInput{}
	engine := NewEngine(NewFrameDriver(&fakeDevice{}), input)
	window := newTestWindow(t)

	require.NoError(t, engine.Start(window))

	assert.Same(t, window, engine.Window(1))
	assert.Nil(t, engine.Window(0))
	assert.Equal(t, []*Window{window}, input.attached)

}

func TestEngineStartNilWindow(t *testing.T) {
	engine := NewEngine(NewFrameDriver(&fakeDevice{}), nil)
	assert.ErrorIs(t, engine.Start(nil), ErrNilWindow)
	assert.Empty(t, engine.Windows())
}

func TestEngineStartBackendFailure(t *testing.T) {

	failure := errors.New("no display")
	engine := NewEngine(NewFrameDriver(&fakeDevice{initErr: failure}), nil)

	err := engine.Start(newTestWindow(t))
	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "test")
	assert.Empty(t, engine.Windows())

}

func TestEngineIterateDrawsEveryWindow(t *testing.T) {

	device := &fakeDevice{}
	driver := &orderDriver{FrameDriver: NewFrameDriver(device)}
	engine := NewEngine(driver, nil)

	first := newTestWindow(t)
	second := newTestWindow(t)
	third := newTestWindow(t)

	require.NoError(t, engine.Start(first))
	assert.Equal(t, 2, engine.AttachWindow(second))
	assert.Equal(t, 3, engine.AttachWindow(third))
	assert.Equal(t, -1, engine.AttachWindow(nil))

	engine.Iterate()
	engine.Iterate()

	assert.Equal(t, []*Window{first, second, third, first, second, third}, driver.drawn)
	assert.Equal(t, 6, device.frames)
	for _, window := range engine.Windows() {
		assert.Equal(t, uint64(2), window.FrameCount())
	}

}

func TestEngineAttachBeforeStart(t *testing.T) {

	logs := captureLogs(t)
	engine := NewEngine(NewFrameDriver(&fakeDevice{}), nil)

	// The window is still registered, but the mistake is logged.
	assert.Equal(t, 1, engine.AttachWindow(newTestWindow(t)))
	assert.Equal(t, 1, logs.count())

}

func TestEngineInputSteersCamera(t *testing.T) {

	camera := newRecordingCamera()
	window := NewWindow(Vector2{64, 48}, "steered", camera)
	require.NotNil(t, window)

	source := &stateInput{state: pressed(KeyW)}
	engine := NewEngine(NewFrameDriver(&fakeDevice{}), source)
	require.NoError(t, engine.Start(window))

	engine.Iterate()
	assert.Equal(t, []CameraMovement{CameraForward}, camera.moves)

}

// stateInput applies the same InputState to every attached window, each frame.
type stateInput struct {
	state InputState
}

func (input *stateInput) AttachWindow(window *Window) {
	controller := NewInputController()
	window.OnEvents(func(w *Window) {
		controller.Apply(w.Camera(), input.state)
	})
}
