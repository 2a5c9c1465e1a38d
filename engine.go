package wlw

import (
	"fmt"
	"slices"
)

// InputSource wires device input (keyboard, mouse) to windows. Once attached, a window's camera follows the input
// every time the window processes its events.
type InputSource interface {
	AttachWindow(window *Window)
}

// Engine owns a set of windows and draws all of them each time Iterate is called. The caller owns the frame loop.
type Engine struct {
	driver       RenderingDriver
	input        InputSource
	windows      map[int]*Window
	lastWindowID int
	started      bool
}

// NewEngine returns an Engine drawing with driver. input may be nil for engines that take no input (headless
// rendering, tests).
func NewEngine(driver RenderingDriver, input InputSource) *Engine {
	return &Engine{
		driver:  driver,
		input:   input,
		windows: map[int]*Window{},
	}
}

// Driver returns the Engine's rendering driver.
func (engine *Engine) Driver() RenderingDriver {
	return engine.driver
}

// Start registers window as the Engine's first window, initializes the rendering driver against it and attaches
// input to it. An error means the backend could not be brought up and nothing can be drawn.
func (engine *Engine) Start(window *Window) error {

	if failIf(window == nil, "cannot start engine without a window") {
		return ErrNilWindow
	}

	if err := engine.driver.Initialize(window); err != nil {
		return fmt.Errorf("wlw: start %q: %w", window.Title(), err)
	}

	engine.register(window)
	engine.started = true
	logger.Info("engine started", "window", window.Title(), "size", window.Size().String())
	return nil

}

// AttachWindow registers an additional window, drawn with the same rendering context as the window passed to Start.
// It returns the window's id, or -1 if window is nil.
func (engine *Engine) AttachWindow(window *Window) int {

	if failIf(window == nil, "cannot attach nil window") {
		return -1
	}

	failIf(!engine.started, "window attached before engine start", "window", window.Title())

	engine.driver.AttachWindow(window)
	return engine.register(window)

}

func (engine *Engine) register(window *Window) int {
	engine.lastWindowID++
	id := engine.lastWindowID
	engine.windows[id] = window
	if engine.input != nil {
		engine.input.AttachWindow(window)
	}
	return id
}

// Window returns the window registered under id, or nil.
func (engine *Engine) Window(id int) *Window {
	return engine.windows[id]
}

// Windows returns the registered windows, ordered by id.
func (engine *Engine) Windows() []*Window {
	ids := make([]int, 0, len(engine.windows))
	for id := range engine.windows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*Window, 0, len(ids))
	for _, id := range ids {
		out = append(out, engine.windows[id])
	}
	return out
}

// Iterate draws one frame of every registered window, in the order the windows were registered.
func (engine *Engine) Iterate() {
	for _, window := range engine.Windows() {
		engine.driver.DrawWindow(window)
	}
}
