// Package wlw is a small real-time 3D rendering engine.
//
// A scene is a forest of Nodes held by a Window. Each Node carries a transform (position, scale and rotation in
// degrees), an optional Model and an optional Material. Transform changes propagate down the tree: moving a node moves
// its children by the same offset, while setting scale or rotation sets the same value on every descendant.
//
// An Engine owns windows and draws every one of them each time Iterate is called, through a RenderingDriver. The
// FrameDriver walks a window's nodes breadth first and turns each mesh into a draw call on a Device; the ebiten3d
// package provides a Device backed by Ebitengine and the softraster package a headless software one.
//
//	camera := wlw.NewFPSCamera()
//	window := wlw.NewWindow(wlw.Vector2{X: 1280, Y: 720}, "demo", camera)
//	window.AddNode3D(wlw.NewNode3D("cube", wlw.NewModel("cube", wlw.NewCubeMesh(1))))
//
//	engine := wlw.NewEngine(wlw.NewFrameDriver(softraster.NewDevice()), nil)
//	if err := engine.Start(window); err != nil {
//		panic(err)
//	}
//	engine.Iterate()
package wlw
