package wlw

import "slices"

// Window is a drawable surface: a forest of top-level 2D nodes, a forest of top-level 3D nodes, and the Camera the 3D
// nodes are viewed through. How a Window is presented (an OS window, an offscreen image) is up to the rendering driver.
type Window struct {
	title      string
	size       Vector2
	ClearColor Color

	camera Camera

	nodes2D    map[int]*Node2D
	next2DID   int
	nodes3D    map[int]*Node3D
	next3DID   int
	onEvents   []func(window *Window)
	frameCount uint64
}

// NewWindow creates a Window of the given size, viewed through camera. It returns nil (after logging the problem)
// if camera is nil.
func NewWindow(size Vector2, title string, camera Camera) *Window {

	if failIf(camera == nil, "cannot create window without a camera", "title", title) {
		return nil
	}

	return &Window{
		title:      title,
		size:       size,
		ClearColor: NewColor(0.1, 0.1, 0.15, 1),
		camera:     camera,
		nodes2D:    map[int]*Node2D{},
		nodes3D:    map[int]*Node3D{},
	}

}

func (window *Window) Title() string {
	return window.title
}

// Size returns the Window's size in pixels.
func (window *Window) Size() Vector2 {
	return window.size
}

func (window *Window) SetSize(size Vector2) {
	window.size = size
}

// Camera returns the Window's camera.
func (window *Window) Camera() Camera {
	return window.camera
}

// SetCamera replaces the Window's camera. A nil camera is rejected.
func (window *Window) SetCamera(camera Camera) {
	if failIf(camera == nil, "cannot set nil camera", "window", window.title) {
		return
	}
	window.camera = camera
}

// UpdatedCamera resizes the Window's camera to the Window's current size and returns it.
func (window *Window) UpdatedCamera() Camera {
	window.camera.UpdateSize(window.size)
	return window.camera
}

// AddNode3D adds a top-level 3D node to the Window and returns its id. Ids count up from 0 and are never reused.
func (window *Window) AddNode3D(node *Node3D) int {
	if failIf(node == nil, "cannot add nil 3D node", "window", window.title) {
		return -1
	}
	id := window.next3DID
	window.next3DID++
	window.nodes3D[id] = node
	return id
}

// AddNode2D adds a top-level 2D node to the Window and returns its id. Ids count up from 0 and are never reused.
func (window *Window) AddNode2D(node *Node2D) int {
	if failIf(node == nil, "cannot add nil 2D node", "window", window.title) {
		return -1
	}
	id := window.next2DID
	window.next2DID++
	window.nodes2D[id] = node
	return id
}

// Node3D returns the top-level 3D node stored under id, or nil.
func (window *Window) Node3D(id int) *Node3D {
	return window.nodes3D[id]
}

// Node2D returns the top-level 2D node stored under id, or nil.
func (window *Window) Node2D(id int) *Node2D {
	return window.nodes2D[id]
}

// Nodes3D returns the top-level 3D nodes, ordered by id.
func (window *Window) Nodes3D() []*Node3D {
	return sortedNodes(window.nodes3D)
}

// Nodes2D returns the top-level 2D nodes, ordered by id.
func (window *Window) Nodes2D() []*Node2D {
	return sortedNodes(window.nodes2D)
}

// Traverse3D calls visit for every 3D node in the Window, top-level nodes and all of their descendants, breadth first.
// Every node is visited exactly once, and always before its own descendants.
func (window *Window) Traverse3D(visit func(node *Node3D)) {
	traverse(sortedNodes(window.nodes3D), visit)
}

// Traverse2D calls visit for every 2D node in the Window, breadth first.
func (window *Window) Traverse2D(visit func(node *Node2D)) {
	traverse(sortedNodes(window.nodes2D), visit)
}

func traverse[V Vertex](frontier []*Node[V], visit func(node *Node[V])) {
	for len(frontier) > 0 {
		next := []*Node[V]{}
		for _, node := range frontier {
			visit(node)
			next = append(next, node.Children()...)
		}
		frontier = next
	}
}

func sortedNodes[V Vertex](nodes map[int]*Node[V]) []*Node[V] {
	ids := make([]int, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*Node[V], 0, len(ids))
	for _, id := range ids {
		out = append(out, nodes[id])
	}
	return out
}

// OnEvents registers a function that is called every time the Window processes its events, once per drawn frame.
// Input sources use this to poll devices and steer the Window's camera.
func (window *Window) OnEvents(handler func(window *Window)) {
	window.onEvents = append(window.onEvents, handler)
}

// ProcessEvents runs the Window's event handlers.
func (window *Window) ProcessEvents() {
	window.frameCount++
	for _, handler := range window.onEvents {
		handler(window)
	}
}

// FrameCount returns how many times the Window has processed events, which is the number of frames drawn into it.
func (window *Window) FrameCount() uint64 {
	return window.frameCount
}
