package wlw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	window := NewWindow(Vector2{64, 48}, "test", NewFPSCamera())
	require.NotNil(t, window)
	return window
}

func TestNewWindowRequiresCamera(t *testing.T) {
	logs := captureLogs(t)
	assert.Nil(t, NewWindow(Vector2{64, 48}, "no camera", nil))
	assert.Equal(t, 1, logs.count())
}

func TestWindowNodeIDs(t *testing.T) {

	window := newTestWindow(t)

	a := NewNode3D("a", nil)
	b := NewNode3D("b", nil)
	tri := NewNode2D("tri", nil)

	assert.Equal(t, 0, window.AddNode3D(a))
	assert.Equal(t, 1, window.AddNode3D(b))
	assert.Equal(t, 0, window.AddNode2D(tri))

	assert.Same(t, b, window.Node3D(1))
	assert.Same(t, tri, window.Node2D(0))
	assert.Equal(t, []*Node3D{a, b}, window.Nodes3D())

}

func TestTraverseVisitsEveryNodeOnce(t *testing.T) {

	window := newTestWindow(t)

	// Every top-level node and every child has the id 0 or 1 in its own map.
	roots := []*Node3D{NewNode3D("r0", nil), NewNode3D("r1", nil)}
	for _, root := range roots {
		window.AddNode3D(root)
		for _, name := range []string{"c0", "c1"} {
			child := NewNode3D(root.Name()+"/"+name, nil)
			root.AddNode(child)
			child.AddNode(NewNode3D(child.Name()+"/g0", nil))
		}
	}

	visits := map[*Node3D]int{}
	order := []string{}
	window.Traverse3D(func(node *Node3D) {
		visits[node]++
		order = append(order, node.Name())
	})

	assert.Len(t, visits, 10)
	for node, count := range visits {
		assert.Equal(t, 1, count, node.Name())
	}

	assert.Equal(t, []string{
		"r0", "r1",
		"r0/c0", "r0/c1", "r1/c0", "r1/c1",
		"r0/c0/g0", "r0/c1/g0", "r1/c0/g0", "r1/c1/g0",
	}, order)

}

func TestTraverseVisitsParentsFirst(t *testing.T) {

	window := newTestWindow(t)

	root := NewNode3D("root", nil)
	mid := NewNode3D("mid", nil)
	leaf := NewNode3D("leaf", nil)
	mid.AddNode(leaf)
	root.AddNode(mid)
	window.AddNode3D(root)

	seen := map[*Node3D]bool{}
	window.Traverse3D(func(node *Node3D) {
		if parent := node.Parent(); parent != nil {
			assert.True(t, seen[parent], "%s visited before its parent", node.Name())
		}
		seen[node] = true
	})

	assert.Len(t, seen, 3)

}

func TestTraverse2D(t *testing.T) {

	window := newTestWindow(t)

	tri := NewNode2D("tri", nil)
	tri.AddNode(NewNode2D("child", nil))
	window.AddNode2D(tri)

	count := 0
	window.Traverse2D(func(node *Node2D) { count++ })
	assert.Equal(t, 2, count)

}

func TestProcessEventsRunsHandlers(t *testing.T) {

	window := newTestWindow(t)

	calls := 0
	window.OnEvents(func(w *Window) {
		assert.Same(t, window, w)
		calls++
	})

	window.ProcessEvents()
	window.ProcessEvents()

	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(2), window.FrameCount())

}

func TestUpdatedCameraFollowsWindowSize(t *testing.T) {

	camera := NewFPSCamera()
	window := NewWindow(Vector2{200, 100}, "wide", camera)
	require.NotNil(t, window)

	projection := window.UpdatedCamera().ProjectionMatrix()
	// x is squeezed by the 2:1 aspect ratio.
	assert.InDelta(t, projection[1][1]/2, projection[0][0], 0.0001)

	window.SetSize(Vector2{100, 100})
	projection = window.UpdatedCamera().ProjectionMatrix()
	assert.InDelta(t, projection[1][1], projection[0][0], 0.0001)

}
