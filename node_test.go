package wlw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildFollowsParentMove(t *testing.T) {

	a := NewNode3D("A", nil)
	b := NewNode3D("B", nil)

	b.SetPosition(Vector3{1, 0, 0})
	a.AddNode(b)
	a.SetPosition(Vector3{5, 0, 0})

	assert.Equal(t, Vector3{5, 0, 0}, a.Position())
	assert.Equal(t, Vector3{6, 0, 0}, b.Position())

}

func TestPositionDeltaReachesEveryDescendant(t *testing.T) {

	root := NewNode3D("root", nil)
	child := NewNode3D("child", nil)
	grandchild := NewNode3D("grandchild", nil)

	child.SetPosition(Vector3{0, 2, 0})
	grandchild.SetPosition(Vector3{0, 0, 3})
	root.AddNode(child)
	child.AddNode(grandchild)

	root.SetPosition(Vector3{1, 1, 1})
	root.SetPosition(Vector3{2, 1, -1})

	assert.Equal(t, Vector3{2, 3, -1}, child.Position())
	assert.Equal(t, Vector3{2, 1, 2}, grandchild.Position())

}

func TestAddNodeKeepsChildTransform(t *testing.T) {

	parent := NewNode3D("parent", nil)
	parent.SetPosition(Vector3{10, 0, 0})

	child := NewNode3D("child", nil)
	child.SetPosition(Vector3{1, 2, 3})
	parent.AddNode(child)

	assert.Equal(t, Vector3{1, 2, 3}, child.Position())
	assert.Same(t, parent, child.Parent())

}

func TestScaleAndRotationBroadcast(t *testing.T) {

	root := NewNode3D("root", nil)
	child := NewNode3D("child", nil)
	grandchild := NewNode3D("grandchild", nil)
	root.AddNode(child)
	child.AddNode(grandchild)

	child.SetScale(Vector3{3, 3, 3})
	root.SetScale(Vector3{2, 1, 1})

	// The root's scale replaces, not multiplies, the child's.
	for _, n := range []*Node3D{root, child, grandchild} {
		assert.Equal(t, Vector3{2, 1, 1}, n.Scale(), n.Name())
	}

	root.SetRotation(Vector3{0, 0, 45})
	for _, n := range []*Node3D{root, child, grandchild} {
		assert.Equal(t, Vector3{0, 0, 45}, n.Rotation(), n.Name())
	}

	// Positions are left alone by scale and rotation.
	assert.Equal(t, Vector3{}, grandchild.Position())

}

func TestModelMatrixTracksOwnTransformOnly(t *testing.T) {

	parent := NewNode3D("parent", nil)
	child := NewNode3D("child", nil)
	parent.AddNode(child)

	parent.SetPosition(Vector3{4, 0, 0})
	child.SetScale(Vector3{2, 2, 2})

	expected := NewModelMatrix(Vector3{4, 0, 0}, Vector3{2, 2, 2}, Vector3{})
	assert.True(t, child.ModelMatrix().Equals(expected))
	assert.True(t, parent.ModelMatrix().Equals(NewMatrix4Translate(4, 0, 0)))

}

func TestChildIDs(t *testing.T) {

	parent := NewNode3D("parent", nil)

	first := NewNode3D("first", nil)
	second := NewNode3D("second", nil)

	assert.Equal(t, 0, parent.AddNode(first))
	assert.Equal(t, 1, parent.AddNode(second))
	assert.Equal(t, -1, parent.AddNode(nil))
	assert.Equal(t, -1, parent.AddNode(parent))

	assert.Same(t, second, parent.Child(1))
	assert.Nil(t, parent.Child(7))

	children := parent.Children()
	require.Len(t, children, 2)
	assert.Same(t, first, children[0])
	assert.Same(t, second, children[1])

}

func TestAddNodeRejectsParentedChild(t *testing.T) {

	logs := captureLogs(t)

	first := NewNode3D("first", nil)
	second := NewNode3D("second", nil)
	child := NewNode3D("child", nil)

	require.Equal(t, 0, first.AddNode(child))
	assert.Equal(t, -1, second.AddNode(child))
	assert.Same(t, first, child.Parent())
	assert.Empty(t, second.Children())

	// Re-adding to the same parent would visit it twice too.
	assert.Equal(t, -1, first.AddNode(child))
	assert.Len(t, first.Children(), 1)

	grandchild := NewNode3D("grandchild", nil)
	child.AddNode(grandchild)
	root := NewNode3D("root", nil)
	root.AddNode(first)
	assert.Equal(t, -1, grandchild.AddNode(root))
	assert.Empty(t, grandchild.Children())

	assert.Equal(t, 3, logs.count())

}

func TestChildrenRecursive(t *testing.T) {

	root := NewNode3D("root", nil)
	a := NewNode3D("a", nil)
	b := NewNode3D("b", nil)
	c := NewNode3D("c", nil)
	root.AddNode(a)
	root.AddNode(b)
	a.AddNode(c)

	assert.Equal(t, []*Node3D{a, c, b}, root.ChildrenRecursive())

}
