package wlw

import (
	"slices"
)

// Node is a positioned item in the scene graph. It optionally carries a Model and a Material, and owns child nodes.
//
// A Node's model matrix only ever reflects its own position, scale and rotation; it is never multiplied by a
// parent's matrix. Instead, edits are pushed down the tree as they happen: moving a Node moves every descendant by
// the same offset, while setting a scale or rotation sets that exact value on every descendant.
type Node[V Vertex] struct {
	name     string
	visible  bool
	position Vector3
	scale    Vector3
	rotation Vector3 // Euler angles in degrees

	modelMatrix Matrix4

	model    *Model[V]
	material *Material

	parent      *Node[V]
	children    map[int]*Node[V]
	nextChildID int
}

type (
	Node2D = Node[Vertex2D]
	Node3D = Node[Vertex3D]
)

// NewNode returns a new Node at the origin with a scale of 1 and no rotation.
func NewNode[V Vertex](name string) *Node[V] {
	return &Node[V]{
		name:        name,
		visible:     true,
		scale:       NewVector3One(),
		modelMatrix: NewMatrix4(),
		children:    map[int]*Node[V]{},
	}
}

// NewNode3D returns a new 3D Node carrying the Model given (which may be nil).
func NewNode3D(name string, model *Model3D) *Node3D {
	node := NewNode[Vertex3D](name)
	node.model = model
	return node
}

// NewNode2D returns a new 2D Node carrying the Model given (which may be nil).
func NewNode2D(name string, model *Model2D) *Node2D {
	node := NewNode[Vertex2D](name)
	node.model = model
	return node
}

func (node *Node[V]) Name() string {
	return node.name
}

func (node *Node[V]) SetName(name string) {
	node.name = name
}

// Visible returns whether the Node's model is drawn. Invisible nodes are still traversed, so their children can be visible.
func (node *Node[V]) Visible() bool {
	return node.visible
}

func (node *Node[V]) SetVisible(visible bool) {
	node.visible = visible
}

// Model returns the Model the Node draws, or nil.
func (node *Node[V]) Model() *Model[V] {
	return node.model
}

func (node *Node[V]) SetModel(model *Model[V]) {
	node.model = model
}

// Material returns the Node's Material, or nil. When set, it replaces the material of every mesh the Node draws.
func (node *Node[V]) Material() *Material {
	return node.material
}

func (node *Node[V]) SetMaterial(material *Material) {
	node.material = material
}

// Position returns the Node's position.
func (node *Node[V]) Position() Vector3 {
	return node.position
}

// SetPosition moves the Node to the position given, and moves every descendant by the same offset.
func (node *Node[V]) SetPosition(position Vector3) {
	delta := position.Sub(node.position)
	node.position = position
	node.updateModelMatrix()
	for _, id := range node.childIDs() {
		node.children[id].Translate(delta)
	}
}

// Translate moves the Node and every descendant by delta.
func (node *Node[V]) Translate(delta Vector3) {
	node.position = node.position.Add(delta)
	node.updateModelMatrix()
	for _, id := range node.childIDs() {
		node.children[id].Translate(delta)
	}
}

// Scale returns the Node's scale.
func (node *Node[V]) Scale() Vector3 {
	return node.scale
}

// SetScale sets the scale of the Node and every descendant to the same value.
func (node *Node[V]) SetScale(scale Vector3) {
	node.scale = scale
	node.updateModelMatrix()
	for _, id := range node.childIDs() {
		node.children[id].SetScale(scale)
	}
}

// Rotation returns the Node's rotation as euler angles, in degrees.
func (node *Node[V]) Rotation() Vector3 {
	return node.rotation
}

// SetRotation sets the rotation (euler angles in degrees) of the Node and every descendant to the same value.
func (node *Node[V]) SetRotation(rotationDegrees Vector3) {
	node.rotation = rotationDegrees
	node.updateModelMatrix()
	for _, id := range node.childIDs() {
		node.children[id].SetRotation(rotationDegrees)
	}
}

// ModelMatrix returns the Node's model matrix, built from its own position, rotation and scale.
func (node *Node[V]) ModelMatrix() Matrix4 {
	return node.modelMatrix
}

func (node *Node[V]) updateModelMatrix() {
	node.modelMatrix = NewModelMatrix(node.position, node.scale, node.rotation)
}

// AddNode adds child under the Node and returns the id it was stored with. Ids count up from 0 and are never reused.
// The child keeps its current transform. A child that already has a parent, or that is an ancestor of the Node,
// is rejected with -1.
func (node *Node[V]) AddNode(child *Node[V]) int {

	if failIf(child == nil, "cannot add nil node", "parent", node.name) {
		return -1
	}

	if failIf(child == node, "cannot add node to itself", "node", node.name) {
		return -1
	}

	if child.parent != nil {
		failIf(true, "node already has a parent", "node", child.name, "parent", child.parent.name)
		return -1
	}

	for ancestor := node.parent; ancestor != nil; ancestor = ancestor.parent {
		if failIf(ancestor == child, "cannot add an ancestor as a child", "node", child.name, "parent", node.name) {
			return -1
		}
	}

	id := node.nextChildID
	node.nextChildID++
	node.children[id] = child
	child.parent = node
	return id

}

// Parent returns the Node this Node was added to, or nil for top-level nodes.
func (node *Node[V]) Parent() *Node[V] {
	return node.parent
}

// Child returns the child stored under id, or nil.
func (node *Node[V]) Child(id int) *Node[V] {
	return node.children[id]
}

// Children returns the Node's direct children, ordered by id.
func (node *Node[V]) Children() []*Node[V] {
	out := make([]*Node[V], 0, len(node.children))
	for _, id := range node.childIDs() {
		out = append(out, node.children[id])
	}
	return out
}

// ChildrenRecursive returns every descendant of the Node, depth first.
func (node *Node[V]) ChildrenRecursive() []*Node[V] {
	out := []*Node[V]{}
	for _, child := range node.Children() {
		out = append(out, child)
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

func (node *Node[V]) childIDs() []int {
	ids := make([]int, 0, len(node.children))
	for id := range node.children {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (node *Node[V]) String() string {
	return "Node{" + node.name + " " + node.position.String() + "}"
}
