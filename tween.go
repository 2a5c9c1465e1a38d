package wlw

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenProperty is the node transform a NodeTween animates.
type TweenProperty int

const (
	TweenPosition TweenProperty = iota
	TweenScale
	TweenRotation
)

// NodeTween animates one transform property of a Node from one value to another over time. Each Update goes through
// the node's setters, so the change propagates to the node's children exactly as a manual call would.
//
//	tween := wlw.NewNodeTween(node, wlw.TweenPosition, from, to, 1.5, ease.InOutQuad)
//	// Every frame:
//	tween.Update(dt)
//	if tween.Done { /* finished */ }
type NodeTween[V Vertex] struct {
	Node     *Node[V]
	Property TweenProperty
	Done     bool

	x, y, z *gween.Tween
}

// NewNodeTween returns a tween moving node's property from from to to over duration seconds. A nil easing function
// is linear.
func NewNodeTween[V Vertex](node *Node[V], property TweenProperty, from, to Vector3, duration float32, easing ease.TweenFunc) *NodeTween[V] {

	if easing == nil {
		easing = ease.Linear
	}

	return &NodeTween[V]{
		Node:     node,
		Property: property,
		x:        gween.New(from.X, to.X, duration, easing),
		y:        gween.New(from.Y, to.Y, duration, easing),
		z:        gween.New(from.Z, to.Z, duration, easing),
	}

}

// Update advances the tween by dt seconds and applies the new value to the node. It returns true once the tween has
// reached its end value.
func (tween *NodeTween[V]) Update(dt float32) bool {

	if tween.Done {
		return true
	}

	if failIf(tween.Node == nil, "cannot tween nil node") {
		tween.Done = true
		return true
	}

	x, doneX := tween.x.Update(dt)
	y, doneY := tween.y.Update(dt)
	z, doneZ := tween.z.Update(dt)
	value := Vector3{x, y, z}

	switch tween.Property {
	case TweenPosition:
		tween.Node.SetPosition(value)
	case TweenScale:
		tween.Node.SetScale(value)
	case TweenRotation:
		tween.Node.SetRotation(value)
	}

	tween.Done = doneX && doneY && doneZ
	return tween.Done

}

// Reset rewinds the tween to its start.
func (tween *NodeTween[V]) Reset() {
	tween.x.Reset()
	tween.y.Reset()
	tween.z.Reset()
	tween.Done = false
}
