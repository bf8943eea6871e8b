package element

import "github.com/panelgrid/panelgrid/pkg/scene"

// Placeable is the capability contract every grid-manageable element
// satisfies: reparent, read and write the local transform, and release owned
// resources. Implementations delegate to an internal anchor node; callers
// must not reuse an element after Destroy.
type Placeable interface {
	// Parent returns the current attachment point, or nil at the scene root.
	Parent() *scene.Node

	// SetParent reattaches the element. Attachment only: no repositioning
	// side effects.
	SetParent(parent *scene.Node)

	// Transform returns the element's local transform.
	Transform() scene.Transform

	// SetTransform replaces the element's local transform. The grid mutates
	// only the position component.
	SetTransform(t scene.Transform)

	// Destroy releases every owned node. Idempotent.
	Destroy()
}

// NodeElement adapts a bare scene node to the Placeable contract.
type NodeElement struct {
	node *scene.Node
}

// FromNode wraps a scene node so it can occupy a grid slot directly.
func FromNode(n *scene.Node) *NodeElement {
	return &NodeElement{node: n}
}

// Node returns the wrapped scene node, or nil after Destroy.
func (e *NodeElement) Node() *scene.Node { return e.node }

// Parent implements Placeable.
func (e *NodeElement) Parent() *scene.Node {
	if e.node == nil {
		return nil
	}
	return e.node.Parent()
}

// SetParent implements Placeable.
func (e *NodeElement) SetParent(parent *scene.Node) {
	if e.node != nil {
		e.node.SetParent(parent)
	}
}

// Transform implements Placeable.
func (e *NodeElement) Transform() scene.Transform {
	if e.node == nil {
		return scene.NewTransform()
	}
	return e.node.Transform()
}

// SetTransform implements Placeable.
func (e *NodeElement) SetTransform(t scene.Transform) {
	if e.node != nil {
		e.node.SetTransform(t)
	}
}

// Destroy implements Placeable.
func (e *NodeElement) Destroy() {
	if e.node == nil {
		return
	}
	e.node.Destroy()
	e.node = nil
}
