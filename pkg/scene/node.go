package scene

import "github.com/google/uuid"

// NodeKind distinguishes the visual primitives a backend can create.
type NodeKind int

const (
	// KindEmpty is a non-visual anchor node.
	KindEmpty NodeKind = iota
	// KindBox is a box-shaped visual node.
	KindBox
	// KindText is a text-bearing node.
	KindText
)

// nodeState tracks a handle through its lifecycle. Creation starts pending,
// the backend moves it to ready, and destruction is terminal from either
// state.
type nodeState int

const (
	statePending nodeState = iota
	stateReady
	stateDestroyed
)

// Node is a handle to a backend scene node. The handle owns the authoritative
// local state; mutations are pushed to the creating backend through its
// Observer methods.
//
// The zero value is not usable. Backends construct handles with NewEmptyNode,
// NewBoxNode, or NewTextNode.
type Node struct {
	id       uuid.UUID
	name     string
	kind     NodeKind
	backend  Backend
	parent   *Node
	children []*Node

	transform Transform
	box       BoxSpec
	text      TextSpec
	material  *Material
	behavior  *Behavior

	state   nodeState
	pending []func(*Node)
}

// NewEmptyNode constructs a pending anchor-node handle bound to b.
func NewEmptyNode(b Backend, name string) *Node {
	return newNode(b, KindEmpty, name)
}

// NewBoxNode constructs a pending box-node handle bound to b.
func NewBoxNode(b Backend, name string, spec BoxSpec) *Node {
	n := newNode(b, KindBox, name)
	n.box = spec
	if spec.Material != nil {
		m := *spec.Material
		n.material = &m
	}
	return n
}

// NewTextNode constructs a pending text-node handle bound to b.
func NewTextNode(b Backend, name string, spec TextSpec) *Node {
	n := newNode(b, KindText, name)
	n.text = spec
	return n
}

func newNode(b Backend, kind NodeKind, name string) *Node {
	return &Node{
		id:        uuid.New(),
		name:      name,
		kind:      kind,
		backend:   b,
		transform: NewTransform(),
	}
}

// ID returns the node's unique identifier.
func (n *Node) ID() uuid.UUID { return n.id }

// Name returns the debug name given at creation.
func (n *Node) Name() string { return n.name }

// Kind returns the node's primitive kind.
func (n *Node) Kind() NodeKind { return n.kind }

// Alive reports whether the node has not been destroyed.
func (n *Node) Alive() bool { return n.state != stateDestroyed }

// Ready reports whether the backend has confirmed the creation request.
func (n *Node) Ready() bool { return n.state == stateReady }

// Parent returns the current parent, or nil at the scene root.
func (n *Node) Parent() *Node { return n.parent }

// SetParent reattaches the node under parent (nil detaches to the scene
// root). Attachment only: the local transform is left untouched.
func (n *Node) SetParent(parent *Node) {
	if !n.Alive() || n.parent == parent {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	n.backend.NodeReparented(n, parent)
}

// Children returns the node's direct children in attachment order.
func (n *Node) Children() []*Node { return n.children }

// Transform returns the local transform.
func (n *Node) Transform() Transform { return n.transform }

// SetTransform replaces the local transform.
func (n *Node) SetTransform(t Transform) {
	if !n.Alive() {
		return
	}
	n.transform = t
	n.backend.NodeTransformed(n)
}

// WorldPosition resolves the node's position in scene space by composing
// parent transforms root-down.
func (n *Node) WorldPosition() Vec3 {
	if n.parent == nil {
		return n.transform.Position
	}
	p := n.parent
	local := p.transform.Rotation.Rotate(n.transform.Position.Mul(p.transform.Scale))
	return p.WorldPosition().Add(local)
}

// Box returns the creation spec of a box node.
func (n *Node) Box() BoxSpec { return n.box }

// Interactive reports whether the node was created with a collider.
func (n *Node) Interactive() bool { return n.kind == KindBox && n.box.Collider }

// Text returns the current contents of a text node.
func (n *Node) Text() string { return n.text.Contents }

// TextHeight returns the current display height of a text node.
func (n *Node) TextHeight() float64 { return n.text.Height }

// SetText replaces a text node's contents.
func (n *Node) SetText(contents string) {
	if !n.Alive() {
		return
	}
	n.text.Contents = contents
	n.backend.NodeTextChanged(n)
}

// SetTextHeight replaces a text node's display height.
func (n *Node) SetTextHeight(h float64) {
	if !n.Alive() {
		return
	}
	n.text.Height = h
	n.backend.NodeTextChanged(n)
}

// Material returns the currently applied material, or nil.
func (n *Node) Material() *Material { return n.material }

// SetMaterial applies a material to the node.
func (n *Node) SetMaterial(m Material) {
	if !n.Alive() {
		return
	}
	n.material = &m
	n.backend.NodeMaterialChanged(n)
}

// OnReady queues fn to run once the backend confirms creation. If the node is
// already confirmed, fn runs immediately. If the node is destroyed before
// confirmation arrives, fn is discarded: a queued continuation never touches
// a dead node.
func (n *Node) OnReady(fn func(*Node)) {
	switch n.state {
	case stateReady:
		fn(n)
	case statePending:
		n.pending = append(n.pending, fn)
	}
}

// Confirm marks the creation request complete and runs queued continuations.
// Backends call this once; confirming a destroyed node is a no-op.
func (n *Node) Confirm() {
	if n.state != statePending {
		return
	}
	n.state = stateReady
	queued := n.pending
	n.pending = nil
	n.backend.NodeReady(n)
	for _, fn := range queued {
		if !n.Alive() {
			break
		}
		fn(n)
	}
}

// Destroy releases the node and its entire subtree. It is idempotent and
// safe to call before the creation request has confirmed; any queued
// continuations are dropped.
func (n *Node) Destroy() {
	if !n.Alive() {
		return
	}
	n.state = stateDestroyed
	n.pending = nil

	// Children detach as they die, so iterate over a copy.
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	for _, c := range children {
		c.Destroy()
	}
	n.children = nil

	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	}
	n.behavior = nil
	n.backend.NodeDestroyed(n)
}

func (n *Node) removeChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
