package scene

// Backend is implemented by rendering backends. Creation methods return a
// live handle immediately and confirm completion later via [Node.Confirm];
// the embedded Observer methods receive every mutation made through a handle.
//
// All calls happen on the single control-flow context the scene lives in.
// Implementations must not assume any internal locking.
type Backend interface {
	// CreateEmpty creates a non-visual anchor node used purely for its
	// transform and parent-child relationships.
	CreateEmpty(name string) *Node

	// CreateBox creates a box-shaped visual node.
	CreateBox(name string, spec BoxSpec) *Node

	// CreateText creates a text-bearing node.
	CreateText(name string, spec TextSpec) *Node

	Observer
}

// Observer receives scene mutations. Backends implement it to mirror handle
// state; journaling or instrumentation layers implement it to watch a
// backend from the outside.
type Observer interface {
	// NodeCreated fires when a creation request is issued, before the
	// backend confirms it.
	NodeCreated(n *Node)

	// NodeReady fires after the backend confirms a creation request.
	NodeReady(n *Node)

	// NodeReparented fires after n's parent changed. The new parent may be
	// nil (detached to the scene root).
	NodeReparented(n *Node, parent *Node)

	// NodeTransformed fires after n's local transform changed.
	NodeTransformed(n *Node)

	// NodeTextChanged fires after a text node's contents or height changed.
	NodeTextChanged(n *Node)

	// NodeMaterialChanged fires after a material was applied to n.
	NodeMaterialChanged(n *Node)

	// NodeDestroyed fires once per node, when it is released.
	NodeDestroyed(n *Node)

	// BehaviorBound fires each time a handler is registered on n's behavior.
	BehaviorBound(n *Node, trigger Trigger)
}

// NoopObserver is an Observer that ignores every event. Embed it to implement
// only the events a layer cares about.
type NoopObserver struct{}

func (NoopObserver) NodeCreated(*Node)            {}
func (NoopObserver) NodeReady(*Node)              {}
func (NoopObserver) NodeReparented(*Node, *Node)  {}
func (NoopObserver) NodeTransformed(*Node)        {}
func (NoopObserver) NodeTextChanged(*Node)        {}
func (NoopObserver) NodeMaterialChanged(*Node)    {}
func (NoopObserver) NodeDestroyed(*Node)          {}
func (NoopObserver) BehaviorBound(*Node, Trigger) {}
