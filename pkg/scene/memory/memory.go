// Package memory provides an in-memory scene backend.
//
// The backend mirrors the node tree without rendering anything, making it the
// reference implementation for tests, the terminal preview, and session
// journaling. Creation confirms immediately by default; NewDeferred holds
// confirmations until Flush so callers can exercise the window between a
// creation request and its completion.
package memory

import (
	"github.com/google/uuid"

	"github.com/panelgrid/panelgrid/pkg/observability"
	"github.com/panelgrid/panelgrid/pkg/scene"
)

// Backend is an in-memory scene backend. Not safe for concurrent use; the
// scene model is single-threaded by contract.
type Backend struct {
	deferred bool
	observer scene.Observer
	nodes    []*scene.Node
	queue    []*scene.Node
}

// New creates a backend that confirms creation requests immediately.
func New() *Backend {
	return &Backend{}
}

// NewDeferred creates a backend that holds creation confirmations until
// Flush is called. Use it to simulate a slow backend and test the
// destroy-before-ready window.
func NewDeferred() *Backend {
	return &Backend{deferred: true}
}

// SetObserver attaches an observer that receives every scene event after the
// backend has applied it. Passing nil detaches.
func (b *Backend) SetObserver(o scene.Observer) {
	b.observer = o
}

// CreateEmpty implements scene.Backend.
func (b *Backend) CreateEmpty(name string) *scene.Node {
	return b.track(scene.NewEmptyNode(b, name))
}

// CreateBox implements scene.Backend.
func (b *Backend) CreateBox(name string, spec scene.BoxSpec) *scene.Node {
	return b.track(scene.NewBoxNode(b, name, spec))
}

// CreateText implements scene.Backend.
func (b *Backend) CreateText(name string, spec scene.TextSpec) *scene.Node {
	return b.track(scene.NewTextNode(b, name, spec))
}

func (b *Backend) track(n *scene.Node) *scene.Node {
	b.nodes = append(b.nodes, n)
	observability.Scene().OnNodeCreate(n.Name())
	if b.observer != nil {
		b.observer.NodeCreated(n)
	}
	if b.deferred {
		b.queue = append(b.queue, n)
	} else {
		n.Confirm()
	}
	return n
}

// Flush confirms every queued creation request in order. Requests whose node
// was destroyed in the interim confirm as no-ops.
func (b *Backend) Flush() {
	queue := b.queue
	b.queue = nil
	for _, n := range queue {
		n.Confirm()
	}
}

// Nodes returns all live nodes in creation order.
func (b *Backend) Nodes() []*scene.Node {
	live := make([]*scene.Node, 0, len(b.nodes))
	for _, n := range b.nodes {
		if n.Alive() {
			live = append(live, n)
		}
	}
	return live
}

// Lookup returns the live node with the given id, or nil.
func (b *Backend) Lookup(id uuid.UUID) *scene.Node {
	for _, n := range b.nodes {
		if n.Alive() && n.ID() == id {
			return n
		}
	}
	return nil
}

// Click simulates a completed click interaction on n.
func (b *Backend) Click(n *scene.Node) {
	n.Behavior().Click()
}

// Button simulates a button sub-state event on n.
func (b *Backend) Button(n *scene.Node, state scene.ButtonState) {
	n.Behavior().Button(state)
}

// Hover simulates a hover sub-state event on n.
func (b *Backend) Hover(n *scene.Node, state scene.HoverState) {
	n.Behavior().Hover(state)
}

// NodeReady implements scene.Observer.
func (b *Backend) NodeReady(n *scene.Node) {
	observability.Scene().OnNodeConfirm(n.Name())
	if b.observer != nil {
		b.observer.NodeReady(n)
	}
}

// NodeCreated implements scene.Observer. Creation is reported from track;
// this only exists so Backend satisfies the interface when layered.
func (b *Backend) NodeCreated(n *scene.Node) {}

// NodeReparented implements scene.Observer.
func (b *Backend) NodeReparented(n, parent *scene.Node) {
	if b.observer != nil {
		b.observer.NodeReparented(n, parent)
	}
}

// NodeTransformed implements scene.Observer.
func (b *Backend) NodeTransformed(n *scene.Node) {
	if b.observer != nil {
		b.observer.NodeTransformed(n)
	}
}

// NodeTextChanged implements scene.Observer.
func (b *Backend) NodeTextChanged(n *scene.Node) {
	if b.observer != nil {
		b.observer.NodeTextChanged(n)
	}
}

// NodeMaterialChanged implements scene.Observer.
func (b *Backend) NodeMaterialChanged(n *scene.Node) {
	if b.observer != nil {
		b.observer.NodeMaterialChanged(n)
	}
}

// NodeDestroyed implements scene.Observer.
func (b *Backend) NodeDestroyed(n *scene.Node) {
	observability.Scene().OnNodeDestroy(n.Name())
	if b.observer != nil {
		b.observer.NodeDestroyed(n)
	}
}

// BehaviorBound implements scene.Observer.
func (b *Backend) BehaviorBound(n *scene.Node, trigger scene.Trigger) {
	observability.Scene().OnBehaviorBind(n.Name(), string(trigger))
	if b.observer != nil {
		b.observer.BehaviorBound(n, trigger)
	}
}
