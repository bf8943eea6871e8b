package host

import (
	"github.com/panelgrid/panelgrid/pkg/scene"
)

// Op is one recorded scene operation in a session's journal.
type Op struct {
	Seq  int            `json:"seq"`
	Kind string         `json:"kind"`
	Node string         `json:"node"`
	Name string         `json:"name,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Op kinds recorded by the journal.
const (
	OpCreate    = "create"
	OpReady     = "ready"
	OpReparent  = "reparent"
	OpTransform = "transform"
	OpText      = "text"
	OpMaterial  = "material"
	OpDestroy   = "destroy"
	OpBehavior  = "behavior"
)

// Journal records every scene operation applied to a session's backend, in
// order. It is the wire-facing view of a session: a connecting client can
// replay the journal to reconstruct the scene.
type Journal struct {
	ops []Op
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Ops returns the recorded operations in order.
func (j *Journal) Ops() []Op {
	return j.ops
}

// Len returns the number of recorded operations.
func (j *Journal) Len() int {
	return len(j.ops)
}

func (j *Journal) record(kind string, n *scene.Node, meta map[string]any) {
	j.ops = append(j.ops, Op{
		Seq:  len(j.ops),
		Kind: kind,
		Node: n.ID().String(),
		Name: n.Name(),
		Meta: meta,
	})
}

// NodeCreated implements scene.Observer.
func (j *Journal) NodeCreated(n *scene.Node) {
	j.record(OpCreate, n, map[string]any{"kind": int(n.Kind())})
}

// NodeReady implements scene.Observer.
func (j *Journal) NodeReady(n *scene.Node) {
	j.record(OpReady, n, nil)
}

// NodeReparented implements scene.Observer.
func (j *Journal) NodeReparented(n, parent *scene.Node) {
	meta := map[string]any{}
	if parent != nil {
		meta["parent"] = parent.ID().String()
	}
	j.record(OpReparent, n, meta)
}

// NodeTransformed implements scene.Observer.
func (j *Journal) NodeTransformed(n *scene.Node) {
	p := n.Transform().Position
	j.record(OpTransform, n, map[string]any{"x": p.X, "y": p.Y, "z": p.Z})
}

// NodeTextChanged implements scene.Observer.
func (j *Journal) NodeTextChanged(n *scene.Node) {
	j.record(OpText, n, map[string]any{"text": n.Text(), "height": n.TextHeight()})
}

// NodeMaterialChanged implements scene.Observer.
func (j *Journal) NodeMaterialChanged(n *scene.Node) {
	meta := map[string]any{}
	if m := n.Material(); m != nil {
		meta["material"] = m.Name
	}
	j.record(OpMaterial, n, meta)
}

// NodeDestroyed implements scene.Observer.
func (j *Journal) NodeDestroyed(n *scene.Node) {
	j.record(OpDestroy, n, nil)
}

// BehaviorBound implements scene.Observer.
func (j *Journal) BehaviorBound(n *scene.Node, trigger scene.Trigger) {
	j.record(OpBehavior, n, map[string]any{"trigger": string(trigger)})
}
