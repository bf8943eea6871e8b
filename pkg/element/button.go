package element

import "github.com/panelgrid/panelgrid/pkg/scene"

// labelLift keeps a button's label just above the top face instead of
// embedded in the box volume.
const labelLift = 0.002

// ButtonHandler binds a handler to one button sub-state.
type ButtonHandler struct {
	State scene.ButtonState
	Fn    func(scene.ButtonState)
}

// HoverHandler binds a handler to one hover sub-state.
type HoverHandler struct {
	State scene.HoverState
	Fn    func(scene.HoverState)
}

// ButtonSpec describes a button at creation time. Handlers are bound once,
// after the backend confirms the box creation.
type ButtonSpec struct {
	Size     scene.Size
	Material *scene.Material

	// Text, when non-empty, creates a label child on the visible face.
	Text      string
	LabelFill float64
	Color     scene.Color

	OnClick func()
	Buttons []ButtonHandler
	Hovers  []HoverHandler

	Props map[string]string
}

// Button is an interactive element composed of a collidable box node and at
// most one owned Label. The box node doubles as the element's anchor.
type Button struct {
	node  *scene.Node
	label *Label
}

// NewButton creates a button under backend b. The box is created with a
// collider on the dedicated UI interaction layer. Material assignment and
// behavior binding wait for creation confirmation; if the button is destroyed
// before the backend confirms, the deferred attachment is skipped.
func NewButton(b scene.Backend, name string, spec ButtonSpec) *Button {
	node := b.CreateBox(name, scene.BoxSpec{
		Size:     spec.Size,
		Collider: true,
		Layer:    scene.LayerUI,
		Props:    spec.Props,
	})

	btn := &Button{node: node}

	node.OnReady(func(n *scene.Node) {
		if spec.Material != nil {
			n.SetMaterial(*spec.Material)
		}
		bindBehaviors(n, spec)
	})

	if spec.Text != "" {
		label := NewLabel(b, name+"/label", LabelSpec{
			Text:         spec.Text,
			Footprint:    scene.Size{Width: spec.Size.Width, Height: spec.Size.Height},
			FillFraction: spec.LabelFill,
			Color:        spec.Color,
		})
		label.SetParent(node)

		t := label.Transform()
		t.Position.Y = spec.Size.Depth/2 + labelLift
		label.SetTransform(t)

		btn.label = label
	}

	return btn
}

// bindBehaviors attaches the configured handlers. All triggers share the
// node's single behavior object.
func bindBehaviors(n *scene.Node, spec ButtonSpec) {
	if spec.OnClick == nil && len(spec.Buttons) == 0 && len(spec.Hovers) == 0 {
		return
	}
	behavior := n.Behavior()
	if spec.OnClick != nil {
		behavior.OnClick(spec.OnClick)
	}
	for _, h := range spec.Buttons {
		behavior.OnButton(h.State, h.Fn)
	}
	for _, h := range spec.Hovers {
		behavior.OnHover(h.State, h.Fn)
	}
}

// Node returns the button's box node, or nil after Destroy.
func (b *Button) Node() *scene.Node { return b.node }

// Label returns the owned label, or nil if the button has none or was
// destroyed.
func (b *Button) Label() *Label { return b.label }

// Parent implements Placeable.
func (b *Button) Parent() *scene.Node {
	if b.node == nil {
		return nil
	}
	return b.node.Parent()
}

// SetParent implements Placeable.
func (b *Button) SetParent(parent *scene.Node) {
	if b.node != nil {
		b.node.SetParent(parent)
	}
}

// Transform implements Placeable.
func (b *Button) Transform() scene.Transform {
	if b.node == nil {
		return scene.NewTransform()
	}
	return b.node.Transform()
}

// SetTransform implements Placeable.
func (b *Button) SetTransform(t scene.Transform) {
	if b.node != nil {
		b.node.SetTransform(t)
	}
}

// Destroy implements Placeable: cascades to the owned label, then the box
// node, and nils both references. A second call is a no-op.
func (b *Button) Destroy() {
	if b.node == nil {
		return
	}
	if b.label != nil {
		b.label.Destroy()
		b.label = nil
	}
	b.node.Destroy()
	b.node = nil
}
