package element

import "github.com/panelgrid/panelgrid/pkg/scene"

// DefaultFillFraction is the share of a footprint's height that label text
// occupies when no fraction is specified.
const DefaultFillFraction = 0.8

// LabelSpec describes a label at creation time.
type LabelSpec struct {
	Text         string
	Footprint    scene.Size
	FillFraction float64 // (0, 1]; DefaultFillFraction when zero
	Color        scene.Color
	Props        map[string]string
}

// Label is a text element composed of an orientation-neutral anchor node and
// a text-bearing child. The anchor satisfies the Placeable contract; the text
// child carries contents sized by FillHeight.
type Label struct {
	anchor    *scene.Node
	text      *scene.Node
	footprint scene.Size
	fill      float64
}

// NewLabel creates a label under backend b. The text child is tipped up out
// of the panel plane so it reads from the viewing side.
func NewLabel(b scene.Backend, name string, spec LabelSpec) *Label {
	if spec.FillFraction <= 0 {
		spec.FillFraction = DefaultFillFraction
	}
	color := spec.Color
	if color == (scene.Color{}) {
		color = scene.White
	}

	anchor := b.CreateEmpty(name)
	text := b.CreateText(name+"/text", scene.TextSpec{
		Contents: spec.Text,
		Height:   FillHeight(spec.Text, spec.Footprint, spec.FillFraction),
		Anchor:   scene.AnchorMiddleCenter,
		Color:    color,
		Props:    spec.Props,
	})
	text.SetParent(anchor)

	t := text.Transform()
	t.Rotation = scene.EulerDeg(-90, 0, 0)
	text.SetTransform(t)

	return &Label{
		anchor:    anchor,
		text:      text,
		footprint: spec.Footprint,
		fill:      spec.FillFraction,
	}
}

// Text returns the current contents, or "" after Destroy.
func (l *Label) Text() string {
	if l.text == nil {
		return ""
	}
	return l.text.Text()
}

// Height returns the current display height of the contents.
func (l *Label) Height() float64 {
	if l.text == nil {
		return 0
	}
	return l.text.TextHeight()
}

// SetText replaces the contents and recomputes the display height for the
// new string. Position and parent are left untouched.
func (l *Label) SetText(text string) {
	if l.text == nil {
		return
	}
	l.text.SetText(text)
	l.text.SetTextHeight(FillHeight(text, l.footprint, l.fill))
}

// Anchor returns the label's anchor node, or nil after Destroy.
func (l *Label) Anchor() *scene.Node { return l.anchor }

// Parent implements Placeable.
func (l *Label) Parent() *scene.Node {
	if l.anchor == nil {
		return nil
	}
	return l.anchor.Parent()
}

// SetParent implements Placeable.
func (l *Label) SetParent(parent *scene.Node) {
	if l.anchor != nil {
		l.anchor.SetParent(parent)
	}
}

// Transform implements Placeable.
func (l *Label) Transform() scene.Transform {
	if l.anchor == nil {
		return scene.NewTransform()
	}
	return l.anchor.Transform()
}

// SetTransform implements Placeable.
func (l *Label) SetTransform(t scene.Transform) {
	if l.anchor != nil {
		l.anchor.SetTransform(t)
	}
}

// Destroy implements Placeable. The anchor cascades to the text child.
func (l *Label) Destroy() {
	if l.anchor == nil {
		return
	}
	l.anchor.Destroy()
	l.anchor = nil
	l.text = nil
}
