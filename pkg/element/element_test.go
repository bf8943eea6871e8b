package element

import (
	"math"
	"testing"

	"github.com/panelgrid/panelgrid/pkg/scene"
	"github.com/panelgrid/panelgrid/pkg/scene/memory"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNodeElementLifecycle(t *testing.T) {
	backend := memory.New()
	parent := backend.CreateEmpty("parent")

	el := FromNode(backend.CreateEmpty("child"))
	el.SetParent(parent)
	if el.Parent() != parent {
		t.Fatal("SetParent did not attach the node")
	}

	at := scene.NewTransform()
	at.Position = scene.Vec3{X: 1, Y: 2, Z: 3}
	el.SetTransform(at)
	if got := el.Transform().Position; got != at.Position {
		t.Errorf("Transform().Position = %+v, want %+v", got, at.Position)
	}

	node := el.Node()
	el.Destroy()
	if el.Node() != nil {
		t.Error("Node() non-nil after Destroy")
	}
	if node.Alive() {
		t.Error("wrapped node still alive after Destroy")
	}

	// Every method is a safe no-op afterwards.
	el.Destroy()
	el.SetParent(parent)
	el.SetTransform(at)
	if el.Parent() != nil {
		t.Error("Parent() non-nil after Destroy")
	}
	if got := el.Transform(); got.Scale != scene.One() {
		t.Errorf("Transform() after Destroy = %+v, want identity", got)
	}
}

func TestLabelCreation(t *testing.T) {
	backend := memory.New()
	footprint := scene.Size{Width: 0.4, Height: 0.2}

	label := NewLabel(backend, "score", LabelSpec{
		Text:      "Red",
		Footprint: footprint,
	})

	if got := label.Text(); got != "Red" {
		t.Errorf("Text() = %q, want %q", got, "Red")
	}
	want := FillHeight("Red", footprint, DefaultFillFraction)
	if got := label.Height(); !almostEqual(got, want) {
		t.Errorf("Height() = %g, want %g", got, want)
	}

	// The text child hangs under the anchor and is tipped up out of the
	// panel plane.
	anchor := label.Anchor()
	if anchor == nil {
		t.Fatal("Anchor() = nil")
	}
	children := anchor.Children()
	if len(children) != 1 {
		t.Fatalf("anchor has %d children, want 1", len(children))
	}
	if children[0].Transform().Rotation != scene.EulerDeg(-90, 0, 0) {
		t.Error("text child not rotated to face the viewer")
	}
}

func TestLabelSetText(t *testing.T) {
	backend := memory.New()
	parent := backend.CreateEmpty("parent")
	footprint := scene.Size{Width: 0.4, Height: 0.2}

	label := NewLabel(backend, "score", LabelSpec{Text: "0", Footprint: footprint})
	label.SetParent(parent)

	at := scene.NewTransform()
	at.Position = scene.Vec3{X: 0.5}
	label.SetTransform(at)

	label.SetText("a much longer string than before")

	if got := label.Text(); got != "a much longer string than before" {
		t.Errorf("Text() = %q after SetText", got)
	}
	want := FillHeight("a much longer string than before", footprint, DefaultFillFraction)
	if got := label.Height(); !almostEqual(got, want) {
		t.Errorf("Height() = %g after SetText, want %g", got, want)
	}

	// SetText must not disturb placement.
	if label.Parent() != parent {
		t.Error("SetText changed the label's parent")
	}
	if got := label.Transform().Position; got != at.Position {
		t.Errorf("SetText moved the label to %+v", got)
	}
}

func TestLabelDestroy(t *testing.T) {
	backend := memory.New()
	label := NewLabel(backend, "score", LabelSpec{
		Text:      "Red",
		Footprint: scene.Size{Width: 0.4, Height: 0.2},
	})

	anchor := label.Anchor()
	text := anchor.Children()[0]

	label.Destroy()
	if anchor.Alive() || text.Alive() {
		t.Error("Destroy did not cascade to both owned nodes")
	}
	if label.Anchor() != nil {
		t.Error("Anchor() non-nil after Destroy")
	}

	// Idempotent, and accessors degrade instead of panicking.
	label.Destroy()
	label.SetText("ignored")
	if got := label.Text(); got != "" {
		t.Errorf("Text() = %q after Destroy, want empty", got)
	}
	if got := label.Height(); got != 0 {
		t.Errorf("Height() = %g after Destroy, want 0", got)
	}
}

func TestNewButton(t *testing.T) {
	backend := memory.New()
	mat := scene.Material{Name: "red"}

	clicks := 0
	btn := NewButton(backend, "vote", ButtonSpec{
		Size:     scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
		Material: &mat,
		Text:     "Red",
		OnClick:  func() { clicks++ },
	})

	node := btn.Node()
	if node == nil {
		t.Fatal("Node() = nil")
	}
	if !node.Interactive() {
		t.Error("button box created without a collider")
	}
	if got := node.Box().Layer; got != scene.LayerUI {
		t.Errorf("collision layer = %v, want LayerUI", got)
	}
	if got := node.Material(); got == nil || got.Name != mat.Name {
		t.Errorf("material = %+v, want %q applied on ready", got, mat.Name)
	}

	label := btn.Label()
	if label == nil {
		t.Fatal("Label() = nil for a captioned button")
	}
	if label.Parent() != node {
		t.Error("label not parented under the box node")
	}
	wantY := 0.01/2 + labelLift
	if got := label.Transform().Position.Y; !almostEqual(got, wantY) {
		t.Errorf("label lift Y = %g, want %g", got, wantY)
	}

	backend.Click(node)
	backend.Click(node)
	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
}

func TestNewButtonWithoutText(t *testing.T) {
	backend := memory.New()
	btn := NewButton(backend, "blank", ButtonSpec{
		Size: scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
	})
	if btn.Label() != nil {
		t.Error("Label() non-nil for a caption-less button")
	}
}

func TestButtonHandlers(t *testing.T) {
	backend := memory.New()

	var pressed, released int
	var hovering []scene.HoverState
	btn := NewButton(backend, "vote", ButtonSpec{
		Size: scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
		Buttons: []ButtonHandler{
			{State: scene.ButtonPressed, Fn: func(scene.ButtonState) { pressed++ }},
			{State: scene.ButtonReleased, Fn: func(scene.ButtonState) { released++ }},
		},
		Hovers: []HoverHandler{
			{State: scene.HoverEnter, Fn: func(s scene.HoverState) { hovering = append(hovering, s) }},
		},
	})

	backend.Button(btn.Node(), scene.ButtonPressed)
	backend.Button(btn.Node(), scene.ButtonReleased)
	backend.Button(btn.Node(), scene.ButtonHolding) // no handler bound
	backend.Hover(btn.Node(), scene.HoverEnter)
	backend.Hover(btn.Node(), scene.HoverExit) // no handler bound

	if pressed != 1 || released != 1 {
		t.Errorf("pressed = %d, released = %d, want 1 each", pressed, released)
	}
	if len(hovering) != 1 || hovering[0] != scene.HoverEnter {
		t.Errorf("hover events = %v, want [enter]", hovering)
	}
}

func TestButtonDestroyCascades(t *testing.T) {
	backend := memory.New()
	btn := NewButton(backend, "vote", ButtonSpec{
		Size: scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
		Text: "Red",
	})

	node := btn.Node()
	labelAnchor := btn.Label().Anchor()

	btn.Destroy()
	if node.Alive() {
		t.Error("box node still alive after Destroy")
	}
	if labelAnchor.Alive() {
		t.Error("label anchor still alive after Destroy")
	}
	if btn.Node() != nil || btn.Label() != nil {
		t.Error("accessors non-nil after Destroy")
	}

	btn.Destroy() // second call is a no-op
}

func TestButtonDestroyedBeforeConfirm(t *testing.T) {
	// A slow backend confirms creation after the button is already gone: the
	// deferred material assignment and behavior binding must be dropped.
	backend := memory.NewDeferred()
	mat := scene.Material{Name: "red"}

	bound := false
	btn := NewButton(backend, "vote", ButtonSpec{
		Size:     scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
		Material: &mat,
		OnClick:  func() { bound = true },
	})

	node := btn.Node()
	btn.Destroy()
	backend.Flush()

	if node.Material() != nil {
		t.Error("material applied to a destroyed node")
	}
	if bound {
		t.Error("click handler fired for a destroyed node")
	}
}
