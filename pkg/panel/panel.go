package panel

import (
	"github.com/panelgrid/panelgrid/pkg/element"
	"github.com/panelgrid/panelgrid/pkg/grid"
	"github.com/panelgrid/panelgrid/pkg/scene"
)

// Kit builds composite elements and grids against one scene backend.
type Kit struct {
	backend scene.Backend
}

// New creates a kit bound to b.
func New(b scene.Backend) *Kit {
	return &Kit{backend: b}
}

// Backend returns the kit's scene backend.
func (k *Kit) Backend() scene.Backend {
	return k.backend
}

// NewGrid creates a grid positioned at the given transform.
func (k *Kit) NewGrid(name string, cfg grid.Config, at scene.Transform) (*grid.Grid, error) {
	return grid.New(k.backend, name, cfg, at)
}

// NewLabel creates a free-standing label element.
func (k *Kit) NewLabel(name string, spec element.LabelSpec) *element.Label {
	return element.NewLabel(k.backend, name, spec)
}

// NewButton creates a button element. Behavior handlers and the material
// attach once the backend confirms creation.
func (k *Kit) NewButton(name string, spec element.ButtonSpec) *element.Button {
	return element.NewButton(k.backend, name, spec)
}

// TransformAt translates an external (position, Euler-degrees rotation)
// description into the engine's internal transform representation.
func TransformAt(position, eulerDeg scene.Vec3) scene.Transform {
	t := scene.NewTransform()
	t.Position = position
	t.Rotation = scene.EulerDeg(eulerDeg.X, eulerDeg.Y, eulerDeg.Z)
	return t
}
