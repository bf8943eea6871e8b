package panel

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/panelgrid/panelgrid/pkg/element"
	"github.com/panelgrid/panelgrid/pkg/errors"
	"github.com/panelgrid/panelgrid/pkg/grid"
	"github.com/panelgrid/panelgrid/pkg/scene"
)

// Element kinds accepted in manifests.
const (
	KindLabel  = "label"
	KindButton = "button"
)

// Manifest is the declarative description of one panel grid and its
// elements, loaded from TOML.
type Manifest struct {
	Grid      GridManifest                `toml:"grid"`
	Elements  []ElementManifest           `toml:"element"`
	Materials map[string]MaterialManifest `toml:"materials"`
}

// GridManifest describes the grid geometry and anchor.
type GridManifest struct {
	Columns  int          `toml:"columns"`
	Cell     SizeManifest `toml:"cell"`
	Gutter   VecManifest  `toml:"gutter"`
	Position VecManifest  `toml:"position"`
	// Rotation is in Euler degrees, the authoring convention.
	Rotation VecManifest `toml:"rotation"`
}

// SizeManifest mirrors scene.Size in TOML.
type SizeManifest struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Depth  float64 `toml:"depth"`
}

// VecManifest mirrors scene.Vec3 in TOML.
type VecManifest struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

// MaterialManifest names a material color.
type MaterialManifest struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
	A float64 `toml:"a"`
}

// ElementManifest describes one placed element.
type ElementManifest struct {
	ID       string  `toml:"id"`
	Kind     string  `toml:"kind"`
	Text     string  `toml:"text"`
	Span     int     `toml:"span"`
	Fill     float64 `toml:"fill"`
	Material string  `toml:"material"`
}

// ParseManifest decodes and validates a TOML panel manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}
	return ParseManifest(data)
}

// Validate checks element kinds, identifiers, and material references.
// Grid geometry is validated by grid.New during Build.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Elements))
	for _, el := range m.Elements {
		if err := errors.ValidateElementID(el.ID); err != nil {
			return err
		}
		if seen[el.ID] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate element id %q", el.ID)
		}
		seen[el.ID] = true

		if el.Kind != KindLabel && el.Kind != KindButton {
			return errors.New(errors.ErrCodeInvalidManifest, "element %q has unknown kind %q", el.ID, el.Kind)
		}

		if el.Material != "" {
			if err := errors.ValidateMaterialName(el.Material); err != nil {
				return err
			}
			if _, ok := m.Materials[el.Material]; !ok {
				return errors.New(errors.ErrCodeInvalidManifest, "element %q references unknown material %q", el.ID, el.Material)
			}
		}
	}
	return nil
}

// BuildResult holds the instantiated grid and its elements by manifest id.
type BuildResult struct {
	Grid     *grid.Grid
	Elements map[string]element.Placeable
}

// BuildOption configures a single Build call.
type BuildOption func(*buildOptions)

type buildOptions struct {
	clicks map[string]func()
}

// WithClick binds a click handler to the manifest element with the given id.
// Handlers for ids the manifest does not declare are ignored.
func WithClick(id string, fn func()) BuildOption {
	return func(o *buildOptions) {
		if o.clicks == nil {
			o.clicks = make(map[string]func())
		}
		o.clicks[id] = fn
	}
}

// Build instantiates the manifest against the kit's backend: one grid, each
// element created and added in declaration order.
func (k *Kit) Build(m *Manifest, opts ...BuildOption) (*BuildResult, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	cell := scene.Size{Width: m.Grid.Cell.Width, Height: m.Grid.Cell.Height, Depth: m.Grid.Cell.Depth}
	g, err := k.NewGrid("console", grid.Config{
		Columns:  m.Grid.Columns,
		CellSize: cell,
		GutterX:  m.Grid.Gutter.X,
		GutterY:  m.Grid.Gutter.Y,
	}, TransformAt(
		scene.Vec3{X: m.Grid.Position.X, Y: m.Grid.Position.Y, Z: m.Grid.Position.Z},
		scene.Vec3{X: m.Grid.Rotation.X, Y: m.Grid.Rotation.Y, Z: m.Grid.Rotation.Z},
	))
	if err != nil {
		return nil, err
	}

	result := &BuildResult{Grid: g, Elements: make(map[string]element.Placeable, len(m.Elements))}
	for _, em := range m.Elements {
		span := em.Span
		if span < 1 {
			span = 1
		}
		if span > m.Grid.Columns {
			span = m.Grid.Columns
		}
		// A spanning element's footprint covers the spanned cells plus the
		// gutters between them.
		footprint := scene.Size{
			Width:  cell.Width*float64(span) + m.Grid.Gutter.X*float64(span-1),
			Height: cell.Height,
		}

		var el element.Placeable
		switch em.Kind {
		case KindLabel:
			el = k.NewLabel(em.ID, element.LabelSpec{
				Text:         em.Text,
				Footprint:    footprint,
				FillFraction: em.Fill,
			})
		case KindButton:
			spec := element.ButtonSpec{
				Size:      scene.Size{Width: footprint.Width, Height: cell.Height, Depth: cell.Depth},
				Text:      em.Text,
				LabelFill: em.Fill,
				OnClick:   o.clicks[em.ID],
			}
			if em.Material != "" {
				mat := m.Materials[em.Material]
				spec.Material = &scene.Material{
					Name:  em.Material,
					Color: scene.Color{R: mat.R, G: mat.G, B: mat.B, A: mat.A},
				}
			}
			el = k.NewButton(em.ID, spec)
		}

		if span > 1 {
			g.Add(el, grid.WithSpan(span))
		} else {
			g.Add(el)
		}
		result.Elements[em.ID] = el
	}
	return result, nil
}
