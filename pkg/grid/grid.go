package grid

import (
	"github.com/panelgrid/panelgrid/pkg/element"
	"github.com/panelgrid/panelgrid/pkg/errors"
	"github.com/panelgrid/panelgrid/pkg/observability"
	"github.com/panelgrid/panelgrid/pkg/scene"
)

// Config fixes a grid's geometry at construction time.
type Config struct {
	// Columns is the number of columns in the layout. Must be positive.
	Columns int

	// CellSize is one cell's footprint. Width spans a column, Height spans a
	// row; Depth is unused by the layout math and passed through to
	// elements that want it.
	CellSize scene.Size

	// GutterX and GutterY are the spacing between adjacent cells along each
	// axis.
	GutterX, GutterY float64
}

func (c Config) validate() error {
	if c.Columns <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "columns must be positive, got %d", c.Columns)
	}
	if c.CellSize.Width <= 0 || c.CellSize.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cell size must be positive, got %gx%g",
			c.CellSize.Width, c.CellSize.Height)
	}
	if c.GutterX < 0 || c.GutterY < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "gutters must not be negative")
	}
	return nil
}

// Grid arranges placeable elements into rows and columns under a single
// container node. Placement is slot-indexed: each addition reserves one slot
// per spanned column, and removals leave holes instead of compacting, so an
// element's position never changes after it is placed.
//
// Not safe for concurrent use; all operations run on the scene's single
// control-flow context.
type Grid struct {
	cfg       Config
	container *scene.Node
	slots     []element.Placeable
}

// New creates a grid whose container node is positioned at the given
// transform. The configuration is validated eagerly so broken geometry fails
// here instead of producing nonsense placements later.
func New(b scene.Backend, name string, cfg Config, at scene.Transform) (*Grid, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	container := b.CreateEmpty(name)
	container.SetTransform(at)
	return &Grid{cfg: cfg, container: container}, nil
}

// AddOption configures a single Add call.
type AddOption func(*addOptions)

type addOptions struct {
	span int
}

// WithSpan makes the element reserve n consecutive column slots in its row.
// Spans wider than the grid are clamped, never rejected.
func WithSpan(n int) AddOption {
	return func(o *addOptions) { o.span = n }
}

// Add places el in the next free cell, reparenting it under the grid's
// container. The target row and column derive purely from the slot count at
// insertion time, so insertion order is load-bearing: earlier removals never
// shift elements added later.
func (g *Grid) Add(el element.Placeable, opts ...AddOption) {
	o := addOptions{span: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.span < 1 {
		o.span = 1
	}

	el.SetParent(g.container)

	cols := g.cfg.Columns
	idx := len(g.slots)
	row := idx / cols
	start := idx % cols

	// An over-wide span is truncated at the grid edge rather than rejected:
	// degraded layout beats aborting an interactive session.
	end := start + o.span - 1
	if end > cols-1 {
		end = cols - 1
	}

	mid := float64(start+end) / 2
	gridMid := float64(cols-1) / 2

	t := el.Transform()
	t.Position.X = (mid - gridMid) * (g.cfg.CellSize.Width + g.cfg.GutterX)
	t.Position.Z = -(g.cfg.CellSize.Height + g.cfg.GutterY) * float64(row)
	el.SetTransform(t)

	g.slots = append(g.slots, el)
	for i := start; i < end; i++ {
		g.slots = append(g.slots, nil)
	}

	observability.Grid().OnAdd(idx, row, start, end-start+1)
}

// Remove destroys el and empties its slot. The slot list never shrinks, so
// every later element keeps its position. Removing an element the grid does
// not hold is a no-op.
func (g *Grid) Remove(el element.Placeable) {
	for i, slot := range g.slots {
		if slot == el {
			g.slots[i] = nil
			el.Destroy()
			observability.Grid().OnRemove(i)
			return
		}
	}
}

// Clear destroys every occupant and truncates the slot list. This is the
// only operation that resets row and column counting to the origin.
func (g *Grid) Clear() {
	destroyed := 0
	for _, slot := range g.slots {
		if slot != nil {
			slot.Destroy()
			destroyed++
		}
	}
	g.slots = g.slots[:0]
	observability.Grid().OnClear(destroyed)
}

// Transform returns the container's transform; it positions and orients the
// whole grid as a rigid body.
func (g *Grid) Transform() scene.Transform {
	return g.container.Transform()
}

// SetTransform moves the whole grid.
func (g *Grid) SetTransform(t scene.Transform) {
	g.container.SetTransform(t)
}

// Container returns the root node all placed elements hang under.
func (g *Grid) Container() *scene.Node {
	return g.container
}

// Columns returns the fixed column count.
func (g *Grid) Columns() int {
	return g.cfg.Columns
}

// SlotCount returns the number of reserved slots, including holes left by
// removals.
func (g *Grid) SlotCount() int {
	return len(g.slots)
}
