// Package pkg provides the core libraries for panelgrid.
//
// # Overview
//
// Panelgrid arranges interactive panel elements (labels, buttons) into a
// rectangular grid anchored anywhere in 3D space. The pkg directory is
// organized into four main areas:
//
//  1. [scene] - Scene model (nodes, transforms, behaviors, backends)
//  2. [element] - Placeable elements built on the scene model
//  3. [grid] - Slot-indexed grid layout engine
//  4. [panel] - Facade: kit factories and declarative TOML manifests
//
// # Architecture
//
// The typical data flow through panelgrid:
//
//	Manifest / application code
//	         ↓
//	    [panel] package (kit factories, manifest build)
//	         ↓
//	    [element] package (labels, buttons, fill sizing)
//	         ↓
//	    [grid] package (slot-indexed placement)
//	         ↓
//	    [scene] package (nodes pushed to a Backend)
//
// # Quick Start
//
// Build a one-row console and preview it in the terminal:
//
//	import (
//	    "github.com/panelgrid/panelgrid/pkg/element"
//	    "github.com/panelgrid/panelgrid/pkg/grid"
//	    "github.com/panelgrid/panelgrid/pkg/panel"
//	    "github.com/panelgrid/panelgrid/pkg/scene"
//	    "github.com/panelgrid/panelgrid/pkg/scene/memory"
//	    "github.com/panelgrid/panelgrid/pkg/scene/termview"
//	)
//
//	// 1. Create a kit over an in-memory backend
//	backend := memory.New()
//	kit := panel.New(backend)
//
//	// 2. Create a grid anchored in space
//	g, _ := kit.NewGrid("console", grid.Config{
//	    Columns:  3,
//	    CellSize: scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
//	    GutterX:  0.1,
//	    GutterY:  0.05,
//	}, panel.TransformAt(scene.Vec3{Y: 1.2, Z: -2}, scene.Vec3{Y: 180}))
//
//	// 3. Add elements
//	g.Add(kit.NewButton("vote", element.ButtonSpec{
//	    Size:    scene.Size{Width: 0.4, Height: 0.2, Depth: 0.01},
//	    Text:    "Vote",
//	    OnClick: func() { /* ... */ },
//	}))
//
//	// 4. Render a frame
//	fmt.Println(termview.Render(backend))
//
// # Main Packages
//
// [scene] - The scene model: node handles with two-phase async creation,
// transforms (position, quaternion rotation, scale), interaction behaviors,
// and the Backend interface rendering backends implement.
//
// [scene/memory] - In-memory backend used by tests, the terminal preview,
// and session journaling. Supports deferred confirmation to exercise the
// window between a creation request and its completion.
//
// [scene/termview] - Terminal projection of a scene, plus an interactive
// bubbletea preview program.
//
// [element] - Placeable elements. [element.Label] is text sized by
// [element.FillHeight]; [element.Button] is a collidable box with optional
// caption and interaction handlers.
//
// [grid] - The layout engine. Slot-indexed placement with column spans;
// removals leave holes so placed elements never move.
//
// [panel] - The facade package: [panel.Kit] factories bound to one backend,
// and declarative TOML manifests built into live scenes.
//
// [host] - HTTP session host. Each session gets a private backend whose
// journal a client can replay.
//
// [errors] - Structured error codes shared by the library, CLI, and host.
//
// [observability] - Hook registration for instrumentation without hard
// backend dependencies.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/grid/...     # Specific package
//	go test -run Example       # Examples only
//
// [scene]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/scene
// [scene/memory]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/scene/memory
// [scene/termview]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/scene/termview
// [element]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/element
// [element.Label]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/element#Label
// [element.Button]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/element#Button
// [element.FillHeight]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/element#FillHeight
// [grid]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/grid
// [panel]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/panel
// [panel.Kit]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/panel#Kit
// [host]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/host
// [errors]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/panelgrid/panelgrid/pkg/observability
package pkg
