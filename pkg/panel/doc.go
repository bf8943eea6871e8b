// Package panel is the convenience entry point for building panel UIs: a
// factory for grids, labels, and buttons bound to one scene backend, a
// coordinate-convention translator, and a declarative TOML manifest loader.
//
// # Quick Start
//
//	backend := memory.New()
//	kit := panel.New(backend)
//
//	console, err := kit.NewGrid("console", grid.Config{
//	    Columns:  3,
//	    CellSize: scene.Size{Width: 0.4, Height: 0.18, Depth: 0.01},
//	    GutterX:  0.02,
//	    GutterY:  0.02,
//	}, panel.TransformAt(scene.Vec3{Y: 1.2, Z: -2}, scene.Vec3{Y: 180}))
//	if err != nil {
//	    return err
//	}
//
//	title := kit.NewLabel("title", element.LabelSpec{Text: "SCOREBOARD", ...})
//	console.Add(title, grid.WithSpan(3))
package panel
