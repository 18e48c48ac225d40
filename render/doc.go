// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws canvases from the texture cache.
//
// The package has three parts:
//
//   - Quads: stateless geometry for a canvas placed on a wall, floor or
//     ceiling (Mounted) or held in hand (Held). A canvas is a thin board:
//     the front quad shows the canvas texture, the back and the four sides
//     use a static wood texture.
//   - Renderer: owns a texture.Cache, resolves the texture for each draw
//     and hands the resulting batches to a Sink. Update notifications may
//     arrive from any goroutine and are applied on the render thread by
//     Drain.
//   - The canvas shader: WGSL source embedded in the binary and compiled
//     to SPIR-V with naga on first use.
//
// # Usage
//
//	r, err := render.NewRenderer(store, texture.NewDevice(creator), sink)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	// On the network goroutine:
//	r.Notify("mapA", 3)
//
//	// Every frame, on the render thread:
//	r.Drain()
//	err = r.DrawCanvas(render.Canvas{Name: "mapA", Version: 3, Width: 32, Height: 16},
//	    render.Placement{Facing: render.North, Yaw: 180})
//
// # Thread Safety
//
// Quads and CompileShader are safe for concurrent use. Renderer methods
// other than Notify must be called from the render thread.
package render
