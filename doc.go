// Package fastplot maps array data onto retained-mode GPU scene objects.
//
// # Overview
//
// fastplot is a thin plotting layer for the GoGPU ecosystem. It converts
// numeric arrays (images, point clouds, line series, histograms) into
// scene-graph objects from the scene subpackage and keeps them updatable
// in place: new data overwrites existing vertex and texture buffers and
// marks dirty ranges for re-upload, without reallocating the scene
// objects themselves.
//
// # Quick Start
//
//	import "github.com/gogpu/fastplot"
//
//	plt := fastplot.NewPlot()
//
//	// One scene object per distinct color.
//	sc, err := plt.Scatter(positions,
//	    fastplot.WithColors(fastplot.RGBA(colors)),
//	    fastplot.WithSize(3),
//	)
//
//	// In-place update between frames.
//	err = sc.UpdateData(newPositions)
//
// # Graphics
//
// Four graphic kinds are built in: "image", "scatter", "line" and
// "histogram". Each owns its raw data, its resolved per-point RGBA
// colors, and exactly one scene root object. The generic constructor
// Plot.Make dispatches on the registered kind name; Register adds
// custom kinds.
//
// # Color resolution
//
// Colors are resolved once, at construction, from a ColorSpec: explicit
// RGBA rows, per-point integer labels combined with a colormap, a
// colormap alone, or the default opaque white. See ResolveColors.
//
// # Concurrency
//
// Graphics and plots are NOT safe for concurrent use. Issue data
// updates from the owner of the redraw cycle, between frames.
package fastplot
