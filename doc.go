// Package mandelbrot renders the Mandelbrot set into an RGBA canvas.
//
// # Overview
//
// Every pixel is mapped to a point c of the complex plane and the recurrence
// z = z*z + c is iterated from zero until |z| leaves the radius-2 disc or the
// iteration bound is reached. The count is the pixel's escape time; a
// precomputed gradient table turns it into a color.
//
// # Quick Start
//
//	cfg := mandelbrot.DefaultConfig()
//	r, err := mandelbrot.NewRenderer(cfg)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	canvas := r.NewCanvas()
//	elapsed, err := r.Render(canvas)
//	...
//	canvas.SavePNG("mandelbrot.png")
//
// # Architecture
//
//   - Normalize, Escape, Evaluator: pixel -> complex point -> escape time
//   - Gradient: escape time -> Color, built once per Config
//   - Renderer: walks the canvas in row bands on a worker pool
//   - Session: caches the rendered frame and hands it to a Display
//
// Windows, terminals and files are Display implementations living outside
// this package (see integration/gpuview, internal/terminal and
// internal/snapshot).
//
// # Coordinate System
//
// Pixel (0, 0) is the top-left corner. The default view maps x from 0.47 at
// the left edge to -2.00 at the right edge and y from 1.12 at the top to
// -1.12 at the bottom.
package mandelbrot
