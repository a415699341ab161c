// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuview presents a mandelbrot.Canvas in a gogpu window.
//
// The data flow is:
//
//	mandelbrot.Canvas (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	view := gpuview.New()
//	defer view.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    target := gpuview.FromTextureDrawer(dc.AsTextureDrawer())
//	    if err := session.Frame(view.Presenter(target)); err != nil {
//	        log.Printf("frame: %v", err)
//	    }
//	})
//
// # Texture Lifecycle
//
//   - The texture is created lazily on the first present
//   - It is re-uploaded only when the canvas Version changed
//   - A canvas of a different size recreates the texture
//
// # Thread Safety
//
// View is NOT safe for concurrent use. gogpu calls OnDraw on one goroutine,
// which is the only place a View should be used.
//
// # Integration Without Circular Imports
//
// Drawing goes through the small Target interface. FromTextureDrawer adapts
// a gpucontext.TextureDrawer to it; tests supply their own Target.
package gpuview
