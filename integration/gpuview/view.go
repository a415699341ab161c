// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/mandelbrot"
)

// Common errors returned by View operations.
var (
	// ErrClosed is returned when a closed View is asked to present.
	ErrClosed = errors.New("gpuview: view is closed")

	// ErrNoTextureCreator is returned when the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("gpuview: draw context has no texture creator")

	// ErrNotDrawable is returned when a texture does not implement
	// gpucontext.Texture.
	ErrNotDrawable = errors.New("gpuview: texture is not drawable")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// View keeps the GPU copy of a canvas and draws it at (0, 0).
type View struct {
	texture any
	width   int
	height  int
	version uint64
	uploads int
	closed  bool
}

// New returns a View without a texture; the first Present creates it.
func New() *View {
	return &View{}
}

// Present uploads c if it changed since the last call and draws it on t.
func (v *View) Present(t Target, c *mandelbrot.Canvas) error {
	if v.closed {
		return ErrClosed
	}

	if v.texture != nil && (c.Width() != v.width || c.Height() != v.height) {
		destroy(v.texture)
		v.texture = nil
	}

	switch {
	case v.texture == nil:
		tex, err := t.CreateTexture(c.Width(), c.Height(), c.Pix())
		if err != nil {
			return err
		}
		// Canvas pixels are opaque, so they are valid premultiplied data.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		v.texture = tex
		v.width, v.height = c.Width(), c.Height()
		v.version = c.Version()
		v.uploads++
		mandelbrot.Logger().Debug("gpuview: texture created", "width", v.width, "height", v.height)

	case c.Version() != v.version:
		if updater, ok := v.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(c.Pix()); err != nil {
				return fmt.Errorf("gpuview: texture update failed: %w", err)
			}
		}
		v.version = c.Version()
		v.uploads++
		mandelbrot.Logger().Debug("gpuview: texture updated", "version", v.version)
	}

	return t.DrawTexture(v.texture, 0, 0)
}

// Presenter binds t so the view can be handed to mandelbrot.Session.Frame.
// The binding is only valid for the draw callback that produced t.
func (v *View) Presenter(t Target) mandelbrot.Presenter {
	return boundPresenter{view: v, target: t}
}

type boundPresenter struct {
	view   *View
	target Target
}

func (p boundPresenter) Present(c *mandelbrot.Canvas) error {
	return p.view.Present(p.target, c)
}

// Uploads returns how many times pixel data went to the GPU.
func (v *View) Uploads() int {
	return v.uploads
}

// Texture returns the current texture, or nil before the first Present.
func (v *View) Texture() any {
	return v.texture
}

// Close destroys the texture. Close is idempotent.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	if v.texture != nil {
		destroy(v.texture)
		v.texture = nil
	}
	return nil
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
