// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Target is where a View draws: something that can turn RGBA bytes into a
// texture and draw a texture at a position.
type Target interface {
	// CreateTexture creates a width x height RGBA8 texture holding pix.
	CreateTexture(width, height int, pix []byte) (any, error)

	// DrawTexture draws a texture returned by CreateTexture with its top-left
	// corner at (x, y).
	DrawTexture(tex any, x, y float32) error
}

// FromTextureDrawer adapts a gogpu draw context to a Target.
//
//	target := gpuview.FromTextureDrawer(dc.AsTextureDrawer())
func FromTextureDrawer(dc gpucontext.TextureDrawer) Target {
	return drawerTarget{dc: dc}
}

type drawerTarget struct {
	dc gpucontext.TextureDrawer
}

func (t drawerTarget) CreateTexture(width, height int, pix []byte) (any, error) {
	creator := t.dc.TextureCreator()
	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(width, height, pix)
	if err != nil {
		return nil, fmt.Errorf("gpuview: NewTextureFromRGBA failed: %w", err)
	}
	return tex, nil
}

func (t drawerTarget) DrawTexture(tex any, x, y float32) error {
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrNotDrawable
	}
	return t.dc.DrawTexture(gpuTex, x, y)
}
