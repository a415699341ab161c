// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/mandelbrot"
)

// mockTexture records uploads and destruction.
type mockTexture struct {
	width, height int
	data          []byte
	updates       int
	destroyed     bool
	premultiplied bool
	updateErr     error
}

func (m *mockTexture) UpdateData(data []byte) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.data = data
	m.updates++
	return nil
}

func (m *mockTexture) Destroy() {
	m.destroyed = true
}

func (m *mockTexture) SetPremultiplied(p bool) {
	m.premultiplied = p
}

// mockTarget implements Target for testing.
type mockTarget struct {
	created   []*mockTexture
	draws     int
	drawn     any
	createErr error
}

func (m *mockTarget) CreateTexture(width, height int, pix []byte) (any, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	tex := &mockTexture{width: width, height: height, data: pix}
	m.created = append(m.created, tex)
	return tex, nil
}

func (m *mockTarget) DrawTexture(tex any, x, y float32) error {
	if x != 0 || y != 0 {
		return errors.New("unexpected position")
	}
	m.draws++
	m.drawn = tex
	return nil
}

// mockProvider implements SurfaceFormatter for testing.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func newCanvas(t *testing.T, w, h int) *mandelbrot.Canvas {
	t.Helper()
	c, err := mandelbrot.NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas error = %v", err)
	}
	c.Clear(mandelbrot.Blue)
	return c
}

func TestViewCreatesTextureOnce(t *testing.T) {
	v := New()
	defer v.Close()
	target := &mockTarget{}
	c := newCanvas(t, 16, 8)

	for i := 0; i < 5; i++ {
		if err := v.Present(target, c); err != nil {
			t.Fatalf("Present #%d error = %v", i, err)
		}
	}

	if len(target.created) != 1 {
		t.Fatalf("created %d textures, want 1", len(target.created))
	}
	tex := target.created[0]
	if tex.width != 16 || tex.height != 8 {
		t.Errorf("texture size = %dx%d, want 16x8", tex.width, tex.height)
	}
	if !tex.premultiplied {
		t.Error("texture not marked premultiplied")
	}
	if tex.updates != 0 {
		t.Errorf("unchanged canvas re-uploaded %d times", tex.updates)
	}
	if target.draws != 5 || target.drawn != tex {
		t.Errorf("draws = %d, want 5 of the created texture", target.draws)
	}
	if v.Uploads() != 1 {
		t.Errorf("Uploads() = %d, want 1", v.Uploads())
	}
}

func TestViewReuploadsAfterChange(t *testing.T) {
	v := New()
	defer v.Close()
	target := &mockTarget{}
	c := newCanvas(t, 4, 4)

	if err := v.Present(target, c); err != nil {
		t.Fatalf("Present error = %v", err)
	}
	c.Set(1, 1, mandelbrot.Red)
	if err := v.Present(target, c); err != nil {
		t.Fatalf("Present error = %v", err)
	}
	if err := v.Present(target, c); err != nil {
		t.Fatalf("Present error = %v", err)
	}

	tex := target.created[0]
	if tex.updates != 1 {
		t.Errorf("updates = %d, want 1", tex.updates)
	}
	if v.Uploads() != 2 {
		t.Errorf("Uploads() = %d, want 2", v.Uploads())
	}
}

func TestViewRecreatesOnResize(t *testing.T) {
	v := New()
	defer v.Close()
	target := &mockTarget{}

	if err := v.Present(target, newCanvas(t, 4, 4)); err != nil {
		t.Fatalf("Present error = %v", err)
	}
	if err := v.Present(target, newCanvas(t, 8, 4)); err != nil {
		t.Fatalf("Present error = %v", err)
	}
	if len(target.created) != 2 {
		t.Fatalf("created %d textures, want 2", len(target.created))
	}
	if !target.created[0].destroyed {
		t.Error("old texture not destroyed")
	}
}

func TestViewCreateError(t *testing.T) {
	v := New()
	target := &mockTarget{createErr: ErrNoTextureCreator}
	err := v.Present(target, newCanvas(t, 2, 2))
	if !errors.Is(err, ErrNoTextureCreator) {
		t.Fatalf("Present error = %v, want %v", err, ErrNoTextureCreator)
	}
	if v.Texture() != nil {
		t.Error("texture set after a failed create")
	}

	// The next present tries again.
	target.createErr = nil
	if err := v.Present(target, newCanvas(t, 2, 2)); err != nil {
		t.Fatalf("Present retry error = %v", err)
	}
}

func TestViewUpdateError(t *testing.T) {
	errUpload := errors.New("upload failed")
	v := New()
	target := &mockTarget{}
	c := newCanvas(t, 2, 2)
	if err := v.Present(target, c); err != nil {
		t.Fatalf("Present error = %v", err)
	}
	target.created[0].updateErr = errUpload
	c.MarkChanged()
	if err := v.Present(target, c); !errors.Is(err, errUpload) {
		t.Errorf("Present error = %v, want %v", err, errUpload)
	}
}

func TestViewClose(t *testing.T) {
	v := New()
	target := &mockTarget{}
	c := newCanvas(t, 2, 2)
	if err := v.Present(target, c); err != nil {
		t.Fatalf("Present error = %v", err)
	}

	if err := v.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if err := v.Close(); err != nil {
		t.Fatalf("second Close error = %v", err)
	}
	if !target.created[0].destroyed {
		t.Error("texture not destroyed on Close")
	}
	if err := v.Present(target, c); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close error = %v, want %v", err, ErrClosed)
	}
}

func TestViewWithSession(t *testing.T) {
	r, err := mandelbrot.NewRenderer(mandelbrot.DefaultConfig().WithSize(20, 10).WithWorkers(1))
	if err != nil {
		t.Fatalf("NewRenderer error = %v", err)
	}
	defer r.Close()
	s := mandelbrot.NewSession(r)
	v := New()
	defer v.Close()
	target := &mockTarget{}

	for i := 0; i < 10; i++ {
		if err := s.Frame(v.Presenter(target)); err != nil {
			t.Fatalf("Frame error = %v", err)
		}
	}
	if s.Renders() != 1 {
		t.Errorf("Renders() = %d, want 1", s.Renders())
	}
	if len(target.created) != 1 || v.Uploads() != 1 {
		t.Errorf("created %d textures with %d uploads, want 1 and 1", len(target.created), v.Uploads())
	}
	if target.draws != 10 {
		t.Errorf("draws = %d, want 10", target.draws)
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		format gputypes.TextureFormat
		want   string
	}{
		{gputypes.TextureFormatBGRA8Unorm, "bgra8unorm"},
		{gputypes.TextureFormatRGBA8Unorm, "rgba8unorm"},
	}
	for _, tt := range tests {
		if got := FormatName(tt.format); got != tt.want {
			t.Errorf("FormatName(%v) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestLogSurface(t *testing.T) {
	LogSurface(nil)
	LogSurface(&mockProvider{format: gputypes.TextureFormatBGRA8Unorm})
}
